package bot

import (
	"fmt"
	"strings"

	"github.com/lifeos-app/xp-platform/internal/dialog"
	"github.com/lifeos-app/xp-platform/internal/model"
)

// User-facing replies. The product speaks Russian; logs stay in English.
const (
	replyDenied        = "Эта команда доступна только администраторам."
	replyInternalError = "Внутренняя ошибка, попробуйте позже."

	replyStart = "Добро пожаловать в LifeOS!\n\n" +
		"Команды:\n" +
		"/tasks — список задач\n" +
		"/done <код> — отправить выполнение на проверку"

	replyNoTasks        = "Пока нет доступных задач."
	replyDoneUsage      = "Укажите код задачи: /done <код>"
	replyApproveUsage   = "Укажите номер заявки: /approve <id>"
	replyRejectUsage    = "Укажите номер заявки: /reject <id>"
	replyDeleteUsage    = "Укажите код задачи: /deletetask <код>"
	replyNoPending      = "Нет заявок на проверку."
	replyTaskNotFound   = "Задача с таким кодом не найдена."
	replyTaskInactive   = "Эта задача больше не активна."
	replyAlreadyPending = "Заявка по этой задаче уже на проверке."
	replyDailyLimit     = "Сегодня ты уже выполнил эту задачу. Возвращайся завтра!"
	replySubmitted      = "Заявка принята! После проверки администратором ты получишь XP."

	unlimitedLabel  = "без ограничения"
	noDeadlineLabel = "нет"
)

func renderTaskList(tasks []model.Task) string {
	if len(tasks) == 0 {
		return replyNoTasks
	}
	var b strings.Builder
	b.WriteString("Доступные задачи:\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "• %s — %d XP (код: %s)\n", t.Title, t.RewardXp, t.Code)
	}
	b.WriteString("\nОтправить на проверку: /done <код>")
	return b.String()
}

func renderSubmitResult(resp *model.SubmitTaskResponse) string {
	switch resp.Status {
	case model.SubmitStatusTaskNotFound:
		return replyTaskNotFound
	case model.SubmitStatusTaskInactive:
		return replyTaskInactive
	case model.SubmitStatusAlreadySubmitted:
		return replyAlreadyPending
	case model.SubmitStatusLimitReached:
		if resp.TaskType == model.TaskTypeDaily {
			return replyDailyLimit
		}
		if resp.MaxForUser != nil {
			return fmt.Sprintf("Лимит выполнений исчерпан: %d из %d.", resp.UsedCount, *resp.MaxForUser)
		}
		return "Лимит выполнений по этой задаче исчерпан."
	default:
		// pending and anything the service adds later
		return replySubmitted
	}
}

func renderTaskCreated(task *model.Task, draft dialog.Draft) string {
	code := ""
	if task != nil {
		code = task.Code
	}

	limit := unlimitedLabel
	if draft.TaskType != model.TaskTypeMulti || draft.MaxUserCompletions > 0 {
		limit = fmt.Sprintf("%d", draft.MaxUserCompletions)
	}

	deadline := noDeadlineLabel
	if draft.Deadline != nil {
		deadline = draft.Deadline.Format("2006-01-02")
	}

	return fmt.Sprintf(
		"Задача создана!\n\nКод: %s\nНазвание: %s\nНаграда: %d XP\nТип: %s\nЛимит на пользователя: %s\nДедлайн: %s",
		code, draft.Title, draft.RewardXp, draft.TaskType, limit, deadline,
	)
}

func renderPending(items []model.PendingCompletion) string {
	if len(items) == 0 {
		return replyNoPending
	}
	var b strings.Builder
	b.WriteString("Заявки на проверку:\n")
	for _, it := range items {
		fmt.Fprintf(&b, "#%s — %s (%s), пользователь %d, %d XP\n",
			it.ID, it.TaskTitle, it.TaskCode, it.TelegramUserID, it.RewardXp)
	}
	b.WriteString("\n/approve <id> или /reject <id>")
	return b.String()
}

func renderApproved(resp *model.ApproveResponse) string {
	if resp.Profile != nil {
		return fmt.Sprintf("Заявка %s подтверждена. Начислено %d XP. Уровень: %d, всего XP: %d.",
			resp.CompletionID, resp.RewardXp, resp.Profile.Stats.Level, resp.Profile.Stats.TotalXp)
	}
	return fmt.Sprintf("Заявка %s подтверждена. Начислено %d XP.", resp.CompletionID, resp.RewardXp)
}

func renderRejected(resp *model.RejectResponse) string {
	return fmt.Sprintf("Заявка %s отклонена.", resp.CompletionID)
}

func renderDeleted(resp *model.DeleteTaskResponse) string {
	if resp.AlreadyDeleted {
		return fmt.Sprintf("Задача %s уже была удалена.", resp.TaskCode)
	}
	return fmt.Sprintf("Задача %s удалена (в архиве).", resp.TaskCode)
}
