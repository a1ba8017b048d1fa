package bot

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/lifeos-app/xp-platform/internal/dialog"
	"github.com/lifeos-app/xp-platform/internal/taskapi"
	"github.com/lifeos-app/xp-platform/pkg/metrics"
)

// Command handlers take plain inputs and return the reply text, so they are
// testable without a live Telegram connection. The telebot glue in bot.go only
// extracts sender/payload and sends whatever these return.

func (b *Bot) cmdTasks(ctx context.Context, userID int64) string {
	resp, err := b.api.ListTasks(ctx, userID)
	if err != nil {
		metrics.RecordCommand("tasks", "error")
		return b.renderError("tasks", userID, err)
	}
	metrics.RecordCommand("tasks", "ok")
	return renderTaskList(resp.Tasks)
}

func (b *Bot) cmdDone(ctx context.Context, userID int64, payload string) string {
	code := strings.TrimSpace(payload)
	if code == "" {
		return replyDoneUsage
	}

	resp, err := b.api.SubmitTask(ctx, userID, code)
	if err != nil {
		metrics.RecordCommand("done", "error")
		return b.renderError("done", userID, err)
	}
	metrics.RecordCommand("done", string(resp.Status))
	return renderSubmitResult(resp)
}

func (b *Bot) cmdNewTask(userID int64) string {
	if !b.isAdmin(userID) {
		metrics.RecordCommand("newtask", "denied")
		return replyDenied
	}
	prompt := b.sessions.Begin(userID)
	metrics.DialogSessionsActive.Set(float64(b.sessions.Len()))
	metrics.RecordCommand("newtask", "ok")
	return prompt
}

// onDialogMessage advances an in-progress creation dialogue. The second
// return value reports whether the message belonged to a dialogue at all.
// Privilege is re-checked on every step: it can be revoked between messages
// and must not be assumed to persist.
func (b *Bot) onDialogMessage(ctx context.Context, userID int64, text string) (string, bool) {
	s, ok := b.sessions.Get(userID)
	if !ok {
		return "", false
	}

	if !b.isAdmin(userID) {
		b.sessions.Clear(userID)
		metrics.DialogSessionsActive.Set(float64(b.sessions.Len()))
		return replyDenied, true
	}

	s, prompt := dialog.Advance(s, text)
	if s.Step != dialog.StepDone {
		b.sessions.Put(s)
		return prompt, true
	}

	// Terminal: state is cleared regardless of the HTTP outcome.
	b.sessions.Clear(userID)
	metrics.DialogSessionsActive.Set(float64(b.sessions.Len()))

	resp, err := b.api.CreateTask(ctx, s.Draft.CreateRequest(userID))
	if err != nil {
		metrics.RecordCommand("newtask", "create_failed")
		return b.renderError("newtask", userID, err), true
	}
	metrics.RecordCommand("newtask", "created")
	return renderTaskCreated(resp.Task, s.Draft), true
}

func (b *Bot) cmdPending(ctx context.Context, userID int64) string {
	if !b.isAdmin(userID) {
		metrics.RecordCommand("pending", "denied")
		return replyDenied
	}

	resp, err := b.api.PendingCompletions(ctx, pendingLimit)
	if err != nil {
		metrics.RecordCommand("pending", "error")
		return b.renderError("pending", userID, err)
	}
	metrics.RecordCommand("pending", "ok")
	return renderPending(resp.Items)
}

func (b *Bot) cmdApprove(ctx context.Context, userID int64, payload string) string {
	if !b.isAdmin(userID) {
		metrics.RecordCommand("approve", "denied")
		return replyDenied
	}

	id := strings.TrimSpace(payload)
	if id == "" {
		return replyApproveUsage
	}

	resp, err := b.api.Approve(ctx, id, userID)
	if err != nil {
		metrics.RecordCommand("approve", "error")
		return b.renderError("approve", userID, err)
	}
	metrics.RecordCommand("approve", "ok")
	return renderApproved(resp)
}

func (b *Bot) cmdReject(ctx context.Context, userID int64, payload string) string {
	if !b.isAdmin(userID) {
		metrics.RecordCommand("reject", "denied")
		return replyDenied
	}

	id := strings.TrimSpace(payload)
	if id == "" {
		return replyRejectUsage
	}

	resp, err := b.api.Reject(ctx, id, userID)
	if err != nil {
		metrics.RecordCommand("reject", "error")
		return b.renderError("reject", userID, err)
	}
	metrics.RecordCommand("reject", "ok")
	return renderRejected(resp)
}

func (b *Bot) cmdDeleteTask(ctx context.Context, userID int64, payload string) string {
	if !b.isAdmin(userID) {
		metrics.RecordCommand("deletetask", "denied")
		return replyDenied
	}

	code := strings.TrimSpace(payload)
	if code == "" {
		return replyDeleteUsage
	}

	resp, err := b.api.DeleteTask(ctx, code)
	if err != nil {
		metrics.RecordCommand("deletetask", "error")
		return b.renderError("deletetask", userID, err)
	}
	metrics.RecordCommand("deletetask", "ok")
	return renderDeleted(resp)
}

// renderError maps a client error onto the uniform three-outcome contract:
// business errors are surfaced as-is, transport failures become a generic
// message and a log line, never the raw detail.
func (b *Bot) renderError(command string, userID int64, err error) string {
	var apiErr *taskapi.APIError
	if errors.As(err, &apiErr) {
		return "Ошибка: " + apiErr.Error()
	}
	b.logger.Error("task service call failed",
		zap.String("command", command),
		zap.Int64("telegram_user_id", userID),
		zap.Error(err),
	)
	return replyInternalError
}
