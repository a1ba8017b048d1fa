// Package dialog implements the multi-step task-creation dialogue as a pure
// state machine. It knows nothing about Telegram: transitions take the current
// session and one line of user input and return the new session plus the next
// prompt, so the whole flow is testable without a bot connection.
package dialog

import (
	"strings"
	"time"

	"github.com/lifeos-app/xp-platform/internal/model"
)

// Step identifies which field the dialogue is waiting for.
type Step int

const (
	StepTitle Step = iota
	StepDescription
	StepReward
	StepType
	StepIterations
	StepDeadline
	StepDone
)

// Draft accumulates the task fields collected so far.
type Draft struct {
	Title              string
	Description        string
	RewardXp           int
	TaskType           model.TaskType
	MaxUserCompletions int
	Deadline           *time.Time
}

// Session is one user's in-progress dialogue.
type Session struct {
	UserID int64
	Step   Step
	Draft  Draft
}

// Prompts shown to the admin at each step. The deadline prompts spell out the
// exact expected pattern.
const (
	PromptTitle           = "Введите название задачи:"
	PromptTitleRetry      = "Название не может быть пустым. Введите название задачи:"
	PromptDescription     = "Введите описание задачи (можно оставить пустым, отправьте «-»):"
	PromptReward          = "Сколько XP даётся за выполнение? Целое число больше нуля:"
	PromptRewardRetry     = "Награда должна быть целым числом больше нуля. Попробуйте ещё раз:"
	PromptType            = "Тип задачи: single (разовая), daily (ежедневная) или multi (многоразовая)?"
	PromptTypeRetry       = "Не понял тип. Варианты: single, daily, multi."
	PromptIterations      = "Сколько раз один пользователь может выполнить задачу? 0 — без ограничения:"
	PromptIterationsRetry = "Нужно целое число не меньше нуля. 0 — без ограничения:"
	PromptDeadline        = "Дедлайн в формате YYYY-MM-DD или «нет», если дедлайна нет:"
	PromptDeadlineRetry   = "Не понял дату. Формат: YYYY-MM-DD, например 2025-12-31. Либо «нет»."
)

// noDeadlineTokens are accepted, case-insensitively, as "no deadline".
var noDeadlineTokens = map[string]bool{
	"нет":  true,
	"no":   true,
	"-":    true,
	"none": true,
	"0":    true,
}

// Start begins a new dialogue for the given user.
func Start(userID int64) (Session, string) {
	return Session{UserID: userID, Step: StepTitle}, PromptTitle
}

// Advance applies one message to the session. Invalid input re-prompts without
// touching previously collected fields. When the returned session reaches
// StepDone the prompt is empty and the draft is complete.
func Advance(s Session, input string) (Session, string) {
	text := strings.TrimSpace(input)

	switch s.Step {
	case StepTitle:
		if text == "" {
			return s, PromptTitleRetry
		}
		s.Draft.Title = text
		s.Step = StepDescription
		return s, PromptDescription

	case StepDescription:
		// Any text is accepted; "-" is the conventional empty marker.
		if text != "-" {
			s.Draft.Description = text
		}
		s.Step = StepReward
		return s, PromptReward

	case StepReward:
		n, ok := parseReward(text)
		if !ok {
			return s, PromptRewardRetry
		}
		s.Draft.RewardXp = n
		s.Step = StepType
		return s, PromptType

	case StepType:
		t, ok := model.ParseTaskType(text)
		if !ok {
			return s, PromptTypeRetry
		}
		s.Draft.TaskType = t
		if t == model.TaskTypeMulti {
			s.Step = StepIterations
			return s, PromptIterations
		}
		// single and daily imply exactly one completion; daily resets
		// server-side each day.
		s.Draft.MaxUserCompletions = 1
		s.Step = StepDeadline
		return s, PromptDeadline

	case StepIterations:
		n, ok := parseIterations(text)
		if !ok {
			return s, PromptIterationsRetry
		}
		s.Draft.MaxUserCompletions = n
		s.Step = StepDeadline
		return s, PromptDeadline

	case StepDeadline:
		if noDeadlineTokens[strings.ToLower(text)] {
			s.Draft.Deadline = nil
			s.Step = StepDone
			return s, ""
		}
		d, err := time.Parse("2006-01-02", text)
		if err != nil {
			return s, PromptDeadlineRetry
		}
		d = d.UTC()
		s.Draft.Deadline = &d
		s.Step = StepDone
		return s, ""
	}

	return s, ""
}

// CreateRequest assembles the task-creation payload from a completed draft.
// MaxUserCompletions stays 0 for unlimited multi tasks.
func (d Draft) CreateRequest(adminID int64) model.CreateTaskRequest {
	return model.CreateTaskRequest{
		Title:              d.Title,
		Description:        d.Description,
		RewardXp:           d.RewardXp,
		DeadlineAt:         d.Deadline,
		CreatedBy:          adminID,
		TaskType:           d.TaskType,
		MaxUserCompletions: d.MaxUserCompletions,
	}
}

// parseReward accepts a string of digits converting to a strictly positive int.
func parseReward(s string) (int, bool) {
	n, ok := parseDigits(s)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// parseIterations accepts a string of digits; zero means unlimited.
func parseIterations(s string) (int, bool) {
	return parseDigits(s)
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n > 1_000_000_000 {
			return 0, false
		}
	}
	return n, true
}
