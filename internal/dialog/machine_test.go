package dialog

import (
	"testing"
	"time"

	"github.com/lifeos-app/xp-platform/internal/model"
)

func advanceAll(t *testing.T, s Session, inputs ...string) Session {
	t.Helper()
	for _, in := range inputs {
		s, _ = Advance(s, in)
	}
	return s
}

func TestHappyPathSingle(t *testing.T) {
	s, prompt := Start(42)
	if prompt != PromptTitle {
		t.Fatalf("expected title prompt, got %q", prompt)
	}

	s = advanceAll(t, s, "Прочитать книгу", "Любая книга из списка", "50", "single", "нет")

	if s.Step != StepDone {
		t.Fatalf("expected StepDone, got %v", s.Step)
	}
	if s.Draft.Title != "Прочитать книгу" {
		t.Errorf("title = %q", s.Draft.Title)
	}
	if s.Draft.RewardXp != 50 {
		t.Errorf("rewardXp = %d", s.Draft.RewardXp)
	}
	if s.Draft.TaskType != model.TaskTypeSingle {
		t.Errorf("taskType = %q", s.Draft.TaskType)
	}
	if s.Draft.MaxUserCompletions != 1 {
		t.Errorf("maxUserCompletions = %d, want 1", s.Draft.MaxUserCompletions)
	}
	if s.Draft.Deadline != nil {
		t.Errorf("deadline = %v, want nil", s.Draft.Deadline)
	}
}

func TestEmptyTitleReprompts(t *testing.T) {
	s, _ := Start(1)
	s, prompt := Advance(s, "   ")
	if s.Step != StepTitle {
		t.Fatalf("step = %v, want StepTitle", s.Step)
	}
	if prompt != PromptTitleRetry {
		t.Errorf("prompt = %q", prompt)
	}
}

func TestInvalidRewardPreservesDraft(t *testing.T) {
	s, _ := Start(1)
	s = advanceAll(t, s, "Заголовок", "Описание")

	for _, bad := range []string{"abc", "-5", "0", "", "12x", "10.5"} {
		var prompt string
		s, prompt = Advance(s, bad)
		if s.Step != StepReward {
			t.Fatalf("input %q: step = %v, want StepReward", bad, s.Step)
		}
		if prompt != PromptRewardRetry {
			t.Errorf("input %q: prompt = %q", bad, prompt)
		}
		if s.Draft.Title != "Заголовок" || s.Draft.Description != "Описание" {
			t.Errorf("input %q: draft fields lost: %+v", bad, s.Draft)
		}
	}

	s, _ = Advance(s, "100")
	if s.Step != StepType || s.Draft.RewardXp != 100 {
		t.Errorf("after valid reward: step=%v reward=%d", s.Step, s.Draft.RewardXp)
	}
}

func TestTypeSynonyms(t *testing.T) {
	tests := []struct {
		input string
		want  model.TaskType
	}{
		{"single", model.TaskTypeSingle},
		{"SINGLE", model.TaskTypeSingle},
		{"разовая", model.TaskTypeSingle},
		{"daily", model.TaskTypeDaily},
		{"Ежедневная", model.TaskTypeDaily},
		{"multi", model.TaskTypeMulti},
		{"МНОГО", model.TaskTypeMulti},
	}

	for _, tt := range tests {
		got, ok := model.ParseTaskType(tt.input)
		if !ok || got != tt.want {
			t.Errorf("ParseTaskType(%q) = %q, %v; want %q", tt.input, got, ok, tt.want)
		}
	}

	if _, ok := model.ParseTaskType("weekly"); ok {
		t.Error("ParseTaskType(weekly) should not match")
	}
}

func TestUnknownTypeReprompts(t *testing.T) {
	s, _ := Start(1)
	s = advanceAll(t, s, "T", "D", "10")

	s, prompt := Advance(s, "weekly")
	if s.Step != StepType {
		t.Fatalf("step = %v, want StepType", s.Step)
	}
	if prompt != PromptTypeRetry {
		t.Errorf("prompt = %q", prompt)
	}
}

func TestMultiAsksIterations(t *testing.T) {
	s, _ := Start(1)
	s = advanceAll(t, s, "T", "D", "10")

	s, prompt := Advance(s, "multi")
	if s.Step != StepIterations {
		t.Fatalf("step = %v, want StepIterations", s.Step)
	}
	if prompt != PromptIterations {
		t.Errorf("prompt = %q", prompt)
	}

	s, _ = Advance(s, "0")
	if s.Step != StepDeadline {
		t.Fatalf("step = %v, want StepDeadline", s.Step)
	}
	if s.Draft.MaxUserCompletions != 0 {
		t.Errorf("maxUserCompletions = %d, want 0 (unlimited)", s.Draft.MaxUserCompletions)
	}
}

func TestInvalidIterationsReprompts(t *testing.T) {
	s, _ := Start(1)
	s = advanceAll(t, s, "T", "D", "10", "multi")

	for _, bad := range []string{"-1", "x", ""} {
		var prompt string
		s, prompt = Advance(s, bad)
		if s.Step != StepIterations {
			t.Fatalf("input %q: step = %v", bad, s.Step)
		}
		if prompt != PromptIterationsRetry {
			t.Errorf("input %q: prompt = %q", bad, prompt)
		}
	}
}

func TestNoDeadlineTokens(t *testing.T) {
	for _, token := range []string{"нет", "НЕТ", "no", "No", "-", "none", "NONE", "0"} {
		s, _ := Start(1)
		s = advanceAll(t, s, "T", "D", "10", "single", token)
		if s.Step != StepDone {
			t.Fatalf("token %q: step = %v, want StepDone", token, s.Step)
		}
		if s.Draft.Deadline != nil {
			t.Errorf("token %q: deadline = %v, want nil", token, s.Draft.Deadline)
		}
	}
}

func TestDeadlineParsedMidnightUTC(t *testing.T) {
	s, _ := Start(1)
	s = advanceAll(t, s, "T", "D", "10", "single", "2026-09-15")

	if s.Step != StepDone {
		t.Fatalf("step = %v, want StepDone", s.Step)
	}
	want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if s.Draft.Deadline == nil || !s.Draft.Deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", s.Draft.Deadline, want)
	}
}

func TestInvalidDeadlineReprompts(t *testing.T) {
	s, _ := Start(1)
	s = advanceAll(t, s, "T", "D", "10", "single")

	for _, bad := range []string{"15.09.2026", "2026/09/15", "завтра", "2026-13-40"} {
		var prompt string
		s, prompt = Advance(s, bad)
		if s.Step != StepDeadline {
			t.Fatalf("input %q: step = %v", bad, s.Step)
		}
		if prompt != PromptDeadlineRetry {
			t.Errorf("input %q: prompt = %q", bad, prompt)
		}
	}
}

func TestCreateRequestUnlimitedMulti(t *testing.T) {
	s, _ := Start(7)
	s = advanceAll(t, s, "Зарядка", "-", "50", "multi", "0", "нет")

	req := s.Draft.CreateRequest(7)
	if req.MaxUserCompletions != 0 {
		t.Errorf("maxUserCompletions = %d, want 0", req.MaxUserCompletions)
	}
	if req.DeadlineAt != nil {
		t.Errorf("deadlineAt = %v, want nil", req.DeadlineAt)
	}
	if req.RewardXp != 50 || req.TaskType != model.TaskTypeMulti || req.CreatedBy != 7 {
		t.Errorf("unexpected request: %+v", req)
	}
	if req.Description != "" {
		t.Errorf("description = %q, want empty for «-»", req.Description)
	}
}
