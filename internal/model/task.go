// Package model defines data structures shared by the bot and the task service client.
package model

import (
	"strings"
	"time"
)

// TaskType is the closed set of task kinds the service understands.
type TaskType string

const (
	// TaskTypeSingle is a one-shot task: one completion per user, ever.
	TaskTypeSingle TaskType = "single"
	// TaskTypeDaily resets server-side once a day, one completion per day.
	TaskTypeDaily TaskType = "daily"
	// TaskTypeMulti allows a configurable number of completions (0 = unlimited).
	TaskTypeMulti TaskType = "multi"
)

// taskTypeSynonyms maps user input, lowercased, to a task type. Admins type
// these during the creation dialogue, in Russian or English.
var taskTypeSynonyms = map[string]TaskType{
	"single":       TaskTypeSingle,
	"одноразовая":  TaskTypeSingle,
	"разовая":      TaskTypeSingle,
	"daily":        TaskTypeDaily,
	"ежедневная":   TaskTypeDaily,
	"каждый день":  TaskTypeDaily,
	"multi":        TaskTypeMulti,
	"многоразовая": TaskTypeMulti,
	"много":        TaskTypeMulti,
}

// ParseTaskType maps raw user input to a task type. Recognition is
// case-insensitive; the second return value reports whether the input matched.
func ParseTaskType(raw string) (TaskType, bool) {
	t, ok := taskTypeSynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return t, ok
}

// Task is the service-owned task entity as returned over the wire.
// The bot never mutates it, only renders its fields.
type Task struct {
	ID                 int64      `json:"id,omitempty"`
	Code               string     `json:"code"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	RewardXp           int        `json:"rewardXp"`
	DeadlineAt         *time.Time `json:"deadlineAt,omitempty"`
	CreatedBy          int64      `json:"createdBy,omitempty"`
	IsActive           bool       `json:"isActive,omitempty"`
	TaskType           TaskType   `json:"taskType,omitempty"`
	MaxUserCompletions *int       `json:"maxUserCompletions,omitempty"`
}

// CreateTaskRequest is the payload assembled at the end of the creation dialogue.
// MaxUserCompletions is a plain int on purpose: 0 means unlimited and must be
// sent as 0, never null.
type CreateTaskRequest struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	RewardXp           int        `json:"rewardXp"`
	DeadlineAt         *time.Time `json:"deadlineAt"`
	CreatedBy          int64      `json:"createdBy"`
	TaskType           TaskType   `json:"taskType"`
	MaxUserCompletions int        `json:"maxUserCompletions"`
}

// CreateTaskResponse is the service reply to tasks/create.
type CreateTaskResponse struct {
	Ok   bool  `json:"ok"`
	Task *Task `json:"task"`
}

// ListTasksRequest is the payload for tasks/list. UserID is optional; when
// set, the service filters tasks still available to that user.
type ListTasksRequest struct {
	UserID int64 `json:"userId,omitempty"`
}

// ListTasksResponse is the service reply to tasks/list.
type ListTasksResponse struct {
	Ok    bool   `json:"ok"`
	Tasks []Task `json:"tasks"`
}

// DeleteTaskRequest is the payload for tasks/delete (soft delete).
type DeleteTaskRequest struct {
	TaskCode string `json:"taskCode"`
}

// DeleteTaskResponse is the service reply to tasks/delete.
type DeleteTaskResponse struct {
	Ok             bool   `json:"ok"`
	TaskCode       string `json:"taskCode"`
	AlreadyDeleted bool   `json:"alreadyDeleted"`
	IsActive       bool   `json:"isActive"`
}
