package model

import "time"

// SubmitStatus is the closed set of outcomes the service reports for a
// task submission. Unknown values are kept verbatim and rendered as the
// generic success path, never treated as an error.
type SubmitStatus string

const (
	SubmitStatusPending          SubmitStatus = "pending"
	SubmitStatusTaskNotFound     SubmitStatus = "task_not_found"
	SubmitStatusTaskInactive     SubmitStatus = "task_inactive"
	SubmitStatusLimitReached     SubmitStatus = "limit_reached"
	SubmitStatusAlreadySubmitted SubmitStatus = "already_submitted"
)

// SubmitTaskRequest is the payload for tasks/submit.
type SubmitTaskRequest struct {
	UserID   int64  `json:"userId"`
	TaskCode string `json:"taskCode"`
}

// SubmitTaskResponse is the service reply to tasks/submit.
type SubmitTaskResponse struct {
	Ok           bool         `json:"ok"`
	Status       SubmitStatus `json:"status"`
	CompletionID int64        `json:"completionId,omitempty"`
	TaskCode     string       `json:"taskCode,omitempty"`
	TaskType     TaskType     `json:"taskType,omitempty"`
	RewardXp     int          `json:"rewardXp,omitempty"`
	UsedCount    int          `json:"usedCount,omitempty"`
	MaxForUser   *int         `json:"maxForUser,omitempty"`
}

// PendingCompletion is one submitted claim awaiting admin review.
// The bot only relays its ID between /pending and /approve or /reject.
type PendingCompletion struct {
	ID             string    `json:"id"`
	TaskCode       string    `json:"taskCode"`
	TaskTitle      string    `json:"taskTitle"`
	TelegramUserID int64     `json:"telegramUserId"`
	RewardXp       int       `json:"rewardXp"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// PendingRequest is the payload for tasks/pending.
type PendingRequest struct {
	Limit int `json:"limit"`
}

// PendingResponse is the service reply to tasks/pending.
type PendingResponse struct {
	Ok    bool                `json:"ok"`
	Items []PendingCompletion `json:"items"`
}

// ReviewRequest is the payload for tasks/approve and tasks/reject.
type ReviewRequest struct {
	CompletionID string `json:"completionId"`
	AdminID      int64  `json:"adminId"`
}

// ProfileStats is the XP progress block of a user profile.
type ProfileStats struct {
	Level       int `json:"level"`
	TotalXp     int `json:"totalXp"`
	CurrentXp   int `json:"currentXp,omitempty"`
	NextLevelXp int `json:"nextLevelXp,omitempty"`
}

// Profile is the user profile returned after an approval.
type Profile struct {
	TelegramUserID int64        `json:"telegramUserId"`
	Stats          ProfileStats `json:"stats"`
}

// ApproveResponse is the service reply to tasks/approve.
type ApproveResponse struct {
	Ok           bool     `json:"ok"`
	CompletionID string   `json:"completionId"`
	RewardXp     int      `json:"rewardXp"`
	Profile      *Profile `json:"profile"`
}

// RejectResponse is the service reply to tasks/reject.
type RejectResponse struct {
	Ok           bool   `json:"ok"`
	CompletionID string `json:"completionId"`
	Status       string `json:"status"`
}
