package model

import "time"

// DefaultClaimAmount is awarded when a claim does not specify an amount.
const DefaultClaimAmount = 100

// ClaimRequest is the body of POST /xp/claim on the ledger service.
// InitData is the opaque Telegram mini-app init payload; it is required to be
// non-empty but its signature is not verified yet.
type ClaimRequest struct {
	UserID   string `json:"userId"`
	InitData string `json:"initData"`
	TaskID   string `json:"taskId,omitempty"`
	Amount   *int64 `json:"amount,omitempty"`
}

// ClaimResponse is the body returned by POST /xp/claim.
type ClaimResponse struct {
	Ok        bool  `json:"ok"`
	AwardedXp int64 `json:"awardedXp"`
	TotalXp   int64 `json:"totalXp"`
}

// AwardEvent is published to the event stream after each successful claim.
type AwardEvent struct {
	UserID    string    `json:"userId"`
	TaskID    string    `json:"taskId,omitempty"`
	Amount    int64     `json:"amount"`
	TotalXp   int64     `json:"totalXp"`
	AwardedAt time.Time `json:"awardedAt"`
}
