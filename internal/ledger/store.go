// Package ledger provides the XP total store behind the claim endpoint.
package ledger

import "context"

// Store keeps per-user XP totals. Add must be atomic: concurrent claims for
// the same user must never lose an update.
type Store interface {
	// Add increments the user's total by amount and returns the new total.
	Add(ctx context.Context, userID string, amount int64) (int64, error)

	// Total returns the user's current total, zero for unknown users.
	Total(ctx context.Context, userID string) (int64, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
