package ledger

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store. Totals are lost on restart; the
// mutex makes Add atomic, unlike the read-then-write stub this replaces.
type MemoryStore struct {
	mu     sync.Mutex
	totals map[string]int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{totals: make(map[string]int64)}
}

// Add increments the user's total under the lock.
func (s *MemoryStore) Add(_ context.Context, userID string, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals[userID] += amount
	return s.totals[userID], nil
}

// Total returns the user's current total.
func (s *MemoryStore) Total(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals[userID], nil
}

// Ping always succeeds for the in-memory store.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
