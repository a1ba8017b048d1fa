package dialog

import "sync"

// Store keeps at most one active session per Telegram user.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]Session)}
}

// Begin starts a fresh dialogue for the user, discarding any prior
// incomplete session, and returns the first prompt.
func (st *Store) Begin(userID int64) string {
	s, prompt := Start(userID)
	st.mu.Lock()
	st.sessions[userID] = s
	st.mu.Unlock()
	return prompt
}

// Get returns the user's session, if one is in progress.
func (st *Store) Get(userID int64) (Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[userID]
	st.mu.RUnlock()
	return s, ok
}

// Put stores the advanced session.
func (st *Store) Put(s Session) {
	st.mu.Lock()
	st.sessions[s.UserID] = s
	st.mu.Unlock()
}

// Clear drops the user's session, whether completed or aborted.
func (st *Store) Clear(userID int64) {
	st.mu.Lock()
	delete(st.sessions, userID)
	st.mu.Unlock()
}

// Len reports the number of active sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
