package host

import (
	"sync"

	"github.com/google/uuid"
)

// SessionManager hands out a fresh session token every time a run is
// (re)started. Grounded on fight-club-go's api.SessionManager (a
// token keyed to one authenticated identity) and generalized, per
// SPEC_FULL.md's dependency table, to google/uuid the way
// pableeee-go-cs-metrics and talgya/mini-world assign run/session
// identifiers — the token never enters Core's own state (spec.md §6:
// "there is no persisted state format"), it exists purely so a host
// can correlate WebSocket frames and HTTP calls with one run.
type SessionManager struct {
	mu      sync.RWMutex
	current uuid.UUID
}

// NewSession starts a new session and returns its token, invalidating
// whatever token preceded it (a new init_run always means a new run).
func (s *SessionManager) NewSession() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = uuid.New()
	return s.current
}

// Current returns the active session token, or the zero UUID if no
// run has started yet.
func (s *SessionManager) Current() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Valid reports whether token matches the active session.
func (s *SessionManager) Valid(token uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != uuid.Nil && s.current == token
}
