package checkin

import (
	"errors"
	"sync"
	"time"
)

var ErrSessionNotFound = errors.New("check-in session not found")

// Store keeps one Machine per login session. Nothing is written to disk;
// a session's state is gone once it is dropped or the process exits.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Machine
	now      func() time.Time
}

func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{sessions: make(map[string]*Machine), now: now}
}

// Open starts a fresh, empty state for sessionID, replacing any previous one.
func (s *Store) Open(sessionID string) *Machine {
	m := NewMachine(s.now)
	s.mu.Lock()
	s.sessions[sessionID] = m
	s.mu.Unlock()
	return m
}

func (s *Store) Get(sessionID string) (*Machine, error) {
	s.mu.RLock()
	m, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return m, nil
}

// GetOrOpen returns the session's machine, opening one if the process
// restarted while the token was still valid.
func (s *Store) GetOrOpen(sessionID string) *Machine {
	if m, err := s.Get(sessionID); err == nil {
		return m
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.sessions[sessionID]; ok {
		return m
	}
	m := NewMachine(s.now)
	s.sessions[sessionID] = m
	return m
}

func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StillRunningSince reports whether the session's shift that started at
// startedAt has not been ended yet.
func (s *Store) StillRunningSince(sessionID string, startedAt time.Time) bool {
	m, err := s.Get(sessionID)
	if err != nil {
		return false
	}
	st := m.State()
	return st.IsShiftRunning() && st.StartedAt.Equal(startedAt)
}
