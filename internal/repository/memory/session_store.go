// Package memory holds the in-process repository implementations. Session
// and device state are inherently ephemeral and live here even in
// production; the other implementations back the test suite.
package memory

import (
	"context"
	"sync"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
)

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]tracking.Session
}

func NewSessionStore() tracking.SessionStore {
	return &sessionStore{
		sessions: make(map[string]tracking.Session),
	}
}

// Get implements tracking.SessionStore.
func (s *sessionStore) Get(_ context.Context, deviceKey string) (*tracking.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[deviceKey]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

// Set implements tracking.SessionStore.
func (s *sessionStore) Set(_ context.Context, session tracking.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.DeviceKey] = session
	return nil
}

// Delete implements tracking.SessionStore.
func (s *sessionStore) Delete(_ context.Context, deviceKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, deviceKey)
	return nil
}

// All implements tracking.SessionStore.
func (s *sessionStore) All(_ context.Context) ([]tracking.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]tracking.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		all = append(all, session)
	}
	return all, nil
}
