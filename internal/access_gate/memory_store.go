package accessgate

import (
	"context"
	"sync"
)

// MemorySessionStore is a process-local SessionStore for tests and single
// instance development setups. It does not expire entries.
type MemorySessionStore struct {
	mu       sync.Mutex
	attempts map[string]int
	verified map[string]struct{}
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		attempts: make(map[string]int),
		verified: make(map[string]struct{}),
	}
}

func (s *MemorySessionStore) IncrementAttempts(_ context.Context, sessionToken, projectID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts[attemptKey(sessionToken, projectID)]++

	return s.attempts[attemptKey(sessionToken, projectID)], nil
}

func (s *MemorySessionStore) Attempts(_ context.Context, sessionToken, projectID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attempts[attemptKey(sessionToken, projectID)], nil
}

func (s *MemorySessionStore) MarkVerified(_ context.Context, sessionToken, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.verified[verifiedKey(sessionToken, projectID)] = struct{}{}

	return nil
}

func (s *MemorySessionStore) IsVerified(_ context.Context, sessionToken, projectID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.verified[verifiedKey(sessionToken, projectID)]

	return ok, nil
}
