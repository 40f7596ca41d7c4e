package session

import (
	"context"
	"sync"
	"time"

	"github.com/mvachon/userd/internal/domain"
)

type memoryEntry struct {
	principal string
	expiresAt time.Time
}

// MemoryStore is an in-process Store for development and testing.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Set(ctx context.Context, id, principal string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = memoryEntry{principal: principal, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return "", domain.ErrNoSession
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return "", domain.ErrNoSession
	}
	return entry.principal, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
