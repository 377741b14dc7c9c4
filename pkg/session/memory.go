package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store for tests and single-node development.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]Record
	byUser   map[uuid.UUID]map[uuid.UUID]struct{}
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]Record),
		byUser:   make(map[uuid.UUID]map[uuid.UUID]struct{}),
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, rec Record, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ExpiresAt.IsZero() {
		rec.ExpiresAt = s.now().Add(ttl)
	}
	s.sessions[rec.SessionID] = rec

	idx, ok := s.byUser[rec.UserID]
	if !ok {
		idx = make(map[uuid.UUID]struct{})
		s.byUser[rec.UserID] = idx
	}
	idx[rec.SessionID] = struct{}{}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID uuid.UUID) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[sessionID]
	if !ok || s.now().After(rec.ExpiresAt) {
		return nil, ErrNotFound
	}
	out := rec
	return &out, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	delete(s.sessions, sessionID)
	delete(s.byUser[rec.UserID], sessionID)
	return nil
}

func (s *MemoryStore) DeleteAllForUser(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.byUser[userID]
	n := len(idx)
	for sid := range idx {
		delete(s.sessions, sid)
	}
	delete(s.byUser, userID)
	return n, nil
}
