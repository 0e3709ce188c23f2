package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"aroma-storefront/internal/domain"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemorySessionStore keeps encoded sessions in process. Every Get decodes a
// fresh copy, so callers never share a session value.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	TTL      time.Duration
	now      func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: map[string]memoryEntry{},
		TTL:      ttl,
		now:      time.Now,
	}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt)) {
		return nil, domain.ErrSessionNotFound
	}
	return decodeSession(entry.payload)
}

func (s *MemorySessionStore) Save(_ context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	entry := memoryEntry{payload: payload}
	if s.TTL > 0 {
		entry.expiresAt = s.now().Add(s.TTL)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = entry
	s.evictExpiredLocked()
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemorySessionStore) evictExpiredLocked() {
	now := s.now()
	for id, entry := range s.sessions {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

func decodeSession(payload []byte) (*domain.Session, error) {
	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
