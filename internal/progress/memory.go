package progress

import (
	"context"
	"sync"
	"time"

	apperrors "gradebench-backend/internal/errors"
)

type memoryEntry struct {
	record    Record
	expiresAt time.Time // zero means no expiry yet (run still in flight)
}

// MemoryStore is an in-process Store for tests and single-node deployments
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a memory store with the given terminal-record TTL
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put replaces the stored record for the record's (actor, target) key
func (s *MemoryStore) Put(_ context.Context, record Record) error {
	entry := memoryEntry{record: clone(record)}
	if record.Terminal() {
		entry.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[Key(record.Actor, record.Target)] = entry
	s.mu.Unlock()
	return nil
}

// Get returns the latest snapshot, evicting it first if it has expired
func (s *MemoryStore) Get(_ context.Context, actor, target string) (*Record, error) {
	key := Key(actor, target)

	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if ok && !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		ok = false
	}
	if !ok {
		return nil, apperrors.ErrProgressNotFound
	}
	record := clone(entry.record)
	return &record, nil
}

// Delete removes a record
func (s *MemoryStore) Delete(_ context.Context, actor, target string) error {
	s.mu.Lock()
	delete(s.entries, Key(actor, target))
	s.mu.Unlock()
	return nil
}
