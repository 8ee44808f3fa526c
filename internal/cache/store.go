package cache

import (
	"encoding/json"
	"errors"
	"sync"
	"time"
)

// Store errors.
var (
	ErrCacheNotFound   = errors.New("cache entry not found")
	ErrCacheExpired    = errors.New("cache entry expired")
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
	ErrCacheDisabled   = errors.New("cache is disabled")
)

// MemoryStore keeps query results by key for the life of the process.
// Safe for concurrent use.
type MemoryStore struct {
	enabled    bool
	staleAfter time.Duration
	now        func() time.Time

	mu      sync.RWMutex
	entries map[string]*Entry
}

// StoreOption customizes a MemoryStore.
type StoreOption func(*MemoryStore)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates a store whose entries go stale after staleAfter.
// A disabled store answers every call with ErrCacheDisabled.
func NewMemoryStore(enabled bool, staleAfter time.Duration, opts ...StoreOption) (*MemoryStore, error) {
	s := &MemoryStore{enabled: enabled, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if !enabled {
		return s, nil
	}
	if err := ValidateTTL(staleAfter); err != nil {
		return nil, err
	}
	s.staleAfter = staleAfter
	s.entries = make(map[string]*Entry)
	return s, nil
}

// IsEnabled reports whether the store keeps anything.
func (s *MemoryStore) IsEnabled() bool {
	return s.enabled
}

// Now returns the store's current time.
func (s *MemoryStore) Now() time.Time {
	return s.now()
}

// Get returns the fresh entry for key. A stale entry is dropped and
// reported as ErrCacheExpired.
func (s *MemoryStore) Get(key string) (*Entry, error) {
	if err := s.check(key); err != nil {
		return nil, err
	}

	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrCacheNotFound
	}
	if !entry.staleAt(s.now()) {
		return entry, nil
	}

	s.mu.Lock()
	if s.entries[key] == entry {
		delete(s.entries, key)
	}
	s.mu.Unlock()
	return nil, ErrCacheExpired
}

// Set stores a copy of data under key, replacing what was there.
func (s *MemoryStore) Set(key string, data json.RawMessage) error {
	if err := s.check(key); err != nil {
		return err
	}

	now := s.now()
	entry := &Entry{
		Key:      key,
		Data:     append(json.RawMessage(nil), data...),
		StoredAt: now,
		StaleAt:  now.Add(s.staleAfter),
	}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
	return nil
}

// Delete removes key. A missing key is not an error.
func (s *MemoryStore) Delete(key string) error {
	if err := s.check(key); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) check(key string) error {
	if !s.enabled {
		return ErrCacheDisabled
	}
	if key == "" {
		return ErrInvalidCacheKey
	}
	return nil
}
