package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"kennel/internal/ports"
)

type entry struct {
	value string
	ok    bool
}

// PreferenceStore is a read-through LRU in front of another store.
// Misses are cached too, so a list without saved columns hits the backend once.
type PreferenceStore struct {
	next  ports.PreferenceStore
	cache *lru.Cache[string, entry]
}

// Ensure PreferenceStore implements ports.PreferenceStore
var _ ports.PreferenceStore = (*PreferenceStore)(nil)

// NewPreferenceStore wraps next with an LRU of the given size
func NewPreferenceStore(next ports.PreferenceStore, size int) (*PreferenceStore, error) {
	if size <= 0 {
		return nil, fmt.Errorf("preference cache size must be greater than zero, got %d", size)
	}
	c, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("init preference cache: %w", err)
	}
	return &PreferenceStore{next: next, cache: c}, nil
}

// Get serves from the cache, falling back to the wrapped store
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	if e, ok := s.cache.Get(key); ok {
		return e.value, e.ok, nil
	}
	value, ok, err := s.next.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	s.cache.Add(key, entry{value: value, ok: ok})
	return value, ok, nil
}

// Set writes through, caching only after the backend accepted the value
func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		s.cache.Remove(key)
		return err
	}
	s.cache.Add(key, entry{value: value, ok: true})
	return nil
}

// Remove deletes from the backend and caches the absence
func (s *PreferenceStore) Remove(ctx context.Context, key string) error {
	if err := s.next.Remove(ctx, key); err != nil {
		s.cache.Remove(key)
		return err
	}
	s.cache.Add(key, entry{})
	return nil
}

// Len returns the number of cached keys
func (s *PreferenceStore) Len() int {
	return s.cache.Len()
}

// Purge drops every cached entry
func (s *PreferenceStore) Purge() {
	s.cache.Purge()
}
