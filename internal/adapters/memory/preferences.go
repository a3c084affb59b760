package memory

import (
	"context"
	"sync"

	"kennel/internal/ports"
)

// PreferenceStore is an in-memory preference backend
type PreferenceStore struct {
	values map[string]string
	mu     sync.RWMutex
}

// Ensure PreferenceStore implements ports.PreferenceStore
var _ ports.PreferenceStore = (*PreferenceStore)(nil)

// NewPreferenceStore creates an empty in-memory store
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{values: make(map[string]string)}
}

// Get returns the value at key
func (s *PreferenceStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value at key
func (s *PreferenceStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Remove erases key
func (s *PreferenceStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Len returns the number of stored keys
func (s *PreferenceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
