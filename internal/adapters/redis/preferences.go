package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"kennel/internal/ports"
)

// DefaultPrefix namespaces preference keys inside a shared Redis database
const DefaultPrefix = "kennel:prefs:"

// PreferenceStore implements ports.PreferenceStore on plain Redis strings.
// Several workstations pointed at the same server share column layouts.
type PreferenceStore struct {
	client goredis.UniversalClient
	prefix string
}

// Ensure PreferenceStore implements ports.PreferenceStore
var _ ports.PreferenceStore = (*PreferenceStore)(nil)

// NewPreferenceStore wraps client. An empty prefix uses DefaultPrefix.
func NewPreferenceStore(client goredis.UniversalClient, prefix string) *PreferenceStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &PreferenceStore{client: client, prefix: prefix}
}

// Dial connects to addr and verifies the server answers PING
func Dial(ctx context.Context, addr string, db int, prefix string) (*PreferenceStore, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis %s: %w", addr, err)
	}
	return NewPreferenceStore(client, prefix), nil
}

// Get retrieves a preference by key
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores a preference without expiry
func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Remove deletes a preference
func (s *PreferenceStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Close closes the underlying client
func (s *PreferenceStore) Close() error {
	return s.client.Close()
}
