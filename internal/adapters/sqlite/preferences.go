package sqlite

import (
	"context"
	"database/sql"
	"time"

	"kennel/internal/ports"
)

// PreferenceStore implements ports.PreferenceStore on the prefs table
type PreferenceStore struct {
	db *DB
}

// Ensure PreferenceStore implements ports.PreferenceStore
var _ ports.PreferenceStore = (*PreferenceStore)(nil)

// NewPreferenceStore creates a preference store backed by db
func NewPreferenceStore(db *DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// Get retrieves a preference by key
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set inserts or updates a preference
func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.db.ExecContext(ctx, `
		INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())
	return err
}

// Remove deletes a preference
func (s *PreferenceStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.db.ExecContext(ctx, `DELETE FROM prefs WHERE key = ?`, key)
	return err
}
