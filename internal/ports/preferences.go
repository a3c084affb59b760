package ports

import "context"

// PreferenceStore is a durable key/value store for per-view UI preferences.
// Values are opaque strings; a missing key is reported as ok=false, not an error.
type PreferenceStore interface {
	// Get returns the value stored at key and whether it exists
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value at key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Remove erases key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
