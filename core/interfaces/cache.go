// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Cache implementations when a key is absent or expired.
// Callers use it to tell "nothing stored yet" apart from a failing backend.
var ErrNotFound = errors.New("key not found")

// Cache defines the interface for the key-value store backing persistent state.
// Implementations can be Redis, SQLite, in-memory, or any other store.
//
// Example usage:
//
//	store := someCache // implements Cache interface
//
//	// Store a value that never expires
//	err := store.Set(ctx, "enabledDomains", []byte(`["example.com"]`), 0)
//
//	// Retrieve a value
//	data, err := store.Get(ctx, "enabledDomains")
//	if errors.Is(err, interfaces.ErrNotFound) {
//		// nothing stored yet
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrNotFound (possibly wrapped) if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
