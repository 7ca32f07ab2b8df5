// Package store provides the key-value persistence port used for custom
// greetings, together with in-memory, file, PostgreSQL and cached adapters.
package store

import "context"

// Store is a flat string key-value store owned by the host environment.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value for key. found is false when the key was never set.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set writes value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
}

// Invalidator is implemented by stores that cache values. Invalidate drops a
// cached entry so the next Get goes to the backing store.
type Invalidator interface {
	Invalidate(key string)
}
