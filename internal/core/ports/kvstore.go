package ports

import "context"

// KeyValueStore is the pluggable persistence port for small per-user blobs
// (onboarding data, session mirrors, notification inboxes). Implementations
// exist for Redis and for in-memory fallback; call sites never depend on a
// concrete backend.
type KeyValueStore interface {
	// Get returns the raw value for key, or ErrKeyNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
