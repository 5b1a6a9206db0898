package store

import "context"

// Blob is durable key-value storage: string keys to opaque serialized
// values. Each collection lives under a single key and is always read and
// written whole, so callers observe either the previous value or the new
// one, never a partial write.
type Blob interface {
	// Get returns the value stored under key. The second return is false
	// when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, data []byte) error
}
