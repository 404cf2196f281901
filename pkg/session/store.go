package session

import "context"

// Client defines the key-value store commands the Storage depends on.
// Connection handling, pooling and the wire protocol belong to the implementation.
type Client interface {
	// Get returns the payload stored under key, or nil without error on a miss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key without expiration
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key and reports whether it existed
	Delete(ctx context.Context, key string) (bool, error)
}

// PrefixDeleter is an optional interface for clients that can remove
// every key starting with a prefix
type PrefixDeleter interface {
	Client
	// DeletePrefix removes all keys starting with prefix and returns how many were removed
	DeletePrefix(ctx context.Context, prefix string) (int64, error)
}
