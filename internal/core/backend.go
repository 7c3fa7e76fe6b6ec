package core

import "context"

// Backend defines the raw key-value commands the storage adapter is built on.
// Implementations wrap a Redis client (rueidis, go-redis) or an in-memory map.
//
// Keys passed to a Backend are already fully qualified; key naming is the
// adapter's concern, not the backend's.
type Backend interface {
	// Get returns the string stored at key.
	// Returns kv.ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key, replacing any previous value. No TTL is applied.
	Set(ctx context.Context, key, value string) error

	// Del removes the given keys. Missing keys are ignored.
	Del(ctx context.Context, keys ...string) error

	// SAdd adds members to the set stored at key, creating it if needed.
	SAdd(ctx context.Context, key string, members ...string) error

	// SMembers returns all members of the set stored at key.
	// A missing key yields an empty slice, not an error.
	SMembers(ctx context.Context, key string) ([]string, error)

	// SRem removes members from the set stored at key.
	SRem(ctx context.Context, key string, members ...string) error

	// Ping checks if the backend is reachable
	Ping(ctx context.Context) error

	// Close releases the underlying connection
	Close() error
}
