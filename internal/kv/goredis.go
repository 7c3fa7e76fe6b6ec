package kv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/fahmiardi/oauth2-server-redis/internal/core"
)

// Compile-time interface check.
var _ core.Backend = (*GoRedisBackend)(nil)

// GoRedisBackend implements Backend using the go-redis client.
// Useful when the host application already owns a go-redis connection pool.
type GoRedisBackend struct {
	client redis.UniversalClient
}

// NewGoRedisBackend wraps an existing go-redis client.
// The backend takes ownership and closes the client on Close.
func NewGoRedisBackend(client redis.UniversalClient) *GoRedisBackend {
	return &GoRedisBackend{client: client}
}

// Get retrieves a string value from Redis.
func (g *GoRedisBackend) Get(ctx context.Context, key string) (string, error) {
	value, err := g.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", wrapRedisError(err)
	}
	return value, nil
}

// Set stores a string value in Redis without expiry.
func (g *GoRedisBackend) Set(ctx context.Context, key, value string) error {
	if err := g.client.Set(ctx, key, value, 0).Err(); err != nil {
		return wrapRedisError(err)
	}
	return nil
}

// Del removes keys from Redis.
func (g *GoRedisBackend) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := g.client.Del(ctx, keys...).Err(); err != nil {
		return wrapRedisError(err)
	}
	return nil
}

// SAdd adds members to a Redis set.
func (g *GoRedisBackend) SAdd(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	if err := g.client.SAdd(ctx, key, toArgs(members)...).Err(); err != nil {
		return wrapRedisError(err)
	}
	return nil
}

// SMembers returns all members of a Redis set.
func (g *GoRedisBackend) SMembers(ctx context.Context, key string) ([]string, error) {
	members, err := g.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, wrapRedisError(err)
	}
	return members, nil
}

// SRem removes members from a Redis set.
func (g *GoRedisBackend) SRem(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	if err := g.client.SRem(ctx, key, toArgs(members)...).Err(); err != nil {
		return wrapRedisError(err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (g *GoRedisBackend) Ping(ctx context.Context) error {
	if err := g.client.Ping(ctx).Err(); err != nil {
		return wrapRedisError(err)
	}
	return nil
}

// Close closes the Redis connection.
func (g *GoRedisBackend) Close() error {
	return g.client.Close()
}

func toArgs(members []string) []any {
	args := make([]any, len(members))
	for i, m := range members {
		args[i] = m
	}
	return args
}
