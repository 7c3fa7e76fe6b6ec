package kv

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/rueidis"

	"github.com/fahmiardi/oauth2-server-redis/internal/core"
)

// Compile-time interface check.
var _ core.Backend = (*RueidisBackend)(nil)

// RueidisOptions holds the connection settings for NewRueidisBackend.
type RueidisOptions struct {
	Addr             string
	Password         string
	DB               int
	DialTimeout      time.Duration
	ConnWriteTimeout time.Duration
	BlockingPoolSize int
}

// RueidisBackend implements Backend using Redis via the rueidis client.
// Suitable for multi-instance deployments where storage must be shared.
type RueidisBackend struct {
	client rueidis.Client
}

// NewRueidisBackend connects to Redis using rueidis and verifies the
// connection with a PING bounded by ctx.
func NewRueidisBackend(ctx context.Context, opts RueidisOptions) (*RueidisBackend, error) {
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:      []string{opts.Addr},
		Password:         opts.Password,
		SelectDB:         opts.DB,
		DisableCache:     true, // Records must always be read from the server
		Dialer:           net.Dialer{Timeout: opts.DialTimeout},
		ConnWriteTimeout: opts.ConnWriteTimeout,
		BlockingPoolSize: opts.BlockingPoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	// Test connection with provided context
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RueidisBackend{client: client}, nil
}

// NewRueidisBackendFromClient wraps an existing rueidis client.
// The backend takes ownership and closes the client on Close.
func NewRueidisBackendFromClient(client rueidis.Client) *RueidisBackend {
	return &RueidisBackend{client: client}
}

// Get retrieves a string value from Redis.
func (r *RueidisBackend) Get(ctx context.Context, key string) (string, error) {
	resp := r.client.Do(ctx, r.client.B().Get().Key(key).Build())

	if err := resp.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return "", ErrKeyNotFound
		}
		return "", wrapRedisError(err)
	}

	str, err := resp.ToString()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return str, nil
}

// Set stores a string value in Redis without expiry.
func (r *RueidisBackend) Set(ctx context.Context, key, value string) error {
	cmd := r.client.B().Set().Key(key).Value(value).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return wrapRedisError(err)
	}
	return nil
}

// Del removes keys from Redis.
func (r *RueidisBackend) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	cmd := r.client.B().Del().Key(keys...).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return wrapRedisError(err)
	}
	return nil
}

// SAdd adds members to a Redis set.
func (r *RueidisBackend) SAdd(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}

	cmd := r.client.B().Sadd().Key(key).Member(members...).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return wrapRedisError(err)
	}
	return nil
}

// SMembers returns all members of a Redis set.
func (r *RueidisBackend) SMembers(ctx context.Context, key string) ([]string, error) {
	resp := r.client.Do(ctx, r.client.B().Smembers().Key(key).Build())
	if err := resp.Error(); err != nil {
		return nil, wrapRedisError(err)
	}

	members, err := resp.AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return members, nil
}

// SRem removes members from a Redis set.
func (r *RueidisBackend) SRem(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}

	cmd := r.client.B().Srem().Key(key).Member(members...).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return wrapRedisError(err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (r *RueidisBackend) Ping(ctx context.Context) error {
	if err := r.client.Do(ctx, r.client.B().Ping().Build()).Error(); err != nil {
		return wrapRedisError(err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RueidisBackend) Close() error {
	r.client.Close()
	return nil
}
