package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fahmiardi/oauth2-server-redis/internal/config"
	"github.com/fahmiardi/oauth2-server-redis/internal/core"
	"github.com/fahmiardi/oauth2-server-redis/internal/kv"
)

// initializeBackend creates the key-value backend selected by KV_DRIVER
func initializeBackend(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
) (core.Backend, error) {
	switch cfg.KVDriver {
	case config.KVDriverRueidis:
		return initializeRueidisBackend(ctx, cfg, logger)
	case config.KVDriverGoRedis:
		return initializeGoRedisBackend(ctx, cfg, logger)
	default: // memory
		logger.Info("Key-value backend: memory (single instance only)")
		return kv.NewMemoryBackend(), nil
	}
}

// initializeRueidisBackend connects with rueidis, bounded by REDIS_CONN_TIMEOUT
func initializeRueidisBackend(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
) (core.Backend, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.RedisConnTimeout)
	defer cancel()

	backend, err := kv.NewRueidisBackend(ctx, kv.RueidisOptions{
		Addr:             cfg.RedisAddr,
		Password:         cfg.RedisPassword,
		DB:               cfg.RedisDB,
		DialTimeout:      cfg.RedisDialTimeout,
		ConnWriteTimeout: cfg.RedisWriteTimeout,
		BlockingPoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("Key-value backend: redis (rueidis)",
		zap.String("addr", cfg.RedisAddr),
		zap.Int("db", cfg.RedisDB),
	)
	return backend, nil
}

// initializeGoRedisBackend connects with go-redis, bounded by REDIS_CONN_TIMEOUT
func initializeGoRedisBackend(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
) (core.Backend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.RedisDialTimeout,
		WriteTimeout: cfg.RedisWriteTimeout,
		PoolSize:     cfg.RedisPoolSize,
	})

	// Test connection with timeout
	ctx, cancel := context.WithTimeout(ctx, cfg.RedisConnTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("Key-value backend: redis (go-redis)",
		zap.String("addr", cfg.RedisAddr),
		zap.Int("db", cfg.RedisDB),
	)
	return kv.NewGoRedisBackend(client), nil
}
