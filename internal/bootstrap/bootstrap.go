// Package bootstrap wires configuration, logging, metrics and the
// key-value backend into ready-to-use OAuth2 artifact stores.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fahmiardi/oauth2-server-redis/internal/config"
	"github.com/fahmiardi/oauth2-server-redis/internal/core"
	"github.com/fahmiardi/oauth2-server-redis/internal/kv"
	"github.com/fahmiardi/oauth2-server-redis/internal/store"
)

// Storage holds all initialized components
type Storage struct {
	Config *config.Config

	// Core infrastructure
	Logger   *zap.Logger
	Recorder core.Recorder
	Backend  core.Backend
	Adapter  *kv.Adapter

	// Stores
	AccessTokens  *store.AccessTokenStore
	RefreshTokens *store.RefreshTokenStore
	AuthCodes     *store.AuthCodeStore
}

// Open validates cfg, connects the configured backend and builds the three stores.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	s := &Storage{Config: cfg}

	// Phase 1: Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Phase 2: Initialize infrastructure
	if err := s.initializeInfrastructure(ctx); err != nil {
		return nil, err
	}

	// Phase 3: Initialize stores
	s.initializeStores()

	return s, nil
}

// initializeInfrastructure sets up logging, metrics and the backend
func (s *Storage) initializeInfrastructure(ctx context.Context) error {
	var err error

	s.Logger, err = initializeLogger(s.Config)
	if err != nil {
		return err
	}

	s.Recorder = initializeMetrics(s.Config, s.Logger)

	backend, err := initializeBackend(ctx, s.Config, s.Logger)
	if err != nil {
		return err
	}
	if s.Config.MetricsEnabled && s.Config.RedisInstrumentation {
		backend = kv.NewInstrumentedBackend(backend, s.Recorder)
	}
	s.Backend = backend

	s.Adapter = kv.NewAdapter(s.Backend, kv.WithKeyPrefix(s.Config.KVKeyPrefix))
	return nil
}

// initializeStores builds the artifact stores over the shared adapter
func (s *Storage) initializeStores() {
	opts := []store.Option{
		store.WithLogger(s.Logger),
		store.WithRecorder(s.Recorder),
	}

	s.AccessTokens = store.NewAccessTokenStore(s.Adapter, opts...)
	s.RefreshTokens = store.NewRefreshTokenStore(s.Adapter, opts...)
	s.AuthCodes = store.NewAuthCodeStore(s.Adapter, opts...)
}

// Health checks if the backend is reachable.
func (s *Storage) Health(ctx context.Context) error {
	return s.Adapter.Health(ctx)
}

// Close closes the backend connection and flushes the logger.
func (s *Storage) Close() error {
	err := s.Backend.Close()
	if syncErr := s.Logger.Sync(); syncErr != nil && !isIgnorableSyncError(syncErr) {
		err = errors.Join(err, syncErr)
	}
	return err
}
