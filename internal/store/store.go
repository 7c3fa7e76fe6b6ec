// Package store persists OAuth2 grant artifacts (access tokens, refresh
// tokens and authorization codes) in a key-value backend.
//
// Every artifact kind keeps a primary record, an index set listing all ids
// of that kind and, for access tokens and auth codes, a per-artifact scope
// association set. Multi-step writes are not transactional: each step is an
// independent backend command, and a failed step is returned to the caller
// without rollback.
//
// References between artifacts (refresh token -> access token, session ids)
// are plain identifiers. Nothing cascades on delete.
package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fahmiardi/oauth2-server-redis/internal/core"
	"github.com/fahmiardi/oauth2-server-redis/internal/kv"
	"github.com/fahmiardi/oauth2-server-redis/internal/metrics"
)

// Artifact labels used in logs and metrics
const (
	ArtifactAccessToken  = "access_token"
	ArtifactRefreshToken = "refresh_token"
	ArtifactAuthCode     = "auth_code"
)

type options struct {
	logger   *zap.Logger
	recorder core.Recorder
	now      func() time.Time
}

// Option configures a store.
type Option func(*options)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder. Defaults to NoopMetrics.
func WithRecorder(recorder core.Recorder) Option {
	return func(o *options) {
		if recorder != nil {
			o.recorder = recorder
		}
	}
}

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:   zap.NewNop(),
		recorder: metrics.NewNoopMetrics(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// requireID rejects an empty artifact id before any backend command is sent.
// An empty id would otherwise address the kind-wide index set.
func requireID(id string) error {
	if id == "" {
		return kv.ErrEmptyID
	}
	return nil
}

// step is one backend command of a multi-step delete.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// runDelete executes steps in order and stops at the first failure.
// Steps already completed are not rolled back; the failure is logged with
// the completed steps so an operator can reconcile, and then returned.
func (o options) runDelete(ctx context.Context, artifact, id string, steps ...step) error {
	for i, s := range steps {
		if err := s.run(ctx); err != nil {
			completed := make([]string, 0, i)
			for _, done := range steps[:i] {
				completed = append(completed, done.name)
			}
			o.logger.Warn("partial delete",
				zap.String("artifact", artifact),
				zap.String("id", id),
				zap.String("failed_step", s.name),
				zap.Strings("completed_steps", completed),
				zap.Error(err),
			)
			o.recorder.RecordArtifactDeleted(artifact, false)
			return err
		}
	}

	o.recorder.RecordArtifactDeleted(artifact, true)
	return nil
}
