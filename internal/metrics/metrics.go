package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fahmiardi/oauth2-server-redis/internal/core"
)

// Recorder is the metrics interface consumed by the storage layer.
type Recorder = core.Recorder

// Ensure Metrics implements Recorder interface at compile time
var _ Recorder = (*Metrics)(nil)

// Metrics holds all Prometheus metrics for the storage layer
type Metrics struct {
	// Backend Metrics
	BackendCommandsTotal   *prometheus.CounterVec
	BackendCommandDuration *prometheus.HistogramVec

	// Artifact Metrics
	ArtifactsCreatedTotal     *prometheus.CounterVec
	ArtifactsDeletedTotal     *prometheus.CounterVec
	RefreshTokensExpiredTotal prometheus.Counter
	ScopesMissingTotal        *prometheus.CounterVec
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Init initializes metrics based on enabled flag
// If enabled=true, returns Prometheus-based Metrics registered on the default registry
// If enabled=false, returns NoopMetrics (zero overhead)
// Uses sync.Once to ensure Prometheus metrics are only registered once
func Init(enabled bool) Recorder {
	if !enabled {
		return NewNoopMetrics()
	}

	once.Do(func() {
		defaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// NewMetrics creates all metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Backend Metrics
		BackendCommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oauth_store_backend_commands_total",
				Help: "Total number of key-value backend commands",
			},
			[]string{
				"command",
				"result",
			}, // command: get, set, del, sadd, smembers, srem, ping; result: success, error
		),
		BackendCommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "oauth_store_backend_command_duration_seconds",
				Help: "Key-value backend command latency in seconds",
				Buckets: []float64{
					0.0005,
					0.001,
					0.0025,
					0.005,
					0.010,
					0.025,
					0.050,
					0.100,
					0.250,
					0.500,
					1.0,
				},
			},
			[]string{"command"},
		),

		// Artifact Metrics
		ArtifactsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oauth_store_artifacts_created_total",
				Help: "Total number of grant artifacts persisted",
			},
			[]string{"artifact"}, // access_token, refresh_token, auth_code
		),
		ArtifactsDeletedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oauth_store_artifacts_deleted_total",
				Help: "Total number of grant artifact deletions",
			},
			[]string{"artifact", "result"}, // result: complete, partial
		),
		RefreshTokensExpiredTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "oauth_store_refresh_tokens_expired_total",
				Help: "Total number of refresh token reads rejected because the token had expired",
			},
		),
		ScopesMissingTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oauth_store_scopes_missing_total",
				Help: "Total number of associated scopes skipped because the scope no longer exists",
			},
			[]string{"artifact"},
		),
	}
}

// RecordBackendCommand records a key-value backend command
func (m *Metrics) RecordBackendCommand(command string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "error"
	}
	m.BackendCommandsTotal.WithLabelValues(command, result).Inc()
	m.BackendCommandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordArtifactCreated records a persisted artifact
func (m *Metrics) RecordArtifactCreated(artifact string) {
	m.ArtifactsCreatedTotal.WithLabelValues(artifact).Inc()
}

// RecordArtifactDeleted records a delete sequence and whether every step completed
func (m *Metrics) RecordArtifactDeleted(artifact string, complete bool) {
	result := "complete"
	if !complete {
		result = "partial"
	}
	m.ArtifactsDeletedTotal.WithLabelValues(artifact, result).Inc()
}

// RecordRefreshTokenExpired records an expired refresh token read
func (m *Metrics) RecordRefreshTokenExpired() {
	m.RefreshTokensExpiredTotal.Inc()
}

// RecordScopeMissing records an associated scope that could not be resolved
func (m *Metrics) RecordScopeMissing(artifact string) {
	m.ScopesMissingTotal.WithLabelValues(artifact).Inc()
}
