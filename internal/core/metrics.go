package core

import "time"

// Recorder defines the interface for recording storage metrics.
// Implementations include Metrics (Prometheus-based) and NoopMetrics (no-op).
type Recorder interface {
	// Backend commands (GET, SET, DEL, SADD, SMEMBERS, SREM, PING)
	RecordBackendCommand(command string, success bool, duration time.Duration)

	// Artifact lifecycle
	RecordArtifactCreated(artifact string)
	RecordArtifactDeleted(artifact string, complete bool)
	RecordRefreshTokenExpired()

	// Scope resolution
	RecordScopeMissing(artifact string)
}
