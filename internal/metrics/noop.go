package metrics

import "time"

// NoopMetrics is a no-operation implementation of Recorder
// All methods are empty and do nothing, providing zero overhead when metrics are disabled
type NoopMetrics struct{}

// Ensure NoopMetrics implements Recorder interface at compile time
var _ Recorder = (*NoopMetrics)(nil)

// NewNoopMetrics creates a new no-operation metrics recorder
func NewNoopMetrics() Recorder {
	return &NoopMetrics{}
}

func (n *NoopMetrics) RecordBackendCommand(command string, success bool, duration time.Duration) {}
func (n *NoopMetrics) RecordArtifactCreated(artifact string)                                     {}
func (n *NoopMetrics) RecordArtifactDeleted(artifact string, complete bool)                      {}
func (n *NoopMetrics) RecordRefreshTokenExpired()                                                {}
func (n *NoopMetrics) RecordScopeMissing(artifact string)                                        {}
