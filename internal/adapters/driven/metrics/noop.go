package metrics

import "github.com/rciam/caddy-affiliation/internal/core/ports"

// NoopMetricsRecorder is a no-op implementation for when metrics are disabled.
// All methods are safe to call and do nothing.
type NoopMetricsRecorder struct{}

// NewNoopMetricsRecorder creates a new no-op metrics recorder.
func NewNoopMetricsRecorder() *NoopMetricsRecorder {
	return &NoopMetricsRecorder{}
}

// RecordClassification is a no-op.
func (n *NoopMetricsRecorder) RecordClassification(source, affiliation string) {}

// RecordSkip is a no-op.
func (n *NoopMetricsRecorder) RecordSkip(reason string) {}

// RecordFault is a no-op.
func (n *NoopMetricsRecorder) RecordFault() {}

// Ensure NoopMetricsRecorder implements ports.MetricsRecorder
var _ ports.MetricsRecorder = (*NoopMetricsRecorder)(nil)
