package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rciam/caddy-affiliation/internal/core/ports"
)

// PrometheusMetricsRecorder records enrichment metrics using Prometheus.
type PrometheusMetricsRecorder struct {
	classificationsTotal *prometheus.CounterVec
	skipsTotal           *prometheus.CounterVec
	faultsTotal          prometheus.Counter
}

// NewPrometheusMetricsRecorder creates a new Prometheus metrics recorder
// using the default Prometheus registry.
func NewPrometheusMetricsRecorder() *PrometheusMetricsRecorder {
	return NewPrometheusMetricsRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsRecorderWithRegistry creates a new Prometheus metrics
// recorder with a custom registry. Use this for testing.
func NewPrometheusMetricsRecorderWithRegistry(reg prometheus.Registerer) *PrometheusMetricsRecorder {
	classificationsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "affiliation_classifications_total",
		Help: "Total attribute derivations, by source and resulting affiliation",
	}, []string{"source", "affiliation"})

	skipsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "affiliation_skips_total",
		Help: "Total expected no-op outcomes, by reason",
	}, []string{"reason"})

	faultsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "affiliation_faults_total",
		Help: "Total fatal per-request faults",
	})

	reg.MustRegister(classificationsTotal, skipsTotal, faultsTotal)

	return &PrometheusMetricsRecorder{
		classificationsTotal: classificationsTotal,
		skipsTotal:           skipsTotal,
		faultsTotal:          faultsTotal,
	}
}

// RecordClassification records a successful derivation.
func (r *PrometheusMetricsRecorder) RecordClassification(source, affiliation string) {
	r.classificationsTotal.WithLabelValues(source, affiliation).Inc()
}

// RecordSkip records an expected no-op outcome.
func (r *PrometheusMetricsRecorder) RecordSkip(reason string) {
	r.skipsTotal.WithLabelValues(reason).Inc()
}

// RecordFault records a fatal per-request fault.
func (r *PrometheusMetricsRecorder) RecordFault() {
	r.faultsTotal.Inc()
}

// Ensure PrometheusMetricsRecorder implements ports.MetricsRecorder
var _ ports.MetricsRecorder = (*PrometheusMetricsRecorder)(nil)
