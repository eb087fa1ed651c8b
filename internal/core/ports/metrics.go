package ports

// MetricsRecorder is the port interface for recording enrichment metrics.
// Implementations are adapters (PrometheusMetricsRecorder for production,
// NoopMetricsRecorder for disabled/testing).
type MetricsRecorder interface {
	// RecordClassification records a successful derivation.
	// source is "scoped_affiliation" or "metadata"; affiliation is the
	// primary-affiliation value written ("" for organization-only writes).
	RecordClassification(source, affiliation string)

	// RecordSkip records an expected no-op outcome, labeled by reason
	// (e.g. "requesting_party_excluded", "no_source_attribute").
	RecordSkip(reason string)

	// RecordFault records a fatal per-request fault.
	RecordFault()
}
