package summarizer

import (
	"time"

	"briefing-proxy/internal/observability/metrics"
)

// MetricsRecorder receives measurements for every provider call.
// Tests inject a fake; production uses PrometheusMetrics.
type MetricsRecorder interface {
	// RecordGeneration records the latency and outcome of one call.
	RecordGeneration(provider string, duration time.Duration, success bool)
	// RecordGenerationLength records the length of a generated briefing in characters.
	RecordGenerationLength(provider string, length int)
}

// PrometheusMetrics records into the process-wide Prometheus registry.
type PrometheusMetrics struct{}

// RecordGeneration implements MetricsRecorder.
func (PrometheusMetrics) RecordGeneration(provider string, duration time.Duration, success bool) {
	metrics.RecordGeneration(provider, duration, success)
}

// RecordGenerationLength implements MetricsRecorder.
func (PrometheusMetrics) RecordGenerationLength(provider string, length int) {
	metrics.RecordGenerationLength(provider, length)
}
