package metrics

import "time"

// Outcomes recorded by RecordBriefingRequest.
const (
	OutcomeCacheHit         = "cache_hit"
	OutcomeGenerated        = "generated"
	OutcomeInvalidInput     = "invalid_input"
	OutcomeNoContent        = "no_content"
	OutcomeNotConfigured    = "not_configured"
	OutcomeGenerationFailed = "generation_failed"
)

// RecordBriefingRequest records the outcome of one summarize request.
func RecordBriefingRequest(outcome string) {
	BriefingRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordCacheLookup records whether the briefing cache was hit.
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	BriefingCacheLookupsTotal.WithLabelValues(result).Inc()
}

// RecordCacheWriteError records a failed cache write.
func RecordCacheWriteError() {
	BriefingCacheWriteErrorsTotal.Inc()
}

// RecordArticlesExtracted records how many news cards were extracted.
func RecordArticlesExtracted(count int) {
	BriefingArticlesExtracted.Observe(float64(count))
}

// RecordGeneration records the latency and result of a provider call.
func RecordGeneration(provider string, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	GenerationDuration.WithLabelValues(provider, status).Observe(duration.Seconds())
}

// RecordGenerationLength records the length of a generated briefing in characters.
func RecordGenerationLength(provider string, length int) {
	GenerationLength.WithLabelValues(provider).Observe(float64(length))
}

// RecordRateLimitRejection records a request rejected with 429.
func RecordRateLimitRejection(path string) {
	RateLimitRejectionsTotal.WithLabelValues(path).Inc()
}

// SetRateLimitTrackedClients records the number of tracked client IPs.
func SetRateLimitTrackedClients(n int) {
	RateLimitTrackedClients.Set(float64(n))
}

// RecordNotification records a webhook notification attempt.
func RecordNotification(channel string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	NotificationsTotal.WithLabelValues(channel, result).Inc()
}
