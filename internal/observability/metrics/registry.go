package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	// Buckets extend to 60s because a cache miss waits on the provider.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestSize measures HTTP request body size in bytes
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInFlight tracks the current number of requests being served
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Briefing metrics track the cache gate and the provider call
var (
	// BriefingRequestsTotal counts summarize requests by outcome
	// (cache_hit, generated, invalid_input, no_content, not_configured, generation_failed).
	BriefingRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "briefing_requests_total",
			Help: "Total number of briefing requests by outcome",
		},
		[]string{"outcome"},
	)

	// BriefingCacheLookupsTotal counts cache lookups by result (hit or miss)
	BriefingCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "briefing_cache_lookups_total",
			Help: "Total number of briefing cache lookups by result",
		},
		[]string{"result"},
	)

	// BriefingCacheWriteErrorsTotal counts failed cache writes
	BriefingCacheWriteErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "briefing_cache_write_errors_total",
			Help: "Total number of failed briefing cache writes",
		},
	)

	// BriefingArticlesExtracted observes the number of articles found per request
	BriefingArticlesExtracted = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "briefing_articles_extracted",
			Help:    "Number of news cards extracted from the dashboard per request",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)

	// GenerationDuration measures provider call latency
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "briefing_generation_duration_seconds",
			Help:    "Time taken by the text-generation provider to produce a briefing",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 8),
		},
		[]string{"provider", "status"},
	)

	// GenerationLength observes the length of generated briefings in characters
	GenerationLength = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "briefing_generation_length_characters",
			Help:    "Distribution of generated briefing lengths in characters",
			Buckets: []float64{250, 500, 1000, 2000, 4000, 8000},
		},
		[]string{"provider"},
	)
)

// Rate limit metrics track requests rejected by the per-client limiter
var (
	// RateLimitRejectionsTotal counts requests answered with 429 by path
	RateLimitRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"path"},
	)

	// RateLimitTrackedClients tracks the number of client IPs with a live limiter
	RateLimitTrackedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limit_tracked_clients",
			Help: "Number of client IPs currently tracked by the rate limiter",
		},
	)
)

// Notification metrics track webhook announcements of new briefings
var (
	// NotificationsTotal counts webhook notifications by channel and result (success or failure)
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "briefing_notifications_total",
			Help: "Total number of briefing notifications sent by channel and result",
		},
		[]string{"channel", "result"},
	)
)
