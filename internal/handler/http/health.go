// Package http provides the HTTP surface of the briefing proxy: health and
// readiness probes, the Prometheus endpoint and the middleware shared by
// every route.
package http

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"briefing-proxy/internal/domain/entity"
	"briefing-proxy/internal/handler/http/respond"
)

// Check states reported by HealthHandler.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// CacheInspector exposes the raw cache record without expiry filtering.
type CacheInspector interface {
	Load() (*entity.CacheRecord, error)
	Path() string
}

// BreakerStateReporter is implemented by generators guarded by a circuit breaker.
type BreakerStateReporter interface {
	BreakerState() string
}

// HealthHandler reports generator configuration and cache state.
// A missing credential or an open breaker marks the service degraded, not unhealthy.
type HealthHandler struct {
	Version  string
	Provider string
	// Configured is false when the provider credential is missing.
	Configured bool
	// Breaker is optional.
	Breaker BreakerStateReporter
	Cache   CacheInspector
	Now     func() time.Time
}

// ServeHTTP writes the health report. It answers 503 only when the cache
// file exists but cannot be read.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	checks := map[string]CheckStatus{
		"generator": h.checkGenerator(),
		"cache":     h.checkCache(r.Context(), now()),
	}

	status := StatusHealthy
	code := http.StatusOK
	for _, c := range checks {
		switch c.Status {
		case StatusUnhealthy:
			status = StatusUnhealthy
			code = http.StatusServiceUnavailable
		case StatusDegraded:
			if status == StatusHealthy {
				status = StatusDegraded
			}
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkGenerator() CheckStatus {
	details := map[string]any{"provider": h.Provider}
	if h.Breaker != nil {
		details["circuit_breaker"] = h.Breaker.BreakerState()
	}

	if !h.Configured {
		return CheckStatus{
			Status:  StatusDegraded,
			Message: "API key not configured",
			Details: details,
		}
	}
	if h.Breaker != nil && h.Breaker.BreakerState() == "open" {
		return CheckStatus{
			Status:  StatusDegraded,
			Message: "circuit breaker open",
			Details: details,
		}
	}
	return CheckStatus{Status: StatusHealthy, Details: details}
}

func (h *HealthHandler) checkCache(ctx context.Context, now time.Time) CheckStatus {
	if h.Cache == nil {
		return CheckStatus{Status: StatusHealthy, Message: "not configured"}
	}

	details := map[string]any{"path": h.Cache.Path()}
	record, err := h.Cache.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		details["valid"] = false
		return CheckStatus{Status: StatusHealthy, Message: "empty", Details: details}
	case err != nil:
		slog.WarnContext(ctx, "health: cache unreadable", slog.String("error", err.Error()))
		return CheckStatus{Status: StatusUnhealthy, Message: "cache file unreadable", Details: details}
	}

	details["timestamp"] = record.Timestamp.UTC().Format(time.RFC3339Nano)
	details["expires_at"] = record.ExpiresAt().UTC().Format(time.RFC3339Nano)
	details["valid"] = record.IsValidAt(now)
	return CheckStatus{Status: StatusHealthy, Details: details}
}

// ReadyHandler answers 200 once the generator can serve cache misses.
type ReadyHandler struct {
	Configured bool
}

// ServeHTTP implements http.Handler.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.Configured {
		http.Error(w, "generator not configured", http.StatusServiceUnavailable)
		return
	}
	writeText(w, "ready")
}

// LiveHandler answers 200 while the process can serve requests.
type LiveHandler struct{}

// ServeHTTP implements http.Handler.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeText(w, "alive")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Warn("failed to write probe response", slog.String("error", err.Error()))
	}
}
