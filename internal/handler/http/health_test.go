package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing-proxy/internal/domain/entity"
)

type fakeCache struct {
	record *entity.CacheRecord
	err    error
}

func (f fakeCache) Load() (*entity.CacheRecord, error) { return f.record, f.err }
func (f fakeCache) Path() string                       { return "data/briefing-cache.json" }

type fakeBreaker string

func (f fakeBreaker) BreakerState() string { return string(f) }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	fresh := entity.NewCacheRecord("s", now.Add(-time.Hour), 4*time.Hour)

	tests := []struct {
		name           string
		handler        *HealthHandler
		expectedStatus int
		expectedState  string
		check          func(t *testing.T, resp HealthResponse)
	}{
		{
			name:           "configured with valid cache",
			handler:        &HealthHandler{Configured: true, Provider: "claude", Breaker: fakeBreaker("closed"), Cache: fakeCache{record: fresh}},
			expectedStatus: http.StatusOK,
			expectedState:  StatusHealthy,
			check: func(t *testing.T, resp HealthResponse) {
				assert.Equal(t, true, resp.Checks["cache"].Details["valid"])
				assert.Equal(t, "closed", resp.Checks["generator"].Details["circuit_breaker"])
			},
		},
		{
			name:           "missing key is degraded",
			handler:        &HealthHandler{Configured: false, Provider: "claude", Cache: fakeCache{err: fmt.Errorf("read: %w", fs.ErrNotExist)}},
			expectedStatus: http.StatusOK,
			expectedState:  StatusDegraded,
			check: func(t *testing.T, resp HealthResponse) {
				assert.Equal(t, "API key not configured", resp.Checks["generator"].Message)
				assert.Equal(t, "empty", resp.Checks["cache"].Message)
			},
		},
		{
			name:           "open breaker is degraded",
			handler:        &HealthHandler{Configured: true, Provider: "openai", Breaker: fakeBreaker("open")},
			expectedStatus: http.StatusOK,
			expectedState:  StatusDegraded,
		},
		{
			name:           "unreadable cache is unhealthy",
			handler:        &HealthHandler{Configured: true, Provider: "noop", Cache: fakeCache{err: errors.New("decode cache file: unexpected EOF")}},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.handler.Version = "test-version"
			tt.handler.Now = func() time.Time { return now }

			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedState, resp.Status)
			assert.Equal(t, "test-version", resp.Version)
			assert.Equal(t, "2026-05-01T12:00:00Z", resp.Timestamp)
			if tt.check != nil {
				tt.check(t, resp)
			}
		})
	}
}

func TestReadyHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	(&ReadyHandler{Configured: true}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", rec.Body.String())

	rec = httptest.NewRecorder()
	(&ReadyHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLiveHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
}
