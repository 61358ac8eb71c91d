package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPRateLimiter_BurstThenReject(t *testing.T) {
	rl := NewIPRateLimiter(IPRateLimiterConfig{RequestsPerSecond: 0.2, Burst: 2, Enabled: true}, nil)
	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }
	h := rl.Middleware(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(h, "192.0.2.1:1000").Code)
	assert.Equal(t, http.StatusOK, doRequest(h, "192.0.2.1:1001").Code)

	rec := doRequest(h, "192.0.2.1:1002")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("Retry-After"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rate limit exceeded", body["error"])

	// a different client has its own bucket
	assert.Equal(t, http.StatusOK, doRequest(h, "192.0.2.2:1000").Code)
}

func TestIPRateLimiter_Refills(t *testing.T) {
	rl := NewIPRateLimiter(IPRateLimiterConfig{RequestsPerSecond: 1, Burst: 1, Enabled: true}, nil)
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	assert.True(t, rl.Allow("192.0.2.1"))
	assert.False(t, rl.Allow("192.0.2.1"))

	current = current.Add(1100 * time.Millisecond)
	assert.True(t, rl.Allow("192.0.2.1"))
}

func TestIPRateLimiter_Disabled(t *testing.T) {
	rl := NewIPRateLimiter(IPRateLimiterConfig{RequestsPerSecond: 0.001, Burst: 1, Enabled: false}, nil)
	h := rl.Middleware(okHandler())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(h, "192.0.2.1:1000").Code)
	}
	assert.Zero(t, rl.Tracked())
}

func TestIPRateLimiter_UnknownClientAllowed(t *testing.T) {
	rl := NewIPRateLimiter(IPRateLimiterConfig{RequestsPerSecond: 0.001, Burst: 1, Enabled: true}, nil)
	h := rl.Middleware(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(h, "garbage").Code)
	assert.Equal(t, http.StatusOK, doRequest(h, "garbage").Code)
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	rl := NewIPRateLimiter(IPRateLimiterConfig{RequestsPerSecond: 1, Burst: 1, Enabled: true, IdleTTL: time.Minute}, nil)
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	rl.Allow("192.0.2.1")
	current = current.Add(30 * time.Second)
	rl.Allow("192.0.2.2")
	current = current.Add(45 * time.Second)

	assert.Equal(t, 1, rl.Cleanup())
	assert.Equal(t, 1, rl.Tracked())
}
