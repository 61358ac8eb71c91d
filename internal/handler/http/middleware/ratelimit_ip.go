// Package middleware holds HTTP middleware specific to individual routes.
package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"briefing-proxy/internal/handler/http/respond"
	"briefing-proxy/internal/observability/metrics"
)

// IPRateLimiterConfig holds configuration for the IP-based rate limiter.
type IPRateLimiterConfig struct {
	// RequestsPerSecond is the sustained rate allowed per client IP.
	RequestsPerSecond float64
	// Burst is the number of requests a client may make at once.
	Burst int
	// Enabled controls whether rate limiting is active.
	Enabled bool
	// IdleTTL is how long an idle client's limiter is kept. Default: 10m
	IdleTTL time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter applies a token bucket per client IP.
type IPRateLimiter struct {
	config      IPRateLimiterConfig
	ipExtractor IPExtractor
	now         func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

// NewIPRateLimiter creates a limiter. A nil extractor uses RemoteAddr.
func NewIPRateLimiter(config IPRateLimiterConfig, ipExtractor IPExtractor) *IPRateLimiter {
	if config.IdleTTL <= 0 {
		config.IdleTTL = 10 * time.Minute
	}
	if ipExtractor == nil {
		ipExtractor = &RemoteAddrExtractor{}
	}
	return &IPRateLimiter{
		config:      config,
		ipExtractor: ipExtractor,
		now:         time.Now,
		clients:     make(map[string]*clientLimiter),
	}
}

// Allow reports whether a request from ip may proceed now.
func (rl *IPRateLimiter) Allow(ip string) bool {
	return rl.limiterFor(ip).AllowN(rl.now(), 1)
}

func (rl *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if c, ok := rl.clients[ip]; ok {
		c.lastSeen = now
		return c.limiter
	}

	l := rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.Burst)
	rl.clients[ip] = &clientLimiter{limiter: l, lastSeen: now}
	metrics.SetRateLimitTrackedClients(len(rl.clients))
	return l
}

// Cleanup drops limiters idle for longer than IdleTTL and returns how many were removed.
func (rl *IPRateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.config.IdleTTL)
	removed := 0
	for ip, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
			removed++
		}
	}
	metrics.SetRateLimitTrackedClients(len(rl.clients))
	return removed
}

// Tracked returns the number of client IPs with a live limiter.
func (rl *IPRateLimiter) Tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// StartCleanup runs Cleanup every interval until ctx is cancelled.
func (rl *IPRateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := rl.Cleanup(); n > 0 {
					slog.Debug("rate limiter cleanup", slog.Int("removed", n))
				}
			}
		}
	}()
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
// Requests whose client IP cannot be determined are allowed.
func (rl *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.config.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		ip, err := rl.ipExtractor.ExtractIP(r)
		if err != nil {
			slog.Error("rate limiter: failed to extract IP, allowing request",
				slog.String("error", err.Error()),
				slog.String("remote_addr", r.RemoteAddr))
			next.ServeHTTP(w, r)
			return
		}

		if !rl.Allow(ip) {
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			metrics.RecordRateLimitRejection(r.URL.Path)
			slog.Warn("rate limit exceeded",
				slog.String("ip", ip),
				slog.String("path", r.URL.Path),
				slog.String("method", r.Method))
			respond.Message(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *IPRateLimiter) retryAfterSeconds() int {
	if rl.config.RequestsPerSecond <= 0 {
		return 1
	}
	return max(int(math.Ceil(1/rl.config.RequestsPerSecond)), 1)
}
