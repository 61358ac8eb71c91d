// Package requestid assigns every HTTP request an identifier that travels in the
// X-Request-ID header and the request context so log lines can be correlated.
package requestid

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDKey is the context key for storing request IDs.
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader is the HTTP header name for request IDs.
	RequestIDHeader = "X-Request-ID"

	maxInboundLength = 128
)

// Inbound IDs are echoed into logs and headers, so only a conservative charset is accepted.
var inboundPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]+$`)

// FromContext retrieves the request ID from the context.
// Returns an empty string if no request ID is found.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// New returns a fresh UUID v4 request ID.
func New() string {
	return uuid.NewString()
}

// IsValid reports whether a client-supplied ID can be propagated as-is.
func IsValid(id string) bool {
	return id != "" && len(id) <= maxInboundLength && inboundPattern.MatchString(id)
}

// Middleware propagates a well-formed X-Request-ID header or generates a new one,
// then exposes it on the response and in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !IsValid(id) {
			id = New()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
