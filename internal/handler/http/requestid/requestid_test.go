package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing-proxy/internal/handler/http/requestid"
)

func TestFromContext(t *testing.T) {
	assert.Empty(t, requestid.FromContext(context.Background()))

	ctx := requestid.WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", requestid.FromContext(ctx))
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"uuid", "3f0c8e9e-5f51-4d8b-9d7c-0a8c1d2e3f4a", true},
		{"dotted", "edge.proxy:42_a", true},
		{"empty", "", false},
		{"spaces", "has space", false},
		{"newline injection", "abc\r\nX-Evil: 1", false},
		{"too long", strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requestid.IsValid(tt.id))
		})
	}
}

func TestMiddleware_GeneratesID(t *testing.T) {
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/summarize", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(requestid.RequestIDHeader))
}

func TestMiddleware_PropagatesValidHeader(t *testing.T) {
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestid.RequestIDHeader, "client-req-7")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "client-req-7", seen)
	assert.Equal(t, "client-req-7", rec.Header().Get(requestid.RequestIDHeader))
}

func TestMiddleware_ReplacesMalformedHeader(t *testing.T) {
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestid.RequestIDHeader, "<script>")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotEqual(t, "<script>", seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}
