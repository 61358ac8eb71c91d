package briefing

import (
	"net/http"
)

// Register mounts the summarize endpoint. limit wraps the handler with the
// per-client rate limiter; nil leaves it unlimited.
func Register(mux *http.ServeMux, svc Summarizer, limit func(http.Handler) http.Handler) {
	var h http.Handler = SummarizeHandler{Svc: svc}
	if limit != nil {
		h = limit(h)
	}
	mux.Handle("POST /api/summarize", h)
}
