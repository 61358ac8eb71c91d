package http

import (
	"net/http"

	"briefing-proxy/internal/handler/http/respond"
)

// MaxPathLength bounds the request path.
const MaxPathLength = 2048

// InputValidation returns middleware that rejects oversized paths with 414
// and caps request bodies at maxBodyBytes. Handlers see a body read error
// of type *http.MaxBytesError once the cap is exceeded.
func InputValidation(maxBodyBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > MaxPathLength {
				respond.Message(w, http.StatusRequestURITooLong, "URI too long")
				return
			}

			if r.Body != nil && maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}

			next.ServeHTTP(w, r)
		})
	}
}
