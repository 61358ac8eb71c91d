package middleware

import (
	"net/http"
	"strings"

	"briefing-proxy/pkg/security/csp"
)

// SecurityHeadersConfig selects the policies applied by SecurityHeaders.
type SecurityHeadersConfig struct {
	// Enabled toggles the Content-Security-Policy header. The nosniff and
	// referrer headers are always sent.
	Enabled bool
	// ReportOnly sends both policies under the report-only header.
	ReportOnly bool
	// Dashboard applies to everything outside /api/. Default: csp.DashboardPolicy
	Dashboard *csp.Policy
	// API applies to /api/ routes. Default: csp.APIPolicy
	API *csp.Policy
}

type renderedPolicy struct {
	header string
	value  string
}

func render(p *csp.Policy, reportOnly bool) renderedPolicy {
	p.ReportOnly(reportOnly)
	return renderedPolicy{header: p.HeaderName(), value: p.String()}
}

// SecurityHeaders sets Content-Security-Policy and related headers.
// Policies are rendered once when the middleware is built.
func SecurityHeaders(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	if cfg.Dashboard == nil {
		cfg.Dashboard = csp.DashboardPolicy()
	}
	if cfg.API == nil {
		cfg.API = csp.APIPolicy()
	}
	dashboard := render(cfg.Dashboard, cfg.ReportOnly)
	api := render(cfg.API, cfg.ReportOnly)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if cfg.Enabled {
				policy := dashboard
				if strings.HasPrefix(r.URL.Path, "/api/") {
					policy = api
				}
				if policy.value != "" {
					h.Set(policy.header, policy.value)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
