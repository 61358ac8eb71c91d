package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"briefing-proxy/pkg/security/csp"
)

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestSecurityHeaders_PolicyPerRoute(t *testing.T) {
	h := SecurityHeaders(SecurityHeadersConfig{Enabled: true})(okHandler())

	api := serve(h, "/api/summarize")
	assert.Equal(t, csp.APIPolicy().String(), api.Header().Get(csp.HeaderEnforce))
	assert.Equal(t, "nosniff", api.Header().Get("X-Content-Type-Options"))

	page := serve(h, "/index.html")
	assert.Equal(t, csp.DashboardPolicy().String(), page.Header().Get(csp.HeaderEnforce))
	assert.Empty(t, page.Header().Get(csp.HeaderReportOnly))
}

func TestSecurityHeaders_ReportOnly(t *testing.T) {
	h := SecurityHeaders(SecurityHeadersConfig{
		Enabled:    true,
		ReportOnly: true,
	})(okHandler())

	rr := serve(h, "/")

	assert.Empty(t, rr.Header().Get(csp.HeaderEnforce))
	assert.Equal(t, csp.DashboardPolicy().String(), rr.Header().Get(csp.HeaderReportOnly))
}

func TestSecurityHeaders_Disabled(t *testing.T) {
	h := SecurityHeaders(SecurityHeadersConfig{})(okHandler())

	rr := serve(h, "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get(csp.HeaderEnforce))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestSecurityHeaders_CustomPolicy(t *testing.T) {
	custom := csp.New().Directive("default-src", "'self'", "https://cdn.example.com")
	h := SecurityHeaders(SecurityHeadersConfig{
		Enabled:   true,
		Dashboard: custom,
	})(okHandler())

	rr := serve(h, "/")

	assert.Equal(t, "default-src 'self' https://cdn.example.com", rr.Header().Get(csp.HeaderEnforce))
}
