// Package csp builds Content-Security-Policy header values.
package csp

import (
	"strings"
)

// Header names for enforcing and report-only policies.
const (
	HeaderEnforce    = "Content-Security-Policy"
	HeaderReportOnly = "Content-Security-Policy-Report-Only"
)

// directiveOrder fixes the rendering order so the header is stable.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
}

// Policy is a Content-Security-Policy under construction.
//
//	p := csp.New().
//	    Directive("default-src", "'self'").
//	    Directive("img-src", "'self'", "https:")
//	w.Header().Set(p.HeaderName(), p.String())
//
// A Policy is not safe for concurrent modification; build it once at startup.
type Policy struct {
	directives map[string][]string
	reportOnly bool
}

// New returns an empty policy.
func New() *Policy {
	return &Policy{directives: make(map[string][]string)}
}

// Directive sets the sources for one directive, replacing earlier values.
// Directives outside the known set are ignored.
func (p *Policy) Directive(name string, sources ...string) *Policy {
	for _, known := range directiveOrder {
		if known == name {
			p.directives[name] = sources
			return p
		}
	}
	return p
}

// ReportOnly switches the policy to the report-only header.
func (p *Policy) ReportOnly(enabled bool) *Policy {
	p.reportOnly = enabled
	return p
}

// HeaderName returns the header the policy should be sent under.
func (p *Policy) HeaderName() string {
	if p.reportOnly {
		return HeaderReportOnly
	}
	return HeaderEnforce
}

// String renders the policy, for example
// "default-src 'self'; img-src 'self' https:".
func (p *Policy) String() string {
	parts := make([]string, 0, len(p.directives))
	for _, name := range directiveOrder {
		if sources := p.directives[name]; len(sources) > 0 {
			parts = append(parts, name+" "+strings.Join(sources, " "))
		}
	}
	return strings.Join(parts, "; ")
}

// DashboardPolicy suits the static dashboard. The rendered briefing is
// sanitized HTML, so no inline script is allowed; inline styles and
// remote images from news sources are.
func DashboardPolicy() *Policy {
	return New().
		Directive("default-src", "'self'").
		Directive("script-src", "'self'").
		Directive("style-src", "'self'", "'unsafe-inline'").
		Directive("img-src", "'self'", "data:", "https:").
		Directive("connect-src", "'self'").
		Directive("frame-ancestors", "'none'").
		Directive("base-uri", "'self'").
		Directive("form-action", "'self'").
		Directive("object-src", "'none'")
}

// APIPolicy is a deny-all policy for JSON endpoints.
func APIPolicy() *Policy {
	return New().
		Directive("default-src", "'none'").
		Directive("frame-ancestors", "'none'")
}
