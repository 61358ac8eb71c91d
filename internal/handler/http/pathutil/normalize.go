// Package pathutil maps request paths to a bounded set of metric labels.
package pathutil

import "strings"

// Labels for paths that are not API routes.
const (
	StaticLabel     = "/static"
	UnknownAPILabel = "/api/:unknown"
)

var knownRoutes = map[string]struct{}{
	"/":              {},
	"/api/summarize": {},
	"/health":        {},
	"/ready":         {},
	"/live":          {},
	"/metrics":       {},
}

// NormalizePath returns path unchanged for known routes. Other /api/ paths
// collapse to UnknownAPILabel and everything else is treated as a static asset.
//
// Examples:
//
//	NormalizePath("/api/summarize")   // "/api/summarize"
//	NormalizePath("/health/")         // "/health"
//	NormalizePath("/api/v2/other")    // "/api/:unknown"
//	NormalizePath("/assets/app.js")   // "/static"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}

	if _, ok := knownRoutes[path]; ok {
		return path
	}
	if path == "/api" || strings.HasPrefix(path, "/api/") {
		return UnknownAPILabel
	}
	return StaticLabel
}
