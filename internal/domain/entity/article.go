// Package entity defines the core domain entities of the briefing proxy:
// the ephemeral Article scraped from the dashboard and the single persisted
// CacheRecord that gates calls to the language model.
package entity

import "strings"

// MaxSummaryChars is the number of characters of an article summary that are
// forwarded to the language model.
const MaxSummaryChars = 300

// Article represents one news card extracted from the dashboard HTML.
// It only lives for the duration of a single request and is never persisted.
type Article struct {
	Title   string
	URL     string
	Summary string
}

// IsComplete reports whether the article carries both a title and a summary.
// Incomplete articles are dropped by the extractor.
func (a Article) IsComplete() bool {
	return strings.TrimSpace(a.Title) != "" && strings.TrimSpace(a.Summary) != ""
}
