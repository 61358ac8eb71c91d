// Package briefing provides the HTTP handler for the summarize endpoint.
package briefing

import "time"

// TimestampLayout renders timestamps as ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// SummarizeRequest is the JSON body of POST /api/summarize.
type SummarizeRequest struct {
	HTMLContent string `json:"htmlContent"`
}

// SummarizeResponse is the JSON body of a successful summarize call.
type SummarizeResponse struct {
	Summary      string `json:"summary" example:"## Overview\n..."`
	SummaryHTML  string `json:"summaryHtml,omitempty" example:"<h2>Overview</h2>"`
	Timestamp    string `json:"timestamp" example:"2026-03-01T09:00:00.000Z"`
	IsCached     bool   `json:"isCached" example:"false"`
	ArticleCount int    `json:"articleCount,omitempty" example:"12"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
