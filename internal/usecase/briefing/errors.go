// Package briefing orchestrates one summarize request: consult the cache,
// extract news cards from the dashboard HTML, ask the generator for a
// strategic summary and store the result.
package briefing

import "errors"

// Sentinel errors for briefing use case operations.
var (
	// ErrGeneratorNotConfigured indicates that no provider credential is set.
	// It is reported before the cache is consulted.
	ErrGeneratorNotConfigured = errors.New("summarization is not configured: API key is missing")

	// ErrMissingHTML indicates that the request carried no HTML to extract from.
	ErrMissingHTML = errors.New("htmlContent is required")

	// ErrNoContent indicates that the HTML contained no complete news card.
	ErrNoContent = errors.New("no content to summarize")

	// ErrGenerationFailed wraps any failure of the external generator.
	ErrGenerationFailed = errors.New("failed to generate summary")
)
