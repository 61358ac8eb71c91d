// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package. Output is JSON on
// stdout by default; LOG_FORMAT=text switches to the human-readable handler for
// local development and LOG_LEVEL selects the minimum level.
//
// Example usage:
//
//	logger := logging.NewLogger()
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.WithRequestID(ctx, slog.Default()).Info("processing request")
//	}
package logging
