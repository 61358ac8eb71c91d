// Package tracing provides OpenTelemetry tracing integration.
//
// Spans are created through the global tracer provider. Without an SDK
// provider installed the spans are no-ops, so the middleware is safe to keep
// in the chain unconditionally.
//
// Example usage:
//
//	handler := tracing.Middleware(mux)
//
//	ctx, span := tracing.StartSpan(ctx, "briefing.generate")
//	defer span.End()
package tracing
