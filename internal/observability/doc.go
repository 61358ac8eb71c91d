// Package observability groups the logging, metrics and tracing support of the
// briefing proxy.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus collectors for HTTP traffic and briefing generation
//   - tracing: OpenTelemetry spans for inbound requests and provider calls
package observability
