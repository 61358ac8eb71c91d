// Package summarizer adapts text-generation providers (Anthropic Claude,
// OpenAI) to a single Generate call guarded by a circuit breaker, a per-call
// timeout, a tracing span and Prometheus metrics. Calls are never retried.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"briefing-proxy/internal/observability/logging"
	"briefing-proxy/internal/observability/tracing"
	"briefing-proxy/internal/resilience/circuitbreaker"
	"briefing-proxy/internal/utils/text"
)

var (
	// ErrEmptyResponse is returned when the provider answers without any text.
	ErrEmptyResponse = errors.New("provider returned empty response")
	// ErrCircuitOpen is returned while the breaker rejects calls.
	ErrCircuitOpen = errors.New("provider unavailable: circuit breaker open")
)

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Name identifies the provider in logs, metrics and health output.
	Name() string
}

type callFunc func(ctx context.Context, prompt string) (string, error)

// runner holds the cross-cutting concerns shared by the remote providers.
type runner struct {
	provider string
	model    string
	timeout  time.Duration
	breaker  *circuitbreaker.CircuitBreaker
	metrics  MetricsRecorder
}

func newRunner(provider string, opts Options) runner {
	return runner{
		provider: provider,
		model:    opts.Model,
		timeout:  opts.Timeout,
		breaker:  circuitbreaker.New(opts.Breaker),
		metrics:  opts.Metrics,
	}
}

func (r runner) run(ctx context.Context, prompt string, call callFunc) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ctx, span := tracing.StartSpan(ctx, "generator.generate",
		attribute.String("generator.provider", r.provider),
		attribute.String("generator.model", r.model),
		attribute.Int("generator.prompt_length", text.CountRunes(prompt)))
	defer span.End()

	logger := logging.WithRequestID(ctx, slog.Default()).With(
		slog.String("provider", r.provider),
		slog.String("model", r.model))
	logger.DebugContext(ctx, "generation started",
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()
	result, err := r.breaker.Execute(func() (interface{}, error) {
		out, err := call(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(out) == "" {
			return nil, ErrEmptyResponse
		}
		return out, nil
	})
	duration := time.Since(start)

	if err != nil {
		r.metrics.RecordGeneration(r.provider, duration, false)
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")

		if circuitbreaker.IsRejection(err) {
			logger.WarnContext(ctx, "generation rejected by circuit breaker",
				slog.String("state", r.breaker.State().String()))
			return "", fmt.Errorf("%s: %w", r.provider, ErrCircuitOpen)
		}

		logger.ErrorContext(ctx, "generation failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("%s api error: %w", r.provider, err)
	}

	summary := result.(string)
	length := text.CountRunes(summary)
	r.metrics.RecordGeneration(r.provider, duration, true)
	r.metrics.RecordGenerationLength(r.provider, length)
	span.SetAttributes(attribute.Int("generator.output_length", length))

	logger.InfoContext(ctx, "generation completed",
		slog.Int("output_length", length),
		slog.Duration("duration", duration))

	return summary, nil
}

// BreakerState reports the circuit breaker state (closed, half-open or open).
func (r runner) BreakerState() string {
	return r.breaker.State().String()
}
