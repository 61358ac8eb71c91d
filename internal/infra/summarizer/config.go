package summarizer

import (
	"errors"
	"fmt"
	"time"

	"briefing-proxy/internal/resilience/circuitbreaker"
)

const (
	// DefaultMaxTokens caps the briefing length when none is configured.
	DefaultMaxTokens = 1500
	// DefaultTimeout bounds a single provider call when none is configured.
	DefaultTimeout = 60 * time.Second
)

// ErrMissingAPIKey is returned when a remote provider is constructed without a credential.
var ErrMissingAPIKey = errors.New("api key is required")

// Options configures a remote generator.
type Options struct {
	// APIKey is the provider credential.
	APIKey string
	// Model overrides the provider default model.
	Model string
	// MaxTokens caps the generated output.
	MaxTokens int
	// Timeout bounds each call, on top of the caller's context.
	Timeout time.Duration
	// BaseURL overrides the provider endpoint.
	BaseURL string
	// Breaker configures the circuit breaker. The zero value selects
	// circuitbreaker.GeneratorConfig.
	Breaker circuitbreaker.Config
	// Metrics receives per-call measurements. Nil selects Prometheus.
	Metrics MetricsRecorder
}

func (o Options) withDefaults(provider, model string) Options {
	if o.Model == "" {
		o.Model = model
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Breaker.Name == "" {
		name := provider + "-api"
		if o.Breaker.MaxRequests == 0 {
			o.Breaker = circuitbreaker.GeneratorConfig(name)
		} else {
			o.Breaker.Name = name
		}
	}
	if o.Metrics == nil {
		o.Metrics = PrometheusMetrics{}
	}
	return o
}

// Validate checks the options after defaults have been applied.
func (o Options) Validate() error {
	if o.APIKey == "" {
		return ErrMissingAPIKey
	}
	if o.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if o.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", o.MaxTokens)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", o.Timeout)
	}
	return nil
}
