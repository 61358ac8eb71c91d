package summarizer

import (
	"fmt"

	"briefing-proxy/internal/config"
	"briefing-proxy/internal/resilience/circuitbreaker"
)

// Provider names reported by Generator.Name.
const (
	ProviderNameClaude = config.ProviderClaude
	ProviderNameOpenAI = config.ProviderOpenAI
	ProviderNameNoop   = config.ProviderNoop
)

// New builds the generator selected by cfg.Provider.
// It returns ErrMissingAPIKey when a remote provider has no credential.
func New(cfg config.GeneratorConfig, cb config.CircuitBreakerConfig) (Generator, error) {
	opts := Options{
		APIKey:    cfg.APIKey,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		Timeout:   cfg.Timeout,
		BaseURL:   cfg.BaseURL,
		Breaker: circuitbreaker.Config{
			MaxRequests:      cb.MaxRequests,
			Interval:         cb.Interval,
			Timeout:          cb.Timeout,
			FailureThreshold: cb.FailureThreshold,
			MinRequests:      cb.MinRequests,
		},
	}

	switch cfg.Provider {
	case ProviderNameClaude:
		g, err := NewClaude(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderNameOpenAI:
		g, err := NewOpenAI(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderNameNoop:
		return NewNoOp(), nil
	default:
		return nil, fmt.Errorf("unknown generator provider %q", cfg.Provider)
	}
}
