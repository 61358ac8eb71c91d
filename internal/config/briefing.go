// Package config assembles the runtime configuration of the briefing proxy.
// Environment variables are read once at startup and the resulting Config is
// passed explicitly to every component; business logic never reads the
// environment itself.
package config

import (
	"fmt"
	"strings"
	"time"

	envcfg "briefing-proxy/pkg/config"
)

// Supported text-generation providers.
const (
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
	ProviderNoop   = "noop"
)

// DefaultCacheTTL is how long a generated briefing is served before it is regenerated.
const DefaultCacheTTL = 4 * time.Hour

// Config holds the complete configuration of the service.
type Config struct {
	Server         ServerConfig
	Generator      GeneratorConfig
	Cache          CacheConfig
	Extractor      ExtractorConfig
	RateLimit      RateLimitConfig
	CircuitBreaker CircuitBreakerConfig
	Notify         NotifyConfig
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	// Port to listen on. Default: 3000
	Port int
	// StaticDir is served at "/" when it exists. Default: "public"
	StaticDir string
	// MaxBodyBytes caps request bodies. Default: 5 MiB
	MaxBodyBytes int64
	// ReadHeaderTimeout guards against slow clients. Default: 10s
	ReadHeaderTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown. Default: 5s
	ShutdownTimeout time.Duration
	// Version is reported by the health endpoint. Default: "dev"
	Version string
	// CSPEnabled sends Content-Security-Policy headers. Default: true
	CSPEnabled bool
	// CSPReportOnly sends the report-only header instead. Default: false
	CSPReportOnly bool
}

// Addr returns the listen address for the configured port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// GeneratorConfig holds settings for the external text-generation call.
type GeneratorConfig struct {
	// Provider is one of claude, openai or noop. Default: claude
	Provider string
	// APIKey is the provider credential. Empty means the endpoint is unconfigured.
	APIKey string
	// Model overrides the provider's default model identifier.
	Model string
	// MaxTokens caps the length of the generated briefing. Default: 1500
	MaxTokens int
	// Timeout bounds a single generation call. Default: 60s
	Timeout time.Duration
	// BaseURL overrides the provider endpoint (proxies, tests).
	BaseURL string
}

// HasCredential reports whether the generator can be constructed.
// The noop provider needs no credential.
func (g GeneratorConfig) HasCredential() bool {
	return g.Provider == ProviderNoop || g.APIKey != ""
}

// CacheConfig holds settings for the single-record briefing cache.
type CacheConfig struct {
	// Path of the JSON cache file. Default: data/briefing-cache.json
	Path string
	// TTL of a freshly written record. Default: 4h
	TTL time.Duration
}

// ExtractorConfig holds the CSS selectors used to locate news cards.
// Empty values select the extractor defaults.
type ExtractorConfig struct {
	ItemSelector    string
	TitleSelector   string
	SummarySelector string
}

// RateLimitConfig holds per-client limits for the summarize endpoint.
type RateLimitConfig struct {
	// Enabled toggles the limiter. Default: true
	Enabled bool
	// RequestsPerSecond is the sustained rate per client IP. Default: 0.2 (12/min)
	RequestsPerSecond float64
	// Burst is the number of requests a client may make at once. Default: 5
	Burst int
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For and
	// X-Real-IP headers identify the client. Empty means RemoteAddr only.
	TrustedProxies []string
}

// NotifyConfig holds the chat webhooks that announce new briefings.
// A channel is enabled by setting its URL.
type NotifyConfig struct {
	SlackWebhookURL   string
	DiscordWebhookURL string
	// Timeout bounds a single webhook request. Default: 10s
	Timeout time.Duration
	// DashboardURL is linked from notifications when set.
	DashboardURL string
}

// Enabled reports whether any webhook is configured.
func (n NotifyConfig) Enabled() bool {
	return n.SlackWebhookURL != "" || n.DiscordWebhookURL != ""
}

// CircuitBreakerConfig protects the provider from repeated failing calls.
type CircuitBreakerConfig struct {
	// MaxRequests in half-open state. Default: 1
	MaxRequests uint32
	// Interval for clearing failure counts. Default: 60s
	Interval time.Duration
	// Timeout before transitioning from open to half-open. Default: 60s
	Timeout time.Duration
	// FailureThreshold ratio to trip the circuit (0.0 to 1.0). Default: 0.6
	FailureThreshold float64
	// MinRequests before calculating the failure ratio. Default: 3
	MinRequests uint32
}

// Load reads the configuration from environment variables and validates it.
//
// Environment variables:
//   - PORT, STATIC_DIR, MAX_BODY_BYTES, READ_HEADER_TIMEOUT, SHUTDOWN_TIMEOUT, VERSION
//   - CSP_ENABLED, CSP_REPORT_ONLY
//   - GENERATOR_PROVIDER, API_KEY (or ANTHROPIC_API_KEY / OPENAI_API_KEY),
//     GENERATOR_MODEL, GENERATOR_MAX_TOKENS, GENERATOR_TIMEOUT, GENERATOR_BASE_URL
//   - CACHE_FILE, CACHE_TTL
//   - EXTRACTOR_ITEM_SELECTOR, EXTRACTOR_TITLE_SELECTOR, EXTRACTOR_SUMMARY_SELECTOR
//   - RATE_LIMIT_ENABLED, RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_TRUSTED_PROXIES
//   - GENERATOR_CB_MAX_REQUESTS, GENERATOR_CB_INTERVAL, GENERATOR_CB_TIMEOUT
//   - SLACK_WEBHOOK_URL, DISCORD_WEBHOOK_URL, NOTIFY_TIMEOUT, DASHBOARD_URL
func Load() (*Config, error) {
	provider := strings.ToLower(envcfg.GetEnvString("GENERATOR_PROVIDER", ProviderClaude))

	cfg := &Config{
		Server: ServerConfig{
			Port:              envcfg.GetEnvInt("PORT", 3000),
			StaticDir:         envcfg.GetEnvString("STATIC_DIR", "public"),
			MaxBodyBytes:      int64(envcfg.GetEnvInt("MAX_BODY_BYTES", 5<<20)),
			ReadHeaderTimeout: envcfg.GetEnvDuration("READ_HEADER_TIMEOUT", 10*time.Second),
			ShutdownTimeout:   envcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
			Version:           envcfg.GetEnvString("VERSION", "dev"),
			CSPEnabled:        envcfg.GetEnvBool("CSP_ENABLED", true),
			CSPReportOnly:     envcfg.GetEnvBool("CSP_REPORT_ONLY", false),
		},
		Generator: GeneratorConfig{
			Provider:  provider,
			APIKey:    resolveAPIKey(provider),
			Model:     envcfg.GetEnvString("GENERATOR_MODEL", ""),
			MaxTokens: envcfg.GetEnvInt("GENERATOR_MAX_TOKENS", 1500),
			Timeout:   envcfg.GetEnvDuration("GENERATOR_TIMEOUT", 60*time.Second),
			BaseURL:   envcfg.GetEnvString("GENERATOR_BASE_URL", ""),
		},
		Cache: CacheConfig{
			Path: envcfg.GetEnvString("CACHE_FILE", "data/briefing-cache.json"),
			TTL:  envcfg.GetEnvDuration("CACHE_TTL", DefaultCacheTTL),
		},
		Extractor: ExtractorConfig{
			ItemSelector:    envcfg.GetEnvString("EXTRACTOR_ITEM_SELECTOR", ""),
			TitleSelector:   envcfg.GetEnvString("EXTRACTOR_TITLE_SELECTOR", ""),
			SummarySelector: envcfg.GetEnvString("EXTRACTOR_SUMMARY_SELECTOR", ""),
		},
		RateLimit: RateLimitConfig{
			Enabled:           envcfg.GetEnvBool("RATE_LIMIT_ENABLED", true),
			RequestsPerSecond: envcfg.GetEnvFloat("RATE_LIMIT_RPS", 0.2),
			Burst:             envcfg.GetEnvInt("RATE_LIMIT_BURST", 5),
			TrustedProxies:    splitList(envcfg.GetEnvString("RATE_LIMIT_TRUSTED_PROXIES", "")),
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxRequests:      uint32(envcfg.GetEnvInt("GENERATOR_CB_MAX_REQUESTS", 1)),
			Interval:         envcfg.GetEnvDuration("GENERATOR_CB_INTERVAL", 60*time.Second),
			Timeout:          envcfg.GetEnvDuration("GENERATOR_CB_TIMEOUT", 60*time.Second),
			FailureThreshold: 0.6,
			MinRequests:      3,
		},
		Notify: NotifyConfig{
			SlackWebhookURL:   envcfg.GetEnvString("SLACK_WEBHOOK_URL", ""),
			DiscordWebhookURL: envcfg.GetEnvString("DISCORD_WEBHOOK_URL", ""),
			Timeout:           envcfg.GetEnvDuration("NOTIFY_TIMEOUT", 10*time.Second),
			DashboardURL:      envcfg.GetEnvString("DASHBOARD_URL", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// resolveAPIKey prefers the generic API_KEY and falls back to the
// provider-specific variable.
func resolveAPIKey(provider string) string {
	if key := envcfg.GetEnvString("API_KEY", ""); key != "" {
		return key
	}
	switch provider {
	case ProviderOpenAI:
		return envcfg.GetEnvString("OPENAI_API_KEY", "")
	default:
		return envcfg.GetEnvString("ANTHROPIC_API_KEY", "")
	}
}

// Validate checks configuration correctness.
// A missing API key is deliberately not a validation error: the server still
// starts and the summarize endpoint reports the misconfiguration per request.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}

	switch c.Generator.Provider {
	case ProviderClaude, ProviderOpenAI, ProviderNoop:
	default:
		return fmt.Errorf("GENERATOR_PROVIDER must be one of %s, %s, %s: got %q",
			ProviderClaude, ProviderOpenAI, ProviderNoop, c.Generator.Provider)
	}

	if c.Generator.MaxTokens <= 0 {
		return fmt.Errorf("GENERATOR_MAX_TOKENS must be positive")
	}

	if c.Cache.Path == "" {
		return fmt.Errorf("CACHE_FILE cannot be empty")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("RATE_LIMIT_RPS must be positive")
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("RATE_LIMIT_BURST must be positive")
		}
	}

	if c.Notify.Enabled() {
		if err := envcfg.ValidatePositiveDuration("NOTIFY_TIMEOUT", c.Notify.Timeout); err != nil {
			return err
		}
	}

	if c.CircuitBreaker.MaxRequests == 0 {
		return fmt.Errorf("GENERATOR_CB_MAX_REQUESTS must be positive")
	}

	durations := []struct {
		key string
		d   time.Duration
	}{
		{"GENERATOR_TIMEOUT", c.Generator.Timeout},
		{"CACHE_TTL", c.Cache.TTL},
		{"READ_HEADER_TIMEOUT", c.Server.ReadHeaderTimeout},
		{"SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout},
		{"GENERATOR_CB_INTERVAL", c.CircuitBreaker.Interval},
		{"GENERATOR_CB_TIMEOUT", c.CircuitBreaker.Timeout},
	}
	for _, d := range durations {
		if err := envcfg.ValidatePositiveDuration(d.key, d.d); err != nil {
			return err
		}
	}

	return nil
}
