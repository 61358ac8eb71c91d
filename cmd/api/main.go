package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"briefing-proxy/internal/config"
	"briefing-proxy/internal/infra/adapter/persistence/filecache"
	"briefing-proxy/internal/infra/extractor"
	"briefing-proxy/internal/infra/formatter"
	"briefing-proxy/internal/infra/notifier"
	"briefing-proxy/internal/infra/summarizer"
	"briefing-proxy/internal/observability/logging"
	"briefing-proxy/internal/observability/tracing"
	briefUC "briefing-proxy/internal/usecase/briefing"

	hhttp "briefing-proxy/internal/handler/http"
	hbriefing "briefing-proxy/internal/handler/http/briefing"
	"briefing-proxy/internal/handler/http/middleware"
	"briefing-proxy/internal/handler/http/requestid"
)

// rateLimitCleanupInterval is how often idle client limiters are evicted.
const rateLimitCleanupInterval = time.Minute

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", slog.Any("error", err))
	}

	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := setupServer(ctx, logger, cfg)
	runServer(ctx, cancel, logger, cfg.Server, handler)
}

// initLogger initializes the default structured logger from LOG_LEVEL and LOG_FORMAT.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initGenerator builds the configured generator. A nil result means the
// credential is missing; the server still starts and reports it per request.
func initGenerator(logger *slog.Logger, cfg *config.Config) summarizer.Generator {
	if !cfg.Generator.HasCredential() {
		logger.Warn("generator API key is not set; /api/summarize will fail until it is configured",
			slog.String("provider", cfg.Generator.Provider))
		return nil
	}

	gen, err := summarizer.New(cfg.Generator, cfg.CircuitBreaker)
	if err != nil {
		logger.Error("failed to create generator", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("generator initialized",
		slog.String("provider", gen.Name()),
		slog.Duration("timeout", cfg.Generator.Timeout),
		slog.Int("max_tokens", cfg.Generator.MaxTokens))
	return gen
}

// initRateLimiter builds the per-IP limiter for the summarize route and
// starts its cleanup loop.
func initRateLimiter(ctx context.Context, logger *slog.Logger, cfg config.RateLimitConfig) *middleware.IPRateLimiter {
	trusted, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		logger.Error("failed to parse trusted proxies", slog.Any("error", err))
		os.Exit(1)
	}
	if len(trusted) > 0 {
		logger.Info("rate limiting: trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(trusted)))
	} else {
		logger.Info("rate limiting: using RemoteAddr, proxy headers ignored")
	}

	limiter := middleware.NewIPRateLimiter(middleware.IPRateLimiterConfig{
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
		Enabled:           cfg.Enabled,
	}, middleware.NewIPExtractor(trusted))

	if !cfg.Enabled {
		logger.Warn("rate limiting is DISABLED")
		return limiter
	}
	limiter.StartCleanup(ctx, rateLimitCleanupInterval)
	logger.Info("rate limiting initialized",
		slog.Float64("requests_per_second", cfg.RequestsPerSecond),
		slog.Int("burst", cfg.Burst))
	return limiter
}

// setupServer wires the use case, routes and middleware chain.
func setupServer(ctx context.Context, logger *slog.Logger, cfg *config.Config) http.Handler {
	cache := filecache.NewRecordStore(filecache.Config{
		Path: cfg.Cache.Path,
		TTL:  cfg.Cache.TTL,
	})

	gen := initGenerator(logger, cfg)

	svc := &briefUC.Service{
		Cache: cache,
		Extractor: extractor.New(extractor.Selectors{
			Item:    cfg.Extractor.ItemSelector,
			Title:   cfg.Extractor.TitleSelector,
			Summary: cfg.Extractor.SummarySelector,
		}),
		Renderer: formatter.NewMarkdown(),
	}
	// a nil *Claude stored in the interface would defeat the nil check
	if gen != nil {
		svc.Generator = gen
	}
	if cfg.Notify.Enabled() {
		n := notifier.New(cfg.Notify)
		svc.Announcer = notifier.Announcer{Notifier: n, DashboardURL: cfg.Notify.DashboardURL}
		logger.Info("briefing notifications enabled", slog.String("notifier", n.Name()))
	}

	health := &hhttp.HealthHandler{
		Version:    cfg.Server.Version,
		Provider:   cfg.Generator.Provider,
		Configured: gen != nil,
		Cache:      cache,
	}
	if reporter, ok := gen.(hhttp.BreakerStateReporter); ok {
		health.Breaker = reporter
	}

	mux := http.NewServeMux()
	hbriefing.Register(mux, svc, initRateLimiter(ctx, logger, cfg.RateLimit).Middleware)
	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Configured: gen != nil})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	registerStatic(logger, mux, cfg.Server.StaticDir)

	logger.Info("briefing cache",
		slog.String("path", cache.Path()),
		slog.Duration("ttl", cfg.Cache.TTL))

	if !cfg.Server.CSPEnabled {
		logger.Warn("CSP is disabled")
	}

	// Outermost first.
	return hhttp.Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		middleware.SecurityHeaders(middleware.SecurityHeadersConfig{
			Enabled:    cfg.Server.CSPEnabled,
			ReportOnly: cfg.Server.CSPReportOnly,
		}),
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		hhttp.InputValidation(cfg.Server.MaxBodyBytes),
	)
}

// registerStatic serves the dashboard from dir when it exists.
func registerStatic(logger *slog.Logger, mux *http.ServeMux, dir string) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Info("static directory not found, dashboard not served", slog.String("dir", dir))
		return
	}
	mux.Handle("GET /", http.FileServer(http.Dir(dir)))
	logger.Info("serving static dashboard", slog.String("dir", dir))
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	// background loops stop after in-flight requests drain
	cancel()
	logger.Info("server stopped")
}
