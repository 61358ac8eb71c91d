package briefing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"briefing-proxy/internal/domain/entity"
	"briefing-proxy/internal/observability/logging"
	"briefing-proxy/internal/observability/metrics"
	"briefing-proxy/internal/observability/tracing"
	"briefing-proxy/internal/repository"
)

// ArticleExtractor finds news cards in dashboard HTML and renders them as prompt text.
type ArticleExtractor interface {
	Articles(htmlContent string) []entity.Article
	Format(articles []entity.Article) string
}

// Generator produces the briefing text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// HTMLRenderer converts briefing markdown to HTML for display.
type HTMLRenderer interface {
	ToHTML(markdown string) (string, error)
}

// Announcer publishes a newly generated briefing, for example to a chat webhook.
type Announcer interface {
	Announce(ctx context.Context, record *entity.CacheRecord, articleCount int) error
}

// announceTimeout bounds a background announcement.
const announceTimeout = 30 * time.Second

// Result is the outcome of a summarize request.
type Result struct {
	Summary      string
	SummaryHTML  string
	Timestamp    time.Time
	IsCached     bool
	ArticleCount int
}

// Service provides the summarize use case.
// A nil Generator means the provider credential is missing. Renderer and
// Announcer are optional.
type Service struct {
	Cache     repository.BriefingCache
	Extractor ArticleExtractor
	Generator Generator
	Renderer  HTMLRenderer
	Announcer Announcer
}

// Summarize returns the cached briefing while it is valid and otherwise
// generates, stores and returns a new one from htmlContent.
// The HTML is not inspected on a cache hit.
func (s *Service) Summarize(ctx context.Context, htmlContent string) (*Result, error) {
	ctx, span := tracing.StartSpan(ctx, "briefing.summarize")
	defer span.End()

	logger := logging.WithRequestID(ctx, slog.Default())

	if s.Generator == nil {
		metrics.RecordBriefingRequest(metrics.OutcomeNotConfigured)
		span.SetStatus(codes.Error, "generator not configured")
		return nil, ErrGeneratorNotConfigured
	}

	record, hit := s.Cache.Get(ctx)
	metrics.RecordCacheLookup(hit)
	span.SetAttributes(attribute.Bool("briefing.cache_hit", hit))
	if hit {
		metrics.RecordBriefingRequest(metrics.OutcomeCacheHit)
		logger.InfoContext(ctx, "serving cached briefing",
			slog.Time("timestamp", record.Timestamp),
			slog.Time("expires_at", record.ExpiresAt()))
		return s.result(ctx, record, true, 0), nil
	}

	if strings.TrimSpace(htmlContent) == "" {
		metrics.RecordBriefingRequest(metrics.OutcomeInvalidInput)
		return nil, ErrMissingHTML
	}

	articles := s.Extractor.Articles(htmlContent)
	metrics.RecordArticlesExtracted(len(articles))
	span.SetAttributes(attribute.Int("briefing.articles", len(articles)))
	articlesText := s.Extractor.Format(articles)
	if articlesText == "" {
		metrics.RecordBriefingRequest(metrics.OutcomeNoContent)
		logger.InfoContext(ctx, "no news cards found in dashboard HTML",
			slog.Int("html_length", len(htmlContent)))
		return nil, ErrNoContent
	}

	logger.InfoContext(ctx, "generating briefing", slog.Int("articles", len(articles)))

	summary, err := s.Generator.Generate(ctx, BuildPrompt(articlesText, len(articles)))
	if err != nil {
		metrics.RecordBriefingRequest(metrics.OutcomeGenerationFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	saved, err := s.Cache.Save(ctx, summary)
	if err != nil {
		// the caller still gets the fresh briefing; the next request regenerates
		metrics.RecordCacheWriteError()
		logger.ErrorContext(ctx, "failed to store briefing",
			slog.String("error", err.Error()))
		saved = &entity.CacheRecord{Summary: summary, Timestamp: time.Now().UTC()}
	}

	metrics.RecordBriefingRequest(metrics.OutcomeGenerated)
	s.announce(ctx, saved, len(articles))
	return s.result(ctx, saved, false, len(articles)), nil
}

// announce runs the Announcer in the background so the response never waits
// on a webhook. Failures are only logged.
func (s *Service) announce(ctx context.Context, record *entity.CacheRecord, count int) {
	if s.Announcer == nil {
		return
	}
	logger := logging.WithRequestID(ctx, slog.Default())
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), announceTimeout)
	go func() {
		defer cancel()
		if err := s.Announcer.Announce(ctx, record, count); err != nil {
			logger.Warn("failed to announce briefing", slog.String("error", err.Error()))
		}
	}()
}

func (s *Service) result(ctx context.Context, record *entity.CacheRecord, cached bool, count int) *Result {
	res := &Result{
		Summary:      record.Summary,
		Timestamp:    record.Timestamp,
		IsCached:     cached,
		ArticleCount: count,
	}
	if s.Renderer == nil {
		return res
	}

	rendered, err := s.Renderer.ToHTML(record.Summary)
	if err != nil {
		logging.WithRequestID(ctx, slog.Default()).WarnContext(ctx, "failed to render briefing HTML",
			slog.String("error", err.Error()))
		return res
	}
	res.SummaryHTML = rendered
	return res
}
