package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"briefing-proxy/internal/observability/metrics"
	"briefing-proxy/internal/utils/text"
)

// NotificationIDHeader carries a per-notification ID for correlating logs.
const NotificationIDHeader = "X-Notification-ID"

// RateLimitError is returned for a 429 response.
type RateLimitError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s (retry after %v)", e.Message, e.RetryAfter)
}

// ClientError is returned for any other 4xx response.
type ClientError struct {
	StatusCode int
	Message    string
}

func (e *ClientError) Error() string { return e.Message }

// ServerError is returned for a 5xx response.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }

// webhook is the transport shared by the Slack and Discord notifiers.
type webhook struct {
	service    string
	url        string
	httpClient *http.Client
	limiter    *RateLimiter
}

func newWebhook(service, url string, timeout time.Duration, limiter *RateLimiter) webhook {
	return webhook{
		service:    service,
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
	}
}

// post sends payload as JSON once, after waiting for the rate limiter.
func (w webhook) post(ctx context.Context, payload any) (err error) {
	defer func() { metrics.RecordNotification(w.service, err == nil) }()

	id := uuid.NewString()
	logger := slog.Default().With(
		slog.String("notifier", w.service),
		slog.String("notification_id", id))

	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(NotificationIDHeader, id)

	start := time.Now()
	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := w.classify(resp); err != nil {
		logger.Warn("webhook notification failed",
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err))
		return err
	}

	logger.Info("webhook notification sent",
		slog.Duration("duration", time.Since(start)))
	return nil
}

func (w webhook) classify(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := fmt.Sprintf("%s webhook returned %d: %s", w.service, resp.StatusCode, bytes.TrimSpace(body))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfter(resp), Message: msg}
	case resp.StatusCode >= 500:
		return &ServerError{StatusCode: resp.StatusCode, Message: msg}
	default:
		return &ClientError{StatusCode: resp.StatusCode, Message: msg}
	}
}

// retryAfter reads the Retry-After header in seconds, defaulting to 60s.
func retryAfter(resp *http.Response) time.Duration {
	if secs, err := strconv.ParseFloat(resp.Header.Get("Retry-After"), 64); err == nil && secs > 0 {
		return time.Duration(secs * float64(time.Second))
	}
	return 60 * time.Second
}

const truncationSuffix = "..."

// truncate limits s to maxRunes including the suffix.
func truncate(s string, maxRunes int) string {
	if text.CountRunes(s) <= maxRunes {
		return s
	}
	return text.TruncateRunes(s, maxRunes-text.CountRunes(truncationSuffix)) + truncationSuffix
}
