// Package notifier announces newly generated briefings on chat webhooks.
// Each implementation sends a single request per briefing; failures are
// reported to the caller and never retried.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"briefing-proxy/internal/domain/entity"
)

// Briefing is the payload of a notification.
type Briefing struct {
	Summary      string
	Timestamp    time.Time
	ArticleCount int
	// DashboardURL links back to the dashboard when set.
	DashboardURL string
}

// NewBriefing builds a notification payload from a stored record.
func NewBriefing(record *entity.CacheRecord, articleCount int, dashboardURL string) Briefing {
	return Briefing{
		Summary:      record.Summary,
		Timestamp:    record.Timestamp,
		ArticleCount: articleCount,
		DashboardURL: dashboardURL,
	}
}

// Notifier sends a briefing notification.
type Notifier interface {
	// Name identifies the channel in logs and metrics.
	Name() string
	// NotifyBriefing posts b. It honors ctx cancellation.
	NotifyBriefing(ctx context.Context, b Briefing) error
}

// Multi fans a notification out to every channel and joins their errors.
type Multi []Notifier

// Name implements Notifier.
func (m Multi) Name() string { return "multi" }

// NotifyBriefing implements Notifier.
func (m Multi) NotifyBriefing(ctx context.Context, b Briefing) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyBriefing(ctx, b); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Announcer adapts a Notifier to the briefing use case.
type Announcer struct {
	Notifier     Notifier
	DashboardURL string
}

// Announce notifies about a freshly stored briefing.
func (a Announcer) Announce(ctx context.Context, record *entity.CacheRecord, articleCount int) error {
	return a.Notifier.NotifyBriefing(ctx, NewBriefing(record, articleCount, a.DashboardURL))
}
