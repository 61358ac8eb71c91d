package notifier

import (
	"context"
	"fmt"
	"time"
)

// Slack Block Kit limits.
const (
	slackMaxSectionText = 3000
	slackMaxFallback    = 150
)

// SlackNotifier posts briefings to a Slack Incoming Webhook.
type SlackNotifier struct {
	webhook
}

// NewSlackNotifier creates a notifier limited to 1 request/s, the Slack webhook limit.
func NewSlackNotifier(webhookURL string, timeout time.Duration) *SlackNotifier {
	return &SlackNotifier{webhook: newWebhook("slack", webhookURL, timeout, NewRateLimiter(1, 1))}
}

// SlackPayload is the Block Kit message body.
type SlackPayload struct {
	Text   string       `json:"text"`
	Blocks []SlackBlock `json:"blocks"`
}

// SlackBlock is one Block Kit block.
type SlackBlock struct {
	Type     string       `json:"type"`
	Text     *SlackText   `json:"text,omitempty"`
	Elements []*SlackText `json:"elements,omitempty"`
}

// SlackText is a Block Kit text object.
type SlackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Name implements Notifier.
func (s *SlackNotifier) Name() string { return "slack" }

// NotifyBriefing implements Notifier.
func (s *SlackNotifier) NotifyBriefing(ctx context.Context, b Briefing) error {
	return s.post(ctx, buildSlackPayload(b))
}

func buildSlackPayload(b Briefing) SlackPayload {
	fallback := fmt.Sprintf("New briefing from %d articles", b.ArticleCount)

	footer := b.Timestamp.UTC().Format(time.RFC3339)
	if b.DashboardURL != "" {
		footer += fmt.Sprintf(" • <%s|Open dashboard>", b.DashboardURL)
	}

	return SlackPayload{
		Text: truncate(fallback, slackMaxFallback),
		Blocks: []SlackBlock{
			{
				Type: "section",
				Text: &SlackText{Type: "mrkdwn", Text: truncate(b.Summary, slackMaxSectionText)},
			},
			{
				Type:     "context",
				Elements: []*SlackText{{Type: "mrkdwn", Text: footer}},
			},
		},
	}
}
