package notifier

import (
	"context"
	"fmt"
	"time"
)

// Discord embed limits.
const (
	discordMaxDescription = 4096
	discordBlurple        = 5793266
)

// DiscordNotifier posts briefings to a Discord webhook.
type DiscordNotifier struct {
	webhook
}

// NewDiscordNotifier creates a notifier limited to 30 requests/min, the
// Discord webhook limit.
func NewDiscordNotifier(webhookURL string, timeout time.Duration) *DiscordNotifier {
	return &DiscordNotifier{webhook: newWebhook("discord", webhookURL, timeout, NewRateLimiter(0.5, 3))}
}

// DiscordPayload is the webhook message body.
type DiscordPayload struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

// DiscordEmbed is a rich embed.
type DiscordEmbed struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	URL         string             `json:"url,omitempty"`
	Color       int                `json:"color"`
	Footer      DiscordEmbedFooter `json:"footer"`
	Timestamp   string             `json:"timestamp"`
}

// DiscordEmbedFooter is an embed footer.
type DiscordEmbedFooter struct {
	Text string `json:"text"`
}

// Name implements Notifier.
func (d *DiscordNotifier) Name() string { return "discord" }

// NotifyBriefing implements Notifier.
func (d *DiscordNotifier) NotifyBriefing(ctx context.Context, b Briefing) error {
	return d.post(ctx, buildDiscordPayload(b))
}

func buildDiscordPayload(b Briefing) DiscordPayload {
	return DiscordPayload{
		Embeds: []DiscordEmbed{{
			Title:       "Strategic briefing",
			Description: truncate(b.Summary, discordMaxDescription),
			URL:         b.DashboardURL,
			Color:       discordBlurple,
			Footer:      DiscordEmbedFooter{Text: fmt.Sprintf("%d articles", b.ArticleCount)},
			Timestamp:   b.Timestamp.UTC().Format(time.RFC3339),
		}},
	}
}
