package notifier

import (
	"briefing-proxy/internal/config"
)

// New returns a Notifier for every configured webhook, or NoOp when none is.
func New(cfg config.NotifyConfig) Notifier {
	var channels Multi
	if cfg.SlackWebhookURL != "" {
		channels = append(channels, NewSlackNotifier(cfg.SlackWebhookURL, cfg.Timeout))
	}
	if cfg.DiscordWebhookURL != "" {
		channels = append(channels, NewDiscordNotifier(cfg.DiscordWebhookURL, cfg.Timeout))
	}

	switch len(channels) {
	case 0:
		return NoOp{}
	case 1:
		return channels[0]
	default:
		return channels
	}
}
