package notifier

import "context"

// NoOp is used when no webhook is configured.
type NoOp struct{}

// Name implements Notifier.
func (NoOp) Name() string { return "noop" }

// NotifyBriefing does nothing.
func (NoOp) NotifyBriefing(context.Context, Briefing) error { return nil }
