package summarizer

import (
	"context"
	"fmt"
	"strings"
)

// NoOp builds a briefing locally from the article titles in the prompt.
// It needs no credential and is meant for offline development.
type NoOp struct{}

// NewNoOp creates a new NoOp generator.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Name implements Generator.
func (n *NoOp) Name() string { return ProviderNameNoop }

// Generate lists every "Title:" line of the prompt as a markdown bullet.
func (n *NoOp) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var titles []string
	for _, line := range strings.Split(prompt, "\n") {
		if title, ok := strings.CutPrefix(line, "Title: "); ok {
			titles = append(titles, strings.TrimSpace(title))
		}
	}

	var sb strings.Builder
	sb.WriteString("## Offline briefing\n\n")
	fmt.Fprintf(&sb, "%d articles received; no model was called.\n", len(titles))
	if len(titles) > 0 {
		sb.WriteString("\n")
		for _, t := range titles {
			fmt.Fprintf(&sb, "- %s\n", t)
		}
	}
	return sb.String(), nil
}
