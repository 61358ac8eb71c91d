package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultClaudeModel is used when no model is configured.
var DefaultClaudeModel = string(anthropic.ModelClaudeSonnet4_5_20250929)

// Claude generates briefings with Anthropic's Messages API.
type Claude struct {
	client    anthropic.Client
	maxTokens int64
	runner
}

// NewClaude creates a Claude generator. The SDK's built-in retries are disabled.
func NewClaude(opts Options) (*Claude, error) {
	opts = opts.withDefaults(ProviderNameClaude, DefaultClaudeModel)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid claude configuration: %w", err)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}

	slog.Info("initialized claude generator",
		slog.String("model", opts.Model),
		slog.Int("max_tokens", opts.MaxTokens))

	return &Claude{
		client:    anthropic.NewClient(clientOpts...),
		maxTokens: int64(opts.MaxTokens),
		runner:    newRunner(ProviderNameClaude, opts),
	}, nil
}

// Name implements Generator.
func (c *Claude) Name() string { return ProviderNameClaude }

// Generate sends prompt as a single user message and returns the concatenated text blocks.
func (c *Claude) Generate(ctx context.Context, prompt string) (string, error) {
	return c.run(ctx, prompt, c.call)
}

func (c *Claude) call(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(tb.Text)
		}
	}
	return sb.String(), nil
}
