package summarizer

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAI generates briefings with the Chat Completions API.
type OpenAI struct {
	client    *openai.Client
	maxTokens int
	runner
}

// NewOpenAI creates an OpenAI generator.
func NewOpenAI(opts Options) (*OpenAI, error) {
	opts = opts.withDefaults(ProviderNameOpenAI, DefaultOpenAIModel)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid openai configuration: %w", err)
	}

	clientCfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		clientCfg.BaseURL = opts.BaseURL
	}

	slog.Info("initialized openai generator",
		slog.String("model", opts.Model),
		slog.Int("max_tokens", opts.MaxTokens))

	return &OpenAI{
		client:    openai.NewClientWithConfig(clientCfg),
		maxTokens: opts.MaxTokens,
		runner:    newRunner(ProviderNameOpenAI, opts),
	}, nil
}

// Name implements Generator.
func (o *OpenAI) Name() string { return ProviderNameOpenAI }

// Generate sends prompt as a single user message and returns the first choice.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	return o.run(ctx, prompt, o.call)
}

func (o *OpenAI) call(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.model,
		MaxTokens: o.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
