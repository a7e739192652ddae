package llms

import (
	"context"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/zorgdesk/zorgcmd/config"
	"github.com/zorgdesk/zorgcmd/pkg/models"
)

const AnthropicAPIKeyNotSetError = "ZORGCMD_ANTHROPIC_API_KEY is not set" //nolint:gosec

const anthropicMaxReplyTokens = 1024

var _ models.LLMClient = &AnthropicLLM{}

func NewAnthropicLLM(_ context.Context, cfg *config.Config) (*AnthropicLLM, error) {
	timeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second

	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.AnthropicAPIKey),
		option.WithHTTPClient(NewRetryableHTTPClient(
			MaxAPIRequestAttempts-1,
			timeout,
		).StandardClient()),
	)

	return &AnthropicLLM{
		client:  client,
		model:   cfg.LLM.Model,
		timeout: timeout,
	}, nil
}

type AnthropicLLM struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
}

func (l *AnthropicLLM) Call(ctx context.Context, prompt string) (string, error) {
	thisCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	message, err := l.client.Messages.New(thisCtx, anthropic.MessageNewParams{
		Model:     anthropic.Model(l.model),
		MaxTokens: anthropicMaxReplyTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", NewLLMError("error from anthropic messages api", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", NewLLMError("no text content in anthropic response", nil)
}

// GetTokenCount returns 0: there is no local tokenizer for claude models,
// and inputs are already length-bounded upstream.
func (l *AnthropicLLM) GetTokenCount(_ string) (int, error) {
	return 0, nil
}
