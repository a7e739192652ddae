package llms

import (
	"context"
	"time"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"

	"github.com/zorgdesk/zorgcmd/config"
	"github.com/zorgdesk/zorgcmd/pkg/models"
)

const OpenAIAPIKeyNotSetError = "ZORGCMD_OPENAI_API_KEY is not set" //nolint:gosec

var _ models.LLMClient = &OpenAILLM{}

func NewOpenAILLM(_ context.Context, cfg *config.Config) (*OpenAILLM, error) {
	// Initialize the Tiktoken client
	encoding := "cl100k_base"
	tkm, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second

	clientConfig := openai.DefaultConfig(cfg.LLM.OpenAIAPIKey)
	if cfg.LLM.OpenAIEndpoint != "" {
		clientConfig.BaseURL = cfg.LLM.OpenAIEndpoint
	}
	clientConfig.HTTPClient = NewRetryableHTTPClient(
		MaxAPIRequestAttempts-1,
		timeout,
	).StandardClient()

	return &OpenAILLM{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.LLM.Model,
		tkm:     tkm,
		timeout: timeout,
	}, nil
}

type OpenAILLM struct {
	client  *openai.Client
	model   string
	tkm     *tiktoken.Tiktoken
	timeout time.Duration
}

func (l *OpenAILLM) Call(ctx context.Context, prompt string) (string, error) {
	if l.client == nil {
		return "", NewLLMError(InvalidLLMModelError, nil)
	}

	thisCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resp, err := l.client.CreateChatCompletion(thisCtx, openai.ChatCompletionRequest{
		Model:       l.model,
		Temperature: DefaultTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
		},
	})
	if err != nil {
		return "", NewLLMError("error from openai chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", NewLLMError("no completion choices returned", nil)
	}

	return resp.Choices[0].Message.Content, nil
}

// GetTokenCount returns the number of tokens in the text
func (l *OpenAILLM) GetTokenCount(text string) (int, error) {
	return len(l.tkm.Encode(text, nil, nil)), nil
}
