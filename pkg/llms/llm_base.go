package llms

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/zorgdesk/zorgcmd/config"
	"github.com/zorgdesk/zorgcmd/internal"
	"github.com/zorgdesk/zorgcmd/pkg/models"
)

const DefaultTemperature = 0.0
const InvalidLLMModelError = "llm model is not set or is invalid"

// MaxAPIRequestAttempts is 1: a classify request gets exactly one upstream
// attempt. Retrying inside the request budget would blow past the latency
// the command bar can tolerate.
const MaxAPIRequestAttempts = 1

var log = internal.GetLogger()

// NewLLMClient returns the model client for the configured service. A
// missing API key yields ErrLLMNotConfigured so callers can surface
// "feature unavailable" instead of a generic failure.
func NewLLMClient(ctx context.Context, cfg *config.Config) (models.LLMClient, error) {
	switch cfg.LLM.Service {
	case "openai", "":
		if cfg.LLM.OpenAIAPIKey == "" {
			return nil, models.NewLLMNotConfiguredError(OpenAIAPIKeyNotSetError)
		}
		// if a custom OpenAI endpoint is set, do not validate the model name
		if cfg.LLM.OpenAIEndpoint != "" {
			return NewOpenAILLM(ctx, cfg)
		}
		if _, ok := ValidOpenAILLMs[cfg.LLM.Model]; !ok {
			return nil, fmt.Errorf(
				"invalid llm model \"%s\" for %s",
				cfg.LLM.Model,
				cfg.LLM.Service,
			)
		}
		return NewOpenAILLM(ctx, cfg)
	case "anthropic":
		if cfg.LLM.AnthropicAPIKey == "" {
			return nil, models.NewLLMNotConfiguredError(AnthropicAPIKeyNotSetError)
		}
		if _, ok := ValidAnthropicLLMs[cfg.LLM.Model]; !ok {
			return nil, fmt.Errorf(
				"invalid llm model \"%s\" for %s",
				cfg.LLM.Model,
				cfg.LLM.Service,
			)
		}
		return NewAnthropicLLM(ctx, cfg)
	default:
		return nil, fmt.Errorf("invalid LLM service: %s", cfg.LLM.Service)
	}
}

// LLMError marks a transient upstream failure: the request reached (or
// tried to reach) the model service and did not get a usable reply. The
// caller maps it to "try again", distinct from ErrLLMNotConfigured.
type LLMError struct {
	message       string
	originalError error
}

func (e *LLMError) Error() string {
	return fmt.Sprintf("llm error: %s (original error: %v)", e.message, e.originalError)
}

func (e *LLMError) Unwrap() error {
	return e.originalError
}

func NewLLMError(message string, originalError error) *LLMError {
	return &LLMError{message: message, originalError: originalError}
}

var ValidOpenAILLMs = map[string]bool{
	"gpt-3.5-turbo": true,
	"gpt-4":         true,
	"gpt-4-turbo":   true,
	"gpt-4o":        true,
	"gpt-4o-mini":   true,
}

var ValidAnthropicLLMs = map[string]bool{
	"claude-3-haiku-20240307":    true,
	"claude-3-5-haiku-latest":    true,
	"claude-3-5-sonnet-latest":   true,
	"claude-sonnet-4-5-20250929": true,
}

// MaxLLMTokensMap caps the prompt size per model. Inputs are already
// bounded upstream, so hitting this indicates a prompt template bug.
var MaxLLMTokensMap = map[string]int{
	"gpt-3.5-turbo":              4096,
	"gpt-4":                      8192,
	"gpt-4-turbo":                128_000,
	"gpt-4o":                     128_000,
	"gpt-4o-mini":                128_000,
	"claude-3-haiku-20240307":    100_000,
	"claude-3-5-haiku-latest":    100_000,
	"claude-3-5-sonnet-latest":   100_000,
	"claude-sonnet-4-5-20250929": 100_000,
}

func NewRetryableHTTPClient(retryMax int, timeout time.Duration) *retryablehttp.Client {
	retryableHTTPClient := retryablehttp.NewClient()
	retryableHTTPClient.RetryMax = retryMax
	retryableHTTPClient.HTTPClient.Timeout = timeout
	retryableHTTPClient.Logger = internal.NewLeveledLogrus(log)
	retryableHTTPClient.Backoff = retryablehttp.DefaultBackoff
	retryableHTTPClient.CheckRetry = retryPolicy

	return retryableHTTPClient
}

// retryPolicy is a retryablehttp.CheckRetry function. It is used to determine
// whether a request should be retried or not.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	// do not retry on context.Canceled or context.DeadlineExceeded
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	// Do not retry 400 errors as they're used by OpenAI to indicate maximum
	// context length exceeded
	if resp != nil && resp.StatusCode == 400 {
		return false, err
	}

	shouldRetry, _ := retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	return shouldRetry, nil
}
