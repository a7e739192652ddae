package models

import "context"

// LLMClient is the interface to a remote language model. The transport,
// credentials, and provider specifics live behind it.
type LLMClient interface {
	// Call runs a chat completion against the prompt and returns the raw
	// completion text. A single attempt is made per call; retrying is the
	// caller's decision.
	Call(ctx context.Context, prompt string) (string, error)
	// GetTokenCount returns the number of tokens in the given text
	GetTokenCount(text string) (int, error)
}
