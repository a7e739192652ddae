package models

import "context"

// CommandClassifier is the two-tier classification entrypoint the server
// hands requests to. The returned localResult is non-nil only when the
// request escalated to the AI tier.
type CommandClassifier interface {
	Classify(
		ctx context.Context,
		input string,
		forceAI bool,
	) (result *ClassificationResult, localResult *ClassificationResult, err error)
	IsHighConfidence(result *ClassificationResult) bool
}
