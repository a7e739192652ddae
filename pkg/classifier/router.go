package classifier

import (
	"context"
	"time"

	"github.com/zorgdesk/zorgcmd/internal"
	"github.com/zorgdesk/zorgcmd/pkg/extractors"
	"github.com/zorgdesk/zorgcmd/pkg/models"
)

var log = internal.GetLogger()

// DefaultHighConfidenceThreshold is the escalation boundary. Results at or
// above it are trusted without consulting the AI tier. Tunable via config.
const DefaultHighConfidenceThreshold = 0.8

// AIClassifier is the remote-model-backed fallback tier. Its result arrives
// with entities already extracted by the model.
type AIClassifier interface {
	Classify(ctx context.Context, input string) (*models.ClassificationResult, error)
}

var _ models.CommandClassifier = &Router{}

// Router is the confidence gate between the two classifier tiers. It is the
// single point where both tiers' outputs are normalized into one shape:
// callers never need to know which tier answered.
type Router struct {
	local     *LocalClassifier
	ai        AIClassifier
	threshold float64
	now       func() time.Time
}

// NewRouter wires the gate. ai may be nil when the AI tier is not
// configured; escalation then degrades per the error taxonomy. A zero
// threshold selects the default.
func NewRouter(local *LocalClassifier, ai AIClassifier, threshold float64) *Router {
	if local == nil {
		local = NewLocalClassifier(nil)
	}
	if threshold <= 0 {
		threshold = DefaultHighConfidenceThreshold
	}
	return &Router{
		local:     local,
		ai:        ai,
		threshold: threshold,
		now:       time.Now,
	}
}

// IsHighConfidence reports whether a result clears the escalation boundary.
func (r *Router) IsHighConfidence(result *models.ClassificationResult) bool {
	return result != nil && result.Confidence >= r.threshold
}

// Classify runs the two-tier flow: local tier always, AI tier only on low
// confidence or an explicit forceAI. On escalation the original local
// result is returned alongside as diagnostic metadata. When the AI tier
// fails but the local tier produced a usable (non-unknown) result, the
// local result is returned as a degraded fallback instead of failing the
// request; with nothing usable the typed error propagates so the caller
// can distinguish a misconfigured service from a transient one.
func (r *Router) Classify(
	ctx context.Context,
	input string,
	forceAI bool,
) (*models.ClassificationResult, *models.ClassificationResult, error) {
	localResult := r.local.Classify(input)

	if r.IsHighConfidence(localResult) && !forceAI {
		result := *localResult
		result.Entities = extractors.Extract(input, result.Intent, r.now())
		return &result, nil, nil
	}

	aiResult, err := r.classifyAI(ctx, input)
	if err != nil {
		if localResult.Intent != models.IntentUnknown {
			log.Warnf("ai tier failed, falling back to local result: %v", err)
			result := *localResult
			result.Entities = extractors.Extract(input, result.Intent, r.now())
			return &result, nil, nil
		}
		return nil, localResult, err
	}

	return aiResult, localResult, nil
}

func (r *Router) classifyAI(
	ctx context.Context,
	input string,
) (*models.ClassificationResult, error) {
	if r.ai == nil {
		return nil, models.NewLLMNotConfiguredError("no llm client available")
	}
	return r.ai.Classify(ctx, input)
}
