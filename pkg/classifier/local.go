package classifier

import (
	"strings"

	"github.com/zorgdesk/zorgcmd/pkg/models"
)

// LocalClassifier is the fast, offline pattern-matching tier. It is a pure
// function over its pattern library: no I/O, no shared mutable state, safe
// for concurrent use. It runs on every request, including ones that will
// also hit the AI tier, so it has to stay cheap.
type LocalClassifier struct {
	patterns []IntentPattern
}

// NewLocalClassifier creates a classifier over the given ordered pattern
// library. Passing nil uses DefaultPatterns.
func NewLocalClassifier(patterns []IntentPattern) *LocalClassifier {
	if patterns == nil {
		patterns = DefaultPatterns
	}
	return &LocalClassifier{patterns: patterns}
}

// Classify evaluates the pattern library against the input and returns the
// best match. The highest-weight matching pattern wins; ties break in
// declaration order, earlier wins, so behavior is deterministic. No match
// returns IntentUnknown with confidence 0.
func (lc *LocalClassifier) Classify(input string) *models.ClassificationResult {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return unknownResult()
	}

	var best *IntentPattern
	for i := range lc.patterns {
		p := &lc.patterns[i]
		if !p.Match.MatchString(trimmed) {
			continue
		}
		if best == nil || p.Weight > best.Weight {
			best = p
		}
	}

	if best == nil {
		return unknownResult()
	}

	return &models.ClassificationResult{
		Intent:         best.Intent,
		Confidence:     best.Weight,
		MatchedPattern: best.Name,
		Source:         models.SourceLocal,
	}
}

func unknownResult() *models.ClassificationResult {
	return &models.ClassificationResult{
		Intent:     models.IntentUnknown,
		Confidence: 0,
		Source:     models.SourceLocal,
	}
}
