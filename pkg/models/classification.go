package models

import "time"

const (
	// SourceLocal marks results produced by the pattern-matching tier.
	SourceLocal = "local"
	// SourceAI marks results produced by the remote model tier.
	SourceAI = "ai"
)

// DateRange is an absolute date range resolved from a natural-language
// label. Start <= End always holds. Label echoes the recognized phrase, or
// "vandaag" when the input could not be parsed.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// EntityBag holds the structured slots extracted from a command. All slots
// are optional; which ones are populated depends on the intent. A slot that
// cannot be found is simply absent, never fabricated.
type EntityBag struct {
	PatientName string     `json:"patientName,omitempty"`
	PatientID   string     `json:"patientId,omitempty"`
	Category    string     `json:"category,omitempty"`
	Content     string     `json:"content,omitempty"`
	DateRange   *DateRange `json:"dateRange,omitempty"`
	Time        string     `json:"time,omitempty"`
}

// Empty reports whether no slot was extracted.
func (e EntityBag) Empty() bool {
	return e.PatientName == "" && e.PatientID == "" && e.Category == "" &&
		e.Content == "" && e.DateRange == nil && e.Time == ""
}

// ClassificationResult is the normalized output of both classifier tiers.
// Callers must never need to know which tier produced it. Created fresh per
// request and never mutated; when the AI tier supersedes the local tier the
// local result is replaced, not modified.
type ClassificationResult struct {
	Intent         Intent    `json:"intent"`
	Confidence     float64   `json:"confidence"`
	Entities       EntityBag `json:"entities"`
	MatchedPattern string    `json:"matchedPattern,omitempty"`
	Source         string    `json:"source"`
}

// ClassifyRequest is the payload of the classify endpoint.
type ClassifyRequest struct {
	Input   string `json:"input"   validate:"required,min=1,max=500"`
	ForceAI bool   `json:"forceAI"`
}

// ClassifyResponse is the classify endpoint reply. LocalResult is only set
// when the request escalated to the AI tier; it preserves the audit trail of
// why escalation happened.
type ClassifyResponse struct {
	ClassificationResult
	ProcessingTimeMs int64                 `json:"processingTimeMs"`
	LocalResult      *ClassificationResult `json:"localResult,omitempty"`
}
