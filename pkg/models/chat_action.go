package models

// ArtifactTypeFallback is the only artifact type that may pair with
// IntentUnknown. All other intents pair with an artifact type equal to the
// intent name.
const ArtifactTypeFallback = "fallback"

// ChatActionArtifact describes the UI artifact a conversational action wants
// opened, with optional prefill values for its form fields.
type ChatActionArtifact struct {
	Type    string         `json:"type"`
	Prefill map[string]any `json:"prefill,omitempty"`
}

// ChatAction is a structured follow-up action embedded in a conversational
// reply. It is prepared by the action parser but never executed by it.
type ChatAction struct {
	Intent     Intent              `json:"intent"`
	Entities   EntityBag           `json:"entities"`
	Confidence float64             `json:"confidence"`
	Artifact   *ChatActionArtifact `json:"artifact,omitempty"`
}

// Validate enforces the ChatAction schema: a valid intent, a confidence in
// [0,1], a category (if any) from the closed set, and the artifact pairing
// rule. IntentUnknown is only allowed when paired with a fallback artifact.
func (a *ChatAction) Validate() error {
	if !a.Intent.Valid() {
		return NewBadRequestError("invalid intent: " + string(a.Intent))
	}
	if a.Confidence < 0 || a.Confidence > 1 {
		return NewBadRequestError("confidence out of range")
	}
	if a.Entities.Category != "" && !ValidNoteCategory(a.Entities.Category) {
		return NewBadRequestError("invalid note category: " + a.Entities.Category)
	}
	if a.Intent == IntentUnknown {
		if a.Artifact == nil || a.Artifact.Type != ArtifactTypeFallback {
			return NewBadRequestError("intent unknown requires a fallback artifact")
		}
		return nil
	}
	if a.Artifact != nil && a.Artifact.Type != string(a.Intent) {
		return NewBadRequestError(
			"artifact type " + a.Artifact.Type + " does not match intent " + string(a.Intent),
		)
	}
	return nil
}
