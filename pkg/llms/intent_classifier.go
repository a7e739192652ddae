package llms

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/zorgdesk/zorgcmd/internal"
	"github.com/zorgdesk/zorgcmd/pkg/dateparse"
	"github.com/zorgdesk/zorgcmd/pkg/models"
)

var clockFormatRegex = regexp.MustCompile(`^(?:[01]?\d|2[0-3]):[0-5]\d$`)

// IntentClassifier is the AI fallback tier: it prompts the configured
// model for a strict-JSON classification of a single command. Transport
// failures surface as errors; malformed or out-of-contract replies
// soft-fail to an unknown result so a misbehaving model can never take
// the endpoint down.
type IntentClassifier struct {
	llm       models.LLMClient
	maxTokens int
	now       func() time.Time
}

func NewIntentClassifier(llm models.LLMClient, model string) *IntentClassifier {
	maxTokens, ok := MaxLLMTokensMap[model]
	if !ok {
		maxTokens = 4096
	}
	return &IntentClassifier{
		llm:       llm,
		maxTokens: maxTokens,
		now:       time.Now,
	}
}

// aiIntentReply mirrors the JSON contract in the prompt. Unknown extra
// fields in the reply are ignored.
type aiIntentReply struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Entities   struct {
		PatientName string `json:"patientName"`
		PatientID   string `json:"patientId"`
		Category    string `json:"category"`
		Content     string `json:"content"`
		DateLabel   string `json:"dateLabel"`
		Time        string `json:"time"`
	} `json:"entities"`
}

func (c *IntentClassifier) Classify(
	ctx context.Context,
	input string,
) (*models.ClassificationResult, error) {
	if c.llm == nil {
		return nil, models.NewLLMNotConfiguredError("no llm client available")
	}

	prompt, err := internal.ParsePrompt(intentPromptTemplate, IntentPromptTemplateData{Input: input})
	if err != nil {
		return nil, NewLLMError("error parsing intent prompt template", err)
	}

	tokenCount, err := c.llm.GetTokenCount(prompt)
	if err != nil {
		return nil, err
	}
	if tokenCount > c.maxTokens {
		return nil, NewLLMError("intent prompt exceeds model token limit", nil)
	}

	reply, err := c.llm.Call(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return c.parseReply(reply), nil
}

// parseReply turns a raw model reply into a normalized result. Every
// deviation from the contract degrades instead of erroring: bad JSON or
// an out-of-set intent yields unknown with confidence 0, out-of-set
// entity values are dropped, confidence is clamped to [0, 1]. The raw
// reply is logged on degradation so contract drift is visible.
func (c *IntentClassifier) parseReply(reply string) *models.ClassificationResult {
	cleaned := stripJSONFences(reply)

	var parsed aiIntentReply
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		log.Warnf("unparseable ai classification reply: %v; raw reply: %s", err, reply)
		return unknownAIResult()
	}

	intent := models.Intent(parsed.Intent)
	if !intent.Valid() {
		log.Warnf("ai classification returned unrecognized intent %q; raw reply: %s", parsed.Intent, reply)
		return unknownAIResult()
	}

	confidence := parsed.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	result := &models.ClassificationResult{
		Intent:     intent,
		Confidence: confidence,
		Source:     models.SourceAI,
	}

	result.Entities.PatientName = parsed.Entities.PatientName
	result.Entities.PatientID = parsed.Entities.PatientID
	result.Entities.Content = parsed.Entities.Content
	if models.ValidNoteCategory(parsed.Entities.Category) {
		result.Entities.Category = parsed.Entities.Category
	} else if parsed.Entities.Category != "" {
		log.Warnf("ai classification returned unrecognized category %q, dropping", parsed.Entities.Category)
	}
	if clockFormatRegex.MatchString(parsed.Entities.Time) {
		result.Entities.Time = parsed.Entities.Time
	}
	if parsed.Entities.DateLabel != "" {
		r := dateparse.Resolve(parsed.Entities.DateLabel, c.now())
		result.Entities.DateRange = &r
	}

	return result
}

// stripJSONFences removes a markdown code fence wrapper some models put
// around JSON replies despite instructions not to.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func unknownAIResult() *models.ClassificationResult {
	return &models.ClassificationResult{
		Intent:     models.IntentUnknown,
		Confidence: 0,
		Source:     models.SourceAI,
	}
}
