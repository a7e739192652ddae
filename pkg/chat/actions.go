package chat

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/zorgdesk/zorgcmd/internal"
	"github.com/zorgdesk/zorgcmd/pkg/models"
)

var log = internal.GetLogger()

// actionBlockRegex finds one fenced json block in a conversational reply.
// Only the first block counts; anything after it stays display text.
var actionBlockRegex = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// ParseActionBlock splits a conversational reply into its display text and
// an optional embedded action. An absent, malformed or schema-invalid
// action block never fails the reply: the action is dropped with a warning
// and the caller gets display text only. The action is validated here but
// never executed here.
func ParseActionBlock(text string) (string, *models.ChatAction) {
	m := actionBlockRegex.FindStringSubmatchIndex(text)
	if m == nil {
		return strings.TrimSpace(text), nil
	}

	displayText := strings.TrimSpace(text[:m[0]] + text[m[1]:])
	raw := text[m[2]:m[3]]

	var action models.ChatAction
	if err := json.Unmarshal([]byte(raw), &action); err != nil {
		log.Warnf("dropping malformed action block: %v; raw block: %s", err, raw)
		return displayText, nil
	}
	if err := action.Validate(); err != nil {
		log.Warnf("dropping invalid action block: %v; raw block: %s", err, raw)
		return displayText, nil
	}

	return displayText, &action
}

// EncodeActionBlock renders display text with an embedded action block in
// the form ParseActionBlock reads back. An invalid action is an error
// here, not a warning: emitting a block we would drop on parse is a bug.
func EncodeActionBlock(displayText string, action *models.ChatAction) (string, error) {
	if action == nil {
		return displayText, nil
	}
	if err := action.Validate(); err != nil {
		return "", err
	}

	raw, err := json.MarshalIndent(action, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(displayText))
	if b.Len() > 0 {
		b.WriteString("\n\n")
	}
	b.WriteString("```json\n")
	b.Write(raw)
	b.WriteString("\n```")
	return b.String(), nil
}
