package server

import (
	"net/http"

	"github.com/zorgdesk/zorgcmd/pkg/chat"
	"github.com/zorgdesk/zorgcmd/pkg/models"
)

// ChatActionsRequest carries a raw conversational reply to split into
// display text and an embedded action.
type ChatActionsRequest struct {
	Text string `json:"text" validate:"required"`
}

// ChatActionsResponse is the parsed reply. Action is absent when the text
// carried no valid action block.
type ChatActionsResponse struct {
	DisplayText string             `json:"displayText"`
	Action      *models.ChatAction `json:"action,omitempty"`
}

// ParseChatActionsHandler extracts the action block from a conversational
// reply. Parsing never fails on bad blocks; those come back as plain text.
func ParseChatActionsHandler(_ *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request ChatActionsRequest
		if err := decodeJSON(r, &request); err != nil {
			renderError(w, models.NewBadRequestError("invalid request body"), http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			renderValidationError(w, err)
			return
		}

		displayText, action := chat.ParseActionBlock(request.Text)

		resp := ChatActionsResponse{
			DisplayText: displayText,
			Action:      action,
		}
		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}
