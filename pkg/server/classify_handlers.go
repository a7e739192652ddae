package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/zorgdesk/zorgcmd/pkg/llms"
	"github.com/zorgdesk/zorgcmd/pkg/models"
)

// ClassifyHandler classifies a single command-bar input.
//
// A misconfigured AI tier maps to 503 (feature unavailable), a transient
// upstream failure to 502 (retryable). Both only surface when the local
// tier could not answer on its own.
func ClassifyHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var request models.ClassifyRequest
		if err := decodeJSON(r, &request); err != nil {
			renderError(w, models.NewBadRequestError("invalid request body"), http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			renderValidationError(w, err)
			return
		}
		if maxLen := appState.Config.Classifier.MaxInputLength; maxLen > 0 && len(request.Input) > maxLen {
			renderError(
				w,
				models.NewBadRequestError(fmt.Sprintf("input exceeds %d characters", maxLen)),
				http.StatusBadRequest,
			)
			return
		}

		result, localResult, err := appState.Classifier.Classify(r.Context(), request.Input, request.ForceAI)
		if err != nil {
			renderClassifyError(w, err)
			return
		}

		if appState.History != nil && result.Intent != models.IntentUnknown {
			appState.History.Add(models.RecentAction{
				Intent:      result.Intent,
				Label:       request.Input,
				PatientName: result.Entities.PatientName,
			})
		}

		resp := models.ClassifyResponse{
			ClassificationResult: *result,
			ProcessingTimeMs:     time.Since(start).Milliseconds(),
			LocalResult:          localResult,
		}
		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}

func renderClassifyError(w http.ResponseWriter, err error) {
	var llmErr *llms.LLMError
	switch {
	case errors.Is(err, models.ErrLLMNotConfigured):
		renderError(w, err, http.StatusServiceUnavailable)
	case errors.As(err, &llmErr):
		renderError(w, err, http.StatusBadGateway)
	case errors.Is(err, models.ErrBadRequest):
		renderError(w, err, http.StatusBadRequest)
	default:
		renderError(w, err, http.StatusInternalServerError)
	}
}

// GetHistoryHandler returns the recent command history, newest first.
func GetHistoryHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actions := []models.RecentAction{}
		if appState.History != nil {
			actions = appState.History.List()
		}
		if err := encodeJSON(w, actions); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}
