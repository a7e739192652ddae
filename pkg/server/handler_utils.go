package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// APIError represents an error response.
type APIError struct {
	Message string `json:"message"`
}

// ValidationFieldError is one field failure in a rejected request body.
type ValidationFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Errors []ValidationFieldError `json:"errors"`
}

var validate = validator.New()

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a JSON request body into the provided data struct.
func decodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(&data)
}

// renderError renders an error response.
func renderError(w http.ResponseWriter, err error, status int) {
	if status != http.StatusNotFound {
		// Don't log not found errors
		log.Error(err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIError{Message: err.Error()})
}

// renderValidationError renders a 400 with per-field failures so the
// command bar can highlight the offending input.
func renderValidationError(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		renderError(w, err, http.StatusBadRequest)
		return
	}

	resp := validationErrorResponse{
		Errors: make([]ValidationFieldError, 0, len(validationErrors)),
	}
	for _, fieldError := range validationErrors {
		resp.Errors = append(resp.Errors, ValidationFieldError{
			Field:   fieldError.Field(),
			Message: fieldError.Error(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(resp)
}
