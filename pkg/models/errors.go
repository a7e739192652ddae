package models

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

var ErrBadRequest = errors.New("bad request")

type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

func (e *BadRequestError) Unwrap() error {
	return ErrBadRequest
}

func NewBadRequestError(message string) error {
	return &BadRequestError{Message: message}
}

var ErrUnauthorized = errors.New("unauthorized")

// ErrLLMNotConfigured signals that the AI tier cannot run at all: missing
// credentials or an unsupported service. Callers map this to a "feature
// unavailable" message, as opposed to the transient LLMError.
var ErrLLMNotConfigured = errors.New("llm service not configured")

type LLMNotConfiguredError struct {
	Message string
}

func (e *LLMNotConfiguredError) Error() string {
	return fmt.Sprintf("llm service not configured: %s", e.Message)
}

func (e *LLMNotConfiguredError) Unwrap() error {
	return ErrLLMNotConfigured
}

func NewLLMNotConfiguredError(message string) error {
	return &LLMNotConfiguredError{Message: message}
}
