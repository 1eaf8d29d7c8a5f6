package errors

import (
	"net/http"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	// KindBadRequest covers missing, oversized, or malformed input that the
	// caller can correct.
	KindBadRequest ErrorKind = "bad_request"
	// KindValidation covers field-level binding failures.
	KindValidation ErrorKind = "validation"
	// KindConfiguration covers operator-correctable misconfiguration.
	KindConfiguration ErrorKind = "configuration"
	// KindProvider covers remote provider failures after the fallback
	// attempt has been exhausted.
	KindProvider ErrorKind = "provider"
	// KindInternal covers everything else.
	KindInternal ErrorKind = "internal"
)

// APIError is the structured error body returned to the browser. The message
// is serialized under "error", which is the only field the front end reads.
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"error"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindProvider:
		return http.StatusBadGateway
	case KindConfiguration:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewConfigurationError creates a configuration error. The message shown to
// end users stays generic; the underlying cause belongs in the logs.
func NewConfigurationError(message string) *APIError {
	return &APIError{
		Kind:    KindConfiguration,
		Message: message,
	}
}

// NewProviderError creates a provider error
func NewProviderError(message string) *APIError {
	return &APIError{
		Kind:    KindProvider,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}
