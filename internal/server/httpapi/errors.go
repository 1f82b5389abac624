package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/bookmarks/internal/common"
)

// APIError is the body of every error response, wrapped as {"error": ...}.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Details    any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// WithMessage returns a copy of the error with a custom message.
func (e *APIError) WithMessage(message string) *APIError {
	return &APIError{Code: e.Code, Message: message, StatusCode: e.StatusCode, Details: e.Details}
}

var (
	ErrBadRequest = &APIError{
		Code:       "bad_request",
		Message:    "Invalid request body",
		StatusCode: http.StatusBadRequest,
	}

	// ErrUnauthorized is used for every authentication failure so clients
	// cannot tell a bad token from a deleted account.
	ErrUnauthorized = &APIError{
		Code:       "unauthorized",
		Message:    "Unauthorized",
		StatusCode: http.StatusUnauthorized,
	}

	ErrEmailTaken = &APIError{
		Code:       "email_taken",
		Message:    "Email already taken",
		StatusCode: http.StatusForbidden,
	}

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = &APIError{
		Code:       "invalid_credentials",
		Message:    "Wrong email or password",
		StatusCode: http.StatusForbidden,
	}

	// ErrNotFound also stands for resources owned by another user.
	ErrNotFound = &APIError{
		Code:       "not_found",
		Message:    "Resource not found",
		StatusCode: http.StatusNotFound,
	}

	ErrMethodNotAllowed = &APIError{
		Code:       "method_not_allowed",
		Message:    "Method not allowed",
		StatusCode: http.StatusMethodNotAllowed,
	}

	ErrRateLimited = &APIError{
		Code:       "rate_limited",
		Message:    "Too many requests. Please try again later.",
		StatusCode: http.StatusTooManyRequests,
	}

	ErrInternal = &APIError{
		Code:       "internal_error",
		Message:    "An internal error occurred",
		StatusCode: http.StatusInternalServerError,
	}

	ErrServiceUnavailable = &APIError{
		Code:       "service_unavailable",
		Message:    "Service temporarily unavailable",
		StatusCode: http.StatusServiceUnavailable,
	}
)

// NewValidationErrors creates a 400 with field name to message details.
func NewValidationErrors(fields map[string]string) *APIError {
	return &APIError{
		Code:       "validation_error",
		Message:    "One or more fields failed validation",
		StatusCode: http.StatusBadRequest,
		Details:    fields,
	}
}

// asAPIError maps service errors onto the public error set. Anything not
// recognised is an internal error.
func asAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, common.ErrEmailTaken):
		return ErrEmailTaken
	case errors.Is(err, common.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, common.ErrUnauthenticated), errors.Is(err, common.ErrInvalidToken):
		return ErrUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return ErrNotFound
	default:
		return ErrInternal
	}
}
