package services

import "net/http"

// Error codes surfaced to API callers. Stable and machine-readable.
const (
	CodeInvalidParameter   = "INVALID_PARAMETER"
	CodeInvalidData        = "INVALID_DATA"
	CodeInvalidGenre       = "INVALID_GENRE"
	CodePreferenceNotFound = "PREFERENCE_NOT_FOUND"
	CodeForbiddenAccess    = "FORBIDDEN_ACCESS"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError is a client-facing error with a stable code and the HTTP status
// it should map to. Validation and authorization failures are raised as
// AppError; anything else surfaces as a generic internal error.
type AppError struct {
	Code    string
	Message string
	Status  int
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

// NewInvalidParameter reports a bad content type or limit.
func NewInvalidParameter(message string) *AppError {
	return &AppError{Code: CodeInvalidParameter, Message: message, Status: http.StatusBadRequest}
}

// NewInvalidData reports empty or missing required input.
func NewInvalidData(message string) *AppError {
	return &AppError{Code: CodeInvalidData, Message: message, Status: http.StatusBadRequest}
}

// NewInvalidGenre reports a genre unknown to the catalog.
func NewInvalidGenre(message string) *AppError {
	return &AppError{Code: CodeInvalidGenre, Message: message, Status: http.StatusBadRequest}
}

// NewPreferenceNotFound reports a missing preference row.
func NewPreferenceNotFound(message string) *AppError {
	return &AppError{Code: CodePreferenceNotFound, Message: message, Status: http.StatusNotFound}
}

// NewForbiddenAccess reports a caller acting on another user's resources.
func NewForbiddenAccess(message string) *AppError {
	return &AppError{Code: CodeForbiddenAccess, Message: message, Status: http.StatusForbidden}
}
