package errors

import "fmt"

// Error codes
const (
	ErrCodeSessionNotFound = "SESSION_NOT_FOUND"
	ErrCodePuzzleNotFound  = "PUZZLE_NOT_FOUND"
	ErrCodeNoData          = "NO_DATA"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeMethod          = "METHOD_NOT_ALLOWED"
)

// Sentinels for errors.Is. Any AppError carrying the same code matches.
var (
	ErrSessionNotFound = &AppError{Code: ErrCodeSessionNotFound, Message: "session not found", Status: 404}
	ErrPuzzleNotFound  = &AppError{Code: ErrCodePuzzleNotFound, Message: "puzzle not found", Status: 404}
	ErrNoData          = &AppError{Code: ErrCodeNoData, Message: "no performance data available", Status: 422}
	ErrValidation      = &AppError{Code: ErrCodeValidation, Message: "validation failed", Status: 400}
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "SESSION_NOT_FOUND", "VALIDATION_ERROR")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewSessionNotFoundError creates a new SESSION_NOT_FOUND error
func NewSessionNotFoundError(userID string) *AppError {
	return &AppError{
		Code:    ErrCodeSessionNotFound,
		Message: fmt.Sprintf("session not found: %s", userID),
		Status:  404,
	}
}

// NewPuzzleNotFoundError creates a new PUZZLE_NOT_FOUND error. It covers
// unknown identifiers as well as puzzles that were already answered.
func NewPuzzleNotFoundError(puzzleID string) *AppError {
	return &AppError{
		Code:    ErrCodePuzzleNotFound,
		Message: fmt.Sprintf("puzzle not found or already answered: %s", puzzleID),
		Status:  404,
	}
}

// NewNoDataError creates a new NO_DATA error
func NewNoDataError(userID string) *AppError {
	return &AppError{
		Code:    ErrCodeNoData,
		Message: fmt.Sprintf("no performance data available for session %s", userID),
		Status:  422,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// NewNotFoundError creates a NOT_FOUND error for an unknown resource
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: resource + " not found",
		Status:  404,
	}
}

// NewMethodNotAllowedError creates a METHOD_NOT_ALLOWED error
func NewMethodNotAllowedError(method string) *AppError {
	return &AppError{
		Code:    ErrCodeMethod,
		Message: "method " + method + " not allowed",
		Status:  405,
	}
}
