package exception

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	StatusFailed       = "FAILED"
	StatusUnauthorized = "UNAUTHORIZED"
)

// Error is the failure contract between managers and controllers. Message
// is safe to return to clients; Err keeps the underlying cause for logs.
type Error struct {
	HTTPCode int
	Status   string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts the typed error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// NewValidationError reports malformed or semantically invalid input.
func NewValidationError(message string) *Error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Status:   StatusFailed,
		Message:  message,
	}
}

// NewReferenceNotFoundError reports a request referencing a related record
// that does not exist. The target record is input, so this is a client
// error rather than a 404.
func NewReferenceNotFoundError(message string) *Error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Status:   StatusFailed,
		Message:  message,
	}
}

// NewConflictError reports a uniqueness collision.
func NewConflictError(message string) *Error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Status:   StatusFailed,
		Message:  message,
	}
}

func NewUnauthorizedError(message string) *Error {
	return &Error{
		HTTPCode: http.StatusUnauthorized,
		Status:   StatusUnauthorized,
		Message:  message,
	}
}

// NewNotFoundError reports that the directly addressed record is missing.
func NewNotFoundError(message string) *Error {
	return &Error{
		HTTPCode: http.StatusNotFound,
		Status:   StatusFailed,
		Message:  message,
	}
}

// NewInternalError hides the cause behind a generic message. The wrapped
// error is for logging only.
func NewInternalError(err error) *Error {
	return &Error{
		HTTPCode: http.StatusInternalServerError,
		Status:   StatusFailed,
		Message:  "internal server error",
		Err:      err,
	}
}
