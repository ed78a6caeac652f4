package httperr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
)

// Error standardizes application errors carried up to the HTTP layer.
type Error struct {
	Code    string
	Message string
	Status  int
	Err     error
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

// New constructs an Error with an explicit code and status.
func New(code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

func Validation(message string) error {
	return New("VALIDATION_FAILED", message, http.StatusBadRequest)
}

func Conflict(message string) error {
	return New("CONFLICT", message, http.StatusConflict)
}

func Unauthorized(message string) error {
	return New("UNAUTHORIZED", message, http.StatusUnauthorized)
}

func NotFound(message string) error {
	return New("NOT_FOUND", message, http.StatusNotFound)
}

func Internal(err error) error {
	return &Error{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error.",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// From converts any error to an *Error for rendering.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, sql.ErrNoRows) {
		return New("NOT_FOUND", "Resource not found.", http.StatusNotFound)
	}
	return &Error{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error.",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}
