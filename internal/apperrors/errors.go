package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application-specific error carrying an HTTP status
// and an optional wrapped cause.
type AppError struct {
	Status  int
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Cause)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	ErrValidation   = errors.New("validation failed")
)

func NewAppError(status int, message string, cause error) *AppError {
	return &AppError{Status: status, Message: message, Cause: cause}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// InvalidArgumentError is a 400 AppError, used by the HTTP surface in place
// of the dropped gRPC status codes.
func InvalidArgumentError(message string) error {
	return NewAppError(http.StatusBadRequest, message, nil)
}

func NotFoundError(message string) error {
	return NewAppError(http.StatusNotFound, message, nil)
}

func InternalError(message string) error {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
