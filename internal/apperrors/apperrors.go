package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so transport code can map it to a
// stable status without inspecting message text.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindInvalidState Kind = "INVALID_STATE"
	KindNotReady     Kind = "NOT_READY"
	KindStorage      Kind = "STORAGE"
	KindInternal     Kind = "INTERNAL"
)

// AppError is a structured application error with a kind, a user-facing
// message, and an optional cause.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError with the given kind and message.
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Newf creates an AppError with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{Kind: kind, Message: message, Cause: err}
}

// Validation builds a user-correctable input error.
func Validation(format string, args ...interface{}) *AppError {
	return Newf(KindValidation, format, args...)
}

// NotFound builds an unknown-identifier error.
func NotFound(format string, args ...interface{}) *AppError {
	return Newf(KindNotFound, format, args...)
}

// InvalidState builds an error for an operation not permitted in the
// record's current lifecycle state.
func InvalidState(format string, args ...interface{}) *AppError {
	return Newf(KindInvalidState, format, args...)
}

// NotReady builds an error for reads that require a completed interview.
func NotReady(format string, args ...interface{}) *AppError {
	return Newf(KindNotReady, format, args...)
}

// KindOf extracts the kind from err, or KindInternal when err carries none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
