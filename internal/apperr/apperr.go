// Package apperr defines the application error taxonomy. Every operation
// translates storage and upstream failures into one of these kinds at its
// boundary; handlers map kinds to HTTP statuses and never leak raw errors.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindAuthentication
	KindValidation
	KindDuplicate
	KindNotFound
	KindUpstream
)

// Error is a classified application error. Field is set for validation
// errors that concern a specific input field.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Authentication reports a missing or invalid principal.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// Validation reports a missing or out-of-range input value.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// Duplicate reports a uniqueness conflict, e.g. a game already logged.
func Duplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

// NotFound reports a referenced record that does not exist.
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// Upstream reports an external collaborator failure. It is retryable from
// the caller's point of view and never leaves partial writes behind.
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// Internal wraps an unexpected error with a caller-safe message.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the HTTP status its kind is surfaced as.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindDuplicate:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
