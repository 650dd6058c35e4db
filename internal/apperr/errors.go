// Package apperr defines the error categories returned by services and
// datastore drivers. Each category maps to exactly one HTTP status.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindValidation
	KindUnauthorized
	KindNotFound
	KindInternal
	KindDatabase
)

// DatabaseMessage is the only text a client ever sees for a datastore failure.
const DatabaseMessage = "an error occurred, please try again"

type Error struct {
	Kind    Kind
	Message string
	// Errors lists every violated rule of a Validation error.
	Errors []string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindBadRequest, KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

func Validation(message string, violations []string) *Error {
	errs := make([]string, len(violations))
	copy(errs, violations)
	return &Error{Kind: KindValidation, Message: message, Errors: errs}
}

// Database wraps a driver failure. The cause is kept for server-side logging
// and never rendered to clients.
func Database(cause error) *Error {
	return &Error{Kind: KindDatabase, Message: DatabaseMessage, cause: cause}
}

// As reports whether err carries an *Error anywhere in its chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// StatusOf returns the HTTP status for err; unknown errors are 500.
func StatusOf(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode()
	}
	return http.StatusInternalServerError
}

func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
