package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error into the categories the UI cares about.
type Kind string

const (
	KindNetwork    Kind = "network"    // request failed before a response arrived
	KindAuth       Kind = "auth"       // 401/403 from the backend
	KindValidation Kind = "validation" // 4xx with a field-level message, or a local pre-submission check
	KindNotFound   Kind = "not_found"  // 404
	KindServer     Kind = "server"     // 5xx
)

// AppError is a custom error type that carries the error kind, the HTTP status
// that produced it and a user-facing message.
type AppError struct {
	Kind    Kind
	Code    int    // HTTP status code of the backend response, or 400 for local checks
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a kind, status code and message.
func New(kind Kind, code int, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, kind Kind, code int, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation is a shorthand for local validation failures that never touched
// the network.
func Validation(message string) *AppError {
	return New(KindValidation, http.StatusBadRequest, message)
}

// FromStatus maps a backend HTTP status to an AppError, keeping the
// backend-provided message verbatim when present.
func FromStatus(status int, message string) *AppError {
	if message == "" {
		message = "something went wrong, please try again"
	}

	var kind Kind
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuth
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status >= 400 && status < 500:
		kind = KindValidation
	default:
		kind = KindServer
	}

	return New(kind, status, message)
}

// KindOf returns the kind of err, or an empty Kind if err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsAuth reports whether err is an authentication/authorization failure.
func IsAuth(err error) bool {
	return KindOf(err) == KindAuth
}
