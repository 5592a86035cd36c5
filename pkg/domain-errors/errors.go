// Package domainerrors defines the typed error taxonomy returned to callers.
// Services translate store sentinels into these; transport maps them onto
// HTTP statuses. Nothing is swallowed on the way up.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the class of failure.
type Code string

const (
	// CodeInvalidInput covers malformed or missing request fields, including
	// startup configuration that fails validation.
	CodeInvalidInput Code = "invalid_input"
	// CodeNotFound means a referenced entity does not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict means the request contradicts current state.
	CodeConflict Code = "conflict"
	// CodeUnavailable means an upstream dependency could not be reached.
	// Retrying is the caller's decision, never done internally.
	CodeUnavailable Code = "unavailable"
	// CodeReleaseOverflow signals capacity bookkeeping drift: a release that
	// would push remaining capacity above the declared capacity.
	CodeReleaseOverflow Code = "release_overflow"
	// CodeInternal is the fallback for unexpected failures.
	CodeInternal Code = "internal"
)

// Error carries a code plus a human-readable reason.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a domain error with no underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error, preserving the
// chain for errors.Is/As.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the human-readable reason, defaulting to a generic one
// so internal details never leak to clients.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// ToHTTPStatus maps a code to its HTTP status equivalent.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeReleaseOverflow:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
