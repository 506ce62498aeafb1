// Package errs provides structured, user-friendly errors with machine-parseable codes.
package errs

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine-parseable error identifier.
type ErrorCode string

const (
	// General
	ErrUnknown    ErrorCode = "ERR-000"
	ErrInternal   ErrorCode = "ERR-001"
	ErrConfig     ErrorCode = "ERR-002"
	ErrValidation ErrorCode = "ERR-003"

	// Altitude errors
	ErrAltitudeNegative  ErrorCode = "ERR-ALT-001"
	ErrAltitudeNotFinite ErrorCode = "ERR-ALT-002"
	ErrAltitudeParse     ErrorCode = "ERR-ALT-003"

	// Body errors
	ErrBodyInvalid  ErrorCode = "ERR-BODY-001"
	ErrBodyNotFound ErrorCode = "ERR-BODY-002"

	// Band (configured orbit set) errors
	ErrBandInvalid ErrorCode = "ERR-BAND-001"
)

// KeplerError is the standard structured error type used across all packages.
type KeplerError struct {
	Code     ErrorCode // Machine-parseable error code
	Op       string    // Operation chain, e.g., "earth.resolve.altitude"
	Resource string    // Resource identifier (band name, body name, etc.)
	Cause    error     // Wrapped upstream error
	Advice   string    // Human-readable remediation hint
}

func (e *KeplerError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("[%s] %s (%s): %v", e.Code, e.Op, e.Resource, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Op, e.Cause)
}

func (e *KeplerError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the formatted user-facing error message with remediation advice.
func (e *KeplerError) UserMessage() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Op)
	if e.Resource != "" {
		msg += fmt.Sprintf(" (resource: %s)", e.Resource)
	}
	if e.Advice != "" {
		msg += fmt.Sprintf("\n  → %s", e.Advice)
	}
	return msg
}

// New creates a new KeplerError.
func New(code ErrorCode, op string, cause error) *KeplerError {
	return &KeplerError{Code: code, Op: op, Cause: cause}
}

// Newf creates a new KeplerError with a formatted message as the cause.
func Newf(code ErrorCode, op, format string, args ...any) *KeplerError {
	return &KeplerError{Code: code, Op: op, Cause: fmt.Errorf(format, args...)}
}

// WithResource sets the resource identifier on a KeplerError.
func (e *KeplerError) WithResource(resource string) *KeplerError {
	e.Resource = resource
	return e
}

// WithAdvice sets the human-readable remediation hint on a KeplerError.
func (e *KeplerError) WithAdvice(advice string) *KeplerError {
	e.Advice = advice
	return e
}

// Wrap wraps an existing error as a KeplerError at a new operation boundary.
func Wrap(err error, code ErrorCode, op string) *KeplerError {
	if err == nil {
		return nil
	}
	return &KeplerError{Code: code, Op: op, Cause: err}
}

// IsCode reports whether err is a KeplerError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var ke *KeplerError
	if errors.As(err, &ke) {
		return ke.Code == code
	}
	return false
}

// AsKepler extracts the *KeplerError from err, or returns nil.
func AsKepler(err error) *KeplerError {
	var ke *KeplerError
	if errors.As(err, &ke) {
		return ke
	}
	return nil
}
