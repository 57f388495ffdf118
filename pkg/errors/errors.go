// Package errors provides structured error types for polyblade.
//
// Every failure the graph core can report carries a machine-readable
// [Code], so callers can branch on the failure class without string
// matching:
//   - INVALID_*: rejected input (bad edges, bad notation, bad counts)
//   - UNKNOWN_VERTEX: a vertex id or handle that does not resolve
//   - DISCONNECTED_GRAPH: shortest paths could not reach every pair
//   - FACE_DISCOVERY_EXHAUSTED: fewer faces than Euler's formula demands
//   - INVARIANT_VIOLATION: internal bookkeeping diverged; fatal
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownVertex, "vertex %d out of range", v)
//	if errors.Is(err, errors.ErrCodeUnknownVertex) {
//	    // Handle lookup failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidNotation, parseErr, "parse %q", expr)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidEdge     Code = "INVALID_EDGE"
	ErrCodeInvalidNotation Code = "INVALID_NOTATION"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Lookup errors
	ErrCodeUnknownVertex Code = "UNKNOWN_VERTEX"

	// Topology errors
	ErrCodeDisconnectedGraph      Code = "DISCONNECTED_GRAPH"
	ErrCodeFaceDiscoveryExhausted Code = "FACE_DISCOVERY_EXHAUSTED"
	ErrCodeInvariantViolation     Code = "INVARIANT_VIOLATION"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Fatal reports whether err leaves the producing value unusable.
// Only invariant violations are fatal; every other code describes a
// rejected request or a degraded but consistent result.
func Fatal(err error) bool {
	return Is(err, ErrCodeInvariantViolation)
}
