// Package errors provides structured error types for mandelzoom.
//
// The rendering core has no recoverable errors: its functions are total over
// well-formed inputs and panic on precondition violations. This package covers
// the boundary where untrusted input enters, such as command-line flags,
// config files and HTTP requests, so that every rejection carries a
// machine-readable code the CLI can print and the server can map to a status.
//
// # Error Codes
//
//   - INVALID_*: input validation failures
//   - SESSION_NOT_FOUND: unknown or expired view session
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDepth, "depth %d out of range", d)
//	if errors.Is(err, errors.ErrCodeInvalidDepth) {
//	    // handle validation error
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidWindow Code = "INVALID_WINDOW"
	ErrCodeInvalidDepth  Code = "INVALID_DEPTH"
	ErrCodeInvalidCanvas Code = "INVALID_CANVAS"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidRegion Code = "INVALID_REGION"
	ErrCodeInvalidEvent  Code = "INVALID_EVENT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeSessionNotFound Code = "SESSION_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// IsValidation reports whether err carries one of the INVALID_* codes.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidWindow, ErrCodeInvalidDepth,
		ErrCodeInvalidCanvas, ErrCodeInvalidFormat, ErrCodeInvalidRegion,
		ErrCodeInvalidEvent, ErrCodeInvalidConfig:
		return true
	}
	return false
}
