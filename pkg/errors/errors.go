// Package errors provides structured error types for archviz.
//
// Catalog integrity violations (an edge naming a node that does not exist, a
// node whose group has no colour) are authoring mistakes, not runtime
// conditions. They surface as *Error values with a machine-readable [Code] so
// callers and tests can tell them apart from I/O failures.
//
// # Error Codes
//
//   - UNKNOWN_*: a reference to an identifier missing from the catalog
//   - INVALID_*: input validation failures (formats, kinds, paths, colours)
//   - NOT_FOUND, MISSING_PLACEHOLDER: lookups that came back empty
//   - INTERNAL_ERROR, UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownNode, "edge %s -> %s: unknown node %q", from, to, to)
//	if errors.Is(err, errors.ErrCodeUnknownNode) {
//	    // fix the catalog
//	}
//
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "render %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Catalog integrity errors
	ErrCodeUnknownNode   Code = "UNKNOWN_NODE_REFERENCE"
	ErrCodeUnknownGroup  Code = "UNKNOWN_GROUP"
	ErrCodeDuplicateNode Code = "DUPLICATE_NODE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidKind   Code = "INVALID_KIND"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Lookup errors
	ErrCodeNotFound           Code = "NOT_FOUND"
	ErrCodeMissingPlaceholder Code = "MISSING_PLACEHOLDER"

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

// UnknownNode reports a reference to a node identifier absent from a catalog.
func UnknownNode(id string) *Error {
	return New(ErrCodeUnknownNode, "unknown node %q", id)
}

// UnknownGroup reports a group tag that has no entry in the colour table.
func UnknownGroup(group string) *Error {
	return New(ErrCodeUnknownGroup, "unknown group %q", group)
}
