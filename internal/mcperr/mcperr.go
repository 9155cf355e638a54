// Package mcperr provides the structured error types shared by the chart
// tools and both transports.
//
// Two kinds of failure are distinguished: KindInvalidParams for problems the
// caller can fix (missing or malformed fields, type-specific contract
// violations, unwritable output locations) and KindInternal for everything
// else, including collaborator failures. The transports map these kinds onto
// JSON-RPC error codes.
package mcperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for JSON-RPC reporting.
type Kind int

const (
	// KindInternal covers collaborator and unexpected failures.
	KindInternal Kind = iota

	// KindInvalidParams covers caller-input problems.
	KindInvalidParams
)

// JSON-RPC 2.0 error codes used by both transports.
const (
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeMethodNotFound = -32601
)

// Error is a structured error carrying a kind, a human-readable message,
// and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches two *Error values by kind, so errors.Is(err, mcperr.InvalidParamsf(""))
// style sentinels work. Exact message comparison is deliberately not part of
// the match.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// InvalidParamsf creates a caller-input error with a formatted message.
func InvalidParamsf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidParams, Message: fmt.Sprintf(format, args...)}
}

// Internalf creates an internal error with a formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf classifies any error. Errors that are not *Error, including nil
// wrapped foreign errors, classify as KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Code returns the JSON-RPC error code for an error's kind.
func Code(err error) int {
	if KindOf(err) == KindInvalidParams {
		return CodeInvalidParams
	}
	return CodeInternalError
}
