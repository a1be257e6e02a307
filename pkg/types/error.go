// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ErrorKind discriminates the failure modes of the pipeline. Every fatal
// error reaching the top level carries exactly one kind; callers handle
// failure uniformly instead of matching on distinct error types.
type ErrorKind string

const (
	// ErrConfig: the API credential is missing or empty.
	ErrConfig ErrorKind = "config"

	// ErrInput: the interactive prompt read failed (e.g. stdin closed).
	ErrInput ErrorKind = "input"

	// ErrTimeout: the provider did not answer within the request timeout.
	ErrTimeout ErrorKind = "timeout"

	// ErrUnreachable: the provider could not be reached at all.
	ErrUnreachable ErrorKind = "unreachable"

	// ErrAPI: the provider answered with a non-2xx status or a body
	// whose status field is not "ok".
	ErrAPI ErrorKind = "api"
)

// Error is the tagged failure type shared across the pipeline.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error returns the human-readable message.
func (e *Error) Error() string { return e.Message }

// NewError builds a tagged error with a formatted message.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
