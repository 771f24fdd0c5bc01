package scribearc

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindWriterAtCapacity  ErrorKind = "writer_at_capacity"
	KindExhaustedRetries  ErrorKind = "exhausted_retries"
	KindNotFound          ErrorKind = "not_found"
	KindTooManyAttempts   ErrorKind = "too_many_attempts"
	KindValidationFailed  ErrorKind = "validation_failed"
)

// Error carries the failure kind alongside the offending values so callers can
// decide between retrying and surfacing without parsing the message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the ErrorKind of err, or "" if err is not a scribearc error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
