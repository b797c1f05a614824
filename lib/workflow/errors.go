package workflow

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type ErrorKind string

const (
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindInvalidActor    ErrorKind = "INVALID_ACTOR"
	KindAlreadyActioned ErrorKind = "ALREADY_ACTIONED"
	KindInvalidState    ErrorKind = "INVALID_STATE"
	KindValidation      ErrorKind = "VALIDATION_ERROR"
	KindStore           ErrorKind = "STORE_ERROR"
)

// Error is the typed failure every workflow operation returns.
// Fields lists missing or invalid input names for KindValidation.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  []string
	cause   error
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match on kind: errors.Is(err, &Error{Kind: KindNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return newError(KindNotFound, format, args...)
}

func InvalidActor(format string, args ...any) error {
	return newError(KindInvalidActor, format, args...)
}

func AlreadyActioned(format string, args ...any) error {
	return newError(KindAlreadyActioned, format, args...)
}

func InvalidState(format string, args ...any) error {
	return newError(KindInvalidState, format, args...)
}

func ValidationFailed(message string, fields ...string) error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// StoreFailure marks a persistence failure; callers may retry with backoff.
func StoreFailure(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindStore, Message: message, cause: err}
}

// KindOf returns the kind of a workflow error, or "" for foreign errors.
func KindOf(err error) ErrorKind {
	var wErr *Error
	if errors.As(err, &wErr) {
		return wErr.Kind
	}
	return ""
}

// FieldsOf returns the field names carried by a validation error.
func FieldsOf(err error) []string {
	var wErr *Error
	if errors.As(err, &wErr) {
		return wErr.Fields
	}
	return nil
}
