// Package serrors provides semantic error kinds that carry enough meaning for the
// transport layer to pick a response (status code, public message) without
// inspecting concrete causes.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided name.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrBadRequest indicates the client sent data that failed validation.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized indicates an upstream provider rejected our credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrInternal indicates an internal failure the caller cannot act upon.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates a dependency is not configured or not reachable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates an upstream provider throttled us.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional message. errors.Is and errors.As match both the
// kind and the wrapped cause.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg: "<msg>"
//   - only err: "<err>"
//   - neither: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As supports type assertions against either the kind sentinel or the wrapped error.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the outermost semantic kind found in err's chain, or
// ErrInternal when err carries none. It returns nil for a nil error.
func KindOf(err error) Kind {
	if err == nil {
		return nil
	}

	var se *Error
	for cur := err; cur != nil; {
		if !errors.As(cur, &se) {
			break
		}
		if se.kind != nil {
			return se.kind
		}
		cur = se.err
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// PublicMessage returns the message a semantic error of the given kind carries,
// walking the chain until it finds the *Error whose kind is k.
func PublicMessage(err error, k Kind) string {
	var se *Error
	for cur := err; cur != nil; {
		if !errors.As(cur, &se) {
			return ""
		}
		if se.kind == k {
			return se.msg
		}
		cur = se.err
	}

	return ""
}
