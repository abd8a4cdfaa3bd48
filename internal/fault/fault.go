// Package fault classifies errors into the two tiers hideme cares about:
// fatal conditions that end the process and recoverable ones that are logged
// and replaced with a safe default.
package fault

import (
	"errors"
	"fmt"
)

// Kind is the severity of an Error.
type Kind int

const (
	// KindRecoverable means the caller logs the error and carries on.
	KindRecoverable Kind = iota
	// KindFatal means the process must exit.
	KindFatal
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindRecoverable:
		return "recoverable"
	case KindFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Error wraps an underlying error with the operation that produced it and its Kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fatal returns a fatal error for op.
func Fatal(op string, err error) error {
	return &Error{Kind: KindFatal, Op: op, Err: err}
}

// Recoverable returns a recoverable error for op.
func Recoverable(op string, err error) error {
	return &Error{Kind: KindRecoverable, Op: op, Err: err}
}

// KindOf reports the Kind of err. Errors that were never classified are
// treated as recoverable; nil has no kind and reports false.
func KindOf(err error) (Kind, bool) {
	if err == nil {
		return KindRecoverable, false
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return KindRecoverable, true
}

// IsFatal reports whether err, or any error it wraps, is fatal.
func IsFatal(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindFatal
}
