// Package utils holds small, dependency-free helpers shared across dart's
// internal packages: the structured error type, alignment arithmetic, and
// little-endian codecs. Nothing here knows about heaps, buffers, or packets.
package utils

import (
	"errors"
	"fmt"
)

// Kind classifies a dart error into one of a fixed set of categories.
// Callers use errors.As to recover a *Error and switch on Kind rather
// than matching on message text.
type Kind int

const (
	// TypeMismatch means an operation required a different semantic type
	// than the value actually holds (e.g. Integer() on a string).
	TypeMismatch Kind = iota
	// NotFound means At(key) / At(index) missed.
	NotFound
	// OutOfRange means an array At or Insert went past the end.
	OutOfRange
	// InvalidArgument covers oversized keys, malformed iterators, and
	// non-string/non-integer keys.
	InvalidArgument
	// ValidationError means raw bytes failed buffer validation.
	ValidationError
	// ParseError originates in an external parser collaborator.
	ParseError
	// AllocationFailed means the aligned allocator reported exhaustion.
	AllocationFailed
	// StateError means a mutating call hit a finalized packet that the
	// caller did not explicitly definalize first.
	StateError
)

// String renders the kind's name, used in Error.Error and in tests that
// assert on error kind rather than message.
func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case NotFound:
		return "NotFound"
	case OutOfRange:
		return "OutOfRange"
	case InvalidArgument:
		return "InvalidArgument"
	case ValidationError:
		return "ValidationError"
	case ParseError:
		return "ParseError"
	case AllocationFailed:
		return "AllocationFailed"
	case StateError:
		return "StateError"
	default:
		return "Unknown"
	}
}

// Error is dart's single structured error type. Every fallible operation in
// the library returns one of these (wrapped or bare) rather than a sentinel
// or a magic return value.
type Error struct {
	Kind    Kind
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dart: %s: %s: %v", e.Kind, e.Context, e.Cause)
	}
	return fmt.Sprintf("dart: %s: %s", e.Kind, e.Context)
}

// Unwrap provides compatibility with errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an *Error with no wrapped cause.
func New(kind Kind, context string) error {
	return &Error{Kind: kind, Context: context}
}

// Wrap builds an *Error around an existing cause. Returns nil if cause is
// nil, matching WrapError's contract so call sites can write
// `return Wrap(...)` unconditionally in defer/cleanup paths.
func Wrap(kind Kind, context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Context: context, Cause: cause}
}

// KindOf extracts the Kind of err if it is (or wraps) a *Error, returning ok
// = false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
