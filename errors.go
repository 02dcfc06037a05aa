package dart

import "github.com/scigolib/dart/internal/utils"

// ErrorKind classifies a dart error. See the package-level error kind
// constants for the full taxonomy.
type ErrorKind = utils.Kind

// Error kinds, re-exported from internal/utils so callers never need to
// import an internal package to switch on err.Kind.
const (
	TypeMismatch     = utils.TypeMismatch
	NotFound         = utils.NotFound
	OutOfRange       = utils.OutOfRange
	InvalidArgument  = utils.InvalidArgument
	ValidationError  = utils.ValidationError
	ParseError       = utils.ParseError
	AllocationFailed = utils.AllocationFailed
	StateError       = utils.StateError
)

// Error is dart's structured error type, carrying a Kind and an optional
// wrapped cause. Use errors.As(err, &dart.Error{}) or KindOf(err).
type Error = utils.Error

// KindOf extracts err's Kind if it is (or wraps) a dart Error.
func KindOf(err error) (ErrorKind, bool) {
	return utils.KindOf(err)
}
