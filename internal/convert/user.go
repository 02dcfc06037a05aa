package convert

import (
	"reflect"

	"github.com/scigolib/dart/internal/utils"
)

// ConversionTraits describes how a user-defined Go type round-trips
// through dart. ToDart converts a value of type T into something
// classifiable by Classify (typically a primitive, a map, or a slice).
// FromDart converts back. Compare is optional; when nil, two registered
// values of the same type compare only as equal/not-equal via
// reflect.DeepEqual.
type ConversionTraits[T any] struct {
	ToDart   func(v T) (any, error)
	FromDart func(p any) (T, error)
	Compare  func(a, b T) int
}

// registeredEntry is the type-erased form of a ConversionTraits[T],
// stored in the registry keyed by reflect.Type.
type registeredEntry struct {
	toDart   func(v any) (any, error)
	fromDart func(p any) (any, error)
	compare  func(a, b any) (int, bool)
}

var registry = map[reflect.Type]*registeredEntry{}

// RegisterUser installs conversion traits for T. Calling it twice for the
// same T replaces the previous registration.
func RegisterUser[T any](traits ConversionTraits[T]) {
	var zero T
	typ := reflect.TypeOf(zero)

	entry := &registeredEntry{
		toDart: func(v any) (any, error) {
			return traits.ToDart(v.(T))
		},
		fromDart: func(p any) (any, error) {
			return traits.FromDart(p)
		},
	}
	if traits.Compare != nil {
		entry.compare = func(a, b any) (int, bool) {
			return traits.Compare(a.(T), b.(T)), true
		}
	}
	registry[typ] = entry
}

// registryFor looks up the registered entry for v's concrete type, if any.
func registryFor(v any) (*registeredEntry, bool) {
	e, ok := registry[reflect.TypeOf(v)]
	return e, ok
}

// ToDartValue runs v's registered ToDart conversion. Callers must check
// Classify(v) == CategoryUser first.
func ToDartValue(v any) (any, error) {
	e, ok := registryFor(v)
	if !ok {
		return nil, utils.New(utils.TypeMismatch, "ToDartValue: no registered conversion traits")
	}
	return e.toDart(v)
}

// FromDartValue runs T's registered FromDart conversion, dispatching on
// the reflect.Type of sample (typically a zero value of the desired T).
func FromDartValue(sample any, p any) (any, error) {
	e, ok := registryFor(sample)
	if !ok {
		return nil, utils.New(utils.TypeMismatch, "FromDartValue: no registered conversion traits")
	}
	return e.fromDart(p)
}
