// Package convert classifies Go values into dart's semantic categories
// and dispatches casts and comparisons between them. It is the layer
// that lets the root package accept `any` in its factories and observers
// without every call site hand-rolling a type switch.
//
// Grounded on internal/core's datatype*.go family, which classifies
// HDF5 wire datatypes (fixed-point, floating-point, compound,
// variable-length, string) into a closed tag set and dispatches
// read/compare logic per tag — the same "classify once, dispatch by a
// closed enum" shape, generalized here from wire datatypes to Go's
// dynamic value categories.
package convert

import (
	"reflect"

	"github.com/scigolib/dart/internal/bufview"
	"github.com/scigolib/dart/internal/heap"
)

// Category is one of the eight families a value passed into dart can
// belong to.
type Category int

const (
	CategoryNull Category = iota
	CategoryBoolean
	CategoryInteger
	CategoryDecimal
	CategoryString
	CategoryWrapper // pointer / interface wrapping another category
	CategoryDart    // *heap.Heap, *bufview.Buffer, or a root Value
	CategoryUser    // has a registered ConversionTraits
)

func (c Category) String() string {
	switch c {
	case CategoryNull:
		return "null"
	case CategoryBoolean:
		return "boolean"
	case CategoryInteger:
		return "integer"
	case CategoryDecimal:
		return "decimal"
	case CategoryString:
		return "string"
	case CategoryWrapper:
		return "wrapper"
	case CategoryDart:
		return "dart"
	case CategoryUser:
		return "user"
	default:
		return "unknown"
	}
}

// Classify reports which category v belongs to. nil (or a nil interface
// wrapping a nil pointer) is CategoryNull.
func Classify(v any) Category {
	if v == nil {
		return CategoryNull
	}
	switch v.(type) {
	case *heap.Heap, *bufview.Buffer, bufview.RawElement:
		return CategoryDart
	}
	if _, ok := registryFor(v); ok {
		return CategoryUser
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return CategoryNull
	case reflect.Bool:
		return CategoryBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return CategoryInteger
	case reflect.Float32, reflect.Float64:
		return CategoryDecimal
	case reflect.String:
		return CategoryString
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return CategoryNull
		}
		return CategoryWrapper
	default:
		return CategoryUser
	}
}
