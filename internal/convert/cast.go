package convert

import (
	"reflect"

	"github.com/scigolib/dart/internal/utils"
)

// ToInt64 widens any integer category value to int64. Non-integer
// categories fail with TypeMismatch.
func ToInt64(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), nil
	default:
		return 0, utils.New(utils.TypeMismatch, "ToInt64: not an integer")
	}
}

// ToFloat64 widens any decimal-category value to float64, and also
// accepts integers (a widening-only primitive cast).
func ToFloat64(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	default:
		return 0, utils.New(utils.TypeMismatch, "ToFloat64: not numeric")
	}
}

// ToBool extracts a bool. No widening: only CategoryBoolean is accepted.
func ToBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, utils.New(utils.TypeMismatch, "ToBool: not a bool")
	}
	return b, nil
}

// ToString extracts a string. No widening: only CategoryString is accepted.
func ToString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", utils.New(utils.TypeMismatch, "ToString: not a string")
	}
	return s, nil
}

// IsCastable reports whether a value of category from can be cast to
// category to without loss of information other than the widening dart
// already allows: integer->decimal is castable, decimal->integer is not
// (narrowing), and every other pair requires from == to.
func IsCastable(from, to Category) bool {
	if from == to {
		return true
	}
	return from == CategoryInteger && to == CategoryDecimal
}

// AreComparable reports whether two categories can be ordered/compared at
// all. Numeric categories compare across each other; everything else
// requires an exact category match.
func AreComparable(a, b Category) bool {
	if a == b {
		return true
	}
	numeric := func(c Category) bool { return c == CategoryInteger || c == CategoryDecimal }
	return numeric(a) && numeric(b)
}
