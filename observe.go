package dart

import "github.com/scigolib/dart/internal/utils"

// IsNull reports whether v holds the null value.
func (v Value) IsNull() bool { k, err := v.Kind(); return err == nil && k == KindNull }

// IsBool reports whether v holds a boolean.
func (v Value) IsBool() bool { k, err := v.Kind(); return err == nil && k == KindBool }

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool { k, err := v.Kind(); return err == nil && k == KindInt }

// IsDecimal reports whether v holds a decimal.
func (v Value) IsDecimal() bool { k, err := v.Kind(); return err == nil && k == KindDecimal }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { k, err := v.Kind(); return err == nil && k == KindString }

// IsObject reports whether v holds an object.
func (v Value) IsObject() bool { k, err := v.Kind(); return err == nil && k == KindObject }

// IsArray reports whether v holds an array.
func (v Value) IsArray() bool { k, err := v.Kind(); return err == nil && k == KindArray }

// Bool extracts the boolean value, failing with TypeMismatch if v is not
// a boolean.
func (v Value) Bool() (bool, error) {
	if v.h != nil {
		return v.h.BoolValue()
	}
	if v.buf != nil {
		return v.el.Boolean()
	}
	return false, utils.New(utils.StateError, "Bool: uninitialized Value")
}

// Int extracts the integer value.
func (v Value) Int() (int64, error) {
	if v.h != nil {
		return v.h.Int64Value()
	}
	if v.buf != nil {
		return v.el.Integer()
	}
	return 0, utils.New(utils.StateError, "Int: uninitialized Value")
}

// Decimal extracts the decimal value.
func (v Value) Decimal() (float64, error) {
	if v.h != nil {
		return v.h.Float64Value()
	}
	if v.buf != nil {
		return v.el.Decimal()
	}
	return 0, utils.New(utils.StateError, "Decimal: uninitialized Value")
}

// StringView borrows the string value with no copy when v is
// buffer-backed (the string's bytes alias the buffer's backing array);
// heap-backed small strings are already copy-free since they live inline.
func (v Value) StringView() (string, error) {
	if v.h != nil {
		return v.h.StringValue()
	}
	if v.buf != nil {
		return v.el.StringView()
	}
	return "", utils.New(utils.StateError, "StringView: uninitialized Value")
}

// StringCopy returns an independent copy of the string value.
func (v Value) StringCopy() (string, error) {
	s, err := v.StringView()
	if err != nil {
		return "", err
	}
	return string([]byte(s)), nil
}

// Size reports the element count: object field count, array length, or
// string byte length. Fails with TypeMismatch on a scalar primitive.
func (v Value) Size() (int, error) {
	k, err := v.Kind()
	if err != nil {
		return 0, err
	}
	switch k {
	case KindObject:
		return v.NumFields()
	case KindArray:
		return v.Len()
	case KindString:
		s, err := v.StringView()
		if err != nil {
			return 0, err
		}
		return len(s), nil
	default:
		return 0, utils.New(utils.TypeMismatch, "Size: not an object, array, or string")
	}
}

// orDefault is the shared implementation behind the *_or observer
// family: it runs get and substitutes def only when get fails with
// TypeMismatch, letting every other error kind (NotFound, OutOfRange,
// ...) still surface to the caller.
func orDefault[T any](get func() (T, error), def T) (T, error) {
	v, err := get()
	if err == nil {
		return v, nil
	}
	if kind, ok := KindOf(err); ok && kind == TypeMismatch {
		return def, nil
	}
	return v, err
}

// BoolOr is Bool with a TypeMismatch fallback.
func (v Value) BoolOr(def bool) (bool, error) { return orDefault(v.Bool, def) }

// IntOr is Int with a TypeMismatch fallback.
func (v Value) IntOr(def int64) (int64, error) { return orDefault(v.Int, def) }

// DecimalOr is Decimal with a TypeMismatch fallback.
func (v Value) DecimalOr(def float64) (float64, error) { return orDefault(v.Decimal, def) }

// StringViewOr is StringView with a TypeMismatch fallback.
func (v Value) StringViewOr(def string) (string, error) { return orDefault(v.StringView, def) }
