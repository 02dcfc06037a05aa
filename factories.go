package dart

import (
	"github.com/scigolib/dart/internal/heap"
	"github.com/scigolib/dart/internal/utils"
)

// Null constructs a null Value.
func Null() Value { return fromHeap(heap.NewNull()) }

// Bool constructs a boolean Value.
func Bool(b bool) Value { return fromHeap(heap.NewBool(b)) }

// Int constructs an integer Value.
func Int(i int64) Value { return fromHeap(heap.NewInt64(i)) }

// Decimal constructs a floating-point Value.
func Decimal(f float64) Value { return fromHeap(heap.NewFloat64(f)) }

// Str constructs a string Value, using the small-string inline form when
// s fits.
func Str(s string) Value { return fromHeap(heap.NewString(s)) }

// Object constructs an object Value from an alternating key/value
// argument list (k1, v1, k2, v2, ...). Keys must be strings; values may
// be dart Values or any Go value the conversion layer can classify.
func Object(pairs ...any) (Value, error) {
	if len(pairs)%2 != 0 {
		return Value{}, utils.New(utils.InvalidArgument, "Object: odd number of arguments")
	}
	h := heap.NewObject()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return Value{}, utils.New(utils.InvalidArgument, "Object: key argument is not a string")
		}
		child, err := toHeapChild(pairs[i+1])
		if err != nil {
			return Value{}, err
		}
		if err := h.Insert(key, child, heap.DefaultSafeguard); err != nil {
			return Value{}, err
		}
	}
	return fromHeap(h), nil
}

// Array constructs an array Value from its elements, in order.
func Array(elems ...any) (Value, error) {
	h := heap.NewArray()
	for _, e := range elems {
		child, err := toHeapChild(e)
		if err != nil {
			return Value{}, err
		}
		if err := h.Append(child, heap.DefaultSafeguard); err != nil {
			return Value{}, err
		}
	}
	return fromHeap(h), nil
}
