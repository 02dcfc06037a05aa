package dart

import (
	"bytes"

	"github.com/scigolib/dart/internal/convert"
	"github.com/scigolib/dart/internal/finalize"
	"github.com/scigolib/dart/internal/heap"
)

// Equal reports deep structural equality between v and other, regardless
// of which representation (heap or buffer) each side currently holds.
// Two finalized values of identical byte length take a fast path and
// compare raw bytes directly, which the canonical-encoding invariant
// (equal heaps finalize to identical bytes) makes safe.
func (v Value) Equal(other Value) (bool, error) {
	if v.buf != nil && other.buf != nil {
		a, b := v.el.Data, other.el.Data
		if v.el.Tag == other.el.Tag && len(a) == len(b) && bytes.Equal(a, b) {
			return true, nil
		}
	}

	ah, err := v.toComparableHeap()
	if err != nil {
		return false, err
	}
	bh, err := other.toComparableHeap()
	if err != nil {
		return false, err
	}
	return heap.Equal(ah, bh), nil
}

func (v Value) toComparableHeap() (*heap.Heap, error) {
	if v.h != nil {
		return v.h, nil
	}
	return finalize.DefinalizeElement(v.el)
}

// Compare orders lhs and rhs the way bytes.Compare does: negative, zero,
// or positive. This is the public entry point for internal/convert's
// comparison contract (numeric int/decimal widening, registered user-type
// comparators, deep dart-value ordering) — a Value argument is resolved
// to its heap form first, so two objects or arrays compare structurally
// rather than only by buffer byte-identity. Anything else is passed
// through to the classifier unchanged.
func Compare(lhs, rhs any) (int, error) {
	l, err := resolveForCompare(lhs)
	if err != nil {
		return 0, err
	}
	r, err := resolveForCompare(rhs)
	if err != nil {
		return 0, err
	}
	return convert.Compare(l, r)
}

func resolveForCompare(v any) (any, error) {
	val, ok := v.(Value)
	if !ok {
		return v, nil
	}
	return val.toComparableHeap()
}
