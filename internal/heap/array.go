package heap

import (
	"github.com/scigolib/dart/internal/refcount"
)

// ensureUniqueArray deep-clones h's array container when its use count
// exceeds safeguard, re-seating h.arr on the clone.
func ensureUniqueArray(h *Heap, safeguard int) {
	if safeguard <= 0 {
		safeguard = DefaultSafeguard
	}
	if h.arr.UseCount() <= int64(safeguard) {
		return
	}
	old := h.arr.Unwrap()
	cloned := make([]*Heap, len(old.elems))
	for i, e := range old.elems {
		cloned[i] = e.Clone()
	}
	h.arr.Reset()
	v := vector{elems: cloned}
	h.arr = refcount.NewAtomic(&v)
}

// Len returns the number of elements in an array heap.
func (h *Heap) Len() (int, error) {
	if h.kind != KindArray {
		return 0, typeMismatch("Len: not an array")
	}
	return len(h.arr.Unwrap().elems), nil
}

// ElemAt returns the element at index, or OutOfRange if index is invalid.
func (h *Heap) ElemAt(index int) (*Heap, error) {
	if h.kind != KindArray {
		return nil, typeMismatch("ElemAt: not an array")
	}
	elems := h.arr.Unwrap().elems
	if index < 0 || index >= len(elems) {
		return nil, outOfRange("ElemAt: index out of range")
	}
	return elems[index], nil
}

// Append adds val to the end of an array heap.
func (h *Heap) Append(val *Heap, safeguard int) error {
	if h.kind != KindArray {
		return typeMismatch("Append: not an array")
	}
	ensureUniqueArray(h, safeguard)
	v := h.arr.Unwrap()
	v.elems = append(v.elems, val)
	return nil
}

// InsertAt inserts val before index (index == Len() appends).
func (h *Heap) InsertAt(index int, val *Heap, safeguard int) error {
	if h.kind != KindArray {
		return typeMismatch("InsertAt: not an array")
	}
	ensureUniqueArray(h, safeguard)
	v := h.arr.Unwrap()
	if index < 0 || index > len(v.elems) {
		return outOfRange("InsertAt: index out of range")
	}
	v.elems = append(v.elems, nil)
	copy(v.elems[index+1:], v.elems[index:])
	v.elems[index] = val
	return nil
}

// SetAt overwrites the element at index.
func (h *Heap) SetAt(index int, val *Heap, safeguard int) error {
	if h.kind != KindArray {
		return typeMismatch("SetAt: not an array")
	}
	ensureUniqueArray(h, safeguard)
	v := h.arr.Unwrap()
	if index < 0 || index >= len(v.elems) {
		return outOfRange("SetAt: index out of range")
	}
	v.elems[index] = val
	return nil
}

// EraseAt removes the element at index, reporting whether it was in range.
func (h *Heap) EraseAt(index int, safeguard int) (bool, error) {
	if h.kind != KindArray {
		return false, typeMismatch("EraseAt: not an array")
	}
	ensureUniqueArray(h, safeguard)
	v := h.arr.Unwrap()
	if index < 0 || index >= len(v.elems) {
		return false, nil
	}
	v.elems = append(v.elems[:index], v.elems[index+1:]...)
	return true, nil
}
