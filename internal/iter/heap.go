// Package iter provides key/value/pair iteration over both the mutable
// heap tree and the finalized buffer representation, plus tokenized
// nested-path lookup. Grounded on the classify-and-dispatch iteration
// style used throughout scigolib's HDF5 group/attribute walking, adapted
// here from wire cursors to in-memory containers.
package iter

import "github.com/scigolib/dart/internal/heap"

// HeapObjectIter walks an object's fields in vtable (sorted) order.
// The zero value is not usable; construct with NewHeapObjectIter.
type HeapObjectIter struct {
	h       *heap.Heap
	n       int
	pos     int
	reverse bool
	exhaust bool
}

// NewHeapObjectIter returns a forward iterator positioned before the
// first field.
func NewHeapObjectIter(h *heap.Heap) (*HeapObjectIter, error) {
	n, err := h.NumFields()
	if err != nil {
		return nil, err
	}
	return &HeapObjectIter{h: h, n: n, pos: -1}, nil
}

// NewHeapObjectReverseIter returns a reverse iterator positioned after
// the last field.
func NewHeapObjectReverseIter(h *heap.Heap) (*HeapObjectIter, error) {
	n, err := h.NumFields()
	if err != nil {
		return nil, err
	}
	return &HeapObjectIter{h: h, n: n, pos: n, reverse: true}, nil
}

// Next advances the cursor and reports whether a field is present.
func (it *HeapObjectIter) Next() bool {
	if it.exhaust {
		return false
	}
	if it.reverse {
		it.pos--
		if it.pos < 0 {
			it.exhaust = true
			return false
		}
		return true
	}
	it.pos++
	if it.pos >= it.n {
		it.exhaust = true
		return false
	}
	return true
}

// Key returns the current field's key.
func (it *HeapObjectIter) Key() (string, error) {
	return it.h.FieldKeyAt(it.pos)
}

// Value returns the current field's value.
func (it *HeapObjectIter) Value() (*heap.Heap, error) {
	_, v, err := it.h.FieldAt(it.pos)
	return v, err
}

// Pair returns the current field's key and value together.
func (it *HeapObjectIter) Pair() (string, *heap.Heap, error) {
	return it.h.FieldAt(it.pos)
}

// HeapArrayIter walks an array's elements in index order.
type HeapArrayIter struct {
	h       *heap.Heap
	n       int
	pos     int
	reverse bool
	exhaust bool
}

// NewHeapArrayIter returns a forward iterator positioned before the
// first element.
func NewHeapArrayIter(h *heap.Heap) (*HeapArrayIter, error) {
	n, err := h.Len()
	if err != nil {
		return nil, err
	}
	return &HeapArrayIter{h: h, n: n, pos: -1}, nil
}

// NewHeapArrayReverseIter returns a reverse iterator positioned after
// the last element.
func NewHeapArrayReverseIter(h *heap.Heap) (*HeapArrayIter, error) {
	n, err := h.Len()
	if err != nil {
		return nil, err
	}
	return &HeapArrayIter{h: h, n: n, pos: n, reverse: true}, nil
}

// Next advances the cursor and reports whether an element is present.
func (it *HeapArrayIter) Next() bool {
	if it.exhaust {
		return false
	}
	if it.reverse {
		it.pos--
		if it.pos < 0 {
			it.exhaust = true
			return false
		}
		return true
	}
	it.pos++
	if it.pos >= it.n {
		it.exhaust = true
		return false
	}
	return true
}

// Index reports the current element's position.
func (it *HeapArrayIter) Index() int { return it.pos }

// Value returns the current element.
func (it *HeapArrayIter) Value() (*heap.Heap, error) {
	return it.h.ElemAt(it.pos)
}
