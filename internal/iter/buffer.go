package iter

import "github.com/scigolib/dart/internal/bufview"

// BufferObjectIter walks a finalized object's fields in vtable order.
type BufferObjectIter struct {
	data    []byte
	n       int
	pos     int
	reverse bool
	exhaust bool
}

// NewBufferObjectIter returns a forward iterator over an object's raw
// bytes (as produced by RawElement.Data for a TagObject element).
func NewBufferObjectIter(data []byte) (*BufferObjectIter, error) {
	n, err := bufview.ObjectNumPairs(data)
	if err != nil {
		return nil, err
	}
	return &BufferObjectIter{data: data, n: n, pos: -1}, nil
}

// NewBufferObjectReverseIter returns a reverse iterator over an object's
// raw bytes.
func NewBufferObjectReverseIter(data []byte) (*BufferObjectIter, error) {
	n, err := bufview.ObjectNumPairs(data)
	if err != nil {
		return nil, err
	}
	return &BufferObjectIter{data: data, n: n, pos: n, reverse: true}, nil
}

// Next advances the cursor and reports whether a field is present.
func (it *BufferObjectIter) Next() bool {
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
func (it *BufferObjectIter) Key() (string, error) {
	return bufview.ObjectKeyAt(it.data, it.pos)
}

// Pair returns the current field's key and raw element together.
func (it *BufferObjectIter) Pair() (string, bufview.RawElement, error) {
	return bufview.ObjectPairAt(it.data, it.pos)
}

// BufferArrayIter walks a finalized array's elements in index order.
type BufferArrayIter struct {
	data    []byte
	n       int
	pos     int
	reverse bool
	exhaust bool
}

// NewBufferArrayIter returns a forward iterator over an array's raw
// bytes (as produced by RawElement.Data for a TagArray element).
func NewBufferArrayIter(data []byte) (*BufferArrayIter, error) {
	n, err := bufview.ArrayNumElems(data)
	if err != nil {
		return nil, err
	}
	return &BufferArrayIter{data: data, n: n, pos: -1}, nil
}

// NewBufferArrayReverseIter returns a reverse iterator over an array's
// raw bytes.
func NewBufferArrayReverseIter(data []byte) (*BufferArrayIter, error) {
	n, err := bufview.ArrayNumElems(data)
	if err != nil {
		return nil, err
	}
	return &BufferArrayIter{data: data, n: n, pos: n, reverse: true}, nil
}

// Next advances the cursor and reports whether an element is present.
func (it *BufferArrayIter) Next() bool {
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
func (it *BufferArrayIter) Index() int { return it.pos }

// Value returns the current raw element.
func (it *BufferArrayIter) Value() (bufview.RawElement, error) {
	el, _, err := bufview.ArrayGet(it.data, it.pos)
	return el, err
}
