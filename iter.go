package dart

import (
	"github.com/scigolib/dart/internal/bufview"
	iterpkg "github.com/scigolib/dart/internal/iter"
	"github.com/scigolib/dart/internal/utils"
)

// Iter walks an array's elements in order. Call Next before the first
// Value and after every subsequent one.
type Iter struct {
	h   *iterpkg.HeapArrayIter
	b   *iterpkg.BufferArrayIter
	buf *bufview.Buffer
}

// ArrayIter returns a forward element iterator over v, which must be an
// array.
func (v Value) ArrayIter() (*Iter, error) {
	if v.h != nil {
		it, err := iterpkg.NewHeapArrayIter(v.h)
		if err != nil {
			return nil, err
		}
		return &Iter{h: it}, nil
	}
	if v.buf != nil {
		it, err := iterpkg.NewBufferArrayIter(v.el.Data)
		if err != nil {
			return nil, err
		}
		return &Iter{b: it, buf: v.buf}, nil
	}
	return nil, utils.New(utils.StateError, "ArrayIter: uninitialized Value")
}

// ArrayReverseIter returns a reverse element iterator over v.
func (v Value) ArrayReverseIter() (*Iter, error) {
	if v.h != nil {
		it, err := iterpkg.NewHeapArrayReverseIter(v.h)
		if err != nil {
			return nil, err
		}
		return &Iter{h: it}, nil
	}
	if v.buf != nil {
		it, err := iterpkg.NewBufferArrayReverseIter(v.el.Data)
		if err != nil {
			return nil, err
		}
		return &Iter{b: it, buf: v.buf}, nil
	}
	return nil, utils.New(utils.StateError, "ArrayReverseIter: uninitialized Value")
}

// Next advances the cursor, reporting whether an element is present.
func (it *Iter) Next() bool {
	if it.h != nil {
		return it.h.Next()
	}
	return it.b.Next()
}

// Value returns the element at the cursor's current position.
func (it *Iter) Value() (Value, error) {
	if it.h != nil {
		child, err := it.h.Value()
		if err != nil {
			return Value{}, err
		}
		return fromHeap(child), nil
	}
	el, err := it.b.Value()
	if err != nil {
		return Value{}, err
	}
	return fromElement(it.buf, el), nil
}

// KeyIter walks an object's keys in vtable order.
type KeyIter struct {
	h *iterpkg.HeapObjectIter
	b *iterpkg.BufferObjectIter
}

// KeyIter returns a forward key iterator over v, which must be an
// object.
func (v Value) KeyIter() (*KeyIter, error) {
	if v.h != nil {
		it, err := iterpkg.NewHeapObjectIter(v.h)
		if err != nil {
			return nil, err
		}
		return &KeyIter{h: it}, nil
	}
	if v.buf != nil {
		it, err := iterpkg.NewBufferObjectIter(v.el.Data)
		if err != nil {
			return nil, err
		}
		return &KeyIter{b: it}, nil
	}
	return nil, utils.New(utils.StateError, "KeyIter: uninitialized Value")
}

// KeyReverseIter returns a reverse key iterator over v, which must be an
// object.
func (v Value) KeyReverseIter() (*KeyIter, error) {
	if v.h != nil {
		it, err := iterpkg.NewHeapObjectReverseIter(v.h)
		if err != nil {
			return nil, err
		}
		return &KeyIter{h: it}, nil
	}
	if v.buf != nil {
		it, err := iterpkg.NewBufferObjectReverseIter(v.el.Data)
		if err != nil {
			return nil, err
		}
		return &KeyIter{b: it}, nil
	}
	return nil, utils.New(utils.StateError, "KeyReverseIter: uninitialized Value")
}

// Next advances the cursor.
func (it *KeyIter) Next() bool {
	if it.h != nil {
		return it.h.Next()
	}
	return it.b.Next()
}

// Key returns the current field's key.
func (it *KeyIter) Key() (string, error) {
	if it.h != nil {
		return it.h.Key()
	}
	return it.b.Key()
}

// PairIter walks an object's (key, value) pairs in vtable order.
type PairIter struct {
	h   *iterpkg.HeapObjectIter
	b   *iterpkg.BufferObjectIter
	buf *bufview.Buffer
}

// PairIter returns a forward pair iterator over v, which must be an
// object.
func (v Value) PairIter() (*PairIter, error) {
	if v.h != nil {
		it, err := iterpkg.NewHeapObjectIter(v.h)
		if err != nil {
			return nil, err
		}
		return &PairIter{h: it}, nil
	}
	if v.buf != nil {
		it, err := iterpkg.NewBufferObjectIter(v.el.Data)
		if err != nil {
			return nil, err
		}
		return &PairIter{b: it, buf: v.buf}, nil
	}
	return nil, utils.New(utils.StateError, "PairIter: uninitialized Value")
}

// PairReverseIter returns a reverse pair iterator over v, which must be
// an object.
func (v Value) PairReverseIter() (*PairIter, error) {
	if v.h != nil {
		it, err := iterpkg.NewHeapObjectReverseIter(v.h)
		if err != nil {
			return nil, err
		}
		return &PairIter{h: it}, nil
	}
	if v.buf != nil {
		it, err := iterpkg.NewBufferObjectReverseIter(v.el.Data)
		if err != nil {
			return nil, err
		}
		return &PairIter{b: it, buf: v.buf}, nil
	}
	return nil, utils.New(utils.StateError, "PairReverseIter: uninitialized Value")
}

// Next advances the cursor.
func (it *PairIter) Next() bool {
	if it.h != nil {
		return it.h.Next()
	}
	return it.b.Next()
}

// Pair returns the current field's key and value together.
func (it *PairIter) Pair() (string, Value, error) {
	if it.h != nil {
		k, child, err := it.h.Pair()
		if err != nil {
			return "", Value{}, err
		}
		return k, fromHeap(child), nil
	}
	k, el, err := it.b.Pair()
	if err != nil {
		return "", Value{}, err
	}
	return k, fromElement(it.buf, el), nil
}

// GetNested performs left-to-right tokenized object lookup, returning a
// null Value (ok=false) if any path segment misses or hits a non-object.
func (v Value) GetNested(path, sep string) (Value, bool, error) {
	if v.h != nil {
		found, ok, err := iterpkg.GetNestedHeap(v.h, path, sep)
		if err != nil || !ok {
			return Value{}, ok, err
		}
		return fromHeap(found), true, nil
	}
	if v.buf == nil {
		return Value{}, false, utils.New(utils.StateError, "GetNested: uninitialized Value")
	}

	cur := v
	for _, seg := range iterpkg.SplitPath(path, sep) {
		k, err := cur.Kind()
		if err != nil {
			return Value{}, false, err
		}
		if k != KindObject {
			return Value{}, false, nil
		}
		next, ok, err := cur.Get(seg)
		if err != nil {
			return Value{}, false, err
		}
		if !ok {
			return Value{}, false, nil
		}
		cur = next
	}
	return cur, true, nil
}

// GetNestedOr is GetNested with a default substituted on any miss.
func (v Value) GetNestedOr(path, sep string, def Value) (Value, error) {
	found, ok, err := v.GetNested(path, sep)
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return def, nil
	}
	return found, nil
}

// SplitPath tokenizes a nested-lookup path, dropping empty segments.
func SplitPath(path, sep string) []string { return iterpkg.SplitPath(path, sep) }

// JoinPath is the inverse of SplitPath.
func JoinPath(segments []string, sep string) string { return iterpkg.JoinPath(segments, sep) }
