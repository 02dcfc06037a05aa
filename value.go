// Package dart implements a dual-representation JSON-like tree: a
// mutable, copy-on-write "heap" form for building and editing values, and
// an immutable, self-contained, zero-copy "buffer" form for storage and
// transport. A Value holds either representation and dispatches every
// observation to whichever side is active; finalize/definalize move a
// Value between the two.
package dart

import (
	"github.com/scigolib/dart/internal/bufview"
	"github.com/scigolib/dart/internal/convert"
	"github.com/scigolib/dart/internal/finalize"
	"github.com/scigolib/dart/internal/heap"
	"github.com/scigolib/dart/internal/utils"
)

// Kind is a Value's semantic type, independent of which representation
// (heap or buffer) currently holds it.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDecimal
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is dart's unified packet type: a tagged union of a mutable heap
// node and an immutable buffer view. At most one of h and buf is
// meaningful at a time; buf additionally carries el, the RawElement this
// Value currently observes within buf's backing bytes (the buffer's root
// object when the Value was produced by FromBytes, or a nested view
// reached via Get/At/element iteration).
type Value struct {
	h   *heap.Heap
	buf *bufview.Buffer
	el  bufview.RawElement
}

func fromHeap(h *heap.Heap) Value { return Value{h: h} }

func fromElement(buf *bufview.Buffer, el bufview.RawElement) Value {
	return Value{buf: buf, el: el}
}

// IsFinalized reports whether v is currently buffer-backed.
func (v Value) IsFinalized() bool { return v.buf != nil }

// Clone returns a new handle sharing v's underlying container, bumping
// its reference count. Mutating the clone triggers copy-on-write rather
// than mutating v's view, and vice versa — this is how a caller models
// "let b = a.clone()" rather than a plain Go struct copy, which would
// alias the same *heap.Heap pointer without bumping anything.
func (v Value) Clone() Value {
	if v.h != nil {
		return fromHeap(v.h.Clone())
	}
	if v.buf != nil {
		return fromElement(v.buf.Clone(), v.el)
	}
	return Value{}
}

// Kind reports v's semantic type.
func (v Value) Kind() (Kind, error) {
	if v.h != nil {
		return kindOfHeap(v.h.Kind()), nil
	}
	if v.buf != nil {
		return kindOfTag(v.el.Tag), nil
	}
	return KindNull, utils.New(utils.StateError, "Kind: uninitialized Value")
}

func kindOfHeap(k heap.Kind) Kind {
	switch k {
	case heap.KindNull:
		return KindNull
	case heap.KindBool:
		return KindBool
	case heap.KindInt64:
		return KindInt
	case heap.KindFloat64:
		return KindDecimal
	case heap.KindString:
		return KindString
	case heap.KindObject:
		return KindObject
	case heap.KindArray:
		return KindArray
	default:
		return KindNull
	}
}

func kindOfTag(t bufview.Tag) Kind {
	switch t {
	case bufview.TagNull:
		return KindNull
	case bufview.TagBoolean:
		return KindBool
	case bufview.TagShortInteger, bufview.TagInteger, bufview.TagLongInteger:
		return KindInt
	case bufview.TagDecimal, bufview.TagLongDecimal:
		return KindDecimal
	case bufview.TagString, bufview.TagSmallString, bufview.TagBigString:
		return KindString
	case bufview.TagObject:
		return KindObject
	case bufview.TagArray:
		return KindArray
	default:
		return KindNull
	}
}

// ensureHeap definalizes v in place if it is currently buffer-backed,
// satisfying the contract that mutation only ever happens on the heap
// side.
func (v *Value) ensureHeap() error {
	if v.h != nil {
		return nil
	}
	if v.buf == nil {
		return utils.New(utils.StateError, "mutation on uninitialized Value")
	}
	h, err := finalize.DefinalizeElement(v.el)
	if err != nil {
		return err
	}
	v.h = h
	v.buf = nil
	v.el = bufview.RawElement{}
	return nil
}

// Finalize moves v to the buffer side, allocating and laying out the
// tree if it is not already finalized. The root value must be an object.
func (v *Value) Finalize() error {
	if v.buf != nil {
		return nil
	}
	if v.h == nil {
		return utils.New(utils.StateError, "Finalize: uninitialized Value")
	}
	buf, err := finalize.Finalize(v.h)
	if err != nil {
		return err
	}
	v.buf = buf
	v.el = buf.Root()
	v.h = nil
	return nil
}

// Definalize moves v to the heap side, walking the buffer and
// materializing a mutable tree. Also available as Lift.
func (v *Value) Definalize() error {
	return v.ensureHeap()
}

// Lift is an alias for Definalize.
func (v *Value) Lift() error { return v.Definalize() }

// Lower is an alias for Finalize.
func (v *Value) Lower() error { return v.Finalize() }

// Bytes borrows the backing bytes of a finalized Value with no copy. The
// slice is only valid as long as v (or a clone sharing its buffer) is
// alive. Returns an error if v is not finalized or is a nested,
// non-root view.
func (v Value) Bytes() ([]byte, error) {
	if v.buf == nil {
		return nil, utils.New(utils.StateError, "Bytes: value is not finalized")
	}
	return v.buf.Bytes(), nil
}

// DupBytes copies a finalized Value's bytes out, safe to hold
// independently of v.
func (v Value) DupBytes() ([]byte, error) {
	if v.buf == nil {
		return nil, utils.New(utils.StateError, "DupBytes: value is not finalized")
	}
	return v.buf.DupBytes(), nil
}

// FromBytes validates data and adopts it as a finalized root Value,
// without copying the payload.
func FromBytes(data []byte) (Value, error) {
	buf, err := bufview.FromBytes(data)
	if err != nil {
		return Value{}, err
	}
	return fromElement(buf, buf.Root()), nil
}

// toHeapChild converts an arbitrary Go value (including another Value)
// into an owned *heap.Heap node suitable for insertion into a new
// container, routing through the registered-user-type bridge and the
// category classifier for anything that isn't already dart-native.
func toHeapChild(v any) (*heap.Heap, error) {
	switch t := v.(type) {
	case Value:
		return t.toOwnedHeap()
	case *heap.Heap:
		return t.Clone(), nil
	case nil:
		return heap.NewNull(), nil
	}

	switch convert.Classify(v) {
	case convert.CategoryNull:
		return heap.NewNull(), nil
	case convert.CategoryBoolean:
		b, err := convert.ToBool(v)
		if err != nil {
			return nil, err
		}
		return heap.NewBool(b), nil
	case convert.CategoryInteger:
		i, err := convert.ToInt64(v)
		if err != nil {
			return nil, err
		}
		return heap.NewInt64(i), nil
	case convert.CategoryDecimal:
		f, err := convert.ToFloat64(v)
		if err != nil {
			return nil, err
		}
		return heap.NewFloat64(f), nil
	case convert.CategoryString:
		s, err := convert.ToString(v)
		if err != nil {
			return nil, err
		}
		return heap.NewString(s), nil
	case convert.CategoryUser:
		bridged, err := convert.ToDartValue(v)
		if err != nil {
			return nil, err
		}
		return toHeapChild(bridged)
	default:
		return nil, utils.New(utils.TypeMismatch, "value cannot be converted into a dart value")
	}
}

// toOwnedHeap returns v's heap form, bumping a shared container's
// refcount rather than deep-copying when v is already heap-backed.
func (v Value) toOwnedHeap() (*heap.Heap, error) {
	if v.h != nil {
		return v.h.Clone(), nil
	}
	if v.buf != nil {
		return finalize.DefinalizeElement(v.el)
	}
	return nil, utils.New(utils.StateError, "toOwnedHeap: uninitialized Value")
}
