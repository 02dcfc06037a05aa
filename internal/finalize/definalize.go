package finalize

import (
	"github.com/scigolib/dart/internal/bufview"
	"github.com/scigolib/dart/internal/heap"
	"github.com/scigolib/dart/internal/utils"
)

// Definalize materializes a full mutable heap tree from a finalized
// buffer's root object.
func Definalize(b *bufview.Buffer) (*heap.Heap, error) {
	if b == nil {
		return nil, utils.New(utils.InvalidArgument, "Definalize: nil buffer")
	}
	return definalizeElement(b.Root())
}

// DefinalizeElement materializes a heap node from an arbitrary raw
// element, not necessarily a buffer's root — used when lifting a single
// nested view (e.g. a sub-object reached via ObjectGet) independently of
// its owning buffer.
func DefinalizeElement(e bufview.RawElement) (*heap.Heap, error) {
	return definalizeElement(e)
}

func definalizeElement(e bufview.RawElement) (*heap.Heap, error) {
	switch e.Tag {
	case bufview.TagNull:
		return heap.NewNull(), nil
	case bufview.TagBoolean:
		v, err := e.Boolean()
		if err != nil {
			return nil, err
		}
		return heap.NewBool(v), nil
	case bufview.TagShortInteger, bufview.TagInteger, bufview.TagLongInteger:
		v, err := e.Integer()
		if err != nil {
			return nil, err
		}
		return heap.NewInt64(v), nil
	case bufview.TagDecimal, bufview.TagLongDecimal:
		v, err := e.Decimal()
		if err != nil {
			return nil, err
		}
		return heap.NewFloat64(v), nil
	case bufview.TagString, bufview.TagSmallString, bufview.TagBigString:
		v, err := e.StringView()
		if err != nil {
			return nil, err
		}
		return heap.NewString(v), nil
	case bufview.TagObject:
		return definalizeObject(e.Data)
	case bufview.TagArray:
		return definalizeArray(e.Data)
	default:
		return nil, utils.New(utils.TypeMismatch, "Definalize: unknown tag")
	}
}

func definalizeObject(data []byte) (*heap.Heap, error) {
	n, err := bufview.ObjectNumPairs(data)
	if err != nil {
		return nil, err
	}
	h := heap.NewObject()
	for i := 0; i < n; i++ {
		key, val, err := bufview.ObjectPairAt(data, i)
		if err != nil {
			return nil, err
		}
		child, err := definalizeElement(val)
		if err != nil {
			return nil, err
		}
		if err := h.Insert(key, child, heap.DefaultSafeguard); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func definalizeArray(data []byte) (*heap.Heap, error) {
	n, err := bufview.ArrayNumElems(data)
	if err != nil {
		return nil, err
	}
	h := heap.NewArray()
	for i := 0; i < n; i++ {
		el, err := bufview.ArrayAt(data, i)
		if err != nil {
			return nil, err
		}
		child, err := definalizeElement(el)
		if err != nil {
			return nil, err
		}
		if err := h.Append(child, heap.DefaultSafeguard); err != nil {
			return nil, err
		}
	}
	return h, nil
}
