// Package finalize converts between the mutable heap tree and the
// immutable finalized buffer. Finalize walks a heap tree bottom-up,
// building each subtree into its own Writer and splicing composites
// together via bufview.BuildObject/BuildArray; Definalize walks a buffer
// top-down, materializing heap nodes from RawElement accessors.
package finalize

import (
	"github.com/scigolib/dart/internal/bufview"
	"github.com/scigolib/dart/internal/heap"
	"github.com/scigolib/dart/internal/utils"
)

const defaultCapacityHint = 64

// Finalize converts a heap tree into an immutable buffer. The root value
// must be an object; dart's wire format has no non-object root.
func Finalize(h *heap.Heap) (*bufview.Buffer, error) {
	if h == nil || h.Kind() != heap.KindObject {
		return nil, utils.New(utils.InvalidArgument, "Finalize: root value must be an object")
	}
	el, err := finalizeNode(h)
	if err != nil {
		return nil, err
	}
	return bufview.FromBytesUnchecked(el.Data), nil
}

func finalizeNode(h *heap.Heap) (bufview.RawElement, error) {
	switch h.Kind() {
	case heap.KindNull:
		w := bufview.NewWriter(0)
		off := w.WriteNull()
		return bufview.RawElement{Tag: bufview.TagNull, Data: w.Bytes()[off:]}, nil

	case heap.KindBool:
		v, err := h.BoolValue()
		if err != nil {
			return bufview.RawElement{}, err
		}
		w := bufview.NewWriter(1)
		off := w.WriteBool(v)
		return bufview.RawElement{Tag: bufview.TagBoolean, Data: w.Bytes()[off:]}, nil

	case heap.KindInt64:
		v, err := h.Int64Value()
		if err != nil {
			return bufview.RawElement{}, err
		}
		w := bufview.NewWriter(8)
		off, tag := w.WriteInt64(v)
		return bufview.RawElement{Tag: tag, Data: w.Bytes()[off:]}, nil

	case heap.KindFloat64:
		v, err := h.Float64Value()
		if err != nil {
			return bufview.RawElement{}, err
		}
		w := bufview.NewWriter(8)
		off, tag := w.WriteFloat64(v)
		return bufview.RawElement{Tag: tag, Data: w.Bytes()[off:]}, nil

	case heap.KindString:
		v, err := h.StringValue()
		if err != nil {
			return bufview.RawElement{}, err
		}
		w := bufview.NewWriter(len(v) + 8)
		off, tag := w.WriteString(v)
		return bufview.RawElement{Tag: tag, Data: w.Bytes()[off:]}, nil

	case heap.KindObject:
		return finalizeObject(h)

	case heap.KindArray:
		return finalizeArray(h)

	default:
		return bufview.RawElement{}, utils.New(utils.TypeMismatch, "Finalize: unknown heap kind")
	}
}

func finalizeObject(h *heap.Heap) (bufview.RawElement, error) {
	n, err := h.NumFields()
	if err != nil {
		return bufview.RawElement{}, err
	}
	pairs := make([]bufview.Pair, n)
	for i := 0; i < n; i++ {
		key, child, err := h.FieldAt(i)
		if err != nil {
			return bufview.RawElement{}, err
		}
		val, err := finalizeNode(child)
		if err != nil {
			return bufview.RawElement{}, err
		}
		pairs[i] = bufview.Pair{Key: key, Value: val}
	}
	w := bufview.NewWriter(bufview.UpperBound(n, defaultCapacityHint))
	if _, err := bufview.BuildObject(w, pairs); err != nil {
		return bufview.RawElement{}, err
	}
	return bufview.RawElement{Tag: bufview.TagObject, Data: w.Bytes()}, nil
}

func finalizeArray(h *heap.Heap) (bufview.RawElement, error) {
	n, err := h.Len()
	if err != nil {
		return bufview.RawElement{}, err
	}
	elems := make([]bufview.RawElement, n)
	for i := 0; i < n; i++ {
		child, err := h.ElemAt(i)
		if err != nil {
			return bufview.RawElement{}, err
		}
		val, err := finalizeNode(child)
		if err != nil {
			return bufview.RawElement{}, err
		}
		elems[i] = val
	}
	w := bufview.NewWriter(bufview.UpperBound(n, defaultCapacityHint))
	bufview.BuildArray(w, elems)
	return bufview.RawElement{Tag: bufview.TagArray, Data: w.Bytes()}, nil
}
