package dart

import (
	"github.com/scigolib/dart/internal/bufview"
	"github.com/scigolib/dart/internal/heap"
	"github.com/scigolib/dart/internal/utils"
)

// Len reports an array's element count.
func (v Value) Len() (int, error) {
	if v.h != nil {
		return v.h.Len()
	}
	if v.buf != nil {
		return bufview.ArrayNumElems(v.el.Data)
	}
	return 0, utils.New(utils.StateError, "Len: uninitialized Value")
}

// GetAt looks up index, reporting ok=false (not an error) when out of
// range.
func (v Value) GetAt(index int) (Value, bool, error) {
	if v.h != nil {
		n, err := v.h.Len()
		if err != nil {
			return Value{}, false, err
		}
		if index < 0 || index >= n {
			return Value{}, false, nil
		}
		child, err := v.h.ElemAt(index)
		if err != nil {
			return Value{}, false, err
		}
		return fromHeap(child), true, nil
	}
	if v.buf != nil {
		el, ok, err := bufview.ArrayGet(v.el.Data, index)
		if err != nil || !ok {
			return Value{}, ok, err
		}
		return fromElement(v.buf, el), true, nil
	}
	return Value{}, false, utils.New(utils.StateError, "GetAt: uninitialized Value")
}

// AtIndex looks up index, failing with OutOfRange when out of bounds.
func (v Value) AtIndex(index int) (Value, error) {
	val, ok, err := v.GetAt(index)
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return Value{}, utils.New(utils.OutOfRange, "array index out of range")
	}
	return val, nil
}

// InsertAt inserts val at index, shifting later elements right.
func (v *Value) InsertAt(index int, val any) error {
	if err := v.ensureHeap(); err != nil {
		return err
	}
	child, err := toHeapChild(val)
	if err != nil {
		return err
	}
	return v.h.InsertAt(index, child, heap.DefaultSafeguard)
}

// PushBack appends val to the end of the array.
func (v *Value) PushBack(val any) error {
	if err := v.ensureHeap(); err != nil {
		return err
	}
	child, err := toHeapChild(val)
	if err != nil {
		return err
	}
	return v.h.Append(child, heap.DefaultSafeguard)
}

// PopBack removes and returns the last element.
func (v *Value) PopBack() (Value, error) {
	if err := v.ensureHeap(); err != nil {
		return Value{}, err
	}
	n, err := v.h.Len()
	if err != nil {
		return Value{}, err
	}
	if n == 0 {
		return Value{}, utils.New(utils.OutOfRange, "PopBack: array is empty")
	}
	last, err := v.h.ElemAt(n - 1)
	if err != nil {
		return Value{}, err
	}
	if _, err := v.h.EraseAt(n-1, heap.DefaultSafeguard); err != nil {
		return Value{}, err
	}
	return fromHeap(last), nil
}

// EraseAt removes the element at index, reporting whether it was
// present.
func (v *Value) EraseAt(index int) (bool, error) {
	if err := v.ensureHeap(); err != nil {
		return false, err
	}
	return v.h.EraseAt(index, heap.DefaultSafeguard)
}
