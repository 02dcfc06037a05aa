package dart

import (
	"github.com/scigolib/dart/internal/bufview"
	"github.com/scigolib/dart/internal/heap"
	"github.com/scigolib/dart/internal/utils"
)

// NumFields reports an object's field count.
func (v Value) NumFields() (int, error) {
	if v.h != nil {
		return v.h.NumFields()
	}
	if v.buf != nil {
		return bufview.ObjectNumPairs(v.el.Data)
	}
	return 0, utils.New(utils.StateError, "NumFields: uninitialized Value")
}

// HasKey reports whether key exists in an object.
func (v Value) HasKey(key string) (bool, error) {
	if v.h != nil {
		return v.h.Has(key)
	}
	if v.buf != nil {
		_, ok, err := bufview.ObjectGet(v.el.Data, key)
		return ok, err
	}
	return false, utils.New(utils.StateError, "HasKey: uninitialized Value")
}

// Get looks up key, reporting ok=false (not an error) on a miss.
func (v Value) Get(key string) (Value, bool, error) {
	if v.h != nil {
		child, ok, err := v.h.Get(key)
		if err != nil || !ok {
			return Value{}, ok, err
		}
		return fromHeap(child), true, nil
	}
	if v.buf != nil {
		el, ok, err := bufview.ObjectGet(v.el.Data, key)
		if err != nil || !ok {
			return Value{}, ok, err
		}
		return fromElement(v.buf, el), true, nil
	}
	return Value{}, false, utils.New(utils.StateError, "Get: uninitialized Value")
}

// At looks up key, failing with NotFound on a miss.
func (v Value) At(key string) (Value, error) {
	val, ok, err := v.Get(key)
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return Value{}, utils.New(utils.NotFound, "object key not found: "+key)
	}
	return val, nil
}

// GetOr is Get with a default substituted on a miss or a TypeMismatch
// (e.g. calling Get on a non-object).
func (v Value) GetOr(key string, def Value) (Value, error) {
	val, ok, err := v.Get(key)
	if err != nil {
		if kind, isErr := KindOf(err); isErr && kind == TypeMismatch {
			return def, nil
		}
		return Value{}, err
	}
	if !ok {
		return def, nil
	}
	return val, nil
}

// Find is an alias for At, matching the language-neutral API's naming.
func (v Value) Find(key string) (Value, error) { return v.At(key) }

// Keys returns every field key in vtable order.
func (v Value) Keys() ([]string, error) {
	n, err := v.NumFields()
	if err != nil {
		return nil, err
	}
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		if v.h != nil {
			keys[i], err = v.h.FieldKeyAt(i)
		} else {
			keys[i], err = bufview.ObjectKeyAt(v.el.Data, i)
		}
		if err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// Values returns every field value in vtable order.
func (v Value) Values() ([]Value, error) {
	n, err := v.NumFields()
	if err != nil {
		return nil, err
	}
	vals := make([]Value, n)
	for i := 0; i < n; i++ {
		if v.h != nil {
			_, child, err := v.h.FieldAt(i)
			if err != nil {
				return nil, err
			}
			vals[i] = fromHeap(child)
		} else {
			_, el, err := bufview.ObjectPairAt(v.el.Data, i)
			if err != nil {
				return nil, err
			}
			vals[i] = fromElement(v.buf, el)
		}
	}
	return vals, nil
}

// Insert adds or overwrites key with val, definalizing v onto the heap
// side first if needed.
func (v *Value) Insert(key string, val any) error {
	if err := v.ensureHeap(); err != nil {
		return err
	}
	child, err := toHeapChild(val)
	if err != nil {
		return err
	}
	return v.h.Insert(key, child, heap.DefaultSafeguard)
}

// Set overwrites an existing key's value in place, reporting ok=false and
// leaving v untouched if key is absent — unlike Insert, which always
// inserts-or-overwrites, Set never adds a new field.
func (v *Value) Set(key string, val any) (bool, error) {
	if err := v.ensureHeap(); err != nil {
		return false, err
	}
	has, err := v.h.Has(key)
	if err != nil {
		return false, err
	}
	if !has {
		return false, nil
	}
	child, err := toHeapChild(val)
	if err != nil {
		return false, err
	}
	if err := v.h.Insert(key, child, heap.DefaultSafeguard); err != nil {
		return false, err
	}
	return true, nil
}

// Erase removes key, reporting whether it was present.
func (v *Value) Erase(key string) (bool, error) {
	if err := v.ensureHeap(); err != nil {
		return false, err
	}
	return v.h.Erase(key, heap.DefaultSafeguard)
}

// Inject merges pairs into v (right-biased, last-writer-wins), adding or
// overwriting fields per pair.
func (v *Value) Inject(pairs ...KV) error {
	if err := v.ensureHeap(); err != nil {
		return err
	}
	hpairs := make([]heap.Pair, len(pairs))
	for i, p := range pairs {
		child, err := toHeapChild(p.Value)
		if err != nil {
			return err
		}
		hpairs[i] = heap.Pair{Key: p.Key, Value: child}
	}
	return v.h.Inject(hpairs, heap.DefaultSafeguard)
}

// KV is a key/value pair passed to Inject.
type KV struct {
	Key   string
	Value any
}

// Project returns a new object Value containing only the named keys that
// exist in v.
func (v Value) Project(keys []string) (Value, error) {
	if v.h != nil {
		projected, err := v.h.ProjectKeys(keys)
		if err != nil {
			return Value{}, err
		}
		return fromHeap(projected), nil
	}
	if v.buf != nil {
		projected, err := bufview.Project(v.el.Data, keys)
		if err != nil {
			return Value{}, err
		}
		buf := bufview.FromBytesUnchecked(projected)
		return fromElement(buf, buf.Root()), nil
	}
	return Value{}, utils.New(utils.StateError, "Project: uninitialized Value")
}
