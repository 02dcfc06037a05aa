package heap

import (
	"sort"

	"github.com/scigolib/dart/internal/refcount"
	"github.com/scigolib/dart/internal/utils"
)

// DefaultSafeguard is the use-count threshold a mutating call compares
// against when the caller passes 0 for safeguard: mutate in place only
// when this container has exactly one owner.
const DefaultSafeguard = 1

// ensureUniqueObject deep-clones h's object container when its use count
// exceeds safeguard, re-seating h.obj on the clone. safeguard <= 0 is
// treated as DefaultSafeguard.
func ensureUniqueObject(h *Heap, safeguard int) {
	if safeguard <= 0 {
		safeguard = DefaultSafeguard
	}
	if h.obj.UseCount() <= int64(safeguard) {
		return
	}
	old := h.obj.Unwrap()
	cloned := make([]entry, len(old.entries))
	for i, e := range old.entries {
		cloned[i] = entry{key: e.key, val: e.val.Clone()}
	}
	h.obj.Reset()
	m := orderedMap{entries: cloned}
	h.obj = refcount.NewAtomic(&m)
}

// NumFields returns the number of key/value pairs in an object heap.
func (h *Heap) NumFields() (int, error) {
	if h.kind != KindObject {
		return 0, typeMismatch("NumFields: not an object")
	}
	return len(h.obj.Unwrap().entries), nil
}

// Has reports whether key is present in an object heap.
func (h *Heap) Has(key string) (bool, error) {
	if h.kind != KindObject {
		return false, typeMismatch("Has: not an object")
	}
	_, found := findKey(h.obj.Unwrap().entries, key)
	return found, nil
}

// Get returns the value for key and whether it was present.
func (h *Heap) Get(key string) (*Heap, bool, error) {
	if h.kind != KindObject {
		return nil, false, typeMismatch("Get: not an object")
	}
	idx, found := findKey(h.obj.Unwrap().entries, key)
	if !found {
		return nil, false, nil
	}
	return h.obj.Unwrap().entries[idx].val, true, nil
}

// At is the failing variant of Get: NotFound instead of ok=false.
func (h *Heap) At(key string) (*Heap, error) {
	v, ok, err := h.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, utils.New(utils.NotFound, "object key not found: "+key)
	}
	return v, nil
}

// FieldKeyAt returns the i'th key in vtable-compatible (length, lex) order.
func (h *Heap) FieldKeyAt(i int) (string, error) {
	if h.kind != KindObject {
		return "", typeMismatch("FieldKeyAt: not an object")
	}
	entries := h.obj.Unwrap().entries
	if i < 0 || i >= len(entries) {
		return "", outOfRange("FieldKeyAt: index out of range")
	}
	return entries[i].key, nil
}

// FieldAt returns the i'th (key, value) pair in vtable-compatible order.
func (h *Heap) FieldAt(i int) (string, *Heap, error) {
	if h.kind != KindObject {
		return "", nil, typeMismatch("FieldAt: not an object")
	}
	entries := h.obj.Unwrap().entries
	if i < 0 || i >= len(entries) {
		return "", nil, outOfRange("FieldAt: index out of range")
	}
	return entries[i].key, entries[i].val, nil
}

// Insert inserts or overwrites key with val. safeguard is the use-count
// threshold below which h's container may be mutated in place (pass
// DefaultSafeguard normally, or one higher while a lookup/iterator into
// this container is still live).
func (h *Heap) Insert(key string, val *Heap, safeguard int) error {
	if h.kind != KindObject {
		return typeMismatch("Insert: not an object")
	}
	ensureUniqueObject(h, safeguard)
	m := h.obj.Unwrap()
	idx, found := findKey(m.entries, key)
	if found {
		m.entries[idx].val = val
		return nil
	}
	m.entries = append(m.entries, entry{})
	copy(m.entries[idx+1:], m.entries[idx:])
	m.entries[idx] = entry{key: key, val: val}
	return nil
}

// Erase removes key, reporting whether it was present.
func (h *Heap) Erase(key string, safeguard int) (bool, error) {
	if h.kind != KindObject {
		return false, typeMismatch("Erase: not an object")
	}
	ensureUniqueObject(h, safeguard)
	m := h.obj.Unwrap()
	idx, found := findKey(m.entries, key)
	if !found {
		return false, nil
	}
	m.entries = append(m.entries[:idx], m.entries[idx+1:]...)
	return true, nil
}

// AddField is a chainable alias for Insert.
func (h *Heap) AddField(key string, val *Heap) (*Heap, error) {
	return h, h.Insert(key, val, DefaultSafeguard)
}

// RemoveField is a chainable alias for Erase.
func (h *Heap) RemoveField(key string) (*Heap, error) {
	_, err := h.Erase(key, DefaultSafeguard)
	return h, err
}

// Inject overlays pairs onto h, right-biased: a later pair always wins
// over an earlier one for the same key, whether the earlier one came
// from h or from an earlier element of pairs.
func (h *Heap) Inject(pairs []Pair, safeguard int) error {
	if h.kind != KindObject {
		return typeMismatch("Inject: not an object")
	}
	for _, p := range pairs {
		if err := h.Insert(p.Key, p.Value, safeguard); err != nil {
			return err
		}
	}
	return nil
}

// Pair is a key/value pair used by Inject and returned by ProjectKeys's
// source iteration.
type Pair struct {
	Key   string
	Value *Heap
}

// ProjectKeys returns a new object heap containing only the named keys
// that exist in h, each value shared (not deep-copied) with h via Clone.
// Duplicate and absent keys are silently skipped.
func (h *Heap) ProjectKeys(keys []string) (*Heap, error) {
	if h.kind != KindObject {
		return nil, typeMismatch("ProjectKeys: not an object")
	}
	src := h.obj.Unwrap().entries
	seen := make(map[string]bool, len(keys))
	out := NewObject()
	om := out.obj.Unwrap()
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		idx, found := findKey(src, k)
		if !found {
			continue
		}
		om.entries = append(om.entries, entry{key: k, val: src[idx].val.Clone()})
	}
	sort.Slice(om.entries, func(i, j int) bool {
		return compareKeys(om.entries[i].key, om.entries[j].key) < 0
	})
	return out, nil
}
