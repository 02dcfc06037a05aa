package bufview

import "sort"

// Inject and Project implement merge/projection at the buffer level:
// operate directly on already-finalized byte regions, splicing existing
// RawElement values into a freshly built object rather than walking up
// through a heap tree.
//
// messages_write.go's object-merge equivalent rewrites an object header's
// message count by speculating a worst-case vtable and relocating it
// backwards once the real count is known. Go has no need for that
// two-pass trick — an object's arity is just the size of a map after one
// decode pass — so Inject/Project compute the deduplicated, sorted pair
// set up front and call BuildObject once. The output is still
// byte-identical to what the speculate-and-relocate algorithm would
// produce, which is the only thing the canonical-encoding invariant
// (equal trees finalize to identical bytes) actually requires.
//
// Inject overlays pairs onto an existing finalized object, right-biased:
// a later pair (whether from base or overlay) always wins over an
// earlier one for the same key, and overlay always shadows base.
func Inject(base []byte, overlay []Pair) ([]byte, error) {
	existing, err := DecodePairs(base)
	if err != nil {
		return nil, err
	}
	merged := make(map[string]RawElement, len(existing)+len(overlay))
	order := make([]string, 0, len(existing)+len(overlay))
	for _, p := range existing {
		if _, seen := merged[p.Key]; !seen {
			order = append(order, p.Key)
		}
		merged[p.Key] = p.Value
	}
	for _, p := range overlay {
		if _, seen := merged[p.Key]; !seen {
			order = append(order, p.Key)
		}
		merged[p.Key] = p.Value
	}
	sort.Slice(order, func(i, j int) bool { return keyOrderLess(order[i], order[j]) })

	pairs := make([]Pair, len(order))
	for i, k := range order {
		pairs[i] = Pair{Key: k, Value: merged[k]}
	}

	w := NewWriter(len(base) + estimateOverlaySize(overlay))
	if _, err := BuildObject(w, pairs); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Project selects the named keys (in the order given by keys, deduplicated,
// then re-sorted into vtable order) out of an existing finalized object into
// a new one. Keys absent from base are silently skipped.
func Project(base []byte, keys []string) ([]byte, error) {
	seen := make(map[string]bool, len(keys))
	var pairs []Pair
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		val, ok, err := ObjectGet(base, k)
		if err != nil {
			return nil, err
		}
		if ok {
			pairs = append(pairs, Pair{Key: k, Value: val})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return keyOrderLess(pairs[i].Key, pairs[j].Key) })

	w := NewWriter(len(base))
	if _, err := BuildObject(w, pairs); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func estimateOverlaySize(overlay []Pair) int {
	n := 0
	for _, p := range overlay {
		n += len(p.Key) + len(p.Value.Data) + 16
	}
	return n
}
