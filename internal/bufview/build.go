package bufview

import "github.com/scigolib/dart/internal/utils"

// Pair is a decoded (or about-to-be-encoded) object entry: a key plus the
// raw element occupying its value slot. Used as the common currency
// between decode (ObjectPairAt), build (BuildObject), and the
// merge/projection helpers in inject.go.
type Pair struct {
	Key   string
	Value RawElement
}

// keyOrderLess implements the vtable's total order: length ascending,
// then lexicographic.
func keyOrderLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// BuildObject writes a complete object from pairs, which must already be
// sorted per keyOrderLess and free of duplicate keys — callers (Finalize,
// Inject, Project) are responsible for that invariant; BuildObject only
// lays the bytes out.
func BuildObject(w *Writer, pairs []Pair) (int, error) {
	base := w.BeginObject(len(pairs))
	for i, p := range pairs {
		keyOff, err := w.WriteKeyString(p.Key)
		if err != nil {
			return 0, err
		}
		w.WriteRaw(p.Value.Tag, p.Value.Data)
		w.PatchObjectEntry(base, i, keyOff, p.Value.Tag, len(p.Key), keyPrefixOf(p.Key))
	}
	w.EndObject(base)
	return base, nil
}

// BuildArray writes a complete array from elems in order.
func BuildArray(w *Writer, elems []RawElement) int {
	base := w.BeginArray(len(elems))
	for i, e := range elems {
		off := w.WriteRaw(e.Tag, e.Data)
		w.PatchArrayEntry(base, i, off, e.Tag)
	}
	w.EndArray(base)
	return base
}

// DecodePairs reads every pair out of an encoded object in vtable order.
func DecodePairs(data []byte) ([]Pair, error) {
	n, err := objectElems(data)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, n)
	for i := range pairs {
		key, val, err := ObjectPairAt(data, i)
		if err != nil {
			return nil, err
		}
		pairs[i] = Pair{Key: key, Value: val}
	}
	return pairs, nil
}

// DecodeElems reads every element out of an encoded array in order.
func DecodeElems(data []byte) ([]RawElement, error) {
	n, err := arrayElems(data)
	if err != nil {
		return nil, err
	}
	elems := make([]RawElement, n)
	for i := range elems {
		el, ok, err := ArrayGet(data, i)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, utils.New(utils.ValidationError, "array element vanished mid-decode")
		}
		elems[i] = el
	}
	return elems, nil
}
