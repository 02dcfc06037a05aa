package heap

// Equal reports deep structural equality between two heaps: same kind,
// same scalar value, same string content (regardless of SSO vs shared
// representation), or — for object/array — equal children in the same
// order. Object comparison assumes both sides keep entries in
// compareKeys order, which every heap mutator guarantees. An int64 heap
// and a float64 heap compare numerically rather than failing on kind
// mismatch, so Int(3) and Decimal(3.0) are equal.
func Equal(a, b *Heap) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		if isNumericKind(a.kind) && isNumericKind(b.kind) {
			return numericValue(a) == numericValue(b)
		}
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt64:
		return a.i == b.i
	case KindFloat64:
		return a.f == b.f
	case KindString:
		as, _ := a.StringValue()
		bs, _ := b.StringValue()
		return as == bs
	case KindObject:
		ae, be := a.obj.Unwrap().entries, b.obj.Unwrap().entries
		if len(ae) != len(be) {
			return false
		}
		for i := range ae {
			if ae[i].key != be[i].key || !Equal(ae[i].val, be[i].val) {
				return false
			}
		}
		return true
	case KindArray:
		ae, be := a.arr.Unwrap().elems, b.arr.Unwrap().elems
		if len(ae) != len(be) {
			return false
		}
		for i := range ae {
			if !Equal(ae[i], be[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNumericKind(k Kind) bool {
	return k == KindInt64 || k == KindFloat64
}

// numericValue widens an int64 or float64 heap scalar to float64, the same
// way internal/convert's numericCompare widens Go-native numeric values,
// so an integer and a decimal of equal magnitude compare equal.
func numericValue(h *Heap) float64 {
	if h.kind == KindInt64 {
		return float64(h.i)
	}
	return h.f
}
