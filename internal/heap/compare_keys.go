package heap

import "strings"

// compareKeys orders object keys the same way the finalized buffer's
// vtable does: length ascending, then lexicographic. Keeping the heap's
// ordered map pre-sorted this way means finalize never has to re-sort.
func compareKeys(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// findKey returns the index where key is (found=true) or should be
// inserted (found=false) in a slice already sorted by compareKeys.
func findKey(entries []entry, key string) (int, bool) {
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := (lo + hi) / 2
		switch c := compareKeys(entries[mid].key, key); {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}
