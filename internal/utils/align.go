package utils

import "math"

// AlignUp rounds n up to the next multiple of align, which must be a power
// of two (1, 2, 4, or 8 — the only alignments any raw type needs). Matches
// LocalHeap.NewLocalHeap's 8-byte rounding in spirit; dart makes the same
// arithmetic a shared helper since every layout stage needs it.
func AlignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) &^ (align - 1)
}

// Padding returns the number of filler bytes AlignUp(n, align) would add.
func Padding(n, align int) int {
	return AlignUp(n, align) - n
}

// CheckAddOverflow reports whether a+b would overflow an int on the current
// platform, grounded on CheckMultiplyOverflow (utils/overflow.go): validate
// before the arithmetic, never after.
func CheckAddOverflow(a, b int) bool {
	if b > 0 && a > math.MaxInt-b {
		return true
	}
	if b < 0 && a < math.MinInt-b {
		return true
	}
	return false
}
