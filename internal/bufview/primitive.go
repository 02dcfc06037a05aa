package bufview

import "math"

func float32FromBits(bits uint32) float32 { return math.Float32frombits(bits) }
func float64FromBits(bits uint64) float64 { return math.Float64frombits(bits) }
func float32Bits(f float32) uint32        { return math.Float32bits(f) }
func float64Bits(f float64) uint64        { return math.Float64bits(f) }

// narrowInt picks the smallest raw integer tag that holds v exactly:
// short_integer iff MinInt16<=v<=MaxInt16, integer iff MinInt32<=v<=MaxInt32,
// else long_integer. An original design's apparent `INT16_MAX ||
// INT16_MAX` bound for the integer case was a bug; this uses the correct
// MinInt32/MaxInt32 bound instead.
func narrowInt(v int64) Tag {
	switch {
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return TagShortInteger
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return TagInteger
	default:
		return TagLongInteger
	}
}

// narrowFloat picks TagDecimal (float32) only when the narrowing loses no
// precision; otherwise TagLongDecimal (float64). Unlike integer narrowing
// there's no natural magnitude bound for floats, so dart only narrows
// when doing so is lossless, rather than guessing a tolerance.
func narrowFloat(v float64) Tag {
	if float64(float32(v)) == v {
		return TagDecimal
	}
	return TagLongDecimal
}
