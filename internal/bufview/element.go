package bufview

import (
	"unsafe"

	"github.com/scigolib/dart/internal/utils"
)

// RawElement is a (type, pointer) pair: a tag plus
// the bytes that begin this element, trimmed to exactly this element's
// extent wherever that extent is statically or structurally known. All
// methods on RawElement are total and allocation-free.
type RawElement struct {
	Tag  Tag
	Data []byte
}

// SizeOf returns the number of bytes this element's subtree occupies
// within its buffer, including any trailing alignment padding the
// encoder added (object/array only — strings and primitives have no
// trailing pad of their own).
func (e RawElement) SizeOf() (int, error) {
	switch {
	case e.Tag.IsContainer():
		if len(e.Data) < 8 {
			return 0, utils.New(utils.ValidationError, "container header truncated")
		}
		return int(utils.GetUint32(e.Data[0:4])), nil
	case e.Tag.IsStringLike():
		return stringSizeOf(e.Tag, e.Data)
	default:
		n := e.Tag.FixedSize()
		if n == 0 && e.Tag != TagNull {
			return 0, typeMismatch("SizeOf: unknown primitive width")
		}
		return n, nil
	}
}

// Size returns the logical element count: number of key/value pairs for
// an object, number of elements for an array, byte length for a string.
// Fails with TypeMismatch on primitives.
func (e RawElement) Size() (int, error) {
	switch {
	case e.Tag == TagObject:
		if len(e.Data) < 8 {
			return 0, utils.New(utils.ValidationError, "object header truncated")
		}
		return int(utils.GetUint32(e.Data[4:8])), nil
	case e.Tag == TagArray:
		if len(e.Data) < 8 {
			return 0, utils.New(utils.ValidationError, "array header truncated")
		}
		return int(utils.GetUint32(e.Data[4:8])), nil
	case e.Tag.IsStringLike():
		_, n, err := stringLenFields(e.Tag, e.Data)
		return n, err
	default:
		return 0, typeMismatch("Size: not a container or string")
	}
}

// Boolean extracts a boolean primitive.
func (e RawElement) Boolean() (bool, error) {
	if e.Tag != TagBoolean {
		return false, typeMismatch("Boolean: not a boolean element")
	}
	if len(e.Data) < 1 {
		return false, utils.New(utils.ValidationError, "boolean element truncated")
	}
	return e.Data[0] != 0, nil
}

// Integer extracts an integer primitive of any width, narrowing/widening
// as needed so callers never have to know which raw width was chosen at
// finalize time.
func (e RawElement) Integer() (int64, error) {
	switch e.Tag {
	case TagShortInteger:
		if len(e.Data) < 2 {
			return 0, utils.New(utils.ValidationError, "short_integer truncated")
		}
		return int64(int16(utils.GetUint16(e.Data))), nil
	case TagInteger:
		if len(e.Data) < 4 {
			return 0, utils.New(utils.ValidationError, "integer truncated")
		}
		return int64(int32(utils.GetUint32(e.Data))), nil
	case TagLongInteger:
		if len(e.Data) < 8 {
			return 0, utils.New(utils.ValidationError, "long_integer truncated")
		}
		return int64(utils.GetUint64(e.Data)), nil
	default:
		return 0, typeMismatch("Integer: not an integer element")
	}
}

// Decimal extracts a floating-point primitive of either width.
func (e RawElement) Decimal() (float64, error) {
	switch e.Tag {
	case TagDecimal:
		if len(e.Data) < 4 {
			return 0, utils.New(utils.ValidationError, "decimal truncated")
		}
		bits := utils.GetUint32(e.Data)
		return float64(float32FromBits(bits)), nil
	case TagLongDecimal:
		if len(e.Data) < 8 {
			return 0, utils.New(utils.ValidationError, "long_decimal truncated")
		}
		bits := utils.GetUint64(e.Data)
		return float64FromBits(bits), nil
	default:
		return 0, typeMismatch("Decimal: not a decimal element")
	}
}

// StringView returns the string's bytes as a string sharing the buffer's
// backing array — no allocation, no copy. The returned string is only
// valid as long as the owning Buffer is alive.
func (e RawElement) StringView() (string, error) {
	if !e.Tag.IsStringLike() {
		return "", typeMismatch("StringView: not a string element")
	}
	lenFieldSize, n, err := stringLenFields(e.Tag, e.Data)
	if err != nil {
		return "", err
	}
	start := lenFieldSize
	end := start + n
	if end+1 > len(e.Data) {
		return "", utils.New(utils.ValidationError, "string data truncated")
	}
	if e.Data[end] != 0 {
		return "", utils.New(utils.ValidationError, "string terminator missing")
	}
	b := e.Data[start:end]
	if n == 0 {
		return "", nil
	}
	return unsafe.String(&b[0], n), nil
}

// stringLenFields returns (length-field width, string byte length).
func stringLenFields(tag Tag, data []byte) (int, int, error) {
	switch tag {
	case TagString, TagSmallString:
		if len(data) < 2 {
			return 0, 0, utils.New(utils.ValidationError, "string length prefix truncated")
		}
		return 2, int(utils.GetUint16(data)), nil
	case TagBigString:
		if len(data) < 4 {
			return 0, 0, utils.New(utils.ValidationError, "big_string length prefix truncated")
		}
		return 4, int(utils.GetUint32(data)), nil
	default:
		return 0, 0, typeMismatch("stringLenFields: not a string tag")
	}
}

// stringSizeOf returns the total byte size (len field + bytes + nul) of
// the string layout at data, with no externally-added alignment padding.
func stringSizeOf(tag Tag, data []byte) (int, error) {
	lenFieldSize, n, err := stringLenFields(tag, data)
	if err != nil {
		return 0, err
	}
	return lenFieldSize + n + 1, nil
}
