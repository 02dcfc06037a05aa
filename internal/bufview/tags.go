// Package bufview implements the finalized buffer's binary layout and the
// zero-copy primitives that walk it. A buffer is an aligned byte region
// whose traversal never allocates or copies — every accessor here returns
// a sub-slice of the original backing array plus a type tag, the "raw
// element" pair.
//
// Grounded on the internal/core package's superblock.go, btree_v1.go and
// globalheap.go: same discipline of "read the fixed header, validate a
// signature/size bound, then walk a variable tail" — except dart's tail is
// a lexicographically sorted vtable instead of a file offset table, and
// the backing store is an in-memory slice rather than an io.ReaderAt.
package bufview

import "github.com/scigolib/dart/internal/utils"

// Tag is the one-byte raw-type discriminant stored in every vtable entry
// and at the root of every buffer. Numeric values are pinned and must
// never change within a deployment.
type Tag uint8

const (
	TagObject       Tag = 0
	TagArray        Tag = 1
	TagString       Tag = 2 // reserved: see note below, never emitted by FinalizeObject/Array
	TagSmallString  Tag = 3 // u16 length prefix ("small/normal" string form)
	TagBigString    Tag = 4 // u32 length prefix, used once len(s) > 65535
	TagShortInteger Tag = 5 // int16
	TagInteger      Tag = 6 // int32
	TagLongInteger  Tag = 7 // int64
	TagDecimal      Tag = 8 // float32
	TagLongDecimal  Tag = 9 // float64
	TagBoolean      Tag = 10
	TagNull         Tag = 11
)

// TagString (2) is carried in the tag enumeration for wire-format
// stability, listed alongside small_string and big_string, but the wire
// grammar only actually describes two
// physical string layouts: "(small/normal)" with a u16 length and "(big)"
// with a u32 length. dart's encoder always stamps TagSmallString for the
// u16-length form and never emits a bare TagString; Validate and the
// string decoders still accept TagString wherever TagSmallString is legal,
// treating the two as the same physical shape, so a buffer produced by
// another implementation that does use tag 2 round-trips correctly.
func (t Tag) String() string {
	switch t {
	case TagObject:
		return "object"
	case TagArray:
		return "array"
	case TagString:
		return "string"
	case TagSmallString:
		return "small_string"
	case TagBigString:
		return "big_string"
	case TagShortInteger:
		return "short_integer"
	case TagInteger:
		return "integer"
	case TagLongInteger:
		return "long_integer"
	case TagDecimal:
		return "decimal"
	case TagLongDecimal:
		return "long_decimal"
	case TagBoolean:
		return "boolean"
	case TagNull:
		return "null"
	default:
		return "invalid"
	}
}

// IsValid reports whether t is one of the twelve known raw types — every
// vtable entry's type tag must correspond to one of these.
func (t Tag) IsValid() bool {
	return t <= TagNull
}

// Alignment returns t's natural alignment requirement in bytes. Object and
// array alignment is 8 so a subtree can be embedded in a larger object
// without disturbing any ancestor's alignment. String alignment is pinned
// at 4 for both the small/normal and big forms — the finalize algorithm
// always aligns the cursor to 4 before writing a string — rather than the
// length field's own natural alignment (2 for u16), so key and value
// string layouts stay uniformly aligned regardless of which length width
// was picked.
func (t Tag) Alignment() int {
	switch t {
	case TagNull, TagBoolean:
		return 1
	case TagShortInteger:
		return 2
	case TagInteger, TagDecimal:
		return 4
	case TagLongInteger, TagLongDecimal:
		return 8
	case TagString, TagSmallString, TagBigString:
		return 4
	case TagObject, TagArray:
		return 8
	default:
		return 1
	}
}

// FixedSize returns the number of bytes a primitive raw element occupies,
// or 0 for the variable-length kinds (string forms, object, array), whose
// size must be computed from their own header.
func (t Tag) FixedSize() int {
	switch t {
	case TagNull:
		return 0
	case TagBoolean:
		return 1
	case TagShortInteger:
		return 2
	case TagInteger, TagDecimal:
		return 4
	case TagLongInteger, TagLongDecimal:
		return 8
	default:
		return 0
	}
}

// IsContainer reports whether t is object or array.
func (t Tag) IsContainer() bool {
	return t == TagObject || t == TagArray
}

// IsStringLike reports whether t is one of the string-layout tags.
func (t Tag) IsStringLike() bool {
	return t == TagString || t == TagSmallString || t == TagBigString
}

// typeMismatch is a small convenience used throughout the package.
func typeMismatch(context string) error {
	return utils.New(utils.TypeMismatch, context)
}
