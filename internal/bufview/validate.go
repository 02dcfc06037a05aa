package bufview

import "github.com/scigolib/dart/internal/utils"

// Validate walks an untrusted byte slice enforcing every layout invariant
// before any caller is allowed to traverse it: total size bound,
// vtable-end bound, valid type tags, aligned/forward-only/in-range child
// offsets, vtable sortedness, and string nul-termination. On any
// violation it returns a ValidationError — never a silent out-of-bounds
// read; undetected corruption must never be exploitable.
//
// A buffer's root is always an object at offset 0, so Validate does not
// expect or consume a leading type-tag byte — it walks data directly as
// an object layout.
//
// Grounded on the defensive-read style of ReadSuperblock /
// ParseBTreeV1Node: verify a fixed header and its declared size before
// trusting a single offset drawn from it.
func Validate(data []byte) error {
	if len(data) == 0 {
		return utils.New(utils.ValidationError, "empty buffer")
	}
	size, err := validateObject(data, 0)
	if err != nil {
		return err
	}
	if size != len(data) {
		return utils.New(utils.ValidationError, "root object size does not match buffer length")
	}
	return nil
}

// ValidateOk is the silent-mode variant of Validate: reports whether data
// is well-formed without constructing an error.
func ValidateOk(data []byte) bool {
	return Validate(data) == nil
}

// validateElement dispatches to the right validator for tag and returns
// the element's total byte size on success.
func validateElement(tag Tag, data []byte, depth int) (int, error) {
	if depth > maxValidateDepth {
		return 0, utils.New(utils.ValidationError, "buffer nesting too deep")
	}
	if !tag.IsValid() {
		return 0, utils.New(utils.ValidationError, "unknown raw type tag")
	}
	switch {
	case tag == TagObject:
		return validateObject(data, depth)
	case tag == TagArray:
		return validateArray(data, depth)
	case tag.IsStringLike():
		return validateString(tag, data)
	default:
		return validatePrimitive(tag, data)
	}
}

// maxValidateDepth bounds recursion against a maliciously deep buffer —
// legitimate dart trees are never anywhere near this deep, so this never
// rejects real data.
const maxValidateDepth = 1 << 16

func validateObject(data []byte, depth int) (int, error) {
	if len(data) < objectHeaderSize {
		return 0, utils.New(utils.ValidationError, "object header truncated")
	}
	size := int(utils.GetUint32(data[0:4]))
	if size < objectHeaderSize || size > len(data) {
		return 0, utils.New(utils.ValidationError, "object size out of bounds")
	}
	if size%8 != 0 {
		return 0, utils.New(utils.ValidationError, "object size not 8-byte aligned")
	}
	n := int(utils.GetUint32(data[4:8]))
	if n < 0 {
		return 0, utils.New(utils.ValidationError, "negative element count")
	}
	vtableEnd := objectHeaderSize + n*vtableEntrySize
	if vtableEnd > size {
		return 0, utils.New(utils.ValidationError, "vtable extends past object size")
	}

	prevEnd := vtableEnd
	prevKeyLen := -1
	var prevKey string
	for i := 0; i < n; i++ {
		offset, typ, keyLen, keyPrefix, err := objectVtableEntryAt(data, i)
		if err != nil {
			return 0, err
		}
		if !typ.IsValid() {
			return 0, utils.New(utils.ValidationError, "vtable entry has unknown type tag")
		}
		if offset < prevEnd || offset >= size {
			return 0, utils.New(utils.ValidationError, "vtable entry offset out of range or non-monotonic")
		}
		if offset%keyTag.Alignment() != 0 {
			return 0, utils.New(utils.ValidationError, "key offset misaligned")
		}
		keySize, err := stringSizeOf(keyTag, data[offset:])
		if err != nil {
			return 0, err
		}
		if offset+keySize > size {
			return 0, utils.New(utils.ValidationError, "key extends past object size")
		}
		actualKeyLen := keySize - 3 // minus u16 len field and nul terminator
		if actualKeyLen != keyLen {
			return 0, utils.New(utils.ValidationError, "vtable key_len disagrees with stored key")
		}
		if data[offset+keySize-1] != 0 {
			return 0, utils.New(utils.ValidationError, "key missing nul terminator")
		}
		key, err := keyStringAt(data, offset)
		if err != nil {
			return 0, err
		}
		if uint16(keyPrefixOf(key)) != keyPrefix {
			return 0, utils.New(utils.ValidationError, "vtable key_prefix disagrees with stored key")
		}
		if i > 0 {
			if !(prevKeyLen < keyLen || (prevKeyLen == keyLen && prevKey < key)) {
				return 0, utils.New(utils.ValidationError, "vtable not sorted by (length, lexicographic)")
			}
		}

		valueOffset := offset + keySize + utils.Padding(offset+keySize, typ.Alignment())
		if valueOffset > size {
			return 0, utils.New(utils.ValidationError, "value offset past object size")
		}
		valueSize, err := validateElement(typ, data[valueOffset:size], depth+1)
		if err != nil {
			return 0, err
		}
		if valueOffset+valueSize > size {
			return 0, utils.New(utils.ValidationError, "value extends past object size")
		}

		prevEnd = valueOffset + valueSize
		prevKeyLen = keyLen
		prevKey = key
	}
	return size, nil
}

func validateArray(data []byte, depth int) (int, error) {
	if len(data) < objectHeaderSize {
		return 0, utils.New(utils.ValidationError, "array header truncated")
	}
	size := int(utils.GetUint32(data[0:4]))
	if size < objectHeaderSize || size > len(data) {
		return 0, utils.New(utils.ValidationError, "array size out of bounds")
	}
	if size%8 != 0 {
		return 0, utils.New(utils.ValidationError, "array size not 8-byte aligned")
	}
	n := int(utils.GetUint32(data[4:8]))
	if n < 0 {
		return 0, utils.New(utils.ValidationError, "negative element count")
	}
	vtableEnd := objectHeaderSize + n*arrayVtableEntrySize
	if vtableEnd > size {
		return 0, utils.New(utils.ValidationError, "vtable extends past array size")
	}

	prevEnd := vtableEnd
	for i := 0; i < n; i++ {
		offset, typ, err := arrayVtableEntryAt(data, i)
		if err != nil {
			return 0, err
		}
		if !typ.IsValid() {
			return 0, utils.New(utils.ValidationError, "vtable entry has unknown type tag")
		}
		if offset < prevEnd || offset >= size {
			return 0, utils.New(utils.ValidationError, "vtable entry offset out of range or non-monotonic")
		}
		if offset%typ.Alignment() != 0 {
			return 0, utils.New(utils.ValidationError, "element offset misaligned")
		}
		elSize, err := validateElement(typ, data[offset:size], depth+1)
		if err != nil {
			return 0, err
		}
		if offset+elSize > size {
			return 0, utils.New(utils.ValidationError, "element extends past array size")
		}
		prevEnd = offset + elSize
	}
	return size, nil
}

func validateString(tag Tag, data []byte) (int, error) {
	size, err := stringSizeOf(tag, data)
	if err != nil {
		return 0, err
	}
	if size > len(data) {
		return 0, utils.New(utils.ValidationError, "string extends past buffer")
	}
	if data[size-1] != 0 {
		return 0, utils.New(utils.ValidationError, "string missing nul terminator")
	}
	return size, nil
}

func validatePrimitive(tag Tag, data []byte) (int, error) {
	n := tag.FixedSize()
	if n > len(data) {
		return 0, utils.New(utils.ValidationError, "primitive truncated")
	}
	return n, nil
}
