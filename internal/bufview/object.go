package bufview

import (
	"strings"

	"github.com/scigolib/dart/internal/utils"
)

// Object headers and vtable entries. Header: u32 bytes | u32 elems. Each
// vtable entry is 8 bytes: u32 offset | u8 type | u8 key_len | u16
// key_prefix.
const (
	objectHeaderSize = 8
	vtableEntrySize  = 8
)

// keyTag is the raw type every object key is stored as. Keys are bounded
// to 65535 bytes, which is exactly the range a
// u16 length prefix covers, so a key's string layout is always the
// small/normal form — it never needs the u32-length big_string shape a
// value can use for long strings.
const keyTag = TagSmallString

func objectElems(data []byte) (int, error) {
	if len(data) < objectHeaderSize {
		return 0, utils.New(utils.ValidationError, "object header truncated")
	}
	return int(utils.GetUint32(data[4:8])), nil
}

func objectVtableEntryAt(data []byte, i int) (offset int, typ Tag, keyLen int, keyPrefix uint16, err error) {
	start := objectHeaderSize + i*vtableEntrySize
	if start+vtableEntrySize > len(data) {
		return 0, 0, 0, 0, utils.New(utils.ValidationError, "vtable entry out of range")
	}
	entry := data[start : start+vtableEntrySize]
	offset = int(utils.GetUint32(entry[0:4]))
	typ = Tag(entry[4])
	keyLen = int(entry[5])
	keyPrefix = utils.GetUint16(entry[6:8])
	return offset, typ, keyLen, keyPrefix, nil
}

// keyPrefixOf packs the first two bytes of key (zero-padded), byte at the
// lower address first. Packing them into a little-endian uint16 is just a
// compact way to carry two bytes in the vtable entry's fixed-width field;
// comparePrefix below unpacks them back into byte0/byte1 order before
// comparing, so the comparison itself is a plain two-byte lexicographic
// compare and stays consistent with the vtable's (length, then lex) total
// order.
func keyPrefixOf(key string) uint16 {
	var b0, b1 byte
	if len(key) > 0 {
		b0 = key[0]
	}
	if len(key) > 1 {
		b1 = key[1]
	}
	return uint16(b0) | uint16(b1)<<8
}

func comparePrefix(a, b uint16) int {
	a0, a1 := byte(a), byte(a>>8)
	b0, b1 := byte(b), byte(b>>8)
	if a0 != b0 {
		if a0 < b0 {
			return -1
		}
		return 1
	}
	if a1 != b1 {
		if a1 < b1 {
			return -1
		}
		return 1
	}
	return 0
}

// valueElementAt reads the value immediately following the key string at
// keyOffset, aligning the cursor up to valTag's requirement first.
func valueElementAt(data []byte, keyOffset int, valTag Tag) (RawElement, error) {
	if keyOffset < 0 || keyOffset > len(data) {
		return RawElement{}, utils.New(utils.ValidationError, "key offset out of range")
	}
	keySize, err := stringSizeOf(keyTag, data[keyOffset:])
	if err != nil {
		return RawElement{}, err
	}
	cursor := keyOffset + keySize
	cursor += utils.Padding(cursor, valTag.Alignment())
	if cursor > len(data) {
		return RawElement{}, utils.New(utils.ValidationError, "value offset out of range")
	}
	el := RawElement{Tag: valTag, Data: data[cursor:]}
	size, err := el.SizeOf()
	if err != nil {
		return RawElement{}, err
	}
	if cursor+size > len(data) {
		return RawElement{}, utils.New(utils.ValidationError, "value extends past buffer")
	}
	el.Data = data[cursor : cursor+size]
	return el, nil
}

func keyStringAt(data []byte, offset int) (string, error) {
	if offset < 0 || offset > len(data) {
		return "", utils.New(utils.ValidationError, "key offset out of range")
	}
	el := RawElement{Tag: keyTag, Data: data[offset:]}
	return el.StringView()
}

// ObjectNumPairs returns the number of key/value pairs in the object at
// data's base.
func ObjectNumPairs(data []byte) (int, error) {
	return objectElems(data)
}

// ObjectPairAt returns the i'th pair in vtable order (sorted: length
// ascending, then lexicographic).
func ObjectPairAt(data []byte, i int) (string, RawElement, error) {
	n, err := objectElems(data)
	if err != nil {
		return "", RawElement{}, err
	}
	if i < 0 || i >= n {
		return "", RawElement{}, utils.New(utils.OutOfRange, "pair index out of range")
	}
	offset, typ, _, _, err := objectVtableEntryAt(data, i)
	if err != nil {
		return "", RawElement{}, err
	}
	key, err := keyStringAt(data, offset)
	if err != nil {
		return "", RawElement{}, err
	}
	val, err := valueElementAt(data, offset, typ)
	if err != nil {
		return "", RawElement{}, err
	}
	return key, val, nil
}

// ObjectKeyAt returns just the i'th key.
func ObjectKeyAt(data []byte, i int) (string, error) {
	n, err := objectElems(data)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= n {
		return "", utils.New(utils.OutOfRange, "key index out of range")
	}
	offset, _, _, _, err := objectVtableEntryAt(data, i)
	if err != nil {
		return "", err
	}
	return keyStringAt(data, offset)
}

// ObjectGet performs a three-level binary search: compare key length,
// then key_prefix, then (on a tie) the full key bytes. Returns ok=false
// if the key is absent; ObjectAt is the TypeMismatch/NotFound-raising
// variant built on top of this.
func ObjectGet(data []byte, key string) (RawElement, bool, error) {
	n, err := objectElems(data)
	if err != nil {
		return RawElement{}, false, err
	}
	queryLen := len(key)
	queryPrefix := keyPrefixOf(key)

	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		offset, typ, keyLen, keyPrefix, err := objectVtableEntryAt(data, mid)
		if err != nil {
			return RawElement{}, false, err
		}
		cmp, err := compareEntry(data, offset, keyLen, keyPrefix, queryLen, queryPrefix, key)
		if err != nil {
			return RawElement{}, false, err
		}
		switch {
		case cmp == 0:
			val, err := valueElementAt(data, offset, typ)
			return val, true, err
		case cmp < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return RawElement{}, false, nil
}

// compareEntry orders a stored vtable entry against a query key following
// the vtable's (length ascending, then lexicographic) total order.
func compareEntry(data []byte, offset, entryKeyLen int, entryPrefix uint16, queryLen int, queryPrefix uint16, query string) (int, error) {
	if entryKeyLen != queryLen {
		if entryKeyLen < queryLen {
			return -1, nil
		}
		return 1, nil
	}
	if c := comparePrefix(entryPrefix, queryPrefix); c != 0 || entryKeyLen <= 2 {
		return c, nil
	}
	entryKey, err := keyStringAt(data, offset)
	if err != nil {
		return 0, err
	}
	return strings.Compare(entryKey, query), nil
}

// ObjectAt is the failing variant of ObjectGet: NotFound instead of ok=false.
func ObjectAt(data []byte, key string) (RawElement, error) {
	val, ok, err := ObjectGet(data, key)
	if err != nil {
		return RawElement{}, err
	}
	if !ok {
		return RawElement{}, utils.New(utils.NotFound, "object key not found: "+key)
	}
	return val, nil
}
