package bufview

import "github.com/scigolib/dart/internal/utils"

// Array headers share the object header shape (u32 bytes | u32 elems);
// vtable entries omit the key fields but are still padded to the same
// 8-byte stride as object entries so code that walks either kind of
// container can share offset arithmetic.
const arrayVtableEntrySize = vtableEntrySize

func arrayElems(data []byte) (int, error) {
	if len(data) < objectHeaderSize {
		return 0, utils.New(utils.ValidationError, "array header truncated")
	}
	return int(utils.GetUint32(data[4:8])), nil
}

func arrayVtableEntryAt(data []byte, i int) (offset int, typ Tag, err error) {
	start := objectHeaderSize + i*arrayVtableEntrySize
	if start+arrayVtableEntrySize > len(data) {
		return 0, 0, utils.New(utils.ValidationError, "array vtable entry out of range")
	}
	entry := data[start : start+arrayVtableEntrySize]
	offset = int(utils.GetUint32(entry[0:4]))
	typ = Tag(entry[4])
	return offset, typ, nil
}

// ArrayNumElems returns the number of elements in the array at data's base.
func ArrayNumElems(data []byte) (int, error) {
	return arrayElems(data)
}

// ArrayGet performs a bounds-checked index fetch.
func ArrayGet(data []byte, index int) (RawElement, bool, error) {
	n, err := arrayElems(data)
	if err != nil {
		return RawElement{}, false, err
	}
	if index < 0 || index >= n {
		return RawElement{}, false, nil
	}
	offset, typ, err := arrayVtableEntryAt(data, index)
	if err != nil {
		return RawElement{}, false, err
	}
	el, err := elementAt(data, offset, typ)
	if err != nil {
		return RawElement{}, false, err
	}
	return el, true, nil
}

// ArrayAt is the failing variant of ArrayGet: OutOfRange instead of ok=false.
func ArrayAt(data []byte, index int) (RawElement, error) {
	val, ok, err := ArrayGet(data, index)
	if err != nil {
		return RawElement{}, err
	}
	if !ok {
		return RawElement{}, utils.New(utils.OutOfRange, "array index out of range")
	}
	return val, nil
}

// elementAt reads the element at offset directly (no preceding key, unlike
// valueElementAt) — offset is already aligned to typ's requirement by
// construction.
func elementAt(data []byte, offset int, typ Tag) (RawElement, error) {
	if offset < 0 || offset > len(data) {
		return RawElement{}, utils.New(utils.ValidationError, "element offset out of range")
	}
	el := RawElement{Tag: typ, Data: data[offset:]}
	size, err := el.SizeOf()
	if err != nil {
		return RawElement{}, err
	}
	if offset+size > len(data) {
		return RawElement{}, utils.New(utils.ValidationError, "element extends past buffer")
	}
	el.Data = data[offset : offset+size]
	return el, nil
}
