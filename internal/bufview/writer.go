package bufview

import "github.com/scigolib/dart/internal/utils"

// Writer is the cursor-based builder behind Finalize: a single growing
// byte slice plus alignment-aware append primitives. Containers are
// written in one forward pass — reserve header+vtable, write each pair's
// key then value in place, patch the vtable, pad to object alignment —
// so no backwards relocation is ever needed for a plain (non-merging)
// finalize.
//
// Grounded on internal/writer.Allocator: same end-of-buffer,
// append-only, overlap-free allocation discipline, scaled down from file
// offsets to an in-memory cursor.
type Writer struct {
	buf []byte
}

// NewWriter allocates a Writer with capacity hint bytes pre-reserved, as
// internal/bufview.UpperBound would compute for a given heap value.
func NewWriter(capacityHint int) *Writer {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Writer{buf: make([]byte, 0, capacityHint)}
}

// Len returns the current cursor position (bytes written so far).
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the finished buffer. Valid to call at any point, but only
// meaningful once every Begin*/End* pair has been closed.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) align(n int) {
	pad := utils.Padding(len(w.buf), n)
	if pad > 0 {
		w.buf = append(w.buf, make([]byte, pad)...)
	}
}

func (w *Writer) grow(n int) []byte {
	start := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	return w.buf[start : start+n]
}

// WriteNull writes nothing (the null raw type occupies zero bytes) and
// returns the current cursor as its offset.
func (w *Writer) WriteNull() int { return len(w.buf) }

// WriteBool appends a one-byte boolean.
func (w *Writer) WriteBool(b bool) int {
	off := len(w.buf)
	v := byte(0)
	if b {
		v = 1
	}
	w.buf = append(w.buf, v)
	return off
}

// WriteInt64 picks the narrowest lossless integer tag (short/int/long)
// and writes it aligned accordingly.
func (w *Writer) WriteInt64(v int64) (int, Tag) {
	tag := narrowInt(v)
	w.align(tag.Alignment())
	off := len(w.buf)
	switch tag {
	case TagShortInteger:
		utils.PutUint16(w.grow(2), uint16(int16(v)))
	case TagInteger:
		utils.PutUint32(w.grow(4), uint32(int32(v)))
	default:
		utils.PutUint64(w.grow(8), uint64(v))
	}
	return off, tag
}

// WriteFloat64 picks float32 when that loses no precision, else float64.
func (w *Writer) WriteFloat64(v float64) (int, Tag) {
	tag := narrowFloat(v)
	w.align(tag.Alignment())
	off := len(w.buf)
	if tag == TagDecimal {
		utils.PutUint32(w.grow(4), float32Bits(float32(v)))
	} else {
		utils.PutUint64(w.grow(8), float64Bits(v))
	}
	return off, tag
}

// WriteString appends a value string (small/normal form up to 65535
// bytes, big form above that), 4-byte aligned.
func (w *Writer) WriteString(s string) (int, Tag) {
	w.align(4)
	off := len(w.buf)
	if len(s) <= 0xFFFF {
		utils.PutUint16(w.grow(2), uint16(len(s)))
		w.buf = append(w.buf, s...)
		w.buf = append(w.buf, 0)
		return off, TagSmallString
	}
	utils.PutUint32(w.grow(4), uint32(len(s)))
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0)
	return off, TagBigString
}

// WriteKeyString appends an object key, always in the small/normal (u16
// length) form, rejecting keys over the 65535-byte bound.
func (w *Writer) WriteKeyString(key string) (int, error) {
	if len(key) > 0xFFFF {
		return 0, utils.New(utils.InvalidArgument, "object key exceeds 65535 bytes")
	}
	w.align(4)
	off := len(w.buf)
	utils.PutUint16(w.grow(2), uint16(len(key)))
	w.buf = append(w.buf, key...)
	w.buf = append(w.buf, 0)
	return off, nil
}

// BeginObject reserves the header and vtable for an n-pair object and
// returns its base offset. elems is written immediately; bytes is patched
// by EndObject once the body has been written.
func (w *Writer) BeginObject(n int) int {
	base := len(w.buf)
	w.grow(objectHeaderSize + n*vtableEntrySize)
	utils.PutUint32(w.buf[base+4:base+8], uint32(n))
	return base
}

// PatchObjectEntry fills in vtable entry i of the object based at base.
// keyOffset is absolute; it is stored relative to base.
func (w *Writer) PatchObjectEntry(base, i int, keyOffset int, valueType Tag, keyLen int, keyPrefix uint16) {
	start := base + objectHeaderSize + i*vtableEntrySize
	entry := w.buf[start : start+vtableEntrySize]
	utils.PutUint32(entry[0:4], uint32(keyOffset-base))
	entry[4] = byte(valueType)
	entry[5] = byte(keyLen)
	utils.PutUint16(entry[6:8], keyPrefix)
}

// EndObject pads the body to object alignment (8) and patches the final
// bytes field.
func (w *Writer) EndObject(base int) {
	w.align(8)
	utils.PutUint32(w.buf[base:base+4], uint32(len(w.buf)-base))
}

// BeginArray mirrors BeginObject without key fields.
func (w *Writer) BeginArray(n int) int {
	base := len(w.buf)
	w.grow(objectHeaderSize + n*arrayVtableEntrySize)
	utils.PutUint32(w.buf[base+4:base+8], uint32(n))
	return base
}

// PatchArrayEntry fills in vtable entry i of the array based at base.
func (w *Writer) PatchArrayEntry(base, i int, elementOffset int, elementType Tag) {
	start := base + objectHeaderSize + i*arrayVtableEntrySize
	entry := w.buf[start : start+arrayVtableEntrySize]
	utils.PutUint32(entry[0:4], uint32(elementOffset-base))
	entry[4] = byte(elementType)
}

// EndArray mirrors EndObject.
func (w *Writer) EndArray(base int) {
	w.align(8)
	utils.PutUint32(w.buf[base:base+4], uint32(len(w.buf)-base))
}

// WriteRaw appends a previously-built subtree's bytes verbatim (used by
// Inject/Project to splice existing values into a newly built object
// without re-encoding them), aligning the cursor to the tag's requirement
// first and returning the new offset.
func (w *Writer) WriteRaw(tag Tag, data []byte) int {
	w.align(tag.Alignment())
	off := len(w.buf)
	w.buf = append(w.buf, data...)
	return off
}
