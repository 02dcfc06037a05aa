package bufview

import "github.com/scigolib/dart/internal/refcount"

// Buffer is the owning handle at the root of a finalized tree: a
// validated, immutable byte region plus an atomic reference count shared
// across every clone. Everything below the root (RawElement, ObjectGet,
// ArrayGet, ...) borrows from Buffer.Bytes() and stays valid only as long
// as some clone of the Buffer is alive.
//
// Grounded on the atomic-count discipline already factored out into
// internal/refcount; Buffer is just that Cell specialized to []byte, plus
// the validation FromBytes runs once up front so every later accessor
// can assume well-formed bytes.
type Buffer struct {
	cell *refcount.AtomicCell[[]byte]
}

// FromBytes adopts data as a Buffer's backing store without copying it,
// after validating it. The caller must not mutate data afterward — dart
// buffers are immutable once adopted.
func FromBytes(data []byte) (*Buffer, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	return &Buffer{cell: refcount.NewAtomic(&data)}, nil
}

// FromBytesUnchecked adopts data without running Validate, for callers
// that already know the bytes came from a trusted Finalize call.
func FromBytesUnchecked(data []byte) *Buffer {
	return &Buffer{cell: refcount.NewAtomic(&data)}
}

// Bytes returns the buffer's backing bytes with no copy. The slice is
// only valid as long as this Buffer (or a clone) is alive, and must never
// be mutated.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	s := b.cell.Unwrap()
	if s == nil {
		return nil
	}
	return *s
}

// DupBytes returns an independent copy of the buffer's bytes, safe to
// hold or mutate after the Buffer itself is released.
func (b *Buffer) DupBytes() []byte {
	src := b.Bytes()
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// Clone returns a new Buffer handle sharing the same backing bytes, with
// the use count bumped.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	return &Buffer{cell: b.cell.Clone()}
}

// UseCount reports how many live Buffer handles share this backing store.
func (b *Buffer) UseCount() int64 {
	if b == nil {
		return 0
	}
	return b.cell.UseCount()
}

// Release drops this handle's share of the backing bytes.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.cell.Reset()
}

// Root returns the buffer's top-level object as a RawElement.
func (b *Buffer) Root() RawElement {
	return RawElement{Tag: TagObject, Data: b.Bytes()}
}

// Len returns the total byte length of the buffer's root object,
// including trailing alignment padding.
func (b *Buffer) Len() int {
	return len(b.Bytes())
}

// UpperBound returns a conservative capacity hint for a container with
// childCount children averaging averageChildBytes each — enough to
// presize a Writer so a finalize walk over a large tree reallocates its
// backing slice rarely rather than on every append.
func UpperBound(childCount, averageChildBytes int) int {
	if childCount < 0 {
		childCount = 0
	}
	if averageChildBytes < 0 {
		averageChildBytes = 0
	}
	return objectHeaderSize + childCount*(vtableEntrySize+averageChildBytes) + 8
}
