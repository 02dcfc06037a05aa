package heap

import "github.com/scigolib/dart/internal/refcount"

// SSOMax is the longest string stored inline in a Heap value without a
// separate shared allocation. The inline array is 16 bytes; the last
// byte doubles as a "bytes remaining" counter (SSOMax - len(s)), so a
// string that fills all 15 usable bytes leaves that counter at 0 — the
// same value a nul terminator would read back as, with no separate
// terminator byte needed.
const SSOMax = 15

type entry struct {
	key string
	val *Heap
}

type orderedMap struct {
	entries []entry
}

type vector struct {
	elems []*Heap
}

// Heap is a single node of the mutable tree. It is small enough to treat
// as a value in most contexts, but the library always hands out *Heap so
// that object/array mutation is visible through every alias.
//
// Object and array states hold their data behind a refcount.AtomicCell;
// cloning a Heap (see Clone) bumps that cell's count rather than copying
// the underlying slice, which is what makes clone-then-mutate cheap
// until a write actually happens (copy-on-write).
type Heap struct {
	kind Kind

	b bool
	i int64
	f float64

	sso   [16]byte
	isSSO bool
	str   *refcount.AtomicCell[string]

	obj *refcount.AtomicCell[orderedMap]
	arr *refcount.AtomicCell[vector]
}

// Kind reports which of the seven states h holds.
func (h *Heap) Kind() Kind { return h.kind }

// NewNull returns a null heap value.
func NewNull() *Heap { return &Heap{kind: KindNull} }

// NewBool wraps a boolean.
func NewBool(v bool) *Heap { return &Heap{kind: KindBool, b: v} }

// NewInt64 wraps a signed 64-bit integer.
func NewInt64(v int64) *Heap { return &Heap{kind: KindInt64, i: v} }

// NewFloat64 wraps a 64-bit float.
func NewFloat64(v float64) *Heap { return &Heap{kind: KindFloat64, f: v} }

// NewString wraps s, choosing the inline (SSO) representation when it
// fits and a shared heap allocation otherwise.
func NewString(s string) *Heap {
	h := &Heap{kind: KindString}
	if len(s) <= SSOMax {
		h.isSSO = true
		copy(h.sso[:], s)
		h.sso[15] = byte(SSOMax - len(s))
		return h
	}
	h.str = refcount.NewAtomic(&s)
	return h
}

// NewObject returns an empty object heap value.
func NewObject() *Heap {
	m := orderedMap{}
	return &Heap{kind: KindObject, obj: refcount.NewAtomic(&m)}
}

// NewArray returns an empty array heap value.
func NewArray() *Heap {
	v := vector{}
	return &Heap{kind: KindArray, arr: refcount.NewAtomic(&v)}
}

// Clone returns a new owning reference to h. For object and array values
// this bumps the shared container's use count rather than copying its
// contents — the copy only happens lazily, the first time a mutation
// observes a use count above its safeguard.
func (h *Heap) Clone() *Heap {
	if h == nil {
		return nil
	}
	c := &Heap{kind: h.kind, b: h.b, i: h.i, f: h.f, sso: h.sso, isSSO: h.isSSO}
	switch h.kind {
	case KindString:
		if !h.isSSO {
			c.str = h.str.Clone()
		}
	case KindObject:
		c.obj = h.obj.Clone()
	case KindArray:
		c.arr = h.arr.Clone()
	}
	return c
}

// BoolValue returns h's boolean, or a TypeMismatch if h does not hold one.
func (h *Heap) BoolValue() (bool, error) {
	if h.kind != KindBool {
		return false, typeMismatch("BoolValue: not a bool")
	}
	return h.b, nil
}

// Int64Value returns h's integer, or a TypeMismatch if h does not hold one.
func (h *Heap) Int64Value() (int64, error) {
	if h.kind != KindInt64 {
		return 0, typeMismatch("Int64Value: not an int64")
	}
	return h.i, nil
}

// Float64Value returns h's float, or a TypeMismatch if h does not hold one.
func (h *Heap) Float64Value() (float64, error) {
	if h.kind != KindFloat64 {
		return 0, typeMismatch("Float64Value: not a float64")
	}
	return h.f, nil
}

// StringValue returns h's string, or a TypeMismatch if h does not hold one.
func (h *Heap) StringValue() (string, error) {
	if h.kind != KindString {
		return "", typeMismatch("StringValue: not a string")
	}
	if h.isSSO {
		n := SSOMax - int(h.sso[15])
		return string(h.sso[:n]), nil
	}
	return *h.str.Unwrap(), nil
}

// IsInline reports whether h's string is stored inline (SSO) rather than
// on a shared allocation. Only meaningful when Kind() == KindString.
func (h *Heap) IsInline() bool { return h.isSSO }
