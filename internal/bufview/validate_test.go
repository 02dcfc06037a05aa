package bufview

import (
	"testing"

	"github.com/scigolib/dart/internal/utils"
	"github.com/stretchr/testify/require"
)

func validObjectBytes(t *testing.T) []byte {
	t.Helper()
	w := NewWriter(64)
	_, err := BuildObject(w, []Pair{buildIntPair("a", 1), buildIntPair("bb", 2)})
	require.NoError(t, err)
	return w.Bytes()
}

func TestValidateAcceptsWellFormedObject(t *testing.T) {
	data := validObjectBytes(t)
	require.NoError(t, Validate(data))
	require.True(t, ValidateOk(data))
}

func TestValidateRejectsEmptyInput(t *testing.T) {
	require.Error(t, Validate(nil))
	require.False(t, ValidateOk(nil))
}

func TestValidateRejectsTruncatedHeader(t *testing.T) {
	data := validObjectBytes(t)
	require.Error(t, Validate(data[:4]))
}

func TestValidateRejectsOversizedDeclaredSize(t *testing.T) {
	data := validObjectBytes(t)
	corrupt := append([]byte(nil), data...)
	utils.PutUint32(corrupt[0:4], uint32(len(corrupt)+1000))
	require.Error(t, Validate(corrupt))
}

func TestValidateRejectsBadTypeTag(t *testing.T) {
	data := validObjectBytes(t)
	corrupt := append([]byte(nil), data...)
	// first vtable entry's type byte, offset 8+4
	corrupt[8+4] = 200
	require.Error(t, Validate(corrupt))
}

func TestValidateRejectsUnsortedVtable(t *testing.T) {
	w := NewWriter(64)
	// Build with keys already in the wrong order by writing directly
	// instead of through BuildObject's sort.
	base := w.BeginObject(2)
	k0, _ := w.WriteKeyString("bb")
	_, t0 := w.WriteInt64(1)
	k1, _ := w.WriteKeyString("a")
	_, t1 := w.WriteInt64(2)
	w.PatchObjectEntry(base, 0, k0, t0, 2, keyPrefixOf("bb"))
	w.PatchObjectEntry(base, 1, k1, t1, 1, keyPrefixOf("a"))
	w.EndObject(base)

	require.Error(t, Validate(w.Bytes()))
}

func TestValidateRejectsSizeNotEightAligned(t *testing.T) {
	data := validObjectBytes(t)
	corrupt := append([]byte(nil), data...)
	utils.PutUint32(corrupt[0:4], uint32(len(corrupt)-1))
	require.Error(t, Validate(corrupt))
}

func TestValidateDetectsRootSizeMismatch(t *testing.T) {
	data := validObjectBytes(t)
	// Pad buffer with trailing garbage the root object doesn't claim.
	padded := append(append([]byte(nil), data...), 0, 0, 0, 0, 0, 0, 0, 0)
	require.Error(t, Validate(padded))
}
