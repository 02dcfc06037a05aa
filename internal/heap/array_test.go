package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayAppendAtLenErase(t *testing.T) {
	arr := NewArray()
	require.NoError(t, arr.Append(NewInt64(1), DefaultSafeguard))
	require.NoError(t, arr.Append(NewInt64(2), DefaultSafeguard))
	require.NoError(t, arr.Append(NewInt64(3), DefaultSafeguard))

	n, err := arr.Len()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	el, err := arr.ElemAt(1)
	require.NoError(t, err)
	v, err := el.Int64Value()
	require.NoError(t, err)
	require.Equal(t, int64(2), v)

	_, err = arr.ElemAt(3)
	require.Error(t, err)

	removed, err := arr.EraseAt(0, DefaultSafeguard)
	require.NoError(t, err)
	require.True(t, removed)

	n, err = arr.Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	el, err = arr.ElemAt(0)
	require.NoError(t, err)
	v, err = el.Int64Value()
	require.NoError(t, err)
	require.Equal(t, int64(2), v)
}

func TestArrayInsertAtMiddle(t *testing.T) {
	arr := NewArray()
	require.NoError(t, arr.Append(NewInt64(1), DefaultSafeguard))
	require.NoError(t, arr.Append(NewInt64(3), DefaultSafeguard))
	require.NoError(t, arr.InsertAt(1, NewInt64(2), DefaultSafeguard))

	for i, want := range []int64{1, 2, 3} {
		el, err := arr.ElemAt(i)
		require.NoError(t, err)
		v, err := el.Int64Value()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestArraySetAtOverwrites(t *testing.T) {
	arr := NewArray()
	require.NoError(t, arr.Append(NewInt64(1), DefaultSafeguard))
	require.NoError(t, arr.SetAt(0, NewInt64(99), DefaultSafeguard))

	el, err := arr.ElemAt(0)
	require.NoError(t, err)
	v, err := el.Int64Value()
	require.NoError(t, err)
	require.Equal(t, int64(99), v)
}

func TestArrayEraseAtOutOfRangeReportsFalse(t *testing.T) {
	arr := NewArray()
	removed, err := arr.EraseAt(0, DefaultSafeguard)
	require.NoError(t, err)
	require.False(t, removed)
}
