package heap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimitiveFactoriesRoundTrip(t *testing.T) {
	require.Equal(t, KindNull, NewNull().Kind())

	b, err := NewBool(true).BoolValue()
	require.NoError(t, err)
	require.True(t, b)

	i, err := NewInt64(-7).Int64Value()
	require.NoError(t, err)
	require.Equal(t, int64(-7), i)

	f, err := NewFloat64(2.5).Float64Value()
	require.NoError(t, err)
	require.Equal(t, 2.5, f)
}

func TestStringSSOForShortStrings(t *testing.T) {
	h := NewString("hello")
	require.True(t, h.IsInline())
	s, err := h.StringValue()
	require.NoError(t, err)
	require.Equal(t, "hello", s)
}

func TestStringSSOBoundary(t *testing.T) {
	exact := strings.Repeat("x", SSOMax)
	h := NewString(exact)
	require.True(t, h.IsInline())
	s, err := h.StringValue()
	require.NoError(t, err)
	require.Equal(t, exact, s)

	over := strings.Repeat("x", SSOMax+1)
	h2 := NewString(over)
	require.False(t, h2.IsInline())
	s2, err := h2.StringValue()
	require.NoError(t, err)
	require.Equal(t, over, s2)
}

func TestStringSSOEmptyString(t *testing.T) {
	h := NewString("")
	require.True(t, h.IsInline())
	s, err := h.StringValue()
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestTypeMismatchOnWrongAccessor(t *testing.T) {
	h := NewInt64(1)
	_, err := h.BoolValue()
	require.Error(t, err)
	_, err = h.StringValue()
	require.Error(t, err)
}

func TestCloneSharesCompositeContainer(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Insert("k", NewInt64(1), DefaultSafeguard))

	clone := obj.Clone()
	n, err := clone.NumFields()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
