package tlv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(items ...*testRecord) *List[*testRecord] {
	return NewList(func() *testRecord { return &testRecord{} }, items...)
}

func TestList(t *testing.T) {
	a := &testRecord{ID: Some[uint64](1)}
	b := &testRecord{ID: Some[uint64](2), Label: Some("two")}

	wire, err := newTestList(a, b).MarshalBinary()
	require.NoError(t, err)

	t.Run("RoundTrip", func(t *testing.T) {
		got := newTestList()
		require.NoError(t, got.UnmarshalBinary(wire))
		require.Equal(t, 2, got.Len())
		assert.Equal(t, a, got.Items[0])
		assert.Equal(t, b, got.Items[1])
	})

	t.Run("Empty", func(t *testing.T) {
		got := newTestList()
		require.NoError(t, got.UnmarshalBinary(nil))
		assert.Zero(t, got.Len())
		assert.Zero(t, newTestList().Size())
	})

	t.Run("ErrorNamesItem", func(t *testing.T) {
		bad := append(append([]byte{}, wire...), 0x20, 0x00)
		err := newTestList().UnmarshalBinary(bad)
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Contains(t, err.Error(), "dataset item 2 at offset")
	})

	t.Run("EncodeErrorPropagates", func(t *testing.T) {
		_, err := newTestList(a, &testRecord{}).MarshalBinary()
		assert.ErrorIs(t, err, ErrFieldNotSet)
	})

	t.Run("ReadFromStream", func(t *testing.T) {
		got := newTestList()
		n, err := got.ReadFrom(bytes.NewReader(wire))
		require.NoError(t, err)
		assert.Equal(t, int64(len(wire)), n)
		assert.Equal(t, 2, got.Len())
	})

	t.Run("ReadFromTruncatedStream", func(t *testing.T) {
		got := newTestList()
		_, err := got.ReadFrom(bytes.NewReader(wire[:len(wire)-1]))
		assert.ErrorIs(t, err, ErrTruncated)
		assert.Equal(t, 1, got.Len())
	})
}
