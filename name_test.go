package tlv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		uri   string
		comps []Component
		str   string
	}{
		{"/", nil, "/"},
		{"ndn:/a/b", []Component{{8, []byte("a")}, {8, []byte("b")}}, "/a/b"},
		{"/hello%20world", []Component{{8, []byte("hello world")}}, "/hello%20world"},
		{"/1=x", []Component{{1, []byte("x")}}, "/1=x"},
		{"/...", []Component{{8, []byte{}}}, "/..."},
		{"/....", []Component{{8, []byte(".")}}, "/...."},
		{"//a//", []Component{{8, []byte("a")}}, "/a"},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			n, err := ParseName(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, Name(tt.comps), n)
			assert.Equal(t, tt.str, n.String())
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		for _, uri := range []string{"a/b", "/%4", "/%zz"} {
			_, err := ParseName(uri)
			assert.ErrorIs(t, err, ErrInvalidName, uri)
		}
		assert.Panics(t, func() { MustParseName("relative") })
	})
}

func TestNameWire(t *testing.T) {
	n := MustParseName("/localhost/nfd")
	w := NewWriter(nil)
	w.WriteNested(TtName, n.EncodeValue)
	wire, err := w.Result()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x07, 0x10,
		0x08, 0x09, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't',
		0x08, 0x03, 'n', 'f', 'd',
	}, wire)

	got, err := DecodeName(wire[2:])
	require.NoError(t, err)
	assert.True(t, n.Equal(got))
	assert.False(t, n.Equal(got[:1]))

	empty, err := DecodeName(nil)
	require.NoError(t, err)
	assert.Equal(t, "/", empty.String())

	_, err = DecodeName([]byte{0x08, 0x05})
	assert.ErrorIs(t, err, ErrTruncated)
}
