package tlv

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mocks and Helpers ---

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// shortWriter accepts one byte less than asked.
type shortWriter struct{ bytes.Buffer }

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return w.Buffer.Write(p[:len(p)-1])
}

// --- Writer Test Suite ---

type WriterTestSuite struct {
	suite.Suite
	writer *Writer
}

// SetupTest runs before each test in the suite, ensuring a clean state.
func (s *WriterTestSuite) SetupTest() {
	s.writer = NewWriter(nil)
}

func (s *WriterTestSuite) TestTypeAndLengthForms() {
	s.writer.WriteType(252)
	s.writer.WriteType(253)
	s.writer.WriteLength(0x10000)
	s.writer.WriteType(1 << 32)

	expected := []byte{
		0xfc,
		0xfd, 0x00, 0xfd,
		0xfe, 0x00, 0x01, 0x00, 0x00,
		0xff, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00,
	}
	s.Equal(expected, s.writer.Bytes())
	s.NoError(s.writer.Err())
}

func (s *WriterTestSuite) TestNatWidths() {
	s.writer.WriteNat(0x01, 0)
	s.writer.WriteNat(0x01, 0x100)
	s.writer.WriteNat(0x01, 0x10000)
	s.writer.WriteNat(0x01, 0x100000000)

	expected := []byte{
		0x01, 0x01, 0x00,
		0x01, 0x02, 0x01, 0x00,
		0x01, 0x04, 0x00, 0x01, 0x00, 0x00,
		0x01, 0x08, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00,
	}
	s.Equal(expected, s.writer.Bytes())
}

func (s *WriterTestSuite) TestStringAndNested() {
	s.writer.WriteNested(0x07, func(w *Writer) {
		w.WriteString(0x08, "ab")
		w.WriteElement(0x08, nil)
	})
	s.Equal([]byte{0x07, 0x06, 0x08, 0x02, 'a', 'b', 0x08, 0x00}, s.writer.Bytes())
}

func (s *WriterTestSuite) TestErrorHandling() {
	s.T().Run("UnsetMandatoryFieldLatches", func(t *testing.T) {
		w := NewWriter(nil)
		assert.False(t, w.Require(trID, false))
		w.WriteNat(0x01, 1)
		_, _ = w.Write([]byte{1, 2, 3})

		assert.Zero(t, w.Len(), "writes after an error must be no-ops")
		out, err := w.Result()
		assert.Nil(t, out)
		assert.ErrorIs(t, err, ErrFieldNotSet)

		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "Test", fe.Record)
		assert.Equal(t, "Id", fe.Field)
		assert.Equal(t, -1, fe.Offset)
	})

	s.T().Run("UnsetOptionalFieldIsOmitted", func(t *testing.T) {
		w := NewWriter(nil)
		assert.False(t, w.Require(trLabel, false))
		assert.NoError(t, w.Err())
	})

	s.T().Run("NestedErrorPropagates", func(t *testing.T) {
		w := NewWriter(nil)
		w.WriteNested(0x20, func(w *Writer) {
			w.WriteNat(0x02, 7)
			w.Require(trID, false)
		})
		assert.ErrorIs(t, w.Err(), ErrFieldNotSet)
		assert.Zero(t, w.Len())
	})

	s.T().Run("FirstErrorWins", func(t *testing.T) {
		w := NewWriter(nil)
		w.setError(ErrFieldNotSet)
		w.setError(ErrNilIO)
		assert.ErrorIs(t, w.Err(), ErrFieldNotSet)
	})
}

func (s *WriterTestSuite) TestReset() {
	s.writer.Require(trID, false)
	s.writer.Reset()
	s.NoError(s.writer.Err())
	s.writer.WriteNat(0x01, 5)
	s.Equal([]byte{0x01, 0x01, 0x05}, s.writer.Bytes())
}

// TestWriter runs the WriterTestSuite.
func TestWriter(t *testing.T) {
	suite.Run(t, new(WriterTestSuite))
}

// --- Reader Test Suite ---

type ReaderTestSuite struct {
	suite.Suite
}

func (s *ReaderTestSuite) TestSuccessfulReads() {
	data := []byte{0x07, 0x03, 0x08, 0x01, 'a', 0xfd, 0x01, 0x00, 0x00}
	r := NewReader(data)

	el, err := r.ReadElement()
	s.Require().NoError(err)
	s.Equal(uint64(0x07), el.Type)
	s.Equal([]byte{0x08, 0x01, 'a'}, el.Value)
	s.Equal(5, r.Offset())

	typ, err := r.PeekType()
	s.Require().NoError(err)
	s.Equal(uint64(256), typ)
	s.Equal(5, r.Offset(), "PeekType must not consume")

	typ, err = r.ReadType()
	s.Require().NoError(err)
	s.Equal(uint64(256), typ)

	l, err := r.ReadLength()
	s.Require().NoError(err)
	s.Zero(l)
	s.True(r.EOF())
}

func (s *ReaderTestSuite) TestReadBlobCapsCapacity() {
	r := NewReader([]byte{1, 2, 3, 4})
	v, err := r.ReadBlob(2)
	s.Require().NoError(err)
	s.Equal(2, cap(v), "appending to a blob must not clobber the input")
	s.Equal(2, r.Available())
}

func (s *ReaderTestSuite) TestErrorHandling() {
	s.T().Run("LengthPastEnd", func(t *testing.T) {
		r := NewReader([]byte{0x07, 0x05, 0x01})
		_, err := r.ReadElement()
		assert.ErrorIs(t, err, ErrTruncated)
		assert.ErrorIs(t, err, ErrBounds)

		_, err2 := r.ReadType()
		assert.Same(t, r.Err(), err2, "the first error is latched")
	})

	s.T().Run("EmptyInput", func(t *testing.T) {
		_, err := NewReader(nil).PeekType()
		assert.ErrorIs(t, err, ErrTruncated)
	})

	s.T().Run("ShortVarNumber", func(t *testing.T) {
		_, err := NewReader([]byte{0xfe, 0x00, 0x01}).ReadType()
		assert.ErrorIs(t, err, ErrTruncated)
	})

	s.T().Run("NegativeBlob", func(t *testing.T) {
		_, err := NewReader([]byte{1}).ReadBlob(-1)
		assert.ErrorIs(t, err, ErrBounds)
	})

	s.T().Run("ExpectMismatchRewinds", func(t *testing.T) {
		r := NewReader([]byte{0x08, 0x00})
		_, err := r.Expect(0x07)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Zero(t, r.Offset())
	})
}

// TestReader runs the ReaderTestSuite.
func TestReader(t *testing.T) {
	suite.Run(t, new(ReaderTestSuite))
}

// --- Element Tests ---

func TestElement(t *testing.T) {
	wire := []byte{0x07, 0x05, 0x08, 0x03, 'n', 'f', 'd', 0xaa}

	el, rest, err := ParseElement(wire)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa}, rest)
	assert.Equal(t, 7, el.Size())
	assert.Equal(t, 5, el.Length())

	enc, err := el.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, wire[:7], enc)

	children, err := el.Children()
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, uint64(0x08), children[0].Type)
	assert.Equal(t, []byte("nfd"), children[0].Value)

	t.Run("ChildrenReportOffset", func(t *testing.T) {
		bad := Element{Type: 0x07, Value: []byte{0x08, 0x00, 0x08, 0x09}}
		_, err := bad.Children()
		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, 2, fe.Offset)
		assert.ErrorIs(t, err, ErrTruncated)
	})
}

// --- Generic Codec Tests ---

func TestGenericCodec_Errors(t *testing.T) {
	rec := &testRecord{ID: Some[uint64](5)}
	wire, err := rec.MarshalBinary()
	require.NoError(t, err)

	t.Run("MarshalToShortBuffer", func(t *testing.T) {
		_, err := rec.MarshalTo(make([]byte, rec.Size()-1))
		assert.ErrorIs(t, err, io.ErrShortBuffer)
	})

	t.Run("MarshalToExact", func(t *testing.T) {
		buf := make([]byte, rec.Size())
		n, err := rec.MarshalTo(buf)
		require.NoError(t, err)
		assert.Equal(t, wire, buf[:n])
	})

	t.Run("SizeOfUnencodableRecord", func(t *testing.T) {
		assert.Zero(t, (&testRecord{}).Size())
	})

	t.Run("WriteToNil", func(t *testing.T) {
		_, err := rec.WriteTo(nil)
		assert.ErrorIs(t, err, ErrNilIO)
	})

	t.Run("WriteToFailingWriter", func(t *testing.T) {
		_, err := rec.WriteTo(failingWriter{})
		assert.EqualError(t, err, "disk full")
	})

	t.Run("WriteToShortWrite", func(t *testing.T) {
		_, err := rec.WriteTo(&shortWriter{})
		assert.ErrorIs(t, err, io.ErrShortWrite)
	})

	t.Run("UnmarshalWithTrailingData", func(t *testing.T) {
		var got testRecord
		err := got.UnmarshalBinary(append(append([]byte{}, wire...), 0x01))
		assert.ErrorIs(t, err, ErrTrailingData)
	})

	t.Run("ReadFromNil", func(t *testing.T) {
		var got testRecord
		_, err := got.ReadFrom(nil)
		assert.ErrorIs(t, err, ErrNilIO)
	})

	t.Run("ReadFromStream", func(t *testing.T) {
		var got testRecord
		r := bytes.NewReader(append(append([]byte{}, wire...), 0xaa))
		n, err := got.ReadFrom(r)
		require.NoError(t, err)
		assert.Equal(t, int64(len(wire)), n)
		assert.Equal(t, uint64(5), got.ID.GetOr(0))
		assert.Equal(t, 1, r.Len(), "bytes after the element stay unread")
	})
}
