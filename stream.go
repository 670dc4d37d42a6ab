package tlv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// MaxElementLength bounds the TLV-LENGTH accepted from a stream, so a
// corrupt header cannot make ReadWire allocate arbitrary amounts of memory.
// NFD status datasets are segmented well below this.
const MaxElementLength = 1 << 20

// ReadWire reads one complete element from r and returns its encoding.
// A clean end of stream before the first byte returns io.EOF; an end of
// stream inside the element returns ErrTruncated.
//
// When r is not an io.ByteReader the header is read one byte at a time so
// that no byte past the element is consumed.
func ReadWire(r io.Reader) ([]byte, int64, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &singleByteReader{r: r}
	}

	raw := make([]byte, 0, 18)
	_, raw, err := readStreamVarNum(br, raw)
	if err != nil {
		if errors.Is(err, io.EOF) && len(raw) == 0 {
			return nil, 0, io.EOF
		}
		return nil, int64(len(raw)), streamError(err)
	}
	length, raw, err := readStreamVarNum(br, raw)
	if err != nil {
		return nil, int64(len(raw)), streamError(err)
	}
	if length > MaxElementLength {
		return nil, int64(len(raw)), fmt.Errorf("%w: TLV-LENGTH %d exceeds %d", ErrElementTooLarge, length, MaxElementLength)
	}

	// br either is r or reads from r without buffering, so r continues
	// exactly where the header ended.
	wire := make([]byte, len(raw)+int(length))
	copy(wire, raw)
	read, err := io.ReadFull(r, wire[len(raw):])
	n := int64(len(raw) + read)
	if err != nil {
		return nil, n, streamError(err)
	}
	return wire, n, nil
}

// readStreamVarNum reads one VAR-NUMBER from br, appending its raw bytes to raw.
func readStreamVarNum(br io.ByteReader, raw []byte) (uint64, []byte, error) {
	first, err := br.ReadByte()
	if err != nil {
		return 0, raw, err
	}
	raw = append(raw, first)
	var size int
	switch first {
	case varNum16:
		size = 2
	case varNum32:
		size = 4
	case varNum64:
		size = 8
	default:
		return uint64(first), raw, nil
	}
	for i := 0; i < size; i++ {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return 0, raw, err
		}
		raw = append(raw, b)
	}
	v, _, err := ParseVarNum(raw[len(raw)-size-1:])
	return v, raw, err
}

func streamError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncated, io.ErrUnexpectedEOF)
	}
	return err
}

// singleByteReader adapts an io.Reader to io.ByteReader without buffering,
// so it never consumes bytes beyond the one requested.
type singleByteReader struct {
	r   io.Reader
	buf [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	for {
		n, err := s.r.Read(s.buf[:])
		if n == 1 {
			return s.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// NewStreamReader wraps r in a buffered reader suitable for ReadWire.
// Use it for datasets read from files or sockets where over-reading is harmless.
func NewStreamReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}
