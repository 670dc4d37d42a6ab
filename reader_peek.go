package tlv

import (
	"io"
)

// PeekableReader lets a caller look at the start of a stream, such as the
// TLV-TYPE of the next element, before deciding how to consume it.
type PeekableReader struct {
	R io.Reader // The underlying reader.
	B []byte    // Peeked bytes not yet consumed.
}

// PeekReader returns a PeekableReader. If the given reader is already a
// PeekableReader, it is returned directly.
func PeekReader(r io.Reader) *PeekableReader {
	if pr, ok := r.(*PeekableReader); ok {
		return pr
	}
	return &PeekableReader{R: r}
}

// Peek returns the next n bytes without advancing the reader. Fewer bytes
// are returned together with the error that stopped the read.
func (r *PeekableReader) Peek(n int) ([]byte, error) {
	if len(r.B) >= n {
		return r.B[:n], nil
	}

	i := len(r.B)
	r.B = append(r.B, make([]byte, n-i)...)

	var err error
	for i < n {
		read, er := r.R.Read(r.B[i:])
		i += read
		if er != nil {
			err = er
			break
		}
	}
	r.B = r.B[:i]
	return r.B, err
}

// PeekType returns the TLV-TYPE of the next element without consuming it.
// It returns io.EOF when the stream is empty.
func (r *PeekableReader) PeekType() (uint64, error) {
	head, err := r.Peek(1)
	if len(head) == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	size := 1
	switch head[0] {
	case varNum16:
		size = 3
	case varNum32:
		size = 5
	case varNum64:
		size = 9
	}
	head, err = r.Peek(size)
	if len(head) < size {
		return 0, streamError(io.ErrUnexpectedEOF)
	}
	typ, _, perr := ParseVarNum(head)
	if perr != nil {
		return 0, perr
	}
	if err == io.EOF {
		err = nil
	}
	return typ, err
}

// Close closes the underlying reader if it implements io.Closer.
func (r *PeekableReader) Close() error {
	if c, ok := r.R.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Read drains peeked bytes before reading from the underlying reader.
func (r *PeekableReader) Read(p []byte) (n int, err error) {
	n = copy(p, r.B)
	if len(p) <= len(r.B) {
		r.B = r.B[n:]
		return n, nil
	}
	r.B = nil
	read, err := r.R.Read(p[n:])
	n += read
	return n, err
}

// WriteTo writes the peeked bytes and then copies the rest of the stream to w.
func (r *PeekableReader) WriteTo(w io.Writer) (n int64, err error) {
	if len(r.B) > 0 {
		written, err := w.Write(r.B)
		n = int64(written)
		r.B = r.B[written:]
		if err != nil {
			return n, err
		}
		if len(r.B) > 0 {
			return n, io.ErrShortWrite
		}
	}
	copied, err := io.Copy(w, r.R)
	return n + copied, err
}
