package tlv

import "fmt"

// Reader is a cursor over an encoded buffer. It tracks the first error;
// once an error is recorded subsequent reads become no-ops returning it.
//
// A Reader is owned by one decode call and must not be shared.
type Reader struct {
	b   []byte
	n   int   // current read position
	err error // first error encountered
}

// NewReader creates a Reader over b. The Reader never reads outside b.
func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

func (r *Reader) Offset() int { return r.n }
func (r *Reader) Err() error  { return r.err }

// Available returns the number of unread bytes.
func (r *Reader) Available() int {
	if r.n >= len(r.b) {
		return 0
	}
	return len(r.b) - r.n
}

// EOF reports whether the whole buffer has been consumed.
func (r *Reader) EOF() bool { return r.Available() == 0 }

// setError records the first non-nil error.
func (r *Reader) setError(err error) error {
	if r.err == nil && err != nil {
		r.err = err
	}
	return r.err
}

func (r *Reader) readVarNum() (uint64, error) {
	if r.err != nil {
		return 0, r.err
	}
	v, size, err := ParseVarNum(r.b[r.n:])
	if err != nil {
		return 0, r.setError(err)
	}
	r.n += size
	return v, nil
}

// ReadType consumes a TLV-TYPE.
func (r *Reader) ReadType() (uint64, error) {
	return r.readVarNum()
}

// PeekType returns the next TLV-TYPE without consuming it.
func (r *Reader) PeekType() (uint64, error) {
	if r.err != nil {
		return 0, r.err
	}
	v, _, err := ParseVarNum(r.b[r.n:])
	if err != nil {
		return 0, r.setError(err)
	}
	return v, nil
}

// ReadLength consumes a TLV-LENGTH and checks that the value it announces
// fits in the remaining buffer.
func (r *Reader) ReadLength() (int, error) {
	l, err := r.readVarNum()
	if err != nil {
		return 0, err
	}
	if l > uint64(r.Available()) {
		return 0, r.setError(fmt.Errorf("%w: length %d exceeds %d remaining bytes", ErrTruncated, l, r.Available()))
	}
	return int(l), nil
}

// ReadBlob consumes n bytes and returns them as a view into the buffer.
// Callers that keep the bytes must copy them.
func (r *Reader) ReadBlob(n int) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	if n < 0 || n > r.Available() {
		return nil, r.setError(fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, n, r.Available()))
	}
	v := r.b[r.n : r.n+n : r.n+n]
	r.n += n
	return v, nil
}

// ReadElement consumes one complete TLV element.
func (r *Reader) ReadElement() (Element, error) {
	typ, err := r.ReadType()
	if err != nil {
		return Element{}, err
	}
	l, err := r.ReadLength()
	if err != nil {
		return Element{}, err
	}
	v, err := r.ReadBlob(l)
	if err != nil {
		return Element{}, err
	}
	return Element{Type: typ, Value: v}, nil
}

// SkipElement consumes one element without interpreting its value.
func (r *Reader) SkipElement() error {
	_, err := r.ReadElement()
	return err
}

// Expect consumes one element and fails with ErrTypeMismatch if its TLV-TYPE is not typ.
func (r *Reader) Expect(typ uint64) (Element, error) {
	start := r.n
	el, err := r.ReadElement()
	if err != nil {
		return Element{}, err
	}
	if el.Type != typ {
		r.n = start
		return Element{}, r.setError(fmt.Errorf("%w: got 0x%x, want 0x%x", ErrTypeMismatch, el.Type, typ))
	}
	return el, nil
}
