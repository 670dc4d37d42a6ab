package tlv

import (
	"fmt"
	"io"
)

// MarshalBinaryGeneric provides an `encoding.BinaryMarshaler` implementation for any Encoder.
func MarshalBinaryGeneric(v Encoder) ([]byte, error) {
	w := NewWriter(nil)
	v.EncodeTLV(w)
	return w.Result()
}

// SizeGeneric returns the encoded size of v, or 0 when v cannot be encoded.
func SizeGeneric(v Encoder) int {
	w := getWriter()
	defer putWriter(w)
	v.EncodeTLV(w)
	if w.err != nil {
		return 0
	}
	return w.Len()
}

// MarshalToGeneric provides the MarshalTo method for any Encoder.
func MarshalToGeneric(v Encoder, p []byte) (int, error) {
	w := getWriter()
	defer putWriter(w)
	v.EncodeTLV(w)
	if w.err != nil {
		return 0, w.err
	}
	if len(p) < w.Len() {
		return 0, io.ErrShortBuffer
	}
	return copy(p, w.b), nil
}

// WriteToGeneric provides an `io.WriterTo` implementation for any Encoder.
func WriteToGeneric(v Encoder, dst io.Writer) (int64, error) {
	if dst == nil {
		return 0, ErrNilIO
	}
	w := getWriter()
	defer putWriter(w)
	v.EncodeTLV(w)
	if w.err != nil {
		return 0, w.err
	}
	n, err := dst.Write(w.b)
	if err != nil {
		return int64(n), err
	}
	if n < w.Len() {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// UnmarshalBinaryGeneric provides `UnmarshalBinary` for any Decoder.
// The data must hold exactly one element: trailing bytes are rejected.
func UnmarshalBinaryGeneric(v Decoder, data []byte) error {
	n, err := v.DecodeTLV(data)
	if err != nil {
		return err
	}
	if n < len(data) {
		return fmt.Errorf("%w: %d bytes after offset %d", ErrTrailingData, len(data)-n, n)
	}
	return nil
}

// ReadFromGeneric provides an `io.ReaderFrom` implementation for any Decoder.
// It reads exactly one element from r.
func ReadFromGeneric(v Decoder, r io.Reader) (int64, error) {
	if r == nil {
		return 0, ErrNilIO
	}
	wire, n, err := ReadWire(r)
	if err != nil {
		return n, err
	}
	_, err = v.DecodeTLV(wire)
	return n, err
}
