package tlv

import (
	"encoding"
	"io"
)

// Sizer is an interface for types that can report their encoded size.
// This is useful for pre-allocating buffers before encoding.
type Sizer interface {
	// Size returns the size of the type in bytes when TLV encoded.
	Size() int
}

// Marshaler defines the core methods for encoding an object into a byte stream.
type Marshaler interface {
	// encoding.BinaryMarshaler provides the primary encoding method.
	// It allocates and returns a new byte slice.
	encoding.BinaryMarshaler // Method: MarshalBinary() ([]byte, error)
	// io.WriterTo provides stream-based writing.
	io.WriterTo // Method: WriteTo(writer io.Writer) (int64, error)

	// MarshalTo encodes the object into a pre-allocated buffer, returning
	// io.ErrShortBuffer if the buffer is too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler defines the core methods for decoding a byte stream into an object.
type Unmarshaler interface {
	// encoding.BinaryUnmarshaler decodes exactly one element from a byte slice.
	encoding.BinaryUnmarshaler // Method: UnmarshalBinary(data []byte) error
	// io.ReaderFrom reads exactly one element from a stream.
	io.ReaderFrom // Method: ReadFrom(r io.Reader) (int64, error)
}

// Codec aggregates all serialization and deserialization interfaces.
// A type implementing Codec is a complete, self-sizing TLV encoder/decoder.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}

// Encoder is implemented by records that write themselves, outer element
// included, through a Writer. Encoding errors are recorded on the Writer.
type Encoder interface {
	EncodeTLV(w *Writer)
}

// Decoder is implemented by records that decode themselves from the
// element at the start of wire, returning the number of bytes consumed.
type Decoder interface {
	DecodeTLV(wire []byte) (int, error)
}
