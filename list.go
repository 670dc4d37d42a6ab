package tlv

import (
	"errors"
	"fmt"
	"io"
)

// Item is a record that can be encoded and decoded on its own.
type Item interface {
	Encoder
	Decoder
}

// List is a status dataset: the concatenation of zero or more records of
// one kind with no enclosing element. New creates the value each decoded
// element is decoded into.
type List[T Item] struct {
	Items []T
	New   func() T
}

// Statically ensure that List implements Codec.
var _ Codec = (*List[Item])(nil)

// NewList creates a List decoding into values produced by newItem.
func NewList[T Item](newItem func() T, items ...T) *List[T] {
	return &List[T]{Items: items, New: newItem}
}

func (l *List[T]) Len() int { return len(l.Items) }

// EncodeTLV writes every item in order.
func (l *List[T]) EncodeTLV(w *Writer) {
	for _, item := range l.Items {
		item.EncodeTLV(w)
	}
}

// DecodeTLV decodes items until wire is exhausted, appending to l.Items.
func (l *List[T]) DecodeTLV(wire []byte) (int, error) {
	off := 0
	for off < len(wire) {
		item := l.New()
		n, err := item.DecodeTLV(wire[off:])
		if err != nil {
			return off, fmt.Errorf("tlv: dataset item %d at offset %d: %w", len(l.Items), off, err)
		}
		l.Items = append(l.Items, item)
		off += n
	}
	return off, nil
}

// ReadFrom decodes items from r until a clean end of stream.
func (l *List[T]) ReadFrom(r io.Reader) (int64, error) {
	if r == nil {
		return 0, ErrNilIO
	}
	var total int64
	for {
		wire, n, err := ReadWire(r)
		total += n
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("tlv: dataset item %d: %w", len(l.Items), err)
		}
		item := l.New()
		if _, err := item.DecodeTLV(wire); err != nil {
			return total, fmt.Errorf("tlv: dataset item %d: %w", len(l.Items), err)
		}
		l.Items = append(l.Items, item)
	}
}

// --- Boilerplate implementations ---

func (l *List[T]) Size() int                          { return SizeGeneric(l) }
func (l *List[T]) MarshalBinary() ([]byte, error)     { return MarshalBinaryGeneric(l) }
func (l *List[T]) MarshalTo(buf []byte) (int, error)  { return MarshalToGeneric(l, buf) }
func (l *List[T]) WriteTo(w io.Writer) (int64, error) { return WriteToGeneric(l, w) }
func (l *List[T]) UnmarshalBinary(data []byte) error  { return UnmarshalBinaryGeneric(l, data) }
