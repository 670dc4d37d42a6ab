package tlv

import (
	"golang.org/x/exp/constraints"
)

// Writer appends TLV elements to a growable buffer. It tracks the first
// error that occurs; after an error all subsequent writes become no-ops.
//
// A Writer is owned by one encode call and must not be shared.
type Writer struct {
	b   []byte
	err error // first error encountered. Subsequent writes become no-ops.
}

// NewWriter creates a Writer that appends to buf[:0].
func NewWriter(buf []byte) *Writer {
	return &Writer{b: buf[:0]}
}

func (w *Writer) Bytes() []byte { return w.b }
func (w *Writer) Len() int      { return len(w.b) }
func (w *Writer) Err() error    { return w.err }

// Result returns the encoded bytes and the first error, if any.
func (w *Writer) Result() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.b, nil
}

// Reset empties the buffer and clears the error, keeping the capacity.
func (w *Writer) Reset() {
	w.b = w.b[:0]
	w.err = nil
}

// setError records the first non-nil error.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Write implements io.Writer by appending p verbatim.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.b = append(w.b, p...)
	return len(p), nil
}

// --- Primitive Write Operations ---

func (w *Writer) WriteType(typ uint64) {
	if w.err != nil {
		return
	}
	w.b = AppendVarNum(w.b, typ)
}

func (w *Writer) WriteLength(n int) {
	if w.err != nil {
		return
	}
	w.b = AppendVarNum(w.b, uint64(n))
}

func (w *Writer) WriteBlob(p []byte) {
	if w.err != nil {
		return
	}
	w.b = append(w.b, p...)
}

// WriteElement writes a complete element.
func (w *Writer) WriteElement(typ uint64, value []byte) {
	w.WriteType(typ)
	w.WriteLength(len(value))
	w.WriteBlob(value)
}

// WriteNat writes an element holding v as a NonNegativeInteger.
func (w *Writer) WriteNat(typ uint64, v uint64) {
	if w.err != nil {
		return
	}
	w.WriteType(typ)
	w.WriteLength(NatSize(v))
	w.b = AppendNat(w.b, v)
}

// WriteString writes an element holding the UTF-8 bytes of s.
func (w *Writer) WriteString(typ uint64, s string) {
	if w.err != nil {
		return
	}
	w.WriteType(typ)
	w.WriteLength(len(s))
	w.b = append(w.b, s...)
}

// WriteNested writes an element whose value is whatever fn writes.
// An error recorded by fn's writer becomes this writer's error.
func (w *Writer) WriteNested(typ uint64, fn func(w *Writer)) {
	if w.err != nil {
		return
	}
	inner := getWriter()
	defer putWriter(inner)

	fn(inner)
	if inner.err != nil {
		w.setError(inner.err)
		return
	}
	w.WriteElement(typ, inner.b)
}

// Require records ErrFieldNotSet when a mandatory field is not set and
// reports whether the field should be written.
func (w *Writer) Require(f *Field, set bool) bool {
	if set {
		return true
	}
	if f.Mandatory {
		w.setError(&FieldError{Record: f.record, Field: f.Name, Type: f.Type, Offset: -1, Err: ErrFieldNotSet})
	}
	return false
}

// WriteNatField writes a NonNegativeInteger field. Unset optional fields are omitted.
func WriteNatField[T constraints.Unsigned](w *Writer, f *Field, v Optional[T]) {
	n, ok := v.Get()
	if w.Require(f, ok) {
		w.WriteNat(f.Type, uint64(n))
	}
}

// WriteStringField writes a string field. Unset optional fields are omitted.
func WriteStringField(w *Writer, f *Field, v Optional[string]) {
	s, ok := v.Get()
	if w.Require(f, ok) {
		w.WriteString(f.Type, s)
	}
}
