package tlv

import "fmt"

// Field describes one field of a record: its protocol TLV-TYPE and whether
// it must be present. Fields are read-only once passed to NewSchema.
type Field struct {
	Name      string
	Type      uint64
	Mandatory bool
	Repeated  bool // may appear several times in a row; never mandatory

	record string
	index  int
}

// Visitor receives the value of each recognized field in wire order.
// value aliases the decoded buffer and must be copied if retained.
type Visitor func(f *Field, value []byte) error

// Schema is the fixed field table of one record kind. Fields are listed in
// the order the protocol puts them on the wire, which is the order a decoder
// requires and an encoder produces.
//
// A Schema is immutable and safe for concurrent use.
type Schema struct {
	Name   string
	Type   uint64
	fields []*Field
	index  map[uint64]int
}

// NewSchema builds the field table for a record. It panics on duplicate
// TLV-TYPEs or a mandatory repeated field, both of which are programming errors.
func NewSchema(name string, typ uint64, fields ...*Field) *Schema {
	if len(fields) > 64 {
		panic(fmt.Sprintf("tlv: schema %s has %d fields, at most 64 are supported", name, len(fields)))
	}
	s := &Schema{Name: name, Type: typ, fields: fields, index: make(map[uint64]int, len(fields))}
	for i, f := range fields {
		if _, dup := s.index[f.Type]; dup {
			panic(fmt.Sprintf("tlv: schema %s declares TLV-TYPE 0x%x twice", name, f.Type))
		}
		if f.Mandatory && f.Repeated {
			panic(fmt.Sprintf("tlv: schema %s field %s cannot be both mandatory and repeated", name, f.Name))
		}
		f.record = name
		f.index = i
		s.index[f.Type] = i
	}
	return s
}

// Fields returns the field table in wire order.
func (s *Schema) Fields() []*Field { return s.fields }

// Lookup returns the field bound to typ, if any.
func (s *Schema) Lookup(typ uint64) (*Field, bool) {
	i, ok := s.index[typ]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

// Encode writes the record's outer element; body writes the fields in order.
func (s *Schema) Encode(w *Writer, body func(w *Writer)) {
	w.WriteNested(s.Type, body)
}

// Decode decodes the record element at the start of data and returns the
// number of bytes it occupied.
func (s *Schema) Decode(data []byte, visit Visitor) (int, error) {
	r := NewReader(data)
	el, err := r.Expect(s.Type)
	if err != nil {
		return 0, &FieldError{Record: s.Name, Type: s.Type, Offset: 0, Err: err}
	}
	base := r.Offset() - len(el.Value)
	if err := s.decodeValue(el.Value, base, visit); err != nil {
		return 0, err
	}
	return r.Offset(), nil
}

// DecodeValue decodes the fields of a record whose outer element has
// already been consumed, such as a nested record.
func (s *Schema) DecodeValue(value []byte, visit Visitor) error {
	return s.decodeValue(value, 0, visit)
}

func (s *Schema) decodeValue(value []byte, base int, visit Visitor) error {
	var seen uint64
	last := -1
	r := NewReader(value)
	for !r.EOF() {
		off := base + r.Offset()
		typ, err := r.PeekType()
		if err != nil {
			return &FieldError{Record: s.Name, Offset: off, Err: err}
		}
		i, known := s.index[typ]
		if !known {
			// unrecognized elements are skipped, whatever their position
			if err := r.SkipElement(); err != nil {
				return &FieldError{Record: s.Name, Offset: off, Err: err}
			}
			continue
		}
		f := s.fields[i]
		if i < last || (i == last && !f.Repeated) {
			return s.fieldError(f, off, fmt.Errorf("%w: after %s", ErrFieldOrder, s.fields[last].Name))
		}
		el, err := r.ReadElement()
		if err != nil {
			return s.fieldError(f, off, err)
		}
		if err := visit(f, el.Value); err != nil {
			return s.fieldError(f, off, err)
		}
		last = i
		seen |= 1 << i
	}
	for i, f := range s.fields {
		if f.Mandatory && seen&(1<<i) == 0 {
			return s.fieldError(f, -1, ErrMissingField)
		}
	}
	return nil
}

func (s *Schema) fieldError(f *Field, off int, err error) error {
	return &FieldError{Record: s.Name, Field: f.Name, Type: f.Type, Offset: off, Err: err}
}
