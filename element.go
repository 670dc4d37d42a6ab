package tlv

// Element is one TLV element. Value may alias the buffer it was parsed from.
type Element struct {
	Type  uint64
	Value []byte
}

// Length returns the TLV-LENGTH.
func (e Element) Length() int { return len(e.Value) }

// Size returns the encoded size of the whole element.
func (e Element) Size() int {
	return VarNumSize(e.Type) + VarNumSize(uint64(len(e.Value))) + len(e.Value)
}

// AppendTo appends the encoded element to b.
func (e Element) AppendTo(b []byte) []byte {
	b = AppendVarNum(b, e.Type)
	b = AppendVarNum(b, uint64(len(e.Value)))
	return append(b, e.Value...)
}

// MarshalBinary encodes the element.
func (e Element) MarshalBinary() ([]byte, error) {
	return e.AppendTo(make([]byte, 0, e.Size())), nil
}

// ParseElement decodes the element at the start of wire and returns the rest.
func ParseElement(wire []byte) (Element, []byte, error) {
	r := NewReader(wire)
	e, err := r.ReadElement()
	if err != nil {
		return Element{}, nil, err
	}
	return e, wire[r.Offset():], nil
}

// Children parses the value as a sequence of elements.
func (e Element) Children() ([]Element, error) {
	var children []Element
	r := NewReader(e.Value)
	for !r.EOF() {
		off := r.Offset()
		child, err := r.ReadElement()
		if err != nil {
			return nil, &FieldError{Record: "Element", Type: e.Type, Offset: off, Err: err}
		}
		children = append(children, child)
	}
	return children, nil
}
