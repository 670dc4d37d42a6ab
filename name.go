package tlv

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// TLV-TYPEs of names.
const (
	TtName                 = 0x07
	TtGenericNameComponent = 0x08
)

// Component is one name component.
type Component struct {
	Type  uint64
	Value []byte
}

// Name is a hierarchical NDN name.
type Name []Component

// ParseName parses the URI form of a name, e.g. "/localhost/nfd/strategy/best-route".
// Components may be percent-encoded and may carry a "type=" prefix.
func ParseName(uri string) (Name, error) {
	uri = strings.TrimPrefix(uri, "ndn:")
	if !strings.HasPrefix(uri, "/") {
		return nil, fmt.Errorf("%w: %q does not start with /", ErrInvalidName, uri)
	}
	var n Name
	for _, part := range strings.Split(uri[1:], "/") {
		if part == "" {
			continue
		}
		c, err := parseComponent(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidName, uri, err)
		}
		n = append(n, c)
	}
	return n, nil
}

// MustParseName is like ParseName but panics on error. It is meant for
// well-known constant names.
func MustParseName(uri string) Name {
	n, err := ParseName(uri)
	if err != nil {
		panic(err)
	}
	return n
}

func parseComponent(s string) (Component, error) {
	c := Component{Type: TtGenericNameComponent}
	if i := strings.IndexByte(s, '='); i > 0 {
		typ, err := strconv.ParseUint(s[:i], 10, 64)
		if err == nil {
			c.Type = typ
			s = s[i+1:]
		}
	}
	var v []byte
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			v = append(v, s[i])
			continue
		}
		if i+2 >= len(s) {
			return c, fmt.Errorf("incomplete escape in %q", s)
		}
		b, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
		if err != nil {
			return c, fmt.Errorf("bad escape in %q", s)
		}
		v = append(v, byte(b))
		i += 2
	}
	if len(v) >= 3 && onlyPeriods(v) {
		v = v[3:]
	}
	c.Value = v
	return c, nil
}

func onlyPeriods(v []byte) bool {
	return len(bytes.Trim(v, ".")) == 0
}

func isUnreserved(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' ||
		b == '-' || b == '.' || b == '_' || b == '~'
}

// String returns the URI form of the component.
func (c Component) String() string {
	var sb strings.Builder
	if c.Type != TtGenericNameComponent {
		sb.WriteString(strconv.FormatUint(c.Type, 10))
		sb.WriteByte('=')
	}
	if onlyPeriods(c.Value) {
		sb.WriteString("...")
	}
	for _, b := range c.Value {
		if isUnreserved(b) {
			sb.WriteByte(b)
		} else {
			fmt.Fprintf(&sb, "%%%02X", b)
		}
	}
	return sb.String()
}

// String returns the URI form of the name.
func (n Name) String() string {
	if len(n) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, c := range n {
		sb.WriteByte('/')
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Equal reports whether two names have the same components.
func (n Name) Equal(o Name) bool {
	if len(n) != len(o) {
		return false
	}
	for i := range n {
		if n[i].Type != o[i].Type || !bytes.Equal(n[i].Value, o[i].Value) {
			return false
		}
	}
	return true
}

// EncodeValue writes the components of n, without the enclosing Name element.
func (n Name) EncodeValue(w *Writer) {
	for _, c := range n {
		w.WriteElement(c.Type, c.Value)
	}
}

// DecodeName decodes the value of a Name element. Component values are copied.
func DecodeName(value []byte) (Name, error) {
	r := NewReader(value)
	var n Name
	for !r.EOF() {
		el, err := r.ReadElement()
		if err != nil {
			return nil, err
		}
		n = append(n, Component{Type: el.Type, Value: DecodeBytes(el.Value)})
	}
	return n, nil
}

// WriteNameField writes a Name field. Unset optional names are omitted.
func WriteNameField(w *Writer, f *Field, v Optional[Name]) {
	n, ok := v.Get()
	if w.Require(f, ok) {
		w.WriteNested(f.Type, n.EncodeValue)
	}
}
