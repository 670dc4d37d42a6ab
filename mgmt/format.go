package mgmt

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// printer renders a record as
//
//	Kind(Field: value,
//	     Field: value
//	     )
//
// with continuation lines aligned one column past the opening parenthesis.
type printer struct {
	sb     strings.Builder
	indent string
	n      int
}

func newPrinter(kind string) *printer {
	p := &printer{indent: strings.Repeat(" ", len(kind)+1)}
	p.sb.WriteString(kind)
	p.sb.WriteByte('(')
	return p
}

func (p *printer) next() {
	if p.n > 0 {
		p.sb.WriteString(",\n")
		p.sb.WriteString(p.indent)
	}
	p.n++
}

func (p *printer) field(name string, v any) {
	p.next()
	p.sb.WriteString(name)
	p.sb.WriteString(": ")
	fmt.Fprint(&p.sb, v)
}

// group writes name: {a,\n b} with members aligned under the first one.
func (p *printer) group(name string, members ...string) {
	p.enclosed(name, "{", "}", members)
}

// list writes name: [a,\n b], or name: [] when empty.
func (p *printer) list(name string, items ...string) {
	p.enclosed(name, "[", "]", items)
}

func (p *printer) enclosed(name, left, right string, items []string) {
	p.next()
	p.sb.WriteString(name)
	p.sb.WriteString(": ")
	p.sb.WriteString(left)
	pad := p.indent + strings.Repeat(" ", len(name)+2+len(left))
	for i, it := range items {
		if i > 0 {
			p.sb.WriteString(",\n")
			p.sb.WriteString(pad)
		}
		// nested multi-line values keep their own alignment
		p.sb.WriteString(strings.ReplaceAll(it, "\n", "\n"+pad))
	}
	p.sb.WriteString(right)
}

func (p *printer) close() string {
	p.sb.WriteString("\n")
	p.sb.WriteString(p.indent)
	p.sb.WriteByte(')')
	return p.sb.String()
}

func withUnit(v uint64, unit string) string {
	return strconv.FormatUint(v, 10) + " " + unit
}

// expiration renders an ExpirationPeriod; zero means the entry never expires.
func expiration(ms uint64) string {
	if ms == 0 {
		return "infinite"
	}
	return withUnit(ms, "milliseconds")
}

func inOut(in, out uint64) string {
	return "{in: " + strconv.FormatUint(in, 10) + ", out: " + strconv.FormatUint(out, 10) + "}"
}

// Format returns the diagnostic text of r, or "<nil>" for a nil record.
func Format(r fmt.Stringer) string {
	if r == nil {
		return "<nil>"
	}
	if v := reflect.ValueOf(r); v.Kind() == reflect.Pointer && v.IsNil() {
		return "<nil>"
	}
	return r.String()
}

func (fs *FaceStatus) String() string {
	p := newPrinter("Face")
	p.field("FaceId", fs.FaceID())
	p.field("RemoteUri", fs.RemoteURI())
	p.field("LocalUri", fs.LocalURI())
	if fs.HasExpirationPeriod() {
		p.field("ExpirationPeriod", expiration(fs.ExpirationPeriod()))
	}
	p.field("FaceScope", fs.FaceScope())
	p.field("FacePersistency", fs.FacePersistency())
	p.field("LinkType", fs.LinkType())
	if fs.HasBaseCongestionMarkingInterval() {
		p.field("BaseCongestionMarkingInterval", withUnit(fs.BaseCongestionMarkingInterval(), "nanoseconds"))
	}
	if fs.HasDefaultCongestionThreshold() {
		p.field("DefaultCongestionThreshold", withUnit(fs.DefaultCongestionThreshold(), "bytes"))
	}
	if fs.HasMtu() {
		p.field("Mtu", withUnit(fs.Mtu(), "bytes"))
	}
	p.field("Flags", fs.Flags())
	p.group("Counters",
		"Interests: "+inOut(fs.NInInterests(), fs.NOutInterests()),
		"Data: "+inOut(fs.NInData(), fs.NOutData()),
		"Nacks: "+inOut(fs.NInNacks(), fs.NOutNacks()),
		"bytes: "+inOut(fs.NInBytes(), fs.NOutBytes()),
	)
	return p.close()
}
