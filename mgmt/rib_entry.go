package mgmt

import (
	"io"
	"strconv"
	"strings"

	"github.com/oy3o/tlv"
)

var (
	rtFaceID           = mandatory("FaceId", TtFaceID)
	rtOrigin           = mandatory("Origin", TtOrigin)
	rtCost             = mandatory("Cost", TtCost)
	rtFlags            = mandatory("Flags", TtFlags)
	rtExpirationPeriod = optional("ExpirationPeriod", TtExpirationPeriod)

	routeSchema = tlv.NewSchema("Route", TtRoute,
		rtFaceID, rtOrigin, rtCost, rtFlags, rtExpirationPeriod)

	ribName   = mandatory("Name", tlv.TtName)
	ribRoutes = repeated("Route", TtRoute)

	ribEntrySchema = tlv.NewSchema("RibEntry", TtRibEntry, ribName, ribRoutes)
)

// Route is one registration of a RIB entry.
type Route struct {
	faceID           tlv.Optional[uint64]
	origin           tlv.Optional[RouteOrigin]
	cost             tlv.Optional[uint64]
	flags            tlv.Optional[RouteFlags]
	expirationPeriod tlv.Optional[uint64]
}

func NewRoute() *Route { return &Route{} }

func (rt *Route) FaceID() uint64            { return rt.faceID.GetOr(0) }
func (rt *Route) Origin() RouteOrigin       { return rt.origin.GetOr(RouteOriginApp) }
func (rt *Route) Cost() uint64              { return rt.cost.GetOr(0) }
func (rt *Route) Flags() RouteFlags         { return rt.flags.GetOr(0) }
func (rt *Route) ExpirationPeriod() uint64  { return rt.expirationPeriod.GetOr(0) }
func (rt *Route) HasExpirationPeriod() bool { return rt.expirationPeriod.IsSet() }

func (rt *Route) SetFaceID(id uint64) *Route {
	rt.faceID.Set(id)
	return rt
}

func (rt *Route) SetOrigin(o RouteOrigin) *Route {
	rt.origin.Set(o)
	return rt
}

func (rt *Route) SetCost(c uint64) *Route {
	rt.cost.Set(c)
	return rt
}

func (rt *Route) SetFlags(f RouteFlags) *Route {
	rt.flags.Set(f)
	return rt
}

func (rt *Route) SetExpirationPeriod(ms uint64) *Route {
	rt.expirationPeriod.Set(ms)
	return rt
}

func (rt *Route) EncodeTLV(w *tlv.Writer) {
	routeSchema.Encode(w, func(w *tlv.Writer) {
		tlv.WriteNatField(w, rtFaceID, rt.faceID)
		tlv.WriteNatField(w, rtOrigin, rt.origin)
		tlv.WriteNatField(w, rtCost, rt.cost)
		tlv.WriteNatField(w, rtFlags, rt.flags)
		tlv.WriteNatField(w, rtExpirationPeriod, rt.expirationPeriod)
	})
}

func (rt *Route) decodeValue(value []byte) error {
	return routeSchema.DecodeValue(value, func(f *tlv.Field, value []byte) error {
		switch f {
		case rtFaceID:
			return decodeNat(&rt.faceID, value)
		case rtOrigin:
			return decodeNat(&rt.origin, value)
		case rtCost:
			return decodeNat(&rt.cost, value)
		case rtFlags:
			return decodeNat(&rt.flags, value)
		case rtExpirationPeriod:
			return decodeNat(&rt.expirationPeriod, value)
		}
		return unexpectedField(f)
	})
}

func (rt *Route) String() string {
	var sb strings.Builder
	sb.WriteString("Route(FaceId: ")
	sb.WriteString(strconv.FormatUint(rt.FaceID(), 10))
	sb.WriteString(", Origin: ")
	sb.WriteString(rt.Origin().String())
	sb.WriteString(", Cost: ")
	sb.WriteString(strconv.FormatUint(rt.Cost(), 10))
	sb.WriteString(", Flags: ")
	sb.WriteString(rt.Flags().String())
	if rt.HasExpirationPeriod() {
		sb.WriteString(", ExpirationPeriod: ")
		sb.WriteString(expiration(rt.ExpirationPeriod()))
	}
	sb.WriteByte(')')
	return sb.String()
}

// RibEntry is one entry of the rib/list dataset: a name prefix and the
// routes registered on it.
type RibEntry struct {
	name   tlv.Optional[tlv.Name]
	routes []*Route
}

var _ Record = (*RibEntry)(nil)

func NewRibEntry() *RibEntry { return &RibEntry{} }

func (e *RibEntry) Prefix() tlv.Name { return e.name.GetOr(nil) }

func (e *RibEntry) SetPrefix(n tlv.Name) *RibEntry {
	e.name.Set(n)
	return e
}

func (e *RibEntry) Routes() []*Route { return e.routes }

func (e *RibEntry) AddRoute(rt *Route) *RibEntry {
	e.routes = append(e.routes, rt)
	return e
}

func (e *RibEntry) EncodeTLV(w *tlv.Writer) {
	ribEntrySchema.Encode(w, func(w *tlv.Writer) {
		tlv.WriteNameField(w, ribName, e.name)
		for _, rt := range e.routes {
			rt.EncodeTLV(w)
		}
	})
}

func (e *RibEntry) DecodeTLV(wire []byte) (int, error) {
	var tmp RibEntry
	n, err := ribEntrySchema.Decode(wire, func(f *tlv.Field, value []byte) error {
		switch f {
		case ribName:
			return decodeName(&tmp.name, value)
		case ribRoutes:
			rt := &Route{}
			if err := rt.decodeValue(value); err != nil {
				return err
			}
			tmp.routes = append(tmp.routes, rt)
			return nil
		}
		return unexpectedField(f)
	})
	if err != nil {
		return 0, err
	}
	*e = tmp
	return n, nil
}

func (e *RibEntry) String() string {
	p := newPrinter("RibEntry")
	p.field("Prefix", e.Prefix())
	routes := make([]string, len(e.routes))
	for i, rt := range e.routes {
		routes[i] = rt.String()
	}
	p.list("Routes", routes...)
	return p.close()
}

func (e *RibEntry) Size() int                           { return tlv.SizeGeneric(e) }
func (e *RibEntry) MarshalBinary() ([]byte, error)      { return tlv.MarshalBinaryGeneric(e) }
func (e *RibEntry) MarshalTo(buf []byte) (int, error)   { return tlv.MarshalToGeneric(e, buf) }
func (e *RibEntry) WriteTo(w io.Writer) (int64, error)  { return tlv.WriteToGeneric(e, w) }
func (e *RibEntry) UnmarshalBinary(data []byte) error   { return tlv.UnmarshalBinaryGeneric(e, data) }
func (e *RibEntry) ReadFrom(r io.Reader) (int64, error) { return tlv.ReadFromGeneric(e, r) }
