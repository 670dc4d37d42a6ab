package mgmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oy3o/tlv"
)

// FaceScope tells whether a face is local to the forwarder host.
type FaceScope uint64

const (
	FaceScopeNonLocal FaceScope = 0
	FaceScopeLocal    FaceScope = 1
)

// ParseFaceScope converts a wire code, rejecting unknown codes.
func ParseFaceScope(v uint64) (FaceScope, error) {
	switch s := FaceScope(v); s {
	case FaceScopeNonLocal, FaceScopeLocal:
		return s, nil
	}
	return 0, fmt.Errorf("%w: FaceScope %d", tlv.ErrEnumValue, v)
}

func (s FaceScope) String() string {
	switch s {
	case FaceScopeNonLocal:
		return "non-local"
	case FaceScopeLocal:
		return "local"
	default:
		return "unknown(" + strconv.FormatUint(uint64(s), 10) + ")"
	}
}

// FacePersistency controls when a face is closed.
type FacePersistency uint64

const (
	// FacePersistencyPersistent faces survive errors until explicitly destroyed.
	FacePersistencyPersistent FacePersistency = 0
	// FacePersistencyOnDemand faces are closed after an idle timeout or an error.
	FacePersistencyOnDemand FacePersistency = 1
	// FacePersistencyPermanent faces are kept open and reconnect after errors.
	FacePersistencyPermanent FacePersistency = 2
)

// ParseFacePersistency converts a wire code, rejecting unknown codes.
func ParseFacePersistency(v uint64) (FacePersistency, error) {
	switch p := FacePersistency(v); p {
	case FacePersistencyPersistent, FacePersistencyOnDemand, FacePersistencyPermanent:
		return p, nil
	}
	return 0, fmt.Errorf("%w: FacePersistency %d", tlv.ErrEnumValue, v)
}

func (p FacePersistency) String() string {
	switch p {
	case FacePersistencyPersistent:
		return "persistent"
	case FacePersistencyOnDemand:
		return "on-demand"
	case FacePersistencyPermanent:
		return "permanent"
	default:
		return "unknown(" + strconv.FormatUint(uint64(p), 10) + ")"
	}
}

// LinkType is the link layer model of a face.
type LinkType uint64

const (
	LinkTypePointToPoint LinkType = 0
	LinkTypeMultiAccess  LinkType = 1
	LinkTypeAdHoc        LinkType = 2
)

// ParseLinkType converts a wire code, rejecting unknown codes.
func ParseLinkType(v uint64) (LinkType, error) {
	switch l := LinkType(v); l {
	case LinkTypePointToPoint, LinkTypeMultiAccess, LinkTypeAdHoc:
		return l, nil
	}
	return 0, fmt.Errorf("%w: LinkType %d", tlv.ErrEnumValue, v)
}

func (l LinkType) String() string {
	switch l {
	case LinkTypePointToPoint:
		return "point-to-point"
	case LinkTypeMultiAccess:
		return "multi-access"
	case LinkTypeAdHoc:
		return "adhoc"
	default:
		return "unknown(" + strconv.FormatUint(uint64(l), 10) + ")"
	}
}

// FaceEventKind is the kind of a face event notification.
type FaceEventKind uint64

const (
	FaceEventCreated   FaceEventKind = 1
	FaceEventDestroyed FaceEventKind = 2
	FaceEventUp        FaceEventKind = 3
	FaceEventDown      FaceEventKind = 4
)

// ParseFaceEventKind converts a wire code, rejecting unknown codes.
func ParseFaceEventKind(v uint64) (FaceEventKind, error) {
	switch k := FaceEventKind(v); k {
	case FaceEventCreated, FaceEventDestroyed, FaceEventUp, FaceEventDown:
		return k, nil
	}
	return 0, fmt.Errorf("%w: FaceEventKind %d", tlv.ErrEnumValue, v)
}

func (k FaceEventKind) String() string {
	switch k {
	case FaceEventCreated:
		return "created"
	case FaceEventDestroyed:
		return "destroyed"
	case FaceEventUp:
		return "up"
	case FaceEventDown:
		return "down"
	default:
		return "unknown(" + strconv.FormatUint(uint64(k), 10) + ")"
	}
}

// FaceFlags is the Flags bitmask of a face. Each bit is an independent capability.
type FaceFlags uint64

const (
	FaceFlagLocalFieldsEnabled       FaceFlags = 1 << 0
	FaceFlagLpReliabilityEnabled     FaceFlags = 1 << 1
	FaceFlagCongestionMarkingEnabled FaceFlags = 1 << 2
)

func (f FaceFlags) Has(bit FaceFlags) bool { return f&bit == bit }

func (f FaceFlags) LocalFieldsEnabled() bool       { return f.Has(FaceFlagLocalFieldsEnabled) }
func (f FaceFlags) LpReliabilityEnabled() bool     { return f.Has(FaceFlagLpReliabilityEnabled) }
func (f FaceFlags) CongestionMarkingEnabled() bool { return f.Has(FaceFlagCongestionMarkingEnabled) }

// With returns f with bit set or cleared.
func (f FaceFlags) With(bit FaceFlags, on bool) FaceFlags {
	if on {
		return f | bit
	}
	return f &^ bit
}

func (f FaceFlags) String() string { return "0x" + strconv.FormatUint(uint64(f), 16) }

// RouteFlags is the Flags bitmask of a RIB route.
type RouteFlags uint64

const (
	RouteFlagChildInherit RouteFlags = 1 << 0
	RouteFlagCapture      RouteFlags = 1 << 1
)

func (f RouteFlags) ChildInherit() bool { return f&RouteFlagChildInherit != 0 }
func (f RouteFlags) Capture() bool      { return f&RouteFlagCapture != 0 }

// String names the known bits and prints any others in hex, e.g.
// "child-inherit|0x4".
func (f RouteFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	if f.ChildInherit() {
		parts = append(parts, "child-inherit")
	}
	if f.Capture() {
		parts = append(parts, "capture")
	}
	if rest := f &^ (RouteFlagChildInherit | RouteFlagCapture); rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}

// RouteOrigin identifies who registered a route. Unlike the enumerations
// above the set of origins is open, so unknown values are kept as numbers.
type RouteOrigin uint64

const (
	RouteOriginApp       RouteOrigin = 0
	RouteOriginAutoreg   RouteOrigin = 64
	RouteOriginClient    RouteOrigin = 65
	RouteOriginAutoconf  RouteOrigin = 66
	RouteOriginNLSR      RouteOrigin = 128
	RouteOriginPrefixAnn RouteOrigin = 129
	RouteOriginStatic    RouteOrigin = 255
)

func (o RouteOrigin) String() string {
	switch o {
	case RouteOriginApp:
		return "app"
	case RouteOriginAutoreg:
		return "autoreg"
	case RouteOriginClient:
		return "client"
	case RouteOriginAutoconf:
		return "autoconf"
	case RouteOriginNLSR:
		return "nlsr"
	case RouteOriginPrefixAnn:
		return "prefixann"
	case RouteOriginStatic:
		return "static"
	default:
		return strconv.FormatUint(uint64(o), 10)
	}
}
