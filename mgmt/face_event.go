package mgmt

import (
	"io"

	"github.com/oy3o/tlv"
)

var (
	feKind            = mandatory("FaceEventKind", TtFaceEventKind)
	feFaceID          = mandatory("FaceId", TtFaceID)
	feURI             = mandatory("Uri", TtURI)
	feLocalURI        = mandatory("LocalUri", TtLocalURI)
	feFaceScope       = mandatory("FaceScope", TtFaceScope)
	feFacePersistency = mandatory("FacePersistency", TtFacePersistency)
	feLinkType        = mandatory("LinkType", TtLinkType)
	feFlags           = mandatory("Flags", TtFlags)

	faceEventSchema = tlv.NewSchema("FaceEventNotification", TtFaceEventNotification,
		feKind, feFaceID, feURI, feLocalURI,
		feFaceScope, feFacePersistency, feLinkType,
		feFlags,
	)
)

// FaceEventNotification is published on the faces/events stream whenever a
// face is created, destroyed, or changes state.
type FaceEventNotification struct {
	kind            tlv.Optional[FaceEventKind]
	faceID          tlv.Optional[uint64]
	remoteURI       tlv.Optional[string]
	localURI        tlv.Optional[string]
	faceScope       tlv.Optional[FaceScope]
	facePersistency tlv.Optional[FacePersistency]
	linkType        tlv.Optional[LinkType]
	flags           tlv.Optional[FaceFlags]
}

var _ Record = (*FaceEventNotification)(nil)

func NewFaceEventNotification() *FaceEventNotification { return &FaceEventNotification{} }

func (n *FaceEventNotification) Kind() FaceEventKind { return n.kind.GetOr(0) }

func (n *FaceEventNotification) SetKind(k FaceEventKind) *FaceEventNotification {
	n.kind.Set(k)
	return n
}

func (n *FaceEventNotification) FaceID() uint64 { return n.faceID.GetOr(0) }

func (n *FaceEventNotification) SetFaceID(id uint64) *FaceEventNotification {
	n.faceID.Set(id)
	return n
}

func (n *FaceEventNotification) RemoteURI() string { return n.remoteURI.GetOr("") }

func (n *FaceEventNotification) SetRemoteURI(uri string) *FaceEventNotification {
	n.remoteURI.Set(uri)
	return n
}

func (n *FaceEventNotification) LocalURI() string { return n.localURI.GetOr("") }

func (n *FaceEventNotification) SetLocalURI(uri string) *FaceEventNotification {
	n.localURI.Set(uri)
	return n
}

func (n *FaceEventNotification) FaceScope() FaceScope { return n.faceScope.GetOr(FaceScopeNonLocal) }

func (n *FaceEventNotification) SetFaceScope(s FaceScope) *FaceEventNotification {
	n.faceScope.Set(s)
	return n
}

func (n *FaceEventNotification) FacePersistency() FacePersistency {
	return n.facePersistency.GetOr(FacePersistencyPersistent)
}

func (n *FaceEventNotification) SetFacePersistency(p FacePersistency) *FaceEventNotification {
	n.facePersistency.Set(p)
	return n
}

func (n *FaceEventNotification) LinkType() LinkType { return n.linkType.GetOr(LinkTypePointToPoint) }

func (n *FaceEventNotification) SetLinkType(l LinkType) *FaceEventNotification {
	n.linkType.Set(l)
	return n
}

func (n *FaceEventNotification) Flags() FaceFlags { return n.flags.GetOr(0) }

func (n *FaceEventNotification) SetFlags(f FaceFlags) *FaceEventNotification {
	n.flags.Set(f)
	return n
}

func (n *FaceEventNotification) EncodeTLV(w *tlv.Writer) {
	faceEventSchema.Encode(w, func(w *tlv.Writer) {
		tlv.WriteNatField(w, feKind, n.kind)
		tlv.WriteNatField(w, feFaceID, n.faceID)
		tlv.WriteStringField(w, feURI, n.remoteURI)
		tlv.WriteStringField(w, feLocalURI, n.localURI)
		tlv.WriteNatField(w, feFaceScope, n.faceScope)
		tlv.WriteNatField(w, feFacePersistency, n.facePersistency)
		tlv.WriteNatField(w, feLinkType, n.linkType)
		tlv.WriteNatField(w, feFlags, n.flags)
	})
}

func (n *FaceEventNotification) DecodeTLV(wire []byte) (int, error) {
	var tmp FaceEventNotification
	size, err := faceEventSchema.Decode(wire, tmp.decodeField)
	if err != nil {
		return 0, err
	}
	*n = tmp
	return size, nil
}

func (n *FaceEventNotification) decodeField(f *tlv.Field, value []byte) error {
	switch f {
	case feKind:
		return decodeEnum(&n.kind, value, ParseFaceEventKind)
	case feFaceID:
		return decodeNat(&n.faceID, value)
	case feURI:
		return decodeString(&n.remoteURI, value)
	case feLocalURI:
		return decodeString(&n.localURI, value)
	case feFaceScope:
		return decodeEnum(&n.faceScope, value, ParseFaceScope)
	case feFacePersistency:
		return decodeEnum(&n.facePersistency, value, ParseFacePersistency)
	case feLinkType:
		return decodeEnum(&n.linkType, value, ParseLinkType)
	case feFlags:
		return decodeNat(&n.flags, value)
	}
	return unexpectedField(f)
}

func (n *FaceEventNotification) String() string {
	p := newPrinter("FaceEvent")
	p.field("Kind", n.Kind())
	p.field("FaceId", n.FaceID())
	p.field("RemoteUri", n.RemoteURI())
	p.field("LocalUri", n.LocalURI())
	p.field("FaceScope", n.FaceScope())
	p.field("FacePersistency", n.FacePersistency())
	p.field("LinkType", n.LinkType())
	p.field("Flags", n.Flags())
	return p.close()
}

func (n *FaceEventNotification) Size() int { return tlv.SizeGeneric(n) }

func (n *FaceEventNotification) MarshalBinary() ([]byte, error) {
	return tlv.MarshalBinaryGeneric(n)
}

func (n *FaceEventNotification) MarshalTo(buf []byte) (int, error) {
	return tlv.MarshalToGeneric(n, buf)
}

func (n *FaceEventNotification) WriteTo(w io.Writer) (int64, error) {
	return tlv.WriteToGeneric(n, w)
}

func (n *FaceEventNotification) UnmarshalBinary(data []byte) error {
	return tlv.UnmarshalBinaryGeneric(n, data)
}

func (n *FaceEventNotification) ReadFrom(r io.Reader) (int64, error) {
	return tlv.ReadFromGeneric(n, r)
}
