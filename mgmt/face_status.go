package mgmt

import (
	"io"

	"github.com/oy3o/tlv"
)

var (
	fsFaceID                        = mandatory("FaceId", TtFaceID)
	fsURI                           = mandatory("Uri", TtURI)
	fsLocalURI                      = mandatory("LocalUri", TtLocalURI)
	fsExpirationPeriod              = optional("ExpirationPeriod", TtExpirationPeriod)
	fsFaceScope                     = mandatory("FaceScope", TtFaceScope)
	fsFacePersistency               = mandatory("FacePersistency", TtFacePersistency)
	fsLinkType                      = mandatory("LinkType", TtLinkType)
	fsBaseCongestionMarkingInterval = optional("BaseCongestionMarkingInterval", TtBaseCongestionMarkingInterval)
	fsDefaultCongestionThreshold    = optional("DefaultCongestionThreshold", TtDefaultCongestionThreshold)
	fsMtu                           = optional("Mtu", TtMtu)
	fsNInInterests                  = mandatory("NInInterests", TtNInInterests)
	fsNInData                       = mandatory("NInData", TtNInData)
	fsNInNacks                      = mandatory("NInNacks", TtNInNacks)
	fsNOutInterests                 = mandatory("NOutInterests", TtNOutInterests)
	fsNOutData                      = mandatory("NOutData", TtNOutData)
	fsNOutNacks                     = mandatory("NOutNacks", TtNOutNacks)
	fsNInBytes                      = mandatory("NInBytes", TtNInBytes)
	fsNOutBytes                     = mandatory("NOutBytes", TtNOutBytes)
	fsFlags                         = mandatory("Flags", TtFlags)

	faceStatusSchema = tlv.NewSchema("FaceStatus", TtFaceStatus,
		fsFaceID, fsURI, fsLocalURI, fsExpirationPeriod,
		fsFaceScope, fsFacePersistency, fsLinkType,
		fsBaseCongestionMarkingInterval, fsDefaultCongestionThreshold, fsMtu,
		fsNInInterests, fsNInData, fsNInNacks,
		fsNOutInterests, fsNOutData, fsNOutNacks,
		fsNInBytes, fsNOutBytes,
		fsFlags,
	)
)

// FaceStatus is one entry of the faces/list and faces/query datasets.
//
// Setters return the receiver so a record can be built in one chain.
// Getters of a field that was never set return the zero value; use the
// Has methods to tell an absent optional field from a zero one.
//
// A FaceStatus must not be mutated concurrently. Once built it may be
// shared read-only.
type FaceStatus struct {
	faceID           tlv.Optional[uint64]
	remoteURI        tlv.Optional[string]
	localURI         tlv.Optional[string]
	expirationPeriod tlv.Optional[uint64]
	faceScope        tlv.Optional[FaceScope]
	facePersistency  tlv.Optional[FacePersistency]
	linkType         tlv.Optional[LinkType]

	baseCongestionMarkingInterval tlv.Optional[uint64]
	defaultCongestionThreshold    tlv.Optional[uint64]
	mtu                           tlv.Optional[uint64]

	nInInterests  tlv.Optional[uint64]
	nInData       tlv.Optional[uint64]
	nInNacks      tlv.Optional[uint64]
	nOutInterests tlv.Optional[uint64]
	nOutData      tlv.Optional[uint64]
	nOutNacks     tlv.Optional[uint64]
	nInBytes      tlv.Optional[uint64]
	nOutBytes     tlv.Optional[uint64]

	flags tlv.Optional[FaceFlags]
}

var _ Record = (*FaceStatus)(nil)

// NewFaceStatus returns an empty FaceStatus.
func NewFaceStatus() *FaceStatus { return &FaceStatus{} }

// DecodeFaceStatus decodes exactly one FaceStatus element.
func DecodeFaceStatus(wire []byte) (*FaceStatus, error) {
	fs := &FaceStatus{}
	if err := fs.UnmarshalBinary(wire); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FaceStatus) FaceID() uint64 { return fs.faceID.GetOr(0) }

func (fs *FaceStatus) SetFaceID(id uint64) *FaceStatus {
	fs.faceID.Set(id)
	return fs
}

// RemoteURI is the Uri field: the remote endpoint of the face.
func (fs *FaceStatus) RemoteURI() string { return fs.remoteURI.GetOr("") }

func (fs *FaceStatus) SetRemoteURI(uri string) *FaceStatus {
	fs.remoteURI.Set(uri)
	return fs
}

func (fs *FaceStatus) LocalURI() string { return fs.localURI.GetOr("") }

func (fs *FaceStatus) SetLocalURI(uri string) *FaceStatus {
	fs.localURI.Set(uri)
	return fs
}

// ExpirationPeriod is the remaining lifetime in milliseconds. Zero means the
// face does not expire.
func (fs *FaceStatus) ExpirationPeriod() uint64  { return fs.expirationPeriod.GetOr(0) }
func (fs *FaceStatus) HasExpirationPeriod() bool { return fs.expirationPeriod.IsSet() }

func (fs *FaceStatus) SetExpirationPeriod(ms uint64) *FaceStatus {
	fs.expirationPeriod.Set(ms)
	return fs
}

func (fs *FaceStatus) FaceScope() FaceScope { return fs.faceScope.GetOr(FaceScopeNonLocal) }

func (fs *FaceStatus) SetFaceScope(s FaceScope) *FaceStatus {
	fs.faceScope.Set(s)
	return fs
}

func (fs *FaceStatus) FacePersistency() FacePersistency {
	return fs.facePersistency.GetOr(FacePersistencyPersistent)
}

func (fs *FaceStatus) SetFacePersistency(p FacePersistency) *FaceStatus {
	fs.facePersistency.Set(p)
	return fs
}

func (fs *FaceStatus) LinkType() LinkType { return fs.linkType.GetOr(LinkTypePointToPoint) }

func (fs *FaceStatus) SetLinkType(l LinkType) *FaceStatus {
	fs.linkType.Set(l)
	return fs
}

// BaseCongestionMarkingInterval is in nanoseconds.
func (fs *FaceStatus) BaseCongestionMarkingInterval() uint64 {
	return fs.baseCongestionMarkingInterval.GetOr(0)
}

func (fs *FaceStatus) HasBaseCongestionMarkingInterval() bool {
	return fs.baseCongestionMarkingInterval.IsSet()
}

func (fs *FaceStatus) SetBaseCongestionMarkingInterval(ns uint64) *FaceStatus {
	fs.baseCongestionMarkingInterval.Set(ns)
	return fs
}

// DefaultCongestionThreshold is in bytes.
func (fs *FaceStatus) DefaultCongestionThreshold() uint64 {
	return fs.defaultCongestionThreshold.GetOr(0)
}

func (fs *FaceStatus) HasDefaultCongestionThreshold() bool {
	return fs.defaultCongestionThreshold.IsSet()
}

func (fs *FaceStatus) SetDefaultCongestionThreshold(n uint64) *FaceStatus {
	fs.defaultCongestionThreshold.Set(n)
	return fs
}

func (fs *FaceStatus) Mtu() uint64  { return fs.mtu.GetOr(0) }
func (fs *FaceStatus) HasMtu() bool { return fs.mtu.IsSet() }

func (fs *FaceStatus) SetMtu(n uint64) *FaceStatus {
	fs.mtu.Set(n)
	return fs
}

// --- Counters ---

func (fs *FaceStatus) NInInterests() uint64  { return fs.nInInterests.GetOr(0) }
func (fs *FaceStatus) NInData() uint64       { return fs.nInData.GetOr(0) }
func (fs *FaceStatus) NInNacks() uint64      { return fs.nInNacks.GetOr(0) }
func (fs *FaceStatus) NOutInterests() uint64 { return fs.nOutInterests.GetOr(0) }
func (fs *FaceStatus) NOutData() uint64      { return fs.nOutData.GetOr(0) }
func (fs *FaceStatus) NOutNacks() uint64     { return fs.nOutNacks.GetOr(0) }
func (fs *FaceStatus) NInBytes() uint64      { return fs.nInBytes.GetOr(0) }
func (fs *FaceStatus) NOutBytes() uint64     { return fs.nOutBytes.GetOr(0) }

func (fs *FaceStatus) SetNInInterests(n uint64) *FaceStatus {
	fs.nInInterests.Set(n)
	return fs
}

func (fs *FaceStatus) SetNInData(n uint64) *FaceStatus {
	fs.nInData.Set(n)
	return fs
}

func (fs *FaceStatus) SetNInNacks(n uint64) *FaceStatus {
	fs.nInNacks.Set(n)
	return fs
}

func (fs *FaceStatus) SetNOutInterests(n uint64) *FaceStatus {
	fs.nOutInterests.Set(n)
	return fs
}

func (fs *FaceStatus) SetNOutData(n uint64) *FaceStatus {
	fs.nOutData.Set(n)
	return fs
}

func (fs *FaceStatus) SetNOutNacks(n uint64) *FaceStatus {
	fs.nOutNacks.Set(n)
	return fs
}

func (fs *FaceStatus) SetNInBytes(n uint64) *FaceStatus {
	fs.nInBytes.Set(n)
	return fs
}

func (fs *FaceStatus) SetNOutBytes(n uint64) *FaceStatus {
	fs.nOutBytes.Set(n)
	return fs
}

func (fs *FaceStatus) Flags() FaceFlags { return fs.flags.GetOr(0) }

func (fs *FaceStatus) SetFlags(f FaceFlags) *FaceStatus {
	fs.flags.Set(f)
	return fs
}

// --- Wire encoding ---

// EncodeTLV writes the FaceStatus element. A mandatory field that was never
// set is recorded on w as a *tlv.FieldError wrapping tlv.ErrFieldNotSet.
func (fs *FaceStatus) EncodeTLV(w *tlv.Writer) {
	faceStatusSchema.Encode(w, func(w *tlv.Writer) {
		tlv.WriteNatField(w, fsFaceID, fs.faceID)
		tlv.WriteStringField(w, fsURI, fs.remoteURI)
		tlv.WriteStringField(w, fsLocalURI, fs.localURI)
		tlv.WriteNatField(w, fsExpirationPeriod, fs.expirationPeriod)
		tlv.WriteNatField(w, fsFaceScope, fs.faceScope)
		tlv.WriteNatField(w, fsFacePersistency, fs.facePersistency)
		tlv.WriteNatField(w, fsLinkType, fs.linkType)
		tlv.WriteNatField(w, fsBaseCongestionMarkingInterval, fs.baseCongestionMarkingInterval)
		tlv.WriteNatField(w, fsDefaultCongestionThreshold, fs.defaultCongestionThreshold)
		tlv.WriteNatField(w, fsMtu, fs.mtu)
		tlv.WriteNatField(w, fsNInInterests, fs.nInInterests)
		tlv.WriteNatField(w, fsNInData, fs.nInData)
		tlv.WriteNatField(w, fsNInNacks, fs.nInNacks)
		tlv.WriteNatField(w, fsNOutInterests, fs.nOutInterests)
		tlv.WriteNatField(w, fsNOutData, fs.nOutData)
		tlv.WriteNatField(w, fsNOutNacks, fs.nOutNacks)
		tlv.WriteNatField(w, fsNInBytes, fs.nInBytes)
		tlv.WriteNatField(w, fsNOutBytes, fs.nOutBytes)
		tlv.WriteNatField(w, fsFlags, fs.flags)
	})
}

// DecodeTLV decodes the FaceStatus element at the start of wire. On error
// fs is left unchanged.
func (fs *FaceStatus) DecodeTLV(wire []byte) (int, error) {
	var tmp FaceStatus
	n, err := faceStatusSchema.Decode(wire, tmp.decodeField)
	if err != nil {
		return 0, err
	}
	*fs = tmp
	return n, nil
}

func (fs *FaceStatus) decodeField(f *tlv.Field, value []byte) error {
	switch f {
	case fsFaceID:
		return decodeNat(&fs.faceID, value)
	case fsURI:
		return decodeString(&fs.remoteURI, value)
	case fsLocalURI:
		return decodeString(&fs.localURI, value)
	case fsExpirationPeriod:
		return decodeNat(&fs.expirationPeriod, value)
	case fsFaceScope:
		return decodeEnum(&fs.faceScope, value, ParseFaceScope)
	case fsFacePersistency:
		return decodeEnum(&fs.facePersistency, value, ParseFacePersistency)
	case fsLinkType:
		return decodeEnum(&fs.linkType, value, ParseLinkType)
	case fsBaseCongestionMarkingInterval:
		return decodeNat(&fs.baseCongestionMarkingInterval, value)
	case fsDefaultCongestionThreshold:
		return decodeNat(&fs.defaultCongestionThreshold, value)
	case fsMtu:
		return decodeNat(&fs.mtu, value)
	case fsNInInterests:
		return decodeNat(&fs.nInInterests, value)
	case fsNInData:
		return decodeNat(&fs.nInData, value)
	case fsNInNacks:
		return decodeNat(&fs.nInNacks, value)
	case fsNOutInterests:
		return decodeNat(&fs.nOutInterests, value)
	case fsNOutData:
		return decodeNat(&fs.nOutData, value)
	case fsNOutNacks:
		return decodeNat(&fs.nOutNacks, value)
	case fsNInBytes:
		return decodeNat(&fs.nInBytes, value)
	case fsNOutBytes:
		return decodeNat(&fs.nOutBytes, value)
	case fsFlags:
		return decodeNat(&fs.flags, value)
	}
	return unexpectedField(f)
}

func (fs *FaceStatus) Size() int                           { return tlv.SizeGeneric(fs) }
func (fs *FaceStatus) MarshalBinary() ([]byte, error)      { return tlv.MarshalBinaryGeneric(fs) }
func (fs *FaceStatus) MarshalTo(buf []byte) (int, error)   { return tlv.MarshalToGeneric(fs, buf) }
func (fs *FaceStatus) WriteTo(w io.Writer) (int64, error)  { return tlv.WriteToGeneric(fs, w) }
func (fs *FaceStatus) UnmarshalBinary(data []byte) error   { return tlv.UnmarshalBinaryGeneric(fs, data) }
func (fs *FaceStatus) ReadFrom(r io.Reader) (int64, error) { return tlv.ReadFromGeneric(fs, r) }
