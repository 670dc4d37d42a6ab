package mgmt

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/ugorji/go/codec"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// cborEncMode gives deterministic output so exports can be diffed.
var cborEncMode cbor.EncMode

func init() {
	var err error
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	cborEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create export CBOR encoder mode: %v", err))
	}
}

var msgpackHandle codec.MsgpackHandle

func marshalMsgpack(v any) ([]byte, error) {
	var out []byte
	if err := codec.NewEncoderBytes(&out, &msgpackHandle).Encode(v); err != nil {
		return nil, err
	}
	return out, nil
}

// Export encodings.
const (
	EncodingJSON    = "json"
	EncodingYAML    = "yaml"
	EncodingCBOR    = "cbor"
	EncodingMsgpack = "msgpack"
)

var exporters = map[string]func(v any) ([]byte, error){
	EncodingJSON:    func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") },
	EncodingYAML:    yaml.Marshal,
	EncodingCBOR:    func(v any) ([]byte, error) { return cborEncMode.Marshal(v) },
	EncodingMsgpack: marshalMsgpack,
}

// IsBinaryEncoding reports whether an export encoding produces binary output.
func IsBinaryEncoding(encoding string) bool {
	return encoding == EncodingCBOR || encoding == EncodingMsgpack
}

// Export renders records as an array of plain views in the given encoding.
func Export(encoding string, records ...Record) ([]byte, error) {
	marshal, ok := exporters[encoding]
	if !ok {
		return nil, fmt.Errorf("mgmt: unknown export encoding %q", encoding)
	}
	views := make([]any, len(records))
	for i, r := range records {
		views[i] = View(r)
	}
	return marshal(views)
}

type viewer interface {
	view() any
}

type textView struct {
	Text string `json:"text" yaml:"text"`
}

// View returns a struct of exported fields mirroring r, suitable for any
// reflection based encoder. Records without a dedicated view export their
// diagnostic text.
func View(r Record) any {
	if v, ok := r.(viewer); ok {
		return v.view()
	}
	return textView{Text: r.String()}
}

func optionalPtr(v uint64, ok bool) *uint64 {
	if !ok {
		return nil
	}
	return &v
}

type inOutView struct {
	In  uint64 `json:"in" yaml:"in"`
	Out uint64 `json:"out" yaml:"out"`
}

type faceCountersView struct {
	Interests inOutView `json:"interests" yaml:"interests"`
	Data      inOutView `json:"data" yaml:"data"`
	Nacks     inOutView `json:"nacks" yaml:"nacks"`
	Bytes     inOutView `json:"bytes" yaml:"bytes"`
}

type faceStatusView struct {
	FaceID                        uint64           `json:"faceId" yaml:"faceId"`
	RemoteURI                     string           `json:"remoteUri" yaml:"remoteUri"`
	LocalURI                      string           `json:"localUri" yaml:"localUri"`
	ExpirationPeriod              *uint64          `json:"expirationPeriod,omitempty" yaml:"expirationPeriod,omitempty"`
	FaceScope                     string           `json:"faceScope" yaml:"faceScope"`
	FacePersistency               string           `json:"facePersistency" yaml:"facePersistency"`
	LinkType                      string           `json:"linkType" yaml:"linkType"`
	BaseCongestionMarkingInterval *uint64          `json:"baseCongestionMarkingInterval,omitempty" yaml:"baseCongestionMarkingInterval,omitempty"`
	DefaultCongestionThreshold    *uint64          `json:"defaultCongestionThreshold,omitempty" yaml:"defaultCongestionThreshold,omitempty"`
	Mtu                           *uint64          `json:"mtu,omitempty" yaml:"mtu,omitempty"`
	Flags                         uint64           `json:"flags" yaml:"flags"`
	Counters                      faceCountersView `json:"counters" yaml:"counters"`
}

func (fs *FaceStatus) view() any {
	return faceStatusView{
		FaceID:                        fs.FaceID(),
		RemoteURI:                     fs.RemoteURI(),
		LocalURI:                      fs.LocalURI(),
		ExpirationPeriod:              optionalPtr(fs.ExpirationPeriod(), fs.HasExpirationPeriod()),
		FaceScope:                     fs.FaceScope().String(),
		FacePersistency:               fs.FacePersistency().String(),
		LinkType:                      fs.LinkType().String(),
		BaseCongestionMarkingInterval: optionalPtr(fs.BaseCongestionMarkingInterval(), fs.HasBaseCongestionMarkingInterval()),
		DefaultCongestionThreshold:    optionalPtr(fs.DefaultCongestionThreshold(), fs.HasDefaultCongestionThreshold()),
		Mtu:                           optionalPtr(fs.Mtu(), fs.HasMtu()),
		Flags:                         uint64(fs.Flags()),
		Counters: faceCountersView{
			Interests: inOutView{In: fs.NInInterests(), Out: fs.NOutInterests()},
			Data:      inOutView{In: fs.NInData(), Out: fs.NOutData()},
			Nacks:     inOutView{In: fs.NInNacks(), Out: fs.NOutNacks()},
			Bytes:     inOutView{In: fs.NInBytes(), Out: fs.NOutBytes()},
		},
	}
}

type channelStatusView struct {
	LocalURI string `json:"localUri" yaml:"localUri"`
}

func (cs *ChannelStatus) view() any {
	return channelStatusView{LocalURI: cs.LocalURI()}
}

type faceEventView struct {
	Kind            string `json:"kind" yaml:"kind"`
	FaceID          uint64 `json:"faceId" yaml:"faceId"`
	RemoteURI       string `json:"remoteUri" yaml:"remoteUri"`
	LocalURI        string `json:"localUri" yaml:"localUri"`
	FaceScope       string `json:"faceScope" yaml:"faceScope"`
	FacePersistency string `json:"facePersistency" yaml:"facePersistency"`
	LinkType        string `json:"linkType" yaml:"linkType"`
	Flags           uint64 `json:"flags" yaml:"flags"`
}

func (n *FaceEventNotification) view() any {
	return faceEventView{
		Kind:            n.Kind().String(),
		FaceID:          n.FaceID(),
		RemoteURI:       n.RemoteURI(),
		LocalURI:        n.LocalURI(),
		FaceScope:       n.FaceScope().String(),
		FacePersistency: n.FacePersistency().String(),
		LinkType:        n.LinkType().String(),
		Flags:           uint64(n.Flags()),
	}
}

type nextHopView struct {
	FaceID uint64 `json:"faceId" yaml:"faceId"`
	Cost   uint64 `json:"cost" yaml:"cost"`
}

type fibEntryView struct {
	Prefix   string        `json:"prefix" yaml:"prefix"`
	NextHops []nextHopView `json:"nextHops" yaml:"nextHops"`
}

func (e *FibEntry) view() any {
	v := fibEntryView{Prefix: e.Prefix().String(), NextHops: make([]nextHopView, len(e.nextHops))}
	for i, nh := range e.nextHops {
		v.NextHops[i] = nextHopView{FaceID: nh.FaceID(), Cost: nh.Cost()}
	}
	return v
}

type routeView struct {
	FaceID           uint64  `json:"faceId" yaml:"faceId"`
	Origin           uint64  `json:"origin" yaml:"origin"`
	Cost             uint64  `json:"cost" yaml:"cost"`
	Flags            uint64  `json:"flags" yaml:"flags"`
	ExpirationPeriod *uint64 `json:"expirationPeriod,omitempty" yaml:"expirationPeriod,omitempty"`
}

type ribEntryView struct {
	Prefix string      `json:"prefix" yaml:"prefix"`
	Routes []routeView `json:"routes" yaml:"routes"`
}

func (e *RibEntry) view() any {
	v := ribEntryView{Prefix: e.Prefix().String(), Routes: make([]routeView, len(e.routes))}
	for i, rt := range e.routes {
		v.Routes[i] = routeView{
			FaceID:           rt.FaceID(),
			Origin:           uint64(rt.Origin()),
			Cost:             rt.Cost(),
			Flags:            uint64(rt.Flags()),
			ExpirationPeriod: optionalPtr(rt.ExpirationPeriod(), rt.HasExpirationPeriod()),
		}
	}
	return v
}

type strategyChoiceView struct {
	Name     string `json:"name" yaml:"name"`
	Strategy string `json:"strategy" yaml:"strategy"`
}

func (sc *StrategyChoice) view() any {
	return strategyChoiceView{Name: sc.Name().String(), Strategy: sc.Strategy().String()}
}
