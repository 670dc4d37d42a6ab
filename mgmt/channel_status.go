package mgmt

import (
	"io"

	"github.com/oy3o/tlv"
)

var (
	csLocalURI = mandatory("LocalUri", TtLocalURI)

	channelStatusSchema = tlv.NewSchema("ChannelStatus", TtChannelStatus, csLocalURI)
)

// ChannelStatus is one entry of the faces/channels dataset: a listening
// endpoint of a protocol factory.
type ChannelStatus struct {
	localURI tlv.Optional[string]
}

var _ Record = (*ChannelStatus)(nil)

func NewChannelStatus() *ChannelStatus { return &ChannelStatus{} }

func (cs *ChannelStatus) LocalURI() string { return cs.localURI.GetOr("") }

func (cs *ChannelStatus) SetLocalURI(uri string) *ChannelStatus {
	cs.localURI.Set(uri)
	return cs
}

func (cs *ChannelStatus) EncodeTLV(w *tlv.Writer) {
	channelStatusSchema.Encode(w, func(w *tlv.Writer) {
		tlv.WriteStringField(w, csLocalURI, cs.localURI)
	})
}

func (cs *ChannelStatus) DecodeTLV(wire []byte) (int, error) {
	var tmp ChannelStatus
	n, err := channelStatusSchema.Decode(wire, func(f *tlv.Field, value []byte) error {
		if f == csLocalURI {
			return decodeString(&tmp.localURI, value)
		}
		return unexpectedField(f)
	})
	if err != nil {
		return 0, err
	}
	*cs = tmp
	return n, nil
}

func (cs *ChannelStatus) String() string {
	p := newPrinter("Channel")
	p.field("LocalUri", cs.LocalURI())
	return p.close()
}

func (cs *ChannelStatus) Size() int                           { return tlv.SizeGeneric(cs) }
func (cs *ChannelStatus) MarshalBinary() ([]byte, error)      { return tlv.MarshalBinaryGeneric(cs) }
func (cs *ChannelStatus) MarshalTo(buf []byte) (int, error)   { return tlv.MarshalToGeneric(cs, buf) }
func (cs *ChannelStatus) WriteTo(w io.Writer) (int64, error)  { return tlv.WriteToGeneric(cs, w) }
func (cs *ChannelStatus) UnmarshalBinary(b []byte) error      { return tlv.UnmarshalBinaryGeneric(cs, b) }
func (cs *ChannelStatus) ReadFrom(r io.Reader) (int64, error) { return tlv.ReadFromGeneric(cs, r) }
