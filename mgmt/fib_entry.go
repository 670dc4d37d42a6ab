package mgmt

import (
	"fmt"
	"io"

	"github.com/oy3o/tlv"
)

var (
	nhFaceID = mandatory("FaceId", TtFaceID)
	nhCost   = mandatory("Cost", TtCost)

	nextHopSchema = tlv.NewSchema("NextHopRecord", TtNextHopRecord, nhFaceID, nhCost)

	fibName     = mandatory("Name", tlv.TtName)
	fibNextHops = repeated("NextHopRecord", TtNextHopRecord)

	fibEntrySchema = tlv.NewSchema("FibEntry", TtFibEntry, fibName, fibNextHops)
)

// NextHopRecord is one upstream of a FIB entry.
type NextHopRecord struct {
	faceID tlv.Optional[uint64]
	cost   tlv.Optional[uint64]
}

// NewNextHopRecord returns a next hop with both fields set.
func NewNextHopRecord(faceID, cost uint64) NextHopRecord {
	return NextHopRecord{faceID: tlv.Some(faceID), cost: tlv.Some(cost)}
}

func (nh NextHopRecord) FaceID() uint64 { return nh.faceID.GetOr(0) }
func (nh NextHopRecord) Cost() uint64   { return nh.cost.GetOr(0) }

func (nh NextHopRecord) EncodeTLV(w *tlv.Writer) {
	nextHopSchema.Encode(w, func(w *tlv.Writer) {
		tlv.WriteNatField(w, nhFaceID, nh.faceID)
		tlv.WriteNatField(w, nhCost, nh.cost)
	})
}

func (nh *NextHopRecord) decodeValue(value []byte) error {
	return nextHopSchema.DecodeValue(value, func(f *tlv.Field, value []byte) error {
		switch f {
		case nhFaceID:
			return decodeNat(&nh.faceID, value)
		case nhCost:
			return decodeNat(&nh.cost, value)
		}
		return unexpectedField(f)
	})
}

func (nh NextHopRecord) String() string {
	return fmt.Sprintf("NextHopRecord(FaceId: %d, Cost: %d)", nh.FaceID(), nh.Cost())
}

// FibEntry is one entry of the fib/list dataset.
type FibEntry struct {
	name     tlv.Optional[tlv.Name]
	nextHops []NextHopRecord
}

var _ Record = (*FibEntry)(nil)

func NewFibEntry() *FibEntry { return &FibEntry{} }

// Prefix is the Name field of the entry.
func (e *FibEntry) Prefix() tlv.Name { return e.name.GetOr(nil) }

func (e *FibEntry) SetPrefix(n tlv.Name) *FibEntry {
	e.name.Set(n)
	return e
}

func (e *FibEntry) NextHops() []NextHopRecord { return e.nextHops }

func (e *FibEntry) AddNextHop(nh NextHopRecord) *FibEntry {
	e.nextHops = append(e.nextHops, nh)
	return e
}

func (e *FibEntry) SetNextHops(nhs []NextHopRecord) *FibEntry {
	e.nextHops = nhs
	return e
}

func (e *FibEntry) EncodeTLV(w *tlv.Writer) {
	fibEntrySchema.Encode(w, func(w *tlv.Writer) {
		tlv.WriteNameField(w, fibName, e.name)
		for _, nh := range e.nextHops {
			nh.EncodeTLV(w)
		}
	})
}

func (e *FibEntry) DecodeTLV(wire []byte) (int, error) {
	var tmp FibEntry
	n, err := fibEntrySchema.Decode(wire, func(f *tlv.Field, value []byte) error {
		switch f {
		case fibName:
			return decodeName(&tmp.name, value)
		case fibNextHops:
			var nh NextHopRecord
			if err := nh.decodeValue(value); err != nil {
				return err
			}
			tmp.nextHops = append(tmp.nextHops, nh)
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

func (e *FibEntry) String() string {
	p := newPrinter("FibEntry")
	p.field("Prefix", e.Prefix())
	hops := make([]string, len(e.nextHops))
	for i, nh := range e.nextHops {
		hops[i] = nh.String()
	}
	p.list("NextHops", hops...)
	return p.close()
}

func (e *FibEntry) Size() int                           { return tlv.SizeGeneric(e) }
func (e *FibEntry) MarshalBinary() ([]byte, error)      { return tlv.MarshalBinaryGeneric(e) }
func (e *FibEntry) MarshalTo(buf []byte) (int, error)   { return tlv.MarshalToGeneric(e, buf) }
func (e *FibEntry) WriteTo(w io.Writer) (int64, error)  { return tlv.WriteToGeneric(e, w) }
func (e *FibEntry) UnmarshalBinary(data []byte) error   { return tlv.UnmarshalBinaryGeneric(e, data) }
func (e *FibEntry) ReadFrom(r io.Reader) (int64, error) { return tlv.ReadFromGeneric(e, r) }
