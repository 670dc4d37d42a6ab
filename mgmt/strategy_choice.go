package mgmt

import (
	"io"

	"github.com/oy3o/tlv"
)

var (
	stName = mandatory("Name", tlv.TtName)

	strategySchema = tlv.NewSchema("Strategy", TtStrategy, stName)

	scName     = mandatory("Name", tlv.TtName)
	scStrategy = mandatory("Strategy", TtStrategy)

	strategyChoiceSchema = tlv.NewSchema("StrategyChoice", TtStrategyChoice, scName, scStrategy)
)

// StrategyChoice is one entry of the strategy-choice/list dataset: the
// forwarding strategy in effect for a namespace.
type StrategyChoice struct {
	name     tlv.Optional[tlv.Name]
	strategy tlv.Optional[tlv.Name]
}

var _ Record = (*StrategyChoice)(nil)

func NewStrategyChoice() *StrategyChoice { return &StrategyChoice{} }

func (sc *StrategyChoice) Name() tlv.Name     { return sc.name.GetOr(nil) }
func (sc *StrategyChoice) Strategy() tlv.Name { return sc.strategy.GetOr(nil) }

func (sc *StrategyChoice) SetName(n tlv.Name) *StrategyChoice {
	sc.name.Set(n)
	return sc
}

func (sc *StrategyChoice) SetStrategy(n tlv.Name) *StrategyChoice {
	sc.strategy.Set(n)
	return sc
}

func (sc *StrategyChoice) EncodeTLV(w *tlv.Writer) {
	strategyChoiceSchema.Encode(w, func(w *tlv.Writer) {
		tlv.WriteNameField(w, scName, sc.name)
		if w.Require(scStrategy, sc.strategy.IsSet()) {
			strategySchema.Encode(w, func(w *tlv.Writer) {
				tlv.WriteNameField(w, stName, sc.strategy)
			})
		}
	})
}

func (sc *StrategyChoice) DecodeTLV(wire []byte) (int, error) {
	var tmp StrategyChoice
	n, err := strategyChoiceSchema.Decode(wire, func(f *tlv.Field, value []byte) error {
		switch f {
		case scName:
			return decodeName(&tmp.name, value)
		case scStrategy:
			return strategySchema.DecodeValue(value, func(f *tlv.Field, value []byte) error {
				if f == stName {
					return decodeName(&tmp.strategy, value)
				}
				return unexpectedField(f)
			})
		}
		return unexpectedField(f)
	})
	if err != nil {
		return 0, err
	}
	*sc = tmp
	return n, nil
}

func (sc *StrategyChoice) String() string {
	p := newPrinter("StrategyChoice")
	p.field("Name", sc.Name())
	p.field("Strategy", sc.Strategy())
	return p.close()
}

func (sc *StrategyChoice) Size() int                           { return tlv.SizeGeneric(sc) }
func (sc *StrategyChoice) MarshalBinary() ([]byte, error)      { return tlv.MarshalBinaryGeneric(sc) }
func (sc *StrategyChoice) MarshalTo(buf []byte) (int, error)   { return tlv.MarshalToGeneric(sc, buf) }
func (sc *StrategyChoice) WriteTo(w io.Writer) (int64, error)  { return tlv.WriteToGeneric(sc, w) }
func (sc *StrategyChoice) UnmarshalBinary(b []byte) error      { return tlv.UnmarshalBinaryGeneric(sc, b) }
func (sc *StrategyChoice) ReadFrom(r io.Reader) (int64, error) { return tlv.ReadFromGeneric(sc, r) }
