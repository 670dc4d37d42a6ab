package mgmt

import (
	"fmt"
	"slices"

	"github.com/oy3o/tlv"
	"github.com/puzpuzpuz/xsync/v4"
)

// Record is a management record that can be encoded, decoded and printed.
type Record interface {
	tlv.Codec
	tlv.Item
	fmt.Stringer
}

// Factory returns an empty record ready to be decoded into.
type Factory func() Record

// registry maps dataset kind names to factories. It is filled in init and
// only read afterwards.
var registry = xsync.NewMap[string, Factory]()

func init() {
	Register("face", func() Record { return NewFaceStatus() })
	Register("channel", func() Record { return NewChannelStatus() })
	Register("face-event", func() Record { return NewFaceEventNotification() })
	Register("fib", func() Record { return NewFibEntry() })
	Register("rib", func() Record { return NewRibEntry() })
	Register("strategy", func() Record { return NewStrategyChoice() })
}

// Register binds kind to f. It panics if kind is already bound.
func Register(kind string, f Factory) {
	if _, loaded := registry.LoadOrStore(kind, f); loaded {
		panic("mgmt: record kind " + kind + " registered twice")
	}
}

// Lookup returns the factory bound to kind.
func Lookup(kind string) (Factory, bool) {
	return registry.Load(kind)
}

// Kinds returns the registered kind names in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, registry.Size())
	registry.Range(func(kind string, _ Factory) bool {
		kinds = append(kinds, kind)
		return true
	})
	slices.Sort(kinds)
	return kinds
}

// NewDataset returns an empty dataset of the given kind.
func NewDataset(kind string) (*tlv.List[Record], error) {
	f, ok := Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("mgmt: unknown record kind %q", kind)
	}
	return tlv.NewList(func() Record { return f() }), nil
}
