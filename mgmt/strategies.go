package mgmt

import "github.com/oy3o/tlv"

// Well-known forwarding strategies shipped with NFD.
var (
	StrategyBestRoute     = tlv.MustParseName("/localhost/nfd/strategy/best-route")
	StrategyBroadcast     = tlv.MustParseName("/localhost/nfd/strategy/broadcast")
	StrategyClientControl = tlv.MustParseName("/localhost/nfd/strategy/client-control")
	StrategyNCC           = tlv.MustParseName("/localhost/nfd/strategy/ncc")
)

// Strategies returns the well-known strategy names.
func Strategies() []tlv.Name {
	return []tlv.Name{StrategyBestRoute, StrategyBroadcast, StrategyClientControl, StrategyNCC}
}
