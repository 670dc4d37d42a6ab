// Package mgmt implements the NFD management records: FaceStatus and the
// other status datasets and notifications, their TLV encoding and their
// diagnostic text form.
package mgmt

// TLV-TYPE numbers assigned by the NFD management protocol. Record types
// are only unique within their dataset, hence the repeated 0x80.
const (
	TtFaceID           = 0x69
	TtURI              = 0x72
	TtLocalURI         = 0x81
	TtCost             = 0x6a
	TtFlags            = 0x6c
	TtExpirationPeriod = 0x6d
	TtOrigin           = 0x6f
	TtStrategy         = 0x6b
	TtFaceScope        = 0x84
	TtFacePersistency  = 0x85
	TtLinkType         = 0x86

	TtBaseCongestionMarkingInterval = 0x87
	TtDefaultCongestionThreshold    = 0x88
	TtMtu                           = 0x89

	TtNInInterests  = 0x90
	TtNInData       = 0x91
	TtNInNacks      = 0x97
	TtNOutInterests = 0x92
	TtNOutData      = 0x93
	TtNOutNacks     = 0x98
	TtNInBytes      = 0x94
	TtNOutBytes     = 0x95

	TtFaceStatus            = 0x80
	TtChannelStatus         = 0x82
	TtFaceEventNotification = 0xc0
	TtFaceEventKind         = 0xc1

	TtFibEntry       = 0x80
	TtNextHopRecord  = 0x81
	TtRibEntry       = 0x80
	TtRoute          = 0x81
	TtStrategyChoice = 0x80
)
