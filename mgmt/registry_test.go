package mgmt

import (
	"sync"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/oy3o/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ugorji/go/codec"
	"gopkg.in/yaml.v3"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"channel", "face", "face-event", "fib", "rib", "strategy"}, Kinds())

	f, ok := Lookup("face")
	require.True(t, ok)
	assert.IsType(t, &FaceStatus{}, f())

	_, ok = Lookup("nope")
	assert.False(t, ok)

	assert.Panics(t, func() { Register("face", func() Record { return NewFaceStatus() }) })

	t.Run("ConcurrentLookup", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				f, ok := Lookup("fib")
				assert.True(t, ok)
				assert.IsType(t, &FibEntry{}, f())
			}()
		}
		wg.Wait()
	})
}

func TestNewDataset(t *testing.T) {
	wire := append(append([]byte{}, faceStatusWire...), faceStatusWire...)

	ds, err := NewDataset("face")
	require.NoError(t, err)
	require.NoError(t, ds.UnmarshalBinary(wire))
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, faceStatusText, ds.Items[1].String())

	reencoded, err := ds.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, wire, reencoded)

	t.Run("WrongKind", func(t *testing.T) {
		ds, err := NewDataset("channel")
		require.NoError(t, err)
		err = ds.UnmarshalBinary(wire)
		assert.ErrorIs(t, err, tlv.ErrTypeMismatch)
		assert.Contains(t, err.Error(), "dataset item 0")
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := NewDataset("nope")
		assert.EqualError(t, err, `mgmt: unknown record kind "nope"`)
	})
}

func TestExport(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		out, err := Export(EncodingJSON, minimalFaceStatus())
		require.NoError(t, err)
		assert.JSONEq(t, `[{
			"faceId": 1,
			"remoteUri": "internal://",
			"localUri": "internal://",
			"faceScope": "local",
			"facePersistency": "permanent",
			"linkType": "point-to-point",
			"flags": 0,
			"counters": {
				"interests": {"in": 0, "out": 0},
				"data": {"in": 0, "out": 0},
				"nacks": {"in": 0, "out": 0},
				"bytes": {"in": 0, "out": 0}
			}
		}]`, string(out))
	})

	t.Run("JSONOptionalPresent", func(t *testing.T) {
		out, err := Export(EncodingJSON, sampleFaceStatus())
		require.NoError(t, err)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(out, &got))
		require.Len(t, got, 1)
		assert.EqualValues(t, 10000, got[0]["expirationPeriod"])
		assert.EqualValues(t, 9, got[0]["mtu"])
	})

	t.Run("YAML", func(t *testing.T) {
		fib := NewFibEntry().SetPrefix(tlv.MustParseName("/a")).AddNextHop(NewNextHopRecord(1, 10))
		out, err := Export(EncodingYAML, fib)
		require.NoError(t, err)
		assert.Contains(t, string(out), "prefix: /a")

		var back []fibEntryView
		require.NoError(t, yaml.Unmarshal(out, &back))
		assert.Equal(t, []fibEntryView{{Prefix: "/a", NextHops: []nextHopView{{FaceID: 1, Cost: 10}}}}, back)
	})

	t.Run("CBOR", func(t *testing.T) {
		sc := NewStrategyChoice().SetName(tlv.MustParseName("/a")).SetStrategy(StrategyNCC)
		out, err := Export(EncodingCBOR, sc)
		require.NoError(t, err)

		var back []strategyChoiceView
		require.NoError(t, cbor.Unmarshal(out, &back))
		assert.Equal(t, []strategyChoiceView{{Name: "/a", Strategy: "/localhost/nfd/strategy/ncc"}}, back)

		again, err := Export(EncodingCBOR, sc)
		require.NoError(t, err)
		assert.Equal(t, out, again, "CBOR export is deterministic")
	})

	t.Run("Msgpack", func(t *testing.T) {
		cs := NewChannelStatus().SetLocalURI("udp6://[::]:6363")
		out, err := Export(EncodingMsgpack, cs)
		require.NoError(t, err)
		assert.True(t, IsBinaryEncoding(EncodingMsgpack))

		var back []channelStatusView
		require.NoError(t, codec.NewDecoderBytes(out, &msgpackHandle).Decode(&back))
		assert.Equal(t, []channelStatusView{{LocalURI: "udp6://[::]:6363"}}, back)
	})

	t.Run("UnknownEncoding", func(t *testing.T) {
		_, err := Export("xml", minimalFaceStatus())
		assert.Error(t, err)
	})
}
