package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oy3o/tlv/mgmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faceDataset(t *testing.T) []byte {
	t.Helper()
	fs := mgmt.NewFaceStatus().
		SetFaceID(256).
		SetRemoteURI("fd://30").
		SetLocalURI("unix:///run/nfd.sock").
		SetFaceScope(mgmt.FaceScopeLocal).
		SetFacePersistency(mgmt.FacePersistencyOnDemand).
		SetLinkType(mgmt.LinkTypePointToPoint).
		SetNInInterests(1).SetNInData(2).SetNInNacks(3).
		SetNOutInterests(4).SetNOutData(5).SetNOutNacks(6).
		SetNInBytes(7).SetNOutBytes(8).
		SetFlags(mgmt.FaceFlagLocalFieldsEnabled)
	wire, err := fs.MarshalBinary()
	require.NoError(t, err)
	return wire
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func runCLI(t *testing.T, stdin []byte, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, bytes.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t, nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Usage:")

	code, stdout, _ := runCLI(t, nil, "help")
	assert.Zero(t, code)
	assert.Contains(t, stdout, "decode")

	code, _, stderr = runCLI(t, nil, "frobnicate")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Unknown command: frobnicate")

	code, _, stderr = runCLI(t, nil, "decode")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "input file required")
}

func TestRun_DecodeText(t *testing.T) {
	wire := faceDataset(t)
	path := writeFile(t, "faces.tlv", append(append([]byte{}, wire...), wire...))

	code, stdout, stderr := runCLI(t, nil, "decode", path)
	require.Zero(t, code, stderr)
	assert.Equal(t, 2, strings.Count(stdout, "Face(FaceId: 256,"))
	assert.Contains(t, stdout, "     LocalUri: unix:///run/nfd.sock,\n")
}

func TestRun_DecodeHexFromStdin(t *testing.T) {
	dump := hex.EncodeToString(faceDataset(t))
	dump = dump[:10] + "\n  " + dump[10:]

	code, stdout, stderr := runCLI(t, []byte(dump), "decode", "-hex", "-format", "json", "-")
	require.Zero(t, code, stderr)
	assert.Contains(t, stdout, `"faceId": 256`)
}

func TestRun_DecodeErrors(t *testing.T) {
	wire := faceDataset(t)

	t.Run("Truncated", func(t *testing.T) {
		path := writeFile(t, "bad.tlv", wire[:len(wire)-1])
		code, _, stderr := runCLI(t, nil, "decode", path)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "Error:")
		assert.Contains(t, stderr, "dataset item 0")
	})

	t.Run("UnknownKind", func(t *testing.T) {
		path := writeFile(t, "faces.tlv", wire)
		code, _, stderr := runCLI(t, nil, "decode", "-kind", "pit", path)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, `unknown record kind "pit"`)
	})

	t.Run("MissingFile", func(t *testing.T) {
		code, _, stderr := runCLI(t, nil, "decode", filepath.Join(t.TempDir(), "missing"))
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "read input")
	})

	t.Run("BadHex", func(t *testing.T) {
		code, _, stderr := runCLI(t, []byte("zz"), "decode", "-hex", "-")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "decode hex input")
	})

	t.Run("HexWithoutFlag", func(t *testing.T) {
		dump := hex.EncodeToString(faceDataset(t))
		code, _, stderr := runCLI(t, []byte(dump), "decode", "-")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "input looks like a hex dump")
	})
}

func TestRun_DecodeWithConfig(t *testing.T) {
	data := writeFile(t, "faces.hex", []byte(hex.EncodeToString(faceDataset(t))))
	cfg := writeFile(t, "nfd-status.toml", []byte("kind = \"face\"\nformat = \"yaml\"\nhex = true\nlog_level = \"error\"\n"))

	code, stdout, stderr := runCLI(t, nil, "decode", "-config", cfg, data)
	require.Zero(t, code, stderr)
	assert.Contains(t, stdout, "faceId: 256")

	t.Run("FlagOverridesConfig", func(t *testing.T) {
		raw := writeFile(t, "faces.tlv", faceDataset(t))
		code, stdout, stderr := runCLI(t, nil, "decode", "-config", cfg, "-hex=false", "-format", "text", raw)
		require.Zero(t, code, stderr)
		assert.Contains(t, stdout, "Face(FaceId: 256,")
	})
}

func TestRun_Inspect(t *testing.T) {
	path := writeFile(t, "faces.tlv", faceDataset(t))

	code, stdout, stderr := runCLI(t, nil, "inspect", path)
	require.Zero(t, code, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 16)
	assert.True(t, strings.HasPrefix(lines[0], "0x80 ("))
	assert.Equal(t, "  0x69 (2) 0100", lines[1])
	assert.Equal(t, `  0x72 (7) "fd://30"`, lines[2])
	assert.Equal(t, "  0x6c (1) 01", lines[15])

	t.Run("Garbage", func(t *testing.T) {
		path := writeFile(t, "bad.tlv", []byte{0x80, 0x05, 0x01})
		code, _, stderr := runCLI(t, nil, "inspect", path)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "element at offset 0")
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRun_OutputWriteError(t *testing.T) {
	path := writeFile(t, "faces.tlv", faceDataset(t))

	var stderr bytes.Buffer
	code := run([]string{"inspect", path}, bytes.NewReader(nil), failingWriter{}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "broken pipe")
}
