package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/oy3o/tlv"
	"github.com/oy3o/tlv/mgmt"
)

// containerTypes are the TLV-TYPEs whose value is a sequence of elements in
// at least one management record. 0x81 is also LocalUri, which prints as text.
var containerTypes = map[uint64]bool{
	mgmt.TtFaceStatus:            true,
	mgmt.TtNextHopRecord:         true,
	mgmt.TtChannelStatus:         true,
	mgmt.TtFaceEventNotification: true,
	mgmt.TtStrategy:              true,
	tlv.TtName:                   true,
}

func runInspect(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, `nfd-status inspect - Print the raw TLV element tree

Usage:
  nfd-status inspect [flags] <file>

Flags:
`)
		fs.PrintDefaults()
	}

	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Error: input file required")
		fs.Usage()
		return errUsage
	}

	cfg, logger, err := common.setup(stderr)
	if err != nil {
		return err
	}
	data, err := readInput(fs.Arg(0), stdin, cfg.Hex, logger)
	if err != nil {
		return err
	}
	logger.Debug().Int("bytes", len(data)).Msg("inspecting input")

	var sb strings.Builder
	err = printElements(&sb, data, 0)
	if _, werr := io.WriteString(stdout, sb.String()); werr != nil && err == nil {
		err = werr
	}
	return err
}

// printElements writes one line per element, indenting nested elements.
// A container value is shown as nested when it parses completely as
// elements and is not printable text.
func printElements(sb *strings.Builder, wire []byte, depth int) error {
	for off := 0; off < len(wire); {
		el, rest, err := tlv.ParseElement(wire[off:])
		if err != nil {
			return fmt.Errorf("element at offset %d: %w", off, err)
		}
		fmt.Fprintf(sb, "%s0x%x (%d)", strings.Repeat("  ", depth), el.Type, el.Length())
		_, cerr := el.Children()
		switch {
		case len(el.Value) == 0:
			sb.WriteByte('\n')
		case containerTypes[el.Type] && cerr == nil && !isText(el.Value):
			sb.WriteByte('\n')
			if err := printElements(sb, el.Value, depth+1); err != nil {
				return err
			}
		case isText(el.Value):
			fmt.Fprintf(sb, " %q\n", el.Value)
		default:
			fmt.Fprintf(sb, " %s\n", hex.EncodeToString(el.Value))
		}
		off = len(wire) - len(rest)
	}
	return nil
}

func isText(b []byte) bool {
	if len(b) < 2 || !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
