package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oy3o/tlv"
	"github.com/oy3o/tlv/mgmt"
	"github.com/rs/zerolog"
)

var errUsage = errors.New("usage")

// commonFlags are shared by every command.
type commonFlags struct {
	fs         *flag.FlagSet
	configPath string
	hex        bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.configPath, "config", "", "Path to a TOML configuration file")
	fs.BoolVar(&c.hex, "hex", false, "Input is a hex dump instead of raw bytes")
}

// setup loads the configuration and builds the logger. Flags given on the
// command line win over the configuration file.
func (c *commonFlags) setup(stderr io.Writer) (config, zerolog.Logger, error) {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return config{}, zerolog.Nop(), err
	}
	applyEnvOverrides(&cfg)
	c.fs.Visit(func(f *flag.Flag) {
		if f.Name == "hex" {
			cfg.Hex = c.hex
		}
	})
	return cfg, newLogger(stderr, cfg.LogLevel), nil
}

func runDecode(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, `nfd-status decode - Decode a dataset and print every record

Usage:
  nfd-status decode [flags] <file>

Record kinds: %s

Flags:
`, strings.Join(mgmt.Kinds(), ", "))
		fs.PrintDefaults()
	}

	var common commonFlags
	common.register(fs)
	kind := fs.String("kind", "", "Record kind of the dataset (default from config, else face)")
	format := fs.String("format", "", "Output format: text, json, yaml, cbor, msgpack (default from config, else text)")

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
	if *kind != "" {
		cfg.Kind = *kind
	}
	if *format != "" {
		cfg.Format = strings.ToLower(*format)
	}

	data, err := readInput(fs.Arg(0), stdin, cfg.Hex, logger)
	if err != nil {
		return err
	}
	logger.Debug().Str("kind", cfg.Kind).Int("bytes", len(data)).Msg("decoding dataset")

	dataset, err := mgmt.NewDataset(cfg.Kind)
	if err != nil {
		return err
	}
	if err := dataset.UnmarshalBinary(data); err != nil {
		logger.Error().Err(err).Int("decoded", dataset.Len()).Msg("dataset decode failed")
		return err
	}
	logger.Info().Int("records", dataset.Len()).Msg("dataset decoded")

	if cfg.Format == "text" {
		for _, r := range dataset.Items {
			fmt.Fprintln(stdout, mgmt.Format(r))
		}
		return nil
	}
	out, err := mgmt.Export(cfg.Format, dataset.Items...)
	if err != nil {
		return err
	}
	if _, err := stdout.Write(out); err != nil {
		return err
	}
	if !mgmt.IsBinaryEncoding(cfg.Format) && !strings.HasSuffix(string(out), "\n") {
		fmt.Fprintln(stdout)
	}
	return nil
}

// readInput reads path, or stdin when path is "-", decoding a hex dump
// when asHex is set. Whitespace in a hex dump is ignored. A raw input that
// starts with a hex digit is almost certainly a dump passed without -hex,
// since every management record has an outer TLV-TYPE of 0x80 or above.
func readInput(path string, stdin io.Reader, asHex bool, logger zerolog.Logger) ([]byte, error) {
	pr := tlv.PeekReader(stdin)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		pr = tlv.PeekReader(f)
		defer pr.Close()
	}

	if !asHex {
		if head, _ := pr.Peek(1); len(head) == 1 && isHexDigit(head[0]) {
			logger.Warn().Msg("input looks like a hex dump; pass -hex to decode it")
		} else if typ, err := pr.PeekType(); err == nil {
			ev := logger.Debug().Str("type", fmt.Sprintf("0x%x", typ))
			if kind, ok := kindsByType[typ]; ok {
				ev = ev.Str("kind", kind)
			}
			ev.Msg("first element")
		}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, pr); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	data := buf.Bytes()
	if !asHex {
		return data, nil
	}
	compact := strings.Join(strings.Fields(string(data)), "")
	raw, err := hex.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("decode hex input: %w", err)
	}
	return raw, nil
}

// kindsByType names the record kinds whose outer TLV-TYPE is not shared
// with another dataset.
var kindsByType = map[uint64]string{
	mgmt.TtChannelStatus:         "channel",
	mgmt.TtFaceEventNotification: "face-event",
}

func isHexDigit(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}
