// Command nfd-status decodes NFD management status datasets.
//
// Usage:
//
//	nfd-status <command> [flags] <file>
//
// Commands:
//
//	decode   Decode a dataset and print every record
//	inspect  Print the raw TLV element tree
//
// Examples:
//
//	# Print a faces/list dataset saved from the forwarder
//	nfd-status decode faces.tlv
//
//	# Export a RIB dump as YAML
//	nfd-status decode -kind rib -format yaml rib.tlv
//
//	# Inspect a hex dump read from stdin
//	nfd-status inspect -hex -
package main

import (
	"fmt"
	"io"
	"os"
)

const usage = `nfd-status - NFD management dataset decoder

Usage:
  nfd-status <command> [flags] <file>

Commands:
  decode   Decode a dataset and print every record
  inspect  Print the raw TLV element tree

Use "nfd-status <command> -help" for more information about a command.
Use "-" as the file to read from standard input.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	cmd := args[0]
	args = args[1:]

	var err error
	switch cmd {
	case "decode":
		err = runDecode(args, stdin, stdout, stderr)
	case "inspect":
		err = runInspect(args, stdin, stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(stderr, usage)
		return 1
	}
	if err != nil {
		if err != errUsage {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
