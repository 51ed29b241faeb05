// Package main provides the x690 command, a small front end for decoding
// BER/DER TLV streams and re-encoding them canonically.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args))
}

// run executes the CLI and returns an exit code. This is separated from
// main() to facilitate testing.
func run(args []string) int {
	if len(args) < 2 {
		printUsage(os.Stderr)
		return 1
	}

	switch args[1] {
	case "decode":
		return decodeCmd(args[2:])
	case "encode":
		return encodeCmd(args[2:])
	case "version":
		return versionCmd(args[2:])
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "x690: unknown command %q\n", args[1])
		fmt.Fprintln(os.Stderr, "Run 'x690 help' for usage.")
		return 1
	}
}
