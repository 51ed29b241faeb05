package main

import (
	"fmt"
	"io"
)

// printUsage writes the top-level usage text to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: x690 <command> [flags] [arguments]

Commands:
  decode <input_file>   Parse a BER/DER file and print the TLV tree.
  encode <input_file>   Read hexadecimal TLV text and write canonical DER.
  version               Print version information.
  help                  Print this message.

Flags for decode:
  -b    treat the input as Basic Encoding Rules
  -d    treat the input as Distinguished Encoding Rules (default)
  -x    the input file contains hexadecimal text instead of binary data

Flags for encode:
  -b    produce Basic Encoding Rules output (not supported)
  -d    produce Distinguished Encoding Rules output (default)
`)
}
