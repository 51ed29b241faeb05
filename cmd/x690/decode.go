package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"codello.dev/x690"
	"codello.dev/x690/hexio"
	"codello.dev/x690/tlv"
)

// decodeCmd handles the decode command. It parses the input file and prints
// an indented representation of the TLV tree to stdout. Warnings go to
// stderr.
func decodeCmd(args []string) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	ber := fs.Bool("b", false, "treat the input as Basic Encoding Rules")
	der := fs.Bool("d", false, "treat the input as Distinguished Encoding Rules")
	hexIn := fs.Bool("x", false, "the input file contains hexadecimal text")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *ber && *der {
		fmt.Fprintln(os.Stderr, "decode: -b and -d are mutually exclusive")
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "decode: exactly one input file is required")
		return 1
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 2
	}
	if *hexIn {
		if data, err = hexio.Decode(string(data)); err != nil {
			fmt.Fprintf(os.Stderr, "decode: %v\n", err)
			return 2
		}
	}

	// The decoder handles the definite-length subset common to BER and DER,
	// so -b and -d select the same parse.
	nodes, warnings, err := tlv.Parse(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 2
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "decode: warning: %s\n", w)
	}
	printForest(os.Stdout, nodes)
	return 0
}

// printForest writes an indented representation of nodes to w.
func printForest(w io.Writer, nodes []*x690.Node) {
	for _, n := range nodes {
		printNode(w, n, 0)
	}
}

func printNode(w io.Writer, n *x690.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	length := "?"
	if n.Length != x690.LengthUnset {
		length = fmt.Sprintf("%d", n.Length)
	}
	fmt.Fprintf(w, "%s%s length=%s", indent, n.Identifier, length)

	switch c := n.Content.(type) {
	case x690.Constructed:
		fmt.Fprintln(w)
		for _, child := range c {
			printNode(w, child, depth+1)
		}
	case x690.Boolean:
		fmt.Fprintf(w, " BOOLEAN %t\n", bool(c))
	case x690.Integer:
		fmt.Fprintf(w, " INTEGER %s\n", c.Int)
	case x690.BitString:
		fmt.Fprintf(w, " BIT STRING unused=%d %s\n", c.UnusedBits, hexio.Encode(c.Bytes))
	case x690.UTF8String:
		fmt.Fprintf(w, " %q\n", string(c))
	case x690.Null:
		fmt.Fprintln(w, " NULL")
	case x690.Raw:
		fmt.Fprintf(w, " %s\n", hexio.Encode(c))
	case nil:
		fmt.Fprintln(w)
	}
}
