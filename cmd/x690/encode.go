package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"codello.dev/x690"
	"codello.dev/x690/der"
	"codello.dev/x690/hexio"
	"codello.dev/x690/tlv"
)

// encodeCmd handles the encode command. It reads hexadecimal TLV text,
// parses it, canonicalizes every recognized node and writes the resulting
// DER octets to stdout.
func encodeCmd(args []string) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	ber := fs.Bool("b", false, "produce Basic Encoding Rules output")
	fs.Bool("d", false, "produce Distinguished Encoding Rules output")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *ber {
		fmt.Fprintln(os.Stderr, "encode: BER output is not supported, the encoder produces DER")
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "encode: exactly one input file is required")
		return 1
	}

	text, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 2
	}
	data, err := hexio.Decode(string(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 2
	}

	nodes, warnings, err := tlv.Parse(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 2
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "encode: warning: %s\n", w)
	}

	var out []byte
	for _, n := range nodes {
		v, err := nodeValue(n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			return 2
		}
		out = der.Append(out, v)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 2
	}
	return 0
}

// nodeValue converts a decoded node into a value the DER encoder accepts.
// Raw contents and constructed elements outside the universal SEQUENCE/SET
// tags have no canonical form and are rejected.
func nodeValue(n *x690.Node) (x690.Value, error) {
	switch c := n.Content.(type) {
	case x690.Boolean:
		return c, nil
	case x690.Integer:
		return c, nil
	case x690.BitString:
		return c, nil
	case x690.UTF8String:
		// text decoded from [UNIVERSAL 4] re-encodes under the same tag
		return x690.OctetString(c), nil
	case x690.Null:
		return c, nil
	case x690.Constructed:
		return constructedValue(n, c)
	case x690.Raw:
		return nil, errors.Errorf("cannot canonicalize %s: unrecognized content", n.Identifier)
	case nil:
		return emptyValue(n)
	}
	return nil, errors.Errorf("cannot canonicalize %s", n.Identifier)
}

func constructedValue(n *x690.Node, children x690.Constructed) (x690.Value, error) {
	if n.Identifier.Class != x690.ClassUniversal {
		return nil, errors.Errorf("cannot canonicalize %s: no universal constructed form", n.Identifier)
	}
	elems := make([]x690.Value, 0, len(children))
	for _, child := range children {
		v, err := nodeValue(child)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	switch n.Identifier.TagNumber {
	case x690.TagSequence:
		return x690.Sequence(elems), nil
	case x690.TagSet:
		return x690.Set(elems), nil
	}
	return nil, errors.Errorf("cannot canonicalize %s: no universal constructed form", n.Identifier)
}

// emptyValue maps a node that carries no content octets onto its canonical
// empty form.
func emptyValue(n *x690.Node) (x690.Value, error) {
	if n.Identifier.Class != x690.ClassUniversal {
		return nil, errors.Errorf("cannot canonicalize empty %s", n.Identifier)
	}
	switch {
	case n.Identifier.TagNumber == x690.TagNull:
		return x690.Null{}, nil
	case n.Identifier.TagNumber == x690.TagOctetString:
		return x690.OctetString(nil), nil
	case n.Identifier.TagNumber == x690.TagSequence && n.Identifier.Form == x690.FormConstructed:
		return x690.Sequence(nil), nil
	case n.Identifier.TagNumber == x690.TagSet && n.Identifier.Form == x690.FormConstructed:
		return x690.Set(nil), nil
	}
	return nil, errors.Errorf("cannot canonicalize empty %s", n.Identifier)
}
