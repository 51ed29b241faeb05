package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"codello.dev/x690"
	"codello.dev/x690/der"
	"codello.dev/x690/tlv"
)

func TestRun(t *testing.T) {
	tests := map[string]struct {
		args []string
		want int
	}{
		"NoArgs":        {[]string{"x690"}, 1},
		"Unknown":       {[]string{"x690", "bogus"}, 1},
		"Help":          {[]string{"x690", "help"}, 0},
		"HelpFlag":      {[]string{"x690", "--help"}, 0},
		"Version":       {[]string{"x690", "version"}, 0},
		"DecodeNoFile":  {[]string{"x690", "decode"}, 1},
		"DecodeMissing": {[]string{"x690", "decode", "does-not-exist.der"}, 2},
		"EncodeBER":     {[]string{"x690", "encode", "-b", "in.txt"}, 1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := run(tc.args); got != tc.want {
				t.Errorf("run(%v) = %d, want %d", tc.args, got, tc.want)
			}
		})
	}
}

func TestDecodeCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("30 06 01 01 00 01 01 FF"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		args []string
		want int
	}{
		"Hex":       {[]string{"-x", path}, 0},
		"HexDER":    {[]string{"-d", "-x", path}, 0},
		"BothRules": {[]string{"-b", "-d", path}, 1},
		"Binary":    {[]string{path}, 2}, // the hex text is not a valid TLV stream
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := decodeCmd(tc.args); got != tc.want {
				t.Errorf("decodeCmd(%v) = %d, want %d", tc.args, got, tc.want)
			}
		})
	}
}

func TestNodeValue(t *testing.T) {
	input := []byte{0x30, 0x06, 0x01, 0x01, 0x00, 0x01, 0x01, 0xff}
	nodes, _, err := tlv.Parse(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("tlv.Parse() returned an unexpected error: %s", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("tlv.Parse() produced %d nodes, want 1", len(nodes))
	}

	v, err := nodeValue(nodes[0])
	if err != nil {
		t.Fatalf("nodeValue() returned an unexpected error: %s", err)
	}
	if got := der.Encode(v); !bytes.Equal(got, input) {
		t.Errorf("der.Encode(nodeValue()) = % X, want % X", got, input)
	}
}

func TestNodeValueRejectsRaw(t *testing.T) {
	n := &x690.Node{
		Identifier: x690.Identifier{Class: x690.ClassContextSpecific, Form: x690.FormPrimitive, TagNumber: 0},
		Length:     1,
		Content:    x690.Raw{0xaa},
	}
	if _, err := nodeValue(n); err == nil {
		t.Error("nodeValue() should fail for raw content")
	}
}

func TestNodeValueText(t *testing.T) {
	// text decoded from [UNIVERSAL 4] re-encodes byte-identically
	input := []byte{0x04, 0x02, 0x68, 0x65}
	nodes, _, err := tlv.Parse(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("tlv.Parse() returned an unexpected error: %s", err)
	}
	v, err := nodeValue(nodes[0])
	if err != nil {
		t.Fatalf("nodeValue() returned an unexpected error: %s", err)
	}
	if got := der.Encode(v); !bytes.Equal(got, input) {
		t.Errorf("der.Encode(nodeValue()) = % X, want % X", got, input)
	}
}
