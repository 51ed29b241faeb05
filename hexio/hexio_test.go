package hexio

import (
	"bytes"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    []byte
		wantErr bool
	}{
		"Spaced":     {"0C 04 4A6F686E", []byte{0x0c, 0x04, 0x4a, 0x6f, 0x68, 0x6e}, false},
		"Packed":     {"020119", []byte{0x02, 0x01, 0x19}, false},
		"LowerCase":  {"0c 04 4a 6f 68 6e", []byte{0x0c, 0x04, 0x4a, 0x6f, 0x68, 0x6e}, false},
		"Whitespace": {" 01\t01\n FF\r\n", []byte{0x01, 0x01, 0xff}, false},
		"Empty":      {"", nil, false},
		"OnlySpace":  {" \n\t", nil, false},
		"NonHex":     {"0G", nil, true},
		"OddDigits":  {"0C 0", nil, true},
		"Punctuated": {"0C,04", nil, true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Decode(%q) = % X, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q) returned an unexpected error: %s", tc.input, err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("Decode(%q) = % X, want % X", tc.input, got, tc.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := map[string]struct {
		input []byte
		want  string
	}{
		"Empty":  {nil, ""},
		"Single": {[]byte{0x0c}, "0C"},
		"Multi":  {[]byte{0x0c, 0x04, 0x4a, 0x6f, 0x68, 0x6e}, "0C 04 4A 6F 68 6E"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Encode(tc.input)
			if got != tc.want {
				t.Errorf("Encode(% X) = %q, want %q", tc.input, got, tc.want)
			}

			back, err := Decode(got)
			if err != nil {
				t.Fatalf("Decode(Encode()) returned an unexpected error: %s", err)
			}
			if !bytes.Equal(back, tc.input) {
				t.Errorf("Decode(Encode(% X)) = % X", tc.input, back)
			}
		})
	}
}
