package vlq

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestRead(t *testing.T) {
	tests := map[string]struct {
		input     []byte
		maxOctets int
		want      uint32
		err       error
	}{
		"Zero":      {[]byte{0x00}, 4, 0, nil},
		"Small":     {[]byte{0x7f}, 4, 127, nil},
		"TwoOctets": {[]byte{0x81, 0x00}, 4, 128, nil},
		"Large":     {[]byte{0x84, 0x01}, 4, 513, nil},
		"Max":       {[]byte{0xff, 0xff, 0xff, 0x7f}, 4, 1<<28 - 1, nil},
		"TooLong":   {[]byte{0x81, 0x80, 0x80, 0x80, 0x00}, 4, 0, ErrTooLong},
		"Truncated": {[]byte{0x80}, 4, 0, io.EOF},
		"Empty":     {[]byte{}, 4, 0, io.EOF},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Read(bytes.NewReader(tc.input), tc.maxOctets)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Read() error = %v, want %v", err, tc.err)
			}
			if err == nil && got != tc.want {
				t.Errorf("Read() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestAppend(t *testing.T) {
	tests := map[string]struct {
		value uint32
		want  []byte
	}{
		"Zero":        {0, []byte{0x00}},
		"Small":       {127, []byte{0x7f}},
		"TwoOctets":   {128, []byte{0x81, 0x00}},
		"Large":       {513, []byte{0x84, 0x01}},
		"ThreeOctets": {16384, []byte{0x81, 0x80, 0x00}},
		"Max":         {1<<28 - 1, []byte{0xff, 0xff, 0xff, 0x7f}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Append(nil, tc.value)
			if !bytes.Equal(got, tc.want) {
				t.Errorf("Append(nil, %d) = % X, want % X", tc.value, got, tc.want)
			}
			if l := Len(tc.value); l != len(tc.want) {
				t.Errorf("Len(%d) = %d, want %d", tc.value, l, len(tc.want))
			}

			back, err := Read(bytes.NewReader(got), 4)
			if err != nil {
				t.Fatalf("Read() returned an unexpected error: %s", err)
			}
			if back != tc.value {
				t.Errorf("Read(Append(%d)) = %d", tc.value, back)
			}
		})
	}
}
