// Package hexio converts between binary data and the whitespace-tolerant
// hexadecimal text form used by the command line front end. Input consists of
// hexadecimal octet pairs that may be separated by arbitrary whitespace, e.g.
// "0C 04 4A6F686E".
package hexio

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const hexDigits = "0123456789ABCDEF"

// Decode parses whitespace-tolerant hexadecimal octet pairs from s. A
// character that is neither whitespace nor a hexadecimal digit is an error,
// as is an odd number of digits.
func Decode(s string) ([]byte, error) {
	var sb strings.Builder
	sb.Grow(len(s))
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
		case isHexDigit(r):
			sb.WriteRune(r)
		default:
			return nil, errors.Errorf("hexio: invalid character %q at index %d", r, i)
		}
	}
	clean := sb.String()
	if len(clean)%2 != 0 {
		return nil, errors.Errorf("hexio: odd number of hex digits (%d)", len(clean))
	}
	b, err := hex.DecodeString(clean)
	return b, errors.Wrap(err, "hexio")
}

// Encode formats b as upper-case hexadecimal octet pairs separated by single
// spaces. The result is accepted by [Decode].
func Encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b)*3 - 1)
	for i, o := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(hexDigits[o>>4])
		sb.WriteByte(hexDigits[o&0x0f])
	}
	return sb.String()
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}
