// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der implements encoding of symbolic values using the ASN.1
// Distinguished Encoding Rules (DER). The Distinguished Encoding Rules are
// the canonical subset of the Basic Encoding Rules defined in
// [Rec. ITU-T X.690]: every value has exactly one encoding.
//
// The encoder is a pure function from an [x690.Value] to its octets. It
// performs no I/O and cannot fail on well-typed input. The canonical shape is
// enforced throughout:
//
//   - The definite length form is always used, with the shortest possible
//     length encoding.
//   - BOOLEAN true is encoded as 0xFF.
//   - INTEGER content uses the minimal two's-complement width.
//   - Bit strings, octet strings and restricted character strings use the
//     primitive encoding.
//   - SET elements are encoded in ascending order of their tag values.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package der

import (
	"math/big"
	"math/bits"
	"sort"

	"codello.dev/x690"
	"codello.dev/x690/internal/vlq"
)

// Encode returns the DER encoding of v.
func Encode(v x690.Value) []byte {
	return Append(nil, v)
}

// Append appends the DER encoding of v to dst and returns the extended slice.
func Append(dst []byte, v x690.Value) []byte {
	switch v := v.(type) {
	case x690.Boolean:
		dst = AppendHeader(dst, v.Identifier(), 1)
		if v {
			return append(dst, 0xff)
		}
		return append(dst, 0x00)

	case x690.Integer:
		content := appendTwosComplement(nil, v.Int)
		dst = AppendHeader(dst, v.Identifier(), len(content))
		return append(dst, content...)

	case x690.BitString:
		dst = AppendHeader(dst, v.Identifier(), 1+len(v.Bytes))
		dst = append(dst, v.UnusedBits)
		return append(dst, v.Bytes...)

	case x690.OctetString:
		dst = AppendHeader(dst, v.Identifier(), len(v))
		return append(dst, v...)

	case x690.VisibleString:
		dst = AppendHeader(dst, v.Identifier(), len(v))
		return append(dst, v...)

	case x690.Null:
		return AppendHeader(dst, v.Identifier(), 0)

	case x690.Sequence:
		var content []byte
		for _, e := range v {
			content = Append(content, e)
		}
		dst = AppendHeader(dst, v.Identifier(), len(content))
		return append(dst, content...)

	case x690.Set:
		elems := make([]x690.Value, len(v))
		copy(elems, v)
		sort.SliceStable(elems, func(i, j int) bool {
			a, b := elems[i].Identifier(), elems[j].Identifier()
			if a.Class != b.Class {
				return a.Class < b.Class
			}
			return a.TagNumber < b.TagNumber
		})
		var content []byte
		for _, e := range elems {
			content = Append(content, e)
		}
		dst = AppendHeader(dst, v.Identifier(), len(content))
		return append(dst, content...)
	}
	panic("unreachable")
}

// AppendHeader appends the identifier and length octets for a data value with
// the given identifier and content length to dst and returns the extended
// slice. Tag numbers of 31 and above use the base-128 long form.
func AppendHeader(dst []byte, id x690.Identifier, length int) []byte {
	b := byte(id.Class) << 6
	if id.Form == x690.FormConstructed {
		b |= 0x20
	}
	if id.TagNumber < 31 {
		dst = append(dst, b|byte(id.TagNumber))
	} else {
		dst = append(dst, b|0x1f)
		dst = vlq.Append(dst, id.TagNumber)
	}
	return AppendLength(dst, length)
}

// AppendLength appends the definite-form length octets for a content length
// of n to dst and returns the extended slice. Lengths below 128 use the
// single-octet short form; larger lengths use the long form with the minimum
// number of octets.
func AppendLength(dst []byte, n int) []byte {
	if n < 128 {
		return append(dst, byte(n))
	}
	numBytes := (bits.Len(uint(n)) + 7) / 8
	dst = append(dst, 0x80|byte(numBytes))
	for ; numBytes > 0; numBytes-- {
		dst = append(dst, byte(n>>uint((numBytes-1)*8)))
	}
	return dst
}

var bigOne = big.NewInt(1)

// appendTwosComplement appends the minimal big-endian two's-complement
// encoding of n to dst: the fewest octets whose sign bit matches the sign of
// the value. A nil n is treated as zero.
func appendTwosComplement(dst []byte, n *big.Int) []byte {
	if n == nil || n.Sign() == 0 {
		// Zero is written as a single zero octet rather than no octets.
		return append(dst, 0x00)
	}
	if n.Sign() > 0 {
		bs := n.Bytes()
		if bs[0]&0x80 != 0 {
			// Pad with 0x00 to stop the value looking like a negative number.
			dst = append(dst, 0x00)
		}
		return append(dst, bs...)
	}
	// A negative number has to be converted to two's-complement form. So
	// we'll invert and subtract 1. If the most-significant-bit isn't set then
	// we'll need to pad the beginning with 0xFF in order to keep the number
	// negative.
	m := new(big.Int).Neg(n)
	m.Sub(m, bigOne)
	bs := m.Bytes()
	for i := range bs {
		bs[i] ^= 0xff
	}
	if len(bs) == 0 || bs[0]&0x80 == 0 {
		dst = append(dst, 0xff)
	}
	return append(dst, bs...)
}
