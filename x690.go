// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x690 implements the symbolic data model for the tag-length-value
// (TLV) family of binary encodings defined in [Rec. ITU-T X.690] (BER and
// DER). See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// This package only defines the types that describe an encoded data value:
// its [Identifier] (class, form and tag number) and its [Content]. Decoding a
// byte stream into a forest of [Node] values is implemented in
// [codello.dev/x690/tlv]; producing the canonical DER octets for a [Value] is
// implemented in [codello.dev/x690/der].
//
// # Nodes and Values
//
// The two codec packages share this model but use different slices of it. The
// decoder produces [Node] trees whose [Content] reflects what was found on
// the wire, including [Raw] payloads for data it does not interpret. The
// encoder consumes [Value] implementations, each of which carries an
// intrinsic identifier and a canonical encoding. The primitive types in this
// package ([Boolean], [Integer], [BitString], ...) belong to both families.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package x690

import (
	"strconv"

	"codello.dev/x690/internal/vlq"
)

//go:generate go tool stringer -type=Class,Form

// Class holds the class part of an identifier. The class acts as a namespace
// for the tag number and is encoded in the two most significant bits of the
// first identifier octet. For details, see Section 8 of Rec. ITU-T X.690.
type Class uint8

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the two class bits.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// Form indicates whether the content octets of a data value are a direct
// representation of the value (primitive) or a concatenation of further
// complete data value encodings (constructed). The form is encoded in bit 6
// of the first identifier octet.
type Form uint8

// Predefined [Form] constants.
const (
	FormPrimitive Form = iota
	FormConstructed
)

// Identifier is the symbolic form of the identifier octets of a data value:
// its class, its form, and its tag number. Tag numbers up to 30 are encoded
// in a single octet; larger tag numbers use the base-128 long form. Tag
// numbers whose long form exceeds four octets are rejected by the decoder in
// [codello.dev/x690/tlv].
type Identifier struct {
	Class     Class
	Form      Form
	TagNumber uint32
}

// EncodedLen returns the number of identifier octets used to encode id.
func (id Identifier) EncodedLen() int {
	if id.TagNumber < 31 {
		return 1
	}
	return 1 + vlq.Len(id.TagNumber)
}

// String returns a string representation of id in a format similar to the one
// used in ASN.1 notation. The tag number is enclosed by square brackets and
// prefixed with the class used. The suffix indicates the form: "/p" for
// primitive, "/c" for constructed.
func (id Identifier) String() string {
	n := strconv.FormatUint(uint64(id.TagNumber), 10)
	var s string
	switch id.Class {
	case ClassUniversal:
		s = "[UNIVERSAL " + n + "]"
	case ClassApplication:
		s = "[APPLICATION " + n + "]"
	case ClassContextSpecific:
		s = "[" + n + "]"
	case ClassPrivate:
		s = "[PRIVATE " + n + "]"
	default:
		panic("unreachable")
	}
	if id.Form == FormConstructed {
		return s + "/c"
	}
	return s + "/p"
}

// These are some tag numbers defined in the [ClassUniversal] namespace. These
// assignments are defined in Rec. ITU-T X.680, Section 8, Table 1.
const (
	TagBoolean         = 1
	TagInteger         = 2
	TagBitString       = 3
	TagOctetString     = 4
	TagNull            = 5
	TagOID             = 6
	TagUTF8String      = 12
	TagSequence        = 16
	TagSet             = 17
	TagPrintableString = 19
	TagIA5String       = 22
	TagUTCTime         = 23
	TagVisibleString   = 26
)
