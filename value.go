// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x690

import (
	"math/big"
	"math/bits"
)

// Content describes the content octets of a parsed data value. Content is
// implemented by the primitive types of this package as well as [Constructed]
// and [Raw]. A nil Content indicates that no content octets have been parsed
// or assigned yet.
type Content interface {
	// ContentLen returns the number of content octets of the canonical DER
	// encoding of the content.
	ContentLen() int

	isContent()
}

// Value describes a data value that can be encoded using the Distinguished
// Encoding Rules. Every Value carries its intrinsic identifier. Values are
// consumed by [codello.dev/x690/der].
type Value interface {
	// Identifier returns the identifier of the value.
	Identifier() Identifier

	// ContentLen returns the number of content octets of the canonical DER
	// encoding of the value.
	ContentLen() int

	isValue()
}

// Boolean represents the ASN.1 BOOLEAN type.
type Boolean bool

func (Boolean) ContentLen() int { return 1 }
func (Boolean) Identifier() Identifier {
	return Identifier{Class: ClassUniversal, Form: FormPrimitive, TagNumber: TagBoolean}
}
func (Boolean) isContent() {}
func (Boolean) isValue()   {}

var bigOne = big.NewInt(1)

// Integer represents the ASN.1 INTEGER type. The size of the value is not
// limited. A nil Int is treated as zero.
type Integer struct {
	*big.Int
}

// NewInteger returns an [Integer] holding v.
func NewInteger(v int64) Integer {
	return Integer{big.NewInt(v)}
}

// Equal reports whether i and o represent the same integer value.
func (i Integer) Equal(o Integer) bool {
	a, b := i.Int, o.Int
	if a == nil {
		a = new(big.Int)
	}
	if b == nil {
		b = new(big.Int)
	}
	return a.Cmp(b) == 0
}

// ContentLen returns the minimal two's-complement width of the integer in
// octets. The minimal width is the smallest number of octets whose sign bit
// faithfully represents the value.
func (i Integer) ContentLen() int {
	n := i.Int
	if n == nil || n.Sign() == 0 {
		return 1
	}
	bl := n.BitLen()
	if n.Sign() < 0 {
		m := new(big.Int).Neg(n)
		bl = m.Sub(m, bigOne).BitLen()
	}
	return bl/8 + 1
}

func (Integer) Identifier() Identifier {
	return Identifier{Class: ClassUniversal, Form: FormPrimitive, TagNumber: TagInteger}
}
func (Integer) isContent() {}
func (Integer) isValue()   {}

// BitString represents the ASN.1 BIT STRING type. The first content octet
// holds the number of unused trailing bits of the final payload octet.
type BitString struct {
	UnusedBits uint8
	Bytes      []byte
}

func (b BitString) ContentLen() int { return 1 + len(b.Bytes) }
func (BitString) Identifier() Identifier {
	return Identifier{Class: ClassUniversal, Form: FormPrimitive, TagNumber: TagBitString}
}
func (BitString) isContent() {}
func (BitString) isValue()   {}

// OctetString represents the ASN.1 OCTET STRING type.
type OctetString []byte

func (o OctetString) ContentLen() int { return len(o) }
func (OctetString) Identifier() Identifier {
	return Identifier{Class: ClassUniversal, Form: FormPrimitive, TagNumber: TagOctetString}
}
func (OctetString) isContent() {}
func (OctetString) isValue()   {}

// UTF8String holds text decoded from the content octets of a primitive data
// value. Invalid UTF-8 sequences are replaced during decoding, so the string
// is always valid UTF-8.
type UTF8String string

func (s UTF8String) ContentLen() int { return len(s) }
func (UTF8String) isContent()        {}

// VisibleString represents the ASN.1 VisibleString type. The encoder does not
// validate that the string stays within the VisibleString repertoire; that is
// the caller's responsibility.
type VisibleString string

func (s VisibleString) ContentLen() int { return len(s) }
func (VisibleString) Identifier() Identifier {
	return Identifier{Class: ClassUniversal, Form: FormPrimitive, TagNumber: TagVisibleString}
}
func (VisibleString) isValue() {}

// Null represents the ASN.1 NULL type. NULL has no content octets.
type Null struct{}

func (Null) ContentLen() int { return 0 }
func (Null) Identifier() Identifier {
	return Identifier{Class: ClassUniversal, Form: FormPrimitive, TagNumber: TagNull}
}
func (Null) isContent() {}
func (Null) isValue()   {}

// Raw holds the verbatim content octets of a data value that the decoder does
// not interpret, i.e. any primitive value outside the [ClassUniversal]
// namespace or with an unrecognized universal tag.
type Raw []byte

func (r Raw) ContentLen() int { return len(r) }
func (Raw) isContent()        {}

// Constructed holds the children of a constructed data value in their on-wire
// order.
type Constructed []*Node

// ContentLen returns the combined serialized size of all children.
func (c Constructed) ContentLen() int {
	n := 0
	for _, child := range c {
		n += child.EncodedLen()
	}
	return n
}
func (Constructed) isContent() {}

// Sequence represents the ASN.1 SEQUENCE type for encoding. Elements are
// encoded in the order given.
type Sequence []Value

// ContentLen returns the combined serialized size of all elements.
func (s Sequence) ContentLen() int {
	n := 0
	for _, e := range s {
		n += encodedSize(e)
	}
	return n
}
func (Sequence) Identifier() Identifier {
	return Identifier{Class: ClassUniversal, Form: FormConstructed, TagNumber: TagSequence}
}
func (Sequence) isValue() {}

// Set represents the ASN.1 SET type for encoding. Elements are encoded in
// ascending order of their tag values as required by DER.
type Set []Value

// ContentLen returns the combined serialized size of all elements.
func (s Set) ContentLen() int {
	n := 0
	for _, e := range s {
		n += encodedSize(e)
	}
	return n
}
func (Set) Identifier() Identifier {
	return Identifier{Class: ClassUniversal, Form: FormConstructed, TagNumber: TagSet}
}
func (Set) isValue() {}

// encodedSize returns the full serialized size of v including its identifier
// and length octets.
func encodedSize(v Value) int {
	cl := v.ContentLen()
	return v.Identifier().EncodedLen() + lengthLen(cl) + cl
}

// lengthLen returns the number of length octets needed to encode the content
// length n in the definite form using the shortest possible encoding.
func lengthLen(n int) int {
	if n < 128 {
		return 1
	}
	return 1 + (bits.Len(uint(n))+7)/8
}

// LengthUnset is the [Node.Length] value of a node whose length octets have
// not been parsed or assigned yet. It is distinct from a length of 0, which
// indicates empty content.
const LengthUnset = -1

// Node is a single parsed tag-length-value triple. Length and Content start
// out unset and are filled in as the corresponding octets are parsed. The
// form of the identifier constrains the content: a primitive node never
// carries [Constructed] content and a constructed node carries nothing else.
type Node struct {
	Identifier Identifier
	Length     int // LengthUnset until the length octets have been parsed
	Content    Content
}

// NewNode returns a node with the given identifier and unset length and
// content.
func NewNode(id Identifier) *Node {
	return &Node{Identifier: id, Length: LengthUnset}
}

// contentLen returns the number of content octets currently held by n.
func (n *Node) contentLen() int {
	if n.Content == nil {
		return 0
	}
	return n.Content.ContentLen()
}

// EncodedLen returns the serialized size of n: identifier octets, length
// octets and content octets. The length octets are derived from the content,
// not from the Length field, so the result reflects the canonical encoding of
// whatever has been assigned to the node so far.
func (n *Node) EncodedLen() int {
	cl := n.contentLen()
	return n.Identifier.EncodedLen() + lengthLen(cl) + cl
}

// LengthLimitReached reports whether the content octets of n cover the length
// announced by its length octets. A node with no length yet has no limit to
// reach. The decoder uses this to decide whether a constructed node can still
// accept children.
func (n *Node) LengthLimitReached() bool {
	if n.Length == LengthUnset {
		return false
	}
	return n.Length == 0 || n.contentLen() >= n.Length
}
