// Package tlv implements streaming decoding of the tag-length-value (TLV)
// format used by the Basic Encoding Rules (BER) and the Distinguished
// Encoding Rules (DER) as specified in [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// The [Parser] type consumes a byte stream and produces a forest of
// [x690.Node] values, one per top-level TLV, with constructed elements
// carrying their children as nested nodes. Recoverable problems do not abort
// the parse; they are reported as [Warning] values next to the result.
//
// The decoder handles the definite-length subset common to BER and DER.
// Indefinite-length constructed encodings are rejected, as are tag numbers
// and lengths whose encodings exceed four octets.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package tlv

import (
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"codello.dev/x690"
	"codello.dev/x690/internal/vlq"
)

// state identifies the decoder's position in the TLV grammar. The parser
// moves through identifier, length and content octets and returns to
// stateInitial between complete elements.
type state uint8

const (
	stateInitial state = iota
	stateIdentifier
	stateLength
	stateContent
	stateFinished
)

// Parser is a streaming decoder for TLV-encoded data. It reads the input one
// octet at a time and owns its byte source exclusively for the duration of
// the parse. A Parser is not safe for concurrent use.
type Parser struct {
	src  *source
	st   state
	out  *Builder
	errs collector
}

// NewParser creates a new Parser reading from r. If r does not implement
// [io.ByteReader], the Parser will do its own buffering.
func NewParser(r io.Reader) *Parser {
	return &Parser{src: newSource(r), out: NewBuilder()}
}

// Parse decodes all TLVs from r until the input is exhausted. It returns the
// parsed forest in stream order together with any recoverable warnings. If
// the input is malformed, a [*ParseError] is returned instead and the partial
// forest is discarded.
func Parse(r io.Reader) ([]*x690.Node, []Warning, error) {
	return NewParser(r).Parse()
}

// Parse runs the decoder until the input is exhausted and returns the parsed
// forest in stream order together with any recoverable warnings. If the input
// is malformed, a [*ParseError] is returned and the partial forest is
// discarded.
//
// Parse consumes the Parser; it must be called at most once.
func (p *Parser) Parse() ([]*x690.Node, []Warning, error) {
	for p.st != stateFinished {
		if err := p.step(); err != nil {
			perr := &ParseError{Err: err, ByteOffset: p.src.Offset()}
			if n := p.out.Current(); n != nil {
				id := n.Identifier
				perr.Identifier = &id
			}
			return nil, nil, perr
		}
	}
	return p.out.TakeResults(), p.errs.take(), nil
}

// InputOffset returns the current input byte offset, i.e. the number of
// octets consumed so far.
func (p *Parser) InputOffset() int64 { return p.src.Offset() }

// Rest returns a reader over the unconsumed remainder of the input. On a
// clean parse the remainder is empty; if the caller bounded the input, Rest
// picks up where the bound was reached.
func (p *Parser) Rest() io.Reader { return p.src.Rest() }

// step performs a single state transition, consuming the octets that belong
// to the current state.
func (p *Parser) step() error {
	switch p.st {
	case stateInitial:
		if _, err := p.src.Peek(); err == io.EOF {
			p.st = stateFinished
			return nil
		} else if err != nil {
			return errors.Wrap(err, "tlv: read")
		}
		p.st = stateIdentifier
	case stateIdentifier:
		return p.parseIdentifier()
	case stateLength:
		return p.parseLength()
	case stateContent:
		return p.parseContent()
	}
	return nil
}

// parseIdentifier consumes the identifier octets of the next element and
// hands the identifier to the builder.
func (p *Parser) parseIdentifier() error {
	b, err := p.src.ReadByte()
	if err != nil {
		return noEOF(err)
	}
	id := x690.Identifier{
		Class:     x690.Class(b >> 6),
		Form:      x690.FormPrimitive,
		TagNumber: uint32(b & 0x1f),
	}
	if b&0x20 != 0 {
		id.Form = x690.FormConstructed
	}

	// If the bottom five bits are set, the tag number is base-128 encoded in
	// the following octets.
	if id.TagNumber == 0x1f {
		n, err := vlq.Read(p.src, 4)
		if err != nil {
			if errors.Is(err, vlq.ErrTooLong) {
				return ErrTagOverflow
			}
			return noEOF(err)
		}
		id.TagNumber = n
	}

	p.out.AddIdentifier(id)
	p.st = stateLength
	return nil
}

// parseLength consumes the length octets of the current element. An element
// with length zero is complete; otherwise its content octets follow.
func (p *Parser) parseLength() error {
	b, err := p.src.ReadByte()
	if err != nil {
		return noEOF(err)
	}
	var length int
	switch {
	case b&0x80 == 0:
		// The length is encoded in the bottom 7 bits.
		length = int(b & 0x7f)
	case b == 0x80:
		return ErrIndefiniteLength
	default:
		// Bottom 7 bits give the number of length octets to follow.
		n := int(b & 0x7f)
		if n > 4 {
			return errors.Wrapf(ErrLengthOverflow, "%d length octets", n)
		}
		var v uint64
		for ; n > 0; n-- {
			if b, err = p.src.ReadByte(); err != nil {
				return noEOF(err)
			}
			v = v<<8 | uint64(b)
		}
		if v > uint64(math.MaxInt) {
			return ErrLengthOverflow
		}
		length = int(v)
	}

	if err := p.out.AddLength(length); err != nil {
		return err
	}
	if length == 0 {
		p.st = stateInitial
	} else {
		p.st = stateContent
	}
	return nil
}

// parseContent consumes the content octets of the current element. For
// constructed elements nothing is consumed here; the children are parsed as
// regular elements and the builder attaches them to the open ancestor.
func (p *Parser) parseContent() error {
	cur := p.out.Current()
	if cur == nil {
		return ErrMissingOwner
	}
	if cur.Length == x690.LengthUnset {
		return ErrMissingLength
	}
	if cur.Identifier.Form == x690.FormConstructed {
		p.st = stateIdentifier
		return nil
	}

	content, err := p.primitiveContent(cur.Identifier, cur.Length)
	if err != nil {
		return err
	}
	if err := p.out.AddContent(content); err != nil {
		return err
	}
	p.st = stateInitial
	return nil
}

// primitiveContent consumes length content octets and decodes them according
// to the universal tag of id. Unrecognized tags and non-universal classes
// yield the verbatim octets as [x690.Raw].
func (p *Parser) primitiveContent(id x690.Identifier, length int) (x690.Content, error) {
	if id.Class != x690.ClassUniversal {
		raw, err := p.take(length)
		if err != nil {
			return nil, err
		}
		return x690.Raw(raw), nil
	}
	switch id.TagNumber {
	case x690.TagBoolean:
		if length != 1 {
			return nil, errors.Wrapf(ErrBooleanLength, "length %d", length)
		}
		b, err := p.src.ReadByte()
		if err != nil {
			return nil, noEOF(err)
		}
		// 0xFF is true and 0x00 is false; any other non-zero octet is
		// accepted as true.
		return x690.Boolean(b != 0), nil

	case x690.TagInteger:
		if length < 1 {
			return nil, ErrIntegerEmpty
		}
		buf, err := p.take(length)
		if err != nil {
			return nil, err
		}
		return x690.Integer{Int: bigFromTwosComplement(buf)}, nil

	case x690.TagBitString:
		if length < 1 {
			return nil, ErrBitStringEmpty
		}
		unused, err := p.src.ReadByte()
		if err != nil {
			return nil, noEOF(err)
		}
		buf, err := p.take(length - 1)
		if err != nil {
			return nil, err
		}
		return x690.BitString{UnusedBits: unused, Bytes: buf}, nil

	case x690.TagOctetString:
		// [UNIVERSAL 4] content is exposed as text; invalid UTF-8 sequences
		// decode lossily.
		buf, err := p.take(length)
		if err != nil {
			return nil, err
		}
		return x690.UTF8String(strings.ToValidUTF8(string(buf), "�")), nil

	case x690.TagNull:
		// length is never zero here; zero-length elements complete in
		// parseLength. The surplus octets are discarded.
		p.errs.add(p.src.Offset(), errors.Wrapf(ErrNullLength, "length %d", length))
		if _, err := p.take(length); err != nil {
			return nil, err
		}
		return x690.Null{}, nil

	default:
		buf, err := p.take(length)
		if err != nil {
			return nil, err
		}
		return x690.Raw(buf), nil
	}
}

// take consumes and returns the next n octets.
func (p *Parser) take(n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := range buf {
		b, err := p.src.ReadByte()
		if err != nil {
			return nil, noEOF(err)
		}
		buf[i] = b
	}
	return buf, nil
}

var bigOne = big.NewInt(1)

// bigFromTwosComplement interprets bs as a big-endian two's-complement signed
// integer.
func bigFromTwosComplement(bs []byte) *big.Int {
	n := new(big.Int).SetBytes(bs)
	if len(bs) > 0 && bs[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(bigOne, uint(len(bs))*8))
	}
	return n
}
