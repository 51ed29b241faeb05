package tlv

import (
	"bufio"
	"bytes"
	"io"
)

// source is the byte stream abstraction of the decoder: a position-indexed
// byte reader that can peek at the next octet without consuming it. The
// position is a plain stream index used for diagnostics.
type source struct {
	r      io.Reader
	br     io.ByteReader
	off    int64
	peeked bool
	head   byte
}

// newSource creates a source reading from r. If r does not implement
// [io.ByteReader], the source does its own buffering.
func newSource(r io.Reader) *source {
	br, ok := r.(io.ByteReader)
	if !ok {
		buf := bufio.NewReader(r)
		r, br = buf, buf
	}
	return &source{r: r, br: br}
}

// Peek returns the next octet without consuming it. At the end of the input
// Peek returns [io.EOF].
func (s *source) Peek() (byte, error) {
	if !s.peeked {
		b, err := s.br.ReadByte()
		if err != nil {
			return 0, err
		}
		s.head = b
		s.peeked = true
	}
	return s.head, nil
}

// ReadByte implements [io.ByteReader]. It consumes and returns the next octet
// and advances the stream position.
func (s *source) ReadByte() (byte, error) {
	if s.peeked {
		s.peeked = false
		s.off++
		return s.head, nil
	}
	b, err := s.br.ReadByte()
	if err != nil {
		return 0, err
	}
	s.off++
	return b, nil
}

// Offset returns the stream index of the next unconsumed octet.
func (s *source) Offset() int64 { return s.off }

// Rest returns a reader over the unconsumed remainder of the input, including
// any octet currently held by Peek.
func (s *source) Rest() io.Reader {
	if s.peeked {
		s.peeked = false
		return io.MultiReader(bytes.NewReader([]byte{s.head}), s.r)
	}
	return s.r
}
