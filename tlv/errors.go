package tlv

import (
	"io"
	"strconv"

	"github.com/pkg/errors"

	"codello.dev/x690"
)

// Fatal parse failures. A fatal error aborts the parse; the partial forest
// built so far is discarded and the caller receives only the error, wrapped
// in a [*ParseError].
var (
	ErrTagOverflow      = errors.New("tlv: tag number exceeds four octets")
	ErrLengthOverflow   = errors.New("tlv: length exceeds four octets")
	ErrIndefiniteLength = errors.New("tlv: indefinite length is not supported")
	ErrMissingOwner     = errors.New("tlv: no open element")
	ErrMissingLength    = errors.New("tlv: element has no length")
	ErrBooleanLength    = errors.New("tlv: boolean content must be a single octet")
	ErrIntegerEmpty     = errors.New("tlv: integer content is empty")
	ErrBitStringEmpty   = errors.New("tlv: bit string content is empty")
)

// ErrNullLength reports NULL content announced with a non-zero length. Unlike
// the fatal errors above it is recoverable: the surplus octets are discarded
// and the error is surfaced as a [Warning] next to the result.
var ErrNullLength = errors.New("tlv: NULL content with non-zero length")

// ParseError is the error type returned by [Parser.Parse]. It carries the
// location of the failure within the input and, if one was open at the time,
// the identifier of the element being parsed.
type ParseError struct {
	Err error // underlying error

	// ByteOffset is the input stream position at which parsing stopped.
	ByteOffset int64

	// Identifier is the identifier of the innermost open element, if any.
	Identifier *x690.Identifier
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Error() string {
	b := []byte("tlv: parse error")
	if e.Identifier != nil {
		b = append(b, " within "...)
		b = append(b, e.Identifier.String()...)
	}
	if e.ByteOffset > 0 {
		b = strconv.AppendInt(append(b, " at offset "...), e.ByteOffset, 10)
	}
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}

// Warning is a recoverable parse problem. Warnings are collected during the
// parse and returned alongside the result instead of aborting it.
type Warning struct {
	// ByteOffset is the input stream position of the offending octets.
	ByteOffset int64

	Err error
}

// String returns a string representation of w.
func (w Warning) String() string {
	return "offset " + strconv.FormatInt(w.ByteOffset, 10) + ": " + w.Err.Error()
}

// noEOF returns err, unless err == io.EOF, in which case it returns io.ErrUnexpectedEOF.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
