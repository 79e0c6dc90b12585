package shellwords

import (
	"errors"
	"fmt"
)

// Parse errors. Failures carry position information through *ParseError,
// which unwraps to one of these sentinels so callers can match with
// errors.Is.
var (
	// ErrUnterminatedQuote indicates input ended inside a quoted span.
	ErrUnterminatedQuote = errors.New("unterminated quote")

	// ErrUnterminatedEscape indicates input ended with a lone backslash.
	ErrUnterminatedEscape = errors.New("unterminated escape")

	// ErrInvalidEscape indicates a backslash sequence that is not part of
	// the recognized escape table.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrOctalOverflow indicates an octal escape whose value does not fit
	// in a single byte.
	ErrOctalOverflow = errors.New("octal escape exceeds one byte")
)

// ParseError describes a tokenization failure at a byte offset within the
// input.
type ParseError struct {
	// Err is the sentinel classifying the failure.
	Err error

	// Offset is the byte offset of the failing construct (for escape
	// failures, the offset of the introducing backslash; for quote
	// failures, the offset of the opening quote).
	Offset int

	// Char names the offending character, when one exists (the unknown
	// escape character, or the unmatched quote). Zero otherwise.
	Char rune

	// Detail carries extra context, such as the rejected code point of a
	// unicode escape.
	Detail string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	if e.Char != 0 {
		msg = fmt.Sprintf("%v %q at offset %d", e.Err, e.Char, e.Offset)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Incomplete reports whether err means the input could still be completed
// by another physical line: an open quote or a trailing backslash. A line
// source can use it to extend the current logical line instead of failing.
func Incomplete(err error) bool {
	return errors.Is(err, ErrUnterminatedQuote) || errors.Is(err, ErrUnterminatedEscape)
}
