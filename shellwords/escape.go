package shellwords

import (
	"fmt"
	"unicode/utf8"
)

// ParseArg resolves escape sequences in a single argument and returns the
// literal result. Quotes are not delimiters here; the whole input is one
// value. Recognized escapes, longest match after each backslash:
//
//	\a \b \e \E \f \n \r \t \v   control characters
//	\\ \' \" \$ \` and \ (space) the literal character
//	\xHH                         one raw byte, 1-2 hex digits
//	\u{H..H}                     one Unicode scalar, 1-6 hex digits
//	\0ooo                        one byte, up to 3 octal digits (max 255)
//	\ followed by a newline      line continuation, both discarded
//
// The result may contain arbitrary bytes (\xFF is the single byte 0xFF).
// Any other sequence fails with ErrInvalidEscape naming the offending
// character; a trailing lone backslash fails with ErrUnterminatedEscape.
// Empty input yields an empty result.
func ParseArg(input string) (string, error) {
	var out []byte
	for i := 0; i < len(input); {
		c := input[i]
		if c != '\\' {
			// Plain bytes, ASCII or not, pass through untouched. This is
			// the hot path: no rune decoding happens outside escapes.
			out = append(out, c)
			i++
			continue
		}
		var err error
		out, i, err = appendEscape(out, input, i)
		if err != nil {
			return "", err
		}
	}
	return string(out), nil
}

// appendEscape resolves one escape sequence starting at the backslash at
// input[i]. It returns the extended output and the index of the first byte
// after the sequence.
func appendEscape(out []byte, input string, i int) ([]byte, int, error) {
	start := i
	i++ // consume the backslash
	if i >= len(input) {
		return nil, 0, &ParseError{Err: ErrUnterminatedEscape, Offset: start}
	}
	c := input[i]
	i++

	switch c {
	case 'a':
		out = append(out, 0x07)
	case 'b':
		out = append(out, 0x08)
	case 'e', 'E':
		out = append(out, 0x1B)
	case 'f':
		out = append(out, 0x0C)
	case 'n':
		out = append(out, '\n')
	case 'r':
		out = append(out, '\r')
	case 't':
		out = append(out, '\t')
	case 'v':
		out = append(out, 0x0B)
	case '\\', '\'', '"', '$', '`', ' ':
		out = append(out, c)

	case '\n':
		// Line continuation: backslash and newline both vanish.

	case '0':
		// Up to 3 octal digits. Values above one byte are rejected, never
		// wrapped.
		v := 0
		for n := 0; n < 3 && i < len(input) && input[i] >= '0' && input[i] <= '7'; n++ {
			v = v*8 + int(input[i]-'0')
			i++
		}
		if v > 0xFF {
			return nil, 0, &ParseError{
				Err:    ErrOctalOverflow,
				Offset: start,
				Detail: fmt.Sprintf("value %d is outside 0-255", v),
			}
		}
		out = append(out, byte(v))

	case 'x':
		v := 0
		n := 0
		for ; n < 2 && i < len(input); n++ {
			d, ok := hexDigit(input[i])
			if !ok {
				break
			}
			v = v<<4 | d
			i++
		}
		if n == 0 {
			return nil, 0, &ParseError{
				Err:    ErrInvalidEscape,
				Offset: start,
				Char:   'x',
				Detail: "expected 1-2 hex digits",
			}
		}
		out = append(out, byte(v))

	case 'u':
		r, next, err := parseUnicodeEscape(input, start, i)
		if err != nil {
			return nil, 0, err
		}
		out = utf8.AppendRune(out, r)
		i = next

	default:
		r, _ := utf8.DecodeRuneInString(input[i-1:])
		return nil, 0, &ParseError{Err: ErrInvalidEscape, Offset: start, Char: r}
	}

	return out, i, nil
}

// parseUnicodeEscape consumes the {H..H} part of a \u escape. i points just
// past the 'u'; start is the offset of the backslash.
func parseUnicodeEscape(input string, start, i int) (rune, int, error) {
	if i >= len(input) || input[i] != '{' {
		return 0, 0, &ParseError{
			Err:    ErrInvalidEscape,
			Offset: start,
			Char:   'u',
			Detail: "expected { after \\u",
		}
	}
	i++

	v := 0
	n := 0
	for {
		if i >= len(input) {
			return 0, 0, &ParseError{
				Err:    ErrInvalidEscape,
				Offset: start,
				Char:   'u',
				Detail: "unterminated \\u{...} escape",
			}
		}
		if input[i] == '}' {
			i++
			break
		}
		d, ok := hexDigit(input[i])
		if !ok {
			r, _ := utf8.DecodeRuneInString(input[i:])
			return 0, 0, &ParseError{Err: ErrInvalidEscape, Offset: start, Char: r}
		}
		n++
		if n > 6 {
			return 0, 0, &ParseError{
				Err:    ErrInvalidEscape,
				Offset: start,
				Char:   'u',
				Detail: "more than 6 hex digits",
			}
		}
		v = v<<4 | d
		i++
	}
	if n == 0 {
		return 0, 0, &ParseError{
			Err:    ErrInvalidEscape,
			Offset: start,
			Char:   'u',
			Detail: "empty \\u{} escape",
		}
	}
	if !utf8.ValidRune(rune(v)) {
		return 0, 0, &ParseError{
			Err:    ErrInvalidEscape,
			Offset: start,
			Char:   'u',
			Detail: fmt.Sprintf("U+%04X is not a valid scalar value", v),
		}
	}
	return rune(v), i, nil
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
