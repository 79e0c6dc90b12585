package shellwords

// quoting mode of the tokenizer state machine.
type quoteState uint8

const (
	unquoted quoteState = iota
	singleQuoted
	doubleQuoted
)

// SplitLine splits a raw line into words.
//
// Unquoted whitespace (space, tab, CR, LF) separates words. Single quotes
// make everything literal until the matching quote. Double quotes and
// unquoted text resolve the escape table documented on ParseArg. Adjacent
// quoted and unquoted fragments with no whitespace between them concatenate
// into a single word, and empty quotes still produce an empty word. An
// unquoted # at a word boundary comments out the rest of the input. A
// backslash directly before a newline is a line continuation: both
// characters are discarded, so a multi-line logical line can be passed as
// one string with embedded newlines.
//
// Tokenization is all-or-nothing: on any parse failure no words are
// returned. The error unwraps to one of the package sentinels and carries
// the byte offset of the failure.
func SplitLine(line string) ([]string, error) {
	var words []string
	var cur []byte
	inWord := false
	state := unquoted
	quoteStart := 0
	quoteChar := byte(0)

	i := 0
scan:
	for i < len(line) {
		c := line[i]
		switch state {
		case unquoted:
			switch c {
			case ' ', '\t', '\n', '\r':
				if inWord {
					words = append(words, string(cur))
					cur = cur[:0]
					inWord = false
				}
				i++
			case '\'':
				state = singleQuoted
				quoteStart = i
				quoteChar = c
				inWord = true
				i++
			case '"':
				state = doubleQuoted
				quoteStart = i
				quoteChar = c
				inWord = true
				i++
			case '#':
				if !inWord {
					// Comment consumes the remainder of the input.
					break scan
				}
				cur = append(cur, c)
				i++
			case '\\':
				inWord = true
				var err error
				cur, i, err = appendEscape(cur, line, i)
				if err != nil {
					return nil, err
				}
			default:
				cur = append(cur, c)
				inWord = true
				i++
			}

		case singleQuoted:
			if c == '\'' {
				state = unquoted
			} else {
				cur = append(cur, c)
			}
			i++

		case doubleQuoted:
			switch c {
			case '"':
				state = unquoted
				i++
			case '\\':
				var err error
				cur, i, err = appendEscape(cur, line, i)
				if err != nil {
					return nil, err
				}
			default:
				cur = append(cur, c)
				i++
			}
		}
	}

	if state != unquoted {
		return nil, &ParseError{
			Err:    ErrUnterminatedQuote,
			Offset: quoteStart,
			Char:   rune(quoteChar),
		}
	}
	if inWord {
		words = append(words, string(cur))
	}
	return words, nil
}
