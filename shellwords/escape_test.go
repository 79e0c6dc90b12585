package shellwords

import (
	"errors"
	"testing"
)

func TestParseArgSimpleEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`\a`, "\x07"},
		{`\b`, "\x08"},
		{`\e`, "\x1b"},
		{`\E`, "\x1b"},
		{`\f`, "\x0c"},
		{`\n`, "\n"},
		{`\r`, "\r"},
		{`\t`, "\t"},
		{`\v`, "\x0b"},
		{`\\`, `\`},
		{`\'`, `'`},
		{`\"`, `"`},
		{`\$`, `$`},
		{"\\`", "`"},
		{`\ `, " "},
	}

	for _, tt := range tests {
		got, err := ParseArg(tt.in)
		if err != nil {
			t.Errorf("ParseArg(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArg(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseArgPlainText(t *testing.T) {
	tests := []string{
		"",
		"hello world",
		"no escapes at all",
		"unicode passes through: héllo 🦀",
	}

	for _, in := range tests {
		got, err := ParseArg(in)
		if err != nil {
			t.Errorf("ParseArg(%q) error = %v", in, err)
			continue
		}
		if got != in {
			t.Errorf("ParseArg(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestParseArgHexEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`\x41\x42\x43`, "ABC"},
		{`\xA`, "\n"}, // single digit
		{`\x41B`, "AB"},
		{`\xFF`, "\xff"},             // raw byte, not valid UTF-8
		{`\x80\xFE\xFF`, "\x80\xfe\xff"},
		{`\x00`, "\x00"},
	}

	for _, tt := range tests {
		got, err := ParseArg(tt.in)
		if err != nil {
			t.Errorf("ParseArg(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArg(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseArgHexEscapeNoDigits(t *testing.T) {
	for _, in := range []string{`\x`, `\xZZ`, `\xg1`} {
		_, err := ParseArg(in)
		if !errors.Is(err, ErrInvalidEscape) {
			t.Errorf("ParseArg(%q) error = %v, want ErrInvalidEscape", in, err)
		}
	}
}

func TestParseArgUnicodeEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`\u{41}`, "A"},
		{`\u{48}\u{65}\u{6c}\u{6c}\u{6f}`, "Hello"},
		{`\u{e9}`, "é"},
		{`\u{1f980}`, "🦀"},
		{`\u{0}`, "\x00"},
	}

	for _, tt := range tests {
		got, err := ParseArg(tt.in)
		if err != nil {
			t.Errorf("ParseArg(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArg(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseArgUnicodeEscapeFailures(t *testing.T) {
	tests := []string{
		"\\u0041", // missing braces
		`\u{}`,        // empty braces
		`\u{1234567}`, // more than 6 digits
		`\u{12`,       // unterminated
		`\u{12z}`,     // non-hex digit
		`\u{D800}`,    // surrogate, not a scalar value
		`\u{110000}`,  // above the Unicode range
	}

	for _, in := range tests {
		_, err := ParseArg(in)
		if !errors.Is(err, ErrInvalidEscape) {
			t.Errorf("ParseArg(%q) error = %v, want ErrInvalidEscape", in, err)
		}
	}
}

func TestParseArgOctalEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`\0101`, "A"},      // 0101 octal = 65
		{`\0377`, "\xff"},   // maximum byte
		{`\0`, "\x00"},      // bare NUL
		{`\00`, "\x00"},
		{`\01011`, "A1"},    // only 3 digits consumed
	}

	for _, tt := range tests {
		got, err := ParseArg(tt.in)
		if err != nil {
			t.Errorf("ParseArg(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArg(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseArgOctalOverflow(t *testing.T) {
	// Historical regression: values above one byte must be rejected, never
	// silently wrapped.
	for _, in := range []string{`\0400`, `\0777`, `\0555`} {
		_, err := ParseArg(in)
		if !errors.Is(err, ErrOctalOverflow) {
			t.Errorf("ParseArg(%q) error = %v, want ErrOctalOverflow", in, err)
		}
	}
}

func TestParseArgUnknownEscape(t *testing.T) {
	_, err := ParseArg(`\z`)
	if !errors.Is(err, ErrInvalidEscape) {
		t.Fatalf("ParseArg(`\\z`) error = %v, want ErrInvalidEscape", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseArg(`\\z`) error type = %T, want *ParseError", err)
	}
	if perr.Char != 'z' {
		t.Errorf("ParseError.Char = %q, want 'z'", perr.Char)
	}
	if perr.Offset != 0 {
		t.Errorf("ParseError.Offset = %d, want 0", perr.Offset)
	}
}

func TestParseArgTrailingBackslash(t *testing.T) {
	_, err := ParseArg(`hello\`)
	if !errors.Is(err, ErrUnterminatedEscape) {
		t.Fatalf("error = %v, want ErrUnterminatedEscape", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Offset != 5 {
		t.Errorf("ParseError.Offset = %d, want 5", perr.Offset)
	}
}

func TestParseArgLineContinuation(t *testing.T) {
	got, err := ParseArg("hello\\\nworld")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if got != "helloworld" {
		t.Errorf("got %q, want %q", got, "helloworld")
	}
}

func TestParseArgEscapeOffsetMidInput(t *testing.T) {
	_, err := ParseArg(`abc\q`)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Offset != 3 {
		t.Errorf("ParseError.Offset = %d, want 3", perr.Offset)
	}
}
