package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single", `"abc de f"`, "abc de f"},
		{"trailing_whitespace", "\"abc def\"\r\n ", "abc def"},
		{"empty", `""`, ""},
		{"escaped_slash", `"abc \\de f"`, "abc \\de f"},
		{"escaped_newline", `"abc \nde f"`, "abc \nde f"},
		{"escaped_escape", `"abc \ede f"`, "abc \x1bde f"},
		{"escaped_quote", `"say \"hi\""`, `say "hi"`},
		{"escaped_null", `"abc\0de"`, "abc\x00de"},
		{"escaped_null_space", `"abc \0 f"`, "abc \x00 f"},
		{"oct_1", `"\01 de"`, "\x01 de"},
		{"oct_newline", `"\012f"`, "\nf"},
		{"oct_bell", `"\007 f"`, "\x07 f"},
		{"oct_three_digits_then_digit", `"\1011"`, "A1"},
		{"oct_truncated_to_byte", `"\777"`, "\u00ff"},
		{"hex_then_letter", `"\x0h "`, "\x00h "},
		{"hex_one_digit", `" \xa "`, " \x0a "},
		{"hex_upper", `"\xA1 "`, "\u00a1 "},
		{"hex_width_two", `" \xa00 "`, " \u00a00 "},
		{"hex_at_end", `" \xa"`, " \x0a"},
		{"uni_then_letter", `" \u0h "`, " \x00h "},
		{"uni_one_digit", `"\ua "`, "\x0a "},
		{"uni_one_digit_at_end", `"\ua"`, "\x0a"},
		{"uni_two_digits", `"\uA1 "`, "\u00a1 "},
		{"uni_width_four", `"\uabc70 "`, "\uabc70 "},
		{"uni_at_end", `"\uabc7"`, "\uabc7"},
		{"uni32_five_digits", `"\Uabc70 "`, "\U000abc70 "},
		{"uni32_max", `"\U10ffff "`, "\U0010ffff "},
		{"uni_surrogate_is_nul", `"\ud800!"`, "\x00!"},
		{"wide_prefix", `L"abc"`, "abc"},
		{"utf8_prefix", `u8"abc"`, "abc"},
		{"utf16_prefix", `u"abc"`, "abc"},
		{"utf32_prefix", `U"abc"`, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeString(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeStringConcatenation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"adjacent", `"ab""c"`, "abc"},
		{"spaced", "\"ab\" \"c\"\t \"def\"", "abcdef"},
		{"crlf", "\"ab\"\r\n\"c\"\n ", "abc"},
		{"prefixed_segments", `L"a" u8"b" U"c" u"d"`, "abcd"},
		{"escape_in_second", `"a" "\x41"`, "aA"},
		{"empty_segments", `"" "x" ""`, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeString(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Decoding a spliced literal equals splicing the decoded segments
func TestDecodeStringConcatenationMatchesSegments(t *testing.T) {
	segments := []string{`"ab"`, `"c"`, `"\x41\n"`, `"\101"`, `"é"`, `""`}

	for _, a := range segments {
		for _, b := range segments {
			left, ok := DecodeString(a)
			assert.True(t, ok, a)
			right, ok := DecodeString(b)
			assert.True(t, ok, b)

			joined, ok := DecodeString(a + " \n\t" + b)
			assert.True(t, ok, a+b)
			assert.Equal(t, left+right, joined, a+" "+b)
		}
	}
}

func TestDecodeStringRejects(t *testing.T) {
	for _, input := range []string{
		"abc de f",
		"\"abc de fg",
		"abc de fg\"",
		"abc \\",
		"abc\\x",
		"abc\\u",
		"abc\\U",
		`"`,
		`"abc\"`,
		`"\x"`,
		`"\u"`,
		`"\Ug"`,
		`"\xg"`,
		`"a" x "b"`,
		`"a" u9"b"`,
		`"a" uu"b"`,
		`'a'`,
	} {
		t.Run(input, func(t *testing.T) {
			_, ok := DecodeString(input)
			assert.False(t, ok)
		})
	}
}
