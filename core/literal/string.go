package literal

import (
	"strings"
	"unicode"
)

// DecodeString decodes a string literal, splicing adjacent segments.
//
// The raw text may hold several quoted segments separated by whitespace, each
// optionally carrying its own encoding prefix, exactly as the lexer captures
// them: "ab" "c" decodes to abc. Escapes follow the same rules as DecodeChar.
func DecodeString(raw string) (string, bool) {
	text := strings.TrimRightFunc(raw, unicode.IsSpace)
	body, ok := unquote(stripStringPrefix(text), '"')
	if !ok {
		return "", false
	}

	var out strings.Builder
	out.Grow(len(body))

	d := decoder{segmented: true, emit: func(r rune) {
		out.WriteRune(r)
	}}

	for _, r := range body {
		if !d.step(r) {
			return "", false
		}
	}
	if !d.finish() {
		return "", false
	}

	return out.String(), true
}
