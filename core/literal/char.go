package literal

import (
	"strings"
	"unicode"
)

// DecodeChar decodes a character literal such as 'a', '\n', L'\x41' or
// U'\U0001F600' to the single character it denotes.
//
// The literal must denote exactly one character: empty literals, literals
// with trailing characters and literals ending inside an escape all fail.
func DecodeChar(raw string) (rune, bool) {
	text := strings.TrimRightFunc(raw, unicode.IsSpace)
	body, ok := unquote(stripCharPrefix(text), '\'')
	if !ok {
		return 0, false
	}

	var (
		out   rune
		count int
	)
	d := decoder{emit: func(r rune) {
		out = r
		count++
	}}

	for _, r := range body {
		if count > 0 && d.st.mode == modeBody {
			return 0, false
		}
		if !d.step(r) || count > 1 {
			return 0, false
		}
	}
	if !d.finish() || count != 1 {
		return 0, false
	}

	return out, true
}
