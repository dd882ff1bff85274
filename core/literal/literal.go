// Package literal decodes the values carried by C lexemes.
//
// Every decoder takes the raw token text exactly as the lexer sliced it and
// returns (value, true) on success or (zero, false) when the text cannot be
// decoded. Decoders never panic, never allocate state that outlives the call,
// and never return a value aliasing the input.
//
// Supported decoders:
//   - DecodeComment: line and block comment bodies
//   - DecodeChar:    character literals, one logical character
//   - DecodeString:  string literals, with adjacent-segment concatenation
//   - DecodeInt:     integer literals into any builtin integer type
//   - DecodeWide:    integer literals of arbitrary width (128-bit and up)
//   - DecodeU256:    integer literals into a 256-bit unsigned integer
//   - DecodeFloat:   decimal floating literals into float32 or float64
package literal

// Encoding identifies the encoding prefix of a character or string literal
type Encoding uint8

const (
	EncodingNone  Encoding = iota // 'a' or "a"
	EncodingWide                  // L'a' or L"a"
	EncodingUTF16                 // u'a' or u"a"
	EncodingUTF32                 // U'a' or U"a"
	EncodingUTF8                  // u8"a"
)

var encodingNames = [...]string{
	EncodingNone:  "none",
	EncodingWide:  "wide",
	EncodingUTF16: "utf16",
	EncodingUTF32: "utf32",
	EncodingUTF8:  "utf8",
}

func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return "unknown"
}

// Prefix returns the source spelling of the encoding prefix
func (e Encoding) Prefix() string {
	switch e {
	case EncodingWide:
		return "L"
	case EncodingUTF16:
		return "u"
	case EncodingUTF32:
		return "U"
	case EncodingUTF8:
		return "u8"
	default:
		return ""
	}
}

// EncodingOf reports the encoding prefix of a raw character or string literal.
// The prefix never changes what the decoders return; it is exposed so callers
// that care about code unit width can act on it.
func EncodingOf(raw string) Encoding {
	if len(raw) == 0 {
		return EncodingNone
	}
	switch raw[0] {
	case 'L':
		return EncodingWide
	case 'U':
		return EncodingUTF32
	case 'u':
		if len(raw) > 2 && raw[1] == '8' && raw[2] == '"' {
			return EncodingUTF8
		}
		return EncodingUTF16
	}
	return EncodingNone
}

// stripCharPrefix removes one of the L, u, U prefixes
func stripCharPrefix(text string) string {
	if len(text) > 0 && (text[0] == 'L' || text[0] == 'u' || text[0] == 'U') {
		return text[1:]
	}
	return text
}

// stripStringPrefix removes one of the L, u, u8, U prefixes
func stripStringPrefix(text string) string {
	if len(text) == 0 {
		return text
	}
	switch text[0] {
	case 'L', 'U':
		return text[1:]
	case 'u':
		text = text[1:]
		if len(text) > 0 && text[0] == '8' {
			return text[1:]
		}
		return text
	}
	return text
}

// unquote returns the text between matching outer quotes
func unquote(text string, quote byte) (string, bool) {
	if len(text) < 2 || text[0] != quote || text[len(text)-1] != quote {
		return "", false
	}
	return text[1 : len(text)-1], true
}
