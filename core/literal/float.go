package literal

import (
	"errors"
	"strconv"
	"strings"
	"unsafe"
)

// Float is the set of floating-point types DecodeFloat can target
type Float interface {
	~float32 | ~float64
}

// IsHexFloat reports whether raw is spelled as a hexadecimal floating literal
// (0x1.4p3). DecodeFloat does not compute those values; callers that need them
// must detect the spelling with this function.
func IsHexFloat(raw string) bool {
	text := strings.TrimLeft(raw, "+-")
	return len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

// DecodeFloat decodes a decimal floating literal into T after stripping any
// f, F, l or L suffix. Values out of T's range decode to ±Inf.
func DecodeFloat[T Float](raw string) (T, bool) {
	var zero T
	if IsHexFloat(raw) {
		return zero, false
	}

	text := strings.TrimRight(raw, "fFlL")
	if text == "" || strings.IndexFunc(text, notDecimalFloatChar) >= 0 {
		return zero, false
	}

	bits := int(unsafe.Sizeof(zero)) * 8
	v, err := strconv.ParseFloat(text, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return zero, false
	}
	return T(v), true
}

// notDecimalFloatChar keeps words like inf and nan out of the decoder
func notDecimalFloatChar(r rune) bool {
	switch {
	case '0' <= r && r <= '9':
		return false
	case r == '.', r == 'e', r == 'E', r == '+', r == '-':
		return false
	}
	return true
}
