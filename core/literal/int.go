package literal

import (
	"math/big"
	"strconv"
	"strings"
	"unsafe"

	"github.com/holiman/uint256"
)

// Integer is the set of builtin integer types DecodeInt can target
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// splitInt strips the integer suffix and radix prefix from a raw literal and
// returns the remaining digits with the radix they are written in.
//
//	0x1fUL -> "1f", 16
//	0b101  -> "101", 2
//	0755   -> "755", 8
//	0      -> "0", 10
//	42ll   -> "42", 10
func splitInt(raw string) (string, int) {
	text := strings.TrimRight(raw, "uUlL")

	if len(text) >= 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			return text[2:], 16
		case 'b', 'B':
			return text[2:], 2
		}
	}
	if text != "0" {
		if rest, ok := strings.CutPrefix(text, "0"); ok {
			return rest, 8
		}
	}
	return text, 10
}

// DecodeInt decodes an integer literal into T. It fails on digits invalid for
// the literal's radix and on values that do not fit T.
//
//	v, ok := literal.DecodeInt[uint16]("0x1a9bU") // 0x1a9b, true
//	_, ok = literal.DecodeInt[int8]("0x80")       // 0, false
func DecodeInt[T Integer](raw string) (T, bool) {
	digits, radix := splitInt(raw)

	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8

	if ^zero < 0 {
		v, err := strconv.ParseInt(digits, radix, bits)
		if err != nil {
			return zero, false
		}
		return T(v), true
	}

	v, err := strconv.ParseUint(digits, radix, bits)
	if err != nil {
		return zero, false
	}
	return T(v), true
}

// DecodeWide decodes an integer literal of any bit width, for targets wider
// than the builtin types (128-bit C extensions and up). The result must fit a
// two's complement integer of the given width when signed is true, or an
// unsigned one otherwise.
func DecodeWide(raw string, bits int, signed bool) (*big.Int, bool) {
	if bits <= 0 {
		return nil, false
	}

	digits, radix := splitInt(raw)
	if digits == "" || strings.ContainsRune(digits, '_') {
		return nil, false
	}

	v, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return nil, false
	}

	if signed {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		if v.Cmp(limit) >= 0 || v.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, false
		}
		return v, true
	}

	if v.Sign() < 0 || v.BitLen() > bits {
		return nil, false
	}
	return v, true
}

// DecodeU256 decodes an integer literal into a 256-bit unsigned integer
func DecodeU256(raw string) (*uint256.Int, bool) {
	v, ok := DecodeWide(raw, 256, false)
	if !ok {
		return nil, false
	}
	out, overflow := uint256.FromBig(v)
	if overflow {
		return nil, false
	}
	return out, true
}
