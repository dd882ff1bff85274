package literal

import (
	"unicode/utf8"

	"github.com/opal-lang/clex/core/invariant"
)

// mode tags the current state of the escape decoder
type mode uint8

const (
	modeBody    mode = iota // in literal body
	modeEscape              // after backslash
	modeOctal               // accumulating octal digits
	modeHex                 // accumulating hex or unicode digits
	modeOutside             // between quoted segments (strings only)
	modePrefix              // reading an encoding prefix between segments (strings only)
)

var modeNames = [...]string{
	modeBody:    "body",
	modeEscape:  "escape",
	modeOctal:   "octal",
	modeHex:     "hex",
	modeOutside: "outside",
	modePrefix:  "prefix",
}

func (m mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "invalid"
}

// state is the scratch value threaded through a decode.
//
// value holds the digits accumulated so far (octal/hex) or the prefix letter
// being read (prefix). left counts the digits that may still be consumed and
// width is the maximum digit count of the active escape.
type state struct {
	mode  mode
	value uint32
	left  uint8
	width uint8
}

// decoder couples the state machine with its output sink.
// segmented enables the outside/prefix states used to splice string segments.
type decoder struct {
	st        state
	segmented bool
	emit      func(rune)
}

// control maps single-letter escapes to the characters they denote
var control = [128]rune{
	'a': '\a',
	'b': '\b',
	'v': '\v',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'e': 0x1b,
}

// step feeds one rune to the machine. It returns false when the body cannot
// be decoded.
func (d *decoder) step(r rune) bool {
	switch d.st.mode {
	case modeBody:
		switch {
		case r == '\\':
			d.st = state{mode: modeEscape}
		case r == '"' && d.segmented:
			d.st = state{mode: modeOutside}
		default:
			d.emit(r)
		}
		return true

	case modeEscape:
		switch {
		case r == 'x':
			d.st = state{mode: modeHex, left: 2, width: 2}
		case r == 'u':
			d.st = state{mode: modeHex, left: 4, width: 4}
		case r == 'U':
			d.st = state{mode: modeHex, left: 8, width: 8}
		case '0' <= r && r <= '7':
			d.st = state{mode: modeOctal, value: uint32(r - '0'), left: 2, width: 3}
		case r < 128 && control[r] != 0:
			d.emit(control[r])
			d.st = state{mode: modeBody}
		default:
			// Unknown escapes stand for the escaped character itself
			d.emit(r)
			d.st = state{mode: modeBody}
		}
		return true

	case modeOctal:
		if '0' <= r && r <= '7' {
			d.st.value = d.st.value<<3 | uint32(r-'0')
			d.st.left--
			if d.st.left == 0 {
				d.flushOctal()
			}
			return true
		}
		d.flushOctal()
		return d.step(r)

	case modeHex:
		if v, ok := hexValue(r); ok {
			d.st.value = d.st.value<<4 | v
			d.st.left--
			if d.st.left == 0 {
				d.flushHex()
			}
			return true
		}
		if d.st.left == d.st.width {
			// \x, \u or \U without a single digit
			return false
		}
		d.flushHex()
		return d.step(r)

	case modeOutside:
		switch {
		case r == '"':
			d.st = state{mode: modeBody}
		case r == 'u' || r == 'U' || r == 'L':
			d.st = state{mode: modePrefix, value: uint32(r)}
		case !isSpace(r):
			return false
		}
		return true

	case modePrefix:
		switch {
		case r == '"':
			d.st = state{mode: modeBody}
			return true
		case r == '8' && d.st.value == 'u' && d.st.left == 0:
			d.st.left = 1
			return true
		}
		return false
	}

	return false
}

// finish flushes any pending accumulator at end of input. It returns false
// when the body ends in the middle of an escape.
func (d *decoder) finish() bool {
	switch d.st.mode {
	case modeBody, modeOutside:
		return true
	case modeOctal:
		d.flushOctal()
	case modeHex:
		if d.st.left == d.st.width {
			return false
		}
		d.flushHex()
	default:
		// modeEscape: dangling backslash; modePrefix: prefix without a quote
		return false
	}
	invariant.Invariant(d.st.mode == modeBody, "decoder must rest in body after flush, in %s", d.st.mode)
	return true
}

// flushOctal emits the accumulated octal value, truncated to a byte
func (d *decoder) flushOctal() {
	d.emit(rune(d.st.value & 0xff))
	d.st = state{mode: modeBody}
}

// flushHex emits the accumulated value as a scalar value, or NUL when it is
// not one (surrogates, values past U+10FFFF)
func (d *decoder) flushHex() {
	r := rune(0)
	if d.st.value <= utf8.MaxRune && utf8.ValidRune(rune(d.st.value)) {
		r = rune(d.st.value)
	}
	d.emit(r)
	d.st = state{mode: modeBody}
}

func hexValue(r rune) (uint32, bool) {
	switch {
	case '0' <= r && r <= '9':
		return uint32(r - '0'), true
	case 'a' <= r && r <= 'f':
		return uint32(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return uint32(r-'A') + 10, true
	}
	return 0, false
}

// isSpace matches the C whitespace set used between string segments
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\r', '\n', '\f':
		return true
	}
	return false
}
