// Package dump serializes lexeme streams and fingerprints them.
//
// Records carry each lexeme together with its decoded value so that token
// streams can be inspected (text), consumed by other tools (JSON) or stored
// compactly and deterministically (canonical CBOR).
package dump

import (
	"strconv"

	"github.com/opal-lang/clex/runtime/lexer"
)

// Record is one lexeme plus its decoded value
type Record struct {
	Kind  string `json:"kind" cbor:"1,keyasint"`
	Start int    `json:"start" cbor:"2,keyasint"`
	End   int    `json:"end" cbor:"3,keyasint"`
	Text  string `json:"text" cbor:"4,keyasint"`

	// Value is the decoded value rendered as text: keyword spelling, comment
	// body, character, string content, decimal integer or float.
	Value string `json:"value,omitempty" cbor:"5,keyasint,omitempty"`

	// Failed is set when the lexeme's kind carries a value that did not decode
	Failed bool `json:"failed,omitempty" cbor:"6,keyasint,omitempty"`
}

// FromLexeme builds the record for one lexeme
func FromLexeme(lx lexer.Lexeme) Record {
	r := Record{
		Kind:  lx.Kind.String(),
		Start: lx.Span.Start,
		End:   lx.Span.End,
		Text:  lx.Text,
	}

	var ok bool
	switch lx.Kind {
	case lexer.Identifier:
		// Plain identifiers have no value; that is not a failure
		if kw, isKw := lx.Keyword(); isKw {
			r.Value = kw.String()
		}
		return r
	case lexer.Comment:
		r.Value, ok = lx.CommentText()
	case lexer.CharLiteral:
		var c rune
		if c, ok = lx.CharValue(); ok {
			r.Value = string(c)
		}
	case lexer.StringLiteral:
		r.Value, ok = lx.StringValue()
	case lexer.IntLiteral:
		if v, isInt := lx.WideIntValue(128, true); isInt {
			r.Value, ok = v.String(), true
		} else if u, isU256 := lx.U256Value(); isU256 {
			r.Value, ok = u.Dec(), true
		}
	case lexer.FloatLiteral:
		var f float64
		if f, ok = lexer.FloatValue[float64](lx); ok {
			r.Value = strconv.FormatFloat(f, 'g', -1, 64)
		}
	default:
		return r
	}

	r.Failed = !ok
	return r
}

// Collect lexes src and returns one record per lexeme
func Collect(src string) []Record {
	var records []Record
	for lx := range lexer.NewLexer(src).All() {
		records = append(records, FromLexeme(lx))
	}
	return records
}
