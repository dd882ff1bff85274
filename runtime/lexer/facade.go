package lexer

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/opal-lang/clex/core/keyword"
	"github.com/opal-lang/clex/core/literal"
)

// Keyword resolves an identifier lexeme against the keyword table
func (l Lexeme) Keyword() (keyword.Keyword, bool) {
	if l.Kind != Identifier {
		return keyword.Invalid, false
	}
	return keyword.Lookup(l.Text)
}

// CommentText returns the body of a comment lexeme
func (l Lexeme) CommentText() (string, bool) {
	if l.Kind != Comment {
		return "", false
	}
	return literal.DecodeComment(l.Text)
}

// CharValue returns the character a char literal denotes
func (l Lexeme) CharValue() (rune, bool) {
	if l.Kind != CharLiteral {
		return 0, false
	}
	return literal.DecodeChar(l.Text)
}

// StringValue returns the decoded, concatenated content of a string literal
func (l Lexeme) StringValue() (string, bool) {
	if l.Kind != StringLiteral {
		return "", false
	}
	return literal.DecodeString(l.Text)
}

// Encoding returns the encoding prefix of a char or string literal
func (l Lexeme) Encoding() (literal.Encoding, bool) {
	if l.Kind != CharLiteral && l.Kind != StringLiteral {
		return literal.EncodingNone, false
	}
	return literal.EncodingOf(l.Text), true
}

// IsHexFloat reports whether a float lexeme uses the hexadecimal spelling,
// whose value FloatValue does not compute
func (l Lexeme) IsHexFloat() bool {
	return l.Kind == FloatLiteral && literal.IsHexFloat(l.Text)
}

// IntValue decodes an integer lexeme into T.
// Methods cannot carry type parameters, so this is a function.
func IntValue[T literal.Integer](l Lexeme) (T, bool) {
	if l.Kind != IntLiteral {
		var zero T
		return zero, false
	}
	return literal.DecodeInt[T](l.Text)
}

// FloatValue decodes a decimal float lexeme into T
func FloatValue[T literal.Float](l Lexeme) (T, bool) {
	if l.Kind != FloatLiteral {
		var zero T
		return zero, false
	}
	return literal.DecodeFloat[T](l.Text)
}

// WideIntValue decodes an integer lexeme into an integer of the given bit width
func (l Lexeme) WideIntValue(bits int, signed bool) (*big.Int, bool) {
	if l.Kind != IntLiteral {
		return nil, false
	}
	return literal.DecodeWide(l.Text, bits, signed)
}

// U256Value decodes an integer lexeme into a 256-bit unsigned integer
func (l Lexeme) U256Value() (*uint256.Int, bool) {
	if l.Kind != IntLiteral {
		return nil, false
	}
	return literal.DecodeU256(l.Text)
}
