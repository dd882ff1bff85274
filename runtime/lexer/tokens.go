package lexer

// TokenKind classifies a lexeme
type TokenKind int

const (
	Comment       TokenKind = iota // // line or /* block */
	Symbol                         // operators and punctuation
	CharLiteral                    // 'a', L'\n'
	StringLiteral                  // "a", u8"a" "b"
	IntLiteral                     // 42, 0x2a, 052, 0b101010, 42UL
	FloatLiteral                   // 4.2, .5, 1e9, 0x1p3, 1.5f
	Identifier                     // names and keyword spellings
	Unknown                        // input no rule accepts
)

var kindNames = [...]string{
	Comment:       "Comment",
	Symbol:        "Symbol",
	CharLiteral:   "Char",
	StringLiteral: "String",
	IntLiteral:    "Int",
	FloatLiteral:  "Float",
	Identifier:    "Identifier",
	Unknown:       "Unknown",
}

// String returns the name of the token kind
func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Kinds lists every token kind in rule order
func Kinds() []TokenKind {
	return []TokenKind{Comment, Symbol, CharLiteral, StringLiteral, IntLiteral, FloatLiteral, Identifier, Unknown}
}

// ParseKind resolves a kind name as printed by String
func ParseKind(name string) (TokenKind, bool) {
	for i, n := range kindNames {
		if n == name {
			return TokenKind(i), true
		}
	}
	return 0, false
}

// Span is a half-open byte range [Start, End) into the source buffer
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// Lexeme is one classified token. Text is always src[Span.Start:Span.End] and
// shares memory with the source buffer.
type Lexeme struct {
	Kind TokenKind
	Span Span
	Text string
}

// String returns the token text (for testing and debugging)
func (l Lexeme) String() string {
	return l.Text
}
