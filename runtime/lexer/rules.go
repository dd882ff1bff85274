package lexer

import "strings"

// rule measures how many bytes of src starting at i its pattern accepts.
// Zero means no match.
type rule struct {
	kind  TokenKind
	name  string
	match func(src string, i int) int
}

// rules in priority order. At every position the longest match wins and ties
// go to the earlier rule.
var rules = [...]rule{
	{Comment, "comment", matchComment},
	{Symbol, "symbol", matchSymbol},
	{CharLiteral, "char", matchChar},
	{StringLiteral, "string", matchString},
	{IntLiteral, "int", matchInt},
	{FloatLiteral, "float", matchFloat},
	{Identifier, "identifier", matchIdentifier},
}

var (
	threeCharSymbols = []string{"...", ">>=", "<<="}
	twoCharSymbols   = []string{
		"+=", "-=", "*=", "/=", "%=", "&=", "^=", "|=",
		">>", "<<", "++", "--", "->", "&&", "||", "<=", ">=", "==", "!=",
		"<%", "%>", "<:", ":>",
	}
	singleCharSymbols = `;{},:=()[].&!~-+*/%<>^|?\#`
)

// matchComment accepts a line comment up to the line break, or a block comment
// through the first */ after its opener.
func matchComment(src string, i int) int {
	rest := src[i:]
	switch {
	case strings.HasPrefix(rest, "//"):
		if n := strings.IndexAny(rest, "\r\n"); n >= 0 {
			return n
		}
		return len(rest)
	case strings.HasPrefix(rest, "/*"):
		if n := strings.Index(rest[2:], "*/"); n >= 0 {
			return n + 4
		}
	}
	return 0
}

// unterminatedComment reports a /* without a closing */
func unterminatedComment(src string, i int) bool {
	rest := src[i:]
	return strings.HasPrefix(rest, "/*") && !strings.Contains(rest[2:], "*/")
}

func matchSymbol(src string, i int) int {
	rest := src[i:]
	for _, s := range threeCharSymbols {
		if strings.HasPrefix(rest, s) {
			return 3
		}
	}
	for _, s := range twoCharSymbols {
		if strings.HasPrefix(rest, s) {
			return 2
		}
	}
	if len(rest) > 0 && strings.IndexByte(singleCharSymbols, rest[0]) >= 0 {
		return 1
	}
	return 0
}

// matchEscape accepts one escape sequence starting at the backslash s[i]
func matchEscape(src string, i int) int {
	if i >= len(src) || src[i] != '\\' || i+1 >= len(src) {
		return 0
	}
	j := i + 1
	switch c := src[j]; {
	case c < 128 && isEscapeChar[c]:
		return 2
	case in(&isOctal, src, j):
		return 1 + run(&isOctal, src, j)
	case c == 'x' || c == 'u' || c == 'U':
		if n := run(&isHexDigit, src, j+1); n > 0 {
			return 2 + n
		}
	case c == '\n':
		return 2
	case c == '\r':
		if j+1 < len(src) && src[j+1] == '\n' {
			return 3
		}
	}
	return 0
}

// matchQuoted accepts a quoted body delimited by quote, starting at the
// opening quote s[i]: any byte other than the quote, a backslash or a line
// feed, or an escape sequence.
func matchQuoted(src string, i int, quote byte) int {
	if i >= len(src) || src[i] != quote {
		return 0
	}
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case quote:
			return j + 1 - i
		case '\n':
			return 0
		case '\\':
			n := matchEscape(src, j)
			if n == 0 {
				return 0
			}
			j += n
		default:
			j++
		}
	}
	return 0
}

func matchChar(src string, i int) int {
	p := 0
	if i < len(src) {
		switch src[i] {
		case 'u', 'U', 'L':
			p = 1
		}
	}
	if n := matchQuoted(src, i+p, '\''); n > 0 {
		return p + n
	}
	return 0
}

// stringPrefix measures an optional string encoding prefix before a quote
func stringPrefix(src string, i int) int {
	switch {
	case strings.HasPrefix(src[i:], `u8"`):
		return 2
	case i < len(src) && (src[i] == 'u' || src[i] == 'U' || src[i] == 'L'):
		return 1
	}
	return 0
}

// matchString accepts a chain of quoted segments separated by whitespace.
// The lexeme ends at the closing quote of the last segment.
func matchString(src string, i int) int {
	end := i
	j := i
	for {
		p := stringPrefix(src, j)
		n := matchQuoted(src, j+p, '"')
		if n == 0 {
			break
		}
		end = j + p + n
		j = end + run(&isWhitespace, src, end)
	}
	return end - i
}

// intSuffix measures an integer suffix: u or U optionally followed by a long
// marker (l, L, ll, LL), or a long marker optionally followed by u or U.
func intSuffix(src string, i int) int {
	isUnsigned := func(j int) bool { return j < len(src) && (src[j] == 'u' || src[j] == 'U') }
	long := func(j int) int {
		if strings.HasPrefix(src[j:], "ll") || strings.HasPrefix(src[j:], "LL") {
			return 2
		}
		if j < len(src) && (src[j] == 'l' || src[j] == 'L') {
			return 1
		}
		return 0
	}

	if isUnsigned(i) {
		return 1 + long(i+1)
	}
	if n := long(i); n > 0 {
		if isUnsigned(i + n) {
			return n + 1
		}
		return n
	}
	return 0
}

func matchInt(src string, i int) int {
	if !in(&isDigit, src, i) {
		return 0
	}

	var n int
	if src[i] == '0' {
		// Bare 0 or octal; hex and binary forms only win when digits follow
		n = 1 + run(&isOctal, src, i+1)
		if i+1 < len(src) {
			switch src[i+1] {
			case 'x', 'X':
				if h := run(&isHexDigit, src, i+2); h > 0 {
					n = max(n, 2+h)
				}
			case 'b', 'B':
				if b := runBinary(src, i+2); b > 0 {
					n = max(n, 2+b)
				}
			}
		}
	} else {
		n = run(&isDigit, src, i)
	}
	return n + intSuffix(src, i+n)
}

func runBinary(src string, i int) int {
	n := 0
	for i+n < len(src) && (src[i+n] == '0' || src[i+n] == '1') {
		n++
	}
	return n
}

// exponent measures an exponent part ([eE] or [pP], an optional sign and at
// least one decimal digit) whose marker is one of markers.
func exponent(src string, i int, markers string) int {
	if i >= len(src) || strings.IndexByte(markers, src[i]) < 0 {
		return 0
	}
	j := i + 1
	if j < len(src) && (src[j] == '+' || src[j] == '-') {
		j++
	}
	d := run(&isDigit, src, j)
	if d == 0 {
		return 0
	}
	return j + d - i
}

func floatSuffix(src string, i int) int {
	if i < len(src) && strings.IndexByte("fFlL", src[i]) >= 0 {
		return 1
	}
	return 0
}

// matchFloat accepts decimal floats with a fraction and/or exponent, and hex
// floats with a mandatory binary exponent.
func matchFloat(src string, i int) int {
	n := max(decimalFloat(src, i), hexFloat(src, i))
	if n == 0 {
		return 0
	}
	return n + floatSuffix(src, i+n)
}

func decimalFloat(src string, i int) int {
	whole := run(&isDigit, src, i)
	j := i + whole
	if j < len(src) && src[j] == '.' {
		frac := run(&isDigit, src, j+1)
		if whole == 0 && frac == 0 {
			return 0
		}
		j += 1 + frac
		return j + exponent(src, j, "eE") - i
	}
	if whole == 0 {
		return 0
	}
	e := exponent(src, j, "eE")
	if e == 0 {
		return 0
	}
	return j + e - i
}

func hexFloat(src string, i int) int {
	if !strings.HasPrefix(src[i:], "0x") && !strings.HasPrefix(src[i:], "0X") {
		return 0
	}
	j := i + 2
	whole := run(&isHexDigit, src, j)
	j += whole
	digits := whole
	if j < len(src) && src[j] == '.' {
		frac := run(&isHexDigit, src, j+1)
		digits += frac
		j += 1 + frac
	}
	if digits == 0 {
		return 0
	}
	p := exponent(src, j, "pP")
	if p == 0 {
		return 0
	}
	return j + p - i
}

func matchIdentifier(src string, i int) int {
	if !in(&isIdentStart, src, i) {
		return 0
	}
	return 1 + run(&isIdentPart, src, i+1)
}
