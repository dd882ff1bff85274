package lexer

// ASCII lookup tables, indexed by byte
var (
	isWhitespace [128]bool // space \t \v \r \n \f
	isIdentStart [128]bool // [a-zA-Z_$]
	isIdentPart  [128]bool // [a-zA-Z0-9_$]
	isDigit      [128]bool // [0-9]
	isOctal      [128]bool // [0-7]
	isHexDigit   [128]bool // [0-9a-fA-F]
	isEscapeChar [128]bool // single characters allowed after a backslash
)

func init() {
	for _, ch := range []byte{' ', '\t', '\v', '\r', '\n', '\f'} {
		isWhitespace[ch] = true
	}

	for ch := 'a'; ch <= 'z'; ch++ {
		isIdentStart[ch] = true
		isIdentPart[ch] = true
	}
	for ch := 'A'; ch <= 'Z'; ch++ {
		isIdentStart[ch] = true
		isIdentPart[ch] = true
	}
	isIdentStart['_'], isIdentPart['_'] = true, true
	isIdentStart['$'], isIdentPart['$'] = true, true

	for ch := '0'; ch <= '9'; ch++ {
		isDigit[ch] = true
		isIdentPart[ch] = true
		isHexDigit[ch] = true
	}
	for ch := '0'; ch <= '7'; ch++ {
		isOctal[ch] = true
	}
	for ch := 'a'; ch <= 'f'; ch++ {
		isHexDigit[ch] = true
		isHexDigit[ch-'a'+'A'] = true
	}

	for _, ch := range []byte(`'"%?\abefnrtv`) {
		isEscapeChar[ch] = true
	}
}

// in reports whether s[i] is an ASCII byte marked in table
func in(table *[128]bool, s string, i int) bool {
	return i < len(s) && s[i] < 128 && table[s[i]]
}

// run counts the bytes marked in table starting at s[i]
func run(table *[128]bool, s string, i int) int {
	n := 0
	for in(table, s, i+n) {
		n++
	}
	return n
}
