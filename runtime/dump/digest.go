package dump

import (
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/opal-lang/clex/runtime/lexer"
)

// DigestOptions controls which lexemes contribute to a digest
type DigestOptions struct {
	IgnoreComments bool
}

// digestEntry is the hashed form of a lexeme. Spans are left out so layout
// changes do not alter the digest.
type digestEntry struct {
	_    struct{} `cbor:",toarray"`
	Kind int
	Text string
}

// Digest fingerprints a lexeme stream as "blake2b:<hex>". The hash covers the
// canonical CBOR encoding of each lexeme's kind and text, in order.
func Digest(lexemes []lexer.Lexeme, opts DigestOptions) (string, error) {
	entries := make([]digestEntry, 0, len(lexemes))
	for _, lx := range lexemes {
		if opts.IgnoreComments && lx.Kind == lexer.Comment {
			continue
		}
		entries = append(entries, digestEntry{Kind: int(lx.Kind), Text: digestText(lx)})
	}

	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return "", fmt.Errorf("failed to create CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("CBOR encoding failed: %w", err)
	}

	hasher, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := hasher.Write(data); err != nil {
		return "", err
	}

	return fmt.Sprintf("blake2b:%x", hasher.Sum(nil)), nil
}

// digestText is the layout-free text of a lexeme. A string literal chained
// over several lines keeps its segments and prefixes but loses the whitespace
// between them.
func digestText(lx lexer.Lexeme) string {
	if lx.Kind != lexer.StringLiteral {
		return lx.Text
	}

	var b strings.Builder
	b.Grow(len(lx.Text))
	inside, escaped := false, false
	for i := 0; i < len(lx.Text); i++ {
		c := lx.Text[i]
		switch {
		case inside && escaped:
			escaped = false
		case inside && c == '\\':
			escaped = true
		case c == '"':
			inside = !inside
		case !inside && isLayout(c):
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isLayout(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// DigestSource lexes src and digests the result
func DigestSource(src string, opts DigestOptions) (string, error) {
	return Digest(lexer.Tokenize(src), opts)
}
