package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/opal-lang/clex/runtime/lexer"
)

// resolveKinds maps --only values to token kinds, case-insensitively.
// Values may be comma separated.
func resolveKinds(names []string) ([]lexer.TokenKind, error) {
	var valid []string
	for _, k := range lexer.Kinds() {
		valid = append(valid, k.String())
	}

	var kinds []lexer.TokenKind
	for _, raw := range names {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			kind, ok := findKind(name)
			if !ok {
				return nil, unknownKindError(name, valid)
			}
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

func findKind(name string) (lexer.TokenKind, bool) {
	for _, k := range lexer.Kinds() {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

func unknownKindError(name string, valid []string) error {
	err := &CLIError{
		Type:    errUsage,
		Message: fmt.Sprintf("unknown token kind %q", name),
		Details: "Valid kinds: " + strings.Join(valid, ", "),
	}
	if match := findClosestMatch(name, valid); match != "" {
		err.Hint = fmt.Sprintf("Did you mean %q?", match)
	}
	return err
}

// findClosestMatch finds the closest string match using fuzzy matching
func findClosestMatch(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	// Lowest distance first
	sort.Sort(ranks)
	return ranks[0].Target
}
