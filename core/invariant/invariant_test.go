package invariant_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/opal-lang/clex/core/invariant"
)

// expectPanic runs fn and checks the recovered message contains every fragment
func expectPanic(t *testing.T, fn func(), fragments ...string) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg := fmt.Sprintf("%v", r)
		for _, f := range fragments {
			if !strings.Contains(msg, f) {
				t.Errorf("expected %q in panic message, got: %s", f, msg)
			}
		}
	}()
	fn()
}

func TestConditionsPass(t *testing.T) {
	invariant.Precondition(true, "never shown")
	invariant.Postcondition(len("abc") == 3, "never shown")
	invariant.Invariant(1 < 2, "never shown")
	invariant.Advanced(3, 4, "lexer")
	invariant.SpanWithin(0, 1, 1, "lexer")
	invariant.SpanWithin(2, 7, 10, "lexer")
}

func TestPreconditionFail(t *testing.T) {
	expectPanic(t, func() {
		invariant.Precondition(false, "offset must not be negative, got %d", -1)
	}, "PRECONDITION VIOLATION", "got -1", "at ", "invariant_test.go:")
}

func TestPostconditionFail(t *testing.T) {
	expectPanic(t, func() {
		invariant.Postcondition(false, "decoded value must be owned")
	}, "POSTCONDITION VIOLATION", "decoded value must be owned")
}

func TestInvariantFail(t *testing.T) {
	expectPanic(t, func() {
		invariant.Invariant(false, "state must be terminal")
	}, "INVARIANT VIOLATION", "state must be terminal")
}

func TestAdvancedFail(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur int
	}{
		{"stuck", 5, 5},
		{"backwards", 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectPanic(t, func() {
				invariant.Advanced(tt.prev, tt.cur, "lexer")
			}, "INVARIANT VIOLATION", "lexer: cursor must advance", fmt.Sprintf("stuck at %d", tt.prev))
		})
	}
}

func TestSpanWithinFail(t *testing.T) {
	tests := []struct {
		name              string
		start, end, limit int
	}{
		{"empty", 3, 3, 10},
		{"inverted", 4, 2, 10},
		{"negative_start", -1, 2, 10},
		{"past_end", 8, 11, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectPanic(t, func() {
				invariant.SpanWithin(tt.start, tt.end, tt.limit, "lexer")
			}, "POSTCONDITION VIOLATION", "must lie within buffer", "invariant_test.go:")
		})
	}
}
