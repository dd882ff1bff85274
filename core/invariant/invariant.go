// Package invariant provides contract assertions for clex internals.
//
// Assertions here guard programming errors in the scanner and decoders, never
// malformed input. Malformed source text is reported through Unknown tokens and
// failed decodes; a violation reported by this package means the scanner itself
// is broken.
//
// All functions panic on violation.
package invariant

import (
	"fmt"
	"runtime"
	"strings"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
//
// Example:
//
//	func (ix *LineIndex) Position(offset int) Position {
//	    invariant.Precondition(offset >= 0, "offset must not be negative, got %d", offset)
//	    // ...
//	}
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
// Panics with POSTCONDITION VIOLATION if condition is false.
func Postcondition(condition bool, format string, args ...any) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks internal consistency during execution.
// Panics with INVARIANT VIOLATION if condition is false.
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// Advanced panics unless a cursor moved strictly forward from prev to cur.
// The scanner calls it once per produced lexeme so that a rule matching zero
// bytes is caught instead of looping forever.
//
// Example:
//
//	prev := l.pos
//	l.pos += n
//	invariant.Advanced(prev, l.pos, "lexer")
func Advanced(prev, cur int, where string) {
	if cur <= prev {
		fail("INVARIANT", "%s: cursor must advance, stuck at %d (now %d)", where, prev, cur)
	}
}

// SpanWithin panics unless [start, end) is a non-empty, well-formed range
// inside a buffer of the given length.
func SpanWithin(start, end, length int, where string) {
	Postcondition(start >= 0 && start < end && end <= length,
		"%s: span [%d, %d) must lie within buffer of length %d", where, start, end, length)
}

// fail panics with a formatted message including the file:line of the first
// caller outside this package.
func fail(kind, format string, args ...any) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]any{kind}, args...)...)

	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, pkgPrefix) {
			msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
			break
		}
		if !more {
			break
		}
	}

	panic(msg)
}

// pkgPrefix qualifies the functions of this package in stack frames
var pkgPrefix = func() string {
	pc, _, _, _ := runtime.Caller(0)
	name := runtime.FuncForPC(pc).Name()
	slash := strings.LastIndex(name, "/")
	return name[:slash+strings.Index(name[slash:], ".")+1]
}()
