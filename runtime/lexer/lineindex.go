package lexer

import (
	"sort"
	"unicode/utf8"

	"github.com/opal-lang/clex/core/invariant"
)

// Position is a human-oriented location, used for diagnostics only
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column, counted in characters
	Offset int // 0-based byte offset
}

// LineIndex maps byte offsets of one buffer to line and column
type LineIndex struct {
	src   string
	lines []int // byte offset of the first byte of each line
}

// NewLineIndex indexes the line starts of src
func NewLineIndex(src string) *LineIndex {
	lines := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &LineIndex{src: src, lines: lines}
}

// Position resolves offset, which may equal the buffer length
func (ix *LineIndex) Position(offset int) Position {
	invariant.Precondition(offset >= 0 && offset <= len(ix.src),
		"offset must be within [0, %d], got %d", len(ix.src), offset)

	line := sort.Search(len(ix.lines), func(i int) bool { return ix.lines[i] > offset }) - 1
	start := ix.lines[line]

	return Position{
		Line:   line + 1,
		Column: utf8.RuneCountInString(ix.src[start:offset]) + 1,
		Offset: offset,
	}
}

// Lines returns the number of lines in the buffer
func (ix *LineIndex) Lines() int {
	return len(ix.lines)
}
