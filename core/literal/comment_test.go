package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"inline", "// abc de f", "abc de f"},
		{"inline_compact", "//abc de f", "abc de f"},
		{"inline_sparse", "//   abc  de f  ", "abc  de f"},
		{"inline_empty", "//", ""},
		{"singleline", "/* abc de f */", " abc de f "},
		{"singleline_compact", "/*abc de f*/", "abc de f"},
		{"singleline_sparse", "/*   abc de  f  */", "   abc de  f  "},
		{"empty_block", "/**/", ""},
		{"stars_only", "/*********/", ""},
		{
			"multiline",
			"/*\n\nabc de\n\nf gh\n\n\n*/",
			"abc de\n\nf gh",
		},
		{
			"multiline_verbatim",
			"/*\n\n\n abc de\n\n   f gh\n\n */",
			" abc de\n\n   f gh",
		},
		{
			"multiline_verbatim_l",
			"/*\n * abc de\n *   f gh\n */",
			" * abc de\n *   f gh",
		},
		{
			"multiline_verbatim_lr",
			"/*******\n * abc de *\n *  f gh  *\n *******/",
			" * abc de *\n *  f gh  *",
		},
		{
			"decorative_border",
			"/****************\n****************/",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeComment(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeCommentRejects(t *testing.T) {
	for _, input := range []string{
		"/ abc de f/",
		"/*abc de fg/",
		"/abc de fg*/",
		"/*/",
		"",
		"abc",
	} {
		t.Run(input, func(t *testing.T) {
			_, ok := DecodeComment(input)
			assert.False(t, ok)
		})
	}
}
