package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodingOf(t *testing.T) {
	tests := []struct {
		input string
		want  Encoding
	}{
		{`'a'`, EncodingNone},
		{`"a"`, EncodingNone},
		{`L'a'`, EncodingWide},
		{`L"a"`, EncodingWide},
		{`u'a'`, EncodingUTF16},
		{`u"a"`, EncodingUTF16},
		{`U'a'`, EncodingUTF32},
		{`U"a"`, EncodingUTF32},
		{`u8"a"`, EncodingUTF8},
		{``, EncodingNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodingOf(tt.input))
		})
	}
}

func TestEncodingSpelling(t *testing.T) {
	for _, e := range []Encoding{EncodingNone, EncodingWide, EncodingUTF16, EncodingUTF32, EncodingUTF8} {
		assert.NotEqual(t, "unknown", e.String())
		if e != EncodingNone {
			assert.Equal(t, e, EncodingOf(e.Prefix()+`"x"`))
		}
	}
	assert.Equal(t, "unknown", Encoding(99).String())
}

// Prefixes never change decoded values
func TestEncodingDoesNotChangeValue(t *testing.T) {
	for _, p := range []string{"", "L", "u", "U"} {
		got, ok := DecodeChar(p + `'\xA1'`)
		assert.True(t, ok, p)
		assert.Equal(t, rune(0xa1), got, p)
	}
	for _, p := range []string{"", "L", "u", "U", "u8"} {
		got, ok := DecodeString(p + `"ét\xe9"`)
		assert.True(t, ok, p)
		assert.Equal(t, "été", got, p)
	}
}
