// Package keyword resolves C reserved words.
//
// Keyword identity is a property of an identifier's spelling, not a separate
// token kind: the lexer emits keywords as identifiers and callers resolve them
// here.
package keyword

import "fmt"

// Keyword identifies one of the C reserved words
type Keyword uint8

const (
	// Zero value, never returned by Lookup
	Invalid Keyword = iota

	Auto     // auto
	Break    // break
	Case     // case
	Char     // char
	Const    // const
	Continue // continue
	Default  // default
	Do       // do
	Double   // double
	Else     // else
	Enum     // enum
	Extern   // extern
	Float    // float
	For      // for
	Goto     // goto
	If       // if
	Inline   // inline
	Int      // int
	Long     // long
	Register // register
	Restrict // restrict
	Return   // return
	Short    // short
	Signed   // signed
	SizeOf   // sizeof
	Static   // static
	Struct   // struct
	Switch   // switch
	TypeDef  // typedef
	Union    // union
	Unsigned // unsigned
	Void     // void
	Volatile // volatile
	While    // while

	// C11 underscore-prefixed keywords
	AlignAs      // _Alignas
	AlignOf      // _Alignof
	Atomic       // _Atomic
	Bool         // _Bool
	Complex      // _Complex
	Generic      // _Generic
	Imaginary    // _Imaginary
	NoReturn     // _Noreturn
	StaticAssert // _Static_assert
	ThreadLocal  // _Thread_local

	// Predefined identifier
	FuncName // __func__

	count
)

// Count is the number of valid keywords, __func__ included
const Count = int(count) - 1

var spellings = [...]string{
	Invalid:      "",
	Auto:         "auto",
	Break:        "break",
	Case:         "case",
	Char:         "char",
	Const:        "const",
	Continue:     "continue",
	Default:      "default",
	Do:           "do",
	Double:       "double",
	Else:         "else",
	Enum:         "enum",
	Extern:       "extern",
	Float:        "float",
	For:          "for",
	Goto:         "goto",
	If:           "if",
	Inline:       "inline",
	Int:          "int",
	Long:         "long",
	Register:     "register",
	Restrict:     "restrict",
	Return:       "return",
	Short:        "short",
	Signed:       "signed",
	SizeOf:       "sizeof",
	Static:       "static",
	Struct:       "struct",
	Switch:       "switch",
	TypeDef:      "typedef",
	Union:        "union",
	Unsigned:     "unsigned",
	Void:         "void",
	Volatile:     "volatile",
	While:        "while",
	AlignAs:      "_Alignas",
	AlignOf:      "_Alignof",
	Atomic:       "_Atomic",
	Bool:         "_Bool",
	Complex:      "_Complex",
	Generic:      "_Generic",
	Imaginary:    "_Imaginary",
	NoReturn:     "_Noreturn",
	StaticAssert: "_Static_assert",
	ThreadLocal:  "_Thread_local",
	FuncName:     "__func__",
}

// table is built once from spellings so the two can never disagree
var table = func() map[string]Keyword {
	m := make(map[string]Keyword, Count)
	for k := Auto; k < count; k++ {
		m[spellings[k]] = k
	}
	return m
}()

// Lookup resolves an identifier spelling to its keyword.
// Matching is exact and case-sensitive.
func Lookup(ident string) (Keyword, bool) {
	k, ok := table[ident]
	return k, ok
}

// IsKeyword reports whether ident is a reserved word
func IsKeyword(ident string) bool {
	_, ok := table[ident]
	return ok
}

// All returns every keyword in declaration order
func All() []Keyword {
	out := make([]Keyword, 0, Count)
	for k := Auto; k < count; k++ {
		out = append(out, k)
	}
	return out
}

// IsValid reports whether k names a keyword
func (k Keyword) IsValid() bool {
	return k > Invalid && k < count
}

// String returns the C spelling of the keyword
func (k Keyword) String() string {
	if k.IsValid() {
		return spellings[k]
	}
	return fmt.Sprintf("Keyword(%d)", uint8(k))
}
