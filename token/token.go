// Package token SPDX-License-Identifier: Apache-2.0
package token

import "fmt"

type Kind int

const (
	EOF Kind = iota
	Name
	Keyword
	KeywordType
	Number
	String
	Char
	Operator
	Punctuation
	Comment
	Preproc
)

var kindNames = [...]string{
	EOF:         "EOF",
	Name:        "Name",
	Keyword:     "Keyword",
	KeywordType: "KeywordType",
	Number:      "Number",
	String:      "String",
	Char:        "Char",
	Operator:    "Operator",
	Punctuation: "Punctuation",
	Comment:     "Comment",
	Preproc:     "Preproc",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position is a location in a source file. Line and Column are 1-based.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

// End returns the position just past the token text on the same line.
func (t Token) End() Position {
	end := t.Pos
	end.Offset += len(t.Text)
	end.Column += len(t.Text)
	return end
}

// Is reports whether the token has the given kind and text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// C type keywords. These start a type spelling.
var typeKeywords = map[string]bool{
	"void":     true,
	"char":     true,
	"short":    true,
	"int":      true,
	"long":     true,
	"float":    true,
	"double":   true,
	"signed":   true,
	"unsigned": true,
	"_Bool":    true,
}

var keywords = map[string]bool{
	"auto":          true,
	"break":         true,
	"case":          true,
	"const":         true,
	"continue":      true,
	"default":       true,
	"do":            true,
	"else":          true,
	"enum":          true,
	"extern":        true,
	"for":           true,
	"goto":          true,
	"if":            true,
	"inline":        true,
	"register":      true,
	"restrict":      true,
	"return":        true,
	"sizeof":        true,
	"static":        true,
	"struct":        true,
	"switch":        true,
	"typedef":       true,
	"union":         true,
	"volatile":      true,
	"while":         true,
	"__attribute__": true,
}

// LookupIdent classifies an identifier as a type keyword, keyword or plain name.
func LookupIdent(ident string) Kind {
	if typeKeywords[ident] {
		return KeywordType
	}
	if keywords[ident] {
		return Keyword
	}
	return Name
}
