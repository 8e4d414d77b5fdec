package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CLexer tokenizes C-family headers. Comments and preprocessor lines are kept
// as tokens so annotations can be recovered from them.
var CLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*|/\*(?s:.*?)\*/`, nil},

		// Preprocessor lines, including backslash continuations
		{"Preproc", `#(?:\\\r?\n|[^\n])*`, nil},

		// Literals
		{"String", `"(?:\\.|[^"\\\n])*"`, nil},
		{"Char", `'(?:\\.|[^'\\\n])*'`, nil},
		{"Number", `(?:0[xX][0-9a-fA-F]+|[0-9]+(?:\.[0-9]*)?(?:[eE][-+]?[0-9]+)?|\.[0-9]+(?:[eE][-+]?[0-9]+)?)[uUlLfF]*`, nil},

		// Keywords and Identifiers
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Operators, longest first
		{"Operator", `<<=|>>=|\.\.\.|->|\+\+|--|<<|>>|<=|>=|==|!=|&&|\|\||[-+*/%&|^!~=?:]=?`, nil},

		// Punctuation. Angle brackets count as brackets for type nesting.
		{"Punctuation", `[{}()\[\];,.<>]`, nil},

		{"Whitespace", `[ \t\r\n\f\v]+`, nil},

		// Anything else is reported by the scanner instead of aborting the file.
		{"Invalid", `.`, nil},
	},
})

// DirectiveLexer tokenizes the text of an annotation after its "#idl" prefix.
var DirectiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[^\sa-zA-Z0-9_]`},
	{Name: "Whitespace", Pattern: `\s+`},
})
