package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Directive is the text of one "#idl" annotation.
//
//	event discriminator TradeEvent
//	instruction accounts mix_usdc
//	reference MixAccounts
//	strings name symbol
//	writable signer
type Directive struct {
	Pos lexer.Position

	Event       *Declaration `  "event" @@`
	Struct      *Declaration `| "struct" @@`
	Instruction *Declaration `| "instruction" @@`
	Reference   *Reference   `| "reference" @@`
	Strings     *Strings     `| @@`
	String      bool         `| @"string"`
	Modifiers   []*Modifier  `| @@+`
}

// Declaration is the role and optional target name following an entity keyword.
type Declaration struct {
	Pos lexer.Position

	Role string `@Ident`
	Name string `@Ident?`
}

type Reference struct {
	Name string `@Ident`
}

// Strings may carry no names here so the caller can report that itself.
type Strings struct {
	Keyword string   `@"strings"`
	Names   []string `@Ident*`
}

type Modifier struct {
	Pos lexer.Position

	Name string `@Ident`
}
