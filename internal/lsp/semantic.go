package lsp

import (
	"slices"
	"strings"

	"cidl/internal/ast"
	"cidl/internal/parser"
	"cidl/internal/pragma"
	"cidl/internal/types"
	"cidl/token"
)

// SemanticToken is one entry before delta encoding. Line and StartChar are 0-based.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask over SemanticTokenModifiers
}

type classification struct {
	kind      string
	modifiers []string
}

// collectSemanticTokens classifies the lexed tokens of a header. Declared
// names come from the parsed file, keyed by byte offset.
func collectSemanticTokens(path, content string, file *ast.File) []SemanticToken {
	tokens, _ := parser.Tokenize(path, content)
	declared, typeNames := declarations(file)

	var out []SemanticToken
	for _, tok := range tokens {
		var c classification
		switch tok.Kind {
		case token.EOF, token.Punctuation:
			continue
		case token.Name:
			if d, ok := declared[tok.Pos.Offset]; ok {
				c = d
			} else if typeNames[tok.Text] || types.IsPrimitive(tok.Text) || tok.Text == "address" {
				c = classification{kind: "type"}
			} else {
				continue
			}
		case token.KeywordType:
			c = classification{kind: "type"}
		case token.Keyword:
			c = classification{kind: "keyword"}
		case token.Number:
			c = classification{kind: "number"}
		case token.String, token.Char:
			c = classification{kind: "string"}
		case token.Operator:
			c = classification{kind: "operator"}
		case token.Preproc:
			c = classification{kind: "macro"}
		case token.Comment:
			c = classification{kind: "comment"}
			if _, ok := pragma.Extract(tok.Text); ok {
				c.kind = "macro"
			}
		}

		// multi-line tokens are left to the client's syntax highlighting
		if strings.Contains(tok.Text, "\n") {
			continue
		}
		out = append(out, makeToken(tok, c))
	}
	return out
}

func declarations(file *ast.File) (map[int]classification, map[string]bool) {
	declared := make(map[int]classification)
	typeNames := make(map[string]bool)
	if file == nil {
		return declared, typeNames
	}

	for _, v := range file.Vars {
		c := classification{kind: "variable", modifiers: []string{"declaration"}}
		if v.IsConst {
			c.modifiers = append(c.modifiers, "readonly")
		}
		declared[v.NamePos.Offset] = c
	}

	for _, s := range file.Structs {
		typeNames[s.Name] = true
		declared[s.NamePos.Offset] = classification{kind: "type", modifiers: []string{"declaration"}}
		for _, f := range s.Fields {
			declared[f.NamePos.Offset] = classification{kind: "property", modifiers: []string{"declaration"}}
		}
	}

	for _, fn := range file.Functions {
		declared[fn.NamePos.Offset] = classification{kind: "function", modifiers: []string{"declaration"}}
	}

	return declared, typeNames
}

func makeToken(tok token.Token, c classification) SemanticToken {
	mask := 0
	for _, m := range c.modifiers {
		if i := slices.Index(SemanticTokenModifiers, m); i >= 0 {
			mask |= 1 << i
		}
	}
	return SemanticToken{
		Line:           uint32(tok.Pos.Line - 1),
		StartChar:      uint32(tok.Pos.Column - 1),
		Length:         uint32(len(tok.Text)),
		TokenType:      slices.Index(SemanticTokenTypes, c.kind),
		TokenModifiers: mask,
	}
}
