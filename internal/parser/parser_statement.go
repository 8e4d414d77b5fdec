package parser

import (
	"strings"

	"cidl/internal/ast"
	"cidl/token"
)

// parseVariable reads "[qualifiers] type [*] name [dims] [= value]" from the
// tokens of one statement, without its ';'. Bracketed groups are appended to
// the type spelling wherever they appear, so "u8 mint[32]" has type "u8[32]".
// It returns nil when the tokens do not describe a variable.
func parseVariable(tokens []token.Token) *ast.Variable {
	var (
		v           = &ast.Variable{}
		typ         strings.Builder
		value       strings.Builder
		inValue     bool
		keywordType bool
		depth       int
		attrDepth   int
		inAttr      bool
	)

	for _, tok := range tokens {
		if inValue {
			value.WriteString(tok.Text)
			continue
		}

		if inAttr {
			switch {
			case tok.Is(token.Punctuation, "("):
				attrDepth++
			case tok.Is(token.Punctuation, ")"):
				attrDepth--
				if attrDepth == 0 {
					inAttr = false
				}
			}
			continue
		}

		if depth > 0 {
			typ.WriteString(tok.Text)
			switch {
			case isOpen(tok):
				depth++
			case isClose(tok):
				depth--
			case tok.Is(token.Operator, ">>"):
				depth -= 2
				if depth < 0 {
					depth = 0
				}
			}
			continue
		}

		switch tok.Kind {
		case token.Keyword:
			switch tok.Text {
			case "const":
				v.IsConst = true
			case "__attribute__":
				inAttr = true
			}

		case token.KeywordType:
			switch {
			case typ.Len() == 0:
				typ.WriteString(tok.Text)
				keywordType = true
			case v.Name == "" && keywordType:
				typ.WriteString(" " + tok.Text)
			}

		case token.Name:
			switch {
			case typ.Len() == 0:
				typ.WriteString(tok.Text)
			case v.Name == "":
				v.Name = tok.Text
				v.NamePos = tok.Pos
			}

		case token.Operator:
			switch {
			case tok.Text == "=":
				if typ.Len() == 0 {
					return nil
				}
				inValue = true
			case tok.Text == "*" && v.Name == "" && typ.Len() > 0:
				typ.WriteString("*")
			}

		case token.Punctuation:
			switch {
			case typ.Len() == 0:
				return nil
			case tok.Text == "(" && v.Name != "":
				// function prototype
				return nil
			case isOpen(tok):
				typ.WriteString(tok.Text)
				depth++
			}
		}
	}

	if typ.Len() == 0 || v.Name == "" {
		return nil
	}
	v.Pos = tokens[0].Pos
	v.Type = typ.String()
	if inValue {
		s := value.String()
		v.Value = &s
	}
	return v
}

func isOpen(tok token.Token) bool {
	return tok.Kind == token.Punctuation && (tok.Text == "(" || tok.Text == "[" || tok.Text == "<")
}

func isClose(tok token.Token) bool {
	return tok.Kind == token.Punctuation && (tok.Text == ")" || tok.Text == "]" || tok.Text == ">")
}
