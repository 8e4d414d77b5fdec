package parser

import (
	"fmt"

	"cidl/internal/ast"
	"cidl/internal/pragma"
	"cidl/token"
)

type ParseError struct {
	Message  string
	Position Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

// Parser walks the significant tokens of one header. Comments and
// preprocessor lines are removed up front; annotations found in comments are
// remembered against the token that follows them.
type Parser struct {
	filename string
	tokens   []token.Token
	leading  []*ast.Pragma
	current  int
	pending  *ast.Pragma
	errors   []ParseError
}

func NewParser(filename string, tokens []token.Token) *Parser {
	p := &Parser{filename: filename}

	var next *ast.Pragma
	for _, tok := range tokens {
		switch tok.Kind {
		case token.Comment:
			if next != nil {
				continue
			}
			if text, ok := pragma.Extract(tok.Text); ok {
				next = &ast.Pragma{Pos: tok.Pos, Text: text}
			}
		case token.Preproc:
			continue
		default:
			p.tokens = append(p.tokens, tok)
			p.leading = append(p.leading, next)
			next = nil
		}
	}

	if len(p.tokens) == 0 || p.tokens[len(p.tokens)-1].Kind != token.EOF {
		p.tokens = append(p.tokens, token.Token{Kind: token.EOF, Pos: Position{Filename: filename, Line: 1, Column: 1}})
		p.leading = append(p.leading, next)
	}
	return p
}

func (p *Parser) Errors() []ParseError {
	return p.errors
}

// ParseFile parses every top-level declaration. Declarations that cannot be
// understood are skipped and reported through Errors.
func (p *Parser) ParseFile() *ast.File {
	file := &ast.File{Path: p.filename}
	for !p.isAtEnd() {
		p.parseDeclaration(file)
	}
	if trailing := p.leading[len(p.leading)-1]; trailing != nil {
		p.errorAt(trailing.Pos, "annotation is not followed by a declaration")
	}
	return file
}

var storageKeywords = map[string]bool{
	"typedef":  true,
	"static":   true,
	"const":    true,
	"extern":   true,
	"volatile": true,
	"inline":   true,
}

func (p *Parser) parseDeclaration(file *ast.File) {
	switch {
	case p.checkPunct("}"), p.checkPunct(";"):
		// closing brace of an extern "C" block, or an empty declaration
		p.advance()
		p.takePragma()
		return
	case p.isStructDefinition():
		if s := p.parseStruct(); s != nil {
			file.Structs = append(file.Structs, s)
		}
		return
	}

	start := p.current
	hasAssign := false
	depth := 0
	for i := p.current; ; i++ {
		tok := p.tokens[i]
		switch {
		case tok.Kind == token.EOF:
			p.errorAt(p.tokens[start].Pos, "unexpected end of file in declaration")
			for !p.isAtEnd() {
				p.advance()
			}
			p.takePragma()
			return

		case tok.Is(token.Operator, "=") && depth == 0:
			hasAssign = true

		case tok.Is(token.Punctuation, "{"):
			if hasAssign {
				depth++
				continue
			}
			p.parseBlockDeclaration(file, start, i)
			return

		case tok.Is(token.Punctuation, "}") && depth > 0:
			depth--

		case tok.Is(token.Punctuation, ";") && depth == 0:
			p.parseStatement(file, start, i)
			return
		}
	}
}

// parseStatement handles a declaration ending in ';' at index end.
func (p *Parser) parseStatement(file *ast.File, start, end int) {
	tokens := p.tokens[start:end]
	for p.current <= end {
		p.advance()
	}
	annotation := p.takePragma()

	v := parseVariable(tokens)
	if v == nil {
		if annotation != nil {
			p.errorAt(annotation.Pos, "annotation is not attached to a variable declaration")
		}
		return
	}
	v.Pragma = annotation
	file.Vars = append(file.Vars, v)
}

// parseBlockDeclaration handles a declaration whose header runs from start to
// the '{' at index brace.
func (p *Parser) parseBlockDeclaration(file *ast.File, start, brace int) {
	header := p.tokens[start:brace]

	for _, tok := range header {
		if tok.Is(token.Punctuation, "(") {
			if fn := p.parseFunction(header, brace); fn != nil {
				file.Functions = append(file.Functions, fn)
			}
			return
		}
	}

	for p.current < brace {
		p.advance()
	}

	if len(header) == 2 && header[0].Is(token.Keyword, "extern") && header[1].Kind == token.String {
		// extern "C" { ... }: keep parsing the declarations inside
		p.advance()
		p.takePragma()
		return
	}

	// enum and union bodies are not modelled
	if !p.skipBalanced("{", "}") {
		p.errorAt(p.tokens[start].Pos, "unterminated block")
	}
	for !p.isAtEnd() && !p.checkPunct(";") {
		p.advance()
	}
	p.match(token.Punctuation, ";")
	p.takePragma()
}
