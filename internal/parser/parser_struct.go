package parser

import (
	"fmt"

	"cidl/internal/ast"
	"cidl/token"
)

// isStructDefinition looks ahead for "[typedef] struct [name|packed|__attribute__(...)]* {".
func (p *Parser) isStructDefinition() bool {
	i := 0
	for p.peekAt(i).Kind == token.Keyword && storageKeywords[p.peekAt(i).Text] {
		i++
	}
	if !p.peekAt(i).Is(token.Keyword, "struct") {
		return false
	}
	i++

	for {
		tok := p.peekAt(i)
		switch {
		case tok.Kind == token.Name:
			i++
		case tok.Is(token.Keyword, "__attribute__"):
			end, ok := p.attributeEnd(i)
			if !ok {
				return false
			}
			i = end
		case tok.Is(token.Punctuation, "{"):
			return true
		default:
			return false
		}
	}
}

// attributeEnd returns the lookahead index just past "__attribute__((...))" at i.
func (p *Parser) attributeEnd(i int) (int, bool) {
	i++
	if !p.peekAt(i).Is(token.Punctuation, "(") {
		return i, false
	}
	depth := 0
	for {
		tok := p.peekAt(i)
		switch {
		case tok.Kind == token.EOF:
			return i, false
		case tok.Is(token.Punctuation, "("):
			depth++
		case tok.Is(token.Punctuation, ")"):
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
		i++
	}
}

// parseAttribute consumes "__attribute__((...))" and reports whether it asks for packing.
func (p *Parser) parseAttribute() bool {
	p.advance()
	if !p.checkPunct("(") {
		p.errorAtCurrent("expected '(' after __attribute__")
		return false
	}

	packed := false
	depth := 0
	for !p.isAtEnd() {
		tok := p.advance()
		switch {
		case tok.Is(token.Punctuation, "("):
			depth++
		case tok.Is(token.Punctuation, ")"):
			depth--
			if depth == 0 {
				return packed
			}
		case tok.Kind == token.Name && (tok.Text == "packed" || tok.Text == "__packed__"):
			packed = true
		}
	}
	return packed
}

func (p *Parser) parseStruct() *ast.Struct {
	s := &ast.Struct{Pos: p.peek().Pos}

	for !p.checkText(token.Keyword, "struct") {
		p.advance()
	}
	p.advance()

	// name or markers before the body
	for !p.checkPunct("{") {
		switch {
		case p.checkText(token.Keyword, "__attribute__"):
			if p.parseAttribute() {
				s.Packed = true
			}
		case p.checkText(token.Name, "packed"):
			p.advance()
			s.Packed = true
		default:
			tok := p.advance()
			if s.Name == "" {
				s.Name = tok.Text
				s.NamePos = tok.Pos
			}
		}
	}
	p.advance()
	s.Pragma = p.takePragma()

	if !p.parseStructBody(s) {
		return nil
	}
	s.EndPos = p.previous().End()

	if !p.parseStructTail(s) {
		p.synchronize()
		return nil
	}

	if s.Name == "" {
		p.errorAt(s.Pos, "anonymous struct definition has no name")
		return nil
	}
	return s
}

func (p *Parser) parseStructBody(s *ast.Struct) bool {
	for !p.checkPunct("}") {
		if p.isAtEnd() {
			p.errorAt(s.Pos, fmt.Sprintf("unterminated struct %s", s.Name))
			return false
		}
		p.parseField(s)
	}
	if orphan := p.leading[p.current]; orphan != nil {
		p.errorAt(orphan.Pos, "annotation is not followed by a declaration")
	}
	p.advance()
	p.takePragma()
	return true
}

func (p *Parser) parseField(s *ast.Struct) {
	start := p.current
	for {
		switch {
		case p.isAtEnd():
			return

		case p.checkPunct("}"):
			p.errorAtCurrent("expected ';' after struct field")
			p.takePragma()
			return

		case p.checkPunct("{"):
			p.errorAtCurrent("nested struct definitions are not supported")
			p.skipBalanced("{", "}")
			for !p.isAtEnd() && !p.checkPunct(";") && !p.checkPunct("}") {
				p.advance()
			}
			p.match(token.Punctuation, ";")
			p.takePragma()
			return

		case p.checkPunct(";"):
			tokens := p.tokens[start:p.current]
			p.advance()
			annotation := p.takePragma()

			v := parseVariable(tokens)
			if v == nil {
				if len(tokens) > 0 {
					p.errorAt(tokens[0].Pos, "expected field declaration")
				}
				return
			}
			v.Pragma = annotation
			s.Fields = append(s.Fields, v)
			return
		}
		p.advance()
	}
}

// parseStructTail reads the typedef names and attributes between '}' and ';'.
func (p *Parser) parseStructTail(s *ast.Struct) bool {
	defer p.takePragma()

	for {
		switch {
		case p.checkText(token.Keyword, "__attribute__"):
			if p.parseAttribute() {
				s.Packed = true
			}
		case p.check(token.Name):
			tok := p.advance()
			if s.Name == "" {
				s.Name = tok.Text
				s.NamePos = tok.Pos
			}
		case p.checkText(token.Operator, "*"), p.checkPunct(","):
			p.advance()
		default:
			return p.consumePunct(";", "expected ';' after struct definition")
		}
	}
}
