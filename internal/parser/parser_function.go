package parser

import (
	"cidl/internal/ast"
	"cidl/token"
)

// parseFunction handles a definition whose header ends at the '{' at index brace.
// Only functions returning void are kept; others are skipped.
func (p *Parser) parseFunction(header []token.Token, brace int) *ast.Function {
	fn := &ast.Function{Pos: header[0].Pos}

	paren := 0
	for paren < len(header) && !header[paren].Is(token.Punctuation, "(") {
		paren++
	}

	nameIdx := -1
	for i := paren - 1; i >= 0; i-- {
		if header[i].Kind == token.Name {
			nameIdx = i
			fn.Name = header[i].Text
			fn.NamePos = header[i].Pos
			break
		}
	}

	if nameIdx < 0 {
		if annotation := p.leading[p.current]; annotation != nil {
			p.errorAt(annotation.Pos, "annotated declaration has no function name")
		}
		p.synchronize()
		return nil
	}

	returnsVoid := false
	if nameIdx > 0 {
		for _, tok := range header[:nameIdx] {
			switch {
			case tok.Is(token.KeywordType, "void"):
				returnsVoid = true
			case tok.Is(token.Operator, "*"):
				returnsVoid = false
			}
		}
	}

	for p.current <= brace {
		p.advance()
	}
	fn.Pragma = p.takePragma()

	if !p.skipBody() {
		p.errorAt(fn.Pos, "unterminated function body")
	}
	p.takePragma()

	if fn.Name == "" || !returnsVoid {
		if fn.Pragma != nil {
			p.errorAt(fn.Pragma.Pos, "annotated function must return void")
		}
		return nil
	}
	return fn
}

// skipBody consumes a function body after its opening brace.
func (p *Parser) skipBody() bool {
	depth := 1
	for !p.isAtEnd() {
		tok := p.advance()
		switch {
		case tok.Is(token.Punctuation, "{"):
			depth++
		case tok.Is(token.Punctuation, "}"):
			depth--
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
