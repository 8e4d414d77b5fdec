package parser

import (
	"cidl/internal/ast"
	"cidl/token"
)

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.notePragma(p.current)
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) checkText(kind token.Kind, text string) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Is(kind, text)
}

func (p *Parser) checkPunct(text string) bool {
	return p.checkText(token.Punctuation, text)
}

func (p *Parser) match(kind token.Kind, texts ...string) bool {
	for _, text := range texts {
		if p.checkText(kind, text) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consumePunct(text, message string) bool {
	if p.checkPunct(text) {
		p.advance()
		return true
	}
	p.errorAtCurrent(message)
	return false
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

// peekAt looks n tokens ahead, returning EOF past the end.
func (p *Parser) peekAt(n int) token.Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+n]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) errorAtCurrent(message string) {
	p.errorAt(p.peek().Pos, message)
}

func (p *Parser) errorAt(pos ast.Position, message string) {
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Position: pos,
	})
}

// notePragma makes the annotation before token i pending unless one already is.
func (p *Parser) notePragma(i int) {
	if p.pending == nil && p.leading[i] != nil {
		p.pending = p.leading[i]
	}
}

// takePragma returns the pending annotation and clears it.
func (p *Parser) takePragma() *ast.Pragma {
	pragma := p.pending
	p.pending = nil
	return pragma
}

// skipBalanced consumes a bracketed group starting at the current opening token.
func (p *Parser) skipBalanced(open, close string) bool {
	depth := 0
	for !p.isAtEnd() {
		tok := p.advance()
		switch {
		case tok.Is(token.Punctuation, open):
			depth++
		case tok.Is(token.Punctuation, close):
			depth--
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// synchronize skips to just past the next top-level ';' or a closing '}'.
func (p *Parser) synchronize() {
	depth := 0
	for !p.isAtEnd() {
		tok := p.advance()
		switch {
		case tok.Is(token.Punctuation, "{"):
			depth++
		case tok.Is(token.Punctuation, "}"):
			depth--
			if depth <= 0 {
				if p.checkPunct(";") {
					p.advance()
				}
				p.takePragma()
				return
			}
		case tok.Is(token.Punctuation, ";") && depth == 0:
			p.takePragma()
			return
		}
	}
	p.takePragma()
}
