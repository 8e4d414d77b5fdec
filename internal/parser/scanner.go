package parser

import (
	"fmt"

	"cidl/grammar"
	"cidl/token"

	"github.com/alecthomas/participle/v2/lexer"
)

type Position = token.Position

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // optional: how many characters it covers
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

var symbolKinds = buildSymbolKinds()

func buildSymbolKinds() map[lexer.TokenType]string {
	kinds := make(map[lexer.TokenType]string)
	for name, tt := range grammar.CLexer.Symbols() {
		kinds[tt] = name
	}
	return kinds
}

// Tokenize lexes a header into a flat token slice terminated by an EOF token.
// Comments are kept. Bytes the lexer cannot classify become ScanErrors and
// scanning continues after them.
func Tokenize(filename, source string) ([]token.Token, []ScanError) {
	var (
		tokens []token.Token
		errors []ScanError
	)

	eof := Position{Filename: filename, Line: 1, Column: 1}

	lex, err := grammar.CLexer.LexString(filename, source)
	if err != nil {
		errors = append(errors, ScanError{Message: err.Error(), Position: eof})
		return []token.Token{{Kind: token.EOF, Pos: eof}}, errors
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			errors = append(errors, ScanError{Message: err.Error(), Position: eof})
			break
		}

		pos := Position{
			Filename: filename,
			Offset:   tok.Pos.Offset,
			Line:     tok.Pos.Line,
			Column:   tok.Pos.Column,
		}
		if tok.EOF() {
			eof = pos
			break
		}

		var kind token.Kind
		switch symbolKinds[tok.Type] {
		case "Whitespace":
			continue
		case "Invalid":
			errors = append(errors, ScanError{
				Message:  fmt.Sprintf("unexpected character %q", tok.Value),
				Position: pos,
				Length:   len(tok.Value),
			})
			continue
		case "Comment":
			kind = token.Comment
		case "Preproc":
			kind = token.Preproc
		case "String":
			kind = token.String
		case "Char":
			kind = token.Char
		case "Number":
			kind = token.Number
		case "Ident":
			kind = token.LookupIdent(tok.Value)
		case "Operator":
			kind = token.Operator
		case "Punctuation":
			kind = token.Punctuation
		default:
			errors = append(errors, ScanError{
				Message:  fmt.Sprintf("unknown token type for %q", tok.Value),
				Position: pos,
				Length:   len(tok.Value),
			})
			continue
		}

		tokens = append(tokens, token.Token{Kind: kind, Text: tok.Value, Pos: pos})
		eof = token.Token{Text: tok.Value, Pos: pos}.End()
	}

	tokens = append(tokens, token.Token{Kind: token.EOF, Pos: eof})
	return tokens, errors
}
