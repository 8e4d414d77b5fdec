package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

var directiveParser = participle.MustBuild[Directive](
	participle.Lexer(DirectiveLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseDirective parses annotation text. The filename is only used in error positions.
func ParseDirective(filename, text string) (*Directive, error) {
	directive, err := directiveParser.ParseString(filename, text)
	if err != nil {
		return nil, err
	}
	return directive, nil
}

// DescribeError renders a parse error with a caret under the offending column.
func DescribeError(text string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return err.Error()
	}

	pos := pe.Position()
	column := pos.Column
	if column < 1 {
		column = 1
	}
	caret := strings.Repeat(" ", column-1) + "^"
	return fmt.Sprintf("%s\n%s\n%s", pe.Message(), text, caret)
}
