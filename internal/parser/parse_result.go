package parser

import (
	"fmt"
	"os"

	"cidl/internal/ast"
)

// ParseResult contains the full parsing result of one header
type ParseResult struct {
	File        *ast.File
	ParseErrors []ParseError
	ScanErrors  []ScanError
}

// HasErrors reports whether any declaration was skipped or any byte could not be lexed.
func (pr *ParseResult) HasErrors() bool {
	return len(pr.ParseErrors) > 0 || len(pr.ScanErrors) > 0
}

// ParseSource tokenizes and parses a header held in memory.
func ParseSource(path string, source string) *ParseResult {
	tokens, scanErrors := Tokenize(path, source)

	parser := NewParser(path, tokens)
	file := parser.ParseFile()

	return &ParseResult{
		File:        file,
		ParseErrors: parser.errors,
		ScanErrors:  scanErrors,
	}
}

// ParseFile reads and parses a header from disk.
func ParseFile(path string) (*ParseResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSource(path, string(source)), nil
}
