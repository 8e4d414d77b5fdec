package errors

import (
	"fmt"
	"strings"

	"cidl/internal/ast"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured error with context. It is returned
// as an error value by the assembler and rendered by ErrorReporter.
type CompilerError struct {
	Level    ErrorLevel
	Code     string       // Error code like E0400
	Message  string       // Primary error message
	Position ast.Position // Location in source
	Length   int          // Length of the problematic region
	Notes    []string     // Additional context notes
	HelpText string       // Help text for the error
}

func (e *CompilerError) Error() string {
	var b strings.Builder
	if e.Position.Line > 0 {
		b.WriteString(e.Position.String())
		b.WriteString(": ")
	}
	b.WriteString(string(e.Level))
	if e.Code != "" {
		b.WriteString("[" + e.Code + "]")
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// ErrorReporter renders errors against the source they point into
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError formats an error with Rust-like styling: header, location,
// the offending line with one line of context on each side, then notes.
func (er *ErrorReporter) FormatError(err *CompilerError) string {
	var result strings.Builder

	levelColor := levelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0400]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(err.Level)), err.Message))
	}

	width := lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)

	if err.Position.Line > 0 {
		result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
			indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column))
		er.writeSnippet(&result, err, width)
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

func (er *ErrorReporter) writeSnippet(result *strings.Builder, err *CompilerError, width int) {
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	indent := strings.Repeat(" ", width)
	line := err.Position.Line

	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if line > 1 && line-2 < len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n", dim(fmt.Sprintf("%*d", width, line-1)), dim("│"), er.lines[line-2]))
	}

	if line <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n", bold(fmt.Sprintf("%*d", width, line)), dim("│"), er.lines[line-1]))
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker(err.Position.Column, err.Length, err.Level)))
	}

	if line < len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n", dim(fmt.Sprintf("%*d", width, line+1)), dim("│"), er.lines[line]))
	}
}

func levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// marker underlines the error span
func marker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	return spaces + levelColor(level)(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
