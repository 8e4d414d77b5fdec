package lsp

import (
	"cidl/internal/ast"
	"cidl/internal/errors"
	"cidl/internal/idl"
	"cidl/internal/parser"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const source = "cidl"

// ConvertParseErrors transforms skipped declarations into diagnostics.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    span(parseErr.Position, 1),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(source),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

// ConvertScanErrors transforms bytes the lexer could not classify into diagnostics.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    span(scanErr.Position, scanErr.Length),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(source),
			Message:  scanErr.Message,
		})
	}

	return diagnostics
}

// ConvertCompilerError maps an assembly error or warning to a diagnostic.
// Notes and help text are appended to the message.
func ConvertCompilerError(err *errors.CompilerError) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	if err.Level == errors.Warning {
		severity = protocol.DiagnosticSeverityWarning
	}

	message := err.Message
	for _, note := range err.Notes {
		message += "\nnote: " + note
	}
	if err.HelpText != "" {
		message += "\nhelp: " + err.HelpText
	}

	d := protocol.Diagnostic{
		Range:    span(err.Position, err.Length),
		Severity: ptrSeverity(severity),
		Source:   ptrString(source),
		Message:  message,
	}
	if err.Code != "" {
		d.Code = &protocol.IntegerOrString{Value: err.Code}
	}
	return d
}

type fileDiagnostic struct {
	path       string
	diagnostic protocol.Diagnostic
}

// assemble runs the assembler over files in order. Assembly stops at the
// first fatal error, so at most one error is reported alongside the warnings
// collected before it.
func assemble(cfg idl.Config, files []*ast.File) []fileDiagnostic {
	a, err := idl.NewAssembler(cfg)
	if err != nil {
		log.Errorf("assembler: %s", err)
		return nil
	}

	var out []fileDiagnostic
	for _, file := range files {
		err := a.AddFile(file)
		if err == nil {
			continue
		}

		if ce, ok := err.(*errors.CompilerError); ok {
			path := ce.Position.Filename
			if path == "" {
				path = file.Path
			}
			out = append(out, fileDiagnostic{path, ConvertCompilerError(ce)})
		} else {
			out = append(out, fileDiagnostic{file.Path, protocol.Diagnostic{
				Range:    span(ast.Position{Line: 1, Column: 1}, 1),
				Severity: ptrSeverity(protocol.DiagnosticSeverityError),
				Source:   ptrString(source),
				Message:  err.Error(),
			}})
		}
		break
	}

	for _, w := range a.Warnings() {
		out = append(out, fileDiagnostic{w.Position.Filename, ConvertCompilerError(w)})
	}
	return out
}

// span converts a 1-based position into a 0-based range on one line
func span(pos ast.Position, length int) protocol.Range {
	if length <= 0 {
		length = 1
	}
	line := uint32(max(pos.Line-1, 0))
	start := uint32(max(pos.Column-1, 0))
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: start},
		End:   protocol.Position{Line: line, Character: start + uint32(length)},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
