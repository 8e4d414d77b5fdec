package errors

import (
	"fmt"

	"cidl/internal/ast"
)

// ErrorBuilder provides a fluent interface for creating compiler errors
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, pos ast.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewWarning creates a new warning builder
func NewWarning(code, message string, pos ast.Position) *ErrorBuilder {
	b := NewError(code, message, pos)
	b.err.Level = Warning
	return b
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() *CompilerError {
	err := b.err
	return &err
}

// Helper functions for the errors the assembler raises

func InvalidDirective(text string, reason string, pos ast.Position) *CompilerError {
	return NewError(ErrorInvalidDirective, fmt.Sprintf("invalid directive '#idl %s'", text), pos).
		WithLength(len(text) + 5).
		WithNote(reason).
		Build()
}

func MisplacedDirective(directive, context string, pos ast.Position) *CompilerError {
	return NewError(ErrorMisplacedDirective, fmt.Sprintf("'#idl %s' is not allowed on %s", directive, context), pos).
		Build()
}

func IgnoredDirective(directive, name string, pos ast.Position) *CompilerError {
	return NewWarning(WarningIgnoredDirective, fmt.Sprintf("'#idl %s' on variable '%s' is ignored", directive, name), pos).
		WithHelp("only discriminator directives apply to variables").
		Build()
}

func DuplicateDiscriminator(kind, name string, pos, previous ast.Position) *CompilerError {
	return NewError(ErrorDuplicateDiscriminator, fmt.Sprintf("duplicate %s discriminator for '%s'", kind, name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("first declared at %s", previous)).
		Build()
}

func MissingDiscriminator(kind, name string, pos ast.Position) *CompilerError {
	return NewError(ErrorMissingDiscriminator, fmt.Sprintf("%s '%s' has no discriminator", kind, name), pos).
		WithLength(len(name)).
		WithHelp(fmt.Sprintf("declare one with '// #idl %s discriminator %s' above a u64 constant", kind, name)).
		Build()
}

func InvalidDiscriminatorValue(name, value string, pos ast.Position) *CompilerError {
	return NewError(ErrorInvalidDiscriminatorValue, fmt.Sprintf("discriminator '%s' has value '%s' which is not a u64", name, value), pos).
		WithLength(len(name)).
		Build()
}

func MissingDiscriminatorField(name string, pos ast.Position) *CompilerError {
	return NewError(ErrorMissingDiscriminatorField, fmt.Sprintf("'%s' must start with 'u64 discriminator'", name), pos).
		WithLength(len(name)).
		Build()
}

func FieldAfterString(field string, pos ast.Position) *CompilerError {
	return NewError(ErrorFieldAfterString, fmt.Sprintf("field '%s' follows a string field", field), pos).
		WithLength(len(field)).
		WithNote("string fields have no fixed size, so they must come last").
		Build()
}

func FieldAfterGenericArray(field, generic string, pos ast.Position) *CompilerError {
	return NewError(ErrorFieldAfterGenericArray, fmt.Sprintf("field '%s' follows an array of generic length '%s'", field, generic), pos).
		WithLength(len(field)).
		Build()
}

func UnknownReference(name string, pos ast.Position) *CompilerError {
	return NewError(ErrorUnknownReference, fmt.Sprintf("reference to undeclared account list '%s'", name), pos).
		WithHelp("referenced account structs must be declared before the reference, in this file or an earlier one").
		Build()
}

func UndeclaredInstruction(name string, pos ast.Position) *CompilerError {
	return NewError(ErrorUndeclaredInstruction, fmt.Sprintf("instruction '%s' has a discriminator but no declaration", name), pos).
		WithLength(len(name)).
		WithHelp("annotate its handler with '// #idl instruction declaration'").
		Build()
}

func DuplicateDeclaration(kind, name string, pos ast.Position) *CompilerError {
	return NewError(ErrorDuplicateDeclaration, fmt.Sprintf("%s '%s' is declared more than once", kind, name), pos).
		WithLength(len(name)).
		Build()
}
