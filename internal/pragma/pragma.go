// Package pragma recognizes "#idl" annotations in comments and parses their
// directive text into a closed set of typed directives.
package pragma

import (
	"fmt"
	"strings"

	"cidl/grammar"
)

const prefix = "#idl"

// Extract returns the directive text of an annotation comment. It accepts
// "///", "//" and "/* */" comments whose body starts with "#idl".
func Extract(comment string) (string, bool) {
	var body string
	switch {
	case strings.HasPrefix(comment, "///"):
		body = comment[3:]
	case strings.HasPrefix(comment, "//"):
		body = comment[2:]
	case strings.HasPrefix(comment, "/*") && strings.HasSuffix(comment, "*/") && len(comment) >= 4:
		body = comment[2 : len(comment)-2]
	default:
		return "", false
	}

	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, prefix) {
		return "", false
	}
	rest := body[len(prefix):]
	// "#idlfoo" is not an annotation
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// Directive is one of the typed annotation forms below.
type Directive interface {
	directive()
	String() string
}

type EventDiscriminator struct{ Name string }
type EventDeclaration struct{}
type StructDiscriminator struct{ Name string }
type StructDeclaration struct{}
type InstructionDiscriminator struct{ Name string }
type InstructionDeclaration struct{}
type InstructionAccounts struct{ Name string }
type InstructionData struct{ Name string }

// Reference splices the account list declared for another struct.
type Reference struct{ Name string }

// StringField marks a trailing variable-length string field.
type StringField struct{}

// StringFields replaces one trailing blob field with several strings.
type StringFields struct{ Names []string }

// AccountModifiers flags an instruction account. Readonly is the default and
// only exists so it can be stated explicitly.
type AccountModifiers struct {
	Writable bool
	Signer   bool
	Readonly bool
}

func (EventDiscriminator) directive()       {}
func (EventDeclaration) directive()         {}
func (StructDiscriminator) directive()      {}
func (StructDeclaration) directive()        {}
func (InstructionDiscriminator) directive() {}
func (InstructionDeclaration) directive()   {}
func (InstructionAccounts) directive()      {}
func (InstructionData) directive()          {}
func (Reference) directive()                {}
func (StringField) directive()              {}
func (StringFields) directive()             {}
func (AccountModifiers) directive()         {}

func (d EventDiscriminator) String() string       { return "event discriminator " + d.Name }
func (EventDeclaration) String() string           { return "event declaration" }
func (d StructDiscriminator) String() string      { return "struct discriminator " + d.Name }
func (StructDeclaration) String() string          { return "struct declaration" }
func (d InstructionDiscriminator) String() string { return "instruction discriminator " + d.Name }
func (InstructionDeclaration) String() string     { return "instruction declaration" }
func (d InstructionAccounts) String() string      { return "instruction accounts " + d.Name }
func (d InstructionData) String() string          { return "instruction data " + d.Name }
func (d Reference) String() string                { return "reference " + d.Name }
func (StringField) String() string                { return "string" }
func (d StringFields) String() string             { return "strings " + strings.Join(d.Names, " ") }

func (m AccountModifiers) String() string {
	var parts []string
	if m.Writable {
		parts = append(parts, "writable")
	}
	if m.Signer {
		parts = append(parts, "signer")
	}
	if m.Readonly {
		parts = append(parts, "readonly")
	}
	return strings.Join(parts, " ")
}

// Error is a malformed directive.
type Error struct {
	Text    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid #idl directive %q: %s", e.Text, e.Message)
}

func errorf(text, format string, args ...any) *Error {
	return &Error{Text: text, Message: fmt.Sprintf(format, args...)}
}

var entityKeywords = map[string]bool{
	"event":       true,
	"struct":      true,
	"instruction": true,
	"reference":   true,
	"strings":     true,
}

// Parse parses directive text as returned by Extract.
func Parse(text string) (Directive, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errorf(text, "empty directive")
	}

	d, err := grammar.ParseDirective("", text)
	if err != nil {
		return nil, errorf(text, "%s", grammar.DescribeError(text, err))
	}

	switch {
	case d.Event != nil:
		return parseEntity(text, "event", d.Event)
	case d.Struct != nil:
		return parseEntity(text, "struct", d.Struct)
	case d.Instruction != nil:
		return parseEntity(text, "instruction", d.Instruction)
	case d.Reference != nil:
		return Reference{Name: d.Reference.Name}, nil
	case d.Strings != nil:
		if len(d.Strings.Names) == 0 {
			return nil, errorf(text, "strings requires at least one field name")
		}
		return StringFields{Names: d.Strings.Names}, nil
	case d.String:
		return StringField{}, nil
	default:
		return parseModifiers(text, d.Modifiers)
	}
}

func parseEntity(text, entity string, decl *grammar.Declaration) (Directive, error) {
	needsName := func() error {
		if decl.Name == "" {
			return errorf(text, "%s %s requires a name", entity, decl.Role)
		}
		return nil
	}
	noName := func() error {
		if decl.Name != "" {
			return errorf(text, "unexpected name %q after %s %s", decl.Name, entity, decl.Role)
		}
		return nil
	}

	switch entity + " " + decl.Role {
	case "event discriminator":
		if err := needsName(); err != nil {
			return nil, err
		}
		return EventDiscriminator{Name: decl.Name}, nil
	case "event declaration":
		if err := noName(); err != nil {
			return nil, err
		}
		return EventDeclaration{}, nil
	case "struct discriminator":
		if err := needsName(); err != nil {
			return nil, err
		}
		return StructDiscriminator{Name: decl.Name}, nil
	case "struct declaration":
		if err := noName(); err != nil {
			return nil, err
		}
		return StructDeclaration{}, nil
	case "instruction discriminator":
		if err := needsName(); err != nil {
			return nil, err
		}
		return InstructionDiscriminator{Name: decl.Name}, nil
	case "instruction declaration":
		if err := noName(); err != nil {
			return nil, err
		}
		return InstructionDeclaration{}, nil
	case "instruction accounts":
		if err := needsName(); err != nil {
			return nil, err
		}
		return InstructionAccounts{Name: decl.Name}, nil
	case "instruction data":
		if err := needsName(); err != nil {
			return nil, err
		}
		return InstructionData{Name: decl.Name}, nil
	}
	return nil, errorf(text, "unknown %s role %q", entity, decl.Role)
}

func parseModifiers(text string, modifiers []*grammar.Modifier) (Directive, error) {
	var m AccountModifiers
	for _, mod := range modifiers {
		switch mod.Name {
		case "writable":
			if m.Readonly {
				return nil, errorf(text, "account cannot be both writable and readonly")
			}
			m.Writable = true
		case "signer":
			m.Signer = true
		case "readonly":
			if m.Writable {
				return nil, errorf(text, "account cannot be both writable and readonly")
			}
			m.Readonly = true
		default:
			if entityKeywords[mod.Name] {
				return nil, errorf(text, "%s requires more arguments", mod.Name)
			}
			return nil, errorf(text, "unknown account modifier %q", mod.Name)
		}
	}
	return m, nil
}

// IsDiscriminator reports whether d declares a discriminator constant.
func IsDiscriminator(d Directive) bool {
	switch d.(type) {
	case EventDiscriminator, StructDiscriminator, InstructionDiscriminator:
		return true
	}
	return false
}
