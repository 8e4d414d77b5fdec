package ast

import "cidl/token"

// Position tracks location information for error reporting and tooling
type Position = token.Position

// Pragma is the directive text of an "#idl" comment, with the "#idl" prefix removed.
// Example: "// #idl event discriminator TradeEvent" has Text "event discriminator TradeEvent"
type Pragma struct {
	Pos  Position
	Text string
}

// Variable is a field or file-level variable declaration
// Example: "static const u64 TRADE_DISC = UINT64_C(0x12);"
type Variable struct {
	Pos     Position
	NamePos Position
	Type    string  // spelling with array brackets, e.g. "u8[32]"
	Name    string
	IsConst bool
	Value   *string // raw initializer text, token texts concatenated
	Pragma  *Pragma
}

// Struct is a struct definition with a body
// Example: "typedef struct { u64 discriminator; address user; } TradeEvent;"
type Struct struct {
	Pos     Position
	EndPos  Position
	NamePos Position
	Name    string
	Fields  []*Variable // in declaration order
	Packed  bool
	Pragma  *Pragma
}

// Function is a function definition with a body. Parameters are not modelled.
// Example: "static void mix_usdc(const SolParameters *params) { ... }"
type Function struct {
	Pos     Position
	NamePos Position
	Name    string
	Pragma  *Pragma
}

// File holds the declarations of one header in source order
type File struct {
	Path      string
	Vars      []*Variable
	Structs   []*Struct
	Functions []*Function
}

// PragmaText returns the attached directive text, or "" when there is none.
func (v *Variable) PragmaText() string {
	if v.Pragma == nil {
		return ""
	}
	return v.Pragma.Text
}

func (s *Struct) PragmaText() string {
	if s.Pragma == nil {
		return ""
	}
	return s.Pragma.Text
}

func (f *Function) PragmaText() string {
	if f.Pragma == nil {
		return ""
	}
	return f.Pragma.Text
}
