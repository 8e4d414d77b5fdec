package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestVariableString(t *testing.T) {
	v := &Variable{
		Type:    "u64",
		Name:    "TRADE_DISC",
		IsConst: true,
		Value:   strPtr("UINT64_C(0x12)"),
		Pragma:  &Pragma{Text: "event discriminator Trade"},
	}

	assert.Equal(t, "[#idl event discriminator Trade] const u64 TRADE_DISC = UINT64_C(0x12)", v.String())
}

func TestStructString(t *testing.T) {
	s := &Struct{
		Name:   "Trade",
		Packed: true,
		Fields: []*Variable{
			{Type: "u64", Name: "discriminator"},
			{Type: "u8[32]", Name: "mint"},
		},
	}

	assert.Equal(t, "packed struct Trade {\n  u64 discriminator\n  u8[32] mint\n}", s.String())
}

func TestFileString(t *testing.T) {
	f := &File{
		Path:      "a.h",
		Functions: []*Function{{Name: "mix", Pragma: &Pragma{Text: "instruction declaration"}}},
	}

	assert.Equal(t, "file a.h\n[#idl instruction declaration]\nfn mix\n", f.String())
}

func TestPragmaTextWithoutPragma(t *testing.T) {
	assert.Empty(t, (&Variable{}).PragmaText())
	assert.Empty(t, (&Struct{}).PragmaText())
	assert.Equal(t, "x", (&Function{Pragma: &Pragma{Text: "x"}}).PragmaText())
}
