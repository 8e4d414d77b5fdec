package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string) *ParseResult {
	t.Helper()
	result := ParseSource("test.h", source)
	require.Empty(t, result.ScanErrors)
	return result
}

func TestParseEventStruct(t *testing.T) {
	source := `
// #idl event declaration
typedef struct {
    u64 discriminator;
    address game;
    u64 comment_index;
    // #idl string
    AnchorString text;
} CommentEvent;
`
	result := parse(t, source)
	assert.Empty(t, result.ParseErrors)
	require.Len(t, result.File.Structs, 1)

	s := result.File.Structs[0]
	assert.Equal(t, "CommentEvent", s.Name)
	require.NotNil(t, s.Pragma)
	assert.Equal(t, "event declaration", s.Pragma.Text)
	assert.Equal(t, 2, s.Pragma.Pos.Line)

	require.Len(t, s.Fields, 4)
	assert.Equal(t, "u64", s.Fields[0].Type)
	assert.Equal(t, "discriminator", s.Fields[0].Name)
	assert.Nil(t, s.Fields[0].Pragma)
	assert.Equal(t, "address", s.Fields[1].Type)
	require.NotNil(t, s.Fields[3].Pragma)
	assert.Equal(t, "string", s.Fields[3].Pragma.Text)
	assert.Equal(t, "AnchorString", s.Fields[3].Type)
}

func TestParseDiscriminatorVariable(t *testing.T) {
	source := `
// #idl event discriminator CommentEvent
static const u64 COMMENT_EVENT_DISCRIMINATOR = UINT64_C(0x2d4150b25ba4e2b0);
static const u64 COMMENT_MAX_LEN = 280;
`
	result := parse(t, source)
	assert.Empty(t, result.ParseErrors)
	require.Len(t, result.File.Vars, 2)

	v := result.File.Vars[0]
	assert.True(t, v.IsConst)
	assert.Equal(t, "u64", v.Type)
	assert.Equal(t, "COMMENT_EVENT_DISCRIMINATOR", v.Name)
	require.NotNil(t, v.Value)
	assert.Equal(t, "UINT64_C(0x2d4150b25ba4e2b0)", *v.Value)
	assert.Equal(t, "event discriminator CommentEvent", v.PragmaText())

	assert.Nil(t, result.File.Vars[1].Pragma)
	assert.Equal(t, "280", *result.File.Vars[1].Value)
}

func TestParseFirstAnnotationWins(t *testing.T) {
	source := `
// #idl struct discriminator A
// #idl struct discriminator B
static const u64 X = 1;
`
	result := parse(t, source)
	require.Len(t, result.File.Vars, 1)
	assert.Equal(t, "struct discriminator A", result.File.Vars[0].PragmaText())
}

func TestParseAnnotationIsClearedAfterDeclaration(t *testing.T) {
	source := `
// #idl struct discriminator A
static const u64 X = 1;
static const u64 Y = 2;
`
	result := parse(t, source)
	require.Len(t, result.File.Vars, 2)
	assert.Nil(t, result.File.Vars[1].Pragma)
}

func TestParseArrayTypes(t *testing.T) {
	source := `
typedef struct {
    u8 mint[32];
    u8 data[];
    u64 amounts[N];
    const char* label;
    unsigned long long total;
} Arrays;
`
	result := parse(t, source)
	require.Len(t, result.File.Structs, 1)

	fields := result.File.Structs[0].Fields
	require.Len(t, fields, 5)
	assert.Equal(t, "u8[32]", fields[0].Type)
	assert.Equal(t, "mint", fields[0].Name)
	assert.Equal(t, "u8[]", fields[1].Type)
	assert.Equal(t, "u64[N]", fields[2].Type)
	assert.Equal(t, "char*", fields[3].Type)
	assert.True(t, fields[3].IsConst)
	assert.Equal(t, "unsigned long long", fields[4].Type)
}

func TestParseStructNameBeforeBody(t *testing.T) {
	source := `
struct packed Pair {
    u8 a;
    u32 b;
};
struct __attribute__((packed)) Other { u8 c; };
`
	result := parse(t, source)
	assert.Empty(t, result.ParseErrors)
	require.Len(t, result.File.Structs, 2)

	assert.Equal(t, "Pair", result.File.Structs[0].Name)
	assert.True(t, result.File.Structs[0].Packed)
	assert.Len(t, result.File.Structs[0].Fields, 2)

	assert.Equal(t, "Other", result.File.Structs[1].Name)
	assert.True(t, result.File.Structs[1].Packed)
}

func TestParseAccountsStruct(t *testing.T) {
	source := `
// #idl instruction accounts comment_post
typedef struct {
    // #idl writable
    SolAccountInfo ci;
    // #idl signer
    SolAccountInfo user;
    SolAccountInfo system_program;
} CommentPostAccounts;
`
	result := parse(t, source)
	require.Len(t, result.File.Structs, 1)

	s := result.File.Structs[0]
	assert.Equal(t, "instruction accounts comment_post", s.PragmaText())
	require.Len(t, s.Fields, 3)
	assert.Equal(t, "writable", s.Fields[0].PragmaText())
	assert.Equal(t, "signer", s.Fields[1].PragmaText())
	assert.Nil(t, s.Fields[2].Pragma)
}

func TestParseVoidFunction(t *testing.T) {
	source := `
// #idl instruction declaration
static void comment_post(
    const Context* ctx,
    CommentPostAccounts* accounts
) {
    // #idl string
    require(ctx != 0, "missing");
    if (x) { y(); }
}

static CommentIndex* comment_index_load(const Context* ctx) {
    return 0;
}

void prototype(int a);

static const u64 AFTER = 1;
`
	result := parse(t, source)
	assert.Empty(t, result.ParseErrors)

	require.Len(t, result.File.Functions, 1)
	fn := result.File.Functions[0]
	assert.Equal(t, "comment_post", fn.Name)
	assert.Equal(t, "instruction declaration", fn.PragmaText())

	// annotations inside the body do not leak to the next declaration
	require.Len(t, result.File.Vars, 1)
	assert.Equal(t, "AFTER", result.File.Vars[0].Name)
	assert.Nil(t, result.File.Vars[0].Pragma)
}

func TestParseAnnotatedNonVoidFunction(t *testing.T) {
	source := `
// #idl instruction declaration
static u64 handler(void) { return 1; }
`
	result := parse(t, source)
	assert.Empty(t, result.File.Functions)
	require.Len(t, result.ParseErrors, 1)
	assert.Contains(t, result.ParseErrors[0].Message, "must return void")
}

func TestParseSkipsPreprocessorAndBlocks(t *testing.T) {
	source := `
#ifndef X_H
#define X_H
#include <ivy-lib/types.h>
#define MAX(a, b) \
    ((a) > (b) ? (a) : (b))

enum Side { BUY, SELL };

static const u64 TABLE[] = { 1, 2, 3 };

extern "C" {
static const u64 INSIDE = 7;
}
#endif
`
	result := parse(t, source)
	assert.Empty(t, result.ParseErrors)

	require.Len(t, result.File.Vars, 2)
	assert.Equal(t, "u64[]", result.File.Vars[0].Type)
	assert.Equal(t, "{1,2,3}", *result.File.Vars[0].Value)
	assert.Equal(t, "INSIDE", result.File.Vars[1].Name)
}

func TestParseRecoversFromBadStruct(t *testing.T) {
	source := `
typedef struct {
    u8 a;
    struct { u8 b; } inner;
    u8 c;
} Outer;

static const u64 NEXT = 2;
`
	result := parse(t, source)
	require.Len(t, result.ParseErrors, 1)
	assert.Contains(t, result.ParseErrors[0].Message, "nested struct")

	require.Len(t, result.File.Structs, 1)
	fields := result.File.Structs[0].Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Name)
	assert.Equal(t, "c", fields[1].Name)
	require.Len(t, result.File.Vars, 1)
}

func TestParseTrailingAnnotation(t *testing.T) {
	result := parse(t, "static const u64 A = 1;\n// #idl struct declaration\n")
	require.Len(t, result.ParseErrors, 1)
	assert.Contains(t, result.ParseErrors[0].Message, "not followed by a declaration")
	assert.Equal(t, 2, result.ParseErrors[0].Position.Line)
}

func TestParseVariableRejectsNonDeclarations(t *testing.T) {
	tokens, _ := Tokenize("a.h", "(x)")
	assert.Nil(t, parseVariable(tokens[:len(tokens)-1]))

	tokens, _ = Tokenize("a.h", "u64")
	assert.Nil(t, parseVariable(tokens[:len(tokens)-1]))

	tokens, _ = Tokenize("a.h", "void f(int a)")
	assert.Nil(t, parseVariable(tokens[:len(tokens)-1]))
}

func TestParseRecoversFromBadStructTail(t *testing.T) {
	source := `
typedef struct {
    u8 a;
} Bad = 4
// #idl struct declaration
;

static const u64 NEXT = 2;
`
	result := parse(t, source)
	require.Len(t, result.ParseErrors, 1)
	assert.Contains(t, result.ParseErrors[0].Message, "expected ';' after struct definition")

	assert.Empty(t, result.File.Structs)
	require.Len(t, result.File.Vars, 1)
	assert.Equal(t, "NEXT", result.File.Vars[0].Name)
	assert.Nil(t, result.File.Vars[0].Pragma)
}

func TestParseRecoversFromUnnamedFunction(t *testing.T) {
	source := `
// #idl instruction declaration
(void) { x; }

// #idl struct declaration
typedef struct {
    u8 a;
} After;
`
	result := parse(t, source)
	require.Len(t, result.ParseErrors, 1)
	assert.Contains(t, result.ParseErrors[0].Message, "no function name")
	assert.Equal(t, 2, result.ParseErrors[0].Position.Line)

	assert.Empty(t, result.File.Functions)
	require.Len(t, result.File.Structs, 1)
	assert.Equal(t, "After", result.File.Structs[0].Name)
	require.NotNil(t, result.File.Structs[0].Pragma)
}

func TestParseAnnotationBeforeClosingBrace(t *testing.T) {
	source := `
typedef struct {
    u8 a;
    // #idl event field
} Holder;

static const u64 NEXT = 2;
`
	result := parse(t, source)
	require.Len(t, result.ParseErrors, 1)
	assert.Contains(t, result.ParseErrors[0].Message, "not followed by a declaration")
	assert.Equal(t, 4, result.ParseErrors[0].Position.Line)

	require.Len(t, result.File.Structs, 1)
	assert.Len(t, result.File.Structs[0].Fields, 1)
	require.Len(t, result.File.Vars, 1)
	assert.Nil(t, result.File.Vars[0].Pragma)
}
