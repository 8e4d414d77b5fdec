package bindgen

import (
	"go/parser"
	"go/token"
	"testing"

	"cidl/internal/idl"
	"cidl/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadIvy(t *testing.T) *idl.IDL {
	t.Helper()
	doc, err := idl.Load("../../testdata/idl/ivy.json")
	require.NoError(t, err)
	return doc
}

func generate(t *testing.T, doc *idl.IDL, opts Options) string {
	t.Helper()
	files, err := New(doc, opts).Generate()
	require.NoError(t, err)
	require.Contains(t, files, FileName)

	src := files[FileName]
	_, err = parser.ParseFile(token.NewFileSet(), FileName, src, parser.AllErrors)
	require.NoError(t, err)
	return src
}

func TestGenerateEvents(t *testing.T) {
	src := generate(t, loadIvy(t), Options{Catalogue: DefaultCatalogue()})

	assert.Contains(t, src, "// Code generated by cidl-bindgen from the Ivy interface document. DO NOT EDIT.")
	assert.Contains(t, src, "package events\n")
	assert.Contains(t, src, `"cidl/pkg/pumpfun"`)

	assert.Regexp(t, `GameSwapEventDiscriminator uint64 = 0x5772818798527af3`, src)
	assert.Regexp(t, `GameSwapEventName\s+= "gameSwapEvent"`, src)
	assert.Regexp(t, "IvyBalance\\s+uint64\\s+`json:\"ivyBalance,string\"`", src)
	assert.Regexp(t, "IsBuy\\s+bool\\s+`json:\"isBuy\"`", src)
	assert.Regexp(t, "Pad0\\s+\\[7\\]uint8\\s+`json:\"pad0\"`", src)
	assert.Regexp(t, "SwapAlt\\s+solana.PublicKey\\s+`json:\"swapAlt\"`", src)
	assert.Regexp(t, "Text\\s+string\\s+`json:\"text\"`", src)
	assert.Regexp(t, "Name\\s+\\[64\\]uint8\\s+`json:\"name\"`", src)
	assert.Contains(t, src, "func (GameSwapEvent) EventName() string { return GameSwapEventName }")

	// accounts are not events
	assert.NotContains(t, src, "type CommentIndex struct")
	assert.NotContains(t, src, "type Game struct")
}

func TestGenerateUnionAndDispatch(t *testing.T) {
	src := generate(t, loadIvy(t), Options{Catalogue: DefaultCatalogue()})

	assert.Contains(t, src, "type PfTradeEvent struct {\n\tpumpfun.TradeEvent\n}")
	assert.Contains(t, src, `PfTradeEventName = "pfTradeEvent"`)
	assert.Contains(t, src, "case pumpfun.TradeEventDiscriminator:")
	assert.Contains(t, src, "return PfTradeEvent{ev}, nil")
	assert.Contains(t, src, "case CommentEventDiscriminator:")

	assert.Contains(t, src, "case CommentEvent, GameCreateEvent, GameSwapEvent, GameBurnEvent:\n\t\treturn SourceProgram")
	assert.Contains(t, src, "case PfTradeEvent, PfMigrationEvent:\n\t\treturn SourcePf")
	assert.Contains(t, src, "case PaBuyEvent, PaSellEvent:\n\t\treturn SourcePa")
	assert.Contains(t, src, "case SolPriceEvent:\n\t\treturn SourceFx")
	assert.Contains(t, src, "case InitializeEvent, HydrateEvent:\n\t\treturn SourceMisc")

	for _, name := range []string{"CommentEvent", "PaSellEvent", "SolPriceEvent", "HydrateEvent"} {
		assert.Contains(t, src, "case "+name+"Name:\n\t\treturn decodeJSON["+name+"](data)")
	}
}

func TestGenerateWithoutCatalogue(t *testing.T) {
	src := generate(t, loadIvy(t), Options{Package: "ivyevents", Generator: "test"})

	assert.Contains(t, src, "package ivyevents\n")
	assert.Contains(t, src, "// Code generated by test")
	assert.NotContains(t, src, "pumpfun")
	assert.NotContains(t, src, "return SourcePf")
}

func TestGenerateEmptyDocument(t *testing.T) {
	src := generate(t, idl.New("11111111111111111111111111111111", "Empty"), Options{})
	assert.Contains(t, src, "func DecodeEventData(data []byte) (EventData, error)")
	assert.Contains(t, src, "case SolPriceEvent:")
}

func eventDoc(fields ...idl.Field) *idl.IDL {
	doc := idl.New("11111111111111111111111111111111", "Test")
	doc.Events = []idl.Event{{Name: "PoolEvent", Discriminator: idl.DiscriminatorFromUint64(1)}}
	doc.Types = []idl.TypeDef{{Name: "PoolEvent", Type: idl.TypeDefBody{Kind: "struct", Fields: fields}}}
	return doc
}

func TestGenerateTypeMapping(t *testing.T) {
	doc := eventDoc(
		idl.Field{Name: "items", Type: types.Array{Elem: types.U16, Len: types.Generic("N")}},
		idl.Field{Name: "total", Type: types.U128},
		idl.Field{Name: "delta", Type: types.I64},
		idl.Field{Name: "owners", Type: types.Vec{Elem: types.Pubkey}},
		idl.Field{Name: "config", Type: types.Option{Elem: types.Custom("PoolConfig")}},
	)
	doc.Types = append(doc.Types, idl.TypeDef{Name: "PoolConfig", Type: idl.TypeDefBody{Kind: "struct", Fields: []idl.Field{
		{Name: "fee_bps", Type: types.U16},
	}}})

	src := generate(t, doc, Options{Generics: map[string]uint64{"N": 4}})
	assert.Regexp(t, "Items\\s+\\[4\\]uint16\\s+`json:\"items\"`", src)
	assert.Regexp(t, "Total\\s+bin.Uint128\\s+`json:\"total\"`", src)
	assert.Regexp(t, "Delta\\s+int64\\s+`json:\"delta,string\"`", src)
	assert.Regexp(t, "Owners\\s+\\[\\]solana.PublicKey\\s+`json:\"owners\"`", src)
	assert.Regexp(t, "Config\\s+\\*PoolConfig\\s+`json:\"config\" bin:\"optional\"`", src)
	assert.Contains(t, src, "type PoolConfig struct {")
	assert.Regexp(t, "FeeBps uint16 `json:\"feeBps\"`", src)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  *idl.IDL
		opts Options
		msg  string
	}{
		{
			name: "unresolved generic",
			doc:  eventDoc(idl.Field{Name: "items", Type: types.Array{Elem: types.U8, Len: types.Generic("N")}}),
			msg:  `generic length "N" has no value`,
		},
		{
			name: "unknown custom type",
			doc:  eventDoc(idl.Field{Name: "x", Type: types.Custom("Missing")}),
			msg:  `unknown type "Missing"`,
		},
		{
			name: "colliding field names",
			doc:  eventDoc(idl.Field{Name: "a_b", Type: types.U8}, idl.Field{Name: "aB", Type: types.U8}),
			msg:  "same Go name AB",
		},
		{
			name: "synthetic name",
			doc: func() *idl.IDL {
				doc := eventDoc()
				doc.Events[0].Name = "SolPriceEvent"
				doc.Types[0].Name = "SolPriceEvent"
				return doc
			}(),
			msg: "SolPriceEvent is defined more than once",
		},
		{
			name: "shared discriminator",
			doc: func() *idl.IDL {
				doc := eventDoc()
				doc.Events = append(doc.Events, idl.Event{Name: "Other", Discriminator: idl.DiscriminatorFromUint64(1)})
				doc.Types = append(doc.Types, idl.TypeDef{Name: "Other", Type: idl.TypeDefBody{Kind: "struct"}})
				return doc
			}(),
			msg: "share discriminator",
		},
		{
			name: "bad catalogue source",
			doc:  eventDoc(),
			opts: Options{Catalogue: Catalogue{Import: "x/y", Events: []AuxEvent{{Name: "A", Type: "B", Discriminator: "C", Value: 2, Source: "chain"}}}},
			msg:  `unknown source "chain"`,
		},
		{
			name: "catalogue without import",
			doc:  eventDoc(),
			opts: Options{Catalogue: Catalogue{Events: []AuxEvent{{Name: "A", Type: "B", Discriminator: "C", Value: 2, Source: SourcePf}}}},
			msg:  "need an import path",
		},
		{
			name: "catalogue without discriminator value",
			doc:  eventDoc(),
			opts: Options{Catalogue: Catalogue{Import: "x/y", Events: []AuxEvent{{Name: "A", Type: "B", Discriminator: "C", Source: SourcePf}}}},
			msg:  "A: discriminator value is not set",
		},
		{
			name: "catalogue shares a program discriminator",
			doc:  eventDoc(),
			opts: Options{Catalogue: Catalogue{Import: "x/y", Events: []AuxEvent{{Name: "XEvent", Type: "B", Discriminator: "C", Value: 1, Source: SourcePf}}}},
			msg:  "events PoolEvent and XEvent share discriminator 0x0000000000000001",
		},
		{
			name: "catalogue entries share a discriminator",
			doc:  eventDoc(),
			opts: Options{Catalogue: Catalogue{Import: "x/y", Events: []AuxEvent{
				{Name: "XEvent", Type: "B", Discriminator: "C", Value: 7, Source: SourcePf},
				{Name: "YEvent", Type: "D", Discriminator: "E", Value: 7, Source: SourcePa},
			}}},
			msg: "events XEvent and YEvent share discriminator",
		},
		{
			name: "field named like a generated method",
			doc:  eventDoc(idl.Field{Name: "event_name", Type: types.U8}),
			msg:  "PoolEvent: field event_name maps to the generated method EventName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.doc, tt.opts).Generate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestGenerateNestedTypeMayUseMethodNames(t *testing.T) {
	doc := eventDoc(idl.Field{Name: "inner", Type: types.Custom("Inner")})
	doc.Types = append(doc.Types, idl.TypeDef{Name: "Inner", Type: idl.TypeDefBody{Kind: "struct", Fields: []idl.Field{
		{Name: "event_name", Type: types.U8},
	}}})

	src := generate(t, doc, Options{})
	assert.Regexp(t, "EventName uint8 `json:\"eventName\"`", src)
}

func TestGenerateSignedInt128(t *testing.T) {
	src := generate(t, eventDoc(
		idl.Field{Name: "pnl", Type: types.I128},
		idl.Field{Name: "hedge", Type: types.Option{Elem: types.I128}},
	), Options{})

	assert.Regexp(t, "Pnl\\s+Int128\\s+`json:\"pnl\"`", src)
	assert.Regexp(t, "Hedge\\s+\\*Int128\\s+`json:\"hedge\" bin:\"optional\"`", src)
	assert.Contains(t, src, "type Int128 struct {\n\tbin.Int128\n}")
	assert.Contains(t, src, "func (i Int128) MarshalJSON() ([]byte, error) {")
	assert.Contains(t, src, "func (i *Int128) UnmarshalJSON(b []byte) error {")
	assert.Contains(t, src, `"math/big"`)

	// the helper is only emitted when a field needs it
	src = generate(t, eventDoc(idl.Field{Name: "total", Type: types.U128}), Options{})
	assert.NotContains(t, src, "type Int128 struct")
	assert.NotContains(t, src, `"math/big"`)
}

func TestGenerateInt128NameIsReserved(t *testing.T) {
	doc := eventDoc()
	doc.Events[0].Name = "Int128"
	doc.Types[0].Name = "Int128"
	_, err := New(doc, Options{}).Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Int128 is defined more than once")
}

func TestFieldTag(t *testing.T) {
	assert.Equal(t, `json:"commentIndex,string"`, fieldTag("comment_index", types.U64))
	assert.Equal(t, `json:"isBuy"`, fieldTag("is_buy", types.Bool))
	assert.Equal(t, `json:"next" bin:"optional"`, fieldTag("next", types.Option{Elem: types.U8}))
	assert.Equal(t, "gameSwapEvent", lowerFirst("GameSwapEvent"))
}
