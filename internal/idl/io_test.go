package idl

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"cidl/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalShape(t *testing.T) {
	doc, err := assemble(t, buySource)
	require.NoError(t, err)

	data, err := Marshal(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, testProgramID.String(), raw["address"])
	assert.Equal(t, []any{}, raw["events"])

	ins := raw["instructions"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{16.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, ins["discriminator"])

	accounts := ins["accounts"].([]any)
	assert.Equal(t, map[string]any{"name": "global", "writable": true}, accounts[0])

	args := ins["args"].([]any)
	assert.Equal(t, map[string]any{"name": "pad0", "type": map[string]any{"array": []any{"u8", 7.0}}}, args[1])

	assert.Contains(t, string(data), "\n    \"address\"")
}

func TestWriteAndLoad(t *testing.T) {
	doc, err := assemble(t, buySource)
	require.NoError(t, err)
	doc.Types = append(doc.Types, TypeDef{
		Name: "Pool",
		Type: TypeDefBody{Kind: "struct", Fields: []Field{
			{Name: "items", Type: types.Array{Elem: types.U8, Len: types.Generic("N")}},
			{Name: "next", Type: types.Option{Elem: types.Custom("Pool")}},
		}},
	})

	path := filepath.Join(t.TempDir(), "out", FileName("Ivy"))
	require.NoError(t, Write(path, doc))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Unmarshal([]byte(`{"types":[{"name":"X","type":{"kind":"struct","fields":[{"name":"a","type":{"map":"u8"}}]}}]}`))
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	cases := map[string]uint64{
		"UINT64_C(0x2d4150b25ba4e2b0)": 0x2d4150b25ba4e2b0,
		"0x10ULL":                      16,
		"42":                           42,
		"42u":                          42,
		"0":                            0,
	}
	for text, want := range cases {
		got, err := ParseValue(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}

	for _, text := range []string{"", "0x", "abc", "-1", "UINT64_C()"} {
		_, err := ParseValue(text)
		assert.Error(t, err, text)
	}
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "Ivy", Capitalize("IVY"))
	assert.Equal(t, "MixUsdcToGame", PascalCase("mix_usdc_to_game"))
	assert.Equal(t, "SyncAta", PascalCase("sync_ATA"))
	assert.Equal(t, "systemprogram", accountKey("system_program"))
	assert.Equal(t, "", Capitalize(""))
}

func TestDiscriminatorString(t *testing.T) {
	d := DiscriminatorFromUint64(0x94ea945cb95de9bd)
	assert.Equal(t, "0x94ea945cb95de9bd", d.String())
	assert.Equal(t, byte(0xbd), d[0])
}
