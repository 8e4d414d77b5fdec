package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfPrimitives(t *testing.T) {
	tests := []struct {
		spelling string
		size     uint64
		align    uint64
		tag      Type
	}{
		{"u8", 1, 1, U8},
		{"i8", 1, 1, I8},
		{"bool", 1, 1, Bool},
		{"bytes1", 1, 1, U8},
		{"u16", 2, 2, U16},
		{"i32", 4, 4, I32},
		{"f32", 4, 4, F32},
		{"u64", 8, 8, U64},
		{"f64", 8, 8, F64},
		{"u128", 16, 16, U128},
		{"i128", 16, 16, I128},
		{"uint32_t", 4, 4, U32},
		{"unsigned long long", 8, 8, U64},
		{"double", 8, 8, F64},
		{"address", 32, 1, Pubkey},
		{"bytes32", 32, 1, Bytes(32)},
		{"Pool", 8, 8, Custom("Pool")},
		{"u8*", 8, 8, Custom("u8*")},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			layout := Of(tt.spelling)
			size, ok := layout.Size.Value()
			require.True(t, ok)
			assert.Equal(t, tt.size, size)
			assert.Equal(t, tt.align, layout.Align)
			assert.Equal(t, tt.tag, layout.Type)
		})
	}
}

func TestOfArrays(t *testing.T) {
	layout := Of("u8[32]")
	assert.Equal(t, Known(32), layout.Size)
	assert.Equal(t, uint64(1), layout.Align)
	assert.Equal(t, Array{Elem: U8, Len: Known(32)}, layout.Type)

	layout = Of("u64[4]")
	assert.Equal(t, Known(32), layout.Size)
	assert.Equal(t, uint64(8), layout.Align)

	layout = Of("address[2]")
	assert.Equal(t, Known(64), layout.Size)
	assert.Equal(t, uint64(1), layout.Align)
	assert.Equal(t, Array{Elem: Pubkey, Len: Known(2)}, layout.Type)
}

func TestOfVec(t *testing.T) {
	layout := Of("u8[]")
	assert.Equal(t, Known(8), layout.Size)
	assert.Equal(t, uint64(8), layout.Align)
	assert.Equal(t, Vec{Elem: U8}, layout.Type)
}

func TestOfGenericArray(t *testing.T) {
	layout := Of("u32[N]")
	assert.True(t, layout.Size.IsGeneric())
	assert.Equal(t, "N", layout.Size.Name())
	assert.Equal(t, uint64(4), layout.Align)
	assert.Equal(t, Array{Elem: U32, Len: Generic("N")}, layout.Type)
}

func TestOfNestedArray(t *testing.T) {
	layout := Of("u16[3][2]")
	assert.Equal(t, Known(12), layout.Size)
	assert.Equal(t, Array{Elem: Array{Elem: U16, Len: Known(3)}, Len: Known(2)}, layout.Type)
}

func TestTypeJSON(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{U64, `"u64"`},
		{Custom("Pool"), `"Pool"`},
		{Bytes(3), `{"array":["u8",3]}`},
		{Array{Elem: Pubkey, Len: Generic("N")}, `{"array":["pubkey",{"generic":"N"}]}`},
		{Vec{Elem: U8}, `{"vec":"u8"}`},
		{Option{Elem: U64}, `{"option":"u64"}`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			data, err := json.Marshal(tt.typ)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			decoded, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, decoded)
		})
	}
}

func TestDecodeDefined(t *testing.T) {
	typ, err := Decode([]byte(`{"defined":{"name":"Pool"}}`))
	require.NoError(t, err)
	assert.Equal(t, Custom("Pool"), typ)

	typ, err = Decode([]byte(`{"defined":"Game"}`))
	require.NoError(t, err)
	assert.Equal(t, Custom("Game"), typ)

	_, err = Decode([]byte(`{"tuple":["u8"]}`))
	assert.Error(t, err)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "[u8; 32]", Bytes(32).String())
	assert.Equal(t, "Vec<pubkey>", Vec{Elem: Pubkey}.String())
	assert.Equal(t, "[u64; N]", Array{Elem: U64, Len: Generic("N")}.String())
}

func TestRegistryCaches(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, Of("u64"), r.Lookup("u64"))
	assert.Equal(t, Of("u64"), r.Lookup("u64"))
	r.Lookup("u8[4]")
	assert.Equal(t, 2, r.Len())
}
