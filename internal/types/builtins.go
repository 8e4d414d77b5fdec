package types

// Primitive tags used in the interface document
const (
	U8     Primitive = "u8"
	I8     Primitive = "i8"
	Bool   Primitive = "bool"
	U16    Primitive = "u16"
	I16    Primitive = "i16"
	U32    Primitive = "u32"
	I32    Primitive = "i32"
	F32    Primitive = "f32"
	U64    Primitive = "u64"
	I64    Primitive = "i64"
	F64    Primitive = "f64"
	U128   Primitive = "u128"
	I128   Primitive = "i128"
	Pubkey Primitive = "pubkey"
	String Primitive = "string"
)

// primitiveSizes maps each scalar tag to its size, which is also its alignment
var primitiveSizes = map[Primitive]uint64{
	U8:   1,
	I8:   1,
	Bool: 1,
	U16:  2,
	I16:  2,
	U32:  4,
	I32:  4,
	F32:  4,
	U64:  8,
	I64:  8,
	F64:  8,
	U128: 16,
	I128: 16,
}

// cAliases maps C spellings to the scalar tag with the same layout
var cAliases = map[string]Primitive{
	"bytes1":             U8,
	"uint8_t":            U8,
	"int8_t":             I8,
	"unsigned char":      U8,
	"signed char":        I8,
	"char":               I8,
	"_Bool":              Bool,
	"uint16_t":           U16,
	"int16_t":            I16,
	"short":              I16,
	"unsigned short":     U16,
	"uint32_t":           U32,
	"int32_t":            I32,
	"int":                I32,
	"unsigned":           U32,
	"unsigned int":       U32,
	"float":              F32,
	"uint64_t":           U64,
	"int64_t":            I64,
	"long long":          I64,
	"unsigned long long": U64,
	"double":             F64,
	"__uint128_t":        U128,
	"__int128_t":         I128,
}

// IsPrimitive checks if a name is a scalar tag with a fixed layout
func IsPrimitive(name string) bool {
	_, ok := primitiveSizes[Primitive(name)]
	return ok
}

// IsInteger checks if a tag is a signed or unsigned integer
func IsInteger(p Primitive) bool {
	switch p {
	case U8, I8, U16, I16, U32, I32, U64, I64, U128, I128:
		return true
	default:
		return false
	}
}

// SizeOf returns the size of a scalar tag, or 0 when it is not a scalar.
func SizeOf(p Primitive) uint64 {
	return primitiveSizes[p]
}
