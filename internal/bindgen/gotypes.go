package bindgen

import (
	"fmt"
	"strings"

	"cidl/internal/types"

	"github.com/iancoleman/strcase"
)

var primitiveGoTypes = map[types.Primitive]string{
	types.U8:     "uint8",
	types.I8:     "int8",
	types.Bool:   "bool",
	types.U16:    "uint16",
	types.I16:    "int16",
	types.U32:    "uint32",
	types.I32:    "int32",
	types.F32:    "float32",
	types.U64:    "uint64",
	types.I64:    "int64",
	types.F64:    "float64",
	types.U128:   "bin.Uint128",
	types.I128:   int128Type,
	types.Pubkey: "solana.PublicKey",
	types.String: "string",
}

// goType returns the Go spelling of a document type. Custom names must refer
// to struct types of the document; they are queued for generation.
func (g *Generator) goType(t types.Type) (string, error) {
	switch t := t.(type) {
	case types.Primitive:
		if t == types.I128 {
			g.int128 = true
		}
		if s, ok := primitiveGoTypes[t]; ok {
			return s, nil
		}
		return "", fmt.Errorf("unsupported primitive %q", string(t))

	case types.Array:
		elem, err := g.goType(t.Elem)
		if err != nil {
			return "", err
		}
		n, ok := t.Len.Value()
		if !ok {
			n, ok = g.opts.Generics[t.Len.Name()]
			if !ok {
				return "", fmt.Errorf("generic length %q has no value", t.Len.Name())
			}
		}
		return fmt.Sprintf("[%d]%s", n, elem), nil

	case types.Vec:
		elem, err := g.goType(t.Elem)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil

	case types.Option:
		elem, err := g.goType(t.Elem)
		if err != nil {
			return "", err
		}
		return "*" + elem, nil

	case types.Custom:
		name := string(t)
		if err := g.queueType(name); err != nil {
			return "", err
		}
		return strcase.ToCamel(name), nil
	}
	return "", fmt.Errorf("unsupported type %s", t)
}

// fieldTag builds the struct tag of a generated field. Eight-byte integers
// travel as JSON strings so they survive JavaScript consumers.
func fieldTag(name string, t types.Type) string {
	key := strcase.ToLowerCamel(name)
	if t == types.U64 || t == types.I64 {
		key += ",string"
	}
	tag := fmt.Sprintf(`json:"%s"`, key)
	if _, ok := t.(types.Option); ok {
		tag += ` bin:"optional"`
	}
	return tag
}

// lowerFirst turns a type name into its display name: GameSwapEvent becomes gameSwapEvent.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
