package types

import (
	"regexp"
	"strconv"
	"strings"
)

// Layout is the binary shape of a type spelling
type Layout struct {
	Size  Size
	Align uint64
	Type  Type
}

var (
	bytesN = regexp.MustCompile(`^bytes([0-9]+)$`)

	// opaque types are treated as 8-byte aligned words
	opaque = Layout{Size: Known(8), Align: 8}
)

// Of maps a C type spelling to its layout. Rules, in priority order:
//
//	T[]        Vec<T>, 8 bytes aligned to 8
//	T[N]       [T; N], N times T, aligned like T
//	T[NAME]    [T; NAME], generic size, aligned like T
//	u8..i128   scalars, aligned to their size
//	address    pubkey, 32 bytes aligned to 1
//	bytesN     [u8; N], aligned to 1
//	other      Custom, 8 bytes aligned to 8
func Of(spelling string) Layout {
	spelling = strings.TrimSpace(spelling)

	if strings.HasSuffix(spelling, "]") {
		if open := strings.LastIndex(spelling, "["); open > 0 {
			return arrayOf(spelling[:open], spelling[open+1:len(spelling)-1])
		}
	}

	prim := Primitive(spelling)
	if alias, ok := cAliases[spelling]; ok {
		prim = alias
	}
	if size, ok := primitiveSizes[prim]; ok {
		return Layout{Size: Known(size), Align: size, Type: prim}
	}

	if spelling == "address" {
		return Layout{Size: Known(32), Align: 1, Type: Pubkey}
	}

	if m := bytesN.FindStringSubmatch(spelling); m != nil {
		n, err := strconv.ParseUint(m[1], 10, 64)
		if err == nil {
			return Layout{Size: Known(n), Align: 1, Type: Bytes(n)}
		}
	}

	layout := opaque
	layout.Type = Custom(spelling)
	return layout
}

func arrayOf(elemSpelling, count string) Layout {
	elem := Of(elemSpelling)
	count = strings.TrimSpace(count)

	if count == "" {
		return Layout{Size: Known(8), Align: 8, Type: Vec{Elem: elem.Type}}
	}

	if n, err := strconv.ParseUint(count, 10, 64); err == nil {
		return Layout{
			Size:  elem.Size.Mul(Known(n)),
			Align: elem.Align,
			Type:  Array{Elem: elem.Type, Len: Known(n)},
		}
	}

	return Layout{
		Size:  Generic(count),
		Align: elem.Align,
		Type:  Array{Elem: elem.Type, Len: Generic(count)},
	}
}
