package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Type is the portable description of a field type as it appears in the
// interface document.
type Type interface {
	json.Marshaler
	String() string
	isType()
}

// Primitive is a built-in scalar such as "u64", "bool", "pubkey" or "string"
type Primitive string

// Custom names a type that has no builtin layout, usually another struct
type Custom string

// Array is a fixed-length sequence. Len may be a named generic parameter.
type Array struct {
	Elem Type
	Len  Size
}

// Vec is a length-prefixed sequence
type Vec struct {
	Elem Type
}

// Option is a value preceded by a presence byte
type Option struct {
	Elem Type
}

func (Primitive) isType() {}
func (Custom) isType()    {}
func (Array) isType()     {}
func (Vec) isType()       {}
func (Option) isType()    {}

func (p Primitive) String() string { return string(p) }
func (c Custom) String() string    { return string(c) }
func (a Array) String() string     { return fmt.Sprintf("[%s; %s]", a.Elem, a.Len) }
func (v Vec) String() string       { return fmt.Sprintf("Vec<%s>", v.Elem) }
func (o Option) String() string    { return fmt.Sprintf("Option<%s>", o.Elem) }

// Bytes is the type of a padding field of n bytes.
func Bytes(n uint64) Array {
	return Array{Elem: Primitive("u8"), Len: Known(n)}
}

// Size is a byte count or element count that is either known or left to a
// named generic parameter.
type Size struct {
	n       uint64
	generic string
}

func Known(n uint64) Size {
	return Size{n: n}
}

func Generic(name string) Size {
	return Size{generic: name}
}

func (s Size) IsGeneric() bool {
	return s.generic != ""
}

// Value returns the known size. ok is false for generic sizes.
func (s Size) Value() (n uint64, ok bool) {
	return s.n, s.generic == ""
}

// Name returns the generic parameter name, or "" for known sizes.
func (s Size) Name() string {
	return s.generic
}

func (s Size) String() string {
	if s.IsGeneric() {
		return s.generic
	}
	return strconv.FormatUint(s.n, 10)
}

// Mul scales a size by a count. Any generic operand makes the result generic.
func (s Size) Mul(count Size) Size {
	switch {
	case s.IsGeneric():
		return s
	case count.IsGeneric():
		return count
	}
	return Known(s.n * count.n)
}
