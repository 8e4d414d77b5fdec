package idl

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cidl/internal/types"
)

const (
	Version     = "0.0.1"
	SpecVersion = "0.1.0"
)

// IDL is the interface document of one program
type IDL struct {
	Address      string        `json:"address"`
	Metadata     Metadata      `json:"metadata"`
	Instructions []Instruction `json:"instructions"`
	Accounts     []Account     `json:"accounts"`
	Types        []TypeDef     `json:"types"`
	Events       []Event       `json:"events"`
}

type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Spec    string `json:"spec"`
}

type Instruction struct {
	Name          string        `json:"name"`
	Discriminator Discriminator `json:"discriminator"`
	Accounts      []AccountMeta `json:"accounts"`
	Args          []Field       `json:"args"`
}

// AccountMeta describes one account passed to an instruction
type AccountMeta struct {
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Writable bool   `json:"writable,omitempty"`
	Signer   bool   `json:"signer,omitempty"`
}

// Account is a struct type stored in program-owned accounts
type Account struct {
	Name          string        `json:"name"`
	Discriminator Discriminator `json:"discriminator"`
}

type Event struct {
	Name          string        `json:"name"`
	Discriminator Discriminator `json:"discriminator"`
}

// TypeDef is a named struct type referenced by accounts and events
type TypeDef struct {
	Name string      `json:"name"`
	Type TypeDefBody `json:"type"`
}

type TypeDefBody struct {
	Kind   string  `json:"kind"`
	Fields []Field `json:"fields"`
}

type Field struct {
	Name string     `json:"name"`
	Type types.Type `json:"type"`
}

func (f *Field) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name string          `json:"name"`
		Type json.RawMessage `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	typ, err := types.Decode(raw.Type)
	if err != nil {
		return fmt.Errorf("field %s: %w", raw.Name, err)
	}
	f.Name = raw.Name
	f.Type = typ
	return nil
}

// Discriminator is the 8 leading bytes that identify a record: a u64 in
// little-endian order. It encodes as a JSON array of 8 numbers.
type Discriminator [8]byte

func DiscriminatorFromUint64(v uint64) Discriminator {
	var d Discriminator
	binary.LittleEndian.PutUint64(d[:], v)
	return d
}

func (d Discriminator) Uint64() uint64 {
	return binary.LittleEndian.Uint64(d[:])
}

func (d Discriminator) String() string {
	return fmt.Sprintf("0x%016x", d.Uint64())
}

// New returns an empty document whose lists encode as [] rather than null.
func New(address, name string) *IDL {
	return &IDL{
		Address: address,
		Metadata: Metadata{
			Name:    name,
			Version: Version,
			Spec:    SpecVersion,
		},
		Instructions: []Instruction{},
		Accounts:     []Account{},
		Types:        []TypeDef{},
		Events:       []Event{},
	}
}

// FindType returns the named type definition, or nil.
func (d *IDL) FindType(name string) *TypeDef {
	for i := range d.Types {
		if d.Types[i].Name == name {
			return &d.Types[i]
		}
	}
	return nil
}
