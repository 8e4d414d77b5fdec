package bindgen

const bindingsTemplate = `// Code generated by {{.Generator}} from the {{.Program}} interface document. DO NOT EDIT.

package {{.Package}}

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
{{- if .Int128}}
	"math/big"
{{- end}}

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
{{- if .Import}}

	"{{.Import}}"
{{- end}}
)

var (
	// ErrDataTooShort is returned for buffers that cannot hold a discriminator.
	ErrDataTooShort = errors.New("data too short for discriminator")

	// ErrUnknownEventType is returned when a JSON event name has no type.
	ErrUnknownEventType = errors.New("unknown event type")
)

// Source is the provenance category of an event.
type Source string

const (
	SourceProgram Source = "program"
	SourcePf      Source = "pf"
	SourcePa      Source = "pa"
	SourceFx      Source = "fx"
	SourceMisc    Source = "misc"
)

// EventData is implemented by every event kind.
type EventData interface {
	EventName() string
}

// Event is decoded event data with the transaction it was logged in.
type Event struct {
	Data      EventData
	Signature solana.Signature
	Timestamp uint64
}

//
// Program events
//
{{range .Events}}
const (
	{{.Name}}Discriminator uint64 = {{.Discriminator}}
	{{.Name}}Name = "{{.DisplayName}}"
)

type {{.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}} ` + "`{{.Tag}}`" + `
{{- end}}
}

func ({{.Name}}) EventName() string { return {{.Name}}Name }
{{end}}
{{- if .Types}}
//
// Types referenced by events
//
{{range .Types}}
type {{.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}} ` + "`{{.Tag}}`" + `
{{- end}}
}
{{end}}
{{- end}}
{{- if .Int128}}
//
// Integers
//

var (
	int128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	int128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// Int128 is a signed 128-bit integer. JSON carries it as a signed decimal string.
type Int128 struct {
	bin.Int128
}

func (i Int128) String() string { return i.BigInt().String() }

func (i Int128) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

func (i *Int128) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("invalid int128 %q", s)
	}
	if v.Cmp(int128Min) < 0 || v.Cmp(int128Max) > 0 {
		return fmt.Errorf("int128 %s out of range", s)
	}
	if v.Sign() < 0 {
		v.Add(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	i.Int128 = bin.Int128{
		Lo: new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0))).Uint64(),
		Hi: new(big.Int).Rsh(v, 64).Uint64(),
	}
	return nil
}
{{- end}}
{{- if .Aux}}
//
// Auxiliary events
//
{{range .Aux}}
const {{.Name}}Name = "{{.DisplayName}}"

type {{.Name}} struct {
	{{.Type}}
}

func ({{.Name}}) EventName() string { return {{.Name}}Name }
{{end}}
{{- end}}
//
// Synthetic events
//

const (
	SolPriceEventName   = "solPriceEvent"
	InitializeEventName = "initializeEvent"
	HydrateEventName    = "hydrateEvent"
)

// SolPriceEvent is an off-chain SOL price update.
type SolPriceEvent struct {
	Price float64 ` + "`json:\"price\"`" + `
}

// InitializeEvent opens a stream.
type InitializeEvent struct{}

// HydrateEvent carries off-chain metadata of an asset.
type HydrateEvent struct {
	Asset       solana.PublicKey ` + "`json:\"asset\"`" + `
	MetadataURL string           ` + "`json:\"metadataUrl\"`" + `
	Description string           ` + "`json:\"description\"`" + `
	IconURL     string           ` + "`json:\"iconUrl\"`" + `
}

func (SolPriceEvent) EventName() string   { return SolPriceEventName }
func (InitializeEvent) EventName() string { return InitializeEventName }
func (HydrateEvent) EventName() string    { return HydrateEventName }

//
// Decoding
//

// DecodeEventData decodes binary event data. The first 8 bytes are a
// little-endian discriminator. Unknown discriminators return nil, nil.
func DecodeEventData(data []byte) (EventData, error) {
	if len(data) < 8 {
		return nil, ErrDataTooShort
	}

	switch binary.LittleEndian.Uint64(data[:8]) {
{{- range .Events}}
	case {{.Name}}Discriminator:
		var ev {{.Name}}
		if err := decodeBorsh({{.Name}}Name, data[8:], &ev); err != nil {
			return nil, err
		}
		return ev, nil
{{- end}}
{{- range .Aux}}
	case {{.Discriminator}}:
		var ev {{.Type}}
		if err := decodeBorsh({{.Name}}Name, data[8:], &ev); err != nil {
			return nil, err
		}
		return {{.Name}}{ev}, nil
{{- end}}
	default:
		return nil, nil
	}
}

func decodeBorsh(name string, payload []byte, v any) error {
	if err := bin.NewBorshDecoder(payload).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// SourceOf returns the provenance category of an event.
func SourceOf(data EventData) Source {
	switch data.(type) {
{{- range .Sources}}
	case {{join .Types ", "}}:
		return {{.Const}}
{{- end}}
	default:
		return SourceMisc
	}
}

//
// JSON
//

type rawEvent struct {
	Name      string           ` + "`json:\"name\"`" + `
	Data      json.RawMessage  ` + "`json:\"data\"`" + `
	Signature solana.Signature ` + "`json:\"signature\"`" + `
	Timestamp uint64           ` + "`json:\"timestamp,string\"`" + `
}

func (e Event) MarshalJSON() ([]byte, error) {
	if e.Data == nil {
		return nil, errors.New("event has no data")
	}
	data, err := json.Marshal(e.Data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rawEvent{
		Name:      e.Data.EventName(),
		Data:      data,
		Signature: e.Signature,
		Timestamp: e.Timestamp,
	})
}

func (e *Event) UnmarshalJSON(b []byte) error {
	var raw rawEvent
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	data, err := DecodeEventJSON(raw.Name, raw.Data)
	if err != nil {
		return err
	}
	e.Data = data
	e.Signature = raw.Signature
	e.Timestamp = raw.Timestamp
	return nil
}

// DecodeEventJSON decodes the JSON data of the event with the given display name.
func DecodeEventJSON(name string, data []byte) (EventData, error) {
	switch name {
{{- range .Names}}
	case {{.}}Name:
		return decodeJSON[{{.}}](data)
{{- end}}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventType, name)
	}
}

func decodeJSON[T EventData](data []byte) (EventData, error) {
	var ev T
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ev.EventName(), err)
	}
	return ev, nil
}
`
