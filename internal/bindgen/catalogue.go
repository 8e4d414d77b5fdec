package bindgen

import (
	"fmt"
	"path"

	"cidl/pkg/pumpfun"
)

// Source is the provenance category of an event kind
type Source string

const (
	SourceProgram Source = "program"
	SourcePf      Source = "pf"
	SourcePa      Source = "pa"
	SourceFx      Source = "fx"
	SourceMisc    Source = "misc"
)

// sourceOrder is the order of the generated classifier cases
var sourceOrder = []Source{SourceProgram, SourcePf, SourcePa, SourceFx, SourceMisc}

var sourceConsts = map[Source]string{
	SourceProgram: "SourceProgram",
	SourcePf:      "SourcePf",
	SourcePa:      "SourcePa",
	SourceFx:      "SourceFx",
	SourceMisc:    "SourceMisc",
}

// AuxEvent is an event kind defined outside the document. It is merged into
// the generated union as a wrapper around the external type.
type AuxEvent struct {
	// Name is the wrapper type in the generated package, e.g. PfTradeEvent.
	Name string

	// Type and Discriminator name a struct type and a uint64 constant in the
	// catalogue's import.
	Type          string
	Discriminator string

	// Value is the discriminator constant's value. Program events may not
	// share it.
	Value uint64

	DisplayName string
	Source      Source
}

// Catalogue is a set of auxiliary events living in one Go package
type Catalogue struct {
	Import string
	Events []AuxEvent
}

// DefaultCatalogue returns the pump.fun curve and AMM events.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		Import: "cidl/pkg/pumpfun",
		Events: []AuxEvent{
			{Name: "PfTradeEvent", Type: "TradeEvent", Discriminator: "TradeEventDiscriminator", Value: pumpfun.TradeEventDiscriminator, DisplayName: "pfTradeEvent", Source: SourcePf},
			{Name: "PfMigrationEvent", Type: "MigrationEvent", Discriminator: "MigrationEventDiscriminator", Value: pumpfun.MigrationEventDiscriminator, DisplayName: "pfMigrationEvent", Source: SourcePf},
			{Name: "PaBuyEvent", Type: "BuyEvent", Discriminator: "BuyEventDiscriminator", Value: pumpfun.BuyEventDiscriminator, DisplayName: "paBuyEvent", Source: SourcePa},
			{Name: "PaSellEvent", Type: "SellEvent", Discriminator: "SellEventDiscriminator", Value: pumpfun.SellEventDiscriminator, DisplayName: "paSellEvent", Source: SourcePa},
		},
	}
}

func (c Catalogue) validate() error {
	if len(c.Events) > 0 && c.Import == "" {
		return fmt.Errorf("auxiliary events need an import path")
	}
	for _, ev := range c.Events {
		if ev.Name == "" || ev.Type == "" || ev.Discriminator == "" {
			return fmt.Errorf("auxiliary event %q needs a name, type and discriminator", ev.Name)
		}
		if ev.Value == 0 {
			return fmt.Errorf("auxiliary event %s: discriminator value is not set", ev.Name)
		}
		if _, ok := sourceConsts[ev.Source]; !ok {
			return fmt.Errorf("auxiliary event %s: unknown source %q", ev.Name, ev.Source)
		}
	}
	return nil
}

// packageName is the last element of the catalogue import path.
func (c Catalogue) packageName() string {
	return path.Base(c.Import)
}
