package bindgen

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"
	"text/template"

	"cidl/internal/idl"

	"github.com/iancoleman/strcase"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cidl.bindgen")

// FileName is the name of the generated source file
const FileName = "events_gen.go"

// synthetic variants exist only in the generated package
var synthetic = []struct {
	name   string
	source Source
}{
	{"SolPriceEvent", SourceFx},
	{"InitializeEvent", SourceMisc},
	{"HydrateEvent", SourceMisc},
}

// eventMethods are declared on every generated event type
var eventMethods = []string{"EventName"}

// int128Type is the generated signed 128-bit integer
const int128Type = "Int128"

type Options struct {
	// Package is the generated package name. Defaults to "events".
	Package string

	// Generics resolves generic array lengths by name.
	Generics map[string]uint64

	Catalogue Catalogue

	// Generator is recorded in the generated header. Defaults to "cidl-bindgen".
	Generator string
}

// Generator turns the events of a document into Go bindings
type Generator struct {
	doc  *idl.IDL
	opts Options

	// struct types referenced from event fields, in discovery order
	nested     []string
	nestedSeen map[string]bool

	// set once a field needs the generated Int128
	int128 bool
}

func New(doc *idl.IDL, opts Options) *Generator {
	if opts.Package == "" {
		opts.Package = "events"
	}
	if opts.Generator == "" {
		opts.Generator = "cidl-bindgen"
	}
	return &Generator{
		doc:        doc,
		opts:       opts,
		nestedSeen: make(map[string]bool),
	}
}

type fieldModel struct {
	Name string
	Type string
	Tag  string
}

type structModel struct {
	Name          string
	DisplayName   string
	Discriminator string
	Fields        []fieldModel
}

type auxModel struct {
	Name          string
	Type          string
	Discriminator string
	DisplayName   string
}

type sourceModel struct {
	Const string
	Types []string
}

type fileModel struct {
	Generator string
	Program   string
	Package   string
	Import    string
	Events    []structModel
	Types     []structModel
	Aux       []auxModel
	Sources   []sourceModel
	Names     []string
	Int128    bool
}

// Generate returns the generated files keyed by file name.
func (g *Generator) Generate() (map[string]string, error) {
	if err := g.opts.Catalogue.validate(); err != nil {
		return nil, err
	}

	model, err := g.model()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("failed to render bindings: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated bindings do not parse: %w", err)
	}

	log.Infof("generated %d events, %d auxiliary events", len(model.Events), len(model.Aux))
	return map[string]string{FileName: string(src)}, nil
}

func (g *Generator) model() (*fileModel, error) {
	m := &fileModel{
		Generator: g.opts.Generator,
		Program:   g.doc.Metadata.Name,
		Package:   g.opts.Package,
	}

	names := make(map[string]bool)
	claim := func(name string) error {
		if names[name] {
			return fmt.Errorf("event type %s is defined more than once", name)
		}
		names[name] = true
		m.Names = append(m.Names, name)
		return nil
	}

	for _, s := range synthetic {
		names[s.name] = true
	}
	names[int128Type] = true

	discriminators := make(map[uint64]string)
	claimDiscriminator := func(name string, disc uint64) error {
		if other, ok := discriminators[disc]; ok {
			return fmt.Errorf("events %s and %s share discriminator %#016x", other, name, disc)
		}
		discriminators[disc] = name
		return nil
	}
	bySource := make(map[Source][]string)

	for _, ev := range g.doc.Events {
		td := g.doc.FindType(ev.Name)
		if td == nil || td.Type.Kind != "struct" {
			log.Debugf("skipping event %s: no struct type", ev.Name)
			continue
		}
		name := strcase.ToCamel(ev.Name)
		if err := claim(name); err != nil {
			return nil, err
		}

		if err := claimDiscriminator(name, ev.Discriminator.Uint64()); err != nil {
			return nil, err
		}

		fields, err := g.fields(name, td.Type.Fields, eventMethods)
		if err != nil {
			return nil, err
		}
		m.Events = append(m.Events, structModel{
			Name:          name,
			DisplayName:   lowerFirst(name),
			Discriminator: ev.Discriminator.String(),
			Fields:        fields,
		})
		bySource[SourceProgram] = append(bySource[SourceProgram], name)
	}

	if len(g.opts.Catalogue.Events) > 0 {
		m.Import = g.opts.Catalogue.Import
		pkg := g.opts.Catalogue.packageName()
		for _, ev := range g.opts.Catalogue.Events {
			if err := claim(ev.Name); err != nil {
				return nil, err
			}
			if err := claimDiscriminator(ev.Name, ev.Value); err != nil {
				return nil, err
			}
			display := ev.DisplayName
			if display == "" {
				display = lowerFirst(ev.Name)
			}
			m.Aux = append(m.Aux, auxModel{
				Name:          ev.Name,
				Type:          pkg + "." + ev.Type,
				Discriminator: pkg + "." + ev.Discriminator,
				DisplayName:   display,
			})
			bySource[ev.Source] = append(bySource[ev.Source], ev.Name)
		}
	}

	for _, s := range synthetic {
		m.Names = append(m.Names, s.name)
		bySource[s.source] = append(bySource[s.source], s.name)
	}

	for _, source := range sourceOrder {
		if len(bySource[source]) > 0 {
			m.Sources = append(m.Sources, sourceModel{Const: sourceConsts[source], Types: bySource[source]})
		}
	}

	// nested may grow while it is walked
	for i := 0; i < len(g.nested); i++ {
		td := g.doc.FindType(g.nested[i])
		name := strcase.ToCamel(td.Name)
		if names[name] {
			return nil, fmt.Errorf("type %s collides with an event type", name)
		}
		fields, err := g.fields(name, td.Type.Fields, nil)
		if err != nil {
			return nil, err
		}
		m.Types = append(m.Types, structModel{Name: name, Fields: fields})
	}

	m.Int128 = g.int128
	return m, nil
}

// fields maps the fields of owner. Names in methods are taken by methods of
// the generated type.
func (g *Generator) fields(owner string, fields []idl.Field, methods []string) ([]fieldModel, error) {
	var out []fieldModel
	var seen []string
	for _, f := range fields {
		name := strcase.ToCamel(f.Name)
		if slices.Contains(seen, name) {
			return nil, fmt.Errorf("%s: fields map to the same Go name %s", owner, name)
		}
		if slices.Contains(methods, name) {
			return nil, fmt.Errorf("%s: field %s maps to the generated method %s", owner, f.Name, name)
		}
		seen = append(seen, name)

		typ, err := g.goType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", owner, f.Name, err)
		}
		out = append(out, fieldModel{Name: name, Type: typ, Tag: fieldTag(f.Name, f.Type)})
	}
	return out, nil
}

func (g *Generator) queueType(name string) error {
	td := g.doc.FindType(name)
	if td == nil || td.Type.Kind != "struct" {
		return fmt.Errorf("unknown type %q", name)
	}
	if !g.nestedSeen[name] {
		g.nestedSeen[name] = true
		g.nested = append(g.nested, name)
	}
	return nil
}

var fileTemplate = template.Must(template.New("bindings").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(bindingsTemplate))
