package idl

import (
	"maps"
	"slices"

	"cidl/internal/ast"
	"cidl/internal/errors"
	"cidl/internal/pragma"
	"cidl/internal/types"

	"github.com/gagliardetto/solana-go"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cidl.idl")

// Config identifies the program a document is assembled for
type Config struct {
	ProgramName string
	ProgramID   solana.PublicKey

	// KnownAccounts overrides the well-known address table. When nil the
	// defaults for ProgramID are used.
	KnownAccounts KnownAccounts

	// Strict turns ignored annotations into errors.
	Strict bool
}

// Assembler builds one document from parsed files. Files must be added in a
// stable order because account lists can only reference lists built before them.
type Assembler struct {
	cfg      Config
	doc      *IDL
	known    KnownAccounts
	registry *types.Registry
	warnings []*errors.CompilerError

	// account lists by instruction name and by accounts struct name
	accountsByName map[string][]AccountMeta
	insAccounts    map[string][]AccountMeta
	insArgs        map[string][]Field

	typeNames        map[string]bool
	eventNames       map[string]bool
	instructionNames map[string]bool
}

func NewAssembler(cfg Config) (*Assembler, error) {
	known := cfg.KnownAccounts
	if known == nil {
		var err error
		known, err = DefaultKnownAccounts(cfg.ProgramID)
		if err != nil {
			return nil, err
		}
	}

	return &Assembler{
		cfg:              cfg,
		doc:              New(cfg.ProgramID.String(), Capitalize(cfg.ProgramName)),
		known:            known,
		registry:         types.NewRegistry(),
		accountsByName:   make(map[string][]AccountMeta),
		insAccounts:      make(map[string][]AccountMeta),
		insArgs:          make(map[string][]Field),
		typeNames:        make(map[string]bool),
		eventNames:       make(map[string]bool),
		instructionNames: make(map[string]bool),
	}, nil
}

// Assemble adds every file in order and returns the finished document.
func Assemble(cfg Config, files []*ast.File) (*IDL, error) {
	a, err := NewAssembler(cfg)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if err := a.AddFile(file); err != nil {
			return nil, err
		}
	}
	return a.Document(), nil
}

func (a *Assembler) Document() *IDL {
	return a.doc
}

// Warnings returns the annotations that were ignored so far.
func (a *Assembler) Warnings() []*errors.CompilerError {
	return a.warnings
}

type discriminator struct {
	value uint64
	pos   ast.Position
}

// fileScope holds the discriminators declared in one file
type fileScope struct {
	events       map[string]discriminator
	structs      map[string]discriminator
	instructions map[string]discriminator
	declared     map[string]bool
}

// AddFile assembles one file. The first error aborts the file and leaves the
// document incomplete, so callers must not use it after an error.
func (a *Assembler) AddFile(file *ast.File) error {
	scope := &fileScope{
		events:       make(map[string]discriminator),
		structs:      make(map[string]discriminator),
		instructions: make(map[string]discriminator),
		declared:     make(map[string]bool),
	}

	for _, v := range file.Vars {
		if err := a.collectDiscriminator(scope, v); err != nil {
			return err
		}
	}

	for _, s := range file.Structs {
		if err := a.addStruct(scope, s); err != nil {
			return err
		}
	}

	for _, fn := range file.Functions {
		if err := a.addFunction(scope, fn); err != nil {
			return err
		}
	}

	for _, name := range slices.Sorted(maps.Keys(scope.instructions)) {
		if !scope.declared[name] {
			return errors.UndeclaredInstruction(name, scope.instructions[name].pos)
		}
	}

	log.Debugf("assembled %s: %d structs, %d functions", file.Path, len(file.Structs), len(file.Functions))
	return nil
}

// ignore records an annotation that has no effect here. Strict mode makes it fatal.
func (a *Assembler) ignore(directive, name string, pos ast.Position) error {
	warning := errors.IgnoredDirective(directive, name, pos)
	if a.cfg.Strict {
		warning.Level = errors.Error
		return warning
	}
	log.Warning(warning.Error())
	a.warnings = append(a.warnings, warning)
	return nil
}

func (a *Assembler) parseDirective(p *ast.Pragma) (pragma.Directive, error) {
	d, err := pragma.Parse(p.Text)
	if err != nil {
		reason := err.Error()
		if pe, ok := err.(*pragma.Error); ok {
			reason = pe.Message
		}
		return nil, errors.InvalidDirective(p.Text, reason, p.Pos)
	}
	return d, nil
}

func (a *Assembler) collectDiscriminator(scope *fileScope, v *ast.Variable) error {
	if v.Pragma == nil {
		return nil
	}

	d, err := pragma.Parse(v.Pragma.Text)
	if err != nil || !pragma.IsDiscriminator(d) {
		return a.ignore(v.Pragma.Text, v.Name, v.Pragma.Pos)
	}

	var (
		kind   string
		name   string
		target map[string]discriminator
	)
	switch d := d.(type) {
	case pragma.EventDiscriminator:
		kind, name, target = "event", d.Name, scope.events
	case pragma.StructDiscriminator:
		kind, name, target = "struct", d.Name, scope.structs
	case pragma.InstructionDiscriminator:
		kind, name, target = "instruction", d.Name, scope.instructions
	}

	if previous, exists := target[name]; exists {
		return errors.DuplicateDiscriminator(kind, name, v.NamePos, previous.pos)
	}
	if v.Value == nil {
		return nil
	}

	value, err := ParseValue(*v.Value)
	if err != nil {
		return errors.InvalidDiscriminatorValue(v.Name, *v.Value, v.NamePos)
	}
	target[name] = discriminator{value: value, pos: v.NamePos}
	return nil
}

func (a *Assembler) addStruct(scope *fileScope, s *ast.Struct) error {
	if s.Pragma == nil {
		return nil
	}

	d, err := a.parseDirective(s.Pragma)
	if err != nil {
		return err
	}

	switch d := d.(type) {
	case pragma.EventDeclaration:
		return a.addEvent(scope, s)
	case pragma.StructDeclaration:
		return a.addAccount(scope, s)
	case pragma.InstructionAccounts:
		return a.addInstructionAccounts(s, d.Name)
	case pragma.InstructionData:
		return a.addInstructionData(s, d.Name)
	default:
		return a.ignore(d.String(), s.Name, s.Pragma.Pos)
	}
}

func (a *Assembler) addEvent(scope *fileScope, s *ast.Struct) error {
	disc, ok := scope.events[s.Name]
	if !ok {
		return errors.MissingDiscriminator("event", s.Name, s.NamePos)
	}

	fields, err := a.declarationFields(s, "event")
	if err != nil {
		return err
	}
	if err := a.addType(s, fields); err != nil {
		return err
	}

	if a.eventNames[s.Name] {
		return errors.DuplicateDeclaration("event", s.Name, s.NamePos)
	}
	a.eventNames[s.Name] = true
	a.doc.Events = append(a.doc.Events, Event{
		Name:          s.Name,
		Discriminator: DiscriminatorFromUint64(disc.value),
	})
	return nil
}

func (a *Assembler) addAccount(scope *fileScope, s *ast.Struct) error {
	fields, err := a.declarationFields(s, "struct")
	if err != nil {
		return err
	}

	if disc, ok := scope.structs[s.Name]; ok {
		a.doc.Accounts = append(a.doc.Accounts, Account{
			Name:          s.Name,
			Discriminator: DiscriminatorFromUint64(disc.value),
		})
	}
	return a.addType(s, fields)
}

// declarationFields checks and strips the leading discriminator of an event
// or account struct and lays out the rest after it.
func (a *Assembler) declarationFields(s *ast.Struct, kind string) ([]Field, error) {
	if len(s.Fields) == 0 || s.Fields[0].Name != "discriminator" || s.Fields[0].Type != "u64" {
		return nil, errors.MissingDiscriminatorField(s.Name, s.NamePos)
	}

	var rest []*ast.Variable
	for _, v := range s.Fields[1:] {
		if !v.IsConst {
			rest = append(rest, v)
		}
	}

	l := newLayout(a.registry, s.Packed)
	l.offset, l.maxAlign = 8, 8
	return l.fields(a, rest, kind+" "+s.Name)
}

func (a *Assembler) addType(s *ast.Struct, fields []Field) error {
	if a.typeNames[s.Name] {
		return errors.DuplicateDeclaration("type", s.Name, s.NamePos)
	}
	a.typeNames[s.Name] = true
	a.doc.Types = append(a.doc.Types, TypeDef{
		Name: s.Name,
		Type: TypeDefBody{Kind: "struct", Fields: fields},
	})
	return nil
}

func (a *Assembler) addInstructionAccounts(s *ast.Struct, instruction string) error {
	list := []AccountMeta{}

	for _, v := range s.Fields {
		account := AccountMeta{Name: v.Name}
		if address, ok := a.known.Lookup(v.Name); ok {
			account.Address = address
		}

		if v.Pragma != nil {
			d, err := a.parseDirective(v.Pragma)
			if err != nil {
				return err
			}

			switch d := d.(type) {
			case pragma.Reference:
				referenced, ok := a.accountsByName[d.Name]
				if !ok {
					return errors.UnknownReference(d.Name, v.Pragma.Pos)
				}
				list = append(list, referenced...)
				continue
			case pragma.AccountModifiers:
				account.Writable = d.Writable
				account.Signer = d.Signer
			default:
				return errors.MisplacedDirective(d.String(), "an instruction account", v.Pragma.Pos)
			}
		}

		list = append(list, account)
	}

	a.insAccounts[instruction] = list
	a.accountsByName[instruction] = list
	a.accountsByName[s.Name] = list
	return nil
}

func (a *Assembler) addInstructionData(s *ast.Struct, instruction string) error {
	l := newLayout(a.registry, s.Packed)
	args, err := l.fields(a, s.Fields, "instruction data "+instruction)
	if err != nil {
		return err
	}
	a.insArgs[instruction] = args
	return nil
}

func (a *Assembler) addFunction(scope *fileScope, fn *ast.Function) error {
	if fn.Pragma == nil {
		return nil
	}

	d, err := a.parseDirective(fn.Pragma)
	if err != nil {
		return err
	}
	if _, ok := d.(pragma.InstructionDeclaration); !ok {
		return a.ignore(d.String(), fn.Name, fn.Pragma.Pos)
	}

	disc, ok := scope.instructions[fn.Name]
	if !ok {
		return errors.MissingDiscriminator("instruction", fn.Name, fn.NamePos)
	}
	scope.declared[fn.Name] = true

	name := PascalCase(fn.Name)
	if a.instructionNames[name] {
		return errors.DuplicateDeclaration("instruction", name, fn.NamePos)
	}
	a.instructionNames[name] = true

	accounts, ok := a.insAccounts[fn.Name]
	if !ok {
		accounts = []AccountMeta{}
	}
	args, ok := a.insArgs[fn.Name]
	if !ok {
		args = []Field{}
	}

	a.doc.Instructions = append(a.doc.Instructions, Instruction{
		Name:          name,
		Discriminator: DiscriminatorFromUint64(disc.value),
		Accounts:      accounts,
		Args:          args,
	})
	return nil
}
