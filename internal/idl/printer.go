package idl

import (
	"fmt"
	"strings"

	"cidl/internal/types"
)

// Printer renders a document as a readable summary
type Printer struct {
	indent int
	output strings.Builder
	doc    *IDL
}

// Print returns the summary of a document: instructions with their accounts
// and arguments, accounts, events and types with wire offsets.
func Print(doc *IDL) string {
	p := &Printer{doc: doc}
	p.printDocument()
	return p.output.String()
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.output.WriteString(strings.Repeat("  ", p.indent))
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printDocument() {
	p.writeLine("PROGRAM %s %s (v%s)", p.doc.Metadata.Name, p.doc.Address, p.doc.Metadata.Version)

	if len(p.doc.Instructions) > 0 {
		p.writeLine("")
		p.writeLine("INSTRUCTIONS:")
		p.indent++
		for _, ins := range p.doc.Instructions {
			p.printInstruction(ins)
		}
		p.indent--
	}

	if len(p.doc.Accounts) > 0 {
		p.writeLine("")
		p.writeLine("ACCOUNTS:")
		p.indent++
		for _, acc := range p.doc.Accounts {
			p.writeLine("%s %s", acc.Discriminator, acc.Name)
		}
		p.indent--
	}

	if len(p.doc.Events) > 0 {
		p.writeLine("")
		p.writeLine("EVENTS:")
		p.indent++
		for _, ev := range p.doc.Events {
			p.writeLine("%s %s", ev.Discriminator, ev.Name)
		}
		p.indent--
	}

	if len(p.doc.Types) > 0 {
		p.writeLine("")
		p.writeLine("TYPES:")
		p.indent++
		for _, td := range p.doc.Types {
			p.writeLine("struct %s", td.Name)
			p.indent++
			p.printFields(td.Type.Fields)
			p.indent--
		}
		p.indent--
	}
}

func (p *Printer) printInstruction(ins Instruction) {
	p.writeLine("%s %s", ins.Discriminator, ins.Name)
	p.indent++
	for _, acc := range ins.Accounts {
		var flags []string
		if acc.Writable {
			flags = append(flags, "mut")
		}
		if acc.Signer {
			flags = append(flags, "signer")
		}
		line := "account " + acc.Name
		if len(flags) > 0 {
			line += " [" + strings.Join(flags, ", ") + "]"
		}
		if acc.Address != "" {
			line += " = " + acc.Address
		}
		p.writeLine("%s", line)
	}
	p.printFields(ins.Args)
	p.indent--
}

// printFields lists fields with their byte offsets until a field of unknown
// size is reached.
func (p *Printer) printFields(fields []Field) {
	offset, known := uint64(0), true
	for _, f := range fields {
		at := "   ?"
		if known {
			at = fmt.Sprintf("%4d", offset)
		}
		p.writeLine("%s %-16s : %s", at, f.Name, f.Type)

		if size, ok := p.wireSize(f.Type); ok {
			offset += size
		} else {
			known = false
		}
	}
}

// wireSize returns the encoded size of a fixed-size type.
func (p *Printer) wireSize(t types.Type) (uint64, bool) {
	switch t := t.(type) {
	case types.Primitive:
		if t == types.Pubkey {
			return 32, true
		}
		if size := types.SizeOf(t); size > 0 {
			return size, true
		}
	case types.Array:
		n, ok := t.Len.Value()
		if !ok {
			return 0, false
		}
		elem, ok := p.wireSize(t.Elem)
		return elem * n, ok
	case types.Custom:
		if td := p.doc.FindType(string(t)); td != nil {
			var total uint64
			for _, f := range td.Type.Fields {
				size, ok := p.wireSize(f.Type)
				if !ok {
					return 0, false
				}
				total += size
			}
			return total, true
		}
	}
	return 0, false
}
