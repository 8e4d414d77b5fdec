package idl

import (
	"fmt"

	"cidl/internal/ast"
	"cidl/internal/errors"
	"cidl/internal/pragma"
	"cidl/internal/types"
)

// layout tracks the running offset of a struct while its fields are
// converted, inserting padding so every field starts at its own alignment.
type layout struct {
	registry *types.Registry
	packed   bool

	offset   uint64
	maxAlign uint64
	pads     int

	// once set, offsets are no longer known
	seenString bool
	generic    string
}

func newLayout(registry *types.Registry, packed bool) *layout {
	return &layout{registry: registry, packed: packed}
}

func (l *layout) pad(fields []Field, n uint64) []Field {
	fields = append(fields, Field{
		Name: fmt.Sprintf("pad%d", l.pads),
		Type: types.Bytes(n),
	})
	l.pads++
	l.offset += n
	return fields
}

// fields converts struct members to document fields. Members annotated
// "string" or "strings" become string fields and end offset tracking.
func (l *layout) fields(a *Assembler, vars []*ast.Variable, context string) ([]Field, error) {
	fields := []Field{}

	for _, v := range vars {
		if v.Pragma != nil {
			d, err := a.parseDirective(v.Pragma)
			if err != nil {
				return nil, err
			}

			switch d := d.(type) {
			case pragma.StringField:
				fields = append(fields, Field{Name: v.Name, Type: types.String})
			case pragma.StringFields:
				for _, name := range d.Names {
					fields = append(fields, Field{Name: name, Type: types.String})
				}
			default:
				return nil, errors.MisplacedDirective(d.String(), "a field of "+context, v.Pragma.Pos)
			}
			l.seenString = true
			continue
		}

		if l.seenString {
			return nil, errors.FieldAfterString(v.Name, v.NamePos)
		}
		if l.generic != "" {
			return nil, errors.FieldAfterGenericArray(v.Name, l.generic, v.NamePos)
		}

		fl := l.registry.Lookup(v.Type)
		if !l.packed {
			align := max(fl.Align, 1)
			l.maxAlign = max(l.maxAlign, align)
			if rem := l.offset % align; rem != 0 {
				fields = l.pad(fields, align-rem)
			}
		}

		fields = append(fields, Field{Name: v.Name, Type: fl.Type})

		if size, ok := fl.Size.Value(); ok {
			l.offset += size
		} else {
			l.generic = fl.Size.Name()
		}
	}

	if !l.packed && !l.seenString && l.generic == "" && l.maxAlign > 0 {
		if rem := l.offset % l.maxAlign; rem != 0 {
			fields = l.pad(fields, l.maxAlign-rem)
		}
	}
	return fields, nil
}
