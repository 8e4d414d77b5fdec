package ast

import (
	"fmt"
	"strings"
)

func (p *Pragma) String() string {
	return "#idl " + p.Text
}

func (v *Variable) String() string {
	var b strings.Builder

	if v.Pragma != nil {
		b.WriteString(fmt.Sprintf("[%s] ", v.Pragma))
	}
	if v.IsConst {
		b.WriteString("const ")
	}
	b.WriteString(v.Type)
	b.WriteString(" ")
	b.WriteString(v.Name)
	if v.Value != nil {
		b.WriteString(" = ")
		b.WriteString(*v.Value)
	}

	return b.String()
}

func (s *Struct) String() string {
	var b strings.Builder

	if s.Pragma != nil {
		b.WriteString(fmt.Sprintf("[%s]\n", s.Pragma))
	}
	if s.Packed {
		b.WriteString("packed ")
	}
	b.WriteString(fmt.Sprintf("struct %s {\n", s.Name))
	for _, field := range s.Fields {
		b.WriteString("  " + field.String() + "\n")
	}
	b.WriteString("}")

	return b.String()
}

func (f *Function) String() string {
	if f.Pragma != nil {
		return fmt.Sprintf("[%s]\nfn %s", f.Pragma, f.Name)
	}
	return "fn " + f.Name
}

// String dumps every declaration of the file, variables first.
func (f *File) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("file %s\n", f.Path))
	for _, v := range f.Vars {
		b.WriteString(v.String() + "\n")
	}
	for _, s := range f.Structs {
		b.WriteString(s.String() + "\n")
	}
	for _, fn := range f.Functions {
		b.WriteString(fn.String() + "\n")
	}

	return b.String()
}
