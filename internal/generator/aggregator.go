package generator

import (
	"dbcgen/internal/schema"
	"dbcgen/internal/writer"
)

// GenerateAggregator renders a version's mod.go: the TableName enum with
// its FromStr lookup, and the Table tagged union with its load/write
// dispatch across every table registered for the version.
func GenerateAggregator(version schema.Version, descriptions []*schema.Table) (fileName, source string) {
	s := writer.New()
	s.WriteLine("// Code generated by dbcgen. DO NOT EDIT.")
	s.WriteLine("package %s", PackageName(version))
	s.Newline()
	s.WriteLine("import (")
	s.Body(func() {
		s.WriteLine(`"fmt"`)
		s.WriteLine(`"io"`)
		s.Newline()
		s.WriteLine(`"dbcgen/internal/dbc"`)
	})
	s.WriteLine(")")
	s.Newline()

	s.WriteLine("// TableName identifies one of the tables known to this version.")
	s.WriteLine("type TableName string")
	s.Newline()

	s.WriteLine("const (")
	s.Body(func() {
		for _, t := range descriptions {
			s.WriteLine("TableName%s TableName = %q", StructName(t.Name), t.Name)
		}
	})
	s.WriteLine(")")
	s.Newline()

	s.WriteLine("// TableNameFromStr parses a table name, rejecting anything not in this version's catalog.")
	s.WriteLine("func TableNameFromStr(s string) (TableName, error) {")
	s.Body(func() {
		s.WriteLine("switch TableName(s) {")
		s.WriteLine("case %s:", joinTableNameConsts(descriptions))
		s.Body(func() { s.WriteLine("return TableName(s), nil") })
		s.WriteLine("default:")
		s.Body(func() {
			s.WriteLine("return \"\", &dbc.InvalidTableNameError{Version: %q, Name: s}", string(version))
		})
		s.WriteLine("}")
	})
	s.WriteLine("}")
	s.Newline()

	s.WriteLine("// Table is a tagged union over every table type this version defines;")
	s.WriteLine("// exactly the field matching Name is populated.")
	s.WriteLine("type Table struct {")
	s.Body(func() {
		s.WriteLine("Name TableName")
		for _, t := range descriptions {
			s.WriteLine("%s *%s", StructName(t.Name), StructName(t.Name))
		}
	})
	s.WriteLine("}")
	s.Newline()

	s.WriteLine("// LoadTable decodes raw DBC bytes into a Table, dispatching on name.")
	s.WriteLine("func LoadTable(name TableName, b []byte) (*Table, error) {")
	s.Body(func() {
		s.WriteLine("switch name {")
		for _, t := range descriptions {
			name := StructName(t.Name)
			s.WriteLine("case TableName%s:", name)
			s.Body(func() {
				s.WriteLine("v, err := Read%s(b)", name)
				s.WriteLine("if err != nil {")
				s.Body(func() { s.WriteLine("return nil, err") })
				s.WriteLine("}")
				s.WriteLine("return &Table{Name: name, %s: v}, nil", name)
			})
		}
		s.WriteLine("default:")
		s.Body(func() {
			s.WriteLine("return nil, fmt.Errorf(%q, name)", "unknown table name %q")
		})
		s.WriteLine("}")
	})
	s.WriteLine("}")
	s.Newline()

	s.WriteLine("// WriteTable encodes t back to its raw DBC representation, dispatching on t.Name.")
	s.WriteLine("func (t *Table) WriteTable(w io.Writer) error {")
	s.Body(func() {
		s.WriteLine("switch t.Name {")
		for _, t := range descriptions {
			name := StructName(t.Name)
			s.WriteLine("case TableName%s:", name)
			s.Body(func() { s.WriteLine("return t.%s.Write(w)", name) })
		}
		s.WriteLine("default:")
		s.Body(func() {
			s.WriteLine("return fmt.Errorf(%q, t.Name)", "unknown table name %q")
		})
		s.WriteLine("}")
	})
	s.WriteLine("}")

	return writer.ModuleName("mod"), s.String()
}

func joinTableNameConsts(descriptions []*schema.Table) string {
	out := ""
	for i, t := range descriptions {
		if i > 0 {
			out += ", "
		}
		out += "TableName" + StructName(t.Name)
	}
	return out
}
