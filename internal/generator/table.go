package generator

import (
	"fmt"

	"dbcgen/internal/schema"
	"dbcgen/internal/writer"
)

// StructName returns the exported Go identifier for a table, e.g.
// "item_sub_class_mask" -> "ItemSubClassMask".
func StructName(table string) string {
	return writer.PascalCase(table)
}

// PackageName returns the Go package name generated tables of a version
// live under.
func PackageName(version schema.Version) string {
	return string(version)
}

// GenerateTable renders a table's row struct, key type, and binary
// read/write routines as a single Go source file.
func GenerateTable(t *schema.Table, objects *schema.Objects) (fileName, source string, err error) {
	ctx := &context{version: t.Version, objects: objects}
	name := StructName(t.Name)

	s := writer.New()
	s.WriteLine("// Code generated by dbcgen. DO NOT EDIT.")
	s.WriteLine("package %s", PackageName(t.Version))
	s.Newline()
	s.WriteLine("import (")
	s.Body(func() {
		s.WriteLine(`"io"`)
		s.Newline()
		s.WriteLine(`"dbcgen/internal/dbc"`)
	})
	s.WriteLine(")")
	s.Newline()

	writeConstants(s, t, name)
	s.Newline()

	if pk, ok := t.PrimaryKeyField(); ok {
		writeKeyType(s, name, pk)
		s.Newline()
	}

	if err := writeRowStruct(s, ctx, t, name); err != nil {
		return "", "", err
	}
	s.Newline()

	if pk, ok := t.PrimaryKeyField(); ok {
		writeKeyMethod(s, name, pk)
		s.Newline()
	}

	writeTableType(s, name)
	s.Newline()

	if pk, ok := t.PrimaryKeyField(); ok {
		writeLookupMethods(s, name, KeyTypeName(pk.Type.TargetTable))
		s.Newline()
	}

	if err := writeReadFunc(s, ctx, t, name); err != nil {
		return "", "", err
	}
	s.Newline()

	if err := writeWriteFunc(s, ctx, t, name); err != nil {
		return "", "", err
	}

	return writer.FileName(name), s.String(), nil
}

func writeConstants(s *writer.Sink, t *schema.Table, name string) {
	s.WriteLine("const (")
	s.Body(func() {
		s.WriteLine("%sFileName = %q", name, name+".dbc")
		s.WriteLine("%sFieldCount = %d", name, len(t.Fields))
		s.WriteLine("%sRowSize = %d", name, RowSize(t))
	})
	s.WriteLine(")")
}

func writeRowStruct(s *writer.Sink, ctx *context, t *schema.Table, name string) error {
	s.WriteLine("type %sRow struct {", name)
	err := func() error {
		var inner error
		s.Body(func() {
			for _, f := range t.Fields {
				e, err := emitterFor(f.Type.Kind)
				if err != nil {
					inner = fmt.Errorf("table %q, field %q: %w", t.Name, f.Name, err)
					return
				}
				fieldName := writer.PascalCase(f.Name)
				goType := e.GoType(ctx, f.Type)
				if f.Comment != "" {
					s.WriteLine("%s %s // %s", fieldName, goType, f.Comment)
				} else {
					s.WriteLine("%s %s", fieldName, goType)
				}
			}
		})
		return inner
	}()
	if err != nil {
		return err
	}
	s.WriteLine("}")
	return nil
}

func writeKeyType(s *writer.Sink, name string, pk schema.Field) {
	storage := pk.Type.Storage
	if storage == "" {
		storage = schema.KindU32
	}
	s.WriteLine("// %s is the typed primary key of %sRow.", KeyTypeName(pk.Type.TargetTable), name)
	s.WriteLine("type %s %s", KeyTypeName(pk.Type.TargetTable), scalarSpecs[storage].goType)
}

func writeKeyMethod(s *writer.Sink, name string, pk schema.Field) {
	keyType := KeyTypeName(pk.Type.TargetTable)
	fieldName := writer.PascalCase(pk.Name)
	s.WriteLine("// Key implements dbc.Indexable for %sRow.", name)
	s.WriteLine("func (r %sRow) Key() %s {", name, keyType)
	s.Body(func() {
		s.WriteLine("return r.%s", fieldName)
	})
	s.WriteLine("}")
}

// writeTableType emits the table wrapper every generated Read/Write/export
// routine operates on.
func writeTableType(s *writer.Sink, name string) {
	s.WriteLine("// %s is the in-memory table decoded from a %s.dbc file.", name, name)
	s.WriteLine("type %s struct {", name)
	s.Body(func() {
		s.WriteLine("Rows []%sRow", name)
	})
	s.WriteLine("}")
}

// writeLookupMethods emits the Indexable-backed Get/GetMut primary-key
// lookups described by §4.3.3: linear scan, first match wins, a key that
// matches no row is reported as "not found", never an error.
func writeLookupMethods(s *writer.Sink, name, keyType string) {
	s.WriteLine("// Get returns the row whose primary key equals key, if any.")
	s.WriteLine("func (t *%s) Get(key %s) (%sRow, bool) {", name, keyType, name)
	s.Body(func() {
		s.WriteLine("row, ok := dbc.FindByKey(t.Rows, key)")
		s.WriteLine("if !ok {")
		s.Body(func() {
			s.WriteLine("return %sRow{}, false", name)
		})
		s.WriteLine("}")
		s.WriteLine("return *row, true")
	})
	s.WriteLine("}")
	s.Newline()
	s.WriteLine("// GetMut returns a pointer to the row whose primary key equals key, if any.")
	s.WriteLine("func (t *%s) GetMut(key %s) (*%sRow, bool) {", name, keyType, name)
	s.Body(func() {
		s.WriteLine("return dbc.FindByKey(t.Rows, key)")
	})
	s.WriteLine("}")
}
