package generator

import (
	"fmt"

	"dbcgen/internal/schema"
	"dbcgen/internal/writer"
)

func writeReadFunc(s *writer.Sink, ctx *context, t *schema.Table, name string) error {
	s.WriteLine("// Read%s decodes a %s table from its raw DBC bytes.", name, name)
	s.WriteLine("func Read%s(b []byte) (*%s, error) {", name, name)

	var outerErr error
	s.Body(func() {
		s.WriteLine("if len(b) < dbc.HeaderSize {")
		s.Body(func() {
			s.WriteLine("return nil, &dbc.InvalidHeaderError{Field: \"length\", Expected: dbc.HeaderSize, Actual: uint32(len(b))}")
		})
		s.WriteLine("}")
		s.WriteLine("header, err := dbc.ParseHeader(b[:dbc.HeaderSize])")
		s.WriteLine("if err != nil {")
		s.Body(func() { s.WriteLine("return nil, err") })
		s.WriteLine("}")
		s.WriteLine("if err := header.CheckRecordSize(%sRowSize); err != nil {", name)
		s.Body(func() { s.WriteLine("return nil, err") })
		s.WriteLine("}")
		s.WriteLine("if err := header.CheckFieldCount(%sFieldCount); err != nil {", name)
		s.Body(func() { s.WriteLine("return nil, err") })
		s.WriteLine("}")
		s.Newline()

		s.WriteLine("recordsStart := dbc.HeaderSize")
		s.WriteLine("recordsEnd, stringBlockEnd, err := header.TableRegions(len(b))")
		s.WriteLine("if err != nil {")
		s.Body(func() { s.WriteLine("return nil, err") })
		s.WriteLine("}")
		s.WriteLine("stringBlock := b[recordsEnd:stringBlockEnd]")
		s.Newline()

		s.WriteLine("rows := make([]%sRow, 0, header.RecordCount)", name)
		s.WriteLine("for i := 0; i < int(header.RecordCount); i++ {")
		s.Body(func() {
			s.WriteLine("recOffset := recordsStart + i*int(header.RecordSize)")
			s.WriteLine("c := dbc.NewCursor(b[recOffset : recOffset+int(header.RecordSize)])")

			fieldVars := make([]string, 0, len(t.Fields))
			for _, f := range t.Fields {
				e, err := emitterFor(f.Type.Kind)
				if err != nil {
					outerErr = fmt.Errorf("table %q, field %q: %w", t.Name, f.Name, err)
					return
				}
				v := "v" + writer.PascalCase(f.Name)
				e.Read(s, ctx, v, f.Type)
				fieldVars = append(fieldVars, v)
			}

			s.WriteLine("rows = append(rows, %sRow{", name)
			s.Body(func() {
				for i, f := range t.Fields {
					s.WriteLine("%s: %s,", writer.PascalCase(f.Name), fieldVars[i])
				}
			})
			s.WriteLine("})")
		})
		if outerErr != nil {
			return
		}
		s.WriteLine("}")
		s.Newline()
		s.WriteLine("return &%s{Rows: rows}, nil", name)
	})
	s.WriteLine("}")

	return outerErr
}

func writeWriteFunc(s *writer.Sink, ctx *context, t *schema.Table, name string) error {
	s.WriteLine("// Write encodes t back to its raw DBC representation.")
	s.WriteLine("func (t *%s) Write(w io.Writer) error {", name)

	var outerErr error
	s.Body(func() {
		s.WriteLine("sw := dbc.NewStringWriter()")
		s.WriteLine("buf := make([]byte, 0, len(t.Rows)*%sRowSize)", name)
		s.WriteLine("for _, row := range t.Rows {")
		s.Body(func() {
			for _, f := range t.Fields {
				e, err := emitterFor(f.Type.Kind)
				if err != nil {
					outerErr = fmt.Errorf("table %q, field %q: %w", t.Name, f.Name, err)
					return
				}
				e.Write(s, ctx, "row."+writer.PascalCase(f.Name), f.Type)
			}
		})
		s.WriteLine("}")
		if outerErr != nil {
			return
		}
		s.Newline()

		s.WriteLine("header := dbc.Header{")
		s.Body(func() {
			s.WriteLine("RecordCount: uint32(len(t.Rows)),")
			s.WriteLine("FieldCount: %sFieldCount,", name)
			s.WriteLine("RecordSize: %sRowSize,", name)
			s.WriteLine("StringBlockSize: sw.Size(),")
		})
		s.WriteLine("}")
		s.WriteLine("headerBytes := header.Write()")
		s.Newline()

		s.WriteLine("if _, err := w.Write(headerBytes[:]); err != nil {")
		s.Body(func() { s.WriteLine("return err") })
		s.WriteLine("}")
		s.WriteLine("if _, err := w.Write(buf); err != nil {")
		s.Body(func() { s.WriteLine("return err") })
		s.WriteLine("}")
		s.WriteLine("if _, err := w.Write(sw.Bytes()); err != nil {")
		s.Body(func() { s.WriteLine("return err") })
		s.WriteLine("}")
		s.WriteLine("return nil")
	})
	s.WriteLine("}")

	return outerErr
}
