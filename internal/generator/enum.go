package generator

import (
	"dbcgen/internal/schema"
	"dbcgen/internal/writer"
)

// enumEmitter renders enum<E> fields as their raw wire representation
// (int32). The catalog of concrete enum types (ServerRegion, ItemClass,
// ...) lives outside this module's scope; schema.EnumCatalog only checks
// that the declared enum_name is a recognized one before generation runs.
type enumEmitter struct{}

func (enumEmitter) GoType(*context, schema.FieldType) string { return "int32" }

func (enumEmitter) Read(s *writer.Sink, _ *context, dst string, ft schema.FieldType) {
	s.WriteLine("%s := c.I32() // enum: %s", dst, ft.EnumName)
}

func (enumEmitter) Write(s *writer.Sink, _ *context, src string, _ schema.FieldType) {
	s.WriteLine("buf = dbc.PutI32(buf, %s)", src)
}

func init() {
	registerEmitter(schema.KindEnum, enumEmitter{})
}
