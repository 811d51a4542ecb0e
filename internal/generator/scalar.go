package generator

import (
	"dbcgen/internal/schema"
	"dbcgen/internal/writer"
)

type scalarEmitter struct {
	goType   string
	cursorFn string
	putFn    string
}

func (e scalarEmitter) GoType(*context, schema.FieldType) string { return e.goType }

func (e scalarEmitter) Read(s *writer.Sink, _ *context, dst string, _ schema.FieldType) {
	s.WriteLine("%s := c.%s()", dst, e.cursorFn)
}

func (e scalarEmitter) Write(s *writer.Sink, _ *context, src string, _ schema.FieldType) {
	s.WriteLine("buf = dbc.%s(buf, %s)", e.putFn, src)
}

type stringRefEmitter struct{}

func (stringRefEmitter) GoType(*context, schema.FieldType) string { return "string" }

func (stringRefEmitter) Read(s *writer.Sink, _ *context, dst string, _ schema.FieldType) {
	s.WriteLine("%s, err := dbc.ResolveString(stringBlock, c.StringOffset())", dst)
	s.WriteLine("if err != nil {")
	s.Body(func() { s.WriteLine("return nil, err") })
	s.WriteLine("}")
}

func (stringRefEmitter) Write(s *writer.Sink, _ *context, src string, _ schema.FieldType) {
	s.WriteLine("buf = dbc.PutU32(buf, sw.Put(%s))", src)
}

type stringRefLocEmitter struct{}

func (stringRefLocEmitter) GoType(ctx *context, _ schema.FieldType) string {
	return localizedGoType(ctx.version)
}

func (stringRefLocEmitter) Read(s *writer.Sink, ctx *context, dst string, _ schema.FieldType) {
	s.WriteLine("%s, err := dbc.%s(c, stringBlock)", dst, localizedReadFunc(ctx.version))
	s.WriteLine("if err != nil {")
	s.Body(func() { s.WriteLine("return nil, err") })
	s.WriteLine("}")
}

func (stringRefLocEmitter) Write(s *writer.Sink, _ *context, src string, _ schema.FieldType) {
	s.WriteLine("buf = %s.Write(buf, sw)", src)
}

func localizedGoType(version schema.Version) string {
	if version == schema.VersionVanilla {
		return "dbc.LocalizedString"
	}
	return "dbc.ExtendedLocalizedString"
}

func localizedReadFunc(version schema.Version) string {
	if version == schema.VersionVanilla {
		return "ReadLocalizedString"
	}
	return "ReadExtendedLocalizedString"
}

// scalarSpecs maps the fixed-width integer/float kinds to their Go type
// and Cursor/Put accessor names. Shared with the key emitters, since a
// primary_key/foreign_key field's storage kind reuses this same wire
// encoding.
var scalarSpecs = map[schema.Kind]scalarEmitter{
	schema.KindI32:   {goType: "int32", cursorFn: "I32", putFn: "PutI32"},
	schema.KindU32:   {goType: "uint32", cursorFn: "U32", putFn: "PutU32"},
	schema.KindI16:   {goType: "int16", cursorFn: "I16", putFn: "PutI16"},
	schema.KindU16:   {goType: "uint16", cursorFn: "U16", putFn: "PutU16"},
	schema.KindI8:    {goType: "int8", cursorFn: "I8", putFn: "PutI8"},
	schema.KindU8:    {goType: "uint8", cursorFn: "U8", putFn: "PutU8"},
	schema.KindFloat: {goType: "float32", cursorFn: "Float", putFn: "PutFloat"},
}

func init() {
	for k, spec := range scalarSpecs {
		registerEmitter(k, spec)
	}
	registerEmitter(schema.KindBool32, scalarEmitter{goType: "bool", cursorFn: "Bool32", putFn: "PutBool32"})
	registerEmitter(schema.KindStringRef, stringRefEmitter{})
	registerEmitter(schema.KindStringRefLoc, stringRefLocEmitter{})
}
