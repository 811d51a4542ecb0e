package generator

import (
	"dbcgen/internal/schema"
	"dbcgen/internal/writer"
)

// KeyTypeName returns the generated Key type name for a table, e.g.
// "item" -> "ItemKey".
func KeyTypeName(table string) string {
	return writer.PascalCase(table) + "Key"
}

type keyEmitter struct{}

func (keyEmitter) spec(ft schema.FieldType) scalarEmitter {
	storage := ft.Storage
	if storage == "" {
		storage = schema.KindU32
	}
	return scalarSpecs[storage]
}

// goTypeName returns the Go type a key field resolves to: the target
// table's generated Key type if that table declares its own primary key,
// or the raw storage scalar otherwise (a foreign key into a table with no
// primary key, e.g. a pure lookup/mapping table, carries no typed key to
// reference).
func (e keyEmitter) goTypeName(ctx *context, ft schema.FieldType) string {
	if ft.Kind == schema.KindPrimaryKey {
		return KeyTypeName(ft.TargetTable)
	}
	if ctx != nil && ctx.objects != nil {
		if target, ok := ctx.objects.Table(ft.TargetTable); ok {
			if _, hasPK := target.PrimaryKeyField(); hasPK {
				return KeyTypeName(ft.TargetTable)
			}
		}
	}
	return e.spec(ft).goType
}

func (e keyEmitter) GoType(ctx *context, ft schema.FieldType) string {
	return e.goTypeName(ctx, ft)
}

func (e keyEmitter) Read(s *writer.Sink, ctx *context, dst string, ft schema.FieldType) {
	spec := e.spec(ft)
	s.WriteLine("%s := %s(c.%s())", dst, e.goTypeName(ctx, ft), spec.cursorFn)
}

func (e keyEmitter) Write(s *writer.Sink, _ *context, src string, ft schema.FieldType) {
	spec := e.spec(ft)
	s.WriteLine("buf = dbc.%s(buf, %s(%s))", spec.putFn, spec.goType, src)
}

func init() {
	registerEmitter(schema.KindPrimaryKey, keyEmitter{})
	registerEmitter(schema.KindForeignKey, keyEmitter{})
}
