package generator

import (
	"fmt"
	"strings"

	"dbcgen/internal/schema"
	"dbcgen/internal/writer"
)

// sqliteColumn is one flattened SQLite column produced by a table field:
// arrays expand into N suffixed columns, string_ref_loc expands into one
// TEXT column per locale plus a flags column.
type sqliteColumn struct {
	name    string
	sqlType string
	valExpr string // Go expression, in scope of "row", producing a string value
}

func sqliteColumnsForField(ctx *context, f schema.Field) []sqliteColumn {
	ft := f.Type
	goName := writer.PascalCase(f.Name)

	switch ft.Kind {
	case schema.KindI32, schema.KindU32, schema.KindI16, schema.KindU16, schema.KindI8, schema.KindU8, schema.KindEnum:
		return []sqliteColumn{{name: f.Name, sqlType: "INTEGER", valExpr: fmt.Sprintf("fmt.Sprintf(\"%%d\", row.%s)", goName)}}

	case schema.KindBool32:
		return []sqliteColumn{{name: f.Name, sqlType: "INTEGER", valExpr: fmt.Sprintf("fmt.Sprintf(\"%%d\", sqlite.BoolInt(row.%s))", goName)}}

	case schema.KindFloat:
		return []sqliteColumn{{name: f.Name, sqlType: "REAL", valExpr: fmt.Sprintf("fmt.Sprintf(\"%%v\", row.%s)", goName)}}

	case schema.KindStringRef:
		return []sqliteColumn{{name: f.Name, sqlType: "TEXT", valExpr: fmt.Sprintf("sqlite.QuoteString(row.%s)", goName)}}

	case schema.KindStringRefLoc:
		cols := make([]sqliteColumn, 0, len(localeNames(ctx.version))+1)
		for i, locale := range localeNames(ctx.version) {
			cols = append(cols, sqliteColumn{
				name:    fmt.Sprintf("%s_%s", f.Name, locale),
				sqlType: "TEXT",
				valExpr: fmt.Sprintf("sqlite.QuoteString(row.%s.Strings[%d])", goName, i),
			})
		}
		cols = append(cols, sqliteColumn{
			name:    f.Name + "_flags",
			sqlType: "INTEGER",
			valExpr: fmt.Sprintf("fmt.Sprintf(\"%%d\", row.%s.Flags)", goName),
		})
		return cols

	case schema.KindPrimaryKey:
		return []sqliteColumn{{name: f.Name, sqlType: "INTEGER PRIMARY KEY", valExpr: fmt.Sprintf("fmt.Sprintf(\"%%d\", row.%s)", goName)}}

	case schema.KindForeignKey:
		return []sqliteColumn{{name: f.Name, sqlType: "INTEGER" + fkReferences(ctx, ft), valExpr: fmt.Sprintf("fmt.Sprintf(\"%%d\", row.%s)", goName)}}

	case schema.KindArray:
		cols := make([]sqliteColumn, 0, ft.ArrayLen)
		for i := 0; i < ft.ArrayLen; i++ {
			elemField := schema.Field{Name: fmt.Sprintf("%s_%d", f.Name, i+1), Type: *ft.ArrayElem}
			idx := fmt.Sprintf("row.%s[%d]", goName, i)
			sub := sqliteColumnsForField(ctx, elemField)
			for j := range sub {
				sub[j].valExpr = strings.Replace(sub[j].valExpr, fmt.Sprintf("row.%s", writer.PascalCase(elemField.Name)), idx, 1)
			}
			cols = append(cols, sub...)
		}
		return cols

	default:
		return nil
	}
}

func fkReferences(ctx *context, ft schema.FieldType) string {
	if ctx.objects == nil {
		return ""
	}
	target, ok := ctx.objects.Table(ft.TargetTable)
	if !ok {
		return ""
	}
	pk, ok := target.PrimaryKeyField()
	if !ok {
		return ""
	}
	return fmt.Sprintf(" REFERENCES %s(%s)", ft.TargetTable, pk.Name)
}

// GenerateSQLiteExport renders SQLiteCreateTable and SQLiteInsertStatements
// methods on t's generated type, letting a parsed table be dumped into a
// standalone SQLite database for inspection.
func GenerateSQLiteExport(t *schema.Table, objects *schema.Objects) (fileName, source string) {
	ctx := &context{version: t.Version, objects: objects}
	name := StructName(t.Name)

	var columns []sqliteColumn
	for _, f := range t.Fields {
		columns = append(columns, sqliteColumnsForField(ctx, f)...)
	}

	s := writer.New()
	s.WriteLine("// Code generated by dbcgen. DO NOT EDIT.")
	s.WriteLine("package %s", PackageName(t.Version))
	s.Newline()
	s.WriteLine("import (")
	s.Body(func() {
		s.WriteLine(`"fmt"`)
		s.WriteLine(`"strings"`)
		s.Newline()
		s.WriteLine(`"dbcgen/internal/sqlite"`)
	})
	s.WriteLine(")")
	s.Newline()

	s.WriteLine("// SQLiteCreateTable returns the CREATE TABLE statement for %s.", t.Name)
	s.WriteLine("func (t *%s) SQLiteCreateTable() string {", name)
	s.Body(func() {
		s.WriteLine("var b strings.Builder")
		s.WriteLine("b.WriteString(%q)", "CREATE TABLE "+sqliteIdent(t.Name)+" (\n")
		for i, c := range columns {
			suffix := ",\n"
			if i == len(columns)-1 {
				suffix = "\n"
			}
			s.WriteLine("b.WriteString(%q)", "\t"+sqliteIdent(c.name)+" "+c.sqlType+suffix)
		}
		s.WriteLine("b.WriteString(%q)", ");")
		s.WriteLine("return b.String()")
	})
	s.WriteLine("}")
	s.Newline()

	s.WriteLine("// SQLiteInsertStatements renders one INSERT statement per row of t.")
	s.WriteLine("func (t *%s) SQLiteInsertStatements() []string {", name)
	s.Body(func() {
		s.WriteLine("stmts := make([]string, 0, len(t.Rows))")
		s.WriteLine("for _, row := range t.Rows {")
		s.Body(func() {
			s.WriteLine("vals := make([]string, 0, %d)", len(columns))
			for _, c := range columns {
				s.WriteLine("vals = append(vals, %s)", c.valExpr)
			}
			s.WriteLine("stmts = append(stmts, fmt.Sprintf(%q, strings.Join(vals, \", \")))",
				"INSERT INTO "+sqliteIdent(t.Name)+" ("+columnList(columns)+") VALUES (%s);")
		})
		s.WriteLine("}")
		s.WriteLine("return stmts")
	})
	s.WriteLine("}")

	return writer.SnakeCase(name) + "_sqlite.go", s.String()
}

func sqliteIdent(name string) string {
	return `"` + name + `"`
}

func columnList(columns []sqliteColumn) string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = sqliteIdent(c.name)
	}
	return strings.Join(names, ", ")
}
