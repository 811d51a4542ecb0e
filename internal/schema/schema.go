// Package schema contains the single source of truth for a DBC table
// definition. It provides a structured, version-agnostic representation of
// tables and fields parsed from the XML schema, together with the Objects
// catalog used to resolve foreign keys and enum names during generation.
package schema

import (
	"fmt"
	"sort"
)

// Version identifies which game release a table definition belongs to.
type Version string

const (
	VersionVanilla Version = "vanilla"
	VersionTBC     Version = "tbc"
	VersionWrath   Version = "wrath"
)

// Versions lists every supported version in a stable, documented order.
func Versions() []Version {
	return []Version{VersionVanilla, VersionTBC, VersionWrath}
}

// Valid reports whether v is a recognized version.
func (v Version) Valid() bool {
	switch v {
	case VersionVanilla, VersionTBC, VersionWrath:
		return true
	default:
		return false
	}
}

// Kind enumerates the field type vocabulary a schema field may use.
type Kind string

const (
	KindI32          Kind = "i32"
	KindU32          Kind = "u32"
	KindI16          Kind = "i16"
	KindU16          Kind = "u16"
	KindI8           Kind = "i8"
	KindU8           Kind = "u8"
	KindFloat        Kind = "float"
	KindBool32       Kind = "bool32"
	KindStringRef    Kind = "string_ref"
	KindStringRefLoc Kind = "string_ref_loc"
	KindArray        Kind = "array"
	KindPrimaryKey   Kind = "primary_key"
	KindForeignKey   Kind = "foreign_key"
	KindEnum         Kind = "enum"
)

// FieldType describes the fully resolved type of a table field, including
// the parameters that array, key, and enum kinds carry.
type FieldType struct {
	Kind Kind

	// ArrayElem and ArrayLen are set when Kind == KindArray.
	ArrayElem *FieldType
	ArrayLen  int

	// TargetTable is set when Kind == KindPrimaryKey or KindForeignKey.
	TargetTable string

	// Storage is the underlying wire integer kind for KindPrimaryKey and
	// KindForeignKey fields (u32 unless the schema overrides it).
	Storage Kind

	// EnumName is set when Kind == KindEnum.
	EnumName string
}

// Scalar builds a FieldType for one of the fixed-width numeric or string
// kinds that carry no parameters.
func Scalar(k Kind) FieldType {
	return FieldType{Kind: k}
}

// Array builds a FieldType describing a fixed-length array of elem.
func Array(elem FieldType, length int) FieldType {
	return FieldType{Kind: KindArray, ArrayElem: &elem, ArrayLen: length}
}

// PrimaryKey builds a FieldType describing a primary key into table, stored
// on the wire as storage (u32 if storage is empty).
func PrimaryKey(table string, storage ...Kind) FieldType {
	return FieldType{Kind: KindPrimaryKey, TargetTable: table, Storage: storageOrDefault(storage)}
}

// ForeignKey builds a FieldType describing a foreign key into table, stored
// on the wire as storage (u32 if storage is empty).
func ForeignKey(table string, storage ...Kind) FieldType {
	return FieldType{Kind: KindForeignKey, TargetTable: table, Storage: storageOrDefault(storage)}
}

func storageOrDefault(storage []Kind) Kind {
	if len(storage) > 0 && storage[0] != "" {
		return storage[0]
	}
	return KindU32
}

// Enum builds a FieldType describing a closed enum field.
func Enum(name string) FieldType {
	return FieldType{Kind: KindEnum, EnumName: name}
}

// Field is a single named column of a Table.
type Field struct {
	Name    string
	Type    FieldType
	Comment string
}

// Table is the resolved, version-scoped description of one DBC table, as
// parsed from its XML schema file.
type Table struct {
	Name    string
	Version Version
	Fields  []Field
}

// PrimaryKeyField returns the table's primary_key field, if any. If the
// schema declares more than one, the first is returned.
func (t *Table) PrimaryKeyField() (Field, bool) {
	for _, f := range t.Fields {
		if f.Type.Kind == KindPrimaryKey {
			return f, true
		}
	}
	return Field{}, false
}

// ForeignKeyFields returns every foreign_key field declared on the table,
// in declaration order.
func (t *Table) ForeignKeyFields() []Field {
	var out []Field
	for _, f := range t.Fields {
		if f.Type.Kind == KindForeignKey {
			out = append(out, f)
		}
	}
	return out
}

// EnumFields returns every field whose type (or array element type) is an
// enum, in declaration order.
func (t *Table) EnumFields() []Field {
	var out []Field
	for _, f := range t.Fields {
		ft := f.Type
		if ft.Kind == KindArray {
			ft = *ft.ArrayElem
		}
		if ft.Kind == KindEnum {
			out = append(out, f)
		}
	}
	return out
}

// Objects is the catalog of every table known for a single version. It is
// built incrementally as XML schema files are parsed and then used to
// validate cross-table references (foreign keys) and enum names.
type Objects struct {
	version Version
	tables  map[string]*Table
}

// NewObjects creates an empty catalog for the given version.
func NewObjects(version Version) *Objects {
	return &Objects{version: version, tables: make(map[string]*Table)}
}

// PushDescription registers a parsed table in the catalog. It returns an
// error if a table with the same name was already registered, or if the
// table's version does not match the catalog's version.
func (o *Objects) PushDescription(t *Table) error {
	if t.Version != o.version {
		return fmt.Errorf("schema: table %q has version %q, catalog is %q", t.Name, t.Version, o.version)
	}
	if _, exists := o.tables[t.Name]; exists {
		return fmt.Errorf("schema: duplicate table %q", t.Name)
	}
	o.tables[t.Name] = t
	return nil
}

// TableExists reports whether name was registered in the catalog.
func (o *Objects) TableExists(name string) bool {
	_, ok := o.tables[name]
	return ok
}

// Table returns the registered table by name.
func (o *Objects) Table(name string) (*Table, bool) {
	t, ok := o.tables[name]
	return t, ok
}

// Descriptions returns every registered table sorted by name. The sort
// makes code generation output deterministic regardless of the order in
// which XML files were discovered on disk.
func (o *Objects) Descriptions() []*Table {
	out := make([]*Table, 0, len(o.tables))
	for _, t := range o.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of tables registered in the catalog.
func (o *Objects) Len() int {
	return len(o.tables)
}
