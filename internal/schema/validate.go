package schema

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ValidationError reports a structural problem found while validating a
// catalog: an unresolved foreign-key target, an unregistered enum name, or a
// malformed primary key declaration.
type ValidationError struct {
	Entity  string // "table" or "field"
	Name    string // table name
	Field   string // field name, empty for table-level errors
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %q, field %q: %s", e.Entity, e.Name, e.Field, e.Message)
	}
	return fmt.Sprintf("%s %q: %s", e.Entity, e.Name, e.Message)
}

// Validate runs the two-pass validation a fully populated catalog requires:
// every table name must already be registered (PushDescription guarantees
// this), and then every foreign_key target_table and every enum field's
// enum_name must resolve — the former against the catalog itself, the
// latter against the closed catalog for this version.
//
// Validate must be called only after every table in the version has been
// pushed into o; calling it mid-parse against a partial catalog will reject
// forward references that are in fact valid.
func (o *Objects) Validate(enums EnumCatalog) error {
	for _, t := range o.Descriptions() {
		if err := o.validatePrimaryKey(t); err != nil {
			return err
		}
		if err := o.validateForeignKeys(t); err != nil {
			return err
		}
		if err := validateEnumNames(t, enums); err != nil {
			return err
		}
	}
	return nil
}

// validatePrimaryKey checks that a primary_key<Table> field names the table
// it is declared on; a primary key typed against a different table is
// almost certainly a copy-paste error in the schema.
func (o *Objects) validatePrimaryKey(t *Table) error {
	pk, ok := t.PrimaryKeyField()
	if !ok {
		return nil
	}
	if pk.Type.TargetTable != t.Name {
		return errors.Wrapf(&ValidationError{
			Entity:  "table",
			Name:    t.Name,
			Field:   pk.Name,
			Message: fmt.Sprintf("primary_key targets table %q, expected %q", pk.Type.TargetTable, t.Name),
		}, "schema: invalid primary key")
	}
	return nil
}

// validateForeignKeys ensures every foreign_key<Table> field on t (including
// array element types) names a table that exists in the catalog.
func (o *Objects) validateForeignKeys(t *Table) error {
	for _, f := range t.Fields {
		ft := f.Type
		if ft.Kind == KindArray {
			ft = *ft.ArrayElem
		}
		if ft.Kind != KindForeignKey {
			continue
		}
		target := ft.TargetTable
		if !o.TableExists(target) {
			return errors.Wrapf(&ValidationError{
				Entity:  "table",
				Name:    t.Name,
				Field:   f.Name,
				Message: fmt.Sprintf("foreign_key targets unknown table %q", target),
			}, "schema: unresolved foreign key")
		}
	}
	return nil
}
