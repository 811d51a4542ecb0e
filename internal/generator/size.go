package generator

import "dbcgen/internal/schema"

// wireSize returns the number of bytes ft occupies in a packed record, for
// the given version (only string_ref_loc's width depends on version).
func wireSize(ft schema.FieldType, version schema.Version) int {
	switch ft.Kind {
	case schema.KindI32, schema.KindU32, schema.KindFloat, schema.KindBool32, schema.KindStringRef, schema.KindEnum:
		return 4
	case schema.KindI16, schema.KindU16:
		return 2
	case schema.KindI8, schema.KindU8:
		return 1
	case schema.KindStringRefLoc:
		if version == schema.VersionVanilla {
			return 4 * (8 + 1)
		}
		return 4 * (16 + 1)
	case schema.KindPrimaryKey, schema.KindForeignKey:
		storage := ft.Storage
		if storage == "" {
			storage = schema.KindU32
		}
		return wireSize(schema.Scalar(storage), version)
	case schema.KindArray:
		return ft.ArrayLen * wireSize(*ft.ArrayElem, version)
	default:
		return 0
	}
}

// RowSize returns the total packed record size for t under its version.
func RowSize(t *schema.Table) int {
	size := 0
	for _, f := range t.Fields {
		size += wireSize(f.Type, t.Version)
	}
	return size
}
