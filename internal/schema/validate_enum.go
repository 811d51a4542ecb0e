package schema

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// EnumCatalog is the closed set of enum names a schema's enum<E> fields may
// reference, scoped per version. The enums themselves are hand-maintained
// Go types living outside this package (and outside this module's scope);
// the catalog exists purely so the schema loader can catch a typo'd or
// retired enum_name before code generation runs.
type EnumCatalog map[Version]map[string]bool

// commonEnumNames lists enum names available to every version.
var commonEnumNames = []string{
	"ServerRegion",
	"ServerCategory",
	"ItemClass",
	"ItemSubClass",
	"InventoryType",
	"Language",
	"Map",
	"Faction",
	"CharTitle",
	"AreaTeam",
	"SkillCategory",
	"SpellSchool",
	"ChrRace",
	"ChrClass",
	"LiquidType",
}

// versionEnumNames lists enum names introduced in a specific version.
var versionEnumNames = map[Version][]string{
	VersionVanilla: {},
	VersionTBC: {
		"ExpansionLevel",
		"BattlemasterListType",
	},
	VersionWrath: {
		"ExpansionLevel",
		"BattlemasterListType",
		"AchievementFlags",
		"VehicleSeatFlags",
	},
}

// DefaultEnumCatalog builds the catalog used by the stock generator: every
// common name plus the names introduced by each version.
func DefaultEnumCatalog() EnumCatalog {
	c := make(EnumCatalog, len(versionEnumNames))
	for _, v := range Versions() {
		names := make(map[string]bool, len(commonEnumNames)+len(versionEnumNames[v]))
		for _, n := range commonEnumNames {
			names[n] = true
		}
		for _, n := range versionEnumNames[v] {
			names[n] = true
		}
		c[v] = names
	}
	return c
}

// Known reports whether name is registered for version.
func (c EnumCatalog) Known(version Version, name string) bool {
	names, ok := c[version]
	if !ok {
		return false
	}
	return names[name]
}

// validateEnumNames checks every enum field on t (including array element
// types) against the catalog for t's version.
func validateEnumNames(t *Table, enums EnumCatalog) error {
	for _, f := range t.EnumFields() {
		ft := f.Type
		if ft.Kind == KindArray {
			ft = *ft.ArrayElem
		}
		if !enums.Known(t.Version, ft.EnumName) {
			return errors.Wrapf(&ValidationError{
				Entity:  "table",
				Name:    t.Name,
				Field:   f.Name,
				Message: fmt.Sprintf("enum_name %q is not registered for version %q", ft.EnumName, t.Version),
			}, "schema: unresolved enum name")
		}
	}
	return nil
}
