package generator

import "dbcgen/internal/schema"

// vanillaLocales and extendedLocales name the locale slots of
// LocalizedString and ExtendedLocalizedString respectively, in wire
// order. Used only for naming generated SQLite export columns.
var vanillaLocales = []string{"enUS", "koKR", "frFR", "deDE", "enCN", "enTW", "esES", "esMX"}

var extendedLocales = []string{
	"enUS", "koKR", "frFR", "deDE",
	"enCN", "enTW", "esES", "esMX",
	"ruRU", "jaJP", "ptPT", "itIT",
	"unknown1", "unknown2", "unknown3", "unknown4",
}

func localeNames(version schema.Version) []string {
	if version == schema.VersionVanilla {
		return vanillaLocales
	}
	return extendedLocales
}
