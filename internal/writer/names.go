package writer

import (
	"strings"
	"unicode"
)

// SnakeCase deterministically converts a CamelCase or PascalCase identifier
// into snake_case. It is pure and idempotent: SnakeCase(SnakeCase(s)) ==
// SnakeCase(s) for every s this package produces, which the generator
// relies on when deriving a table's file name from its struct name.
func SnakeCase(s string) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if !unicode.IsUpper(prev) || nextIsLower {
					if prev != '_' {
						b.WriteByte('_')
					}
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PascalCase converts a snake_case identifier into a Go exported
// identifier, e.g. "item_sub_class_mask" -> "ItemSubClassMask".
func PascalCase(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	return b.String()
}

// FileName derives the generated Go file name for a table struct name,
// e.g. "ItemSubClassMask" -> "item_sub_class_mask.go".
func FileName(structName string) string {
	return SnakeCase(structName) + ".go"
}

// ModuleName derives the generated Go file name for a version's aggregator
// module, e.g. "Vanilla" -> "vanilla.go".
func ModuleName(versionName string) string {
	return SnakeCase(versionName) + ".go"
}
