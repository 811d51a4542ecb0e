// Package sqlite holds the quoting and value helpers that the generated
// SQLite export code calls when it renders DBC tables into standalone
// CREATE TABLE and INSERT statements, so a table can be inspected with an
// ordinary SQLite client instead of the binary container format.
package sqlite

import "strings"

// QuoteIdentifier quotes name as a SQLite double-quoted identifier,
// doubling any embedded double quotes.
func QuoteIdentifier(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, `"`, `""`)
	return `"` + name + `"`
}

// QuoteString quotes value as a SQLite single-quoted string literal,
// doubling any embedded single quotes. Unlike MySQL, standard SQLite
// string literals have no backslash escape sequences, so doubling the
// quote character is the only transformation needed.
func QuoteString(value string) string {
	var b strings.Builder
	b.Grow(len(value) + len(value)/10 + 2)
	b.WriteByte('\'')
	for _, r := range value {
		if r == '\'' {
			b.WriteString("''")
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}
