// Package dbc implements the binary container format shared by every
// generated table: a fixed 20-byte header, a packed little-endian record
// region, and a trailing NUL-terminated string block.
package dbc

import "fmt"

// InvalidHeaderError reports a header field that does not match what the
// reading table expected.
type InvalidHeaderError struct {
	Field    string
	Expected uint32
	Actual   uint32
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("dbc: invalid header: %s: expected %d, got %d", e.Field, e.Expected, e.Actual)
}

// InvalidMagicError reports a header whose magic bytes are not "WDBC".
type InvalidMagicError struct {
	Actual [4]byte
}

func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf("dbc: invalid header: bad magic %q", string(e.Actual[:]))
}

// InvalidStringError reports a string-block offset that falls outside the
// bounds of the block, or that does not land on a NUL-terminated run.
type InvalidStringError struct {
	Offset uint32
	Size   uint32
}

func (e *InvalidStringError) Error() string {
	return fmt.Sprintf("dbc: invalid string offset %d (string block is %d bytes)", e.Offset, e.Size)
}

// InvalidEnumValueError reports a raw integer that does not correspond to
// any declared value of the target enum.
type InvalidEnumValueError struct {
	EnumName string
	Value    int64
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("dbc: invalid value %d for enum %q", e.Value, e.EnumName)
}

// InvalidTableNameError reports an unrecognized table name passed to a
// version's FromStr lookup.
type InvalidTableNameError struct {
	Version string
	Name    string
}

func (e *InvalidTableNameError) Error() string {
	return fmt.Sprintf("dbc: unknown %s table name %q", e.Version, e.Name)
}
