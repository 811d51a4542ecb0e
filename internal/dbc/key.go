package dbc

import "fmt"

// Int is the set of underlying integer kinds a generated key type can wrap.
type Int interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// KeyFromInt64 converts a raw int64 (as produced by generic call sites that
// don't know a key's concrete width) into T, returning an error if the
// value overflows T's range (a negative value never fits an unsigned T).
// It is the single overflow-checked constructor for key types: generated
// tables emit no per-width conversion functions of their own, and a
// lossless conversion is a plain Go conversion such as ItemKey(v).
func KeyFromInt64[T Int](v int64) (T, error) {
	t := T(v)
	if int64(t) != v || (t < 0) != (v < 0) {
		var zero T
		return zero, fmt.Errorf("dbc: value %d does not fit in key type %T", v, zero)
	}
	return t, nil
}

// Indexable is implemented by a table's generated row type, letting
// FindByKey locate a row by its primary key without per-table boilerplate.
type Indexable[K comparable] interface {
	Key() K
}

// FindByKey returns a pointer to the row in rows whose Key() equals key,
// or false if none matches.
func FindByKey[K comparable, R Indexable[K]](rows []R, key K) (*R, bool) {
	for i := range rows {
		if rows[i].Key() == key {
			return &rows[i], true
		}
	}
	return nil, false
}
