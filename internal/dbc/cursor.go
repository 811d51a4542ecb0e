package dbc

import (
	"encoding/binary"
	"math"
)

// Cursor reads fixed-width little-endian fields sequentially out of a
// single record's byte slice. Generated Read methods hold one Cursor per
// record; generated Write methods append to a byte slice directly instead,
// since record layout is static and never needs random access.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps a record's raw bytes for sequential field decoding.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

func (c *Cursor) take(n int) []byte {
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b
}

// I32 reads a little-endian signed 32-bit integer.
func (c *Cursor) I32() int32 { return int32(binary.LittleEndian.Uint32(c.take(4))) }

// U32 reads a little-endian unsigned 32-bit integer.
func (c *Cursor) U32() uint32 { return binary.LittleEndian.Uint32(c.take(4)) }

// I16 reads a little-endian signed 16-bit integer.
func (c *Cursor) I16() int16 { return int16(binary.LittleEndian.Uint16(c.take(2))) }

// U16 reads a little-endian unsigned 16-bit integer.
func (c *Cursor) U16() uint16 { return binary.LittleEndian.Uint16(c.take(2)) }

// I8 reads a signed byte.
func (c *Cursor) I8() int8 { return int8(c.take(1)[0]) }

// U8 reads an unsigned byte.
func (c *Cursor) U8() uint8 { return c.take(1)[0] }

// Float reads a little-endian IEEE-754 32-bit float.
func (c *Cursor) Float() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(c.take(4)))
}

// Bool32 reads a 32-bit integer and reports whether it is nonzero.
func (c *Cursor) Bool32() bool { return c.U32() != 0 }

// StringOffset reads a raw string-block byte offset (the wire
// representation of string_ref and each locale slot of string_ref_loc).
func (c *Cursor) StringOffset() uint32 { return c.U32() }

// PutI32 appends a little-endian signed 32-bit integer.
func PutI32(buf []byte, v int32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(v))
	return append(buf, tmp[:]...)
}

// PutU32 appends a little-endian unsigned 32-bit integer.
func PutU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// PutI16 appends a little-endian signed 16-bit integer.
func PutI16(buf []byte, v int16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], uint16(v))
	return append(buf, tmp[:]...)
}

// PutU16 appends a little-endian unsigned 16-bit integer.
func PutU16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

// PutI8 appends a signed byte.
func PutI8(buf []byte, v int8) []byte { return append(buf, byte(v)) }

// PutU8 appends an unsigned byte.
func PutU8(buf []byte, v uint8) []byte { return append(buf, v) }

// PutFloat appends a little-endian IEEE-754 32-bit float.
func PutFloat(buf []byte, v float32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
	return append(buf, tmp[:]...)
}

// PutBool32 appends a 32-bit integer that is 1 when v is true, 0 otherwise.
func PutBool32(buf []byte, v bool) []byte {
	if v {
		return PutU32(buf, 1)
	}
	return PutU32(buf, 0)
}
