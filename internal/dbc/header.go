package dbc

import "encoding/binary"

// HeaderSize is the fixed byte length of a DBC header.
const HeaderSize = 20

var magic = [4]byte{'W', 'D', 'B', 'C'}

// Header is the 20-byte prologue of every DBC file.
type Header struct {
	RecordCount     uint32
	FieldCount      uint32
	RecordSize      uint32
	StringBlockSize uint32
}

// ParseHeader decodes and validates the magic of a 20-byte header buffer.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, &InvalidHeaderError{Field: "length", Expected: HeaderSize, Actual: uint32(len(b))}
	}
	var m [4]byte
	copy(m[:], b[0:4])
	if m != magic {
		return Header{}, &InvalidMagicError{Actual: m}
	}
	return Header{
		RecordCount:     binary.LittleEndian.Uint32(b[4:8]),
		FieldCount:      binary.LittleEndian.Uint32(b[8:12]),
		RecordSize:      binary.LittleEndian.Uint32(b[12:16]),
		StringBlockSize: binary.LittleEndian.Uint32(b[16:20]),
	}, nil
}

// CheckFieldCount returns an InvalidHeaderError if h.FieldCount does not
// match expected.
func (h Header) CheckFieldCount(expected uint32) error {
	if h.FieldCount != expected {
		return &InvalidHeaderError{Field: "field_count", Expected: expected, Actual: h.FieldCount}
	}
	return nil
}

// CheckRecordSize returns an InvalidHeaderError if h.RecordSize does not
// match expected.
func (h Header) CheckRecordSize(expected uint32) error {
	if h.RecordSize != expected {
		return &InvalidHeaderError{Field: "record_size", Expected: expected, Actual: h.RecordSize}
	}
	return nil
}

// TableRegions validates that h's declared record and string-block sizes
// actually fit within a buffer of length total, returning the byte offset
// where the record region ends (and the string block begins) and where the
// string block ends. The multiplication and additions run in 64-bit
// arithmetic so a truncated file or a maliciously large RecordCount,
// RecordSize, or StringBlockSize cannot wrap a narrower integer and slip
// past the check; callers must reject the header and must not slice b
// before calling this.
func (h Header) TableRegions(total int) (recordsEnd, stringBlockEnd int, err error) {
	recordRegion := int64(h.RecordCount) * int64(h.RecordSize)
	re := int64(HeaderSize) + recordRegion
	if re < int64(HeaderSize) || re > int64(total) {
		return 0, 0, &InvalidHeaderError{Field: "record region", Expected: h.RecordSize, Actual: uint32(total - HeaderSize)}
	}
	sbe := re + int64(h.StringBlockSize)
	if sbe < re || sbe > int64(total) {
		return 0, 0, &InvalidHeaderError{Field: "string block", Expected: h.StringBlockSize, Actual: uint32(int64(total) - re)}
	}
	return int(re), int(sbe), nil
}

// Write encodes h as a 20-byte header.
func (h Header) Write() [HeaderSize]byte {
	var b [HeaderSize]byte
	copy(b[0:4], magic[:])
	binary.LittleEndian.PutUint32(b[4:8], h.RecordCount)
	binary.LittleEndian.PutUint32(b[8:12], h.FieldCount)
	binary.LittleEndian.PutUint32(b[12:16], h.RecordSize)
	binary.LittleEndian.PutUint32(b[16:20], h.StringBlockSize)
	return b
}
