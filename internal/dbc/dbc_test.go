package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{RecordCount: 3, FieldCount: 5, RecordSize: 20, StringBlockSize: 12}
	b := h.Write()

	got, err := ParseHeader(b[:])
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestParseHeader_RejectsBadMagic(t *testing.T) {
	b := make([]byte, HeaderSize)
	copy(b, "NOPE")
	_, err := ParseHeader(b)
	require.Error(t, err)
	var magicErr *InvalidMagicError
	assert.ErrorAs(t, err, &magicErr)
}

func TestTableRegions_Fits(t *testing.T) {
	h := Header{RecordCount: 2, FieldCount: 1, RecordSize: 4, StringBlockSize: 3}
	recordsEnd, stringBlockEnd, err := h.TableRegions(HeaderSize + 8 + 3)
	require.NoError(t, err)
	assert.Equal(t, HeaderSize+8, recordsEnd)
	assert.Equal(t, HeaderSize+8+3, stringBlockEnd)
}

func TestTableRegions_RejectsTruncatedRecordRegion(t *testing.T) {
	h := Header{RecordCount: 2, FieldCount: 1, RecordSize: 4, StringBlockSize: 3}
	_, _, err := h.TableRegions(HeaderSize + 4)
	require.Error(t, err)
	var headerErr *InvalidHeaderError
	assert.ErrorAs(t, err, &headerErr)
	assert.Equal(t, "record region", headerErr.Field)
}

func TestTableRegions_RejectsTruncatedStringBlock(t *testing.T) {
	h := Header{RecordCount: 2, FieldCount: 1, RecordSize: 4, StringBlockSize: 3}
	_, _, err := h.TableRegions(HeaderSize + 8 + 1)
	require.Error(t, err)
	var headerErr *InvalidHeaderError
	assert.ErrorAs(t, err, &headerErr)
	assert.Equal(t, "string block", headerErr.Field)
}

func TestTableRegions_RejectsOverflowingRecordCount(t *testing.T) {
	h := Header{RecordCount: 0xFFFFFFFF, FieldCount: 1, RecordSize: 0xFFFFFFFF, StringBlockSize: 0}
	_, _, err := h.TableRegions(HeaderSize + 8)
	require.Error(t, err)
	var headerErr *InvalidHeaderError
	assert.ErrorAs(t, err, &headerErr)
	assert.Equal(t, "record region", headerErr.Field)
}

func TestStringWriter_EmptyStringIsOffsetZero(t *testing.T) {
	w := NewStringWriter()
	assert.Equal(t, uint32(0), w.Put(""))

	s, err := ResolveString(w.Bytes(), 0)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestStringWriter_DoesNotDeduplicate(t *testing.T) {
	w := NewStringWriter()
	first := w.Put("Stormwind")
	second := w.Put("Stormwind")
	assert.NotEqual(t, first, second)

	s1, err := ResolveString(w.Bytes(), first)
	require.NoError(t, err)
	s2, err := ResolveString(w.Bytes(), second)
	require.NoError(t, err)
	assert.Equal(t, "Stormwind", s1)
	assert.Equal(t, "Stormwind", s2)
}

func TestResolveString_TolersatesSharedOffsets(t *testing.T) {
	w := NewStringWriter()
	off := w.Put("shared")
	block := w.Bytes()

	a, err := ResolveString(block, off)
	require.NoError(t, err)
	b, err := ResolveString(block, off)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResolveString_RejectsOutOfBounds(t *testing.T) {
	_, err := ResolveString([]byte{0}, 99)
	require.Error(t, err)
	var strErr *InvalidStringError
	assert.ErrorAs(t, err, &strErr)
}

func TestLocalizedStringRoundTrip(t *testing.T) {
	ls := LocalizedString{Flags: 7}
	ls.Strings[0] = "Hello"
	ls.Strings[3] = "Bonjour"

	w := NewStringWriter()
	buf := ls.Write(nil, w)

	c := NewCursor(buf)
	got, err := ReadLocalizedString(c, w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, ls, got)
}

func TestExtendedLocalizedStringRoundTrip(t *testing.T) {
	ls := ExtendedLocalizedString{Flags: 1}
	ls.Strings[15] = "last slot"

	w := NewStringWriter()
	buf := ls.Write(nil, w)

	c := NewCursor(buf)
	got, err := ReadExtendedLocalizedString(c, w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, ls, got)
}

func TestCursorScalarRoundTrip(t *testing.T) {
	var buf []byte
	buf = PutU32(buf, 42)
	buf = PutI32(buf, -7)
	buf = PutFloat(buf, 3.5)
	buf = PutBool32(buf, true)
	buf = PutU8(buf, 9)

	c := NewCursor(buf)
	assert.Equal(t, uint32(42), c.U32())
	assert.Equal(t, int32(-7), c.I32())
	assert.Equal(t, float32(3.5), c.Float())
	assert.True(t, c.Bool32())
	assert.Equal(t, uint8(9), c.U8())
}

func TestKeyFromInt64_RejectsOverflow(t *testing.T) {
	_, err := KeyFromInt64[int8](1000)
	require.Error(t, err)

	v, err := KeyFromInt64[int8](42)
	require.NoError(t, err)
	assert.Equal(t, int8(42), v)
}

type fakeRow struct {
	id int32
}

func (r fakeRow) Key() int32 { return r.id }

func TestFindByKey(t *testing.T) {
	rows := []fakeRow{{id: 1}, {id: 2}, {id: 3}}
	got, ok := FindByKey[int32](rows, 2)
	require.True(t, ok)
	assert.Equal(t, int32(2), got.id)

	_, ok = FindByKey[int32](rows, 99)
	assert.False(t, ok)
}
