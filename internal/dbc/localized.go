package dbc

// LocalizedString is the Vanilla string_ref_loc shape: 8 locale slots
// followed by a flags mask, 36 bytes on the wire.
type LocalizedString struct {
	Strings [8]string
	Flags   uint32
}

// ExtendedLocalizedString is the TBC/Wrath string_ref_loc shape: 16 locale
// slots followed by a flags mask, 68 bytes on the wire.
type ExtendedLocalizedString struct {
	Strings [16]string
	Flags   uint32
}

// ReadLocalizedString decodes a Vanilla string_ref_loc field from c,
// resolving each slot against block.
func ReadLocalizedString(c *Cursor, block []byte) (LocalizedString, error) {
	var ls LocalizedString
	for i := range ls.Strings {
		s, err := ResolveString(block, c.StringOffset())
		if err != nil {
			return LocalizedString{}, err
		}
		ls.Strings[i] = s
	}
	ls.Flags = c.U32()
	return ls, nil
}

// ReadExtendedLocalizedString decodes a TBC/Wrath string_ref_loc field
// from c, resolving each slot against block.
func ReadExtendedLocalizedString(c *Cursor, block []byte) (ExtendedLocalizedString, error) {
	var ls ExtendedLocalizedString
	for i := range ls.Strings {
		s, err := ResolveString(block, c.StringOffset())
		if err != nil {
			return ExtendedLocalizedString{}, err
		}
		ls.Strings[i] = s
	}
	ls.Flags = c.U32()
	return ls, nil
}

// Write appends ls's wire representation to buf, registering each
// non-empty slot with w.
func (ls LocalizedString) Write(buf []byte, w *StringWriter) []byte {
	for _, s := range ls.Strings {
		buf = PutU32(buf, w.Put(s))
	}
	return PutU32(buf, ls.Flags)
}

// Write appends ls's wire representation to buf, registering each
// non-empty slot with w.
func (ls ExtendedLocalizedString) Write(buf []byte, w *StringWriter) []byte {
	for _, s := range ls.Strings {
		buf = PutU32(buf, w.Put(s))
	}
	return PutU32(buf, ls.Flags)
}
