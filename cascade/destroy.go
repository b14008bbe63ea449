package cascade

import "github.com/zhuyadong/libcss/bytecode"

// Destructors walk one entry from its OPV, release every interned
// string reference the parser encoded into it, and return the entry's
// total length in octets. Fixed-shape destructors consult only the
// OPV's value to know whether payload is present; list destructors walk
// to the sentinel.

// destroyOPVOnly handles entries that never carry payload.
func destroyOPVOnly(cur *bytecode.Cursor) uint32 {
	cur.ReadOPV()
	return bytecode.SizeOPV
}

// destroyColour releases a colour entry.
func destroyColour(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	if opv.Value()&0x80 != 0 {
		cur.ReadColor()
		return bytecode.SizeOPV + bytecode.SizeColor
	}
	return bytecode.SizeOPV
}

// destroyURI releases a none-or-URI entry.
func destroyURI(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	if opv.Value()&0x80 != 0 {
		cur.ReadString().Unref()
		return bytecode.SizeOPV + bytecode.SizeString
	}
	return bytecode.SizeOPV
}

// destroyLength releases a length entry.
func destroyLength(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	if opv.Value()&0x80 != 0 {
		cur.ReadFixed()
		cur.ReadUnit()
		return bytecode.SizeOPV + bytecode.SizeFixed + bytecode.SizeUnit
	}
	return bytecode.SizeOPV
}

// destroyNumber releases a bare-number entry.
func destroyNumber(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	if opv.Value()&0x80 != 0 {
		cur.ReadFixed()
		return bytecode.SizeOPV + bytecode.SizeFixed
	}
	return bytecode.SizeOPV
}

// destroyLineHeight distinguishes the bare-number and dimension forms.
func destroyLineHeight(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	switch opv.Value() {
	case bytecode.LineHeightNumber:
		cur.ReadFixed()
		return bytecode.SizeOPV + bytecode.SizeFixed
	case bytecode.LineHeightDimension:
		cur.ReadFixed()
		cur.ReadUnit()
		return bytecode.SizeOPV + bytecode.SizeFixed + bytecode.SizeUnit
	}
	return bytecode.SizeOPV
}

// destroyVolume distinguishes the number and percentage forms.
func destroyVolume(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	switch opv.Value() {
	case bytecode.VolumeNumber:
		cur.ReadFixed()
		return bytecode.SizeOPV + bytecode.SizeFixed
	case bytecode.VolumeDimension:
		cur.ReadFixed()
		cur.ReadUnit()
		return bytecode.SizeOPV + bytecode.SizeFixed + bytecode.SizeUnit
	}
	return bytecode.SizeOPV
}

// destroyClip consumes the rect lengths for non-auto operands.
func destroyClip(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	consumed := uint32(bytecode.SizeOPV)
	if opv.Inherit() || opv.Value()&bytecode.ClipShapeMask != bytecode.ClipShapeRect {
		return consumed
	}
	for i := 0; i < 4; i++ {
		if opv.Value()&(1<<(i+3)) == 0 {
			cur.ReadFixed()
			cur.ReadUnit()
			consumed += bytecode.SizeFixed + bytecode.SizeUnit
		}
	}
	return consumed
}

// destroyBackgroundPosition consumes the set components.
func destroyBackgroundPosition(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	consumed := uint32(bytecode.SizeOPV)
	if opv.Inherit() {
		return consumed
	}
	if opv.Value()&bytecode.BackgroundPositionHorzSet != 0 {
		cur.ReadFixed()
		cur.ReadUnit()
		consumed += bytecode.SizeFixed + bytecode.SizeUnit
	}
	if opv.Value()&bytecode.BackgroundPositionVertSet != 0 {
		cur.ReadFixed()
		cur.ReadUnit()
		consumed += bytecode.SizeFixed + bytecode.SizeUnit
	}
	return consumed
}

// destroyBorderSpacing consumes both length pairs.
func destroyBorderSpacing(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	if opv.Value() != bytecode.BorderSpacingSet {
		return bytecode.SizeOPV
	}
	for i := 0; i < 2; i++ {
		cur.ReadFixed()
		cur.ReadUnit()
	}
	return bytecode.SizeOPV + 2*(bytecode.SizeFixed+bytecode.SizeUnit)
}

// destroyCursor walks the URI list to the keyword terminator.
func destroyCursor(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	consumed := uint32(bytecode.SizeOPV)
	if opv.Inherit() {
		return consumed
	}
	v := opv.Value()
	for v == bytecode.CursorURI {
		cur.ReadString().Unref()
		consumed += bytecode.SizeString

		v = uint16(cur.ReadU32())
		consumed += bytecode.SizeU32
	}
	return consumed
}

// destroyFamilyList walks a family list, releasing the names.
func destroyFamilyList(cur *bytecode.Cursor, stringVal, identVal uint16) uint32 {
	opv := cur.ReadOPV()
	consumed := uint32(bytecode.SizeOPV)
	if opv.Inherit() {
		return consumed
	}
	v := opv.Value()
	for {
		if v == stringVal || v == identVal {
			cur.ReadString().Unref()
			consumed += bytecode.SizeString
		}
		v = uint16(cur.ReadU32())
		consumed += bytecode.SizeU32
		if v == 0 {
			return consumed
		}
	}
}

func destroyFontFamily(cur *bytecode.Cursor) uint32 {
	return destroyFamilyList(cur, bytecode.FontFamilyString, bytecode.FontFamilyIdentList)
}

func destroyVoiceFamily(cur *bytecode.Cursor) uint32 {
	return destroyFamilyList(cur, bytecode.VoiceFamilyString, bytecode.VoiceFamilyIdentList)
}

// destroyContent walks the item list, releasing name and separator
// exactly once per item.
func destroyContent(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	consumed := uint32(bytecode.SizeOPV)
	if opv.Inherit() {
		return consumed
	}
	v := uint32(opv.Value())
	if v == uint32(bytecode.ContentNone) || v == uint32(bytecode.ContentNormal) {
		return consumed
	}
	for v != uint32(bytecode.ContentNormal) {
		switch uint16(v) & bytecode.ContentKindMask {
		case bytecode.ContentCounters:
			cur.ReadString().Unref()
			cur.ReadString().Unref()
			consumed += 2 * bytecode.SizeString
		case bytecode.ContentString, bytecode.ContentURI,
			bytecode.ContentCounter, bytecode.ContentAttr:
			cur.ReadString().Unref()
			consumed += bytecode.SizeString
		}
		v = cur.ReadU32()
		consumed += bytecode.SizeU32
	}
	return consumed
}

// destroyCounter walks a counter list.
func destroyCounter(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	consumed := uint32(bytecode.SizeOPV)
	if opv.Inherit() || opv.Value() != bytecode.CounterIncrementNamed {
		return consumed
	}
	v := uint32(bytecode.CounterIncrementNamed)
	for v != uint32(bytecode.CounterIncrementNone) {
		cur.ReadString().Unref()
		cur.ReadFixed()
		consumed += bytecode.SizeString + bytecode.SizeFixed

		v = cur.ReadU32()
		consumed += bytecode.SizeU32
	}
	return consumed
}

// destroyQuotes walks a quote-pair list.
func destroyQuotes(cur *bytecode.Cursor) uint32 {
	opv := cur.ReadOPV()
	consumed := uint32(bytecode.SizeOPV)
	if opv.Inherit() || opv.Value() != bytecode.QuotesString {
		return consumed
	}
	v := uint32(bytecode.QuotesString)
	for v != uint32(bytecode.QuotesNone) {
		cur.ReadString().Unref()
		cur.ReadString().Unref()
		consumed += 2 * bytecode.SizeString

		v = cur.ReadU32()
		consumed += bytecode.SizeU32
	}
	return consumed
}
