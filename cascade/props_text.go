package cascade

import "github.com/zhuyadong/libcss/bytecode"

// Text and font properties.

// color

func cascadeColor(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	value := ColourInherit
	var colour bytecode.Color

	if !opv.Inherit() && opv.Value() == bytecode.ColorSet {
		value = ColourSet
		colour = cur.ReadColor()
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return state.Result.SetColor(value, colour)
	}
	return nil
}

func setColorFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetColor(hint.Status, hint.Colour)
}

func initialColor(state *State) error {
	return state.Result.SetColor(ColourSet, 0x000000ff)
}

func composeColor(parent, child, result *ComputedStyle) error {
	return composeColour(parent, child, result,
		(*ComputedStyle).GetColor, (*ComputedStyle).SetColor)
}

// direction

func cascadeDirection(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetDirection)
}

func setDirectionFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetDirection(hint.Status)
}

func initialDirection(state *State) error {
	return state.Result.SetDirection(DirectionLTR)
}

func composeDirection(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetDirection, (*ComputedStyle).SetDirection)
}

// letter-spacing, word-spacing

func cascadeLetterSpacing(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthNormal(opv, cur, state, (*ComputedStyle).SetLetterSpacing)
}

func setLetterSpacingFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetLetterSpacing(hint.Status, hint.Length, hint.Unit)
}

func initialLetterSpacing(state *State) error {
	return state.Result.SetLetterSpacing(LengthNormal, 0, UnitPx)
}

func composeLetterSpacing(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetLetterSpacing, (*ComputedStyle).SetLetterSpacing)
}

func cascadeWordSpacing(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthNormal(opv, cur, state, (*ComputedStyle).SetWordSpacing)
}

func setWordSpacingFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetWordSpacing(hint.Status, hint.Length, hint.Unit)
}

func initialWordSpacing(state *State) error {
	return state.Result.SetWordSpacing(LengthNormal, 0, UnitPx)
}

func composeWordSpacing(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetWordSpacing, (*ComputedStyle).SetWordSpacing)
}

// line-height

func cascadeLineHeight(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	value := LineHeightInherit
	var length bytecode.Fixed
	unit := bytecode.UnitPx

	if !opv.Inherit() {
		switch opv.Value() {
		case bytecode.LineHeightNormal:
			value = LineHeightNormal
		case bytecode.LineHeightNumber:
			value = LineHeightNumber
			length = cur.ReadFixed()
		case bytecode.LineHeightDimension:
			value = LineHeightDimension
			length = cur.ReadFixed()
			unit = cur.ReadUnit()
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return state.Result.SetLineHeight(value, length, UnitFromBytecode(unit))
	}
	return nil
}

func setLineHeightFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetLineHeight(hint.Status, hint.Length, hint.Unit)
}

func initialLineHeight(state *State) error {
	return state.Result.SetLineHeight(LineHeightNormal, 0, UnitPx)
}

func composeLineHeight(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetLineHeight, (*ComputedStyle).SetLineHeight)
}

// text-align

func cascadeTextAlign(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetTextAlign)
}

func setTextAlignFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetTextAlign(hint.Status)
}

func initialTextAlign(state *State) error {
	return state.Result.SetTextAlign(enumState(bytecode.TextAlignLeft))
}

func composeTextAlign(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetTextAlign, (*ComputedStyle).SetTextAlign)
}

// text-decoration

func cascadeTextDecoration(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	value := TextDecorationInherit
	if !opv.Inherit() {
		// The bit layout carries through to the public state.
		value = uint8(opv.Value())
	}
	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return state.Result.SetTextDecoration(value)
	}
	return nil
}

func setTextDecorationFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetTextDecoration(hint.Status)
}

func initialTextDecoration(state *State) error {
	return state.Result.SetTextDecoration(TextDecorationNone)
}

func composeTextDecoration(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetTextDecoration, (*ComputedStyle).SetTextDecoration)
}

// text-indent

func cascadeTextIndent(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLength(opv, cur, state, (*ComputedStyle).SetTextIndent)
}

func setTextIndentFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetTextIndent(hint.Status, hint.Length, hint.Unit)
}

func initialTextIndent(state *State) error {
	return state.Result.SetTextIndent(LengthSet, 0, UnitPx)
}

func composeTextIndent(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetTextIndent, (*ComputedStyle).SetTextIndent)
}

// text-transform

func cascadeTextTransform(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetTextTransform)
}

func setTextTransformFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetTextTransform(hint.Status)
}

func initialTextTransform(state *State) error {
	return state.Result.SetTextTransform(enumState(bytecode.TextTransformNone))
}

func composeTextTransform(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetTextTransform, (*ComputedStyle).SetTextTransform)
}

// white-space

func cascadeWhiteSpace(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetWhiteSpace)
}

func setWhiteSpaceFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetWhiteSpace(hint.Status)
}

func initialWhiteSpace(state *State) error {
	return state.Result.SetWhiteSpace(enumState(bytecode.WhiteSpaceNormal))
}

func composeWhiteSpace(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetWhiteSpace, (*ComputedStyle).SetWhiteSpace)
}

// unicode-bidi

func cascadeUnicodeBidi(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetUnicodeBidi)
}

func setUnicodeBidiFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetUnicodeBidi(hint.Status)
}

func initialUnicodeBidi(state *State) error {
	return state.Result.SetUnicodeBidi(enumState(bytecode.UnicodeBidiNormal))
}

func composeUnicodeBidi(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetUnicodeBidi, (*ComputedStyle).SetUnicodeBidi)
}

// font-family

func cascadeFontFamily(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeFamilyList(opv, cur, state,
		bytecode.FontFamilyString, bytecode.FontFamilyIdentList,
		func(v uint16) uint8 {
			switch v {
			case bytecode.FontFamilySerif:
				return FontFamilySerif
			case bytecode.FontFamilySansSerif:
				return FontFamilySansSerif
			case bytecode.FontFamilyCursive:
				return FontFamilyCursive
			case bytecode.FontFamilyFantasy:
				return FontFamilyFantasy
			case bytecode.FontFamilyMonospace:
				return FontFamilyMonospace
			}
			return 0
		},
		FontFamilyNamed, (*ComputedStyle).SetFontFamily)
}

func setFontFamilyFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetFontFamily(hint.Status, hint.Strings)
}

func initialFontFamily(state *State) error {
	return state.Result.SetFontFamily(FontFamilySansSerif, nil)
}

func composeFontFamily(parent, child, result *ComputedStyle) error {
	return composeStrings(parent, child, result,
		(*ComputedStyle).GetFontFamily, (*ComputedStyle).SetFontFamily)
}

// font-size

func cascadeFontSize(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeKeywordOrLength(opv, cur, state, FontSizeDimension,
		(*ComputedStyle).SetFontSize)
}

func setFontSizeFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetFontSize(hint.Status, hint.Length, hint.Unit)
}

func initialFontSize(state *State) error {
	return state.Result.SetFontSize(FontSizeMedium, 0, UnitPx)
}

func composeFontSize(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetFontSize, (*ComputedStyle).SetFontSize)
}

// font-style

func cascadeFontStyle(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetFontStyle)
}

func setFontStyleFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetFontStyle(hint.Status)
}

func initialFontStyle(state *State) error {
	return state.Result.SetFontStyle(enumState(bytecode.FontStyleNormal))
}

func composeFontStyle(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetFontStyle, (*ComputedStyle).SetFontStyle)
}

// font-variant

func cascadeFontVariant(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetFontVariant)
}

func setFontVariantFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetFontVariant(hint.Status)
}

func initialFontVariant(state *State) error {
	return state.Result.SetFontVariant(enumState(bytecode.FontVariantNormal))
}

func composeFontVariant(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetFontVariant, (*ComputedStyle).SetFontVariant)
}

// font-weight

func cascadeFontWeight(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetFontWeight)
}

func setFontWeightFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetFontWeight(hint.Status)
}

func initialFontWeight(state *State) error {
	return state.Result.SetFontWeight(FontWeightNormal)
}

func composeFontWeight(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetFontWeight, (*ComputedStyle).SetFontWeight)
}
