package cascade

import "github.com/zhuyadong/libcss/bytecode"

// Border and outline properties.

// border colours

func cascadeBorderTopColor(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBgBorderColor(opv, cur, state, (*ComputedStyle).SetBorderTopColor)
}

func setBorderTopColorFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderTopColor(hint.Status, hint.Colour)
}

func initialBorderTopColor(state *State) error {
	return state.Result.SetBorderTopColor(ColourSet, 0)
}

func composeBorderTopColor(parent, child, result *ComputedStyle) error {
	return composeColour(parent, child, result,
		(*ComputedStyle).GetBorderTopColor, (*ComputedStyle).SetBorderTopColor)
}

func cascadeBorderRightColor(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBgBorderColor(opv, cur, state, (*ComputedStyle).SetBorderRightColor)
}

func setBorderRightColorFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderRightColor(hint.Status, hint.Colour)
}

func initialBorderRightColor(state *State) error {
	return state.Result.SetBorderRightColor(ColourSet, 0)
}

func composeBorderRightColor(parent, child, result *ComputedStyle) error {
	return composeColour(parent, child, result,
		(*ComputedStyle).GetBorderRightColor, (*ComputedStyle).SetBorderRightColor)
}

func cascadeBorderBottomColor(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBgBorderColor(opv, cur, state, (*ComputedStyle).SetBorderBottomColor)
}

func setBorderBottomColorFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderBottomColor(hint.Status, hint.Colour)
}

func initialBorderBottomColor(state *State) error {
	return state.Result.SetBorderBottomColor(ColourSet, 0)
}

func composeBorderBottomColor(parent, child, result *ComputedStyle) error {
	return composeColour(parent, child, result,
		(*ComputedStyle).GetBorderBottomColor, (*ComputedStyle).SetBorderBottomColor)
}

func cascadeBorderLeftColor(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBgBorderColor(opv, cur, state, (*ComputedStyle).SetBorderLeftColor)
}

func setBorderLeftColorFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderLeftColor(hint.Status, hint.Colour)
}

func initialBorderLeftColor(state *State) error {
	return state.Result.SetBorderLeftColor(ColourSet, 0)
}

func composeBorderLeftColor(parent, child, result *ComputedStyle) error {
	return composeColour(parent, child, result,
		(*ComputedStyle).GetBorderLeftColor, (*ComputedStyle).SetBorderLeftColor)
}

// border styles

func cascadeBorderTopStyle(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBorderStyle(opv, state, (*ComputedStyle).SetBorderTopStyle)
}

func setBorderTopStyleFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderTopStyle(hint.Status)
}

func initialBorderTopStyle(state *State) error {
	return state.Result.SetBorderTopStyle(BorderStyleNone)
}

func composeBorderTopStyle(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetBorderTopStyle, (*ComputedStyle).SetBorderTopStyle)
}

func cascadeBorderRightStyle(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBorderStyle(opv, state, (*ComputedStyle).SetBorderRightStyle)
}

func setBorderRightStyleFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderRightStyle(hint.Status)
}

func initialBorderRightStyle(state *State) error {
	return state.Result.SetBorderRightStyle(BorderStyleNone)
}

func composeBorderRightStyle(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetBorderRightStyle, (*ComputedStyle).SetBorderRightStyle)
}

func cascadeBorderBottomStyle(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBorderStyle(opv, state, (*ComputedStyle).SetBorderBottomStyle)
}

func setBorderBottomStyleFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderBottomStyle(hint.Status)
}

func initialBorderBottomStyle(state *State) error {
	return state.Result.SetBorderBottomStyle(BorderStyleNone)
}

func composeBorderBottomStyle(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetBorderBottomStyle, (*ComputedStyle).SetBorderBottomStyle)
}

func cascadeBorderLeftStyle(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBorderStyle(opv, state, (*ComputedStyle).SetBorderLeftStyle)
}

func setBorderLeftStyleFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderLeftStyle(hint.Status)
}

func initialBorderLeftStyle(state *State) error {
	return state.Result.SetBorderLeftStyle(BorderStyleNone)
}

func composeBorderLeftStyle(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetBorderLeftStyle, (*ComputedStyle).SetBorderLeftStyle)
}

// border widths

func cascadeBorderTopWidth(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBorderWidth(opv, cur, state, (*ComputedStyle).SetBorderTopWidth)
}

func setBorderTopWidthFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderTopWidth(hint.Status, hint.Length, hint.Unit)
}

func initialBorderTopWidth(state *State) error {
	return state.Result.SetBorderTopWidth(BorderWidthMedium, 0, UnitPx)
}

func composeBorderTopWidth(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetBorderTopWidth, (*ComputedStyle).SetBorderTopWidth)
}

func cascadeBorderRightWidth(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBorderWidth(opv, cur, state, (*ComputedStyle).SetBorderRightWidth)
}

func setBorderRightWidthFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderRightWidth(hint.Status, hint.Length, hint.Unit)
}

func initialBorderRightWidth(state *State) error {
	return state.Result.SetBorderRightWidth(BorderWidthMedium, 0, UnitPx)
}

func composeBorderRightWidth(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetBorderRightWidth, (*ComputedStyle).SetBorderRightWidth)
}

func cascadeBorderBottomWidth(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBorderWidth(opv, cur, state, (*ComputedStyle).SetBorderBottomWidth)
}

func setBorderBottomWidthFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderBottomWidth(hint.Status, hint.Length, hint.Unit)
}

func initialBorderBottomWidth(state *State) error {
	return state.Result.SetBorderBottomWidth(BorderWidthMedium, 0, UnitPx)
}

func composeBorderBottomWidth(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetBorderBottomWidth, (*ComputedStyle).SetBorderBottomWidth)
}

func cascadeBorderLeftWidth(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBorderWidth(opv, cur, state, (*ComputedStyle).SetBorderLeftWidth)
}

func setBorderLeftWidthFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderLeftWidth(hint.Status, hint.Length, hint.Unit)
}

func initialBorderLeftWidth(state *State) error {
	return state.Result.SetBorderLeftWidth(BorderWidthMedium, 0, UnitPx)
}

func composeBorderLeftWidth(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetBorderLeftWidth, (*ComputedStyle).SetBorderLeftWidth)
}

// border-collapse

func cascadeBorderCollapse(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetBorderCollapse)
}

func setBorderCollapseFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderCollapse(hint.Status)
}

func initialBorderCollapse(state *State) error {
	return state.Result.SetBorderCollapse(enumState(bytecode.BorderCollapseSeparate))
}

func composeBorderCollapse(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetBorderCollapse, (*ComputedStyle).SetBorderCollapse)
}

// border-spacing

func cascadeBorderSpacing(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	value := BorderSpacingInherit
	var h, v bytecode.Fixed
	hu, vu := bytecode.UnitPx, bytecode.UnitPx

	if !opv.Inherit() {
		if opv.Value() == bytecode.BorderSpacingSet {
			value = BorderSpacingSet
			h = cur.ReadFixed()
			hu = cur.ReadUnit()
			v = cur.ReadFixed()
			vu = cur.ReadUnit()
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return state.Result.SetBorderSpacing(value,
			h, UnitFromBytecode(hu), v, UnitFromBytecode(vu))
	}
	return nil
}

func setBorderSpacingFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBorderSpacing(hint.Status,
		hint.Length, hint.Unit, hint.Length2, hint.Unit2)
}

func initialBorderSpacing(state *State) error {
	return state.Result.SetBorderSpacing(BorderSpacingSet, 0, UnitPx, 0, UnitPx)
}

func composeBorderSpacing(parent, child, result *ComputedStyle) error {
	return composeTwoLength(parent, child, result,
		(*ComputedStyle).GetBorderSpacing, (*ComputedStyle).SetBorderSpacing)
}

// outline

func cascadeOutlineColorProp(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeOutlineColor(opv, cur, state, (*ComputedStyle).SetOutlineColor)
}

func setOutlineColorFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetOutlineColor(hint.Status, hint.Colour)
}

func initialOutlineColor(state *State) error {
	return state.Result.SetOutlineColor(ColourInvert, 0)
}

func composeOutlineColor(parent, child, result *ComputedStyle) error {
	return composeColour(parent, child, result,
		(*ComputedStyle).GetOutlineColor, (*ComputedStyle).SetOutlineColor)
}

func cascadeOutlineStyle(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBorderStyle(opv, state, (*ComputedStyle).SetOutlineStyle)
}

func setOutlineStyleFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetOutlineStyle(hint.Status)
}

func initialOutlineStyle(state *State) error {
	return state.Result.SetOutlineStyle(BorderStyleNone)
}

func composeOutlineStyle(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetOutlineStyle, (*ComputedStyle).SetOutlineStyle)
}

func cascadeOutlineWidth(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBorderWidth(opv, cur, state, (*ComputedStyle).SetOutlineWidth)
}

func setOutlineWidthFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetOutlineWidth(hint.Status, hint.Length, hint.Unit)
}

func initialOutlineWidth(state *State) error {
	return state.Result.SetOutlineWidth(BorderWidthMedium, 0, UnitPx)
}

func composeOutlineWidth(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetOutlineWidth, (*ComputedStyle).SetOutlineWidth)
}
