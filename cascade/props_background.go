package cascade

import "github.com/zhuyadong/libcss/bytecode"

// Background properties.

func cascadeBackgroundAttachment(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetBackgroundAttachment)
}

func setBackgroundAttachmentFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBackgroundAttachment(hint.Status)
}

func initialBackgroundAttachment(state *State) error {
	return state.Result.SetBackgroundAttachment(enumState(bytecode.BackgroundAttachmentScroll))
}

func composeBackgroundAttachment(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetBackgroundAttachment, (*ComputedStyle).SetBackgroundAttachment)
}

func cascadeBackgroundColor(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeBgBorderColor(opv, cur, state, (*ComputedStyle).SetBackgroundColor)
}

func setBackgroundColorFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBackgroundColor(hint.Status, hint.Colour)
}

func initialBackgroundColor(state *State) error {
	return state.Result.SetBackgroundColor(ColourTransparent, 0)
}

func composeBackgroundColor(parent, child, result *ComputedStyle) error {
	return composeColour(parent, child, result,
		(*ComputedStyle).GetBackgroundColor, (*ComputedStyle).SetBackgroundColor)
}

func cascadeBackgroundImage(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeURINone(opv, cur, state, (*ComputedStyle).SetBackgroundImage)
}

func setBackgroundImageFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBackgroundImage(hint.Status, hint.String)
}

func initialBackgroundImage(state *State) error {
	return state.Result.SetBackgroundImage(URINone, nil)
}

func composeBackgroundImage(parent, child, result *ComputedStyle) error {
	return composeURI(parent, child, result,
		(*ComputedStyle).GetBackgroundImage, (*ComputedStyle).SetBackgroundImage)
}

// cascadeBackgroundPosition resolves keyword components to their
// percentage equivalents so the computed record always carries two
// lengths.
func cascadeBackgroundPosition(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	value := BackgroundPositionInherit
	var h, v bytecode.Fixed
	var hu, vu Unit

	if !opv.Inherit() {
		value = BackgroundPositionSet

		if opv.Value()&bytecode.BackgroundPositionHorzSet != 0 {
			h = cur.ReadFixed()
			hu = UnitFromBytecode(cur.ReadUnit())
		} else {
			hu = UnitPct
			switch opv.Value() & 0x70 {
			case bytecode.BackgroundPositionHorzRight:
				h = bytecode.FixedFromInt(100)
			case bytecode.BackgroundPositionHorzLeft:
				h = 0
			default:
				h = bytecode.FixedFromInt(50)
			}
		}

		if opv.Value()&bytecode.BackgroundPositionVertSet != 0 {
			v = cur.ReadFixed()
			vu = UnitFromBytecode(cur.ReadUnit())
		} else {
			vu = UnitPct
			switch opv.Value() & 0x07 {
			case bytecode.BackgroundPositionVertBottom:
				v = bytecode.FixedFromInt(100)
			case bytecode.BackgroundPositionVertTop:
				v = 0
			default:
				v = bytecode.FixedFromInt(50)
			}
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return state.Result.SetBackgroundPosition(value, h, hu, v, vu)
	}
	return nil
}

func setBackgroundPositionFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBackgroundPosition(hint.Status,
		hint.Length, hint.Unit, hint.Length2, hint.Unit2)
}

func initialBackgroundPosition(state *State) error {
	return state.Result.SetBackgroundPosition(BackgroundPositionSet,
		0, UnitPct, 0, UnitPct)
}

func composeBackgroundPosition(parent, child, result *ComputedStyle) error {
	return composeTwoLength(parent, child, result,
		(*ComputedStyle).GetBackgroundPosition, (*ComputedStyle).SetBackgroundPosition)
}

func cascadeBackgroundRepeat(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetBackgroundRepeat)
}

func setBackgroundRepeatFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBackgroundRepeat(hint.Status)
}

func initialBackgroundRepeat(state *State) error {
	return state.Result.SetBackgroundRepeat(enumState(bytecode.BackgroundRepeatRepeat))
}

func composeBackgroundRepeat(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetBackgroundRepeat, (*ComputedStyle).SetBackgroundRepeat)
}
