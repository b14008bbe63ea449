package cascade

import "github.com/zhuyadong/libcss/bytecode"

// Box model and positioning properties: each owns its cascade, hint,
// initial and compose operations; destruction goes through the generic
// destructors in the dispatch table.

// width

func cascadeWidth(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthAuto(opv, cur, state, (*ComputedStyle).SetWidth)
}

func setWidthFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetWidth(hint.Status, hint.Length, hint.Unit)
}

func initialWidth(state *State) error {
	return state.Result.SetWidth(LengthAuto, 0, UnitPx)
}

func composeWidth(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetWidth, (*ComputedStyle).SetWidth)
}

// height

func cascadeHeight(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthAuto(opv, cur, state, (*ComputedStyle).SetHeight)
}

func setHeightFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetHeight(hint.Status, hint.Length, hint.Unit)
}

func initialHeight(state *State) error {
	return state.Result.SetHeight(LengthAuto, 0, UnitPx)
}

func composeHeight(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetHeight, (*ComputedStyle).SetHeight)
}

// bottom, left, right, top

func cascadeBottom(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthAuto(opv, cur, state, (*ComputedStyle).SetBottom)
}

func setBottomFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetBottom(hint.Status, hint.Length, hint.Unit)
}

func initialBottom(state *State) error {
	return state.Result.SetBottom(LengthAuto, 0, UnitPx)
}

func composeBottom(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetBottom, (*ComputedStyle).SetBottom)
}

func cascadeLeft(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthAuto(opv, cur, state, (*ComputedStyle).SetLeft)
}

func setLeftFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetLeft(hint.Status, hint.Length, hint.Unit)
}

func initialLeft(state *State) error {
	return state.Result.SetLeft(LengthAuto, 0, UnitPx)
}

func composeLeft(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetLeft, (*ComputedStyle).SetLeft)
}

func cascadeRight(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthAuto(opv, cur, state, (*ComputedStyle).SetRight)
}

func setRightFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetRight(hint.Status, hint.Length, hint.Unit)
}

func initialRight(state *State) error {
	return state.Result.SetRight(LengthAuto, 0, UnitPx)
}

func composeRight(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetRight, (*ComputedStyle).SetRight)
}

func cascadeTop(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthAuto(opv, cur, state, (*ComputedStyle).SetTop)
}

func setTopFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetTop(hint.Status, hint.Length, hint.Unit)
}

func initialTop(state *State) error {
	return state.Result.SetTop(LengthAuto, 0, UnitPx)
}

func composeTop(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetTop, (*ComputedStyle).SetTop)
}

// margins

func cascadeMarginTop(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthAuto(opv, cur, state, (*ComputedStyle).SetMarginTop)
}

func setMarginTopFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetMarginTop(hint.Status, hint.Length, hint.Unit)
}

func initialMarginTop(state *State) error {
	return state.Result.SetMarginTop(LengthSet, 0, UnitPx)
}

func composeMarginTop(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetMarginTop, (*ComputedStyle).SetMarginTop)
}

func cascadeMarginRight(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthAuto(opv, cur, state, (*ComputedStyle).SetMarginRight)
}

func setMarginRightFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetMarginRight(hint.Status, hint.Length, hint.Unit)
}

func initialMarginRight(state *State) error {
	return state.Result.SetMarginRight(LengthSet, 0, UnitPx)
}

func composeMarginRight(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetMarginRight, (*ComputedStyle).SetMarginRight)
}

func cascadeMarginBottom(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthAuto(opv, cur, state, (*ComputedStyle).SetMarginBottom)
}

func setMarginBottomFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetMarginBottom(hint.Status, hint.Length, hint.Unit)
}

func initialMarginBottom(state *State) error {
	return state.Result.SetMarginBottom(LengthSet, 0, UnitPx)
}

func composeMarginBottom(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetMarginBottom, (*ComputedStyle).SetMarginBottom)
}

func cascadeMarginLeft(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthAuto(opv, cur, state, (*ComputedStyle).SetMarginLeft)
}

func setMarginLeftFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetMarginLeft(hint.Status, hint.Length, hint.Unit)
}

func initialMarginLeft(state *State) error {
	return state.Result.SetMarginLeft(LengthSet, 0, UnitPx)
}

func composeMarginLeft(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetMarginLeft, (*ComputedStyle).SetMarginLeft)
}

// paddings

func cascadePaddingTop(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLength(opv, cur, state, (*ComputedStyle).SetPaddingTop)
}

func setPaddingTopFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPaddingTop(hint.Status, hint.Length, hint.Unit)
}

func initialPaddingTop(state *State) error {
	return state.Result.SetPaddingTop(LengthSet, 0, UnitPx)
}

func composePaddingTop(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetPaddingTop, (*ComputedStyle).SetPaddingTop)
}

func cascadePaddingRight(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLength(opv, cur, state, (*ComputedStyle).SetPaddingRight)
}

func setPaddingRightFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPaddingRight(hint.Status, hint.Length, hint.Unit)
}

func initialPaddingRight(state *State) error {
	return state.Result.SetPaddingRight(LengthSet, 0, UnitPx)
}

func composePaddingRight(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetPaddingRight, (*ComputedStyle).SetPaddingRight)
}

func cascadePaddingBottom(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLength(opv, cur, state, (*ComputedStyle).SetPaddingBottom)
}

func setPaddingBottomFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPaddingBottom(hint.Status, hint.Length, hint.Unit)
}

func initialPaddingBottom(state *State) error {
	return state.Result.SetPaddingBottom(LengthSet, 0, UnitPx)
}

func composePaddingBottom(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetPaddingBottom, (*ComputedStyle).SetPaddingBottom)
}

func cascadePaddingLeft(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLength(opv, cur, state, (*ComputedStyle).SetPaddingLeft)
}

func setPaddingLeftFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPaddingLeft(hint.Status, hint.Length, hint.Unit)
}

func initialPaddingLeft(state *State) error {
	return state.Result.SetPaddingLeft(LengthSet, 0, UnitPx)
}

func composePaddingLeft(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetPaddingLeft, (*ComputedStyle).SetPaddingLeft)
}

// min/max dimensions

func cascadeMinHeight(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLength(opv, cur, state, (*ComputedStyle).SetMinHeight)
}

func setMinHeightFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetMinHeight(hint.Status, hint.Length, hint.Unit)
}

func initialMinHeight(state *State) error {
	return state.Result.SetMinHeight(LengthSet, 0, UnitPx)
}

func composeMinHeight(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetMinHeight, (*ComputedStyle).SetMinHeight)
}

func cascadeMinWidth(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLength(opv, cur, state, (*ComputedStyle).SetMinWidth)
}

func setMinWidthFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetMinWidth(hint.Status, hint.Length, hint.Unit)
}

func initialMinWidth(state *State) error {
	return state.Result.SetMinWidth(LengthSet, 0, UnitPx)
}

func composeMinWidth(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetMinWidth, (*ComputedStyle).SetMinWidth)
}

func cascadeMaxHeight(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthNone(opv, cur, state, (*ComputedStyle).SetMaxHeight)
}

func setMaxHeightFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetMaxHeight(hint.Status, hint.Length, hint.Unit)
}

func initialMaxHeight(state *State) error {
	return state.Result.SetMaxHeight(LengthNone, 0, UnitPx)
}

func composeMaxHeight(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetMaxHeight, (*ComputedStyle).SetMaxHeight)
}

func cascadeMaxWidth(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLengthNone(opv, cur, state, (*ComputedStyle).SetMaxWidth)
}

func setMaxWidthFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetMaxWidth(hint.Status, hint.Length, hint.Unit)
}

func initialMaxWidth(state *State) error {
	return state.Result.SetMaxWidth(LengthNone, 0, UnitPx)
}

func composeMaxWidth(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetMaxWidth, (*ComputedStyle).SetMaxWidth)
}

// z-index

func cascadeZIndex(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeKeywordOrNumber(opv, cur, state, ZIndexSet, (*ComputedStyle).SetZIndex)
}

func setZIndexFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetZIndex(hint.Status, hint.Integer)
}

func initialZIndex(state *State) error {
	return state.Result.SetZIndex(ZIndexAuto, 0)
}

func composeZIndex(parent, child, result *ComputedStyle) error {
	return composeNumber(parent, child, result,
		(*ComputedStyle).GetZIndex, (*ComputedStyle).SetZIndex)
}

// clip

func cascadeClip(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	value := ClipInherit
	var rect Rect

	if !opv.Inherit() {
		if opv.Value()&bytecode.ClipShapeMask == bytecode.ClipShapeRect {
			value = ClipRect
			ops := []struct {
				auto       *bool
				length     *bytecode.Fixed
				unit       *Unit
				bit        uint16
			}{
				{&rect.TopAuto, &rect.Top, &rect.TopUnit, bytecode.ClipRectTopAuto},
				{&rect.RightAuto, &rect.Right, &rect.RightUnit, bytecode.ClipRectRightAuto},
				{&rect.BottomAuto, &rect.Bottom, &rect.BottomUnit, bytecode.ClipRectBottomAuto},
				{&rect.LeftAuto, &rect.Left, &rect.LeftUnit, bytecode.ClipRectLeftAuto},
			}
			for _, op := range ops {
				if opv.Value()&op.bit != 0 {
					*op.auto = true
					continue
				}
				*op.length = cur.ReadFixed()
				*op.unit = UnitFromBytecode(cur.ReadUnit())
			}
		} else {
			value = ClipAuto
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return state.Result.SetClip(value, &rect)
	}
	return nil
}

func setClipFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetClip(hint.Status, nil)
}

func initialClip(state *State) error {
	return state.Result.SetClip(ClipAuto, nil)
}

func composeClip(parent, child, result *ComputedStyle) error {
	t, r := child.GetClip()
	if t == ClipInherit {
		t, r = parent.GetClip()
	}
	return result.SetClip(t, r)
}

// overflow

func cascadeOverflow(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetOverflow)
}

func setOverflowFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetOverflow(hint.Status)
}

func initialOverflow(state *State) error {
	return state.Result.SetOverflow(OverflowVisible)
}

func composeOverflow(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetOverflow, (*ComputedStyle).SetOverflow)
}

// position

func cascadePosition(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetPosition)
}

func setPositionFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPosition(hint.Status)
}

func initialPosition(state *State) error {
	return state.Result.SetPosition(PositionStatic)
}

func composePosition(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetPosition, (*ComputedStyle).SetPosition)
}

// float

func cascadeFloat(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetFloat)
}

func setFloatFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetFloat(hint.Status)
}

func initialFloat(state *State) error {
	return state.Result.SetFloat(FloatNone)
}

func composeFloat(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetFloat, (*ComputedStyle).SetFloat)
}

// clear

func cascadeClear(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetClear)
}

func setClearFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetClear(hint.Status)
}

func initialClear(state *State) error {
	return state.Result.SetClear(ClearNone)
}

func composeClear(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetClear, (*ComputedStyle).SetClear)
}

// display

func cascadeDisplay(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetDisplay)
}

func setDisplayFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetDisplay(hint.Status)
}

func initialDisplay(state *State) error {
	return state.Result.SetDisplay(DisplayInline)
}

func composeDisplay(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetDisplay, (*ComputedStyle).SetDisplay)
}

// visibility

func cascadeVisibility(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetVisibility)
}

func setVisibilityFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetVisibility(hint.Status)
}

func initialVisibility(state *State) error {
	return state.Result.SetVisibility(VisibilityVisible)
}

func composeVisibility(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetVisibility, (*ComputedStyle).SetVisibility)
}

// vertical-align

func cascadeVerticalAlign(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeKeywordOrLength(opv, cur, state, VerticalAlignSet,
		(*ComputedStyle).SetVerticalAlign)
}

func setVerticalAlignFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetVerticalAlign(hint.Status, hint.Length, hint.Unit)
}

func initialVerticalAlign(state *State) error {
	return state.Result.SetVerticalAlign(VerticalAlignBaseline, 0, UnitPx)
}

func composeVerticalAlign(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetVerticalAlign, (*ComputedStyle).SetVerticalAlign)
}
