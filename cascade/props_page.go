package cascade

import "github.com/zhuyadong/libcss/bytecode"

// Table and paged-media properties.

func cascadeCaptionSide(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetCaptionSide)
}

func setCaptionSideFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetCaptionSide(hint.Status)
}

func initialCaptionSide(state *State) error {
	return state.Result.SetCaptionSide(enumState(bytecode.CaptionSideTop))
}

func composeCaptionSide(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetCaptionSide, (*ComputedStyle).SetCaptionSide)
}

func cascadeEmptyCells(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetEmptyCells)
}

func setEmptyCellsFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetEmptyCells(hint.Status)
}

func initialEmptyCells(state *State) error {
	return state.Result.SetEmptyCells(enumState(bytecode.EmptyCellsShow))
}

func composeEmptyCells(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetEmptyCells, (*ComputedStyle).SetEmptyCells)
}

func cascadeTableLayout(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetTableLayout)
}

func setTableLayoutFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetTableLayout(hint.Status)
}

func initialTableLayout(state *State) error {
	return state.Result.SetTableLayout(enumState(bytecode.TableLayoutAuto))
}

func composeTableLayout(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetTableLayout, (*ComputedStyle).SetTableLayout)
}

func cascadePageBreakAfter(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetPageBreakAfter)
}

func setPageBreakAfterFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPageBreakAfter(hint.Status)
}

func initialPageBreakAfter(state *State) error {
	return state.Result.SetPageBreakAfter(enumState(bytecode.PageBreakAuto))
}

func composePageBreakAfter(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetPageBreakAfter, (*ComputedStyle).SetPageBreakAfter)
}

func cascadePageBreakBefore(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetPageBreakBefore)
}

func setPageBreakBeforeFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPageBreakBefore(hint.Status)
}

func initialPageBreakBefore(state *State) error {
	return state.Result.SetPageBreakBefore(enumState(bytecode.PageBreakAuto))
}

func composePageBreakBefore(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetPageBreakBefore, (*ComputedStyle).SetPageBreakBefore)
}

func cascadePageBreakInside(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetPageBreakInside)
}

func setPageBreakInsideFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPageBreakInside(hint.Status)
}

func initialPageBreakInside(state *State) error {
	return state.Result.SetPageBreakInside(enumState(bytecode.PageBreakAuto))
}

func composePageBreakInside(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetPageBreakInside, (*ComputedStyle).SetPageBreakInside)
}

func cascadeOrphans(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeNumber(opv, cur, state, (*ComputedStyle).SetOrphans)
}

func setOrphansFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetOrphans(hint.Status, hint.Integer)
}

func initialOrphans(state *State) error {
	return state.Result.SetOrphans(NumberSet, bytecode.FixedFromInt(2))
}

func composeOrphans(parent, child, result *ComputedStyle) error {
	return composeNumber(parent, child, result,
		(*ComputedStyle).GetOrphans, (*ComputedStyle).SetOrphans)
}

func cascadeWidows(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeNumber(opv, cur, state, (*ComputedStyle).SetWidows)
}

func setWidowsFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetWidows(hint.Status, hint.Integer)
}

func initialWidows(state *State) error {
	return state.Result.SetWidows(NumberSet, bytecode.FixedFromInt(2))
}

func composeWidows(parent, child, result *ComputedStyle) error {
	return composeNumber(parent, child, result,
		(*ComputedStyle).GetWidows, (*ComputedStyle).SetWidows)
}
