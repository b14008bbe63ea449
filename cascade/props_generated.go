package cascade

import "github.com/zhuyadong/libcss/bytecode"

// Generated-content and list properties.

// content

func cascadeContentProp(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeContent(opv, cur, state)
}

func setContentFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetContent(hint.Status, hint.Content)
}

func initialContent(state *State) error {
	return state.Result.SetContent(ContentNormal, nil)
}

func composeContent(parent, child, result *ComputedStyle) error {
	t, items := child.GetContent()
	if t == ContentInherit {
		t, items = parent.GetContent()
	}
	copied := append([]ContentItem(nil), items...)
	return result.SetContent(t, copied)
}

// counter-increment, counter-reset

func cascadeCounterIncrement(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeCounterIncrementReset(opv, cur, state, (*ComputedStyle).SetCounterIncrement)
}

func setCounterIncrementFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetCounterIncrement(hint.Status, hint.Counter)
}

func initialCounterIncrement(state *State) error {
	return state.Result.SetCounterIncrement(CounterNone, nil)
}

func composeCounterIncrement(parent, child, result *ComputedStyle) error {
	t, counters := child.GetCounterIncrement()
	if t == CounterInherit {
		t, counters = parent.GetCounterIncrement()
	}
	copied := append([]Counter(nil), counters...)
	return result.SetCounterIncrement(t, copied)
}

func cascadeCounterReset(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeCounterIncrementReset(opv, cur, state, (*ComputedStyle).SetCounterReset)
}

func setCounterResetFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetCounterReset(hint.Status, hint.Counter)
}

func initialCounterReset(state *State) error {
	return state.Result.SetCounterReset(CounterNone, nil)
}

func composeCounterReset(parent, child, result *ComputedStyle) error {
	t, counters := child.GetCounterReset()
	if t == CounterInherit {
		t, counters = parent.GetCounterReset()
	}
	copied := append([]Counter(nil), counters...)
	return result.SetCounterReset(t, copied)
}

// quotes

func cascadeQuotesProp(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeQuotes(opv, cur, state)
}

func setQuotesFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetQuotes(hint.Status, hint.Strings)
}

func initialQuotes(state *State) error {
	return state.Result.SetQuotes(QuotesNone, nil)
}

func composeQuotes(parent, child, result *ComputedStyle) error {
	return composeStrings(parent, child, result,
		(*ComputedStyle).GetQuotes, (*ComputedStyle).SetQuotes)
}

// cursor

func cascadeCursorProp(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeCursor(opv, cur, state)
}

func setCursorFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetCursor(hint.Status, hint.Strings)
}

func initialCursor(state *State) error {
	return state.Result.SetCursor(enumState(bytecode.CursorAuto), nil)
}

func composeCursor(parent, child, result *ComputedStyle) error {
	return composeStrings(parent, child, result,
		(*ComputedStyle).GetCursor, (*ComputedStyle).SetCursor)
}

// list-style-image

func cascadeListStyleImage(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeURINone(opv, cur, state, (*ComputedStyle).SetListStyleImage)
}

func setListStyleImageFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetListStyleImage(hint.Status, hint.String)
}

func initialListStyleImage(state *State) error {
	return state.Result.SetListStyleImage(URINone, nil)
}

func composeListStyleImage(parent, child, result *ComputedStyle) error {
	return composeURI(parent, child, result,
		(*ComputedStyle).GetListStyleImage, (*ComputedStyle).SetListStyleImage)
}

// list-style-position

func cascadeListStylePosition(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetListStylePosition)
}

func setListStylePositionFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetListStylePosition(hint.Status)
}

func initialListStylePosition(state *State) error {
	return state.Result.SetListStylePosition(enumState(bytecode.ListStylePositionOutside))
}

func composeListStylePosition(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetListStylePosition, (*ComputedStyle).SetListStylePosition)
}

// list-style-type

func cascadeListStyleType(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetListStyleType)
}

func setListStyleTypeFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetListStyleType(hint.Status)
}

func initialListStyleType(state *State) error {
	return state.Result.SetListStyleType(enumState(bytecode.ListStyleTypeDisc))
}

func composeListStyleType(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetListStyleType, (*ComputedStyle).SetListStyleType)
}
