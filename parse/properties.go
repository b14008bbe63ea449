package parse

import "github.com/zhuyadong/libcss/bytecode"

// Handler parses one property's declaration value. On success the cursor
// has advanced past exactly the tokens consumed; on any error it is
// restored to its entry value and no style is produced.
type Handler func(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error)

// kwValue pairs a keyword with the bytecode value it encodes as.
type kwValue struct {
	k     kw
	value uint16
}

// parseKeyword handles the pure-keyword grammars: a single IDENT from a
// fixed set, or inherit, then optional !important.
func parseKeyword(c *Context, v *TokenVector, ctx *int, prop bytecode.PropertyID, table []kwValue) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	ident := v.Iterate(ctx)
	if ident == nil || ident.Type != TokenIdent {
		return nil, ErrInvalid
	}

	var flags bytecode.Flag
	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	var value uint16
	if c.is(ident, kwInherit) {
		flags |= bytecode.FlagInherit
	} else {
		matched := false
		for _, e := range table {
			if c.is(ident, e.k) {
				value = e.value
				matched = true
				break
			}
		}
		if !matched {
			return nil, ErrInvalid
		}
	}

	st, err = c.Sheet.CreateStyle(bytecode.SizeOPV)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(prop, flags, value))
	return st, nil
}

// restoreOnError rewinds the cursor when the enclosing parser fails.
func restoreOnError(ctx *int, orig int, err *error) {
	if *err != nil {
		*ctx = orig
	}
}

func keywordHandler(prop bytecode.PropertyID, table []kwValue) Handler {
	return func(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
		return parseKeyword(c, v, ctx, prop, table)
	}
}

var borderStyleTable = []kwValue{
	{kwNone, bytecode.BorderStyleNone},
	{kwHidden, bytecode.BorderStyleHidden},
	{kwDotted, bytecode.BorderStyleDotted},
	{kwDashed, bytecode.BorderStyleDashed},
	{kwSolid, bytecode.BorderStyleSolid},
	{kwDouble, bytecode.BorderStyleDouble},
	{kwGroove, bytecode.BorderStyleGroove},
	{kwRidge, bytecode.BorderStyleRidge},
	{kwInset, bytecode.BorderStyleInset},
	{kwOutset, bytecode.BorderStyleOutset},
}

// outline-style is border-style without hidden.
var outlineStyleTable = []kwValue{
	{kwNone, bytecode.BorderStyleNone},
	{kwDotted, bytecode.BorderStyleDotted},
	{kwDashed, bytecode.BorderStyleDashed},
	{kwSolid, bytecode.BorderStyleSolid},
	{kwDouble, bytecode.BorderStyleDouble},
	{kwGroove, bytecode.BorderStyleGroove},
	{kwRidge, bytecode.BorderStyleRidge},
	{kwInset, bytecode.BorderStyleInset},
	{kwOutset, bytecode.BorderStyleOutset},
}

var listStyleTypeTable = []kwValue{
	{kwDisc, bytecode.ListStyleTypeDisc},
	{kwCircle, bytecode.ListStyleTypeCircle},
	{kwSquare, bytecode.ListStyleTypeSquare},
	{kwDecimal, bytecode.ListStyleTypeDecimal},
	{kwDecimalLeadingZero, bytecode.ListStyleTypeDecimalLeadingZero},
	{kwLowerRoman, bytecode.ListStyleTypeLowerRoman},
	{kwUpperRoman, bytecode.ListStyleTypeUpperRoman},
	{kwLowerGreek, bytecode.ListStyleTypeLowerGreek},
	{kwLowerLatin, bytecode.ListStyleTypeLowerLatin},
	{kwUpperLatin, bytecode.ListStyleTypeUpperLatin},
	{kwArmenian, bytecode.ListStyleTypeArmenian},
	{kwGeorgian, bytecode.ListStyleTypeGeorgian},
	{kwLowerAlpha, bytecode.ListStyleTypeLowerAlpha},
	{kwUpperAlpha, bytecode.ListStyleTypeUpperAlpha},
	{kwNone, bytecode.ListStyleTypeNone},
}

var (
	parseBackgroundAttachment = keywordHandler(bytecode.PropBackgroundAttachment, []kwValue{
		{kwFixed, bytecode.BackgroundAttachmentFixed},
		{kwScroll, bytecode.BackgroundAttachmentScroll},
	})

	parseBackgroundRepeat = keywordHandler(bytecode.PropBackgroundRepeat, []kwValue{
		{kwNoRepeat, bytecode.BackgroundRepeatNoRepeat},
		{kwRepeatX, bytecode.BackgroundRepeatRepeatX},
		{kwRepeatY, bytecode.BackgroundRepeatRepeatY},
		{kwRepeat, bytecode.BackgroundRepeatRepeat},
	})

	parseBorderCollapse = keywordHandler(bytecode.PropBorderCollapse, []kwValue{
		{kwCollapse, bytecode.BorderCollapseCollapse},
		{kwSeparate, bytecode.BorderCollapseSeparate},
	})

	parseBorderBottomStyle = keywordHandler(bytecode.PropBorderBottomStyle, borderStyleTable)
	parseBorderLeftStyle   = keywordHandler(bytecode.PropBorderLeftStyle, borderStyleTable)
	parseBorderRightStyle  = keywordHandler(bytecode.PropBorderRightStyle, borderStyleTable)
	parseBorderTopStyle    = keywordHandler(bytecode.PropBorderTopStyle, borderStyleTable)
	parseOutlineStyle      = keywordHandler(bytecode.PropOutlineStyle, outlineStyleTable)

	parseCaptionSide = keywordHandler(bytecode.PropCaptionSide, []kwValue{
		{kwTop, bytecode.CaptionSideTop},
		{kwBottom, bytecode.CaptionSideBottom},
	})

	parseClear = keywordHandler(bytecode.PropClear, []kwValue{
		{kwRight, bytecode.ClearRight},
		{kwLeft, bytecode.ClearLeft},
		{kwBoth, bytecode.ClearBoth},
		{kwNone, bytecode.ClearNone},
	})

	parseDirection = keywordHandler(bytecode.PropDirection, []kwValue{
		{kwLTR, bytecode.DirectionLTR},
		{kwRTL, bytecode.DirectionRTL},
	})

	parseDisplay = keywordHandler(bytecode.PropDisplay, []kwValue{
		{kwInline, bytecode.DisplayInline},
		{kwBlock, bytecode.DisplayBlock},
		{kwListItem, bytecode.DisplayListItem},
		{kwRunIn, bytecode.DisplayRunIn},
		{kwInlineBlock, bytecode.DisplayInlineBlock},
		{kwTable, bytecode.DisplayTable},
		{kwInlineTable, bytecode.DisplayInlineTable},
		{kwTableRowGroup, bytecode.DisplayTableRowGroup},
		{kwTableHeaderGroup, bytecode.DisplayTableHeaderGroup},
		{kwTableFooterGroup, bytecode.DisplayTableFooterGroup},
		{kwTableRow, bytecode.DisplayTableRow},
		{kwTableColumnGroup, bytecode.DisplayTableColumnGroup},
		{kwTableColumn, bytecode.DisplayTableColumn},
		{kwTableCell, bytecode.DisplayTableCell},
		{kwTableCaption, bytecode.DisplayTableCaption},
		{kwNone, bytecode.DisplayNone},
	})

	parseEmptyCells = keywordHandler(bytecode.PropEmptyCells, []kwValue{
		{kwShow, bytecode.EmptyCellsShow},
		{kwHide, bytecode.EmptyCellsHide},
	})

	parseFloat = keywordHandler(bytecode.PropFloat, []kwValue{
		{kwLeft, bytecode.FloatLeft},
		{kwRight, bytecode.FloatRight},
		{kwNone, bytecode.FloatNone},
	})

	parseFontStyle = keywordHandler(bytecode.PropFontStyle, []kwValue{
		{kwNormal, bytecode.FontStyleNormal},
		{kwItalic, bytecode.FontStyleItalic},
		{kwOblique, bytecode.FontStyleOblique},
	})

	parseFontVariant = keywordHandler(bytecode.PropFontVariant, []kwValue{
		{kwNormal, bytecode.FontVariantNormal},
		{kwSmallCaps, bytecode.FontVariantSmallCaps},
	})

	parseListStylePosition = keywordHandler(bytecode.PropListStylePosition, []kwValue{
		{kwInside, bytecode.ListStylePositionInside},
		{kwOutside, bytecode.ListStylePositionOutside},
	})

	parseListStyleType = keywordHandler(bytecode.PropListStyleType, listStyleTypeTable)

	parseOverflow = keywordHandler(bytecode.PropOverflow, []kwValue{
		{kwVisible, bytecode.OverflowVisible},
		{kwHidden, bytecode.OverflowHidden},
		{kwScroll, bytecode.OverflowScroll},
		{kwAuto, bytecode.OverflowAuto},
	})

	pageBreakTable = []kwValue{
		{kwAuto, bytecode.PageBreakAuto},
		{kwAlways, bytecode.PageBreakAlways},
		{kwAvoid, bytecode.PageBreakAvoid},
		{kwLeft, bytecode.PageBreakLeft},
		{kwRight, bytecode.PageBreakRight},
	}
	parsePageBreakAfter  = keywordHandler(bytecode.PropPageBreakAfter, pageBreakTable)
	parsePageBreakBefore = keywordHandler(bytecode.PropPageBreakBefore, pageBreakTable)
	parsePageBreakInside = keywordHandler(bytecode.PropPageBreakInside, []kwValue{
		{kwAuto, bytecode.PageBreakAuto},
		{kwAvoid, bytecode.PageBreakAvoid},
	})

	parsePosition = keywordHandler(bytecode.PropPosition, []kwValue{
		{kwStatic, bytecode.PositionStatic},
		{kwRelative, bytecode.PositionRelative},
		{kwAbsolute, bytecode.PositionAbsolute},
		{kwFixed, bytecode.PositionFixed},
	})

	parseSpeakHeader = keywordHandler(bytecode.PropSpeakHeader, []kwValue{
		{kwOnce, bytecode.SpeakHeaderOnce},
		{kwAlways, bytecode.SpeakHeaderAlways},
	})

	parseSpeakNumeral = keywordHandler(bytecode.PropSpeakNumeral, []kwValue{
		{kwDigits, bytecode.SpeakNumeralDigits},
		{kwContinuous, bytecode.SpeakNumeralContinuous},
	})

	parseSpeakPunctuation = keywordHandler(bytecode.PropSpeakPunctuation, []kwValue{
		{kwCode, bytecode.SpeakPunctuationCode},
		{kwNone, bytecode.SpeakPunctuationNone},
	})

	parseSpeak = keywordHandler(bytecode.PropSpeak, []kwValue{
		{kwNormal, bytecode.SpeakNormal},
		{kwNone, bytecode.SpeakNone},
		{kwSpellOut, bytecode.SpeakSpellOut},
	})

	parseTableLayout = keywordHandler(bytecode.PropTableLayout, []kwValue{
		{kwAuto, bytecode.TableLayoutAuto},
		{kwFixed, bytecode.TableLayoutFixed},
	})

	parseTextAlign = keywordHandler(bytecode.PropTextAlign, []kwValue{
		{kwLeft, bytecode.TextAlignLeft},
		{kwRight, bytecode.TextAlignRight},
		{kwCenter, bytecode.TextAlignCenter},
		{kwJustify, bytecode.TextAlignJustify},
	})

	parseTextTransform = keywordHandler(bytecode.PropTextTransform, []kwValue{
		{kwCapitalize, bytecode.TextTransformCapitalize},
		{kwUppercase, bytecode.TextTransformUppercase},
		{kwLowercase, bytecode.TextTransformLowercase},
		{kwNone, bytecode.TextTransformNone},
	})

	parseUnicodeBidi = keywordHandler(bytecode.PropUnicodeBidi, []kwValue{
		{kwNormal, bytecode.UnicodeBidiNormal},
		{kwEmbed, bytecode.UnicodeBidiEmbed},
		{kwBidiOverride, bytecode.UnicodeBidiOverride},
	})

	parseVisibility = keywordHandler(bytecode.PropVisibility, []kwValue{
		{kwVisible, bytecode.VisibilityVisible},
		{kwHidden, bytecode.VisibilityHidden},
		{kwCollapse, bytecode.VisibilityCollapse},
	})

	parseWhiteSpace = keywordHandler(bytecode.PropWhiteSpace, []kwValue{
		{kwNormal, bytecode.WhiteSpaceNormal},
		{kwPre, bytecode.WhiteSpacePre},
		{kwNowrap, bytecode.WhiteSpaceNowrap},
		{kwPreWrap, bytecode.WhiteSpacePreWrap},
		{kwPreLine, bytecode.WhiteSpacePreLine},
	})
)

// parseTextDecoration handles the flag-set grammar: none, inherit, or
// any combination of the line keywords with repeats rejected.
func parseTextDecoration(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	ident := v.Iterate(ctx)
	if ident == nil || ident.Type != TokenIdent {
		return nil, ErrInvalid
	}

	var flags bytecode.Flag
	var value uint16

	if c.is(ident, kwInherit) {
		flags |= bytecode.FlagInherit
	} else if c.is(ident, kwNone) {
		value = bytecode.TextDecorationNone
	} else {
		for ident != nil {
			var bit uint16
			switch {
			case c.is(ident, kwUnderline):
				bit = bytecode.TextDecorationUnderline
			case c.is(ident, kwOverline):
				bit = bytecode.TextDecorationOverline
			case c.is(ident, kwLineThrough):
				bit = bytecode.TextDecorationLineThrough
			case c.is(ident, kwBlink):
				bit = bytecode.TextDecorationBlink
			default:
				return nil, ErrInvalid
			}
			if value&bit != 0 {
				return nil, ErrInvalid
			}
			value |= bit

			v.ConsumeWhitespace(ctx)
			if next := v.Peek(*ctx); next == nil || next.Type != TokenIdent {
				break
			}
			ident = v.Iterate(ctx)
		}
	}

	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	st, err = c.Sheet.CreateStyle(bytecode.SizeOPV)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropTextDecoration, flags, value))
	return st, nil
}
