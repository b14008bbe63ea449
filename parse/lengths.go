package parse

import "github.com/zhuyadong/libcss/bytecode"

// lengthGrammar describes a length-or-keyword property: an optional set
// of keyword alternatives, the value code for the set case, and the
// per-property unit and sign restrictions. Angle, time and frequency
// units are never valid in these grammars.
type lengthGrammar struct {
	prop           bytecode.PropertyID
	keywords       []kwValue
	setValue       uint16
	rejectPct      bool
	rejectNegative bool
}

func parseLength(c *Context, v *TokenVector, ctx *int, g lengthGrammar) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Peek(*ctx)
	if tok == nil {
		return nil, ErrInvalid
	}

	var (
		flags   bytecode.Flag
		value   uint16
		length  bytecode.Fixed
		unit    bytecode.Unit
		payload bool
	)

	switch {
	case c.isIdent(tok, kwInherit):
		v.Iterate(ctx)
		flags = bytecode.FlagInherit
	case tok.Type == TokenIdent && matchKeyword(c, tok, g.keywords, &value):
		v.Iterate(ctx)
	default:
		length, unit, err = parseUnitSpecifier(c, v, ctx, bytecode.UnitPx)
		if err != nil {
			return nil, err
		}
		if unit&(bytecode.UnitAngle|bytecode.UnitTime|bytecode.UnitFreq) != 0 {
			return nil, ErrInvalid
		}
		if g.rejectPct && unit&bytecode.UnitPct != 0 {
			return nil, ErrInvalid
		}
		if g.rejectNegative && length < 0 {
			return nil, ErrInvalid
		}
		value = g.setValue
		payload = true
	}

	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	size := uint32(bytecode.SizeOPV)
	if flags&bytecode.FlagInherit == 0 && payload {
		size += bytecode.SizeFixed + bytecode.SizeUnit
	}
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(g.prop, flags, value))
	if flags&bytecode.FlagInherit == 0 && payload {
		st.AppendFixed(length)
		st.AppendUnit(unit)
	}
	return st, nil
}

func matchKeyword(c *Context, tok *Token, table []kwValue, value *uint16) bool {
	for _, e := range table {
		if c.is(tok, e.k) {
			*value = e.value
			return true
		}
	}
	return false
}

func lengthHandler(g lengthGrammar) Handler {
	return func(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
		return parseLength(c, v, ctx, g)
	}
}

var (
	autoKw   = []kwValue{{kwAuto, 0x00}}
	noneKw   = []kwValue{{kwNone, 0x00}}
	normalKw = []kwValue{{kwNormal, 0x00}}

	borderWidthKw = []kwValue{
		{kwThin, bytecode.BorderWidthThin},
		{kwMedium, bytecode.BorderWidthMedium},
		{kwThick, bytecode.BorderWidthThick},
	}

	parseWidth = lengthHandler(lengthGrammar{
		prop: bytecode.PropWidth, keywords: autoKw,
		setValue: bytecode.WidthSet, rejectNegative: true,
	})
	parseHeight = lengthHandler(lengthGrammar{
		prop: bytecode.PropHeight, keywords: autoKw,
		setValue: bytecode.HeightSet, rejectNegative: true,
	})
	parseBottom = lengthHandler(lengthGrammar{
		prop: bytecode.PropBottom, keywords: autoKw, setValue: bytecode.BottomSet,
	})
	parseLeft = lengthHandler(lengthGrammar{
		prop: bytecode.PropLeft, keywords: autoKw, setValue: bytecode.LeftSet,
	})
	parseRight = lengthHandler(lengthGrammar{
		prop: bytecode.PropRight, keywords: autoKw, setValue: bytecode.RightSet,
	})
	parseTop = lengthHandler(lengthGrammar{
		prop: bytecode.PropTop, keywords: autoKw, setValue: bytecode.TopSet,
	})

	parseMarginBottom = lengthHandler(lengthGrammar{
		prop: bytecode.PropMarginBottom, keywords: autoKw, setValue: bytecode.MarginSet,
	})
	parseMarginLeft = lengthHandler(lengthGrammar{
		prop: bytecode.PropMarginLeft, keywords: autoKw, setValue: bytecode.MarginSet,
	})
	parseMarginRight = lengthHandler(lengthGrammar{
		prop: bytecode.PropMarginRight, keywords: autoKw, setValue: bytecode.MarginSet,
	})
	parseMarginTop = lengthHandler(lengthGrammar{
		prop: bytecode.PropMarginTop, keywords: autoKw, setValue: bytecode.MarginSet,
	})

	parsePaddingBottom = lengthHandler(lengthGrammar{
		prop: bytecode.PropPaddingBottom, setValue: bytecode.PaddingSet, rejectNegative: true,
	})
	parsePaddingLeft = lengthHandler(lengthGrammar{
		prop: bytecode.PropPaddingLeft, setValue: bytecode.PaddingSet, rejectNegative: true,
	})
	parsePaddingRight = lengthHandler(lengthGrammar{
		prop: bytecode.PropPaddingRight, setValue: bytecode.PaddingSet, rejectNegative: true,
	})
	parsePaddingTop = lengthHandler(lengthGrammar{
		prop: bytecode.PropPaddingTop, setValue: bytecode.PaddingSet, rejectNegative: true,
	})

	parseMinHeight = lengthHandler(lengthGrammar{
		prop: bytecode.PropMinHeight, setValue: bytecode.MinHeightSet, rejectNegative: true,
	})
	parseMinWidth = lengthHandler(lengthGrammar{
		prop: bytecode.PropMinWidth, setValue: bytecode.MinWidthSet, rejectNegative: true,
	})
	parseMaxHeight = lengthHandler(lengthGrammar{
		prop: bytecode.PropMaxHeight, keywords: noneKw,
		setValue: bytecode.MaxHeightSet, rejectNegative: true,
	})
	parseMaxWidth = lengthHandler(lengthGrammar{
		prop: bytecode.PropMaxWidth, keywords: noneKw,
		setValue: bytecode.MaxWidthSet, rejectNegative: true,
	})

	parseLetterSpacing = lengthHandler(lengthGrammar{
		prop: bytecode.PropLetterSpacing, keywords: normalKw,
		setValue: bytecode.LetterSpacingSet, rejectPct: true,
	})
	parseWordSpacing = lengthHandler(lengthGrammar{
		prop: bytecode.PropWordSpacing, keywords: normalKw,
		setValue: bytecode.WordSpacingSet, rejectPct: true,
	})

	parseTextIndent = lengthHandler(lengthGrammar{
		prop: bytecode.PropTextIndent, setValue: bytecode.TextIndentSet,
	})

	parseBorderBottomWidth = lengthHandler(lengthGrammar{
		prop: bytecode.PropBorderBottomWidth, keywords: borderWidthKw,
		setValue: bytecode.BorderWidthSet, rejectPct: true, rejectNegative: true,
	})
	parseBorderLeftWidth = lengthHandler(lengthGrammar{
		prop: bytecode.PropBorderLeftWidth, keywords: borderWidthKw,
		setValue: bytecode.BorderWidthSet, rejectPct: true, rejectNegative: true,
	})
	parseBorderRightWidth = lengthHandler(lengthGrammar{
		prop: bytecode.PropBorderRightWidth, keywords: borderWidthKw,
		setValue: bytecode.BorderWidthSet, rejectPct: true, rejectNegative: true,
	})
	parseBorderTopWidth = lengthHandler(lengthGrammar{
		prop: bytecode.PropBorderTopWidth, keywords: borderWidthKw,
		setValue: bytecode.BorderWidthSet, rejectPct: true, rejectNegative: true,
	})
	parseOutlineWidth = lengthHandler(lengthGrammar{
		prop: bytecode.PropOutlineWidth, keywords: borderWidthKw,
		setValue: bytecode.BorderWidthSet, rejectPct: true, rejectNegative: true,
	})

	parseVerticalAlign = lengthHandler(lengthGrammar{
		prop: bytecode.PropVerticalAlign,
		keywords: []kwValue{
			{kwBaseline, bytecode.VerticalAlignBaseline},
			{kwSub, bytecode.VerticalAlignSub},
			{kwSuper, bytecode.VerticalAlignSuper},
			{kwTop, bytecode.VerticalAlignTop},
			{kwTextTop, bytecode.VerticalAlignTextTop},
			{kwMiddle, bytecode.VerticalAlignMiddle},
			{kwBottom, bytecode.VerticalAlignBottom},
			{kwTextBottom, bytecode.VerticalAlignTextBottom},
		},
		setValue: bytecode.VerticalAlignSet,
	})

	parseFontSize = lengthHandler(lengthGrammar{
		prop: bytecode.PropFontSize,
		keywords: []kwValue{
			{kwXXSmall, bytecode.FontSizeXXSmall},
			{kwXSmall, bytecode.FontSizeXSmall},
			{kwSmall, bytecode.FontSizeSmall},
			{kwMedium, bytecode.FontSizeMedium},
			{kwLarge, bytecode.FontSizeLarge},
			{kwXLarge, bytecode.FontSizeXLarge},
			{kwXXLarge, bytecode.FontSizeXXLarge},
			{kwLarger, bytecode.FontSizeLarger},
			{kwSmaller, bytecode.FontSizeSmaller},
		},
		setValue: bytecode.FontSizeDimension, rejectNegative: true,
	})
)

// parseLineHeight handles number | length | percentage | normal.
func parseLineHeight(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Peek(*ctx)
	if tok == nil {
		return nil, ErrInvalid
	}

	var (
		flags  bytecode.Flag
		value  uint16
		length bytecode.Fixed
		unit   bytecode.Unit
	)

	switch {
	case c.isIdent(tok, kwInherit):
		v.Iterate(ctx)
		flags = bytecode.FlagInherit
	case c.isIdent(tok, kwNormal):
		v.Iterate(ctx)
		value = bytecode.LineHeightNormal
	case tok.Type == TokenNumber:
		data := tok.Lower.Data()
		var consumed int
		length, consumed = numberFromString(data, false)
		if consumed != len(data) || length < 0 {
			return nil, ErrInvalid
		}
		v.Iterate(ctx)
		value = bytecode.LineHeightNumber
	default:
		length, unit, err = parseUnitSpecifier(c, v, ctx, bytecode.UnitPx)
		if err != nil {
			return nil, err
		}
		if unit&(bytecode.UnitAngle|bytecode.UnitTime|bytecode.UnitFreq) != 0 {
			return nil, ErrInvalid
		}
		if length < 0 {
			return nil, ErrInvalid
		}
		value = bytecode.LineHeightDimension
	}

	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	size := uint32(bytecode.SizeOPV)
	if flags&bytecode.FlagInherit == 0 {
		switch value {
		case bytecode.LineHeightNumber:
			size += bytecode.SizeFixed
		case bytecode.LineHeightDimension:
			size += bytecode.SizeFixed + bytecode.SizeUnit
		}
	}
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropLineHeight, flags, value))
	if flags&bytecode.FlagInherit == 0 {
		switch value {
		case bytecode.LineHeightNumber:
			st.AppendFixed(length)
		case bytecode.LineHeightDimension:
			st.AppendFixed(length)
			st.AppendUnit(unit)
		}
	}
	return st, nil
}

// parseFontWeight handles the keyword and numeric weight forms.
func parseFontWeight(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Iterate(ctx)
	if tok == nil || (tok.Type != TokenIdent && tok.Type != TokenNumber) {
		return nil, ErrInvalid
	}

	var flags bytecode.Flag
	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	var value uint16
	if tok.Type == TokenNumber {
		data := tok.Lower.Data()
		num, consumed := numberFromString(data, true)
		if consumed != len(data) {
			return nil, ErrInvalid
		}
		switch num.Int() {
		case 100:
			value = bytecode.FontWeight100
		case 200:
			value = bytecode.FontWeight200
		case 300:
			value = bytecode.FontWeight300
		case 400:
			value = bytecode.FontWeight400
		case 500:
			value = bytecode.FontWeight500
		case 600:
			value = bytecode.FontWeight600
		case 700:
			value = bytecode.FontWeight700
		case 800:
			value = bytecode.FontWeight800
		case 900:
			value = bytecode.FontWeight900
		default:
			return nil, ErrInvalid
		}
	} else if c.is(tok, kwInherit) {
		flags |= bytecode.FlagInherit
	} else if c.is(tok, kwNormal) {
		value = bytecode.FontWeightNormal
	} else if c.is(tok, kwBold) {
		value = bytecode.FontWeightBold
	} else if c.is(tok, kwBolder) {
		value = bytecode.FontWeightBolder
	} else if c.is(tok, kwLighter) {
		value = bytecode.FontWeightLighter
	} else {
		return nil, ErrInvalid
	}

	st, err = c.Sheet.CreateStyle(bytecode.SizeOPV)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropFontWeight, flags, value))
	return st, nil
}

// parseInteger covers <integer> | keyword properties (z-index,
// orphans, widows).
func parseInteger(c *Context, v *TokenVector, ctx *int, prop bytecode.PropertyID, auto bool, setValue uint16) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Iterate(ctx)
	if tok == nil || (tok.Type != TokenIdent && tok.Type != TokenNumber) {
		return nil, ErrInvalid
	}

	var flags bytecode.Flag
	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	var value uint16
	var num bytecode.Fixed
	payload := false
	switch {
	case tok.Type == TokenIdent && c.is(tok, kwInherit):
		flags |= bytecode.FlagInherit
	case tok.Type == TokenIdent && auto && c.is(tok, kwAuto):
		value = bytecode.ZIndexAuto
	case tok.Type == TokenNumber:
		data := tok.Lower.Data()
		var consumed int
		num, consumed = numberFromString(data, true)
		if consumed != len(data) {
			return nil, ErrInvalid
		}
		value = setValue
		payload = true
	default:
		return nil, ErrInvalid
	}

	size := uint32(bytecode.SizeOPV)
	if flags&bytecode.FlagInherit == 0 && payload {
		size += bytecode.SizeFixed
	}
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(prop, flags, value))
	if flags&bytecode.FlagInherit == 0 && payload {
		st.AppendFixed(num)
	}
	return st, nil
}

func parseZIndex(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
	return parseInteger(c, v, ctx, bytecode.PropZIndex, true, bytecode.ZIndexSet)
}

func parseOrphans(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
	return parseInteger(c, v, ctx, bytecode.PropOrphans, false, bytecode.OrphansSet)
}

func parseWidows(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
	return parseInteger(c, v, ctx, bytecode.PropWidows, false, bytecode.WidowsSet)
}

// parseClip handles rect(top, right, bottom, left) with auto slots, or
// auto alone. Auto operands set bits 3..6 of the value in source order;
// the remaining operands append (fixed, unit) pairs.
func parseClip(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Iterate(ctx)
	if tok == nil {
		return nil, ErrInvalid
	}

	var (
		flags      bytecode.Flag
		value      uint16
		numLengths int
		length     [4]bytecode.Fixed
		unit       [4]bytecode.Unit
	)

	switch {
	case c.isIdent(tok, kwInherit):
		flags = bytecode.FlagInherit
	case c.isIdent(tok, kwAuto):
		value = bytecode.ClipAuto
	case tok.Type == TokenFunction && c.is(tok, kwRect):
		value = bytecode.ClipShapeRect
		for i := 0; i < 4; i++ {
			v.ConsumeWhitespace(ctx)

			tok = v.Peek(*ctx)
			if tok == nil {
				return nil, ErrInvalid
			}
			if tok.Type == TokenIdent {
				if !c.is(tok, kwAuto) {
					return nil, ErrInvalid
				}
				value |= 1 << (i + 3)
				v.Iterate(ctx)
			} else {
				length[numLengths], unit[numLengths], err = parseUnitSpecifier(c, v, ctx, bytecode.UnitPx)
				if err != nil {
					return nil, err
				}
				if unit[numLengths]&(bytecode.UnitAngle|bytecode.UnitTime|
						bytecode.UnitFreq|bytecode.UnitPct) != 0 {
					return nil, ErrInvalid
				}
				numLengths++
			}

			v.ConsumeWhitespace(ctx)

			// Optional comma after the first three operands.
			if i < 3 {
				tok = v.Peek(*ctx)
				if tok == nil {
					return nil, ErrInvalid
				}
				if tok.IsChar(',') {
					v.Iterate(ctx)
				}
			}
		}

		v.ConsumeWhitespace(ctx)
		tok = v.Iterate(ctx)
		if !tok.IsChar(')') {
			return nil, ErrInvalid
		}
	default:
		return nil, ErrInvalid
	}

	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	size := uint32(bytecode.SizeOPV)
	rect := flags&bytecode.FlagInherit == 0 &&
		value&bytecode.ClipShapeMask == bytecode.ClipShapeRect
	if rect {
		size += uint32(numLengths) * (bytecode.SizeFixed + bytecode.SizeUnit)
	}
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropClip, flags, value))
	if rect {
		for i := 0; i < numLengths; i++ {
			st.AppendFixed(length[i])
			st.AppendUnit(unit[i])
		}
	}
	return st, nil
}
