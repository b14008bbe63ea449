package parse

import "github.com/zhuyadong/libcss/bytecode"

// colourGrammar describes a colour-valued property and its keyword
// alternative (transparent for backgrounds and borders, invert for
// outlines).
type colourGrammar struct {
	prop     bytecode.PropertyID
	keyword  kw
	kwValue  uint16
	setValue uint16
	hasKw    bool
}

func parseColourProp(c *Context, v *TokenVector, ctx *int, g colourGrammar) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Peek(*ctx)
	if tok == nil {
		return nil, ErrInvalid
	}

	var (
		flags  bytecode.Flag
		value  uint16
		colour bytecode.Color
	)

	switch {
	case c.isIdent(tok, kwInherit):
		v.Iterate(ctx)
		flags |= bytecode.FlagInherit
	case g.hasKw && c.isIdent(tok, g.keyword):
		v.Iterate(ctx)
		value = g.kwValue
	default:
		colour, err = parseColourSpecifier(c, v, ctx)
		if err != nil {
			return nil, err
		}
		value = g.setValue
	}

	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	size := uint32(bytecode.SizeOPV)
	if flags&bytecode.FlagInherit == 0 && value == g.setValue {
		size += bytecode.SizeColor
	}
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(g.prop, flags, value))
	if flags&bytecode.FlagInherit == 0 && value == g.setValue {
		st.AppendColor(colour)
	}
	return st, nil
}

func colourHandler(g colourGrammar) Handler {
	return func(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
		return parseColourProp(c, v, ctx, g)
	}
}

var (
	parseColor = colourHandler(colourGrammar{
		prop: bytecode.PropColor, setValue: bytecode.ColorSet,
	})

	parseBackgroundColor = colourHandler(colourGrammar{
		prop: bytecode.PropBackgroundColor, hasKw: true, keyword: kwTransparent,
		kwValue: bytecode.BackgroundColorTransparent, setValue: bytecode.BackgroundColorSet,
	})

	parseBorderBottomColor = colourHandler(colourGrammar{
		prop: bytecode.PropBorderBottomColor, hasKw: true, keyword: kwTransparent,
		kwValue: bytecode.BorderColorTransparent, setValue: bytecode.BorderColorSet,
	})
	parseBorderLeftColor = colourHandler(colourGrammar{
		prop: bytecode.PropBorderLeftColor, hasKw: true, keyword: kwTransparent,
		kwValue: bytecode.BorderColorTransparent, setValue: bytecode.BorderColorSet,
	})
	parseBorderRightColor = colourHandler(colourGrammar{
		prop: bytecode.PropBorderRightColor, hasKw: true, keyword: kwTransparent,
		kwValue: bytecode.BorderColorTransparent, setValue: bytecode.BorderColorSet,
	})
	parseBorderTopColor = colourHandler(colourGrammar{
		prop: bytecode.PropBorderTopColor, hasKw: true, keyword: kwTransparent,
		kwValue: bytecode.BorderColorTransparent, setValue: bytecode.BorderColorSet,
	})

	parseOutlineColor = colourHandler(colourGrammar{
		prop: bytecode.PropOutlineColor, hasKw: true, keyword: kwInvert,
		kwValue: bytecode.OutlineColorInvert, setValue: bytecode.OutlineColorSet,
	})
)

// parseURIProp handles uri | none | inherit grammars (background-image,
// list-style-image, cue-after, cue-before).
func parseURIProp(c *Context, v *TokenVector, ctx *int, prop bytecode.PropertyID, uriValue uint16) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Iterate(ctx)
	if tok == nil || (tok.Type != TokenIdent && tok.Type != TokenURI) {
		return nil, ErrInvalid
	}

	var flags bytecode.Flag
	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	var value uint16
	switch {
	case tok.Type == TokenIdent && c.is(tok, kwInherit):
		flags |= bytecode.FlagInherit
	case tok.Type == TokenIdent && c.is(tok, kwNone):
		value = 0
	case tok.Type == TokenURI:
		value = uriValue
	default:
		return nil, ErrInvalid
	}

	size := uint32(bytecode.SizeOPV)
	if flags&bytecode.FlagInherit == 0 && value == uriValue {
		size += bytecode.SizeString
	}
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(prop, flags, value))
	if flags&bytecode.FlagInherit == 0 && value == uriValue {
		st.AppendString(tok.Value)
	}
	return st, nil
}

func uriHandler(prop bytecode.PropertyID, uriValue uint16) Handler {
	return func(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
		return parseURIProp(c, v, ctx, prop, uriValue)
	}
}

var (
	parseBackgroundImage = uriHandler(bytecode.PropBackgroundImage, bytecode.BackgroundImageURI)
	parseListStyleImage  = uriHandler(bytecode.PropListStyleImage, bytecode.ListStyleImageURI)
	parseCueAfter        = uriHandler(bytecode.PropCueAfter, bytecode.CueAfterURI)
	parseCueBefore       = uriHandler(bytecode.PropCueBefore, bytecode.CueBeforeURI)
)
