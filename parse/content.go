package parse

import (
	"github.com/zhuyadong/libcss/bytecode"
	"github.com/zhuyadong/libcss/intern"
)

// contentItem is one component of a content value as discovered by the
// walk: the kind code (with any counter style in the high bits) and up
// to two string operands.
type contentItem struct {
	kind uint16
	a, b *intern.String
}

// parseCounterStyle consumes an optional trailing ", <list-style-type>"
// inside a counter function, returning the style code.
func parseCounterStyle(c *Context, v *TokenVector, ctx *int) (uint16, error) {
	style := bytecode.ListStyleTypeDecimal

	v.ConsumeWhitespace(ctx)
	if tok := v.Peek(*ctx); tok.IsChar(',') {
		v.Iterate(ctx)
		v.ConsumeWhitespace(ctx)
		tok := v.Iterate(ctx)
		if tok == nil || tok.Type != TokenIdent ||
				!matchKeyword(c, tok, listStyleTypeTable, &style) {
			return 0, ErrInvalid
		}
		v.ConsumeWhitespace(ctx)
	}
	return style, nil
}

// contentItemAt consumes one content item at the cursor.
func contentItemAt(c *Context, v *TokenVector, ctx *int) (contentItem, error) {
	tok := v.Iterate(ctx)
	if tok == nil {
		return contentItem{}, ErrInvalid
	}

	switch tok.Type {
	case TokenString:
		return contentItem{kind: bytecode.ContentString, a: tok.Value}, nil

	case TokenURI:
		return contentItem{kind: bytecode.ContentURI, a: tok.Value}, nil

	case TokenIdent:
		switch {
		case c.is(tok, kwOpenQuote):
			return contentItem{kind: bytecode.ContentOpenQuote}, nil
		case c.is(tok, kwCloseQuote):
			return contentItem{kind: bytecode.ContentCloseQuote}, nil
		case c.is(tok, kwNoOpenQuote):
			return contentItem{kind: bytecode.ContentNoOpenQuote}, nil
		case c.is(tok, kwNoCloseQuote):
			return contentItem{kind: bytecode.ContentNoCloseQuote}, nil
		}
		return contentItem{}, ErrInvalid

	case TokenFunction:
		switch {
		case c.is(tok, kwAttr):
			v.ConsumeWhitespace(ctx)
			name := v.Iterate(ctx)
			if name == nil || name.Type != TokenIdent {
				return contentItem{}, ErrInvalid
			}
			v.ConsumeWhitespace(ctx)
			if close := v.Iterate(ctx); !close.IsChar(')') {
				return contentItem{}, ErrInvalid
			}
			return contentItem{kind: bytecode.ContentAttr, a: name.Value}, nil

		case c.is(tok, kwCounter):
			v.ConsumeWhitespace(ctx)
			name := v.Iterate(ctx)
			if name == nil || name.Type != TokenIdent {
				return contentItem{}, ErrInvalid
			}
			style, err := parseCounterStyle(c, v, ctx)
			if err != nil {
				return contentItem{}, err
			}
			if close := v.Iterate(ctx); !close.IsChar(')') {
				return contentItem{}, ErrInvalid
			}
			kind := bytecode.ContentCounter | style<<bytecode.ContentStyleShift
			return contentItem{kind: kind, a: name.Value}, nil

		case c.is(tok, kwCounters):
			v.ConsumeWhitespace(ctx)
			name := v.Iterate(ctx)
			if name == nil || name.Type != TokenIdent {
				return contentItem{}, ErrInvalid
			}
			v.ConsumeWhitespace(ctx)
			if comma := v.Iterate(ctx); !comma.IsChar(',') {
				return contentItem{}, ErrInvalid
			}
			v.ConsumeWhitespace(ctx)
			sep := v.Iterate(ctx)
			if sep == nil || sep.Type != TokenString {
				return contentItem{}, ErrInvalid
			}
			style, err := parseCounterStyle(c, v, ctx)
			if err != nil {
				return contentItem{}, err
			}
			if close := v.Iterate(ctx); !close.IsChar(')') {
				return contentItem{}, ErrInvalid
			}
			kind := bytecode.ContentCounters | style<<bytecode.ContentStyleShift
			return contentItem{kind: kind, a: name.Value, b: sep.Value}, nil
		}
		return contentItem{}, ErrInvalid
	}

	return contentItem{}, ErrInvalid
}

// contentWalk consumes a whitespace-separated item sequence, invoking
// emit per item. Shared by the sizing and encoding passes.
func contentWalk(c *Context, v *TokenVector, ctx *int, flags *bytecode.Flag,
	emit func(first bool, item contentItem)) error {

	first := true
	for {
		item, err := contentItemAt(c, v, ctx)
		if err != nil {
			return err
		}
		emit(first, item)
		first = false

		v.ConsumeWhitespace(ctx)
		next := v.Peek(*ctx)
		if next == nil || next.IsChar('!') {
			return parseImportant(c, v, ctx, flags)
		}
	}
}

// parseContent handles normal | none | inherit | <item>+.
func parseContent(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	// Lone keyword forms first.
	probe := orig
	if tok := v.Peek(probe); tok != nil && tok.Type == TokenIdent {
		var flags bytecode.Flag
		var value uint16
		lone := true
		switch {
		case c.is(tok, kwInherit):
			flags = bytecode.FlagInherit
		case c.is(tok, kwNormal):
			value = bytecode.ContentNormal
		case c.is(tok, kwNone):
			value = bytecode.ContentNone
		default:
			lone = false
		}
		if lone {
			v.Iterate(ctx)
			if err := parseImportant(c, v, ctx, &flags); err != nil {
				return nil, err
			}
			st, err = c.Sheet.CreateStyle(bytecode.SizeOPV)
			if err != nil {
				return nil, err
			}
			st.AppendOPV(bytecode.BuildOPV(bytecode.PropContent, flags, value))
			return st, nil
		}
	}

	// Pass 1: validate and size.
	temp := orig
	var flags bytecode.Flag
	var value uint16
	size := uint32(bytecode.SizeOPV)
	err = contentWalk(c, v, &temp, &flags, func(first bool, item contentItem) {
		if first {
			value = item.kind
		} else {
			size += bytecode.SizeU32
		}
		if item.a != nil {
			size += bytecode.SizeString
		}
		if item.b != nil {
			size += bytecode.SizeString
		}
	})
	if err != nil {
		return nil, err
	}
	size += bytecode.SizeU32 // terminator

	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropContent, flags, value))

	// Pass 2: encode.
	var encFlags bytecode.Flag
	err = contentWalk(c, v, ctx, &encFlags, func(first bool, item contentItem) {
		if !first {
			st.AppendU32(uint32(item.kind))
		}
		if item.a != nil {
			st.AppendString(item.a)
		}
		if item.b != nil {
			st.AppendString(item.b)
		}
	})
	if err != nil {
		st.Abandon()
		return nil, err
	}
	st.AppendU32(uint32(bytecode.ContentNormal))
	return st, nil
}

// counterItem is one name/value pair of a counter-increment or
// counter-reset list.
type counterItem struct {
	name  *intern.String
	value bytecode.Fixed
}

// counterWalk consumes [IDENT <integer>?]+ invoking emit per pair.
func counterWalk(c *Context, v *TokenVector, ctx *int, def bytecode.Fixed, flags *bytecode.Flag,
	emit func(item counterItem)) error {

	for {
		tok := v.Iterate(ctx)
		if tok == nil || tok.Type != TokenIdent {
			return ErrInvalid
		}

		item := counterItem{name: tok.Value, value: def}
		v.ConsumeWhitespace(ctx)
		if num := v.Peek(*ctx); num != nil && num.Type == TokenNumber {
			data := num.Lower.Data()
			val, consumed := numberFromString(data, true)
			if consumed != len(data) {
				return ErrInvalid
			}
			item.value = val
			v.Iterate(ctx)
			v.ConsumeWhitespace(ctx)
		}
		emit(item)

		next := v.Peek(*ctx)
		if next == nil || next.IsChar('!') {
			return parseImportant(c, v, ctx, flags)
		}
		if next.Type != TokenIdent {
			return ErrInvalid
		}
	}
}

func parseCounterList(c *Context, v *TokenVector, ctx *int, prop bytecode.PropertyID, def bytecode.Fixed) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	if tok := v.Peek(*ctx); tok != nil && tok.Type == TokenIdent {
		var flags bytecode.Flag
		lone := true
		switch {
		case c.is(tok, kwInherit):
			flags = bytecode.FlagInherit
		case c.is(tok, kwNone):
			// value stays CounterIncrementNone
		default:
			lone = false
		}
		if lone {
			v.Iterate(ctx)
			if err := parseImportant(c, v, ctx, &flags); err != nil {
				return nil, err
			}
			st, err = c.Sheet.CreateStyle(bytecode.SizeOPV)
			if err != nil {
				return nil, err
			}
			st.AppendOPV(bytecode.BuildOPV(prop, flags, bytecode.CounterIncrementNone))
			return st, nil
		}
	}

	// Pass 1: validate and count.
	temp := orig
	var flags bytecode.Flag
	n := 0
	err = counterWalk(c, v, &temp, def, &flags, func(counterItem) { n++ })
	if err != nil {
		return nil, err
	}

	size := uint32(bytecode.SizeOPV) +
		uint32(n)*(bytecode.SizeString+bytecode.SizeFixed+bytecode.SizeU32)
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(prop, flags, bytecode.CounterIncrementNamed))

	// Pass 2: encode. Each pair is followed by a continuation word; the
	// final pair's word is the None terminator.
	var encFlags bytecode.Flag
	i := 0
	err = counterWalk(c, v, ctx, def, &encFlags, func(item counterItem) {
		st.AppendString(item.name)
		st.AppendFixed(item.value)
		i++
		if i < n {
			st.AppendU32(uint32(bytecode.CounterIncrementNamed))
		} else {
			st.AppendU32(uint32(bytecode.CounterIncrementNone))
		}
	})
	if err != nil {
		st.Abandon()
		return nil, err
	}
	return st, nil
}

func parseCounterIncrement(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
	return parseCounterList(c, v, ctx, bytecode.PropCounterIncrement, bytecode.FixedFromInt(1))
}

func parseCounterReset(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
	return parseCounterList(c, v, ctx, bytecode.PropCounterReset, 0)
}

// parseQuotes handles [STRING STRING]+ | none | inherit.
func parseQuotes(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	if tok := v.Peek(*ctx); tok != nil && tok.Type == TokenIdent {
		var flags bytecode.Flag
		if c.is(tok, kwInherit) {
			flags = bytecode.FlagInherit
		} else if !c.is(tok, kwNone) {
			return nil, ErrInvalid
		}
		v.Iterate(ctx)
		if err := parseImportant(c, v, ctx, &flags); err != nil {
			return nil, err
		}
		st, err = c.Sheet.CreateStyle(bytecode.SizeOPV)
		if err != nil {
			return nil, err
		}
		st.AppendOPV(bytecode.BuildOPV(bytecode.PropQuotes, flags, bytecode.QuotesNone))
		return st, nil
	}

	quoteWalk := func(ctx *int, flags *bytecode.Flag, emit func(open, close *intern.String)) error {
		for {
			open := v.Iterate(ctx)
			if open == nil || open.Type != TokenString {
				return ErrInvalid
			}
			v.ConsumeWhitespace(ctx)
			cl := v.Iterate(ctx)
			if cl == nil || cl.Type != TokenString {
				return ErrInvalid
			}
			emit(open.Value, cl.Value)

			v.ConsumeWhitespace(ctx)
			next := v.Peek(*ctx)
			if next == nil || next.IsChar('!') {
				return parseImportant(c, v, ctx, flags)
			}
		}
	}

	temp := orig
	var flags bytecode.Flag
	n := 0
	err = quoteWalk(&temp, &flags, func(_, _ *intern.String) { n++ })
	if err != nil {
		return nil, err
	}

	size := uint32(bytecode.SizeOPV) +
		uint32(n)*(2*bytecode.SizeString+bytecode.SizeU32)
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropQuotes, flags, bytecode.QuotesString))

	var encFlags bytecode.Flag
	i := 0
	err = quoteWalk(ctx, &encFlags, func(open, cl *intern.String) {
		st.AppendString(open)
		st.AppendString(cl)
		i++
		if i < n {
			st.AppendU32(uint32(bytecode.QuotesString))
		} else {
			st.AppendU32(uint32(bytecode.QuotesNone))
		}
	})
	if err != nil {
		st.Abandon()
		return nil, err
	}
	return st, nil
}
