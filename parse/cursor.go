package parse

import (
	"github.com/zhuyadong/libcss/bytecode"
	"github.com/zhuyadong/libcss/intern"
)

var cursorKeywords = []kwValue{
	{kwAuto, bytecode.CursorAuto},
	{kwCrosshair, bytecode.CursorCrosshair},
	{kwDefault, bytecode.CursorDefault},
	{kwPointer, bytecode.CursorPointer},
	{kwMove, bytecode.CursorMove},
	{kwEResize, bytecode.CursorEResize},
	{kwNEResize, bytecode.CursorNEResize},
	{kwNWResize, bytecode.CursorNWResize},
	{kwNResize, bytecode.CursorNResize},
	{kwSEResize, bytecode.CursorSEResize},
	{kwSWResize, bytecode.CursorSWResize},
	{kwSResize, bytecode.CursorSResize},
	{kwWResize, bytecode.CursorWResize},
	{kwText, bytecode.CursorText},
	{kwWait, bytecode.CursorWait},
	{kwHelp, bytecode.CursorHelp},
	{kwProgress, bytecode.CursorProgress},
}

// cursorWalk consumes a cursor value: zero or more comma-separated URIs
// followed by one keyword, or inherit alone. Both the sizing and the
// emission pass run this same walk, so they agree on exactly which
// inputs are valid and where the list ends.
func cursorWalk(c *Context, v *TokenVector, ctx *int, flags *bytecode.Flag,
	uri func(first bool, s *intern.String),
	keyword func(first bool, value uint16)) (value uint16, err error) {

	tok := v.Iterate(ctx)
	if tok == nil || (tok.Type != TokenIdent && tok.Type != TokenURI) {
		return 0, ErrInvalid
	}

	if tok.Type == TokenIdent && c.is(tok, kwInherit) {
		*flags |= bytecode.FlagInherit
		return 0, parseImportant(c, v, ctx, flags)
	}

	first := true
	for tok != nil && tok.Type == TokenURI {
		if first {
			value = bytecode.CursorURI
		}
		uri(first, tok.Value)

		v.ConsumeWhitespace(ctx)
		tok = v.Iterate(ctx)
		if !tok.IsChar(',') {
			return 0, ErrInvalid
		}
		v.ConsumeWhitespace(ctx)

		tok = v.Iterate(ctx)
		if tok == nil || (tok.Type != TokenIdent && tok.Type != TokenURI) {
			return 0, ErrInvalid
		}
		first = false
	}

	var kwVal uint16
	if !matchKeyword(c, tok, cursorKeywords, &kwVal) {
		return 0, ErrInvalid
	}
	if first {
		value = kwVal
	} else {
		keyword(first, kwVal)
	}

	return value, expectImportantOrEnd(c, v, ctx, flags)
}

// parseCursor handles the URI-list-plus-keyword grammar. Two passes: the
// first validates and sizes the entry, the second encodes it.
func parseCursor(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	temp := orig
	var flags bytecode.Flag
	size := uint32(bytecode.SizeOPV)
	value, err := cursorWalk(c, v, &temp, &flags,
		func(first bool, s *intern.String) {
			if !first {
				size += bytecode.SizeU32
			}
			size += bytecode.SizeString
		},
		func(first bool, kwVal uint16) {
			size += bytecode.SizeU32
		})
	if err != nil {
		return nil, err
	}

	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropCursor, flags, value))

	var encFlags bytecode.Flag
	_, err = cursorWalk(c, v, ctx, &encFlags,
		func(first bool, s *intern.String) {
			if !first {
				st.AppendU32(uint32(bytecode.CursorURI))
			}
			st.AppendString(s)
		},
		func(first bool, kwVal uint16) {
			st.AppendU32(uint32(kwVal))
		})
	if err != nil {
		st.Abandon()
		return nil, err
	}
	return st, nil
}
