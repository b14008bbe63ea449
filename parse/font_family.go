package parse

import (
	"strings"

	"github.com/zhuyadong/libcss/bytecode"
	"github.com/zhuyadong/libcss/intern"
)

// familyGrammar configures the shared comma-list walk for font-family
// and voice-family: the reserved generic keywords and the codes for
// string and ident-sequence items.
type familyGrammar struct {
	prop      bytecode.PropertyID
	reserved  []kwValue
	stringVal uint16
	identVal  uint16
	endVal    uint16
}

var fontFamilyGrammar = familyGrammar{
	prop: bytecode.PropFontFamily,
	reserved: []kwValue{
		{kwSerif, bytecode.FontFamilySerif},
		{kwSansSerif, bytecode.FontFamilySansSerif},
		{kwCursive, bytecode.FontFamilyCursive},
		{kwFantasy, bytecode.FontFamilyFantasy},
		{kwMonospace, bytecode.FontFamilyMonospace},
	},
	stringVal: bytecode.FontFamilyString,
	identVal:  bytecode.FontFamilyIdentList,
	endVal:    bytecode.FontFamilyEnd,
}

var voiceFamilyGrammar = familyGrammar{
	prop: bytecode.PropVoiceFamily,
	reserved: []kwValue{
		{kwMale, bytecode.VoiceFamilyMale},
		{kwFemale, bytecode.VoiceFamilyFemale},
		{kwChild, bytecode.VoiceFamilyChild},
	},
	stringVal: bytecode.VoiceFamilyString,
	identVal:  bytecode.VoiceFamilyIdentList,
	endVal:    bytecode.VoiceFamilyEnd,
}

// familyWalk consumes a comma-separated list of family names. Each item
// is a STRING, a reserved generic keyword, or a sequence of IDENTs which
// joins into one name with single spaces. emit receives each item; make
// is non-nil for items carrying a name and interns it on demand, so the
// sizing pass never materializes strings.
func familyWalk(c *Context, v *TokenVector, ctx *int, g familyGrammar, flags *bytecode.Flag,
	emit func(first bool, kind uint16, make func() *intern.String)) error {

	first := true
	for {
		tok := v.Iterate(ctx)
		if tok == nil || (tok.Type != TokenIdent && tok.Type != TokenString) {
			return ErrInvalid
		}

		if first && tok.Type == TokenIdent && c.is(tok, kwInherit) {
			*flags |= bytecode.FlagInherit
			return parseImportant(c, v, ctx, flags)
		}

		var kind uint16
		var mk func() *intern.String
		if tok.Type == TokenString {
			kind = g.stringVal
			s := tok.Value
			mk = func() *intern.String { return s }
		} else {
			names := []string{tok.Value.Data()}
			for {
				next := v.Peek(*ctx)
				if next != nil && next.Type == TokenWhitespace {
					if after := v.Peek(*ctx + 1); after != nil && after.Type == TokenIdent {
						v.Iterate(ctx)
						names = append(names, v.Iterate(ctx).Value.Data())
						continue
					}
				}
				break
			}
			if len(names) == 1 && matchKeyword(c, tok, g.reserved, &kind) {
				mk = nil
			} else {
				kind = g.identVal
				joined := strings.Join(names, " ")
				mk = func() *intern.String { return intern.Intern(joined) }
			}
		}

		emit(first, kind, mk)
		first = false

		v.ConsumeWhitespace(ctx)
		next := v.Peek(*ctx)
		if next == nil || next.IsChar('!') {
			return parseImportant(c, v, ctx, flags)
		}
		if !next.IsChar(',') {
			return ErrInvalid
		}
		v.Iterate(ctx)
		v.ConsumeWhitespace(ctx)
	}
}

func parseFamilyList(c *Context, v *TokenVector, ctx *int, g familyGrammar) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	// Pass 1: validate and size.
	temp := orig
	var flags bytecode.Flag
	var value uint16
	size := uint32(bytecode.SizeOPV)
	err = familyWalk(c, v, &temp, g, &flags,
		func(first bool, kind uint16, mk func() *intern.String) {
			if first {
				value = kind
			} else {
				size += bytecode.SizeU32
			}
			if mk != nil {
				size += bytecode.SizeString
			}
		})
	if err != nil {
		return nil, err
	}
	if flags&bytecode.FlagInherit == 0 {
		size += bytecode.SizeU32 // terminator
	}

	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(g.prop, flags, value))

	if flags&bytecode.FlagInherit != 0 {
		*ctx = temp
		return st, nil
	}

	// Pass 2: encode.
	var encFlags bytecode.Flag
	err = familyWalk(c, v, ctx, g, &encFlags,
		func(first bool, kind uint16, mk func() *intern.String) {
			if !first {
				st.AppendU32(uint32(kind))
			}
			if mk != nil {
				st.AppendString(mk())
			}
		})
	if err != nil {
		st.Abandon()
		return nil, err
	}
	st.AppendU32(uint32(g.endVal))
	return st, nil
}

func parseFontFamily(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
	return parseFamilyList(c, v, ctx, fontFamilyGrammar)
}

func parseVoiceFamily(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
	return parseFamilyList(c, v, ctx, voiceFamilyGrammar)
}
