package parse

import "github.com/zhuyadong/libcss/bytecode"

// bgPosComponent classifies one background-position component.
type bgPosComponent struct {
	horz, vert bool // keyword axis constraints
	kwHorz     uint16
	kwVert     uint16
	length     bytecode.Fixed
	unit       bytecode.Unit
	isLength   bool
}

func bgPosComponentAt(c *Context, v *TokenVector, ctx *int) (bgPosComponent, error) {
	tok := v.Peek(*ctx)
	if tok == nil {
		return bgPosComponent{}, ErrInvalid
	}

	if tok.Type == TokenIdent {
		var comp bgPosComponent
		switch {
		case c.is(tok, kwLeft):
			comp = bgPosComponent{horz: true, kwHorz: bytecode.BackgroundPositionHorzLeft}
		case c.is(tok, kwRight):
			comp = bgPosComponent{horz: true, kwHorz: bytecode.BackgroundPositionHorzRight}
		case c.is(tok, kwTop):
			comp = bgPosComponent{vert: true, kwVert: bytecode.BackgroundPositionVertTop}
		case c.is(tok, kwBottom):
			comp = bgPosComponent{vert: true, kwVert: bytecode.BackgroundPositionVertBottom}
		case c.is(tok, kwCenter):
			comp = bgPosComponent{
				horz: true, vert: true,
				kwHorz: bytecode.BackgroundPositionHorzCenter,
				kwVert: bytecode.BackgroundPositionVertCenter,
			}
		default:
			return bgPosComponent{}, ErrInvalid
		}
		v.Iterate(ctx)
		return comp, nil
	}

	length, unit, err := parseUnitSpecifier(c, v, ctx, bytecode.UnitPx)
	if err != nil {
		return bgPosComponent{}, err
	}
	if unit&(bytecode.UnitAngle|bytecode.UnitTime|bytecode.UnitFreq) != 0 {
		return bgPosComponent{}, ErrInvalid
	}
	return bgPosComponent{length: length, unit: unit, isLength: true}, nil
}

// parseBackgroundPosition handles one or two position components.
// Keywords may come in either order; lengths are horizontal first. A
// single component centers the other axis.
func parseBackgroundPosition(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Peek(*ctx)
	if tok == nil {
		return nil, ErrInvalid
	}

	var flags bytecode.Flag
	var value uint16
	var comps []bgPosComponent

	if c.isIdent(tok, kwInherit) {
		v.Iterate(ctx)
		flags = bytecode.FlagInherit
	} else {
		first, err := bgPosComponentAt(c, v, ctx)
		if err != nil {
			return nil, err
		}
		comps = append(comps, first)

		v.ConsumeWhitespace(ctx)
		if next := v.Peek(*ctx); next != nil && !next.IsChar('!') {
			second, err := bgPosComponentAt(c, v, ctx)
			if err != nil {
				return nil, err
			}
			comps = append(comps, second)
		}

		if len(comps) == 1 {
			comps = append(comps, bgPosComponent{
				horz: true, vert: true,
				kwHorz: bytecode.BackgroundPositionHorzCenter,
				kwVert: bytecode.BackgroundPositionVertCenter,
			})
		}

		// Keywords in vertical-first order swap; lengths are positional.
		h, vv := comps[0], comps[1]
		if !h.isLength && !vv.isLength {
			if !h.horz || !vv.vert {
				h, vv = vv, h
			}
			if !h.horz || !vv.vert {
				return nil, ErrInvalid
			}
		} else if h.isLength && !vv.isLength && !vv.vert {
			return nil, ErrInvalid
		} else if !h.isLength && vv.isLength && !h.horz {
			return nil, ErrInvalid
		}
		comps[0], comps[1] = h, vv

		if h.isLength {
			value |= bytecode.BackgroundPositionHorzSet
		} else {
			value |= h.kwHorz
		}
		if vv.isLength {
			value |= bytecode.BackgroundPositionVertSet
		} else {
			value |= vv.kwVert
		}
	}

	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	size := uint32(bytecode.SizeOPV)
	if flags&bytecode.FlagInherit == 0 {
		for _, comp := range comps {
			if comp.isLength {
				size += bytecode.SizeFixed + bytecode.SizeUnit
			}
		}
	}
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropBackgroundPosition, flags, value))
	if flags&bytecode.FlagInherit == 0 {
		for _, comp := range comps {
			if comp.isLength {
				st.AppendFixed(comp.length)
				st.AppendUnit(comp.unit)
			}
		}
	}
	return st, nil
}

// parseBorderSpacing handles one or two non-negative lengths. A single
// length applies to both axes; both pairs are always encoded.
func parseBorderSpacing(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Peek(*ctx)
	if tok == nil {
		return nil, ErrInvalid
	}

	var (
		flags  bytecode.Flag
		length [2]bytecode.Fixed
		unit   [2]bytecode.Unit
	)

	if c.isIdent(tok, kwInherit) {
		v.Iterate(ctx)
		flags = bytecode.FlagInherit
	} else {
		for i := 0; i < 2; i++ {
			length[i], unit[i], err = parseUnitSpecifier(c, v, ctx, bytecode.UnitPx)
			if err != nil {
				return nil, err
			}
			if unit[i]&(bytecode.UnitAngle|bytecode.UnitTime|
					bytecode.UnitFreq|bytecode.UnitPct) != 0 {
				return nil, ErrInvalid
			}
			if length[i] < 0 {
				return nil, ErrInvalid
			}
			if i == 0 {
				length[1], unit[1] = length[0], unit[0]
				v.ConsumeWhitespace(ctx)
				if next := v.Peek(*ctx); next == nil || next.IsChar('!') {
					break
				}
			}
		}
	}

	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	var value uint16
	size := uint32(bytecode.SizeOPV)
	if flags&bytecode.FlagInherit == 0 {
		value = bytecode.BorderSpacingSet
		size += 2 * (bytecode.SizeFixed + bytecode.SizeUnit)
	}
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropBorderSpacing, flags, value))
	if flags&bytecode.FlagInherit == 0 {
		for i := 0; i < 2; i++ {
			st.AppendFixed(length[i])
			st.AppendUnit(unit[i])
		}
	}
	return st, nil
}
