package parse

import "github.com/zhuyadong/libcss/bytecode"

// parseAzimuth handles angle | positional keywords with optional behind
// | leftwards | rightwards | inherit.
func parseAzimuth(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Peek(*ctx)
	if tok == nil {
		return nil, ErrInvalid
	}

	var (
		flags   bytecode.Flag
		value   uint16
		angle   bytecode.Fixed
		unit    bytecode.Unit
		payload bool
	)

	positional := []kwValue{
		{kwLeftSide, bytecode.AzimuthLeftSide},
		{kwFarLeft, bytecode.AzimuthFarLeft},
		{kwLeft, bytecode.AzimuthLeft},
		{kwCenterLeft, bytecode.AzimuthCenterLeft},
		{kwCenter, bytecode.AzimuthCenter},
		{kwCenterRight, bytecode.AzimuthCenterRight},
		{kwRight, bytecode.AzimuthRight},
		{kwFarRight, bytecode.AzimuthFarRight},
		{kwRightSide, bytecode.AzimuthRightSide},
	}

	switch {
	case c.isIdent(tok, kwInherit):
		v.Iterate(ctx)
		flags = bytecode.FlagInherit

	case c.isIdent(tok, kwLeftwards):
		v.Iterate(ctx)
		value = bytecode.AzimuthLeftwards
	case c.isIdent(tok, kwRightwards):
		v.Iterate(ctx)
		value = bytecode.AzimuthRightwards

	case tok.Type == TokenIdent:
		// [ positional || behind ], at most one of each, either order.
		havePos := false
		haveBehind := false
		pos := bytecode.AzimuthCenter
		for i := 0; i < 2; i++ {
			tok = v.Peek(*ctx)
			if tok == nil || tok.Type != TokenIdent {
				break
			}
			var kwVal uint16
			if c.is(tok, kwBehind) {
				if haveBehind {
					return nil, ErrInvalid
				}
				haveBehind = true
				v.Iterate(ctx)
			} else if matchKeyword(c, tok, positional, &kwVal) {
				if havePos {
					return nil, ErrInvalid
				}
				havePos = true
				pos = kwVal
				v.Iterate(ctx)
			} else if i == 0 {
				return nil, ErrInvalid
			} else {
				break
			}
			v.ConsumeWhitespace(ctx)
		}
		value = pos
		if haveBehind {
			value |= bytecode.AzimuthBehind
		}

	default:
		angle, unit, err = parseUnitSpecifier(c, v, ctx, bytecode.UnitDeg)
		if err != nil {
			return nil, err
		}
		if unit&bytecode.UnitAngle == 0 {
			return nil, ErrInvalid
		}
		value = bytecode.AzimuthAngle
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
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropAzimuth, flags, value))
	if flags&bytecode.FlagInherit == 0 && payload {
		st.AppendFixed(angle)
		st.AppendUnit(unit)
	}
	return st, nil
}

// dimensionGrammar describes keyword-or-dimension aural properties with
// a required unit class (angle for elevation, frequency for pitch, time
// or percentage for pauses).
type dimensionGrammar struct {
	prop           bytecode.PropertyID
	keywords       []kwValue
	setValue       uint16
	allowed        bytecode.Unit
	allowPct       bool
	rejectNegative bool
	defaultUnit    bytecode.Unit
}

func parseDimension(c *Context, v *TokenVector, ctx *int, g dimensionGrammar) (st *bytecode.Style, err error) {
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
		length, unit, err = parseUnitSpecifier(c, v, ctx, g.defaultUnit)
		if err != nil {
			return nil, err
		}
		ok := unit&g.allowed != 0 || (g.allowPct && unit == bytecode.UnitPct)
		if !ok {
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

func dimensionHandler(g dimensionGrammar) Handler {
	return func(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
		return parseDimension(c, v, ctx, g)
	}
}

var (
	parseElevation = dimensionHandler(dimensionGrammar{
		prop: bytecode.PropElevation,
		keywords: []kwValue{
			{kwBelow, bytecode.ElevationBelow},
			{kwLevel, bytecode.ElevationLevel},
			{kwAbove, bytecode.ElevationAbove},
			{kwHigher, bytecode.ElevationHigher},
			{kwLower, bytecode.ElevationLower},
		},
		setValue: bytecode.ElevationAngle, allowed: bytecode.UnitAngle,
		defaultUnit: bytecode.UnitDeg,
	})

	parsePitch = dimensionHandler(dimensionGrammar{
		prop: bytecode.PropPitch,
		keywords: []kwValue{
			{kwXLow, bytecode.PitchXLow},
			{kwLow, bytecode.PitchLow},
			{kwMedium, bytecode.PitchMedium},
			{kwHigh, bytecode.PitchHigh},
			{kwXHigh, bytecode.PitchXHigh},
		},
		setValue: bytecode.PitchFrequency, allowed: bytecode.UnitFreq,
		rejectNegative: true, defaultUnit: bytecode.UnitHz,
	})

	parsePauseAfter = dimensionHandler(dimensionGrammar{
		prop:     bytecode.PropPauseAfter,
		setValue: bytecode.PauseAfterSet, allowed: bytecode.UnitTime,
		allowPct: true, rejectNegative: true, defaultUnit: bytecode.UnitS,
	})
	parsePauseBefore = dimensionHandler(dimensionGrammar{
		prop:     bytecode.PropPauseBefore,
		setValue: bytecode.PauseBeforeSet, allowed: bytecode.UnitTime,
		allowPct: true, rejectNegative: true, defaultUnit: bytecode.UnitS,
	})
)

// parseNumberProp covers bare-number aural properties, optionally bounded
// to the 0..100 range.
func parseNumberProp(c *Context, v *TokenVector, ctx *int, prop bytecode.PropertyID, setValue uint16, bounded bool) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Peek(*ctx)
	if tok == nil {
		return nil, ErrInvalid
	}

	var (
		flags   bytecode.Flag
		value   uint16
		num     bytecode.Fixed
		payload bool
	)

	if c.isIdent(tok, kwInherit) {
		v.Iterate(ctx)
		flags = bytecode.FlagInherit
	} else if tok.Type == TokenNumber {
		data := tok.Lower.Data()
		var consumed int
		num, consumed = numberFromString(data, false)
		if consumed != len(data) {
			return nil, ErrInvalid
		}
		if bounded && (num < 0 || num > bytecode.FixedFromInt(100)) {
			return nil, ErrInvalid
		}
		v.Iterate(ctx)
		value = setValue
		payload = true
	} else {
		return nil, ErrInvalid
	}

	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
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

func parsePitchRange(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
	return parseNumberProp(c, v, ctx, bytecode.PropPitchRange, bytecode.PitchRangeSet, true)
}

func parseRichness(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
	return parseNumberProp(c, v, ctx, bytecode.PropRichness, bytecode.RichnessSet, true)
}

func parseStress(c *Context, v *TokenVector, ctx *int) (*bytecode.Style, error) {
	return parseNumberProp(c, v, ctx, bytecode.PropStress, bytecode.StressSet, true)
}

// parseSpeechRate handles number | rate keywords.
func parseSpeechRate(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Peek(*ctx)
	if tok == nil {
		return nil, ErrInvalid
	}

	rateKw := []kwValue{
		{kwXSlow, bytecode.SpeechRateXSlow},
		{kwSlow, bytecode.SpeechRateSlow},
		{kwMedium, bytecode.SpeechRateMedium},
		{kwFast, bytecode.SpeechRateFast},
		{kwXFast, bytecode.SpeechRateXFast},
		{kwFaster, bytecode.SpeechRateFaster},
		{kwSlower, bytecode.SpeechRateSlower},
	}

	var (
		flags   bytecode.Flag
		value   uint16
		num     bytecode.Fixed
		payload bool
	)

	switch {
	case c.isIdent(tok, kwInherit):
		v.Iterate(ctx)
		flags = bytecode.FlagInherit
	case tok.Type == TokenIdent && matchKeyword(c, tok, rateKw, &value):
		v.Iterate(ctx)
	case tok.Type == TokenNumber:
		data := tok.Lower.Data()
		var consumed int
		num, consumed = numberFromString(data, false)
		if consumed != len(data) || num < 0 {
			return nil, ErrInvalid
		}
		v.Iterate(ctx)
		value = bytecode.SpeechRateSet
		payload = true
	default:
		return nil, ErrInvalid
	}

	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	size := uint32(bytecode.SizeOPV)
	if flags&bytecode.FlagInherit == 0 && payload {
		size += bytecode.SizeFixed
	}
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropSpeechRate, flags, value))
	if flags&bytecode.FlagInherit == 0 && payload {
		st.AppendFixed(num)
	}
	return st, nil
}

// parseVolume handles number | percentage | volume keywords.
func parseVolume(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Peek(*ctx)
	if tok == nil {
		return nil, ErrInvalid
	}

	volumeKw := []kwValue{
		{kwSilent, bytecode.VolumeSilent},
		{kwXSoft, bytecode.VolumeXSoft},
		{kwSoft, bytecode.VolumeSoft},
		{kwMedium, bytecode.VolumeMedium},
		{kwLoud, bytecode.VolumeLoud},
		{kwXLoud, bytecode.VolumeXLoud},
	}

	var (
		flags  bytecode.Flag
		value  uint16
		num    bytecode.Fixed
		unit   bytecode.Unit
		hasNum bool
		hasDim bool
	)

	switch {
	case c.isIdent(tok, kwInherit):
		v.Iterate(ctx)
		flags = bytecode.FlagInherit
	case tok.Type == TokenIdent && matchKeyword(c, tok, volumeKw, &value):
		v.Iterate(ctx)
	case tok.Type == TokenNumber:
		data := tok.Lower.Data()
		var consumed int
		num, consumed = numberFromString(data, false)
		if consumed != len(data) || num < 0 || num > bytecode.FixedFromInt(100) {
			return nil, ErrInvalid
		}
		v.Iterate(ctx)
		value = bytecode.VolumeNumber
		hasNum = true
	default:
		num, unit, err = parseUnitSpecifier(c, v, ctx, bytecode.UnitPct)
		if err != nil {
			return nil, err
		}
		if unit != bytecode.UnitPct || num < 0 {
			return nil, ErrInvalid
		}
		value = bytecode.VolumeDimension
		hasDim = true
	}

	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	size := uint32(bytecode.SizeOPV)
	if flags&bytecode.FlagInherit == 0 {
		if hasNum {
			size += bytecode.SizeFixed
		} else if hasDim {
			size += bytecode.SizeFixed + bytecode.SizeUnit
		}
	}
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropVolume, flags, value))
	if flags&bytecode.FlagInherit == 0 {
		if hasNum {
			st.AppendFixed(num)
		} else if hasDim {
			st.AppendFixed(num)
			st.AppendUnit(unit)
		}
	}
	return st, nil
}

// parsePlayDuring handles uri [mix || repeat]? | auto | none | inherit.
func parsePlayDuring(c *Context, v *TokenVector, ctx *int) (st *bytecode.Style, err error) {
	orig := *ctx
	defer restoreOnError(ctx, orig, &err)

	tok := v.Iterate(ctx)
	if tok == nil {
		return nil, ErrInvalid
	}

	var flags bytecode.Flag
	var value uint16

	switch {
	case c.isIdent(tok, kwInherit):
		flags = bytecode.FlagInherit
	case c.isIdent(tok, kwAuto):
		value = bytecode.PlayDuringAuto
	case c.isIdent(tok, kwNone):
		value = bytecode.PlayDuringNone
	case tok.Type == TokenURI:
		value = bytecode.PlayDuringURI
		for i := 0; i < 2; i++ {
			v.ConsumeWhitespace(ctx)
			next := v.Peek(*ctx)
			if next == nil || next.Type != TokenIdent {
				break
			}
			switch {
			case c.is(next, kwMix):
				if value&bytecode.PlayDuringMix != 0 {
					return nil, ErrInvalid
				}
				value |= bytecode.PlayDuringMix
			case c.is(next, kwRepeat):
				if value&bytecode.PlayDuringRepeat != 0 {
					return nil, ErrInvalid
				}
				value |= bytecode.PlayDuringRepeat
			default:
				return nil, ErrInvalid
			}
			v.Iterate(ctx)
		}
	default:
		return nil, ErrInvalid
	}

	if err := parseImportant(c, v, ctx, &flags); err != nil {
		return nil, err
	}

	uri := flags&bytecode.FlagInherit == 0 && value&bytecode.PlayDuringURI != 0
	size := uint32(bytecode.SizeOPV)
	if uri {
		size += bytecode.SizeString
	}
	st, err = c.Sheet.CreateStyle(size)
	if err != nil {
		return nil, err
	}
	st.AppendOPV(bytecode.BuildOPV(bytecode.PropPlayDuring, flags, value))
	if uri {
		st.AppendString(tok.Value)
	}
	return st, nil
}
