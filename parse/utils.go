package parse

import (
	"math"

	"github.com/zhuyadong/libcss/bytecode"
)

// numberFromString converts the leading numeric portion of s into fixed
// point, returning the number of bytes consumed. Zero consumed means no
// number was present. intOnly stops at a decimal point.
func numberFromString(s string, intOnly bool) (bytecode.Fixed, int) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	digits := 0
	var intPart int64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		intPart = intPart*10 + int64(s[i]-'0')
		if intPart > 1<<21 {
			intPart = 1 << 21
		}
		i++
		digits++
	}

	var fracPart int64
	if !intOnly && i < len(s) && s[i] == '.' && i+1 < len(s) &&
			s[i+1] >= '0' && s[i+1] <= '9' {
		i++
		pow := int64(1)
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			if pow < 1000000 {
				fracPart = fracPart*10 + int64(s[i]-'0')
				pow *= 10
			}
			i++
			digits++
		}
		fracPart = fracPart * 1024 / pow
	}

	if digits == 0 {
		return 0, 0
	}

	value := intPart<<10 + fracPart
	if neg {
		value = -value
	}
	if value > math.MaxInt32 {
		value = math.MaxInt32
	} else if value < math.MinInt32 {
		value = math.MinInt32
	}
	return bytecode.Fixed(value), i
}

// parseImportant consumes an optional trailing "!important", setting the
// importance flag. A bare or misspelled "!" suffix is invalid.
func parseImportant(c *Context, v *TokenVector, ctx *int, flags *bytecode.Flag) error {
	v.ConsumeWhitespace(ctx)

	tok := v.Peek(*ctx)
	if tok == nil || !tok.IsChar('!') {
		return nil
	}
	v.Iterate(ctx)
	v.ConsumeWhitespace(ctx)

	tok = v.Iterate(ctx)
	if tok == nil || tok.Type != TokenIdent || !c.is(tok, kwImportant) {
		return ErrInvalid
	}
	*flags |= bytecode.FlagImportant
	return nil
}

// expectImportantOrEnd requires the remaining tokens to be either
// nothing or a valid "!important". List parsers use it so their sizing
// and emission passes agree on where a list ends.
func expectImportantOrEnd(c *Context, v *TokenVector, ctx *int, flags *bytecode.Flag) error {
	v.ConsumeWhitespace(ctx)
	if tok := v.Peek(*ctx); tok != nil && !tok.IsChar('!') {
		return ErrInvalid
	}
	return parseImportant(c, v, ctx, flags)
}

var unitSuffixes = map[string]bytecode.Unit{
	"px":   bytecode.UnitPx,
	"ex":   bytecode.UnitEx,
	"em":   bytecode.UnitEm,
	"in":   bytecode.UnitIn,
	"cm":   bytecode.UnitCm,
	"mm":   bytecode.UnitMm,
	"pt":   bytecode.UnitPt,
	"pc":   bytecode.UnitPc,
	"deg":  bytecode.UnitDeg,
	"grad": bytecode.UnitGrad,
	"rad":  bytecode.UnitRad,
	"ms":   bytecode.UnitMs,
	"s":    bytecode.UnitS,
	"hz":   bytecode.UnitHz,
	"khz":  bytecode.UnitKhz,
}

// parseUnitSpecifier consumes a dimension, percentage or zero-valued
// number token and returns its fixed-point value and unit mask. Non-zero
// bare numbers are rejected; length contexts require a unit.
func parseUnitSpecifier(c *Context, v *TokenVector, ctx *int, defaultUnit bytecode.Unit) (bytecode.Fixed, bytecode.Unit, error) {
	tok := v.Iterate(ctx)
	if tok == nil {
		return 0, 0, ErrInvalid
	}

	switch tok.Type {
	case TokenDimension:
		data := tok.Lower.Data()
		num, consumed := numberFromString(data, false)
		if consumed == 0 || consumed == len(data) {
			return 0, 0, ErrInvalid
		}
		unit, ok := unitSuffixes[data[consumed:]]
		if !ok {
			return 0, 0, ErrInvalid
		}
		return num, unit, nil

	case TokenNumber:
		data := tok.Lower.Data()
		num, consumed := numberFromString(data, false)
		if consumed != len(data) || num != 0 {
			return 0, 0, ErrInvalid
		}
		return num, defaultUnit, nil

	case TokenPercentage:
		data := tok.Lower.Data()
		num, consumed := numberFromString(data, false)
		if consumed != len(data) {
			return 0, 0, ErrInvalid
		}
		return num, bytecode.UnitPct, nil
	}

	return 0, 0, ErrInvalid
}

func hexVal(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}

// parseColourSpecifier consumes a colour: a named colour ident, a 3- or
// 6-digit hash, or an rgb() function with three integers or three
// percentages.
func parseColourSpecifier(c *Context, v *TokenVector, ctx *int) (bytecode.Color, error) {
	v.ConsumeWhitespace(ctx)

	tok := v.Iterate(ctx)
	if tok == nil {
		return 0, ErrInvalid
	}

	switch tok.Type {
	case TokenIdent:
		col, ok := namedColors[tok.Lower.Data()]
		if !ok {
			return 0, ErrInvalid
		}
		return col, nil

	case TokenHash:
		data := tok.Lower.Data()
		var r, g, b uint8
		switch len(data) {
		case 3:
			for i, p := range []*uint8{&r, &g, &b} {
				n, ok := hexVal(data[i])
				if !ok {
					return 0, ErrInvalid
				}
				*p = n<<4 | n
			}
		case 6:
			for i, p := range []*uint8{&r, &g, &b} {
				hi, ok1 := hexVal(data[i*2])
				lo, ok2 := hexVal(data[i*2+1])
				if !ok1 || !ok2 {
					return 0, ErrInvalid
				}
				*p = hi<<4 | lo
			}
		default:
			return 0, ErrInvalid
		}
		return bytecode.MakeColor(r, g, b, 0xff), nil

	case TokenFunction:
		if tok.Lower != c.strings[kwRGB] {
			return 0, ErrInvalid
		}
		var channels [3]uint8
		pct := false
		for i := 0; i < 3; i++ {
			v.ConsumeWhitespace(ctx)
			t := v.Iterate(ctx)
			if t == nil {
				return 0, ErrInvalid
			}
			if i == 0 {
				pct = t.Type == TokenPercentage
			}
			var val int32
			switch {
			case !pct && t.Type == TokenNumber:
				num, consumed := numberFromString(t.Lower.Data(), true)
				if consumed != len(t.Lower.Data()) {
					return 0, ErrInvalid
				}
				val = num.Int()
			case pct && t.Type == TokenPercentage:
				num, consumed := numberFromString(t.Lower.Data(), false)
				if consumed != len(t.Lower.Data()) {
					return 0, ErrInvalid
				}
				val = int32(int64(num) * 255 / 100 >> 10)
			default:
				return 0, ErrInvalid
			}
			if val < 0 {
				val = 0
			} else if val > 255 {
				val = 255
			}
			channels[i] = uint8(val)

			v.ConsumeWhitespace(ctx)
			if i < 2 {
				t = v.Iterate(ctx)
				if !t.IsChar(',') {
					return 0, ErrInvalid
				}
			}
		}
		t := v.Iterate(ctx)
		if !t.IsChar(')') {
			return 0, ErrInvalid
		}
		return bytecode.MakeColor(channels[0], channels[1], channels[2], 0xff), nil
	}

	return 0, ErrInvalid
}
