package bytecode

// Fixed is a 32-bit signed fixed-point number with 10 fractional bits,
// used for all lengths and numeric property values.
type Fixed int32

const fracBits = 10

// FixedFromInt converts an integer to fixed point.
func FixedFromInt(i int32) Fixed { return Fixed(i << fracBits) }

// FixedFromFloat converts a float to fixed point, truncating toward zero.
func FixedFromFloat(f float64) Fixed { return Fixed(f * (1 << fracBits)) }

// Int returns the integer part, rounding toward negative infinity.
func (f Fixed) Int() int32 { return int32(f) >> fracBits }

// Float64 converts to a float.
func (f Fixed) Float64() float64 { return float64(f) / (1 << fracBits) }
