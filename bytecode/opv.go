// Package bytecode defines the compact intermediate form shared by the
// property parsers and the cascade. Every declaration becomes one entry in
// a style buffer: a 32-bit OPV header optionally followed by payload words
// whose shape is dictated by the OPV's value field. The parsers write this
// layout and the cascade reads it back; the two sides agree only through
// the constants and accessors in this package.
package bytecode

// Flag bits carried in an OPV.
type Flag uint8

const (
	FlagInherit   Flag = 1 << 0
	FlagImportant Flag = 1 << 1
)

// OPV is the Opcode-Plus-Value header introducing every bytecode entry.
//
// Physical layout: opcode in bits 0..9, flags in bits 10..17, value in
// bits 18..31. The accessors below are the sole consumers of this layout;
// nothing else may mask or shift an OPV directly.
type OPV uint32

// BuildOPV packs a property opcode, flags and a property-local value.
func BuildOPV(op PropertyID, flags Flag, value uint16) OPV {
	return OPV(uint32(op)&0x3ff | uint32(flags)<<10 | uint32(value)<<18)
}

// Opcode returns the property id the entry belongs to.
func (o OPV) Opcode() PropertyID { return PropertyID(o & 0x3ff) }

// Flags returns the flag byte.
func (o OPV) Flags() Flag { return Flag(o >> 10) }

// Value returns the property-local value field. When the inherit flag is
// set the value is meaningless and no payload follows.
func (o OPV) Value() uint16 { return uint16(o >> 18) }

// Inherit reports whether the entry takes the parent's value.
func (o OPV) Inherit() bool { return o.Flags()&FlagInherit != 0 }

// Important reports whether the declaration carried !important.
func (o OPV) Important() bool { return o.Flags()&FlagImportant != 0 }
