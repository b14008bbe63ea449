package cascade

import (
	"github.com/zhuyadong/libcss/bytecode"
	"github.com/zhuyadong/libcss/intern"
)

// Typed setter signatures the generic helpers are parameterized by.
type enumSetter func(*ComputedStyle, uint8) error
type colourSetter func(*ComputedStyle, uint8, bytecode.Color) error
type uriSetter func(*ComputedStyle, uint8, *intern.String) error
type lengthSetter func(*ComputedStyle, uint8, bytecode.Fixed, Unit) error
type numberSetter func(*ComputedStyle, uint8, bytecode.Fixed) error
type counterSetter func(*ComputedStyle, uint8, []Counter) error

// Each helper decodes one entry's payload, leaving the cursor exactly
// past the entry whether or not the declaration wins, and invokes the
// setter only when outranksExisting says the declaration is the new
// winner.

// cascadeEnum handles pure keyword properties whose public state is the
// bytecode value plus one.
func cascadeEnum(opv bytecode.OPV, state *State, fun enumSetter) error {
	value := uint8(0)
	if !opv.Inherit() {
		value = enumState(opv.Value())
	}
	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return fun(state.Result, value)
	}
	return nil
}

// cascadeBgBorderColor handles the transparent-or-colour shape shared
// by background-color and the border colours.
func cascadeBgBorderColor(opv bytecode.OPV, cur *bytecode.Cursor, state *State, fun colourSetter) error {
	value := ColourInherit
	var colour bytecode.Color

	if !opv.Inherit() {
		switch opv.Value() {
		case bytecode.BackgroundColorTransparent:
			value = ColourTransparent
		case bytecode.BackgroundColorSet:
			value = ColourSet
			colour = cur.ReadColor()
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return fun(state.Result, value, colour)
	}
	return nil
}

// cascadeURINone handles the none-or-URI shape (background-image,
// list-style-image, cue-*).
func cascadeURINone(opv bytecode.OPV, cur *bytecode.Cursor, state *State, fun uriSetter) error {
	value := URIInherit
	var uri *intern.String

	if !opv.Inherit() {
		switch opv.Value() {
		case bytecode.BackgroundImageNone:
			value = URINone
		case bytecode.BackgroundImageURI:
			value = URISet
			uri = cur.ReadString()
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return fun(state.Result, value, uri)
	}
	return nil
}

// cascadeBorderStyle handles the border and outline style enums.
func cascadeBorderStyle(opv bytecode.OPV, state *State, fun enumSetter) error {
	return cascadeEnum(opv, state, fun)
}

// cascadeBorderWidth handles thin/medium/thick or an explicit width.
func cascadeBorderWidth(opv bytecode.OPV, cur *bytecode.Cursor, state *State, fun lengthSetter) error {
	value := BorderWidthInherit
	var length bytecode.Fixed
	unit := bytecode.UnitPx

	if !opv.Inherit() {
		switch opv.Value() {
		case bytecode.BorderWidthSet:
			value = BorderWidthWidth
			length = cur.ReadFixed()
			unit = cur.ReadUnit()
		case bytecode.BorderWidthThin:
			value = BorderWidthThin
		case bytecode.BorderWidthMedium:
			value = BorderWidthMedium
		case bytecode.BorderWidthThick:
			value = BorderWidthThick
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return fun(state.Result, value, length, UnitFromBytecode(unit))
	}
	return nil
}

// cascadeLengthSentinel handles length-or-keyword shapes. sentinel is
// the public state for the keyword alternative (auto, normal or none);
// the bytecode keyword value is always zero in these grammars.
func cascadeLengthSentinel(opv bytecode.OPV, cur *bytecode.Cursor, state *State, sentinel uint8, fun lengthSetter) error {
	value := LengthInherit
	var length bytecode.Fixed
	unit := bytecode.UnitPx

	if !opv.Inherit() {
		if opv.Value()&0x80 != 0 {
			value = LengthSet
			length = cur.ReadFixed()
			unit = cur.ReadUnit()
		} else {
			value = sentinel
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return fun(state.Result, value, length, UnitFromBytecode(unit))
	}
	return nil
}

func cascadeLengthAuto(opv bytecode.OPV, cur *bytecode.Cursor, state *State, fun lengthSetter) error {
	return cascadeLengthSentinel(opv, cur, state, LengthAuto, fun)
}

func cascadeLengthNormal(opv bytecode.OPV, cur *bytecode.Cursor, state *State, fun lengthSetter) error {
	return cascadeLengthSentinel(opv, cur, state, LengthNormal, fun)
}

func cascadeLengthNone(opv bytecode.OPV, cur *bytecode.Cursor, state *State, fun lengthSetter) error {
	return cascadeLengthSentinel(opv, cur, state, LengthNone, fun)
}

// cascadeLength handles lengths with no keyword alternative (min-*,
// paddings, text-indent).
func cascadeLength(opv bytecode.OPV, cur *bytecode.Cursor, state *State, fun lengthSetter) error {
	value := LengthInherit
	var length bytecode.Fixed
	unit := bytecode.UnitPx

	if !opv.Inherit() {
		value = LengthSet
		length = cur.ReadFixed()
		unit = cur.ReadUnit()
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return fun(state.Result, value, length, UnitFromBytecode(unit))
	}
	return nil
}

// cascadeNumber handles bare fixed-point payloads.
func cascadeNumber(opv bytecode.OPV, cur *bytecode.Cursor, state *State, fun numberSetter) error {
	value := NumberInherit
	var num bytecode.Fixed

	if !opv.Inherit() {
		value = NumberSet
		num = cur.ReadFixed()
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return fun(state.Result, value, num)
	}
	return nil
}

// cascadeKeywordOrLength handles grammars with several keywords plus a
// payload-bearing form: keyword states are the bytecode value plus one,
// the payload form maps to set.
func cascadeKeywordOrLength(opv bytecode.OPV, cur *bytecode.Cursor, state *State, set uint8, fun lengthSetter) error {
	value := uint8(0)
	var length bytecode.Fixed
	unit := bytecode.UnitPx

	if !opv.Inherit() {
		if opv.Value()&0x80 != 0 {
			value = set
			length = cur.ReadFixed()
			unit = cur.ReadUnit()
		} else {
			value = enumState(opv.Value())
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return fun(state.Result, value, length, UnitFromBytecode(unit))
	}
	return nil
}

// cascadeKeywordOrNumber is the bare-number analogue (z-index,
// speech-rate).
func cascadeKeywordOrNumber(opv bytecode.OPV, cur *bytecode.Cursor, state *State, set uint8, fun numberSetter) error {
	value := uint8(0)
	var num bytecode.Fixed

	if !opv.Inherit() {
		if opv.Value()&0x80 != 0 {
			value = set
			num = cur.ReadFixed()
		} else {
			value = enumState(opv.Value())
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return fun(state.Result, value, num)
	}
	return nil
}

// cascadeOutlineColor maps the invert-or-colour shape.
func cascadeOutlineColor(opv bytecode.OPV, cur *bytecode.Cursor, state *State, fun colourSetter) error {
	value := ColourInherit
	var colour bytecode.Color

	if !opv.Inherit() {
		switch opv.Value() {
		case bytecode.OutlineColorInvert:
			value = ColourInvert
		case bytecode.OutlineColorSet:
			value = ColourSet
			colour = cur.ReadColor()
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return fun(state.Result, value, colour)
	}
	return nil
}

// cascadeCounterIncrementReset handles the variable-length counter
// lists. The list is always decoded (the cursor must pass the entry);
// the allocator bounds the computed copy, and a partial copy is
// released on failure.
func cascadeCounterIncrementReset(opv bytecode.OPV, cur *bytecode.Cursor, state *State, fun counterSetter) error {
	value := CounterInherit
	var counters []Counter

	release := func() {
		state.Alloc.Release(len(counters) * counterItemSize)
		counters = nil
	}

	if !opv.Inherit() {
		switch opv.Value() {
		case bytecode.CounterIncrementNamed:
			v := uint32(bytecode.CounterIncrementNamed)
			for v != uint32(bytecode.CounterIncrementNone) {
				name := cur.ReadString()
				val := cur.ReadFixed()

				if err := state.Alloc.Reserve(counterItemSize); err != nil {
					release()
					return ErrNomem
				}
				counters = append(counters, Counter{Name: name, Value: val})

				v = cur.ReadU32()
			}
			value = CounterNamed
		case bytecode.CounterIncrementNone:
			value = CounterNone
		}
	}

	// Terminate with a blank entry.
	if len(counters) > 0 {
		if err := state.Alloc.Reserve(counterItemSize); err != nil {
			release()
			return ErrNomem
		}
		counters = append(counters, Counter{})
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		err := fun(state.Result, value, counters)
		if err != nil && len(counters) > 0 {
			release()
		}
		return err
	} else if len(counters) > 0 {
		release()
	}
	return nil
}

// counterItemSize approximates one list slot for allocator accounting.
const counterItemSize = 16

// contentItemSize approximates one content slot.
const contentItemSize = 24
