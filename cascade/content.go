package cascade

import (
	"github.com/zhuyadong/libcss/bytecode"
	"github.com/zhuyadong/libcss/intern"
)

// contentItemType maps a bytecode content kind to the public type.
func contentItemType(kind uint16) ContentItemType {
	switch kind {
	case bytecode.ContentString:
		return ContentItemString
	case bytecode.ContentURI:
		return ContentItemURI
	case bytecode.ContentCounter:
		return ContentItemCounter
	case bytecode.ContentCounters:
		return ContentItemCounters
	case bytecode.ContentAttr:
		return ContentItemAttr
	case bytecode.ContentOpenQuote:
		return ContentItemOpenQuote
	case bytecode.ContentCloseQuote:
		return ContentItemCloseQuote
	case bytecode.ContentNoOpenQuote:
		return ContentItemNoOpenQuote
	case bytecode.ContentNoCloseQuote:
		return ContentItemNoCloseQuote
	}
	return ContentItemEnd
}

// cascadeContent decodes the heterogeneous content list. The entry is
// always fully consumed; the computed copy goes through the allocator
// and is released if a later step fails.
func cascadeContent(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	value := ContentInherit
	var items []ContentItem

	release := func() {
		state.Alloc.Release(len(items) * contentItemSize)
		items = nil
	}

	if !opv.Inherit() {
		v := uint32(opv.Value())

		switch v {
		case uint32(bytecode.ContentNormal):
			value = ContentNormal
		case uint32(bytecode.ContentNone):
			value = ContentNone
		default:
			value = ContentSet

			for v != uint32(bytecode.ContentNormal) {
				kind := uint16(v) & bytecode.ContentKindMask
				style := uint16(v) >> bytecode.ContentStyleShift

				item := ContentItem{Type: contentItemType(kind), Style: style}
				switch kind {
				case bytecode.ContentCounter, bytecode.ContentString,
					bytecode.ContentURI, bytecode.ContentAttr:
					item.Data = cur.ReadString()
				case bytecode.ContentCounters:
					item.Data = cur.ReadString()
					item.Sep = cur.ReadString()
				}

				if err := state.Alloc.Reserve(contentItemSize); err != nil {
					release()
					return ErrNomem
				}
				items = append(items, item)

				v = cur.ReadU32()
			}
		}
	}

	// Terminate with a blank entry.
	if len(items) > 0 {
		if err := state.Alloc.Reserve(contentItemSize); err != nil {
			release()
			return ErrNomem
		}
		items = append(items, ContentItem{Type: ContentItemEnd})
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		err := state.Result.SetContent(value, items)
		if err != nil && len(items) > 0 {
			release()
		}
		return err
	} else if len(items) > 0 {
		release()
	}
	return nil
}

// cascadeCursor decodes the URI list and the terminating keyword. The
// public state is the keyword's enum state; the URI list accompanies
// it.
func cascadeCursor(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	value := uint8(0)
	var uris []*intern.String

	release := func() {
		state.Alloc.Release(len(uris) * stringSlotSize)
		uris = nil
	}

	if !opv.Inherit() {
		v := opv.Value()
		for v == bytecode.CursorURI {
			uri := cur.ReadString()
			if err := state.Alloc.Reserve(stringSlotSize); err != nil {
				release()
				return ErrNomem
			}
			uris = append(uris, uri)

			v = uint16(cur.ReadU32())
		}
		value = enumState(v)
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		err := state.Result.SetCursor(value, uris)
		if err != nil && len(uris) > 0 {
			release()
		}
		return err
	} else if len(uris) > 0 {
		release()
	}
	return nil
}

// cascadeQuotes decodes the string-pair list.
func cascadeQuotes(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	value := QuotesInherit
	var pairs []*intern.String

	release := func() {
		state.Alloc.Release(len(pairs) * stringSlotSize)
		pairs = nil
	}

	if !opv.Inherit() {
		switch opv.Value() {
		case bytecode.QuotesString:
			v := uint32(bytecode.QuotesString)
			for v != uint32(bytecode.QuotesNone) {
				open := cur.ReadString()
				cl := cur.ReadString()

				if err := state.Alloc.Reserve(2 * stringSlotSize); err != nil {
					release()
					return ErrNomem
				}
				pairs = append(pairs, open, cl)

				v = cur.ReadU32()
			}
			value = QuotesString
		case bytecode.QuotesNone:
			value = QuotesNone
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		err := state.Result.SetQuotes(value, pairs)
		if err != nil && len(pairs) > 0 {
			release()
		}
		return err
	} else if len(pairs) > 0 {
		release()
	}
	return nil
}

// familyListSetter is the computed sink for font-family/voice-family.
type familyListSetter func(*ComputedStyle, uint8, []*intern.String) error

// cascadeFamilyList decodes a family-name list. The public state is the
// first generic family encountered, Named when only literal names
// appear.
func cascadeFamilyList(opv bytecode.OPV, cur *bytecode.Cursor, state *State,
	stringVal, identVal uint16, generic func(uint16) uint8, named uint8,
	fun familyListSetter) error {

	value := uint8(0)
	var names []*intern.String

	release := func() {
		state.Alloc.Release(len(names) * stringSlotSize)
		names = nil
	}

	if !opv.Inherit() {
		v := opv.Value()
		for {
			if v == stringVal || v == identVal {
				name := cur.ReadString()
				if err := state.Alloc.Reserve(stringSlotSize); err != nil {
					release()
					return ErrNomem
				}
				names = append(names, name)
			} else if g := generic(v); g != 0 && value == 0 {
				value = g
			}

			v = uint16(cur.ReadU32())
			if v == 0 { // terminator
				break
			}
		}
		if value == 0 {
			value = named
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		err := fun(state.Result, value, names)
		if err != nil && len(names) > 0 {
			release()
		}
		return err
	} else if len(names) > 0 {
		release()
	}
	return nil
}

// stringSlotSize approximates one retained handle for allocator
// accounting.
const stringSlotSize = 8
