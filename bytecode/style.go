package bytecode

import (
	"encoding/binary"

	"github.com/zhuyadong/libcss/intern"
)

// Sizes in octets of the payload word kinds. String handles occupy a
// pointer-width slot.
const (
	SizeOPV    = 4
	SizeFixed  = 4
	SizeUnit   = 4
	SizeColor  = 4
	SizeU32    = 4
	SizeString = 8
)

// Style is one property's bytecode: an OPV followed by payload words,
// concatenated with no padding, little-endian. The buffer is append-only
// during construction and sized up front, so a parser that miscounts its
// two-pass sizing fails loudly instead of corrupting a neighbour.
//
// Interned strings referenced from the buffer are recorded in a side
// table; the buffer itself carries a pointer-width index into that table.
// One reference is held per occurrence and released by the destructors.
type Style struct {
	buf     []byte
	strings []*intern.String
}

// NewStyle creates a style buffer with capacity for exactly size octets.
func NewStyle(size uint32) *Style {
	return &Style{buf: make([]byte, 0, size)}
}

// Size returns the number of octets written so far.
func (s *Style) Size() uint32 { return uint32(len(s.buf)) }

// Bytes exposes the encoded entry.
func (s *Style) Bytes() []byte { return s.buf }

func (s *Style) grow(n int) []byte {
	if len(s.buf)+n > cap(s.buf) {
		panic("bytecode: style buffer overrun")
	}
	s.buf = s.buf[:len(s.buf)+n]
	return s.buf[len(s.buf)-n:]
}

// AppendOPV writes an entry header or an inline list tag.
func (s *Style) AppendOPV(o OPV) {
	binary.LittleEndian.PutUint32(s.grow(SizeOPV), uint32(o))
}

// AppendU32 writes a bare 32-bit word (list continuation tags).
func (s *Style) AppendU32(v uint32) {
	binary.LittleEndian.PutUint32(s.grow(SizeU32), v)
}

// AppendFixed writes a fixed-point value.
func (s *Style) AppendFixed(f Fixed) {
	binary.LittleEndian.PutUint32(s.grow(SizeFixed), uint32(f))
}

// AppendUnit writes a unit mask.
func (s *Style) AppendUnit(u Unit) {
	binary.LittleEndian.PutUint32(s.grow(SizeUnit), uint32(u))
}

// AppendColor writes an RGBA colour.
func (s *Style) AppendColor(c Color) {
	binary.LittleEndian.PutUint32(s.grow(SizeColor), uint32(c))
}

// AppendString writes a handle slot referencing str, taking one
// reference for the occurrence.
func (s *Style) AppendString(str *intern.String) {
	str.Ref()
	idx := len(s.strings)
	s.strings = append(s.strings, str)
	binary.LittleEndian.PutUint64(s.grow(SizeString), uint64(idx))
}

// Abandon releases the references held by the handle table and empties
// the buffer. Used when a parser fails after partially encoding an
// entry; a completed entry is torn down through its destructor instead.
func (s *Style) Abandon() {
	for _, str := range s.strings {
		str.Unref()
	}
	s.strings = nil
	s.buf = s.buf[:0]
}

// Reader returns a cursor positioned at the start of the buffer.
func (s *Style) Reader() *Cursor {
	return &Cursor{s: s}
}

// Cursor reads a style buffer left to right. Reads must match the
// parser's write order exactly; overrunning the buffer panics.
type Cursor struct {
	s   *Style
	off int
}

// Offset returns the cursor position in octets from the entry start.
func (c *Cursor) Offset() uint32 { return uint32(c.off) }

// AtEnd reports whether the whole buffer has been consumed.
func (c *Cursor) AtEnd() bool { return c.off >= len(c.s.buf) }

func (c *Cursor) take(n int) []byte {
	if c.off+n > len(c.s.buf) {
		panic("bytecode: style buffer underrun")
	}
	b := c.s.buf[c.off : c.off+n]
	c.off += n
	return b
}

// PeekOPV reads the word at the cursor without advancing.
func (c *Cursor) PeekOPV() OPV {
	if c.off+SizeOPV > len(c.s.buf) {
		panic("bytecode: style buffer underrun")
	}
	return OPV(binary.LittleEndian.Uint32(c.s.buf[c.off : c.off+SizeOPV]))
}

// ReadOPV reads an entry header or inline list tag.
func (c *Cursor) ReadOPV() OPV {
	return OPV(binary.LittleEndian.Uint32(c.take(SizeOPV)))
}

// ReadU32 reads a bare 32-bit word.
func (c *Cursor) ReadU32() uint32 {
	return binary.LittleEndian.Uint32(c.take(SizeU32))
}

// ReadFixed reads a fixed-point value.
func (c *Cursor) ReadFixed() Fixed {
	return Fixed(binary.LittleEndian.Uint32(c.take(SizeFixed)))
}

// ReadUnit reads a unit mask.
func (c *Cursor) ReadUnit() Unit {
	return Unit(binary.LittleEndian.Uint32(c.take(SizeUnit)))
}

// ReadColor reads an RGBA colour.
func (c *Cursor) ReadColor() Color {
	return Color(binary.LittleEndian.Uint32(c.take(SizeColor)))
}

// ReadString reads a handle slot. The returned string is borrowed from
// the buffer; callers wanting to retain it take their own reference.
func (c *Cursor) ReadString() *intern.String {
	idx := binary.LittleEndian.Uint64(c.take(SizeString))
	return c.s.strings[idx]
}
