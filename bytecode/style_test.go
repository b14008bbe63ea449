package bytecode

import (
	"testing"

	"github.com/zhuyadong/libcss/intern"
)

func TestStyleWriteReadOrder(t *testing.T) {
	st := NewStyle(SizeOPV + SizeFixed + SizeUnit + SizeColor + SizeString)

	opv := BuildOPV(PropWidth, 0, WidthSet)
	str := intern.Intern("payload")
	base := str.Refs()

	st.AppendOPV(opv)
	st.AppendFixed(FixedFromInt(100))
	st.AppendUnit(UnitPx)
	st.AppendColor(MakeColor(1, 2, 3, 4))
	st.AppendString(str)

	if got := str.Refs(); got != base+1 {
		t.Fatalf("AppendString should hold one reference, refs %d -> %d", base, got)
	}
	if st.Size() != SizeOPV+SizeFixed+SizeUnit+SizeColor+SizeString {
		t.Fatalf("unexpected size %d", st.Size())
	}

	cur := st.Reader()
	if got := cur.ReadOPV(); got != opv {
		t.Errorf("OPV mismatch: %#x", uint32(got))
	}
	if got := cur.ReadFixed(); got != FixedFromInt(100) {
		t.Errorf("fixed mismatch: %d", got)
	}
	if got := cur.ReadUnit(); got != UnitPx {
		t.Errorf("unit mismatch: %d", got)
	}
	if got := cur.ReadColor(); got != MakeColor(1, 2, 3, 4) {
		t.Errorf("colour mismatch: %#x", uint32(got))
	}
	if got := cur.ReadString(); got != str {
		t.Errorf("string handle mismatch")
	}
	if !cur.AtEnd() {
		t.Errorf("cursor should be at end")
	}
}

func TestStyleLittleEndianLayout(t *testing.T) {
	st := NewStyle(SizeOPV)
	st.AppendOPV(OPV(0x04030201))
	b := st.Bytes()
	if b[0] != 0x01 || b[1] != 0x02 || b[2] != 0x03 || b[3] != 0x04 {
		t.Fatalf("OPV not little-endian: % x", b)
	}
}

func TestStyleOverrunPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on overrun")
		}
	}()
	st := NewStyle(SizeOPV)
	st.AppendOPV(0)
	st.AppendOPV(0)
}

func TestStyleAbandonReleasesRefs(t *testing.T) {
	str := intern.Intern("abandoned")
	base := str.Refs()

	st := NewStyle(SizeString)
	st.AppendString(str)
	st.Abandon()

	if got := str.Refs(); got != base {
		t.Fatalf("Abandon should drop the buffer reference, refs %d -> %d", base, got)
	}
}
