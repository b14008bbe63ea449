package cascade

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhuyadong/libcss/bytecode"
	"github.com/zhuyadong/libcss/intern"
	"github.com/zhuyadong/libcss/parse"
)

func parseStyle(t *testing.T, property, value string) *bytecode.Style {
	t.Helper()
	c := parse.NewContext(parse.NewStylesheet())
	st, err := parse.ParseDeclaration(c, property, value)
	require.NoError(t, err, "%s: %s", property, value)
	return st
}

func runOne(t *testing.T, property, value string) *ComputedStyle {
	t.Helper()
	st := parseStyle(t, property, value)
	state := NewState(NewComputedStyle())
	state.Origin = OriginAuthor
	require.NoError(t, Run(st, state))
	return state.Result
}

func TestRoundTripWidth(t *testing.T) {
	cs := runOne(t, "width", "100px")
	state, length, unit := cs.GetWidth()
	if state != LengthSet {
		t.Fatalf("state: got %d", state)
	}
	if length != bytecode.FixedFromInt(100) {
		t.Errorf("length: got %d", length)
	}
	if unit != UnitPx {
		t.Errorf("unit: got %d", unit)
	}
}

func TestRoundTripColor(t *testing.T) {
	cs := runOne(t, "color", "#ff0000")
	state, colour := cs.GetColor()
	if state != ColourSet {
		t.Fatalf("state: got %d", state)
	}
	if colour != 0xff0000ff {
		t.Errorf("colour: got %#x", uint32(colour))
	}
}

func TestRoundTripEnums(t *testing.T) {
	cs := runOne(t, "display", "table-cell")
	if got := cs.GetDisplay(); got != DisplayTableCell {
		t.Errorf("display: got %d", got)
	}

	cs = runOne(t, "position", "fixed")
	if got := cs.GetPosition(); got != PositionFixed {
		t.Errorf("position: got %d", got)
	}

	cs = runOne(t, "border-top-style", "ridge")
	if got := cs.GetBorderTopStyle(); got != BorderStyleRidge {
		t.Errorf("border-top-style: got %d", got)
	}
}

func TestRoundTripBorderWidth(t *testing.T) {
	cs := runOne(t, "border-left-width", "thin")
	state, _, _ := cs.GetBorderLeftWidth()
	if state != BorderWidthThin {
		t.Fatalf("thin state: got %d", state)
	}

	cs = runOne(t, "border-left-width", "4px")
	state, length, unit := cs.GetBorderLeftWidth()
	if state != BorderWidthWidth || length != bytecode.FixedFromInt(4) || unit != UnitPx {
		t.Errorf("explicit width: %d %d %d", state, length, unit)
	}
}

func TestRoundTripFontFamily(t *testing.T) {
	cs := runOne(t, "font-family", `"Foo", Bar Baz, serif`)
	state, names := cs.GetFontFamily()
	if state != FontFamilySerif {
		t.Fatalf("state: got %d", state)
	}
	require.Len(t, names, 2)
	if names[0].Data() != "Foo" || names[1].Data() != "Bar Baz" {
		t.Errorf("names: %q %q", names[0].Data(), names[1].Data())
	}
}

func TestRoundTripCursor(t *testing.T) {
	cs := runOne(t, "cursor", "url(a), url(b), pointer")
	state, uris := cs.GetCursor()
	if state != enumState(bytecode.CursorPointer) {
		t.Fatalf("state: got %d", state)
	}
	require.Len(t, uris, 2)
	if uris[0].Data() != "a" || uris[1].Data() != "b" {
		t.Errorf("uris: %q %q", uris[0].Data(), uris[1].Data())
	}
}

func TestRoundTripContent(t *testing.T) {
	cs := runOne(t, "content", `"a" counter(section, upper-roman) open-quote`)
	state, items := cs.GetContent()
	if state != ContentSet {
		t.Fatalf("state: got %d", state)
	}
	require.Len(t, items, 4) // three items plus terminator

	if items[0].Type != ContentItemString || items[0].Data.Data() != "a" {
		t.Errorf("item 0: %+v", items[0])
	}
	if items[1].Type != ContentItemCounter || items[1].Data.Data() != "section" {
		t.Errorf("item 1: %+v", items[1])
	}
	if items[1].Style != bytecode.ListStyleTypeUpperRoman {
		t.Errorf("item 1 style: %d", items[1].Style)
	}
	if items[2].Type != ContentItemOpenQuote {
		t.Errorf("item 2: %+v", items[2])
	}
	if items[3].Type != ContentItemEnd {
		t.Errorf("terminator: %+v", items[3])
	}
}

func TestRoundTripCounterIncrement(t *testing.T) {
	cs := runOne(t, "counter-increment", "section 2 chapter")
	state, counters := cs.GetCounterIncrement()
	if state != CounterNamed {
		t.Fatalf("state: got %d", state)
	}
	require.Len(t, counters, 3) // two counters plus terminator
	if counters[0].Name.Data() != "section" || counters[0].Value != bytecode.FixedFromInt(2) {
		t.Errorf("counter 0: %+v", counters[0])
	}
	if counters[1].Name.Data() != "chapter" || counters[1].Value != bytecode.FixedFromInt(1) {
		t.Errorf("counter 1: %+v", counters[1])
	}
	if counters[2].Name != nil || counters[2].Value != 0 {
		t.Errorf("terminator: %+v", counters[2])
	}
}

func TestRoundTripBackgroundPositionKeywords(t *testing.T) {
	cs := runOne(t, "background-position", "top right")
	state, h, hu, v, vu := cs.GetBackgroundPosition()
	if state != BackgroundPositionSet {
		t.Fatalf("state: got %d", state)
	}
	if h != bytecode.FixedFromInt(100) || hu != UnitPct {
		t.Errorf("horizontal: %d %d", h, hu)
	}
	if v != 0 || vu != UnitPct {
		t.Errorf("vertical: %d %d", v, vu)
	}
}

func TestInheritEntryLeavesCursorConsistent(t *testing.T) {
	// An inherit entry has no payload; the cascade must not try to read
	// one.
	st := parseStyle(t, "width", "inherit")
	state := NewState(NewComputedStyle())
	require.NoError(t, Run(st, state))
	s, _, _ := state.Result.GetWidth()
	if s != LengthInherit {
		t.Fatalf("state: got %d", s)
	}
}

func TestOutranksImportance(t *testing.T) {
	cs := NewComputedStyle()
	state := NewState(cs)
	state.Origin = OriginAuthor

	require.NoError(t, Run(parseStyle(t, "width", "10px !important"), state))
	require.NoError(t, Run(parseStyle(t, "width", "20px"), state))

	_, length, _ := cs.GetWidth()
	if length != bytecode.FixedFromInt(10) {
		t.Fatalf("important declaration should win, got %d", length)
	}
}

func TestOutranksSourceOrderWithinOrigin(t *testing.T) {
	cs := NewComputedStyle()
	state := NewState(cs)
	state.Origin = OriginAuthor

	require.NoError(t, Run(parseStyle(t, "width", "10px"), state))
	require.NoError(t, Run(parseStyle(t, "width", "20px"), state))

	_, length, _ := cs.GetWidth()
	if length != bytecode.FixedFromInt(20) {
		t.Fatalf("later equal-rank declaration should win, got %d", length)
	}
}

func TestOutranksOrigin(t *testing.T) {
	cs := NewComputedStyle()
	state := NewState(cs)

	state.Origin = OriginAuthor
	require.NoError(t, Run(parseStyle(t, "width", "10px"), state))

	state.Origin = OriginUserAgent
	require.NoError(t, Run(parseStyle(t, "width", "30px"), state))

	_, length, _ := cs.GetWidth()
	if length != bytecode.FixedFromInt(10) {
		t.Fatalf("author should beat user agent, got %d", length)
	}

	// Important user-agent declarations outrank author ones.
	require.NoError(t, Run(parseStyle(t, "width", "30px !important"), state))
	_, length, _ = cs.GetWidth()
	if length != bytecode.FixedFromInt(30) {
		t.Fatalf("important UA should beat author, got %d", length)
	}
}

func TestLosingDeclarationStillAdvancesCursor(t *testing.T) {
	// Two entries in sequence: if the first wins, the second must still
	// be decoded cleanly (cursor advanced past its payload).
	cs := NewComputedStyle()
	state := NewState(cs)
	state.Origin = OriginUserAgent

	require.NoError(t, Run(parseStyle(t, "width", "10px !important"), state))
	// This declaration loses but its payload must be consumed.
	require.NoError(t, Run(parseStyle(t, "width", "20px"), state))

	_, length, _ := cs.GetWidth()
	if length != bytecode.FixedFromInt(10) {
		t.Fatalf("got %d", length)
	}
}

func TestDestroyConsumesExactlyWrittenBytes(t *testing.T) {
	decls := []struct{ property, value string }{
		{"width", "100px"},
		{"width", "auto"},
		{"width", "inherit"},
		{"color", "#123456"},
		{"display", "block"},
		{"line-height", "1.5"},
		{"line-height", "20px"},
		{"volume", "50"},
		{"volume", "80%"},
		{"clip", "rect(auto, 10px, 20px, auto)"},
		{"cursor", "url(a), url(b), pointer"},
		{"font-family", `"Foo", Bar Baz, serif`},
		{"content", `"a" counters(item, ".") close-quote`},
		{"counter-increment", "section 2 chapter"},
		{"counter-reset", "none"},
		{"quotes", `"<" ">"`},
		{"background-position", "50% 10px"},
		{"border-spacing", "1px 2px"},
		{"background-image", "url(x.png)"},
		{"play-during", "url(a.wav) mix"},
		{"z-index", "4"},
		{"orphans", "3"},
		{"text-decoration", "underline blink"},
	}

	for _, d := range decls {
		t.Run(d.property+" "+d.value, func(t *testing.T) {
			st := parseStyle(t, d.property, d.value)
			if got := DestroyStyle(st); got != st.Size() {
				t.Fatalf("destroy consumed %d octets, entry has %d", got, st.Size())
			}
		})
	}
}

func TestDestroyReleasesOneRefPerOccurrence(t *testing.T) {
	uri := intern.Intern("refprobe.png")
	base := uri.Refs()

	st := parseStyle(t, "background-image", "url(refprobe.png)")
	if got := uri.Refs(); got != base+1 {
		t.Fatalf("parse should add one buffer reference, refs %d -> %d", base, got)
	}

	DestroyStyle(st)
	if got := uri.Refs(); got != base {
		t.Fatalf("destroy should release the buffer reference, refs %d -> %d", base, got)
	}
}

func TestDestroyContentReleasesSeparatorOnce(t *testing.T) {
	name := intern.Intern("item")
	sep := intern.Intern("::")
	baseName := name.Refs()
	baseSep := sep.Refs()

	st := parseStyle(t, "content", `counters(item, "::")`)
	require.Equal(t, baseName+1, name.Refs())
	require.Equal(t, baseSep+1, sep.Refs())

	DestroyStyle(st)
	require.Equal(t, baseName, name.Refs())
	require.Equal(t, baseSep, sep.Refs())
}

func TestCascadeNomemReleasesPartialList(t *testing.T) {
	st := parseStyle(t, "counter-increment", "a 1 b 2 c 3")

	alloc := &LimitAllocator{Remaining: counterItemSize} // room for one entry
	state := NewState(NewComputedStyle())
	state.Alloc = alloc

	err := Run(st, state)
	if !errors.Is(err, ErrNomem) {
		t.Fatalf("expected ErrNomem, got %v", err)
	}
	if alloc.Remaining != counterItemSize {
		t.Fatalf("partial list not released, remaining %d", alloc.Remaining)
	}
}

func TestComposeInheritTakesParent(t *testing.T) {
	parent := NewComputedStyle()
	require.NoError(t, parent.SetWidth(LengthSet, bytecode.FixedFromInt(42), UnitPx))
	require.NoError(t, parent.SetColor(ColourSet, 0x00ff00ff))

	child := NewComputedStyle()
	// width stays at the zero (inherit) state; color is explicit.
	require.NoError(t, child.SetColor(ColourSet, 0x0000ffff))

	result := NewComputedStyle()
	require.NoError(t, ComposeProperty(bytecode.PropWidth, parent, child, result))
	require.NoError(t, ComposeProperty(bytecode.PropColor, parent, child, result))

	_, length, _ := result.GetWidth()
	if length != bytecode.FixedFromInt(42) {
		t.Errorf("width should come from parent, got %d", length)
	}
	_, colour := result.GetColor()
	if colour != 0x0000ffff {
		t.Errorf("color should come from child, got %#x", uint32(colour))
	}
}

func TestComposeDeepCopiesLists(t *testing.T) {
	parent := NewComputedStyle()
	child := NewComputedStyle()
	name := intern.Intern("Families")
	require.NoError(t, child.SetFontFamily(FontFamilyNamed, []*intern.String{name}))

	result := NewComputedStyle()
	require.NoError(t, ComposeProperty(bytecode.PropFontFamily, parent, child, result))

	_, childNames := child.GetFontFamily()
	_, resultNames := result.GetFontFamily()
	require.Len(t, resultNames, 1)
	if &childNames[0] == &resultNames[0] {
		t.Errorf("compose must not share list storage")
	}

	// Both records hold their own references.
	child.Destroy()
	_, resultNames = result.GetFontFamily()
	if resultNames[0].Data() != "Families" {
		t.Errorf("result list should survive child teardown")
	}
}

func TestInitialValues(t *testing.T) {
	state := NewState(NewComputedStyle())
	require.NoError(t, Initial(state))
	cs := state.Result

	if got := cs.GetDisplay(); got != DisplayInline {
		t.Errorf("display initial: %d", got)
	}
	if got := cs.GetPosition(); got != PositionStatic {
		t.Errorf("position initial: %d", got)
	}
	if s, _, _ := cs.GetWidth(); s != LengthAuto {
		t.Errorf("width initial: %d", s)
	}
	if s, c := cs.GetBackgroundColor(); s != ColourTransparent || c != 0 {
		t.Errorf("background-color initial: %d %#x", s, uint32(c))
	}
	if s, _ := cs.GetOrphans(); s != NumberSet {
		t.Errorf("orphans initial: %d", s)
	}
	if got := cs.GetTextDecoration(); got != TextDecorationNone {
		t.Errorf("text-decoration initial: %#x", got)
	}
}

func TestSetFromHint(t *testing.T) {
	cs := NewComputedStyle()
	hint := &Hint{Status: LengthSet, Length: bytecode.FixedFromInt(7), Unit: UnitEm}
	require.NoError(t, SetFromHint(bytecode.PropWidth, hint, cs))

	s, l, u := cs.GetWidth()
	if s != LengthSet || l != bytecode.FixedFromInt(7) || u != UnitEm {
		t.Fatalf("hint not applied: %d %d %d", s, l, u)
	}
}

func TestUnitTranslation(t *testing.T) {
	tests := []struct {
		in   bytecode.Unit
		want Unit
	}{
		{bytecode.UnitPx, UnitPx},
		{bytecode.UnitEm, UnitEm},
		{bytecode.UnitPct, UnitPct},
		{bytecode.UnitDeg, UnitDeg},
		{bytecode.UnitGrad, UnitGrad},
		{bytecode.UnitRad, UnitRad},
		{bytecode.UnitMs, UnitMs},
		{bytecode.UnitS, UnitS},
		{bytecode.UnitHz, UnitHz},
		{bytecode.UnitKhz, UnitKhz},
		{bytecode.Unit(0xdeadbeef), 0},
	}
	for _, tt := range tests {
		if got := UnitFromBytecode(tt.in); got != tt.want {
			t.Errorf("UnitFromBytecode(%#x) = %d, want %d", uint32(tt.in), got, tt.want)
		}
	}
}

func TestRunWholeDeclarationBlock(t *testing.T) {
	// Replaying several properties through one state mirrors how the
	// selector matcher drives the cascade.
	cs := NewComputedStyle()
	state := NewState(cs)
	state.Origin = OriginAuthor

	decls := []struct{ property, value string }{
		{"display", "block"},
		{"width", "50%"},
		{"color", "navy"},
		{"font-family", "monospace"},
		{"text-decoration", "underline"},
	}
	for _, d := range decls {
		require.NoError(t, Run(parseStyle(t, d.property, d.value), state))
	}

	if got := cs.GetDisplay(); got != DisplayBlock {
		t.Errorf("display: %d", got)
	}
	s, l, u := cs.GetWidth()
	if s != LengthSet || l != bytecode.FixedFromInt(50) || u != UnitPct {
		t.Errorf("width: %d %d %d", s, l, u)
	}
	if _, c := cs.GetColor(); c != 0x000080ff {
		t.Errorf("color: %#x", uint32(c))
	}
	if fs, _ := cs.GetFontFamily(); fs != FontFamilyMonospace {
		t.Errorf("font-family: %d", fs)
	}
}
