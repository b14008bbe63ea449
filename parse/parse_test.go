package parse

import (
	"errors"
	"testing"

	"github.com/zhuyadong/libcss/bytecode"
)

func newTestContext() *Context {
	return NewContext(NewStylesheet())
}

func mustParse(t *testing.T, property, value string) *bytecode.Style {
	t.Helper()
	c := newTestContext()
	st, err := ParseDeclaration(c, property, value)
	if err != nil {
		t.Fatalf("%s: %s: unexpected error %v", property, value, err)
	}
	return st
}

func mustFail(t *testing.T, property, value string) {
	t.Helper()
	c := newTestContext()
	st, err := ParseDeclaration(c, property, value)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("%s: %s: expected ErrInvalid, got %v (style %v)", property, value, err, st)
	}
}

func TestParseColorImportant(t *testing.T) {
	st := mustParse(t, "color", "#ff0000 !important")

	cur := st.Reader()
	opv := cur.ReadOPV()
	if opv.Opcode() != bytecode.PropColor {
		t.Errorf("opcode: got %d", opv.Opcode())
	}
	if !opv.Important() {
		t.Errorf("important flag not set")
	}
	if opv.Inherit() {
		t.Errorf("inherit flag should not be set")
	}
	if opv.Value() != bytecode.ColorSet {
		t.Errorf("value: got %#x", opv.Value())
	}
	if got := cur.ReadColor(); got != 0xff0000ff {
		t.Errorf("colour payload: got %#x", uint32(got))
	}
	if !cur.AtEnd() {
		t.Errorf("trailing bytes after entry")
	}
}

func TestParseWidthLength(t *testing.T) {
	st := mustParse(t, "width", "100px")

	cur := st.Reader()
	opv := cur.ReadOPV()
	if opv.Opcode() != bytecode.PropWidth || opv.Value() != bytecode.WidthSet {
		t.Fatalf("header: op %d value %#x", opv.Opcode(), opv.Value())
	}
	if got := cur.ReadFixed(); got != bytecode.FixedFromInt(100) {
		t.Errorf("length: got %d, want %d", got, bytecode.FixedFromInt(100))
	}
	if got := cur.ReadUnit(); got != bytecode.UnitPx {
		t.Errorf("unit: got %v", got)
	}
	if !cur.AtEnd() {
		t.Errorf("trailing bytes after entry")
	}
}

func TestParseKeywordProperties(t *testing.T) {
	tests := []struct {
		property string
		value    string
		prop     bytecode.PropertyID
		want     uint16
	}{
		{"display", "inline-block", bytecode.PropDisplay, bytecode.DisplayInlineBlock},
		{"position", "absolute", bytecode.PropPosition, bytecode.PositionAbsolute},
		{"clear", "both", bytecode.PropClear, bytecode.ClearBoth},
		{"float", "left", bytecode.PropFloat, bytecode.FloatLeft},
		{"visibility", "collapse", bytecode.PropVisibility, bytecode.VisibilityCollapse},
		{"white-space", "pre-wrap", bytecode.PropWhiteSpace, bytecode.WhiteSpacePreWrap},
		{"direction", "rtl", bytecode.PropDirection, bytecode.DirectionRTL},
		{"caption-side", "bottom", bytecode.PropCaptionSide, bytecode.CaptionSideBottom},
		{"table-layout", "fixed", bytecode.PropTableLayout, bytecode.TableLayoutFixed},
		{"empty-cells", "hide", bytecode.PropEmptyCells, bytecode.EmptyCellsHide},
		{"overflow", "scroll", bytecode.PropOverflow, bytecode.OverflowScroll},
		{"unicode-bidi", "bidi-override", bytecode.PropUnicodeBidi, bytecode.UnicodeBidiOverride},
		{"text-transform", "uppercase", bytecode.PropTextTransform, bytecode.TextTransformUppercase},
		{"text-align", "justify", bytecode.PropTextAlign, bytecode.TextAlignJustify},
		{"list-style-type", "lower-greek", bytecode.PropListStyleType, bytecode.ListStyleTypeLowerGreek},
		{"border-top-style", "double", bytecode.PropBorderTopStyle, bytecode.BorderStyleDouble},
		{"background-repeat", "repeat-x", bytecode.PropBackgroundRepeat, bytecode.BackgroundRepeatRepeatX},
		{"speak", "spell-out", bytecode.PropSpeak, bytecode.SpeakSpellOut},
		{"page-break-after", "avoid", bytecode.PropPageBreakAfter, bytecode.PageBreakAvoid},
	}

	for _, tt := range tests {
		t.Run(tt.property+" "+tt.value, func(t *testing.T) {
			st := mustParse(t, tt.property, tt.value)
			cur := st.Reader()
			opv := cur.ReadOPV()
			if opv.Opcode() != tt.prop {
				t.Errorf("opcode: got %d, want %d", opv.Opcode(), tt.prop)
			}
			if opv.Value() != tt.want {
				t.Errorf("value: got %#x, want %#x", opv.Value(), tt.want)
			}
			if !cur.AtEnd() {
				t.Errorf("keyword entries carry no payload")
			}
		})
	}
}

func TestParseInheritSetsFlagAndNoPayload(t *testing.T) {
	for _, property := range []string{
		"width", "color", "display", "font-family", "cursor", "content",
		"counter-increment", "clip", "background-position", "border-spacing",
		"quotes", "volume", "z-index",
	} {
		t.Run(property, func(t *testing.T) {
			st := mustParse(t, property, "inherit")
			cur := st.Reader()
			opv := cur.ReadOPV()
			if !opv.Inherit() {
				t.Fatalf("inherit flag not set")
			}
			if !cur.AtEnd() {
				t.Fatalf("inherit entries must carry no payload")
			}
		})
	}
}

func TestParseNegativeLengthRejection(t *testing.T) {
	for _, tt := range []struct{ property, value string }{
		{"width", "-1px"},
		{"height", "-10em"},
		{"min-width", "-1px"},
		{"min-height", "-1px"},
		{"max-width", "-1px"},
		{"max-height", "-5%"},
		{"line-height", "-1"},
		{"line-height", "-10px"},
		{"padding-left", "-1px"},
		{"border-top-width", "-2px"},
		{"font-size", "-1px"},
	} {
		t.Run(tt.property+" "+tt.value, func(t *testing.T) {
			mustFail(t, tt.property, tt.value)
		})
	}
}

func TestParseNegativeAllowedWhereLegal(t *testing.T) {
	for _, tt := range []struct{ property, value string }{
		{"text-indent", "-2em"},
		{"margin-left", "-10px"},
		{"letter-spacing", "-1px"},
		{"word-spacing", "-0.5em"},
		{"bottom", "-5px"},
	} {
		t.Run(tt.property+" "+tt.value, func(t *testing.T) {
			mustParse(t, tt.property, tt.value)
		})
	}
}

func TestParseUnitRejection(t *testing.T) {
	for _, tt := range []struct{ property, value string }{
		{"width", "10deg"},
		{"width", "10s"},
		{"width", "10khz"},
		{"height", "10grad"},
		{"letter-spacing", "10%"},
		{"word-spacing", "10%"},
		{"border-left-width", "10%"},
		{"margin-top", "10ms"},
		{"elevation", "10px"},
		{"pitch", "10deg"},
		{"pause-after", "10px"},
	} {
		t.Run(tt.property+" "+tt.value, func(t *testing.T) {
			mustFail(t, tt.property, tt.value)
		})
	}
}

func TestParseImportantForms(t *testing.T) {
	// With and without preceding whitespace.
	for _, value := range []string{"10px !important", "10px!important", "10px !IMPORTANT"} {
		st := mustParse(t, "width", value)
		opv := st.Reader().ReadOPV()
		if !opv.Important() {
			t.Errorf("%q: important flag not set", value)
		}
	}

	// Malformed suffixes are a full reject.
	for _, value := range []string{"10px !", "10px ! portant", "10px !importan", "10px !important!"} {
		mustFail(t, "width", value)
	}
}

func TestParseCursorRestorationOnFailure(t *testing.T) {
	c := newTestContext()
	v := Tokenize("bogus-keyword-value")

	for prop := bytecode.FirstProp; prop <= bytecode.LastProp; prop++ {
		ctx := 0
		st, err := ParseValue(c, prop, v, &ctx)
		if err == nil {
			// A bare ident is a valid counter name for the counter
			// properties and a valid family name for font-family and
			// voice-family; everything else must reject it.
			switch prop {
			case bytecode.PropCounterIncrement, bytecode.PropCounterReset,
				bytecode.PropFontFamily, bytecode.PropVoiceFamily:
				continue
			}
			t.Errorf("prop %d: expected failure, got style %v", prop, st)
			continue
		}
		if ctx != 0 {
			t.Errorf("prop %d: cursor not restored, ctx = %d", prop, ctx)
		}
	}
}

func TestParseClipRect(t *testing.T) {
	st := mustParse(t, "clip", "rect(auto, 10px, 20px, auto)")

	cur := st.Reader()
	opv := cur.ReadOPV()
	want := bytecode.ClipShapeRect | bytecode.ClipRectTopAuto | bytecode.ClipRectLeftAuto
	if opv.Value() != want {
		t.Fatalf("value: got %#x, want %#x", opv.Value(), want)
	}
	if got := cur.ReadFixed(); got != bytecode.FixedFromInt(10) {
		t.Errorf("first length: got %d", got)
	}
	if got := cur.ReadUnit(); got != bytecode.UnitPx {
		t.Errorf("first unit: got %v", got)
	}
	if got := cur.ReadFixed(); got != bytecode.FixedFromInt(20) {
		t.Errorf("second length: got %d", got)
	}
	if got := cur.ReadUnit(); got != bytecode.UnitPx {
		t.Errorf("second unit: got %v", got)
	}
	if !cur.AtEnd() {
		t.Errorf("auto operands must not append lengths")
	}
}

func TestParseClipRejectsBadOperand(t *testing.T) {
	mustFail(t, "clip", "rect(auto, 10%, 20px, auto)")
	mustFail(t, "clip", "rect(auto, 10px, 20px)")
	mustFail(t, "clip", "rect(none, 10px, 20px, auto)")
}

func TestParseCursorList(t *testing.T) {
	st := mustParse(t, "cursor", "url(a), url(b), pointer")

	cur := st.Reader()
	opv := cur.ReadOPV()
	if opv.Value() != bytecode.CursorURI {
		t.Fatalf("head value: got %#x", opv.Value())
	}
	if got := cur.ReadString(); got.Data() != "a" {
		t.Errorf("first uri: got %q", got.Data())
	}
	if got := cur.ReadU32(); got != uint32(bytecode.CursorURI) {
		t.Errorf("second tag: got %#x", got)
	}
	if got := cur.ReadString(); got.Data() != "b" {
		t.Errorf("second uri: got %q", got.Data())
	}
	if got := cur.ReadU32(); got != uint32(bytecode.CursorPointer) {
		t.Errorf("terminating keyword: got %#x", got)
	}
	if !cur.AtEnd() {
		t.Errorf("trailing bytes after keyword")
	}
}

func TestParseCursorRequiresKeyword(t *testing.T) {
	mustFail(t, "cursor", "url(a)")
	mustFail(t, "cursor", "url(a), url(b)")
	mustFail(t, "cursor", "url(a) pointer")
}

func TestParseCursorLoneKeyword(t *testing.T) {
	st := mustParse(t, "cursor", "pointer")
	cur := st.Reader()
	if got := cur.ReadOPV().Value(); got != bytecode.CursorPointer {
		t.Fatalf("value: got %#x", got)
	}
	if !cur.AtEnd() {
		t.Errorf("lone keyword collapses to a single OPV")
	}
}

func TestParseFontFamilyList(t *testing.T) {
	st := mustParse(t, "font-family", `"Foo", Bar Baz, serif`)

	cur := st.Reader()
	opv := cur.ReadOPV()
	if opv.Value() != bytecode.FontFamilyString {
		t.Fatalf("head value: got %#x", opv.Value())
	}
	if got := cur.ReadString(); got.Data() != "Foo" {
		t.Errorf("first name: got %q", got.Data())
	}
	if got := cur.ReadU32(); got != uint32(bytecode.FontFamilyIdentList) {
		t.Errorf("second tag: got %#x", got)
	}
	if got := cur.ReadString(); got.Data() != "Bar Baz" {
		t.Errorf("joined name: got %q", got.Data())
	}
	if got := cur.ReadU32(); got != uint32(bytecode.FontFamilySerif) {
		t.Errorf("generic tag: got %#x", got)
	}
	if got := cur.ReadU32(); got != uint32(bytecode.FontFamilyEnd) {
		t.Errorf("terminator: got %#x", got)
	}
	if !cur.AtEnd() {
		t.Errorf("trailing bytes after terminator")
	}
}

func TestParseFontFamilyCaseInsensitiveGenerics(t *testing.T) {
	st := mustParse(t, "font-family", "SERIF")
	cur := st.Reader()
	if got := cur.ReadOPV().Value(); got != bytecode.FontFamilySerif {
		t.Fatalf("head value: got %#x", got)
	}
	if got := cur.ReadU32(); got != uint32(bytecode.FontFamilyEnd) {
		t.Errorf("terminator: got %#x", got)
	}
}

func TestParseVoiceFamily(t *testing.T) {
	st := mustParse(t, "voice-family", "romeo, male")
	cur := st.Reader()
	opv := cur.ReadOPV()
	if opv.Value() != bytecode.VoiceFamilyIdentList {
		t.Fatalf("head value: got %#x", opv.Value())
	}
	if got := cur.ReadString(); got.Data() != "romeo" {
		t.Errorf("name: got %q", got.Data())
	}
	if got := cur.ReadU32(); got != uint32(bytecode.VoiceFamilyMale) {
		t.Errorf("generic: got %#x", got)
	}
	if got := cur.ReadU32(); got != uint32(bytecode.VoiceFamilyEnd) {
		t.Errorf("terminator: got %#x", got)
	}
}

func TestParseTextDecoration(t *testing.T) {
	st := mustParse(t, "text-decoration", "underline overline")
	opv := st.Reader().ReadOPV()
	want := bytecode.TextDecorationUnderline | bytecode.TextDecorationOverline
	if opv.Value() != want {
		t.Fatalf("value: got %#x, want %#x", opv.Value(), want)
	}

	mustFail(t, "text-decoration", "underline overline underline")
	mustFail(t, "text-decoration", "underline none")
}

func TestParseLineHeightForms(t *testing.T) {
	st := mustParse(t, "line-height", "1.5")
	cur := st.Reader()
	if got := cur.ReadOPV().Value(); got != bytecode.LineHeightNumber {
		t.Fatalf("number form value: got %#x", got)
	}
	if got := cur.ReadFixed(); got != bytecode.FixedFromFloat(1.5) {
		t.Errorf("number payload: got %d", got)
	}
	if !cur.AtEnd() {
		t.Errorf("number form carries no unit")
	}

	st = mustParse(t, "line-height", "20px")
	cur = st.Reader()
	if got := cur.ReadOPV().Value(); got != bytecode.LineHeightDimension {
		t.Fatalf("dimension form value: got %#x", got)
	}
	cur.ReadFixed()
	if got := cur.ReadUnit(); got != bytecode.UnitPx {
		t.Errorf("dimension unit: got %v", got)
	}
}

func TestParseZIndex(t *testing.T) {
	st := mustParse(t, "z-index", "10")
	cur := st.Reader()
	if got := cur.ReadOPV().Value(); got != bytecode.ZIndexSet {
		t.Fatalf("value: got %#x", got)
	}
	if got := cur.ReadFixed(); got != bytecode.FixedFromInt(10) {
		t.Errorf("payload: got %d", got)
	}

	st = mustParse(t, "z-index", "auto")
	if got := st.Reader().ReadOPV().Value(); got != bytecode.ZIndexAuto {
		t.Errorf("auto value: got %#x", got)
	}

	mustFail(t, "z-index", "1.5")
}

func TestParseFontWeight(t *testing.T) {
	st := mustParse(t, "font-weight", "700")
	if got := st.Reader().ReadOPV().Value(); got != bytecode.FontWeight700 {
		t.Fatalf("700: got %#x", got)
	}
	st = mustParse(t, "font-weight", "bolder")
	if got := st.Reader().ReadOPV().Value(); got != bytecode.FontWeightBolder {
		t.Fatalf("bolder: got %#x", got)
	}
	mustFail(t, "font-weight", "750")
}

func TestParseContentList(t *testing.T) {
	st := mustParse(t, "content", `"a" counter(section, upper-roman) open-quote`)

	cur := st.Reader()
	opv := cur.ReadOPV()
	if opv.Value() != bytecode.ContentString {
		t.Fatalf("head value: got %#x", opv.Value())
	}
	if got := cur.ReadString(); got.Data() != "a" {
		t.Errorf("string payload: got %q", got.Data())
	}

	tag := cur.ReadU32()
	wantTag := uint32(bytecode.ContentCounter) |
		uint32(bytecode.ListStyleTypeUpperRoman)<<bytecode.ContentStyleShift
	if tag != wantTag {
		t.Errorf("counter tag: got %#x, want %#x", tag, wantTag)
	}
	if got := cur.ReadString(); got.Data() != "section" {
		t.Errorf("counter name: got %q", got.Data())
	}

	if got := cur.ReadU32(); got != uint32(bytecode.ContentOpenQuote) {
		t.Errorf("open-quote tag: got %#x", got)
	}

	if got := cur.ReadU32(); got != uint32(bytecode.ContentNormal) {
		t.Errorf("terminator: got %#x", got)
	}
	if !cur.AtEnd() {
		t.Errorf("trailing bytes after terminator")
	}
}

func TestParseContentCounters(t *testing.T) {
	st := mustParse(t, "content", `counters(item, ".")`)

	cur := st.Reader()
	opv := cur.ReadOPV()
	wantHead := bytecode.ContentCounters |
		bytecode.ListStyleTypeDecimal<<bytecode.ContentStyleShift
	if opv.Value() != wantHead {
		t.Fatalf("head value: got %#x, want %#x", opv.Value(), wantHead)
	}
	if got := cur.ReadString(); got.Data() != "item" {
		t.Errorf("name: got %q", got.Data())
	}
	if got := cur.ReadString(); got.Data() != "." {
		t.Errorf("separator: got %q", got.Data())
	}
	if got := cur.ReadU32(); got != uint32(bytecode.ContentNormal) {
		t.Errorf("terminator: got %#x", got)
	}
}

func TestParseCounterIncrement(t *testing.T) {
	st := mustParse(t, "counter-increment", "section 2 chapter")

	cur := st.Reader()
	opv := cur.ReadOPV()
	if opv.Value() != bytecode.CounterIncrementNamed {
		t.Fatalf("head value: got %#x", opv.Value())
	}
	if got := cur.ReadString(); got.Data() != "section" {
		t.Errorf("first name: got %q", got.Data())
	}
	if got := cur.ReadFixed(); got != bytecode.FixedFromInt(2) {
		t.Errorf("first value: got %d", got)
	}
	if got := cur.ReadU32(); got != uint32(bytecode.CounterIncrementNamed) {
		t.Errorf("continuation: got %#x", got)
	}
	if got := cur.ReadString(); got.Data() != "chapter" {
		t.Errorf("second name: got %q", got.Data())
	}
	if got := cur.ReadFixed(); got != bytecode.FixedFromInt(1) {
		t.Errorf("default increment: got %d", got)
	}
	if got := cur.ReadU32(); got != uint32(bytecode.CounterIncrementNone) {
		t.Errorf("terminator: got %#x", got)
	}
	if !cur.AtEnd() {
		t.Errorf("trailing bytes after terminator")
	}
}

func TestParseCounterResetDefaultsToZero(t *testing.T) {
	st := mustParse(t, "counter-reset", "section")
	cur := st.Reader()
	cur.ReadOPV()
	cur.ReadString()
	if got := cur.ReadFixed(); got != 0 {
		t.Errorf("default reset value: got %d", got)
	}
}

func TestParseQuotes(t *testing.T) {
	st := mustParse(t, "quotes", `"<" ">" "[" "]"`)

	cur := st.Reader()
	if got := cur.ReadOPV().Value(); got != bytecode.QuotesString {
		t.Fatalf("head value: got %#x", got)
	}
	if a, b := cur.ReadString().Data(), cur.ReadString().Data(); a != "<" || b != ">" {
		t.Errorf("first pair: %q %q", a, b)
	}
	if got := cur.ReadU32(); got != uint32(bytecode.QuotesString) {
		t.Errorf("continuation: got %#x", got)
	}
	if a, b := cur.ReadString().Data(), cur.ReadString().Data(); a != "[" || b != "]" {
		t.Errorf("second pair: %q %q", a, b)
	}
	if got := cur.ReadU32(); got != uint32(bytecode.QuotesNone) {
		t.Errorf("terminator: got %#x", got)
	}

	mustFail(t, "quotes", `"only-one"`)
}

func TestParseBackgroundPosition(t *testing.T) {
	st := mustParse(t, "background-position", "top left")
	cur := st.Reader()
	opv := cur.ReadOPV()
	want := bytecode.BackgroundPositionHorzLeft | bytecode.BackgroundPositionVertTop
	if opv.Value() != want {
		t.Fatalf("keyword pair: got %#x, want %#x", opv.Value(), want)
	}
	if !cur.AtEnd() {
		t.Errorf("keyword components carry no payload")
	}

	st = mustParse(t, "background-position", "50% 10px")
	cur = st.Reader()
	opv = cur.ReadOPV()
	want = bytecode.BackgroundPositionHorzSet | bytecode.BackgroundPositionVertSet
	if opv.Value() != want {
		t.Fatalf("length pair: got %#x", opv.Value())
	}
	if got := cur.ReadFixed(); got != bytecode.FixedFromInt(50) {
		t.Errorf("horizontal: got %d", got)
	}
	if got := cur.ReadUnit(); got != bytecode.UnitPct {
		t.Errorf("horizontal unit: got %v", got)
	}
	cur.ReadFixed()
	if got := cur.ReadUnit(); got != bytecode.UnitPx {
		t.Errorf("vertical unit: got %v", got)
	}

	mustFail(t, "background-position", "left right")
	mustFail(t, "background-position", "10px left")
}

func TestParseBorderSpacing(t *testing.T) {
	st := mustParse(t, "border-spacing", "2px")
	cur := st.Reader()
	if got := cur.ReadOPV().Value(); got != bytecode.BorderSpacingSet {
		t.Fatalf("value: got %#x", got)
	}
	// A single length is encoded for both axes.
	for i := 0; i < 2; i++ {
		if got := cur.ReadFixed(); got != bytecode.FixedFromInt(2) {
			t.Errorf("pair %d: got %d", i, got)
		}
		cur.ReadUnit()
	}
	if !cur.AtEnd() {
		t.Errorf("trailing bytes")
	}

	mustFail(t, "border-spacing", "2px -1px")
	mustFail(t, "border-spacing", "10%")
}

func TestParseBackgroundImage(t *testing.T) {
	st := mustParse(t, "background-image", "url(img.png)")
	cur := st.Reader()
	if got := cur.ReadOPV().Value(); got != bytecode.BackgroundImageURI {
		t.Fatalf("value: got %#x", got)
	}
	if got := cur.ReadString(); got.Data() != "img.png" {
		t.Errorf("uri: got %q", got.Data())
	}

	st = mustParse(t, "background-image", "none")
	if got := st.Reader().ReadOPV().Value(); got != bytecode.BackgroundImageNone {
		t.Errorf("none value: got %#x", got)
	}
}

func TestParseColourForms(t *testing.T) {
	tests := []struct {
		value string
		want  bytecode.Color
	}{
		{"#f00", 0xff0000ff},
		{"#00ff00", 0x00ff00ff},
		{"red", 0xff0000ff},
		{"Navy", 0x000080ff},
		{"rgb(1, 2, 3)", 0x010203ff},
		{"rgb(100%, 0%, 0%)", 0xff0000ff},
		{"rgb(300, -5, 0)", 0xff000000 | 0xff},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			st := mustParse(t, "color", tt.value)
			cur := st.Reader()
			cur.ReadOPV()
			if got := cur.ReadColor(); got != tt.want {
				t.Errorf("colour: got %#x, want %#x", uint32(got), uint32(tt.want))
			}
		})
	}

	mustFail(t, "color", "#ff00")
	mustFail(t, "color", "notacolour")
	mustFail(t, "color", "rgb(1, 2%, 3)")
}

func TestParseAzimuth(t *testing.T) {
	st := mustParse(t, "azimuth", "far-right behind")
	opv := st.Reader().ReadOPV()
	want := bytecode.AzimuthFarRight | bytecode.AzimuthBehind
	if opv.Value() != want {
		t.Fatalf("keyword combo: got %#x, want %#x", opv.Value(), want)
	}

	st = mustParse(t, "azimuth", "30deg")
	cur := st.Reader()
	if got := cur.ReadOPV().Value(); got != bytecode.AzimuthAngle {
		t.Fatalf("angle form: got %#x", got)
	}
	cur.ReadFixed()
	if got := cur.ReadUnit(); got != bytecode.UnitDeg {
		t.Errorf("angle unit: got %v", got)
	}

	mustFail(t, "azimuth", "behind behind")
}

func TestParseVolumeForms(t *testing.T) {
	st := mustParse(t, "volume", "50")
	cur := st.Reader()
	if got := cur.ReadOPV().Value(); got != bytecode.VolumeNumber {
		t.Fatalf("number form: got %#x", got)
	}
	cur.ReadFixed()
	if !cur.AtEnd() {
		t.Errorf("number form carries no unit")
	}

	st = mustParse(t, "volume", "80%")
	cur = st.Reader()
	if got := cur.ReadOPV().Value(); got != bytecode.VolumeDimension {
		t.Fatalf("percentage form: got %#x", got)
	}
	cur.ReadFixed()
	if got := cur.ReadUnit(); got != bytecode.UnitPct {
		t.Errorf("unit: got %v", got)
	}

	mustFail(t, "volume", "101")
	mustFail(t, "volume", "-1")
}

func TestParsePlayDuring(t *testing.T) {
	st := mustParse(t, "play-during", "url(bgm.wav) mix repeat")
	cur := st.Reader()
	opv := cur.ReadOPV()
	want := bytecode.PlayDuringURI | bytecode.PlayDuringMix | bytecode.PlayDuringRepeat
	if opv.Value() != want {
		t.Fatalf("value: got %#x, want %#x", opv.Value(), want)
	}
	if got := cur.ReadString(); got.Data() != "bgm.wav" {
		t.Errorf("uri: got %q", got.Data())
	}

	mustFail(t, "play-during", "url(a) mix mix")
}

func TestParseNomemPropagates(t *testing.T) {
	sheet := NewStylesheet()
	sheet.SetBudget(0)
	c := NewContext(sheet)

	_, err := ParseDeclaration(c, "width", "10px")
	if !errors.Is(err, ErrNomem) {
		t.Fatalf("expected ErrNomem, got %v", err)
	}
}

func TestParseUnitlessNonZeroRejected(t *testing.T) {
	mustFail(t, "width", "100")
	// Zero without a unit is acceptable.
	mustParse(t, "width", "0")
}

func TestParseDeclarationRejectsTrailingGarbage(t *testing.T) {
	mustFail(t, "width", "10px 20px")
	mustFail(t, "display", "block inline")
}
