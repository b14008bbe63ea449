package cascade

import (
	"github.com/zhuyadong/libcss/bytecode"
	"github.com/zhuyadong/libcss/intern"
)

// Value storage shapes. The state field always uses the property's
// public enumeration with zero meaning inherit.
type enumValue struct {
	state uint8
}

type lengthValue struct {
	state uint8
	value bytecode.Fixed
	unit  Unit
}

type twoLengthValue struct {
	state  uint8
	a, b   bytecode.Fixed
	aUnit  Unit
	bUnit  Unit
}

type numberValue struct {
	state uint8
	value bytecode.Fixed
}

type colourValue struct {
	state  uint8
	colour bytecode.Color
}

type uriValue struct {
	state uint8
	uri   *intern.String
}

type stringListValue struct {
	state   uint8
	strings []*intern.String
}

// Rect is a computed clip rectangle. Auto operands carry no length.
type Rect struct {
	Top, Right, Bottom, Left                 bytecode.Fixed
	TopUnit, RightUnit, BottomUnit, LeftUnit Unit
	TopAuto, RightAuto, BottomAuto, LeftAuto bool
}

// ComputedStyle is the computed-style record for one element. Its typed
// setters are the only writers; the record owns one reference to every
// interned string it retains.
type ComputedStyle struct {
	azimuth              lengthValue
	backgroundAttachment enumValue
	backgroundColor      colourValue
	backgroundImage      uriValue
	backgroundPosition   twoLengthValue
	backgroundRepeat     enumValue
	borderBottomColor    colourValue
	borderBottomStyle    enumValue
	borderBottomWidth    lengthValue
	borderCollapse       enumValue
	borderLeftColor      colourValue
	borderLeftStyle      enumValue
	borderLeftWidth      lengthValue
	borderRightColor     colourValue
	borderRightStyle     enumValue
	borderRightWidth     lengthValue
	borderSpacing        twoLengthValue
	borderTopColor       colourValue
	borderTopStyle       enumValue
	borderTopWidth       lengthValue
	bottom               lengthValue
	captionSide          enumValue
	clear                enumValue
	clip                 struct {
		state uint8
		rect  Rect
	}
	color            colourValue
	content          struct {
		state uint8
		items []ContentItem
	}
	counterIncrement struct {
		state    uint8
		counters []Counter
	}
	counterReset struct {
		state    uint8
		counters []Counter
	}
	cueAfter          uriValue
	cueBefore         uriValue
	cursor            stringListValue
	direction         enumValue
	display           enumValue
	elevation         lengthValue
	emptyCells        enumValue
	float             enumValue
	fontFamily        stringListValue
	fontSize          lengthValue
	fontStyle         enumValue
	fontVariant       enumValue
	fontWeight        enumValue
	height            lengthValue
	left              lengthValue
	letterSpacing     lengthValue
	lineHeight        lengthValue
	listStyleImage    uriValue
	listStylePosition enumValue
	listStyleType     enumValue
	marginBottom      lengthValue
	marginLeft        lengthValue
	marginRight       lengthValue
	marginTop         lengthValue
	maxHeight         lengthValue
	maxWidth          lengthValue
	minHeight         lengthValue
	minWidth          lengthValue
	orphans           numberValue
	outlineColor      colourValue
	outlineStyle      enumValue
	outlineWidth      lengthValue
	overflow          enumValue
	paddingBottom     lengthValue
	paddingLeft       lengthValue
	paddingRight      lengthValue
	paddingTop        lengthValue
	pageBreakAfter    enumValue
	pageBreakBefore   enumValue
	pageBreakInside   enumValue
	pauseAfter        lengthValue
	pauseBefore       lengthValue
	pitchRange        numberValue
	pitch             lengthValue
	playDuring        uriValue
	position          enumValue
	quotes            stringListValue
	richness          numberValue
	right             lengthValue
	speakHeader       enumValue
	speakNumeral      enumValue
	speakPunctuation  enumValue
	speak             enumValue
	speechRate        numberValue
	stress            numberValue
	tableLayout       enumValue
	textAlign         enumValue
	textDecoration    enumValue
	textIndent        lengthValue
	textTransform     enumValue
	top               lengthValue
	unicodeBidi       enumValue
	verticalAlign     lengthValue
	visibility        enumValue
	voiceFamily       stringListValue
	volume            lengthValue
	whiteSpace        enumValue
	widows            numberValue
	width             lengthValue
	wordSpacing       lengthValue
	zIndex            numberValue
}

// NewComputedStyle creates an empty record; Initial (or the per-property
// Initial* operations) populate the CSS-defined initial values.
func NewComputedStyle() *ComputedStyle {
	return &ComputedStyle{}
}

// Destroy releases every interned string the record retains.
func (cs *ComputedStyle) Destroy() {
	releaseURI(&cs.backgroundImage)
	releaseURI(&cs.listStyleImage)
	releaseURI(&cs.cueAfter)
	releaseURI(&cs.cueBefore)
	releaseURI(&cs.playDuring)
	releaseStrings(&cs.cursor)
	releaseStrings(&cs.fontFamily)
	releaseStrings(&cs.voiceFamily)
	releaseStrings(&cs.quotes)
	releaseContent(cs.content.items)
	cs.content.items = nil
	releaseCounters(cs.counterIncrement.counters)
	cs.counterIncrement.counters = nil
	releaseCounters(cs.counterReset.counters)
	cs.counterReset.counters = nil
}

func releaseURI(v *uriValue) {
	if v.uri != nil {
		v.uri.Unref()
		v.uri = nil
	}
}

func releaseStrings(v *stringListValue) {
	for _, s := range v.strings {
		s.Unref()
	}
	v.strings = nil
}

func releaseContent(items []ContentItem) {
	for _, it := range items {
		if it.Data != nil {
			it.Data.Unref()
		}
		if it.Sep != nil {
			it.Sep.Unref()
		}
	}
}

func releaseCounters(counters []Counter) {
	for _, c := range counters {
		if c.Name != nil {
			c.Name.Unref()
		}
	}
}

// Generic setter bodies; the exported per-property setters below are the
// public surface.

func setEnum(v *enumValue, state uint8) error {
	v.state = state
	return nil
}

func setLength(v *lengthValue, state uint8, length bytecode.Fixed, unit Unit) error {
	v.state = state
	v.value = length
	v.unit = unit
	return nil
}

func setTwoLength(v *twoLengthValue, state uint8, a bytecode.Fixed, aUnit Unit, b bytecode.Fixed, bUnit Unit) error {
	v.state = state
	v.a, v.aUnit = a, aUnit
	v.b, v.bUnit = b, bUnit
	return nil
}

func setNumber(v *numberValue, state uint8, value bytecode.Fixed) error {
	v.state = state
	v.value = value
	return nil
}

func setColour(v *colourValue, state uint8, colour bytecode.Color) error {
	v.state = state
	v.colour = colour
	return nil
}

func setURI(v *uriValue, state uint8, uri *intern.String) error {
	if uri != nil {
		uri.Ref()
	}
	if v.uri != nil {
		v.uri.Unref()
	}
	v.state = state
	v.uri = uri
	return nil
}

func setStrings(v *stringListValue, state uint8, strings []*intern.String) error {
	for _, s := range strings {
		s.Ref()
	}
	releaseStrings(v)
	v.state = state
	v.strings = strings
	return nil
}

// Enum properties.

func (cs *ComputedStyle) SetBackgroundAttachment(state uint8) error {
	return setEnum(&cs.backgroundAttachment, state)
}
func (cs *ComputedStyle) GetBackgroundAttachment() uint8 { return cs.backgroundAttachment.state }

func (cs *ComputedStyle) SetBackgroundRepeat(state uint8) error {
	return setEnum(&cs.backgroundRepeat, state)
}
func (cs *ComputedStyle) GetBackgroundRepeat() uint8 { return cs.backgroundRepeat.state }

func (cs *ComputedStyle) SetBorderCollapse(state uint8) error {
	return setEnum(&cs.borderCollapse, state)
}
func (cs *ComputedStyle) GetBorderCollapse() uint8 { return cs.borderCollapse.state }

func (cs *ComputedStyle) SetBorderTopStyle(state uint8) error {
	return setEnum(&cs.borderTopStyle, state)
}
func (cs *ComputedStyle) GetBorderTopStyle() uint8 { return cs.borderTopStyle.state }

func (cs *ComputedStyle) SetBorderRightStyle(state uint8) error {
	return setEnum(&cs.borderRightStyle, state)
}
func (cs *ComputedStyle) GetBorderRightStyle() uint8 { return cs.borderRightStyle.state }

func (cs *ComputedStyle) SetBorderBottomStyle(state uint8) error {
	return setEnum(&cs.borderBottomStyle, state)
}
func (cs *ComputedStyle) GetBorderBottomStyle() uint8 { return cs.borderBottomStyle.state }

func (cs *ComputedStyle) SetBorderLeftStyle(state uint8) error {
	return setEnum(&cs.borderLeftStyle, state)
}
func (cs *ComputedStyle) GetBorderLeftStyle() uint8 { return cs.borderLeftStyle.state }

func (cs *ComputedStyle) SetOutlineStyle(state uint8) error {
	return setEnum(&cs.outlineStyle, state)
}
func (cs *ComputedStyle) GetOutlineStyle() uint8 { return cs.outlineStyle.state }

func (cs *ComputedStyle) SetCaptionSide(state uint8) error { return setEnum(&cs.captionSide, state) }
func (cs *ComputedStyle) GetCaptionSide() uint8            { return cs.captionSide.state }

func (cs *ComputedStyle) SetClear(state uint8) error { return setEnum(&cs.clear, state) }
func (cs *ComputedStyle) GetClear() uint8            { return cs.clear.state }

func (cs *ComputedStyle) SetDirection(state uint8) error { return setEnum(&cs.direction, state) }
func (cs *ComputedStyle) GetDirection() uint8            { return cs.direction.state }

func (cs *ComputedStyle) SetDisplay(state uint8) error { return setEnum(&cs.display, state) }
func (cs *ComputedStyle) GetDisplay() uint8            { return cs.display.state }

func (cs *ComputedStyle) SetEmptyCells(state uint8) error { return setEnum(&cs.emptyCells, state) }
func (cs *ComputedStyle) GetEmptyCells() uint8            { return cs.emptyCells.state }

func (cs *ComputedStyle) SetFloat(state uint8) error { return setEnum(&cs.float, state) }
func (cs *ComputedStyle) GetFloat() uint8            { return cs.float.state }

func (cs *ComputedStyle) SetFontStyle(state uint8) error { return setEnum(&cs.fontStyle, state) }
func (cs *ComputedStyle) GetFontStyle() uint8            { return cs.fontStyle.state }

func (cs *ComputedStyle) SetFontVariant(state uint8) error { return setEnum(&cs.fontVariant, state) }
func (cs *ComputedStyle) GetFontVariant() uint8            { return cs.fontVariant.state }

func (cs *ComputedStyle) SetFontWeight(state uint8) error { return setEnum(&cs.fontWeight, state) }
func (cs *ComputedStyle) GetFontWeight() uint8            { return cs.fontWeight.state }

func (cs *ComputedStyle) SetListStylePosition(state uint8) error {
	return setEnum(&cs.listStylePosition, state)
}
func (cs *ComputedStyle) GetListStylePosition() uint8 { return cs.listStylePosition.state }

func (cs *ComputedStyle) SetListStyleType(state uint8) error {
	return setEnum(&cs.listStyleType, state)
}
func (cs *ComputedStyle) GetListStyleType() uint8 { return cs.listStyleType.state }

func (cs *ComputedStyle) SetOverflow(state uint8) error { return setEnum(&cs.overflow, state) }
func (cs *ComputedStyle) GetOverflow() uint8            { return cs.overflow.state }

func (cs *ComputedStyle) SetPageBreakAfter(state uint8) error {
	return setEnum(&cs.pageBreakAfter, state)
}
func (cs *ComputedStyle) GetPageBreakAfter() uint8 { return cs.pageBreakAfter.state }

func (cs *ComputedStyle) SetPageBreakBefore(state uint8) error {
	return setEnum(&cs.pageBreakBefore, state)
}
func (cs *ComputedStyle) GetPageBreakBefore() uint8 { return cs.pageBreakBefore.state }

func (cs *ComputedStyle) SetPageBreakInside(state uint8) error {
	return setEnum(&cs.pageBreakInside, state)
}
func (cs *ComputedStyle) GetPageBreakInside() uint8 { return cs.pageBreakInside.state }

func (cs *ComputedStyle) SetPosition(state uint8) error { return setEnum(&cs.position, state) }
func (cs *ComputedStyle) GetPosition() uint8            { return cs.position.state }

func (cs *ComputedStyle) SetSpeakHeader(state uint8) error { return setEnum(&cs.speakHeader, state) }
func (cs *ComputedStyle) GetSpeakHeader() uint8            { return cs.speakHeader.state }

func (cs *ComputedStyle) SetSpeakNumeral(state uint8) error {
	return setEnum(&cs.speakNumeral, state)
}
func (cs *ComputedStyle) GetSpeakNumeral() uint8 { return cs.speakNumeral.state }

func (cs *ComputedStyle) SetSpeakPunctuation(state uint8) error {
	return setEnum(&cs.speakPunctuation, state)
}
func (cs *ComputedStyle) GetSpeakPunctuation() uint8 { return cs.speakPunctuation.state }

func (cs *ComputedStyle) SetSpeak(state uint8) error { return setEnum(&cs.speak, state) }
func (cs *ComputedStyle) GetSpeak() uint8            { return cs.speak.state }

func (cs *ComputedStyle) SetTableLayout(state uint8) error { return setEnum(&cs.tableLayout, state) }
func (cs *ComputedStyle) GetTableLayout() uint8            { return cs.tableLayout.state }

func (cs *ComputedStyle) SetTextAlign(state uint8) error { return setEnum(&cs.textAlign, state) }
func (cs *ComputedStyle) GetTextAlign() uint8            { return cs.textAlign.state }

func (cs *ComputedStyle) SetTextDecoration(state uint8) error {
	return setEnum(&cs.textDecoration, state)
}
func (cs *ComputedStyle) GetTextDecoration() uint8 { return cs.textDecoration.state }

func (cs *ComputedStyle) SetTextTransform(state uint8) error {
	return setEnum(&cs.textTransform, state)
}
func (cs *ComputedStyle) GetTextTransform() uint8 { return cs.textTransform.state }

func (cs *ComputedStyle) SetUnicodeBidi(state uint8) error { return setEnum(&cs.unicodeBidi, state) }
func (cs *ComputedStyle) GetUnicodeBidi() uint8            { return cs.unicodeBidi.state }

func (cs *ComputedStyle) SetVisibility(state uint8) error { return setEnum(&cs.visibility, state) }
func (cs *ComputedStyle) GetVisibility() uint8            { return cs.visibility.state }

func (cs *ComputedStyle) SetWhiteSpace(state uint8) error { return setEnum(&cs.whiteSpace, state) }
func (cs *ComputedStyle) GetWhiteSpace() uint8            { return cs.whiteSpace.state }

// Length properties.

func (cs *ComputedStyle) SetWidth(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.width, state, length, unit)
}
func (cs *ComputedStyle) GetWidth() (uint8, bytecode.Fixed, Unit) {
	return cs.width.state, cs.width.value, cs.width.unit
}

func (cs *ComputedStyle) SetHeight(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.height, state, length, unit)
}
func (cs *ComputedStyle) GetHeight() (uint8, bytecode.Fixed, Unit) {
	return cs.height.state, cs.height.value, cs.height.unit
}

func (cs *ComputedStyle) SetBottom(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.bottom, state, length, unit)
}
func (cs *ComputedStyle) GetBottom() (uint8, bytecode.Fixed, Unit) {
	return cs.bottom.state, cs.bottom.value, cs.bottom.unit
}

func (cs *ComputedStyle) SetLeft(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.left, state, length, unit)
}
func (cs *ComputedStyle) GetLeft() (uint8, bytecode.Fixed, Unit) {
	return cs.left.state, cs.left.value, cs.left.unit
}

func (cs *ComputedStyle) SetRight(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.right, state, length, unit)
}
func (cs *ComputedStyle) GetRight() (uint8, bytecode.Fixed, Unit) {
	return cs.right.state, cs.right.value, cs.right.unit
}

func (cs *ComputedStyle) SetTop(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.top, state, length, unit)
}
func (cs *ComputedStyle) GetTop() (uint8, bytecode.Fixed, Unit) {
	return cs.top.state, cs.top.value, cs.top.unit
}

func (cs *ComputedStyle) SetMarginTop(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.marginTop, state, length, unit)
}
func (cs *ComputedStyle) GetMarginTop() (uint8, bytecode.Fixed, Unit) {
	return cs.marginTop.state, cs.marginTop.value, cs.marginTop.unit
}

func (cs *ComputedStyle) SetMarginRight(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.marginRight, state, length, unit)
}
func (cs *ComputedStyle) GetMarginRight() (uint8, bytecode.Fixed, Unit) {
	return cs.marginRight.state, cs.marginRight.value, cs.marginRight.unit
}

func (cs *ComputedStyle) SetMarginBottom(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.marginBottom, state, length, unit)
}
func (cs *ComputedStyle) GetMarginBottom() (uint8, bytecode.Fixed, Unit) {
	return cs.marginBottom.state, cs.marginBottom.value, cs.marginBottom.unit
}

func (cs *ComputedStyle) SetMarginLeft(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.marginLeft, state, length, unit)
}
func (cs *ComputedStyle) GetMarginLeft() (uint8, bytecode.Fixed, Unit) {
	return cs.marginLeft.state, cs.marginLeft.value, cs.marginLeft.unit
}

func (cs *ComputedStyle) SetPaddingTop(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.paddingTop, state, length, unit)
}
func (cs *ComputedStyle) GetPaddingTop() (uint8, bytecode.Fixed, Unit) {
	return cs.paddingTop.state, cs.paddingTop.value, cs.paddingTop.unit
}

func (cs *ComputedStyle) SetPaddingRight(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.paddingRight, state, length, unit)
}
func (cs *ComputedStyle) GetPaddingRight() (uint8, bytecode.Fixed, Unit) {
	return cs.paddingRight.state, cs.paddingRight.value, cs.paddingRight.unit
}

func (cs *ComputedStyle) SetPaddingBottom(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.paddingBottom, state, length, unit)
}
func (cs *ComputedStyle) GetPaddingBottom() (uint8, bytecode.Fixed, Unit) {
	return cs.paddingBottom.state, cs.paddingBottom.value, cs.paddingBottom.unit
}

func (cs *ComputedStyle) SetPaddingLeft(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.paddingLeft, state, length, unit)
}
func (cs *ComputedStyle) GetPaddingLeft() (uint8, bytecode.Fixed, Unit) {
	return cs.paddingLeft.state, cs.paddingLeft.value, cs.paddingLeft.unit
}

func (cs *ComputedStyle) SetMinHeight(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.minHeight, state, length, unit)
}
func (cs *ComputedStyle) GetMinHeight() (uint8, bytecode.Fixed, Unit) {
	return cs.minHeight.state, cs.minHeight.value, cs.minHeight.unit
}

func (cs *ComputedStyle) SetMinWidth(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.minWidth, state, length, unit)
}
func (cs *ComputedStyle) GetMinWidth() (uint8, bytecode.Fixed, Unit) {
	return cs.minWidth.state, cs.minWidth.value, cs.minWidth.unit
}

func (cs *ComputedStyle) SetMaxHeight(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.maxHeight, state, length, unit)
}
func (cs *ComputedStyle) GetMaxHeight() (uint8, bytecode.Fixed, Unit) {
	return cs.maxHeight.state, cs.maxHeight.value, cs.maxHeight.unit
}

func (cs *ComputedStyle) SetMaxWidth(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.maxWidth, state, length, unit)
}
func (cs *ComputedStyle) GetMaxWidth() (uint8, bytecode.Fixed, Unit) {
	return cs.maxWidth.state, cs.maxWidth.value, cs.maxWidth.unit
}

func (cs *ComputedStyle) SetLetterSpacing(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.letterSpacing, state, length, unit)
}
func (cs *ComputedStyle) GetLetterSpacing() (uint8, bytecode.Fixed, Unit) {
	return cs.letterSpacing.state, cs.letterSpacing.value, cs.letterSpacing.unit
}

func (cs *ComputedStyle) SetWordSpacing(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.wordSpacing, state, length, unit)
}
func (cs *ComputedStyle) GetWordSpacing() (uint8, bytecode.Fixed, Unit) {
	return cs.wordSpacing.state, cs.wordSpacing.value, cs.wordSpacing.unit
}

func (cs *ComputedStyle) SetTextIndent(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.textIndent, state, length, unit)
}
func (cs *ComputedStyle) GetTextIndent() (uint8, bytecode.Fixed, Unit) {
	return cs.textIndent.state, cs.textIndent.value, cs.textIndent.unit
}

func (cs *ComputedStyle) SetVerticalAlign(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.verticalAlign, state, length, unit)
}
func (cs *ComputedStyle) GetVerticalAlign() (uint8, bytecode.Fixed, Unit) {
	return cs.verticalAlign.state, cs.verticalAlign.value, cs.verticalAlign.unit
}

func (cs *ComputedStyle) SetFontSize(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.fontSize, state, length, unit)
}
func (cs *ComputedStyle) GetFontSize() (uint8, bytecode.Fixed, Unit) {
	return cs.fontSize.state, cs.fontSize.value, cs.fontSize.unit
}

func (cs *ComputedStyle) SetLineHeight(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.lineHeight, state, length, unit)
}
func (cs *ComputedStyle) GetLineHeight() (uint8, bytecode.Fixed, Unit) {
	return cs.lineHeight.state, cs.lineHeight.value, cs.lineHeight.unit
}

func (cs *ComputedStyle) SetBorderTopWidth(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.borderTopWidth, state, length, unit)
}
func (cs *ComputedStyle) GetBorderTopWidth() (uint8, bytecode.Fixed, Unit) {
	return cs.borderTopWidth.state, cs.borderTopWidth.value, cs.borderTopWidth.unit
}

func (cs *ComputedStyle) SetBorderRightWidth(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.borderRightWidth, state, length, unit)
}
func (cs *ComputedStyle) GetBorderRightWidth() (uint8, bytecode.Fixed, Unit) {
	return cs.borderRightWidth.state, cs.borderRightWidth.value, cs.borderRightWidth.unit
}

func (cs *ComputedStyle) SetBorderBottomWidth(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.borderBottomWidth, state, length, unit)
}
func (cs *ComputedStyle) GetBorderBottomWidth() (uint8, bytecode.Fixed, Unit) {
	return cs.borderBottomWidth.state, cs.borderBottomWidth.value, cs.borderBottomWidth.unit
}

func (cs *ComputedStyle) SetBorderLeftWidth(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.borderLeftWidth, state, length, unit)
}
func (cs *ComputedStyle) GetBorderLeftWidth() (uint8, bytecode.Fixed, Unit) {
	return cs.borderLeftWidth.state, cs.borderLeftWidth.value, cs.borderLeftWidth.unit
}

func (cs *ComputedStyle) SetOutlineWidth(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.outlineWidth, state, length, unit)
}
func (cs *ComputedStyle) GetOutlineWidth() (uint8, bytecode.Fixed, Unit) {
	return cs.outlineWidth.state, cs.outlineWidth.value, cs.outlineWidth.unit
}

func (cs *ComputedStyle) SetAzimuth(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.azimuth, state, length, unit)
}
func (cs *ComputedStyle) GetAzimuth() (uint8, bytecode.Fixed, Unit) {
	return cs.azimuth.state, cs.azimuth.value, cs.azimuth.unit
}

func (cs *ComputedStyle) SetElevation(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.elevation, state, length, unit)
}
func (cs *ComputedStyle) GetElevation() (uint8, bytecode.Fixed, Unit) {
	return cs.elevation.state, cs.elevation.value, cs.elevation.unit
}

func (cs *ComputedStyle) SetPitch(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.pitch, state, length, unit)
}
func (cs *ComputedStyle) GetPitch() (uint8, bytecode.Fixed, Unit) {
	return cs.pitch.state, cs.pitch.value, cs.pitch.unit
}

func (cs *ComputedStyle) SetPauseAfter(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.pauseAfter, state, length, unit)
}
func (cs *ComputedStyle) GetPauseAfter() (uint8, bytecode.Fixed, Unit) {
	return cs.pauseAfter.state, cs.pauseAfter.value, cs.pauseAfter.unit
}

func (cs *ComputedStyle) SetPauseBefore(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.pauseBefore, state, length, unit)
}
func (cs *ComputedStyle) GetPauseBefore() (uint8, bytecode.Fixed, Unit) {
	return cs.pauseBefore.state, cs.pauseBefore.value, cs.pauseBefore.unit
}

func (cs *ComputedStyle) SetVolume(state uint8, length bytecode.Fixed, unit Unit) error {
	return setLength(&cs.volume, state, length, unit)
}
func (cs *ComputedStyle) GetVolume() (uint8, bytecode.Fixed, Unit) {
	return cs.volume.state, cs.volume.value, cs.volume.unit
}

// Number properties.

func (cs *ComputedStyle) SetOrphans(state uint8, value bytecode.Fixed) error {
	return setNumber(&cs.orphans, state, value)
}
func (cs *ComputedStyle) GetOrphans() (uint8, bytecode.Fixed) {
	return cs.orphans.state, cs.orphans.value
}

func (cs *ComputedStyle) SetWidows(state uint8, value bytecode.Fixed) error {
	return setNumber(&cs.widows, state, value)
}
func (cs *ComputedStyle) GetWidows() (uint8, bytecode.Fixed) {
	return cs.widows.state, cs.widows.value
}

func (cs *ComputedStyle) SetPitchRange(state uint8, value bytecode.Fixed) error {
	return setNumber(&cs.pitchRange, state, value)
}
func (cs *ComputedStyle) GetPitchRange() (uint8, bytecode.Fixed) {
	return cs.pitchRange.state, cs.pitchRange.value
}

func (cs *ComputedStyle) SetRichness(state uint8, value bytecode.Fixed) error {
	return setNumber(&cs.richness, state, value)
}
func (cs *ComputedStyle) GetRichness() (uint8, bytecode.Fixed) {
	return cs.richness.state, cs.richness.value
}

func (cs *ComputedStyle) SetStress(state uint8, value bytecode.Fixed) error {
	return setNumber(&cs.stress, state, value)
}
func (cs *ComputedStyle) GetStress() (uint8, bytecode.Fixed) {
	return cs.stress.state, cs.stress.value
}

func (cs *ComputedStyle) SetSpeechRate(state uint8, value bytecode.Fixed) error {
	return setNumber(&cs.speechRate, state, value)
}
func (cs *ComputedStyle) GetSpeechRate() (uint8, bytecode.Fixed) {
	return cs.speechRate.state, cs.speechRate.value
}

func (cs *ComputedStyle) SetZIndex(state uint8, value bytecode.Fixed) error {
	return setNumber(&cs.zIndex, state, value)
}
func (cs *ComputedStyle) GetZIndex() (uint8, bytecode.Fixed) {
	return cs.zIndex.state, cs.zIndex.value
}

// Colour properties.

func (cs *ComputedStyle) SetColor(state uint8, colour bytecode.Color) error {
	return setColour(&cs.color, state, colour)
}
func (cs *ComputedStyle) GetColor() (uint8, bytecode.Color) {
	return cs.color.state, cs.color.colour
}

func (cs *ComputedStyle) SetBackgroundColor(state uint8, colour bytecode.Color) error {
	return setColour(&cs.backgroundColor, state, colour)
}
func (cs *ComputedStyle) GetBackgroundColor() (uint8, bytecode.Color) {
	return cs.backgroundColor.state, cs.backgroundColor.colour
}

func (cs *ComputedStyle) SetBorderTopColor(state uint8, colour bytecode.Color) error {
	return setColour(&cs.borderTopColor, state, colour)
}
func (cs *ComputedStyle) GetBorderTopColor() (uint8, bytecode.Color) {
	return cs.borderTopColor.state, cs.borderTopColor.colour
}

func (cs *ComputedStyle) SetBorderRightColor(state uint8, colour bytecode.Color) error {
	return setColour(&cs.borderRightColor, state, colour)
}
func (cs *ComputedStyle) GetBorderRightColor() (uint8, bytecode.Color) {
	return cs.borderRightColor.state, cs.borderRightColor.colour
}

func (cs *ComputedStyle) SetBorderBottomColor(state uint8, colour bytecode.Color) error {
	return setColour(&cs.borderBottomColor, state, colour)
}
func (cs *ComputedStyle) GetBorderBottomColor() (uint8, bytecode.Color) {
	return cs.borderBottomColor.state, cs.borderBottomColor.colour
}

func (cs *ComputedStyle) SetBorderLeftColor(state uint8, colour bytecode.Color) error {
	return setColour(&cs.borderLeftColor, state, colour)
}
func (cs *ComputedStyle) GetBorderLeftColor() (uint8, bytecode.Color) {
	return cs.borderLeftColor.state, cs.borderLeftColor.colour
}

func (cs *ComputedStyle) SetOutlineColor(state uint8, colour bytecode.Color) error {
	return setColour(&cs.outlineColor, state, colour)
}
func (cs *ComputedStyle) GetOutlineColor() (uint8, bytecode.Color) {
	return cs.outlineColor.state, cs.outlineColor.colour
}

// URI properties.

func (cs *ComputedStyle) SetBackgroundImage(state uint8, uri *intern.String) error {
	return setURI(&cs.backgroundImage, state, uri)
}
func (cs *ComputedStyle) GetBackgroundImage() (uint8, *intern.String) {
	return cs.backgroundImage.state, cs.backgroundImage.uri
}

func (cs *ComputedStyle) SetListStyleImage(state uint8, uri *intern.String) error {
	return setURI(&cs.listStyleImage, state, uri)
}
func (cs *ComputedStyle) GetListStyleImage() (uint8, *intern.String) {
	return cs.listStyleImage.state, cs.listStyleImage.uri
}

func (cs *ComputedStyle) SetCueAfter(state uint8, uri *intern.String) error {
	return setURI(&cs.cueAfter, state, uri)
}
func (cs *ComputedStyle) GetCueAfter() (uint8, *intern.String) {
	return cs.cueAfter.state, cs.cueAfter.uri
}

func (cs *ComputedStyle) SetCueBefore(state uint8, uri *intern.String) error {
	return setURI(&cs.cueBefore, state, uri)
}
func (cs *ComputedStyle) GetCueBefore() (uint8, *intern.String) {
	return cs.cueBefore.state, cs.cueBefore.uri
}

func (cs *ComputedStyle) SetPlayDuring(state uint8, uri *intern.String) error {
	return setURI(&cs.playDuring, state, uri)
}
func (cs *ComputedStyle) GetPlayDuring() (uint8, *intern.String) {
	return cs.playDuring.state, cs.playDuring.uri
}

// Multi-length properties.

func (cs *ComputedStyle) SetBackgroundPosition(state uint8, h bytecode.Fixed, hUnit Unit, v bytecode.Fixed, vUnit Unit) error {
	return setTwoLength(&cs.backgroundPosition, state, h, hUnit, v, vUnit)
}
func (cs *ComputedStyle) GetBackgroundPosition() (uint8, bytecode.Fixed, Unit, bytecode.Fixed, Unit) {
	p := &cs.backgroundPosition
	return p.state, p.a, p.aUnit, p.b, p.bUnit
}

func (cs *ComputedStyle) SetBorderSpacing(state uint8, h bytecode.Fixed, hUnit Unit, v bytecode.Fixed, vUnit Unit) error {
	return setTwoLength(&cs.borderSpacing, state, h, hUnit, v, vUnit)
}
func (cs *ComputedStyle) GetBorderSpacing() (uint8, bytecode.Fixed, Unit, bytecode.Fixed, Unit) {
	p := &cs.borderSpacing
	return p.state, p.a, p.aUnit, p.b, p.bUnit
}

// Clip.

func (cs *ComputedStyle) SetClip(state uint8, rect *Rect) error {
	cs.clip.state = state
	if rect != nil {
		cs.clip.rect = *rect
	} else {
		cs.clip.rect = Rect{}
	}
	return nil
}
func (cs *ComputedStyle) GetClip() (uint8, *Rect) {
	return cs.clip.state, &cs.clip.rect
}

// List-valued properties. Setters take one reference per retained
// string; the caller keeps its own references to the slice it passed.

func (cs *ComputedStyle) SetCursor(state uint8, uris []*intern.String) error {
	return setStrings(&cs.cursor, state, uris)
}
func (cs *ComputedStyle) GetCursor() (uint8, []*intern.String) {
	return cs.cursor.state, cs.cursor.strings
}

func (cs *ComputedStyle) SetFontFamily(state uint8, names []*intern.String) error {
	return setStrings(&cs.fontFamily, state, names)
}
func (cs *ComputedStyle) GetFontFamily() (uint8, []*intern.String) {
	return cs.fontFamily.state, cs.fontFamily.strings
}

func (cs *ComputedStyle) SetVoiceFamily(state uint8, names []*intern.String) error {
	return setStrings(&cs.voiceFamily, state, names)
}
func (cs *ComputedStyle) GetVoiceFamily() (uint8, []*intern.String) {
	return cs.voiceFamily.state, cs.voiceFamily.strings
}

func (cs *ComputedStyle) SetQuotes(state uint8, pairs []*intern.String) error {
	return setStrings(&cs.quotes, state, pairs)
}
func (cs *ComputedStyle) GetQuotes() (uint8, []*intern.String) {
	return cs.quotes.state, cs.quotes.strings
}

func (cs *ComputedStyle) SetContent(state uint8, items []ContentItem) error {
	for _, it := range items {
		if it.Data != nil {
			it.Data.Ref()
		}
		if it.Sep != nil {
			it.Sep.Ref()
		}
	}
	releaseContent(cs.content.items)
	cs.content.state = state
	cs.content.items = items
	return nil
}
func (cs *ComputedStyle) GetContent() (uint8, []ContentItem) {
	return cs.content.state, cs.content.items
}

func (cs *ComputedStyle) SetCounterIncrement(state uint8, counters []Counter) error {
	for _, c := range counters {
		if c.Name != nil {
			c.Name.Ref()
		}
	}
	releaseCounters(cs.counterIncrement.counters)
	cs.counterIncrement.state = state
	cs.counterIncrement.counters = counters
	return nil
}
func (cs *ComputedStyle) GetCounterIncrement() (uint8, []Counter) {
	return cs.counterIncrement.state, cs.counterIncrement.counters
}

func (cs *ComputedStyle) SetCounterReset(state uint8, counters []Counter) error {
	for _, c := range counters {
		if c.Name != nil {
			c.Name.Ref()
		}
	}
	releaseCounters(cs.counterReset.counters)
	cs.counterReset.state = state
	cs.counterReset.counters = counters
	return nil
}
func (cs *ComputedStyle) GetCounterReset() (uint8, []Counter) {
	return cs.counterReset.state, cs.counterReset.counters
}
