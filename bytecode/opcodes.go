package bytecode

// Property-local value codes. Many payload-bearing cases carry the 0x80
// bit, but not all: the list items of content, counters and the family
// lists, and the vertical background-position length, use small codes, so the
// presence of a payload is decided per property, not by that bit alone.

// azimuth. The positional keywords occupy the low nibble and may be
// combined with AzimuthBehind.
const (
	AzimuthLeftSide    uint16 = 0x00
	AzimuthFarLeft     uint16 = 0x01
	AzimuthLeft        uint16 = 0x02
	AzimuthCenterLeft  uint16 = 0x03
	AzimuthCenter      uint16 = 0x04
	AzimuthCenterRight uint16 = 0x05
	AzimuthRight       uint16 = 0x06
	AzimuthFarRight    uint16 = 0x07
	AzimuthRightSide   uint16 = 0x08
	AzimuthBehind      uint16 = 1 << 5
	AzimuthLeftwards   uint16 = 0x40
	AzimuthRightwards  uint16 = 0x41
	AzimuthAngle       uint16 = 0x80 // payload: fixed, unit
)

// background-attachment
const (
	BackgroundAttachmentFixed  uint16 = 0x00
	BackgroundAttachmentScroll uint16 = 0x01
)

// background-color
const (
	BackgroundColorTransparent uint16 = 0x00
	BackgroundColorSet         uint16 = 0x80 // payload: colour
)

// background-image
const (
	BackgroundImageNone uint16 = 0x00
	BackgroundImageURI  uint16 = 0x80 // payload: string
)

// background-position. Horizontal in the high nibble, vertical in the
// low; Set variants append (fixed, unit) in horizontal, vertical order.
const (
	BackgroundPositionHorzSet    uint16 = 0x80
	BackgroundPositionHorzCenter uint16 = 0x00
	BackgroundPositionHorzRight  uint16 = 0x10
	BackgroundPositionHorzLeft   uint16 = 0x20
	BackgroundPositionVertSet    uint16 = 0x08
	BackgroundPositionVertCenter uint16 = 0x00
	BackgroundPositionVertBottom uint16 = 0x01
	BackgroundPositionVertTop    uint16 = 0x02
)

// background-repeat
const (
	BackgroundRepeatNoRepeat uint16 = 0x00
	BackgroundRepeatRepeatX  uint16 = 0x01
	BackgroundRepeatRepeatY  uint16 = 0x02
	BackgroundRepeatRepeat   uint16 = 0x03
)

// border-*-color, outline-color
const (
	BorderColorTransparent uint16 = 0x00
	BorderColorSet         uint16 = 0x80 // payload: colour
	OutlineColorInvert     uint16 = 0x00
	OutlineColorSet        uint16 = 0x80 // payload: colour
)

// border-*-style, outline-style
const (
	BorderStyleNone   uint16 = 0x00
	BorderStyleHidden uint16 = 0x01
	BorderStyleDotted uint16 = 0x02
	BorderStyleDashed uint16 = 0x03
	BorderStyleSolid  uint16 = 0x04
	BorderStyleDouble uint16 = 0x05
	BorderStyleGroove uint16 = 0x06
	BorderStyleRidge  uint16 = 0x07
	BorderStyleInset  uint16 = 0x08
	BorderStyleOutset uint16 = 0x09
)

// border-*-width, outline-width
const (
	BorderWidthThin   uint16 = 0x00
	BorderWidthMedium uint16 = 0x01
	BorderWidthThick  uint16 = 0x02
	BorderWidthSet    uint16 = 0x80 // payload: fixed, unit
)

// border-collapse
const (
	BorderCollapseCollapse uint16 = 0x00
	BorderCollapseSeparate uint16 = 0x01
)

// border-spacing. Payload is two (fixed, unit) pairs, horizontal first.
const (
	BorderSpacingSet uint16 = 0x80
)

// bottom, left, right, top, height, width, margin-* (length-or-auto)
const (
	BottomAuto uint16 = 0x00
	BottomSet  uint16 = 0x80 // payload: fixed, unit
	LeftAuto   uint16 = 0x00
	LeftSet    uint16 = 0x80
	RightAuto  uint16 = 0x00
	RightSet   uint16 = 0x80
	TopAuto    uint16 = 0x00
	TopSet     uint16 = 0x80
	HeightAuto uint16 = 0x00
	HeightSet  uint16 = 0x80
	WidthAuto  uint16 = 0x00
	WidthSet   uint16 = 0x80
	MarginAuto uint16 = 0x00
	MarginSet  uint16 = 0x80
)

// caption-side
const (
	CaptionSideTop    uint16 = 0x00
	CaptionSideBottom uint16 = 0x01
)

// clear
const (
	ClearNone  uint16 = 0x00
	ClearLeft  uint16 = 0x01
	ClearRight uint16 = 0x02
	ClearBoth  uint16 = 0x03
)

// clip. For rect shapes, bits 3..6 mark the top/right/bottom/left
// operands that are auto; each non-auto operand appends (fixed, unit) in
// source order.
const (
	ClipAuto      uint16 = 0x00
	ClipShapeRect uint16 = 0x80
	ClipShapeMask uint16 = 0xff87
	ClipRectTopAuto    uint16 = 1 << 3
	ClipRectRightAuto  uint16 = 1 << 4
	ClipRectBottomAuto uint16 = 1 << 5
	ClipRectLeftAuto   uint16 = 1 << 6
)

// color
const (
	ColorSet uint16 = 0x80 // payload: colour
)

// content. The low byte of the value is the kind of the first item; for
// counter kinds the list-style-type is carried above ContentStyleShift.
// Each item's payload is followed by a 32-bit word holding the next
// item's kind, with ContentNormal terminating the list.
const (
	ContentNormal       uint16 = 0x00
	ContentNone         uint16 = 0x01
	ContentString       uint16 = 0x02 // payload: string
	ContentURI          uint16 = 0x03 // payload: string
	ContentCounter      uint16 = 0x04 // payload: string
	ContentCounters     uint16 = 0x05 // payload: string, string
	ContentAttr         uint16 = 0x06 // payload: string
	ContentOpenQuote    uint16 = 0x07
	ContentCloseQuote   uint16 = 0x08
	ContentNoOpenQuote  uint16 = 0x09
	ContentNoCloseQuote uint16 = 0x0a

	ContentKindMask   uint16 = 0xff
	ContentStyleShift        = 8
)

// counter-increment, counter-reset. Named lists are (string, fixed)
// pairs, each followed by a 32-bit continuation word; None terminates.
const (
	CounterIncrementNone  uint16 = 0x00
	CounterIncrementNamed uint16 = 0x01
	CounterResetNone      uint16 = 0x00
	CounterResetNamed     uint16 = 0x01
)

// cue-after, cue-before
const (
	CueAfterNone  uint16 = 0x00
	CueAfterURI   uint16 = 0x80 // payload: string
	CueBeforeNone uint16 = 0x00
	CueBeforeURI  uint16 = 0x80
)

// cursor. A URI list is CursorURI followed by a string, each further URI
// introduced by a bare CursorURI word; the final keyword's code
// terminates the list.
const (
	CursorAuto      uint16 = 0x00
	CursorCrosshair uint16 = 0x01
	CursorDefault   uint16 = 0x02
	CursorPointer   uint16 = 0x03
	CursorMove      uint16 = 0x04
	CursorEResize   uint16 = 0x05
	CursorNEResize  uint16 = 0x06
	CursorNWResize  uint16 = 0x07
	CursorNResize   uint16 = 0x08
	CursorSEResize  uint16 = 0x09
	CursorSWResize  uint16 = 0x0a
	CursorSResize   uint16 = 0x0b
	CursorWResize   uint16 = 0x0c
	CursorText      uint16 = 0x0d
	CursorWait      uint16 = 0x0e
	CursorHelp      uint16 = 0x0f
	CursorProgress  uint16 = 0x10
	CursorURI       uint16 = 0x80 // payload: string
)

// direction
const (
	DirectionLTR uint16 = 0x00
	DirectionRTL uint16 = 0x01
)

// display
const (
	DisplayInline           uint16 = 0x00
	DisplayBlock            uint16 = 0x01
	DisplayListItem         uint16 = 0x02
	DisplayRunIn            uint16 = 0x03
	DisplayInlineBlock      uint16 = 0x04
	DisplayTable            uint16 = 0x05
	DisplayInlineTable      uint16 = 0x06
	DisplayTableRowGroup    uint16 = 0x07
	DisplayTableHeaderGroup uint16 = 0x08
	DisplayTableFooterGroup uint16 = 0x09
	DisplayTableRow         uint16 = 0x0a
	DisplayTableColumnGroup uint16 = 0x0b
	DisplayTableColumn      uint16 = 0x0c
	DisplayTableCell        uint16 = 0x0d
	DisplayTableCaption     uint16 = 0x0e
	DisplayNone             uint16 = 0x0f
)

// elevation
const (
	ElevationBelow  uint16 = 0x00
	ElevationLevel  uint16 = 0x01
	ElevationAbove  uint16 = 0x02
	ElevationHigher uint16 = 0x03
	ElevationLower  uint16 = 0x04
	ElevationAngle  uint16 = 0x80 // payload: fixed, unit
)

// empty-cells
const (
	EmptyCellsShow uint16 = 0x00
	EmptyCellsHide uint16 = 0x01
)

// float
const (
	FloatNone  uint16 = 0x00
	FloatLeft  uint16 = 0x01
	FloatRight uint16 = 0x02
)

// font-family. Each list item is one of these codes; String and
// IdentList carry a string payload. End terminates.
const (
	FontFamilyEnd       uint16 = 0x00
	FontFamilyString    uint16 = 0x01 // payload: string
	FontFamilyIdentList uint16 = 0x02 // payload: string
	FontFamilySerif     uint16 = 0x03
	FontFamilySansSerif uint16 = 0x04
	FontFamilyCursive   uint16 = 0x05
	FontFamilyFantasy   uint16 = 0x06
	FontFamilyMonospace uint16 = 0x07
)

// font-size
const (
	FontSizeXXSmall   uint16 = 0x00
	FontSizeXSmall    uint16 = 0x01
	FontSizeSmall     uint16 = 0x02
	FontSizeMedium    uint16 = 0x03
	FontSizeLarge     uint16 = 0x04
	FontSizeXLarge    uint16 = 0x05
	FontSizeXXLarge   uint16 = 0x06
	FontSizeLarger    uint16 = 0x07
	FontSizeSmaller   uint16 = 0x08
	FontSizeDimension uint16 = 0x80 // payload: fixed, unit
)

// font-style
const (
	FontStyleNormal  uint16 = 0x00
	FontStyleItalic  uint16 = 0x01
	FontStyleOblique uint16 = 0x02
)

// font-variant
const (
	FontVariantNormal    uint16 = 0x00
	FontVariantSmallCaps uint16 = 0x01
)

// font-weight
const (
	FontWeightNormal  uint16 = 0x00
	FontWeightBold    uint16 = 0x01
	FontWeightBolder  uint16 = 0x02
	FontWeightLighter uint16 = 0x03
	FontWeight100     uint16 = 0x04
	FontWeight200     uint16 = 0x05
	FontWeight300     uint16 = 0x06
	FontWeight400     uint16 = 0x07
	FontWeight500     uint16 = 0x08
	FontWeight600     uint16 = 0x09
	FontWeight700     uint16 = 0x0a
	FontWeight800     uint16 = 0x0b
	FontWeight900     uint16 = 0x0c
)

// letter-spacing, word-spacing
const (
	LetterSpacingNormal uint16 = 0x00
	LetterSpacingSet    uint16 = 0x80 // payload: fixed, unit
	WordSpacingNormal   uint16 = 0x00
	WordSpacingSet      uint16 = 0x80
)

// line-height
const (
	LineHeightNormal    uint16 = 0x00
	LineHeightNumber    uint16 = 0x80 // payload: fixed
	LineHeightDimension uint16 = 0x81 // payload: fixed, unit
)

// list-style-image
const (
	ListStyleImageNone uint16 = 0x00
	ListStyleImageURI  uint16 = 0x80 // payload: string
)

// list-style-position
const (
	ListStylePositionInside  uint16 = 0x00
	ListStylePositionOutside uint16 = 0x01
)

// list-style-type
const (
	ListStyleTypeDisc               uint16 = 0x00
	ListStyleTypeCircle             uint16 = 0x01
	ListStyleTypeSquare             uint16 = 0x02
	ListStyleTypeDecimal            uint16 = 0x03
	ListStyleTypeDecimalLeadingZero uint16 = 0x04
	ListStyleTypeLowerRoman         uint16 = 0x05
	ListStyleTypeUpperRoman         uint16 = 0x06
	ListStyleTypeLowerGreek         uint16 = 0x07
	ListStyleTypeLowerLatin         uint16 = 0x08
	ListStyleTypeUpperLatin         uint16 = 0x09
	ListStyleTypeArmenian           uint16 = 0x0a
	ListStyleTypeGeorgian           uint16 = 0x0b
	ListStyleTypeLowerAlpha         uint16 = 0x0c
	ListStyleTypeUpperAlpha         uint16 = 0x0d
	ListStyleTypeNone               uint16 = 0x0e
)

// max-height, max-width
const (
	MaxHeightNone uint16 = 0x00
	MaxHeightSet  uint16 = 0x80 // payload: fixed, unit
	MaxWidthNone  uint16 = 0x00
	MaxWidthSet   uint16 = 0x80
)

// min-height, min-width
const (
	MinHeightSet uint16 = 0x80 // payload: fixed, unit
	MinWidthSet  uint16 = 0x80
)

// orphans, widows, pitch-range, richness, stress (bare number)
const (
	OrphansSet    uint16 = 0x80 // payload: fixed
	WidowsSet     uint16 = 0x80
	PitchRangeSet uint16 = 0x80
	RichnessSet   uint16 = 0x80
	StressSet     uint16 = 0x80
)

// overflow
const (
	OverflowVisible uint16 = 0x00
	OverflowHidden  uint16 = 0x01
	OverflowScroll  uint16 = 0x02
	OverflowAuto    uint16 = 0x03
)

// padding-*
const (
	PaddingSet uint16 = 0x80 // payload: fixed, unit
)

// page-break-after, page-break-before
const (
	PageBreakAuto   uint16 = 0x00
	PageBreakAlways uint16 = 0x01
	PageBreakAvoid  uint16 = 0x02
	PageBreakLeft   uint16 = 0x03
	PageBreakRight  uint16 = 0x04
)

// pause-after, pause-before (time or percentage)
const (
	PauseAfterSet  uint16 = 0x80 // payload: fixed, unit
	PauseBeforeSet uint16 = 0x80
)

// pitch
const (
	PitchXLow      uint16 = 0x00
	PitchLow       uint16 = 0x01
	PitchMedium    uint16 = 0x02
	PitchHigh      uint16 = 0x03
	PitchXHigh     uint16 = 0x04
	PitchFrequency uint16 = 0x80 // payload: fixed, unit
)

// play-during. Mix/Repeat may be OR'd onto URI.
const (
	PlayDuringAuto   uint16 = 0x00
	PlayDuringNone   uint16 = 0x01
	PlayDuringMix    uint16 = 0x02
	PlayDuringRepeat uint16 = 0x04
	PlayDuringURI    uint16 = 0x80 // payload: string
)

// position
const (
	PositionStatic   uint16 = 0x00
	PositionRelative uint16 = 0x01
	PositionAbsolute uint16 = 0x02
	PositionFixed    uint16 = 0x03
)

// quotes. Pairs of strings, each pair followed by a 32-bit continuation
// word; None terminates.
const (
	QuotesNone   uint16 = 0x00
	QuotesString uint16 = 0x80 // payload: string, string
)

// speak-header
const (
	SpeakHeaderOnce   uint16 = 0x00
	SpeakHeaderAlways uint16 = 0x01
)

// speak-numeral
const (
	SpeakNumeralDigits     uint16 = 0x00
	SpeakNumeralContinuous uint16 = 0x01
)

// speak-punctuation
const (
	SpeakPunctuationCode uint16 = 0x00
	SpeakPunctuationNone uint16 = 0x01
)

// speak
const (
	SpeakNormal   uint16 = 0x00
	SpeakNone     uint16 = 0x01
	SpeakSpellOut uint16 = 0x02
)

// speech-rate
const (
	SpeechRateXSlow  uint16 = 0x00
	SpeechRateSlow   uint16 = 0x01
	SpeechRateMedium uint16 = 0x02
	SpeechRateFast   uint16 = 0x03
	SpeechRateXFast  uint16 = 0x04
	SpeechRateFaster uint16 = 0x05
	SpeechRateSlower uint16 = 0x06
	SpeechRateSet    uint16 = 0x80 // payload: fixed
)

// table-layout
const (
	TableLayoutAuto  uint16 = 0x00
	TableLayoutFixed uint16 = 0x01
)

// text-align
const (
	TextAlignLeft    uint16 = 0x00
	TextAlignRight   uint16 = 0x01
	TextAlignCenter  uint16 = 0x02
	TextAlignJustify uint16 = 0x03
)

// text-decoration. The line keywords are independent bits; None is a
// distinct code outside the bit range.
const (
	TextDecorationUnderline   uint16 = 1 << 0
	TextDecorationOverline    uint16 = 1 << 1
	TextDecorationLineThrough uint16 = 1 << 2
	TextDecorationBlink       uint16 = 1 << 3
	TextDecorationNone        uint16 = 0x10
)

// text-indent
const (
	TextIndentSet uint16 = 0x80 // payload: fixed, unit
)

// text-transform
const (
	TextTransformCapitalize uint16 = 0x00
	TextTransformUppercase  uint16 = 0x01
	TextTransformLowercase  uint16 = 0x02
	TextTransformNone       uint16 = 0x03
)

// unicode-bidi
const (
	UnicodeBidiNormal   uint16 = 0x00
	UnicodeBidiEmbed    uint16 = 0x01
	UnicodeBidiOverride uint16 = 0x02
)

// vertical-align
const (
	VerticalAlignBaseline   uint16 = 0x00
	VerticalAlignSub        uint16 = 0x01
	VerticalAlignSuper      uint16 = 0x02
	VerticalAlignTop        uint16 = 0x03
	VerticalAlignTextTop    uint16 = 0x04
	VerticalAlignMiddle     uint16 = 0x05
	VerticalAlignBottom     uint16 = 0x06
	VerticalAlignTextBottom uint16 = 0x07
	VerticalAlignSet        uint16 = 0x80 // payload: fixed, unit
)

// visibility
const (
	VisibilityVisible  uint16 = 0x00
	VisibilityHidden   uint16 = 0x01
	VisibilityCollapse uint16 = 0x02
)

// voice-family. Same list framing as font-family.
const (
	VoiceFamilyEnd       uint16 = 0x00
	VoiceFamilyString    uint16 = 0x01 // payload: string
	VoiceFamilyIdentList uint16 = 0x02 // payload: string
	VoiceFamilyMale      uint16 = 0x03
	VoiceFamilyFemale    uint16 = 0x04
	VoiceFamilyChild     uint16 = 0x05
)

// volume
const (
	VolumeSilent    uint16 = 0x00
	VolumeXSoft     uint16 = 0x01
	VolumeSoft      uint16 = 0x02
	VolumeMedium    uint16 = 0x03
	VolumeLoud      uint16 = 0x04
	VolumeXLoud     uint16 = 0x05
	VolumeNumber    uint16 = 0x80 // payload: fixed
	VolumeDimension uint16 = 0x81 // payload: fixed, unit
)

// white-space
const (
	WhiteSpaceNormal  uint16 = 0x00
	WhiteSpacePre     uint16 = 0x01
	WhiteSpaceNowrap  uint16 = 0x02
	WhiteSpacePreWrap uint16 = 0x03
	WhiteSpacePreLine uint16 = 0x04
)

// z-index
const (
	ZIndexAuto uint16 = 0x00
	ZIndexSet  uint16 = 0x80 // payload: fixed
)
