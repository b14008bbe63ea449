// Package cascade consumes style bytecode during selection: for each
// entry it decides whether the declaration outranks the recorded winner
// and, if so, writes the decoded value into the computed style. It also
// owns the per-property initial/compose/destroy operations.
package cascade

import (
	"errors"

	"github.com/zhuyadong/libcss/bytecode"
	"github.com/zhuyadong/libcss/intern"
)

// ErrNomem is returned when the state's allocator refuses a
// variable-length computed value.
var ErrNomem = errors.New("css: out of memory")

// Unit is the public unit enumeration carried by computed lengths.
// Unrecognized bytecode masks translate to the zero unit.
type Unit uint8

const (
	UnitPx Unit = iota
	UnitEx
	UnitEm
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
	UnitPct
	UnitDeg
	UnitGrad
	UnitRad
	UnitMs
	UnitS
	UnitHz
	UnitKhz
)

// UnitFromBytecode maps a parser unit mask to the public enumeration.
func UnitFromBytecode(u bytecode.Unit) Unit {
	switch u {
	case bytecode.UnitPx:
		return UnitPx
	case bytecode.UnitEx:
		return UnitEx
	case bytecode.UnitEm:
		return UnitEm
	case bytecode.UnitIn:
		return UnitIn
	case bytecode.UnitCm:
		return UnitCm
	case bytecode.UnitMm:
		return UnitMm
	case bytecode.UnitPt:
		return UnitPt
	case bytecode.UnitPc:
		return UnitPc
	case bytecode.UnitPct:
		return UnitPct
	case bytecode.UnitDeg:
		return UnitDeg
	case bytecode.UnitGrad:
		return UnitGrad
	case bytecode.UnitRad:
		return UnitRad
	case bytecode.UnitMs:
		return UnitMs
	case bytecode.UnitS:
		return UnitS
	case bytecode.UnitHz:
		return UnitHz
	case bytecode.UnitKhz:
		return UnitKhz
	}
	return 0
}

// Shared state codes for the canonical payload shapes. The inherit
// state is always zero.
const (
	// Length-shaped properties (width, height, min/max sizes, margins,
	// paddings, offsets, letter/word spacing, text-indent and the
	// pauses). Set means a length payload applies; the
	// keyword states cover the per-property alternatives.
	LengthInherit uint8 = iota
	LengthSet
	LengthAuto
	LengthNormal
	LengthNone
)

const (
	// Colour-valued properties.
	ColourInherit uint8 = iota
	ColourSet
	ColourTransparent
	ColourInvert
)

const (
	// URI-valued properties (background-image, list-style-image,
	// cue-*).
	URIInherit uint8 = iota
	URINone
	URISet
)

const (
	BorderStyleInherit uint8 = iota
	BorderStyleNone
	BorderStyleHidden
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

const (
	BorderWidthInherit uint8 = iota
	BorderWidthThin
	BorderWidthMedium
	BorderWidthThick
	BorderWidthWidth
)

const (
	NumberInherit uint8 = iota
	NumberSet
)

// Enum-valued properties encode their public state as the bytecode
// value plus one, with zero reserved for inherit.
func enumState(value uint16) uint8 { return uint8(value) + 1 }

const (
	DisplayInherit uint8 = iota
	DisplayInline
	DisplayBlock
	DisplayListItem
	DisplayRunIn
	DisplayInlineBlock
	DisplayTable
	DisplayInlineTable
	DisplayTableRowGroup
	DisplayTableHeaderGroup
	DisplayTableFooterGroup
	DisplayTableRow
	DisplayTableColumnGroup
	DisplayTableColumn
	DisplayTableCell
	DisplayTableCaption
	DisplayNone
)

const (
	PositionInherit uint8 = iota
	PositionStatic
	PositionRelative
	PositionAbsolute
	PositionFixed
)

const (
	FloatInherit uint8 = iota
	FloatNone
	FloatLeft
	FloatRight
)

const (
	ClearInherit uint8 = iota
	ClearNone
	ClearLeft
	ClearRight
	ClearBoth
)

const (
	VisibilityInherit uint8 = iota
	VisibilityVisible
	VisibilityHidden
	VisibilityCollapse
)

const (
	OverflowInherit uint8 = iota
	OverflowVisible
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

const (
	DirectionInherit uint8 = iota
	DirectionLTR
	DirectionRTL
)

const (
	TextDecorationInherit uint8 = 0
	// The line keywords are independent bits; None is a distinct code.
	TextDecorationUnderline   uint8 = 1 << 0
	TextDecorationOverline    uint8 = 1 << 1
	TextDecorationLineThrough uint8 = 1 << 2
	TextDecorationBlink       uint8 = 1 << 3
	TextDecorationNone        uint8 = 0x10
)

const (
	ClipInherit uint8 = iota
	ClipAuto
	ClipRect
)

const (
	ZIndexInherit uint8 = iota
	ZIndexAuto
	ZIndexSet
)

const (
	ContentInherit uint8 = iota
	ContentNormal
	ContentNone
	ContentSet
)

const (
	CounterInherit uint8 = iota
	CounterNamed
	CounterNone
)

const (
	QuotesInherit uint8 = iota
	QuotesString
	QuotesNone
)

const (
	FontFamilyInherit uint8 = iota
	FontFamilySerif
	FontFamilySansSerif
	FontFamilyCursive
	FontFamilyFantasy
	FontFamilyMonospace
	FontFamilyNamed
)

const (
	VoiceFamilyInherit uint8 = iota
	VoiceFamilyMale
	VoiceFamilyFemale
	VoiceFamilyChild
	VoiceFamilyNamed
)

const (
	FontSizeInherit uint8 = iota
	FontSizeXXSmall
	FontSizeXSmall
	FontSizeSmall
	FontSizeMedium
	FontSizeLarge
	FontSizeXLarge
	FontSizeXXLarge
	FontSizeLarger
	FontSizeSmaller
	FontSizeDimension
)

const (
	VerticalAlignInherit uint8 = iota
	VerticalAlignBaseline
	VerticalAlignSub
	VerticalAlignSuper
	VerticalAlignTop
	VerticalAlignTextTop
	VerticalAlignMiddle
	VerticalAlignBottom
	VerticalAlignTextBottom
	VerticalAlignSet
)

const (
	LineHeightInherit uint8 = iota
	LineHeightNormal
	LineHeightNumber
	LineHeightDimension
)

const (
	FontWeightInherit uint8 = iota
	FontWeightNormal
	FontWeightBold
	FontWeightBolder
	FontWeightLighter
	FontWeight100
	FontWeight200
	FontWeight300
	FontWeight400
	FontWeight500
	FontWeight600
	FontWeight700
	FontWeight800
	FontWeight900
)

const (
	SpeechRateInherit uint8 = iota
	SpeechRateXSlow
	SpeechRateSlow
	SpeechRateMedium
	SpeechRateFast
	SpeechRateXFast
	SpeechRateFaster
	SpeechRateSlower
	SpeechRateSet
)

const (
	VolumeInherit uint8 = iota
	VolumeSilent
	VolumeXSoft
	VolumeSoft
	VolumeMedium
	VolumeLoud
	VolumeXLoud
	VolumeNumber
	VolumePct
)

const (
	PitchInherit uint8 = iota
	PitchXLow
	PitchLow
	PitchMedium
	PitchHigh
	PitchXHigh
	PitchFrequency
)

const (
	ElevationInherit uint8 = iota
	ElevationBelow
	ElevationLevel
	ElevationAbove
	ElevationHigher
	ElevationLower
	ElevationAngle
)

// Azimuth public states mirror the bytecode encoding plus one: the
// positional keywords and the behind bit keep their bit layout, with
// the angle form at AzimuthAngle.
const (
	AzimuthInherit uint8 = 0
	AzimuthCenter  uint8 = uint8(bytecode.AzimuthCenter) + 1
	AzimuthAngle   uint8 = 0x81
)

const (
	BackgroundPositionInherit uint8 = iota
	BackgroundPositionSet
)

const (
	BorderSpacingInherit uint8 = iota
	BorderSpacingSet
)

// Cursor states are the fallback keyword's bytecode value plus one
// (enumState); any URIs are carried in a separate list beside the state.

// Counter is one entry of a counter-increment or counter-reset list.
// The terminating entry has a nil name.
type Counter struct {
	Name  *intern.String
	Value bytecode.Fixed
}

// ContentItemType tags a ContentItem.
type ContentItemType uint8

const (
	ContentItemEnd ContentItemType = iota
	ContentItemString
	ContentItemURI
	ContentItemCounter
	ContentItemCounters
	ContentItemAttr
	ContentItemOpenQuote
	ContentItemCloseQuote
	ContentItemNoOpenQuote
	ContentItemNoCloseQuote
)

// ContentItem is one component of a computed content value. Counter
// items carry the list-style-type in Style; counters items additionally
// carry a separator.
type ContentItem struct {
	Type  ContentItemType
	Data  *intern.String
	Sep   *intern.String
	Style uint16
}

// Hint is a caller-supplied authored value bypassing the bytecode path.
// Status and the payload fields mirror the property's setter signature.
type Hint struct {
	Status  uint8
	Length  bytecode.Fixed
	Unit    Unit
	Length2 bytecode.Fixed
	Unit2   Unit
	Colour  bytecode.Color
	String  *intern.String
	Strings []*intern.String
	Counter []Counter
	Content []ContentItem
	Integer bytecode.Fixed
}
