package bytecode

// PropertyID enumerates the longhand properties, in the order the parser
// dispatch table is indexed. The ordering is part of the stable ABI; new
// properties append at the end.
type PropertyID uint16

const (
	PropAzimuth PropertyID = iota
	PropBackgroundAttachment
	PropBackgroundColor
	PropBackgroundImage
	PropBackgroundPosition
	PropBackgroundRepeat
	PropBorderBottomColor
	PropBorderBottomStyle
	PropBorderBottomWidth
	PropBorderCollapse
	PropBorderLeftColor
	PropBorderLeftStyle
	PropBorderLeftWidth
	PropBorderRightColor
	PropBorderRightStyle
	PropBorderRightWidth
	PropBorderSpacing
	PropBorderTopColor
	PropBorderTopStyle
	PropBorderTopWidth
	PropBottom
	PropCaptionSide
	PropClear
	PropClip
	PropColor
	PropContent
	PropCounterIncrement
	PropCounterReset
	PropCueAfter
	PropCueBefore
	PropCursor
	PropDirection
	PropDisplay
	PropElevation
	PropEmptyCells
	PropFloat
	PropFontFamily
	PropFontSize
	PropFontStyle
	PropFontVariant
	PropFontWeight
	PropHeight
	PropLeft
	PropLetterSpacing
	PropLineHeight
	PropListStyleImage
	PropListStylePosition
	PropListStyleType
	PropMarginBottom
	PropMarginLeft
	PropMarginRight
	PropMarginTop
	PropMaxHeight
	PropMaxWidth
	PropMinHeight
	PropMinWidth
	PropOrphans
	PropOutlineColor
	PropOutlineStyle
	PropOutlineWidth
	PropOverflow
	PropPaddingBottom
	PropPaddingLeft
	PropPaddingRight
	PropPaddingTop
	PropPageBreakAfter
	PropPageBreakBefore
	PropPageBreakInside
	PropPauseAfter
	PropPauseBefore
	PropPitchRange
	PropPitch
	PropPlayDuring
	PropPosition
	PropQuotes
	PropRichness
	PropRight
	PropSpeakHeader
	PropSpeakNumeral
	PropSpeakPunctuation
	PropSpeak
	PropSpeechRate
	PropStress
	PropTableLayout
	PropTextAlign
	PropTextDecoration
	PropTextIndent
	PropTextTransform
	PropTop
	PropUnicodeBidi
	PropVerticalAlign
	PropVisibility
	PropVoiceFamily
	PropVolume
	PropWhiteSpace
	PropWidows
	PropWidth
	PropWordSpacing
	PropZIndex

	propCount
)

const (
	FirstProp = PropAzimuth
	LastProp  = PropZIndex

	// NumProps is the number of longhand properties.
	NumProps = int(propCount)
)
