package parse

import "github.com/zhuyadong/libcss/bytecode"

// propertyHandlers maps each longhand property to its parser, indexed by
// property id. One parser per property; the ordering follows the
// PropertyID enumeration and is part of the stable ABI.
var propertyHandlers = [bytecode.NumProps]Handler{
	bytecode.PropAzimuth:              parseAzimuth,
	bytecode.PropBackgroundAttachment: parseBackgroundAttachment,
	bytecode.PropBackgroundColor:      parseBackgroundColor,
	bytecode.PropBackgroundImage:      parseBackgroundImage,
	bytecode.PropBackgroundPosition:   parseBackgroundPosition,
	bytecode.PropBackgroundRepeat:     parseBackgroundRepeat,
	bytecode.PropBorderBottomColor:    parseBorderBottomColor,
	bytecode.PropBorderBottomStyle:    parseBorderBottomStyle,
	bytecode.PropBorderBottomWidth:    parseBorderBottomWidth,
	bytecode.PropBorderCollapse:       parseBorderCollapse,
	bytecode.PropBorderLeftColor:      parseBorderLeftColor,
	bytecode.PropBorderLeftStyle:      parseBorderLeftStyle,
	bytecode.PropBorderLeftWidth:      parseBorderLeftWidth,
	bytecode.PropBorderRightColor:     parseBorderRightColor,
	bytecode.PropBorderRightStyle:     parseBorderRightStyle,
	bytecode.PropBorderRightWidth:     parseBorderRightWidth,
	bytecode.PropBorderSpacing:        parseBorderSpacing,
	bytecode.PropBorderTopColor:       parseBorderTopColor,
	bytecode.PropBorderTopStyle:       parseBorderTopStyle,
	bytecode.PropBorderTopWidth:       parseBorderTopWidth,
	bytecode.PropBottom:               parseBottom,
	bytecode.PropCaptionSide:          parseCaptionSide,
	bytecode.PropClear:                parseClear,
	bytecode.PropClip:                 parseClip,
	bytecode.PropColor:                parseColor,
	bytecode.PropContent:              parseContent,
	bytecode.PropCounterIncrement:     parseCounterIncrement,
	bytecode.PropCounterReset:         parseCounterReset,
	bytecode.PropCueAfter:             parseCueAfter,
	bytecode.PropCueBefore:            parseCueBefore,
	bytecode.PropCursor:               parseCursor,
	bytecode.PropDirection:            parseDirection,
	bytecode.PropDisplay:              parseDisplay,
	bytecode.PropElevation:            parseElevation,
	bytecode.PropEmptyCells:           parseEmptyCells,
	bytecode.PropFloat:                parseFloat,
	bytecode.PropFontFamily:           parseFontFamily,
	bytecode.PropFontSize:             parseFontSize,
	bytecode.PropFontStyle:            parseFontStyle,
	bytecode.PropFontVariant:          parseFontVariant,
	bytecode.PropFontWeight:           parseFontWeight,
	bytecode.PropHeight:               parseHeight,
	bytecode.PropLeft:                 parseLeft,
	bytecode.PropLetterSpacing:        parseLetterSpacing,
	bytecode.PropLineHeight:           parseLineHeight,
	bytecode.PropListStyleImage:       parseListStyleImage,
	bytecode.PropListStylePosition:    parseListStylePosition,
	bytecode.PropListStyleType:        parseListStyleType,
	bytecode.PropMarginBottom:         parseMarginBottom,
	bytecode.PropMarginLeft:           parseMarginLeft,
	bytecode.PropMarginRight:          parseMarginRight,
	bytecode.PropMarginTop:            parseMarginTop,
	bytecode.PropMaxHeight:            parseMaxHeight,
	bytecode.PropMaxWidth:             parseMaxWidth,
	bytecode.PropMinHeight:            parseMinHeight,
	bytecode.PropMinWidth:             parseMinWidth,
	bytecode.PropOrphans:              parseOrphans,
	bytecode.PropOutlineColor:         parseOutlineColor,
	bytecode.PropOutlineStyle:         parseOutlineStyle,
	bytecode.PropOutlineWidth:         parseOutlineWidth,
	bytecode.PropOverflow:             parseOverflow,
	bytecode.PropPaddingBottom:        parsePaddingBottom,
	bytecode.PropPaddingLeft:          parsePaddingLeft,
	bytecode.PropPaddingRight:         parsePaddingRight,
	bytecode.PropPaddingTop:           parsePaddingTop,
	bytecode.PropPageBreakAfter:       parsePageBreakAfter,
	bytecode.PropPageBreakBefore:      parsePageBreakBefore,
	bytecode.PropPageBreakInside:      parsePageBreakInside,
	bytecode.PropPauseAfter:           parsePauseAfter,
	bytecode.PropPauseBefore:          parsePauseBefore,
	bytecode.PropPitchRange:           parsePitchRange,
	bytecode.PropPitch:                parsePitch,
	bytecode.PropPlayDuring:           parsePlayDuring,
	bytecode.PropPosition:             parsePosition,
	bytecode.PropQuotes:               parseQuotes,
	bytecode.PropRichness:             parseRichness,
	bytecode.PropRight:                parseRight,
	bytecode.PropSpeakHeader:          parseSpeakHeader,
	bytecode.PropSpeakNumeral:         parseSpeakNumeral,
	bytecode.PropSpeakPunctuation:     parseSpeakPunctuation,
	bytecode.PropSpeak:                parseSpeak,
	bytecode.PropSpeechRate:           parseSpeechRate,
	bytecode.PropStress:               parseStress,
	bytecode.PropTableLayout:          parseTableLayout,
	bytecode.PropTextAlign:            parseTextAlign,
	bytecode.PropTextDecoration:       parseTextDecoration,
	bytecode.PropTextIndent:           parseTextIndent,
	bytecode.PropTextTransform:        parseTextTransform,
	bytecode.PropTop:                  parseTop,
	bytecode.PropUnicodeBidi:          parseUnicodeBidi,
	bytecode.PropVerticalAlign:        parseVerticalAlign,
	bytecode.PropVisibility:           parseVisibility,
	bytecode.PropVoiceFamily:          parseVoiceFamily,
	bytecode.PropVolume:               parseVolume,
	bytecode.PropWhiteSpace:           parseWhiteSpace,
	bytecode.PropWidows:               parseWidows,
	bytecode.PropWidth:                parseWidth,
	bytecode.PropWordSpacing:          parseWordSpacing,
	bytecode.PropZIndex:               parseZIndex,
}

// propertyNames maps CSS property names to ids for the convenience
// entry points. Parsing itself is keyed by id.
var propertyNames = map[string]bytecode.PropertyID{
	"azimuth":               bytecode.PropAzimuth,
	"background-attachment": bytecode.PropBackgroundAttachment,
	"background-color":      bytecode.PropBackgroundColor,
	"background-image":      bytecode.PropBackgroundImage,
	"background-position":   bytecode.PropBackgroundPosition,
	"background-repeat":     bytecode.PropBackgroundRepeat,
	"border-bottom-color":   bytecode.PropBorderBottomColor,
	"border-bottom-style":   bytecode.PropBorderBottomStyle,
	"border-bottom-width":   bytecode.PropBorderBottomWidth,
	"border-collapse":       bytecode.PropBorderCollapse,
	"border-left-color":     bytecode.PropBorderLeftColor,
	"border-left-style":     bytecode.PropBorderLeftStyle,
	"border-left-width":     bytecode.PropBorderLeftWidth,
	"border-right-color":    bytecode.PropBorderRightColor,
	"border-right-style":    bytecode.PropBorderRightStyle,
	"border-right-width":    bytecode.PropBorderRightWidth,
	"border-spacing":        bytecode.PropBorderSpacing,
	"border-top-color":      bytecode.PropBorderTopColor,
	"border-top-style":      bytecode.PropBorderTopStyle,
	"border-top-width":      bytecode.PropBorderTopWidth,
	"bottom":                bytecode.PropBottom,
	"caption-side":          bytecode.PropCaptionSide,
	"clear":                 bytecode.PropClear,
	"clip":                  bytecode.PropClip,
	"color":                 bytecode.PropColor,
	"content":               bytecode.PropContent,
	"counter-increment":     bytecode.PropCounterIncrement,
	"counter-reset":         bytecode.PropCounterReset,
	"cue-after":             bytecode.PropCueAfter,
	"cue-before":            bytecode.PropCueBefore,
	"cursor":                bytecode.PropCursor,
	"direction":             bytecode.PropDirection,
	"display":               bytecode.PropDisplay,
	"elevation":             bytecode.PropElevation,
	"empty-cells":           bytecode.PropEmptyCells,
	"float":                 bytecode.PropFloat,
	"font-family":           bytecode.PropFontFamily,
	"font-size":             bytecode.PropFontSize,
	"font-style":            bytecode.PropFontStyle,
	"font-variant":          bytecode.PropFontVariant,
	"font-weight":           bytecode.PropFontWeight,
	"height":                bytecode.PropHeight,
	"left":                  bytecode.PropLeft,
	"letter-spacing":        bytecode.PropLetterSpacing,
	"line-height":           bytecode.PropLineHeight,
	"list-style-image":      bytecode.PropListStyleImage,
	"list-style-position":   bytecode.PropListStylePosition,
	"list-style-type":       bytecode.PropListStyleType,
	"margin-bottom":         bytecode.PropMarginBottom,
	"margin-left":           bytecode.PropMarginLeft,
	"margin-right":          bytecode.PropMarginRight,
	"margin-top":            bytecode.PropMarginTop,
	"max-height":            bytecode.PropMaxHeight,
	"max-width":             bytecode.PropMaxWidth,
	"min-height":            bytecode.PropMinHeight,
	"min-width":             bytecode.PropMinWidth,
	"orphans":               bytecode.PropOrphans,
	"outline-color":         bytecode.PropOutlineColor,
	"outline-style":         bytecode.PropOutlineStyle,
	"outline-width":         bytecode.PropOutlineWidth,
	"overflow":              bytecode.PropOverflow,
	"padding-bottom":        bytecode.PropPaddingBottom,
	"padding-left":          bytecode.PropPaddingLeft,
	"padding-right":         bytecode.PropPaddingRight,
	"padding-top":           bytecode.PropPaddingTop,
	"page-break-after":      bytecode.PropPageBreakAfter,
	"page-break-before":     bytecode.PropPageBreakBefore,
	"page-break-inside":     bytecode.PropPageBreakInside,
	"pause-after":           bytecode.PropPauseAfter,
	"pause-before":          bytecode.PropPauseBefore,
	"pitch-range":           bytecode.PropPitchRange,
	"pitch":                 bytecode.PropPitch,
	"play-during":           bytecode.PropPlayDuring,
	"position":              bytecode.PropPosition,
	"quotes":                bytecode.PropQuotes,
	"richness":              bytecode.PropRichness,
	"right":                 bytecode.PropRight,
	"speak-header":          bytecode.PropSpeakHeader,
	"speak-numeral":         bytecode.PropSpeakNumeral,
	"speak-punctuation":     bytecode.PropSpeakPunctuation,
	"speak":                 bytecode.PropSpeak,
	"speech-rate":           bytecode.PropSpeechRate,
	"stress":                bytecode.PropStress,
	"table-layout":          bytecode.PropTableLayout,
	"text-align":            bytecode.PropTextAlign,
	"text-decoration":       bytecode.PropTextDecoration,
	"text-indent":           bytecode.PropTextIndent,
	"text-transform":        bytecode.PropTextTransform,
	"top":                   bytecode.PropTop,
	"unicode-bidi":          bytecode.PropUnicodeBidi,
	"vertical-align":        bytecode.PropVerticalAlign,
	"visibility":            bytecode.PropVisibility,
	"voice-family":          bytecode.PropVoiceFamily,
	"volume":                bytecode.PropVolume,
	"white-space":           bytecode.PropWhiteSpace,
	"widows":                bytecode.PropWidows,
	"width":                 bytecode.PropWidth,
	"word-spacing":          bytecode.PropWordSpacing,
	"z-index":               bytecode.PropZIndex,
}

// PropertyByName resolves a longhand property name.
func PropertyByName(name string) (bytecode.PropertyID, bool) {
	id, ok := propertyNames[name]
	return id, ok
}

// ParseValue parses one property's declaration value starting at the
// cursor. The produced style is owned by the caller until handed to the
// stylesheet.
func ParseValue(c *Context, prop bytecode.PropertyID, v *TokenVector, ctx *int) (*bytecode.Style, error) {
	if int(prop) >= len(propertyHandlers) || propertyHandlers[prop] == nil {
		return nil, ErrInvalid
	}
	return propertyHandlers[prop](c, v, ctx)
}

// ParseDeclaration lexes and parses "name: value" in one step, requiring
// the whole input to be consumed.
func ParseDeclaration(c *Context, name, value string) (*bytecode.Style, error) {
	prop, ok := PropertyByName(name)
	if !ok {
		return nil, ErrInvalid
	}
	v := Tokenize(value)
	ctx := 0
	v.ConsumeWhitespace(&ctx)
	st, err := ParseValue(c, prop, v, &ctx)
	if err != nil {
		return nil, err
	}
	v.ConsumeWhitespace(&ctx)
	if ctx != v.Len() {
		st.Abandon()
		return nil, ErrInvalid
	}
	return st, nil
}
