package parse

import "github.com/zhuyadong/libcss/intern"

// kw indexes the pre-interned keyword table. Keywords are compared
// against tokens by handle identity, never by string content.
type kw int

const (
	kwInherit kw = iota
	kwImportant
	kwNone
	kwAuto
	kwNormal
	kwTransparent
	kwInvert
	kwTop
	kwBottom
	kwLeft
	kwRight
	kwBoth
	kwCenter
	kwJustify
	kwRect
	kwRGB
	kwAttr
	kwCounter
	kwCounters
	kwLTR
	kwRTL
	kwInline
	kwBlock
	kwListItem
	kwRunIn
	kwInlineBlock
	kwTable
	kwInlineTable
	kwTableRowGroup
	kwTableHeaderGroup
	kwTableFooterGroup
	kwTableRow
	kwTableColumnGroup
	kwTableColumn
	kwTableCell
	kwTableCaption
	kwShow
	kwHide
	kwSerif
	kwSansSerif
	kwCursive
	kwFantasy
	kwMonospace
	kwXXSmall
	kwXSmall
	kwSmall
	kwMedium
	kwLarge
	kwXLarge
	kwXXLarge
	kwLarger
	kwSmaller
	kwItalic
	kwOblique
	kwSmallCaps
	kwBold
	kwBolder
	kwLighter
	kwFixed
	kwScroll
	kwRepeat
	kwRepeatX
	kwRepeatY
	kwNoRepeat
	kwCollapse
	kwSeparate
	kwHidden
	kwDotted
	kwDashed
	kwSolid
	kwDouble
	kwGroove
	kwRidge
	kwInset
	kwOutset
	kwThin
	kwThick
	kwInside
	kwOutside
	kwDisc
	kwCircle
	kwSquare
	kwDecimal
	kwDecimalLeadingZero
	kwLowerRoman
	kwUpperRoman
	kwLowerGreek
	kwLowerLatin
	kwUpperLatin
	kwArmenian
	kwGeorgian
	kwLowerAlpha
	kwUpperAlpha
	kwVisible
	kwAlways
	kwAvoid
	kwStatic
	kwRelative
	kwAbsolute
	kwUnderline
	kwOverline
	kwLineThrough
	kwBlink
	kwCapitalize
	kwUppercase
	kwLowercase
	kwEmbed
	kwBidiOverride
	kwBaseline
	kwSub
	kwSuper
	kwTextTop
	kwMiddle
	kwTextBottom
	kwPre
	kwNowrap
	kwPreWrap
	kwPreLine
	kwCrosshair
	kwDefault
	kwPointer
	kwMove
	kwEResize
	kwNEResize
	kwNWResize
	kwNResize
	kwSEResize
	kwSWResize
	kwSResize
	kwWResize
	kwText
	kwWait
	kwHelp
	kwProgress
	kwLeftSide
	kwFarLeft
	kwCenterLeft
	kwCenterRight
	kwFarRight
	kwRightSide
	kwBehind
	kwLeftwards
	kwRightwards
	kwBelow
	kwLevel
	kwAbove
	kwHigher
	kwLower
	kwXLow
	kwLow
	kwHigh
	kwXHigh
	kwMix
	kwOnce
	kwDigits
	kwContinuous
	kwCode
	kwSpellOut
	kwXSlow
	kwSlow
	kwFast
	kwXFast
	kwFaster
	kwSlower
	kwMale
	kwFemale
	kwChild
	kwSilent
	kwXSoft
	kwSoft
	kwLoud
	kwXLoud
	kwOpenQuote
	kwCloseQuote
	kwNoOpenQuote
	kwNoCloseQuote

	kwCount
)

var kwNames = [kwCount]string{
	kwInherit:            "inherit",
	kwImportant:          "important",
	kwNone:               "none",
	kwAuto:               "auto",
	kwNormal:             "normal",
	kwTransparent:        "transparent",
	kwInvert:             "invert",
	kwTop:                "top",
	kwBottom:             "bottom",
	kwLeft:               "left",
	kwRight:              "right",
	kwBoth:               "both",
	kwCenter:             "center",
	kwJustify:            "justify",
	kwRect:               "rect",
	kwRGB:                "rgb",
	kwAttr:               "attr",
	kwCounter:            "counter",
	kwCounters:           "counters",
	kwLTR:                "ltr",
	kwRTL:                "rtl",
	kwInline:             "inline",
	kwBlock:              "block",
	kwListItem:           "list-item",
	kwRunIn:              "run-in",
	kwInlineBlock:        "inline-block",
	kwTable:              "table",
	kwInlineTable:        "inline-table",
	kwTableRowGroup:      "table-row-group",
	kwTableHeaderGroup:   "table-header-group",
	kwTableFooterGroup:   "table-footer-group",
	kwTableRow:           "table-row",
	kwTableColumnGroup:   "table-column-group",
	kwTableColumn:        "table-column",
	kwTableCell:          "table-cell",
	kwTableCaption:       "table-caption",
	kwShow:               "show",
	kwHide:               "hide",
	kwSerif:              "serif",
	kwSansSerif:          "sans-serif",
	kwCursive:            "cursive",
	kwFantasy:            "fantasy",
	kwMonospace:          "monospace",
	kwXXSmall:            "xx-small",
	kwXSmall:             "x-small",
	kwSmall:              "small",
	kwMedium:             "medium",
	kwLarge:              "large",
	kwXLarge:             "x-large",
	kwXXLarge:            "xx-large",
	kwLarger:             "larger",
	kwSmaller:            "smaller",
	kwItalic:             "italic",
	kwOblique:            "oblique",
	kwSmallCaps:          "small-caps",
	kwBold:               "bold",
	kwBolder:             "bolder",
	kwLighter:            "lighter",
	kwFixed:              "fixed",
	kwScroll:             "scroll",
	kwRepeat:             "repeat",
	kwRepeatX:            "repeat-x",
	kwRepeatY:            "repeat-y",
	kwNoRepeat:           "no-repeat",
	kwCollapse:           "collapse",
	kwSeparate:           "separate",
	kwHidden:             "hidden",
	kwDotted:             "dotted",
	kwDashed:             "dashed",
	kwSolid:              "solid",
	kwDouble:             "double",
	kwGroove:             "groove",
	kwRidge:              "ridge",
	kwInset:              "inset",
	kwOutset:             "outset",
	kwThin:               "thin",
	kwThick:              "thick",
	kwInside:             "inside",
	kwOutside:            "outside",
	kwDisc:               "disc",
	kwCircle:             "circle",
	kwSquare:             "square",
	kwDecimal:            "decimal",
	kwDecimalLeadingZero: "decimal-leading-zero",
	kwLowerRoman:         "lower-roman",
	kwUpperRoman:         "upper-roman",
	kwLowerGreek:         "lower-greek",
	kwLowerLatin:         "lower-latin",
	kwUpperLatin:         "upper-latin",
	kwArmenian:           "armenian",
	kwGeorgian:           "georgian",
	kwLowerAlpha:         "lower-alpha",
	kwUpperAlpha:         "upper-alpha",
	kwVisible:            "visible",
	kwAlways:             "always",
	kwAvoid:              "avoid",
	kwStatic:             "static",
	kwRelative:           "relative",
	kwAbsolute:           "absolute",
	kwUnderline:          "underline",
	kwOverline:           "overline",
	kwLineThrough:        "line-through",
	kwBlink:              "blink",
	kwCapitalize:         "capitalize",
	kwUppercase:          "uppercase",
	kwLowercase:          "lowercase",
	kwEmbed:              "embed",
	kwBidiOverride:       "bidi-override",
	kwBaseline:           "baseline",
	kwSub:                "sub",
	kwSuper:              "super",
	kwTextTop:            "text-top",
	kwMiddle:             "middle",
	kwTextBottom:         "text-bottom",
	kwPre:                "pre",
	kwNowrap:             "nowrap",
	kwPreWrap:            "pre-wrap",
	kwPreLine:            "pre-line",
	kwCrosshair:          "crosshair",
	kwDefault:            "default",
	kwPointer:            "pointer",
	kwMove:               "move",
	kwEResize:            "e-resize",
	kwNEResize:           "ne-resize",
	kwNWResize:           "nw-resize",
	kwNResize:            "n-resize",
	kwSEResize:           "se-resize",
	kwSWResize:           "sw-resize",
	kwSResize:            "s-resize",
	kwWResize:            "w-resize",
	kwText:               "text",
	kwWait:               "wait",
	kwHelp:               "help",
	kwProgress:           "progress",
	kwLeftSide:           "left-side",
	kwFarLeft:            "far-left",
	kwCenterLeft:         "center-left",
	kwCenterRight:        "center-right",
	kwFarRight:           "far-right",
	kwRightSide:          "right-side",
	kwBehind:             "behind",
	kwLeftwards:          "leftwards",
	kwRightwards:         "rightwards",
	kwBelow:              "below",
	kwLevel:              "level",
	kwAbove:              "above",
	kwHigher:             "higher",
	kwLower:              "lower",
	kwXLow:               "x-low",
	kwLow:                "low",
	kwHigh:               "high",
	kwXHigh:              "x-high",
	kwMix:                "mix",
	kwOnce:               "once",
	kwDigits:             "digits",
	kwContinuous:         "continuous",
	kwCode:               "code",
	kwSpellOut:           "spell-out",
	kwXSlow:              "x-slow",
	kwSlow:               "slow",
	kwFast:               "fast",
	kwXFast:              "x-fast",
	kwFaster:             "faster",
	kwSlower:             "slower",
	kwMale:               "male",
	kwFemale:             "female",
	kwChild:              "child",
	kwSilent:             "silent",
	kwXSoft:              "x-soft",
	kwSoft:               "soft",
	kwLoud:               "loud",
	kwXLoud:              "x-loud",
	kwOpenQuote:          "open-quote",
	kwCloseQuote:         "close-quote",
	kwNoOpenQuote:        "no-open-quote",
	kwNoCloseQuote:       "no-close-quote",
}

// Context carries the per-stylesheet parse state: the style sink and the
// pre-interned keyword table.
type Context struct {
	Sheet   *Stylesheet
	strings [kwCount]*intern.String
}

// NewContext creates a parse context writing styles into sheet.
func NewContext(sheet *Stylesheet) *Context {
	c := &Context{Sheet: sheet}
	for i, name := range kwNames {
		c.strings[i] = intern.Intern(name)
	}
	return c
}

// is reports whether tok's case-folded handle is the given keyword.
func (c *Context) is(tok *Token, k kw) bool {
	return tok != nil && tok.Lower == c.strings[k]
}

// isIdent reports whether tok is an IDENT matching the given keyword.
func (c *Context) isIdent(tok *Token, k kw) bool {
	return tok != nil && tok.Type == TokenIdent && tok.Lower == c.strings[k]
}
