package cascade

import "github.com/zhuyadong/libcss/bytecode"

// propOps groups one property's cascade-side operations.
type propOps struct {
	cascade     func(bytecode.OPV, *bytecode.Cursor, *State) error
	setFromHint func(*Hint, *ComputedStyle) error
	initial     func(*State) error
	compose     func(parent, child, result *ComputedStyle) error
	destroy     func(*bytecode.Cursor) uint32
}

// handlers is indexed by property id, in the same order as the parser
// dispatch table.
var handlers = [bytecode.NumProps]propOps{
	bytecode.PropAzimuth:              {cascadeAzimuth, setAzimuthFromHint, initialAzimuth, composeAzimuth, destroyLength},
	bytecode.PropBackgroundAttachment: {cascadeBackgroundAttachment, setBackgroundAttachmentFromHint, initialBackgroundAttachment, composeBackgroundAttachment, destroyOPVOnly},
	bytecode.PropBackgroundColor:      {cascadeBackgroundColor, setBackgroundColorFromHint, initialBackgroundColor, composeBackgroundColor, destroyColour},
	bytecode.PropBackgroundImage:      {cascadeBackgroundImage, setBackgroundImageFromHint, initialBackgroundImage, composeBackgroundImage, destroyURI},
	bytecode.PropBackgroundPosition:   {cascadeBackgroundPosition, setBackgroundPositionFromHint, initialBackgroundPosition, composeBackgroundPosition, destroyBackgroundPosition},
	bytecode.PropBackgroundRepeat:     {cascadeBackgroundRepeat, setBackgroundRepeatFromHint, initialBackgroundRepeat, composeBackgroundRepeat, destroyOPVOnly},
	bytecode.PropBorderBottomColor:    {cascadeBorderBottomColor, setBorderBottomColorFromHint, initialBorderBottomColor, composeBorderBottomColor, destroyColour},
	bytecode.PropBorderBottomStyle:    {cascadeBorderBottomStyle, setBorderBottomStyleFromHint, initialBorderBottomStyle, composeBorderBottomStyle, destroyOPVOnly},
	bytecode.PropBorderBottomWidth:    {cascadeBorderBottomWidth, setBorderBottomWidthFromHint, initialBorderBottomWidth, composeBorderBottomWidth, destroyLength},
	bytecode.PropBorderCollapse:       {cascadeBorderCollapse, setBorderCollapseFromHint, initialBorderCollapse, composeBorderCollapse, destroyOPVOnly},
	bytecode.PropBorderLeftColor:      {cascadeBorderLeftColor, setBorderLeftColorFromHint, initialBorderLeftColor, composeBorderLeftColor, destroyColour},
	bytecode.PropBorderLeftStyle:      {cascadeBorderLeftStyle, setBorderLeftStyleFromHint, initialBorderLeftStyle, composeBorderLeftStyle, destroyOPVOnly},
	bytecode.PropBorderLeftWidth:      {cascadeBorderLeftWidth, setBorderLeftWidthFromHint, initialBorderLeftWidth, composeBorderLeftWidth, destroyLength},
	bytecode.PropBorderRightColor:     {cascadeBorderRightColor, setBorderRightColorFromHint, initialBorderRightColor, composeBorderRightColor, destroyColour},
	bytecode.PropBorderRightStyle:     {cascadeBorderRightStyle, setBorderRightStyleFromHint, initialBorderRightStyle, composeBorderRightStyle, destroyOPVOnly},
	bytecode.PropBorderRightWidth:     {cascadeBorderRightWidth, setBorderRightWidthFromHint, initialBorderRightWidth, composeBorderRightWidth, destroyLength},
	bytecode.PropBorderSpacing:        {cascadeBorderSpacing, setBorderSpacingFromHint, initialBorderSpacing, composeBorderSpacing, destroyBorderSpacing},
	bytecode.PropBorderTopColor:       {cascadeBorderTopColor, setBorderTopColorFromHint, initialBorderTopColor, composeBorderTopColor, destroyColour},
	bytecode.PropBorderTopStyle:       {cascadeBorderTopStyle, setBorderTopStyleFromHint, initialBorderTopStyle, composeBorderTopStyle, destroyOPVOnly},
	bytecode.PropBorderTopWidth:       {cascadeBorderTopWidth, setBorderTopWidthFromHint, initialBorderTopWidth, composeBorderTopWidth, destroyLength},
	bytecode.PropBottom:               {cascadeBottom, setBottomFromHint, initialBottom, composeBottom, destroyLength},
	bytecode.PropCaptionSide:          {cascadeCaptionSide, setCaptionSideFromHint, initialCaptionSide, composeCaptionSide, destroyOPVOnly},
	bytecode.PropClear:                {cascadeClear, setClearFromHint, initialClear, composeClear, destroyOPVOnly},
	bytecode.PropClip:                 {cascadeClip, setClipFromHint, initialClip, composeClip, destroyClip},
	bytecode.PropColor:                {cascadeColor, setColorFromHint, initialColor, composeColor, destroyColour},
	bytecode.PropContent:              {cascadeContentProp, setContentFromHint, initialContent, composeContent, destroyContent},
	bytecode.PropCounterIncrement:     {cascadeCounterIncrement, setCounterIncrementFromHint, initialCounterIncrement, composeCounterIncrement, destroyCounter},
	bytecode.PropCounterReset:         {cascadeCounterReset, setCounterResetFromHint, initialCounterReset, composeCounterReset, destroyCounter},
	bytecode.PropCueAfter:             {cascadeCueAfter, setCueAfterFromHint, initialCueAfter, composeCueAfter, destroyURI},
	bytecode.PropCueBefore:            {cascadeCueBefore, setCueBeforeFromHint, initialCueBefore, composeCueBefore, destroyURI},
	bytecode.PropCursor:               {cascadeCursorProp, setCursorFromHint, initialCursor, composeCursor, destroyCursor},
	bytecode.PropDirection:            {cascadeDirection, setDirectionFromHint, initialDirection, composeDirection, destroyOPVOnly},
	bytecode.PropDisplay:              {cascadeDisplay, setDisplayFromHint, initialDisplay, composeDisplay, destroyOPVOnly},
	bytecode.PropElevation:            {cascadeElevation, setElevationFromHint, initialElevation, composeElevation, destroyLength},
	bytecode.PropEmptyCells:           {cascadeEmptyCells, setEmptyCellsFromHint, initialEmptyCells, composeEmptyCells, destroyOPVOnly},
	bytecode.PropFloat:                {cascadeFloat, setFloatFromHint, initialFloat, composeFloat, destroyOPVOnly},
	bytecode.PropFontFamily:           {cascadeFontFamily, setFontFamilyFromHint, initialFontFamily, composeFontFamily, destroyFontFamily},
	bytecode.PropFontSize:             {cascadeFontSize, setFontSizeFromHint, initialFontSize, composeFontSize, destroyLength},
	bytecode.PropFontStyle:            {cascadeFontStyle, setFontStyleFromHint, initialFontStyle, composeFontStyle, destroyOPVOnly},
	bytecode.PropFontVariant:          {cascadeFontVariant, setFontVariantFromHint, initialFontVariant, composeFontVariant, destroyOPVOnly},
	bytecode.PropFontWeight:           {cascadeFontWeight, setFontWeightFromHint, initialFontWeight, composeFontWeight, destroyOPVOnly},
	bytecode.PropHeight:               {cascadeHeight, setHeightFromHint, initialHeight, composeHeight, destroyLength},
	bytecode.PropLeft:                 {cascadeLeft, setLeftFromHint, initialLeft, composeLeft, destroyLength},
	bytecode.PropLetterSpacing:        {cascadeLetterSpacing, setLetterSpacingFromHint, initialLetterSpacing, composeLetterSpacing, destroyLength},
	bytecode.PropLineHeight:           {cascadeLineHeight, setLineHeightFromHint, initialLineHeight, composeLineHeight, destroyLineHeight},
	bytecode.PropListStyleImage:       {cascadeListStyleImage, setListStyleImageFromHint, initialListStyleImage, composeListStyleImage, destroyURI},
	bytecode.PropListStylePosition:    {cascadeListStylePosition, setListStylePositionFromHint, initialListStylePosition, composeListStylePosition, destroyOPVOnly},
	bytecode.PropListStyleType:        {cascadeListStyleType, setListStyleTypeFromHint, initialListStyleType, composeListStyleType, destroyOPVOnly},
	bytecode.PropMarginBottom:         {cascadeMarginBottom, setMarginBottomFromHint, initialMarginBottom, composeMarginBottom, destroyLength},
	bytecode.PropMarginLeft:           {cascadeMarginLeft, setMarginLeftFromHint, initialMarginLeft, composeMarginLeft, destroyLength},
	bytecode.PropMarginRight:          {cascadeMarginRight, setMarginRightFromHint, initialMarginRight, composeMarginRight, destroyLength},
	bytecode.PropMarginTop:            {cascadeMarginTop, setMarginTopFromHint, initialMarginTop, composeMarginTop, destroyLength},
	bytecode.PropMaxHeight:            {cascadeMaxHeight, setMaxHeightFromHint, initialMaxHeight, composeMaxHeight, destroyLength},
	bytecode.PropMaxWidth:             {cascadeMaxWidth, setMaxWidthFromHint, initialMaxWidth, composeMaxWidth, destroyLength},
	bytecode.PropMinHeight:            {cascadeMinHeight, setMinHeightFromHint, initialMinHeight, composeMinHeight, destroyLength},
	bytecode.PropMinWidth:             {cascadeMinWidth, setMinWidthFromHint, initialMinWidth, composeMinWidth, destroyLength},
	bytecode.PropOrphans:              {cascadeOrphans, setOrphansFromHint, initialOrphans, composeOrphans, destroyNumber},
	bytecode.PropOutlineColor:         {cascadeOutlineColorProp, setOutlineColorFromHint, initialOutlineColor, composeOutlineColor, destroyColour},
	bytecode.PropOutlineStyle:         {cascadeOutlineStyle, setOutlineStyleFromHint, initialOutlineStyle, composeOutlineStyle, destroyOPVOnly},
	bytecode.PropOutlineWidth:         {cascadeOutlineWidth, setOutlineWidthFromHint, initialOutlineWidth, composeOutlineWidth, destroyLength},
	bytecode.PropOverflow:             {cascadeOverflow, setOverflowFromHint, initialOverflow, composeOverflow, destroyOPVOnly},
	bytecode.PropPaddingBottom:        {cascadePaddingBottom, setPaddingBottomFromHint, initialPaddingBottom, composePaddingBottom, destroyLength},
	bytecode.PropPaddingLeft:          {cascadePaddingLeft, setPaddingLeftFromHint, initialPaddingLeft, composePaddingLeft, destroyLength},
	bytecode.PropPaddingRight:         {cascadePaddingRight, setPaddingRightFromHint, initialPaddingRight, composePaddingRight, destroyLength},
	bytecode.PropPaddingTop:           {cascadePaddingTop, setPaddingTopFromHint, initialPaddingTop, composePaddingTop, destroyLength},
	bytecode.PropPageBreakAfter:       {cascadePageBreakAfter, setPageBreakAfterFromHint, initialPageBreakAfter, composePageBreakAfter, destroyOPVOnly},
	bytecode.PropPageBreakBefore:      {cascadePageBreakBefore, setPageBreakBeforeFromHint, initialPageBreakBefore, composePageBreakBefore, destroyOPVOnly},
	bytecode.PropPageBreakInside:      {cascadePageBreakInside, setPageBreakInsideFromHint, initialPageBreakInside, composePageBreakInside, destroyOPVOnly},
	bytecode.PropPauseAfter:           {cascadePauseAfter, setPauseAfterFromHint, initialPauseAfter, composePauseAfter, destroyLength},
	bytecode.PropPauseBefore:          {cascadePauseBefore, setPauseBeforeFromHint, initialPauseBefore, composePauseBefore, destroyLength},
	bytecode.PropPitchRange:           {cascadePitchRange, setPitchRangeFromHint, initialPitchRange, composePitchRange, destroyNumber},
	bytecode.PropPitch:                {cascadePitch, setPitchFromHint, initialPitch, composePitch, destroyLength},
	bytecode.PropPlayDuring:           {cascadePlayDuring, setPlayDuringFromHint, initialPlayDuring, composePlayDuring, destroyURI},
	bytecode.PropPosition:             {cascadePosition, setPositionFromHint, initialPosition, composePosition, destroyOPVOnly},
	bytecode.PropQuotes:               {cascadeQuotesProp, setQuotesFromHint, initialQuotes, composeQuotes, destroyQuotes},
	bytecode.PropRichness:             {cascadeRichness, setRichnessFromHint, initialRichness, composeRichness, destroyNumber},
	bytecode.PropRight:                {cascadeRight, setRightFromHint, initialRight, composeRight, destroyLength},
	bytecode.PropSpeakHeader:          {cascadeSpeakHeader, setSpeakHeaderFromHint, initialSpeakHeader, composeSpeakHeader, destroyOPVOnly},
	bytecode.PropSpeakNumeral:         {cascadeSpeakNumeral, setSpeakNumeralFromHint, initialSpeakNumeral, composeSpeakNumeral, destroyOPVOnly},
	bytecode.PropSpeakPunctuation:     {cascadeSpeakPunctuation, setSpeakPunctuationFromHint, initialSpeakPunctuation, composeSpeakPunctuation, destroyOPVOnly},
	bytecode.PropSpeak:                {cascadeSpeak, setSpeakFromHint, initialSpeak, composeSpeak, destroyOPVOnly},
	bytecode.PropSpeechRate:           {cascadeSpeechRate, setSpeechRateFromHint, initialSpeechRate, composeSpeechRate, destroyNumber},
	bytecode.PropStress:               {cascadeStress, setStressFromHint, initialStress, composeStress, destroyNumber},
	bytecode.PropTableLayout:          {cascadeTableLayout, setTableLayoutFromHint, initialTableLayout, composeTableLayout, destroyOPVOnly},
	bytecode.PropTextAlign:            {cascadeTextAlign, setTextAlignFromHint, initialTextAlign, composeTextAlign, destroyOPVOnly},
	bytecode.PropTextDecoration:       {cascadeTextDecoration, setTextDecorationFromHint, initialTextDecoration, composeTextDecoration, destroyOPVOnly},
	bytecode.PropTextIndent:           {cascadeTextIndent, setTextIndentFromHint, initialTextIndent, composeTextIndent, destroyLength},
	bytecode.PropTextTransform:        {cascadeTextTransform, setTextTransformFromHint, initialTextTransform, composeTextTransform, destroyOPVOnly},
	bytecode.PropTop:                  {cascadeTop, setTopFromHint, initialTop, composeTop, destroyLength},
	bytecode.PropUnicodeBidi:          {cascadeUnicodeBidi, setUnicodeBidiFromHint, initialUnicodeBidi, composeUnicodeBidi, destroyOPVOnly},
	bytecode.PropVerticalAlign:        {cascadeVerticalAlign, setVerticalAlignFromHint, initialVerticalAlign, composeVerticalAlign, destroyLength},
	bytecode.PropVisibility:           {cascadeVisibility, setVisibilityFromHint, initialVisibility, composeVisibility, destroyOPVOnly},
	bytecode.PropVoiceFamily:          {cascadeVoiceFamily, setVoiceFamilyFromHint, initialVoiceFamily, composeVoiceFamily, destroyVoiceFamily},
	bytecode.PropVolume:               {cascadeVolume, setVolumeFromHint, initialVolume, composeVolume, destroyVolume},
	bytecode.PropWhiteSpace:           {cascadeWhiteSpace, setWhiteSpaceFromHint, initialWhiteSpace, composeWhiteSpace, destroyOPVOnly},
	bytecode.PropWidows:               {cascadeWidows, setWidowsFromHint, initialWidows, composeWidows, destroyNumber},
	bytecode.PropWidth:                {cascadeWidth, setWidthFromHint, initialWidth, composeWidth, destroyLength},
	bytecode.PropWordSpacing:          {cascadeWordSpacing, setWordSpacingFromHint, initialWordSpacing, composeWordSpacing, destroyLength},
	bytecode.PropZIndex:               {cascadeZIndex, setZIndexFromHint, initialZIndex, composeZIndex, destroyNumber},
}

// Run replays a style buffer entry by entry: each OPV is read, then the
// property's cascade operation decodes its payload and applies it if it
// outranks the recorded winner.
func Run(style *bytecode.Style, state *State) error {
	cur := style.Reader()
	for !cur.AtEnd() {
		opv := cur.ReadOPV()
		if err := handlers[opv.Opcode()].cascade(opv, cur, state); err != nil {
			return err
		}
	}
	return nil
}

// DestroyStyle walks every entry in a style buffer through its
// property's destructor, releasing embedded string references. It
// returns the total octets consumed, which always equals the buffer
// size.
func DestroyStyle(style *bytecode.Style) uint32 {
	cur := style.Reader()
	var total uint32
	for !cur.AtEnd() {
		op := cur.PeekOPV().Opcode()
		total += handlers[op].destroy(cur)
	}
	return total
}

// DestroyEntry runs one entry's destructor at the cursor and returns
// its length in octets.
func DestroyEntry(cur *bytecode.Cursor) uint32 {
	op := cur.PeekOPV().Opcode()
	return handlers[op].destroy(cur)
}

// Initial writes the CSS-defined initial value of every property into
// the state's result record.
func Initial(state *State) error {
	for _, ops := range handlers {
		if err := ops.initial(state); err != nil {
			return err
		}
	}
	return nil
}

// InitialProperty writes one property's initial value.
func InitialProperty(prop bytecode.PropertyID, state *State) error {
	return handlers[prop].initial(state)
}

// Compose reconciles child with parent for every property, writing into
// result.
func Compose(parent, child, result *ComputedStyle) error {
	for _, ops := range handlers {
		if err := ops.compose(parent, child, result); err != nil {
			return err
		}
	}
	return nil
}

// ComposeProperty reconciles a single property.
func ComposeProperty(prop bytecode.PropertyID, parent, child, result *ComputedStyle) error {
	return handlers[prop].compose(parent, child, result)
}

// SetFromHint applies a caller-supplied authored hint for prop,
// bypassing the bytecode path.
func SetFromHint(prop bytecode.PropertyID, hint *Hint, style *ComputedStyle) error {
	return handlers[prop].setFromHint(hint, style)
}
