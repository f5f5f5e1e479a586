package vtscreen

import (
	"fmt"
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// screenHandler is the adapter between the escape-sequence decoder
// (github.com/danielgatis/go-ansicode) and the screen model. It embeds
// *Screen so every decoder-facing method whose name and signature already
// match a Screen operation (Bell, CarriageReturn, LineFeed, ReverseIndex,
// DeleteLines, PushTitle, PopTitle, SetTitle, Substitute, ScrollDown, ...)
// is satisfied automatically by promotion; this file defines only the
// methods the decoder needs under a different name or signature than the
// core's own richer, typed API (ModeCode vs ansicode.TerminalMode, a
// single-step Tab() vs a repeat-count Tab(n), ...), plus the handful of
// decoder callbacks with no Screen equivalent at all. Grounded on the
// teacher's handler.go, which performs the same parser-to-state
// translation directly on its Terminal.
type screenHandler struct {
	*Screen
}

var _ ansicode.Handler = screenHandler{}

// Out-of-scope decoder callbacks: images, clipboard, hyperlinks, the kitty
// keyboard protocol and shell integration are all Non-goals for a
// screen-model core (see SPEC_FULL.md). Each reports a diagnostic instead
// of silently dropping the sequence.

func (h screenHandler) ApplicationCommandReceived(data []byte) {
	h.sink.Diagnostic("unsupported control: APC sequence")
}

func (h screenHandler) ClipboardLoad(clipboard byte, terminator string) {
	h.sink.Diagnostic("unsupported control: clipboard load (OSC 52)")
}

func (h screenHandler) ClipboardStore(clipboard byte, data []byte) {
	h.sink.Diagnostic("unsupported control: clipboard store (OSC 52)")
}

func (h screenHandler) PrivacyMessageReceived(data []byte) {
	h.sink.Diagnostic("unsupported control: privacy message")
}

func (h screenHandler) PushKeyboardMode(mode ansicode.KeyboardMode) {
	h.sink.Diagnostic("unsupported control: kitty keyboard protocol")
}

func (h screenHandler) PopKeyboardMode(n int) {
	h.sink.Diagnostic("unsupported control: kitty keyboard protocol")
}

func (h screenHandler) ReportKeyboardMode() {
	h.sink.Diagnostic("unsupported control: kitty keyboard protocol")
}

func (h screenHandler) ReportModifyOtherKeys() {
	h.sink.Diagnostic("unsupported control: modifyOtherKeys query")
}

func (h screenHandler) SetHyperlink(hyperlink *ansicode.Hyperlink) {
	h.sink.Diagnostic("unsupported control: OSC 8 hyperlink")
}

func (h screenHandler) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
	h.sink.Diagnostic("unsupported control: kitty keyboard protocol")
}

func (h screenHandler) SetKeypadApplicationMode() {
	h.sink.Diagnostic("unsupported control: application keypad mode")
}

func (h screenHandler) UnsetKeypadApplicationMode() {
	h.sink.Diagnostic("unsupported control: application keypad mode")
}

func (h screenHandler) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {
	h.sink.Diagnostic("unsupported control: modifyOtherKeys")
}

func (h screenHandler) SetWorkingDirectory(uri string) {
	h.sink.Diagnostic("unsupported control: OSC 7 working directory")
}

func (h screenHandler) StartOfStringReceived(data []byte) {
	h.sink.Diagnostic("unsupported control: SOS sequence")
}

func (h screenHandler) SixelReceived(params [][]uint16, data []byte) {
	h.sink.Diagnostic("unsupported control: sixel graphics")
}

// Backspace moves the cursor one column left, stopping at column 0.
func (h screenHandler) Backspace() {
	h.CursorBackward(1)
}

func (h screenHandler) ClearLine(mode ansicode.LineClearMode) {
	switch mode {
	case ansicode.LineClearModeRight:
		h.EraseInLine(0, false)
	case ansicode.LineClearModeLeft:
		h.EraseInLine(1, false)
	case ansicode.LineClearModeAll:
		h.EraseInLine(2, false)
	}
}

func (h screenHandler) ClearScreen(mode ansicode.ClearMode) {
	switch mode {
	case ansicode.ClearModeBelow:
		h.EraseInDisplay(0, false)
	case ansicode.ClearModeAbove:
		h.EraseInDisplay(1, false)
	case ansicode.ClearModeAll:
		h.EraseInDisplay(2, false)
	case ansicode.ClearModeSaved:
		h.history.Clear()
	}
}

func (h screenHandler) ClearTabs(mode ansicode.TabulationClearMode) {
	switch mode {
	case ansicode.TabulationClearModeCurrent:
		h.ClearTabStop(0)
	case ansicode.TabulationClearModeAll:
		h.ClearTabStop(3)
	}
}

// ConfigureCharset implements SCS. Only G0/G1 are modeled; G2/G3 requests
// are reported as unsupported since the core tracks no slots for them.
func (h screenHandler) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {
	which := int(index)
	if which < 0 || which > 1 {
		h.sink.Diagnostic(fmt.Sprintf("unsupported control: charset slot G%d", which))
		return
	}
	as := CharsetASCII
	if charset != 0 {
		as = CharsetDECSpecialGraphics
	}
	h.DesignateCharset(which, as)
}

func (h screenHandler) Decaln() {
	h.AlignmentDisplay()
}

func (h screenHandler) DeleteChars(n int) {
	h.DeleteCharacters(n)
}

func (h screenHandler) DeviceStatus(n int) {
	h.ReportDeviceStatus(n, false)
}

func (h screenHandler) EraseChars(n int) {
	h.EraseCharacters(n)
}

// Goto implements CUP/HVP; row and col arrive 0-based from the decoder, so
// CursorPosition's 1-based contract is fed row+1/col+1.
func (h screenHandler) Goto(row, col int) {
	h.CursorPosition(row+1, col+1)
}

func (h screenHandler) GotoCol(col int) {
	h.CursorColumn(col)
}

// GotoLine implements VPA; when DECOM is set the decoder's 0-based row is
// relative to the scrolling region, matching CursorPosition's own offset.
func (h screenHandler) GotoLine(row int) {
	if h.modes.DECOM {
		row += h.marginTop
	}
	h.CursorRow(row)
}

func (h screenHandler) HorizontalTabSet() {
	h.SetTabStop()
}

// IdentifyTerminal implements DA1/DA2; b is '\x00' for the primary request
// or '>' for the secondary request.
func (h screenHandler) IdentifyTerminal(b byte) {
	h.ReportDeviceAttributes(0, b)
}

func (h screenHandler) Input(r rune) {
	h.Draw(r)
}

func (h screenHandler) InsertBlank(n int) {
	h.InsertCharacters(n)
}

func (h screenHandler) InsertBlankLines(n int) {
	h.InsertLines(n)
}

func (h screenHandler) MoveBackward(n int) {
	h.CursorBackward(n)
}

func (h screenHandler) MoveBackwardTabs(n int) {
	h.Backtab(n)
}

func (h screenHandler) MoveDown(n int) {
	h.CursorDown(n, false)
}

func (h screenHandler) MoveDownCr(n int) {
	h.CursorDown(n, true)
}

func (h screenHandler) MoveForward(n int) {
	h.CursorForward(n)
}

func (h screenHandler) MoveForwardTabs(n int) {
	h.Tab(n)
}

func (h screenHandler) MoveUp(n int) {
	h.CursorUp(n, false)
}

func (h screenHandler) MoveUpCr(n int) {
	h.CursorUp(n, true)
}

func (h screenHandler) ResetColor(i int) {
	h.SetColorTableColor(uint32(i), "")
}

// ResetState runs the unlocked reset: the decoder only calls it from inside
// Write, which already holds the Screen's lock.
func (h screenHandler) ResetState() {
	h.reset()
}

func (h screenHandler) RestoreCursorPosition() {
	h.RestoreCursor()
}

func (h screenHandler) SaveCursorPosition() {
	h.SaveCursor()
}

func (h screenHandler) ScrollUp(n int) {
	h.Scroll(n)
}

func (h screenHandler) SetActiveCharset(n int) {
	h.ChangeCharset(n)
}

// SetColor stores a custom palette entry, forwarded to the sink as an OSC
// 4-style color-table update.
func (h screenHandler) SetColor(index int, c color.Color) {
	r, g, b, _ := c.RGBA()
	value := fmt.Sprintf("rgb:%02x/%02x/%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
	h.SetColorTableColor(uint32(index), value)
}

// SetCursorStyle maps go-ansicode's numeric cursor style (0=BlinkingBlock,
// 1=SteadyBlock, 2=BlinkingUnderline, 3=SteadyUnderline, 4=BlinkingBar,
// 5=SteadyBar) onto the core's CursorShape + blink pair.
func (h screenHandler) SetCursorStyle(style ansicode.CursorStyle) {
	switch style {
	case 0:
		h.SetCursorShape(CursorShapeBlock, true)
	case 1:
		h.SetCursorShape(CursorShapeBlock, false)
	case 2:
		h.SetCursorShape(CursorShapeUnderline, true)
	case 3:
		h.SetCursorShape(CursorShapeUnderline, false)
	case 4:
		h.SetCursorShape(CursorShapeBeam, true)
	case 5:
		h.SetCursorShape(CursorShapeBeam, false)
	default:
		h.SetCursorShape(CursorShapeUnspecified, h.cursor.Blink)
	}
}

const (
	dynamicColorForeground = -1
	dynamicColorBackground = -2
	dynamicColorCursor     = -3
)

// SetDynamicColor answers an OSC 10/11/12 query: resolves index against the
// cursor's current rendition colors (falling back to the default palette),
// notifies the sink of the reported value, and writes the response.
func (h screenHandler) SetDynamicColor(prefix string, index int, terminator string) {
	var rgba color.RGBA
	switch index {
	case dynamicColorForeground:
		rgba = ResolveColor(h.cursor.Fg, true)
	case dynamicColorBackground:
		rgba = ResolveColor(h.cursor.Bg, false)
	case dynamicColorCursor:
		rgba = DefaultCursor
	default:
		if index >= 0 && index < 256 {
			rgba = DefaultPalette[index]
		}
	}
	value := fmt.Sprintf("rgb:%02x/%02x/%02x", rgba.R, rgba.G, rgba.B)
	h.sink.SetDynamicColor(uint32(index), value)
	h.sink.WriteToChild([]byte(fmt.Sprintf("\x1b]%s;%s%s", prefix, value, terminator)))
}

// SetMode and UnsetMode translate go-ansicode's TerminalMode enum onto the
// core's typed ModeCode. SetMode shadows the core's own ModeCode-keyed
// SetMode (reached as h.Screen.SetMode); UnsetMode maps onto ResetMode.
func (h screenHandler) SetMode(mode ansicode.TerminalMode) {
	if code, ok := terminalModeToCode(mode); ok {
		h.Screen.SetMode(code)
		return
	}
	h.sink.Diagnostic(fmt.Sprintf("unsupported control: set mode %d", mode))
}

func (h screenHandler) UnsetMode(mode ansicode.TerminalMode) {
	if code, ok := terminalModeToCode(mode); ok {
		h.Screen.ResetMode(code)
		return
	}
	h.sink.Diagnostic(fmt.Sprintf("unsupported control: reset mode %d", mode))
}

// terminalModeToCode maps every ansicode.TerminalMode this core understands
// onto its typed ModeCode. AlternateScroll and UrgencyHints have no
// corresponding core state and are left unmapped, falling through to a
// diagnostic at the call site.
func terminalModeToCode(mode ansicode.TerminalMode) (ModeCode, bool) {
	switch mode {
	case ansicode.TerminalModeCursorKeys:
		return ModeDECCKM, true
	case ansicode.TerminalModeColumnMode:
		return ModeDECCOLM, true
	case ansicode.TerminalModeInsert:
		return ModeIRM, true
	case ansicode.TerminalModeOrigin:
		return ModeDECOM, true
	case ansicode.TerminalModeLineWrap:
		return ModeDECAWM, true
	case ansicode.TerminalModeBlinkingCursor:
		return ModeCursorBlink, true
	case ansicode.TerminalModeLineFeedNewLine:
		return ModeLNM, true
	case ansicode.TerminalModeShowCursor:
		return ModeDECTCEM, true
	case ansicode.TerminalModeReportMouseClicks:
		return ModeMouseTrackingButton, true
	case ansicode.TerminalModeReportCellMouseMotion:
		return ModeMouseTrackingMotion, true
	case ansicode.TerminalModeReportAllMouseMotion:
		return ModeMouseTrackingAny, true
	case ansicode.TerminalModeReportFocusInOut:
		return ModeFocusTracking, true
	case ansicode.TerminalModeUTF8Mouse:
		return ModeMouseProtocolUTF8, true
	case ansicode.TerminalModeSGRMouse:
		return ModeMouseProtocolSGR, true
	case ansicode.TerminalModeSwapScreenAndSetRestoreCursor:
		return ModeAlternateScreen, true
	case ansicode.TerminalModeBracketedPaste:
		return ModeBracketedPaste, true
	default:
		return 0, false
	}
}

func (h screenHandler) SetScrollingRegion(top, bottom int) {
	h.SetMargins(top, bottom)
}

// SetTerminalCharAttribute applies one decoded SGR attribute to the
// cursor's rendition.
func (h screenHandler) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		h.ApplyRendition(RenditionOp{Kind: RenditionReset})
	case ansicode.CharAttributeBold:
		h.ApplyRendition(RenditionOp{Kind: RenditionBold, On: true})
	case ansicode.CharAttributeCancelBold, ansicode.CharAttributeCancelBoldDim:
		h.ApplyRendition(RenditionOp{Kind: RenditionBold, On: false})
	case ansicode.CharAttributeItalic:
		h.ApplyRendition(RenditionOp{Kind: RenditionItalic, On: true})
	case ansicode.CharAttributeCancelItalic:
		h.ApplyRendition(RenditionOp{Kind: RenditionItalic, On: false})
	case ansicode.CharAttributeUnderline:
		h.ApplyRendition(RenditionOp{Kind: RenditionUnderline, On: true, Decoration: DecorationStraight})
	case ansicode.CharAttributeCurlyUnderline:
		h.ApplyRendition(RenditionOp{Kind: RenditionUnderline, On: true, Decoration: DecorationCurly})
	case ansicode.CharAttributeDoubleUnderline, ansicode.CharAttributeDottedUnderline, ansicode.CharAttributeDashedUnderline:
		h.ApplyRendition(RenditionOp{Kind: RenditionUnderline, On: true, Decoration: DecorationStraight})
	case ansicode.CharAttributeCancelUnderline:
		h.ApplyRendition(RenditionOp{Kind: RenditionUnderline, On: false})
	case ansicode.CharAttributeReverse:
		h.ApplyRendition(RenditionOp{Kind: RenditionReverse, On: true})
	case ansicode.CharAttributeCancelReverse:
		h.ApplyRendition(RenditionOp{Kind: RenditionReverse, On: false})
	case ansicode.CharAttributeStrike:
		h.ApplyRendition(RenditionOp{Kind: RenditionStrike, On: true})
	case ansicode.CharAttributeCancelStrike:
		h.ApplyRendition(RenditionOp{Kind: RenditionStrike, On: false})
	case ansicode.CharAttributeForeground:
		h.ApplyRendition(RenditionOp{Kind: RenditionForeground, Color: resolveAttrColor(attr)})
	case ansicode.CharAttributeBackground:
		h.ApplyRendition(RenditionOp{Kind: RenditionBackground, Color: resolveAttrColor(attr)})
	case ansicode.CharAttributeUnderlineColor:
		h.ApplyRendition(RenditionOp{Kind: RenditionDecorationColor, Color: resolveAttrColor(attr)})
	// Dim, blink and hidden have no corresponding Cell/Cursor rendition
	// field in this core; dropped silently like an unsupported SGR code
	// a real terminal would also just ignore.
	case ansicode.CharAttributeDim, ansicode.CharAttributeBlinkSlow, ansicode.CharAttributeBlinkFast,
		ansicode.CharAttributeHidden, ansicode.CharAttributeCancelBlink, ansicode.CharAttributeCancelHidden:
	}
}

// resolveAttrColor packs a decoded SGR color attribute into the core's
// Color representation; an attribute carrying no color resolves to the
// default (inherit-terminal) color.
func resolveAttrColor(attr ansicode.TerminalCharAttribute) Color {
	if attr.RGBColor != nil {
		return RGBColor(attr.RGBColor.R, attr.RGBColor.G, attr.RGBColor.B)
	}
	if attr.IndexedColor != nil {
		return PaletteColor(uint8(attr.IndexedColor.Index))
	}
	if attr.NamedColor != nil {
		return PaletteColor(uint8(*attr.NamedColor))
	}
	return DefaultColor
}

// Tab implements CHT: a repeat-count tab-forward, distinct from the core's
// own single-step Tab().
func (h screenHandler) Tab(n int) {
	for i := 0; i < n; i++ {
		h.Screen.Tab()
	}
}

// TextAreaSizeChars and TextAreaSizePixels implement XTWINOPS 18/14: report
// the screen geometry in characters, or in pixels assuming a synthetic
// 10x20 cell (this core has no real glyph metrics).
func (h screenHandler) TextAreaSizeChars() {
	h.sink.WriteToChild([]byte(fmt.Sprintf("\x1b[8;%d;%dt", h.lines, h.columns)))
}

func (h screenHandler) TextAreaSizePixels() {
	h.sink.WriteToChild([]byte(fmt.Sprintf("\x1b[4;%d;%dt", h.lines*20, h.columns*10)))
}

// CellSizePixels implements XTWINOPS 16: reports a synthetic 10x20 cell.
func (h screenHandler) CellSizePixels() {
	h.sink.WriteToChild([]byte("\x1b[6;20;10t"))
}
