package vtscreen

// ModeCode enumerates every DEC/ANSI mode the core understands. The
// parser-collaborator adapter (handler.go) is responsible for mapping raw
// CSI mode numbers (and public/private classification) onto these
// constants, emitting a diagnostic itself for anything it cannot map.
type ModeCode int

const (
	ModeLNM ModeCode = iota
	ModeIRM
	ModeDECAWM
	ModeDECTCEM
	ModeDECARM
	ModeDECOM
	ModeDECSCNM
	ModeDECCKM
	ModeDECCOLM
	ModeBracketedPaste
	ModeExtendedKeyboard
	ModeFocusTracking
	ModeCursorBlink
	ModeAlternateScreen
	ModeMouseTrackingOff
	ModeMouseTrackingButton
	ModeMouseTrackingMotion
	ModeMouseTrackingAny
	ModeMouseProtocolNormal
	ModeMouseProtocolUTF8
	ModeMouseProtocolSGR
	ModeMouseProtocolURXVT
	// ModeDECSCLM and ModeDECNRCM are accepted as no-ops: scroll-speed and
	// national-replacement-character-set modes don't affect screen state.
	ModeDECSCLM
	ModeDECNRCM
)

// SetMode sets the given mode. Applies documented side effects: DECTCEM
// and cursor-blink signal cursor_changed; DECSCNM marks dirty; DECOM homes
// the cursor to the scrolling region; DECCOLM erases the display and
// homes the cursor; ALTERNATE_SCREEN toggles the buffer if not already
// active; mouse codes select the tracking mode/protocol.
func (s *Screen) SetMode(code ModeCode) {
	run := func(code ModeCode, on bool) { s.setMode(code, on) }
	if s.middleware.SetMode != nil {
		s.middleware.SetMode(int(code), true, func(c int, private bool) { run(ModeCode(c), true) })
		return
	}
	run(code, true)
}

// ResetMode clears the given mode, with the same side effects as SetMode
// in reverse.
func (s *Screen) ResetMode(code ModeCode) {
	run := func(code ModeCode, on bool) { s.setMode(code, on) }
	if s.middleware.ResetMode != nil {
		s.middleware.ResetMode(int(code), true, func(c int, private bool) { run(ModeCode(c), false) })
		return
	}
	run(code, false)
}

func (s *Screen) setMode(code ModeCode, on bool) {
	switch code {
	case ModeLNM:
		s.modes.LNM = on
	case ModeIRM:
		s.modes.IRM = on
	case ModeDECAWM:
		s.modes.DECAWM = on
	case ModeDECTCEM:
		s.modes.DECTCEM = on
		s.markCursorChanged()
	case ModeDECARM:
		s.modes.DECARM = on
	case ModeDECOM:
		s.modes.DECOM = on
		s.cursor.X = 0
		s.cursor.Y = s.marginTop
		s.ensureBounds(true)
		s.markCursorChanged()
	case ModeDECSCNM:
		s.modes.DECSCNM = on
		s.markDirty()
	case ModeDECCKM:
		s.modes.DECCKM = on
	case ModeDECCOLM:
		s.modes.DECCOLM = on
		s.EraseInDisplay(2, false)
		s.cursor.X = 0
		s.cursor.Y = 0
		s.markCursorChanged()
	case ModeBracketedPaste:
		s.modes.BracketedPaste = on
	case ModeExtendedKeyboard:
		s.modes.ExtendedKeyboard = on
	case ModeFocusTracking:
		s.modes.FocusTracking = on
	case ModeCursorBlink:
		s.cursor.Blink = on
		s.markCursorChanged()
	case ModeAlternateScreen:
		if on != !s.onMain {
			s.ToggleAltScreen(on)
		}
	case ModeMouseTrackingOff:
		s.modes.MouseTrackingMode = MouseTrackingOff
	case ModeMouseTrackingButton:
		if on {
			s.modes.MouseTrackingMode = MouseTrackingButton
		} else {
			s.modes.MouseTrackingMode = MouseTrackingOff
		}
	case ModeMouseTrackingMotion:
		if on {
			s.modes.MouseTrackingMode = MouseTrackingMotion
		} else {
			s.modes.MouseTrackingMode = MouseTrackingOff
		}
	case ModeMouseTrackingAny:
		if on {
			s.modes.MouseTrackingMode = MouseTrackingAny
		} else {
			s.modes.MouseTrackingMode = MouseTrackingOff
		}
	case ModeMouseProtocolNormal:
		s.modes.MouseTrackingProtocol = MouseProtocolNormal
	case ModeMouseProtocolUTF8:
		if on {
			s.modes.MouseTrackingProtocol = MouseProtocolUTF8
		}
	case ModeMouseProtocolSGR:
		if on {
			s.modes.MouseTrackingProtocol = MouseProtocolSGR
		}
	case ModeMouseProtocolURXVT:
		if on {
			s.modes.MouseTrackingProtocol = MouseProtocolURXVT
		}
	case ModeDECSCLM, ModeDECNRCM:
		// no-op
	}
}

// modeIsSet reports the current boolean state backing code, used by
// ReportModeStatus to answer DECRPM. Codes with no direct ModeSet field
// (DECSCLM, DECNRCM) always report reset.
func (s *Screen) modeIsSet(code ModeCode) bool {
	switch code {
	case ModeLNM:
		return s.modes.LNM
	case ModeIRM:
		return s.modes.IRM
	case ModeDECAWM:
		return s.modes.DECAWM
	case ModeDECTCEM:
		return s.modes.DECTCEM
	case ModeDECARM:
		return s.modes.DECARM
	case ModeDECOM:
		return s.modes.DECOM
	case ModeDECSCNM:
		return s.modes.DECSCNM
	case ModeDECCKM:
		return s.modes.DECCKM
	case ModeDECCOLM:
		return s.modes.DECCOLM
	case ModeBracketedPaste:
		return s.modes.BracketedPaste
	case ModeExtendedKeyboard:
		return s.modes.ExtendedKeyboard
	case ModeFocusTracking:
		return s.modes.FocusTracking
	case ModeCursorBlink:
		return s.cursor.Blink
	case ModeAlternateScreen:
		return !s.onMain
	case ModeMouseTrackingButton:
		return s.modes.MouseTrackingMode == MouseTrackingButton
	case ModeMouseTrackingMotion:
		return s.modes.MouseTrackingMode == MouseTrackingMotion
	case ModeMouseTrackingAny:
		return s.modes.MouseTrackingMode == MouseTrackingAny
	case ModeMouseProtocolUTF8:
		return s.modes.MouseTrackingProtocol == MouseProtocolUTF8
	case ModeMouseProtocolSGR:
		return s.modes.MouseTrackingProtocol == MouseProtocolSGR
	case ModeMouseProtocolURXVT:
		return s.modes.MouseTrackingProtocol == MouseProtocolURXVT
	default:
		return false
	}
}

// ToggleAltScreen implements the alternate-screen enter/exit transition.
// Entering clears the alt buffer, pushes a savepoint onto the main stack,
// switches the active pointer to alt, and homes the cursor. Exiting
// switches back to main and pops the most recent savepoint from the main
// stack to restore. Notifies the sink via BufToggled either way.
func (s *Screen) ToggleAltScreen(toAlt bool) {
	run := func(toAlt bool) {
		if toAlt {
			s.alt.ClearAll()
			s.mainSavepoints.Push(s.captureSavepoint())
			s.active = s.alt
			s.onMain = false
			s.cursor.X = 0
			s.cursor.Y = 0
			s.sink.BufToggled(false)
		} else {
			s.active = s.main
			s.onMain = true
			if sp, ok := s.mainSavepoints.Pop(); ok {
				s.restoreSavepoint(sp)
			}
			s.sink.BufToggled(true)
		}
		s.markDirty()
		s.markCursorChanged()
	}
	if s.middleware.ToggleAltScreen != nil {
		s.middleware.ToggleAltScreen(toAlt, run)
		return
	}
	run(toAlt)
}
