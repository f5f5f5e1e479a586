package vtscreen

import "fmt"

const (
	primaryDeviceAttributes   = "\x1b[?62;c"
	secondaryDeviceAttributes = "\x1b[>1;1;0c"
)

// ReportDeviceAttributes implements DA1/DA2. mode is always 0 for this
// core (no sub-parameter variants); startModifier distinguishes the
// primary request ('\x00') from the secondary request ('>'). The core
// does not model a tertiary (DA3) response.
func (s *Screen) ReportDeviceAttributes(mode int, startModifier byte) {
	run := func(mode int, startModifier byte) {
		if mode != 0 {
			return
		}
		if startModifier == '>' {
			s.sink.WriteToChild([]byte(secondaryDeviceAttributes))
			return
		}
		s.sink.WriteToChild([]byte(primaryDeviceAttributes))
	}
	if s.middleware.ReportDeviceAttributes != nil {
		s.middleware.ReportDeviceAttributes(mode, startModifier, run)
		return
	}
	run(mode, startModifier)
}

// ReportDeviceStatus implements DSR. which==5 reports overall device
// status ("OK"); which==6 reports the 1-based cursor position, adjusted
// for DECOM's origin offset when set. private distinguishes the DEC
// private-mode variants (e.g. DECXCPR) but does not change this core's
// response format.
func (s *Screen) ReportDeviceStatus(which int, private bool) {
	run := func(which int, private bool) {
		switch which {
		case 5:
			s.sink.WriteToChild([]byte("\x1b[0n"))
		case 6:
			y := s.cursor.Y + 1
			if s.modes.DECOM {
				y = s.cursor.Y - s.marginTop + 1
			}
			x := s.cursor.X + 1
			prefix := ""
			if private {
				prefix = "?"
			}
			s.sink.WriteToChild([]byte(fmt.Sprintf("\x1b[%s%d;%dR", prefix, y, x)))
		default:
			s.sink.Diagnostic(fmt.Sprintf("unsupported device status request %d", which))
		}
	}
	if s.middleware.ReportDeviceStatus != nil {
		s.middleware.ReportDeviceStatus(which, private, run)
		return
	}
	run(which, private)
}

// ReportModeStatus implements DECRPM/mode-query reports. which is the raw
// wire-format mode number (preserved through to the response since
// ModeCode doesn't carry it); code is the core's resolved typed mode,
// used to look up the live boolean via modeIsSet. status follows DEC's
// convention: 1 set, 2 reset.
func (s *Screen) ReportModeStatus(code ModeCode, which int, private bool) {
	run := func(which int, private bool) {
		status := 2
		if s.modeIsSet(code) {
			status = 1
		}
		prefix := ""
		if private {
			prefix = "?"
		}
		s.sink.WriteToChild([]byte(fmt.Sprintf("\x1b[%s%d;%dy", prefix, which, status)))
	}
	if s.middleware.ReportModeStatus != nil {
		s.middleware.ReportModeStatus(which, private, run)
		return
	}
	run(which, private)
}
