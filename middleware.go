package vtscreen

// Middleware holds one optional wrapper function for each of the Screen
// operations listed below; other operations have no wrapper.
// Each field, when set, receives the call's arguments plus a next closure
// that performs the default behavior; the wrapper decides whether, and
// when, to invoke next. Nil fields fall straight through to the default
// behavior. This lets tests observe or intercept internal calls without
// subclassing or modifying Screen, generalizing the teacher's per-handler
// wrapper struct to this command surface.
type Middleware struct {
	Draw                   func(r rune, next func(rune))
	CarriageReturn         func(next func())
	LineFeed               func(next func())
	Index                  func(next func())
	ReverseIndex           func(next func())
	Scroll                 func(n int, next func(int))
	InsertLines            func(n int, next func(int))
	DeleteLines            func(n int, next func(int))
	InsertCharacters       func(n int, next func(int))
	DeleteCharacters       func(n int, next func(int))
	EraseCharacters        func(n int, next func(int))
	EraseInLine            func(how int, private bool, next func(int, bool))
	EraseInDisplay         func(how int, private bool, next func(int, bool))
	AlignmentDisplay       func(next func())
	ApplyRendition         func(op RenditionOp, next func(RenditionOp))
	CursorPosition         func(line, col int, next func(int, int))
	CursorUp               func(n int, cr bool, next func(int, bool))
	CursorDown             func(n int, cr bool, next func(int, bool))
	CursorForward          func(n int, next func(int))
	CursorBackward         func(n int, next func(int))
	Tab                    func(next func())
	Backtab                func(n int, next func(int))
	SetTabStop             func(next func())
	ClearTabStop           func(how int, next func(int))
	SaveCursor             func(next func())
	RestoreCursor          func(next func())
	ToggleAltScreen        func(toAlt bool, next func(bool))
	SetMargins             func(top, bottom int, next func(int, int))
	SetMode                func(code int, private bool, next func(int, bool))
	ResetMode              func(code int, private bool, next func(int, bool))
	DesignateCharset       func(which int, as Charset, next func(int, Charset))
	ChangeCharset          func(which int, next func(int))
	UseLatin1              func(on bool, next func(bool))
	ReportDeviceAttributes func(mode int, startModifier byte, next func(int, byte))
	ReportDeviceStatus     func(which int, private bool, next func(int, bool))
	ReportModeStatus       func(which int, private bool, next func(int, bool))
	Resize                 func(lines, columns int, next func(int, int))
	Reset                  func(next func())
	Bell                   func(next func())
}

// Merge copies every non-nil field of other into m, overriding m's
// existing wrapper for that operation.
func (m *Middleware) Merge(other *Middleware) {
	if other == nil {
		return
	}
	if other.Draw != nil {
		m.Draw = other.Draw
	}
	if other.CarriageReturn != nil {
		m.CarriageReturn = other.CarriageReturn
	}
	if other.LineFeed != nil {
		m.LineFeed = other.LineFeed
	}
	if other.Index != nil {
		m.Index = other.Index
	}
	if other.ReverseIndex != nil {
		m.ReverseIndex = other.ReverseIndex
	}
	if other.Scroll != nil {
		m.Scroll = other.Scroll
	}
	if other.InsertLines != nil {
		m.InsertLines = other.InsertLines
	}
	if other.DeleteLines != nil {
		m.DeleteLines = other.DeleteLines
	}
	if other.InsertCharacters != nil {
		m.InsertCharacters = other.InsertCharacters
	}
	if other.DeleteCharacters != nil {
		m.DeleteCharacters = other.DeleteCharacters
	}
	if other.EraseCharacters != nil {
		m.EraseCharacters = other.EraseCharacters
	}
	if other.EraseInLine != nil {
		m.EraseInLine = other.EraseInLine
	}
	if other.EraseInDisplay != nil {
		m.EraseInDisplay = other.EraseInDisplay
	}
	if other.AlignmentDisplay != nil {
		m.AlignmentDisplay = other.AlignmentDisplay
	}
	if other.ApplyRendition != nil {
		m.ApplyRendition = other.ApplyRendition
	}
	if other.CursorPosition != nil {
		m.CursorPosition = other.CursorPosition
	}
	if other.CursorUp != nil {
		m.CursorUp = other.CursorUp
	}
	if other.CursorDown != nil {
		m.CursorDown = other.CursorDown
	}
	if other.CursorForward != nil {
		m.CursorForward = other.CursorForward
	}
	if other.CursorBackward != nil {
		m.CursorBackward = other.CursorBackward
	}
	if other.Tab != nil {
		m.Tab = other.Tab
	}
	if other.Backtab != nil {
		m.Backtab = other.Backtab
	}
	if other.SetTabStop != nil {
		m.SetTabStop = other.SetTabStop
	}
	if other.ClearTabStop != nil {
		m.ClearTabStop = other.ClearTabStop
	}
	if other.SaveCursor != nil {
		m.SaveCursor = other.SaveCursor
	}
	if other.RestoreCursor != nil {
		m.RestoreCursor = other.RestoreCursor
	}
	if other.ToggleAltScreen != nil {
		m.ToggleAltScreen = other.ToggleAltScreen
	}
	if other.SetMargins != nil {
		m.SetMargins = other.SetMargins
	}
	if other.SetMode != nil {
		m.SetMode = other.SetMode
	}
	if other.ResetMode != nil {
		m.ResetMode = other.ResetMode
	}
	if other.DesignateCharset != nil {
		m.DesignateCharset = other.DesignateCharset
	}
	if other.ChangeCharset != nil {
		m.ChangeCharset = other.ChangeCharset
	}
	if other.UseLatin1 != nil {
		m.UseLatin1 = other.UseLatin1
	}
	if other.ReportDeviceAttributes != nil {
		m.ReportDeviceAttributes = other.ReportDeviceAttributes
	}
	if other.ReportDeviceStatus != nil {
		m.ReportDeviceStatus = other.ReportDeviceStatus
	}
	if other.ReportModeStatus != nil {
		m.ReportModeStatus = other.ReportModeStatus
	}
	if other.Resize != nil {
		m.Resize = other.Resize
	}
	if other.Reset != nil {
		m.Reset = other.Reset
	}
	if other.Bell != nil {
		m.Bell = other.Bell
	}
}
