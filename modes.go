package vtscreen

// MouseTrackingMode selects which mouse events are reported, per the
// VT mouse-tracking mode codes.
type MouseTrackingMode int

const (
	MouseTrackingOff MouseTrackingMode = iota
	MouseTrackingButton
	MouseTrackingMotion
	MouseTrackingAny
)

// MouseTrackingProtocol selects the wire encoding used for mouse reports.
type MouseTrackingProtocol int

const (
	MouseProtocolNormal MouseTrackingProtocol = iota
	MouseProtocolUTF8
	MouseProtocolSGR
	MouseProtocolURXVT
)

// ModeSet holds the DEC/ANSI boolean modes plus the mouse-tracking
// enumerations. Zero value is not valid; use NewModeSet for the documented
// defaults.
type ModeSet struct {
	LNM              bool
	IRM              bool
	DECAWM           bool
	DECTCEM          bool
	DECARM           bool
	DECOM            bool
	DECSCNM          bool
	DECCKM           bool
	DECCOLM          bool
	BracketedPaste   bool
	ExtendedKeyboard bool
	FocusTracking    bool

	MouseTrackingMode     MouseTrackingMode
	MouseTrackingProtocol MouseTrackingProtocol
}

// NewModeSet returns the documented default mode state: DECAWM, DECTCEM
// and DECARM set, everything else clear.
func NewModeSet() ModeSet {
	return ModeSet{
		DECAWM:  true,
		DECTCEM: true,
		DECARM:  true,
	}
}
