package vtscreen

// Sink receives the Screen's outward notifications: one method per event
// variant, so the core stays decoupled from whatever hosts it (PTY writer,
// window title bar, clipboard, ...), following the teacher's per-event
// provider interfaces collapsed into a single collaborator.
type Sink interface {
	// BufToggled fires when the active buffer switches between main and
	// alternate; isMain is true when the main buffer became active.
	BufToggled(isMain bool)
	// Bell fires on BEL.
	Bell()
	// WriteToChild carries bytes a report operation wants written back to
	// the child process (device/status reports, dynamic-color and
	// window-size replies).
	WriteToChild(data []byte)
	// UseUTF8 fires when use_latin1 toggles the decoder mode; useUTF8 is
	// the new state (false when latin-1 override is on).
	UseUTF8(useUTF8 bool)
	// TitleChanged and IconChanged fire on OSC 0/1/2.
	TitleChanged(title string)
	IconChanged(icon string)
	// SetDynamicColor fires on OSC 10/11/12/...; an empty value means
	// reset to default.
	SetDynamicColor(code uint32, value string)
	// SetColorTableColor fires on OSC 4/104; an empty value means reset.
	SetColorTableColor(code uint32, value string)
	// RequestCapabilities passes an XTGETTCAP-style query through to the
	// collaborator that knows the terminal's advertised capabilities.
	RequestCapabilities(query string)
	// Diagnostic reports a single-line, non-fatal UnsupportedControl
	// condition: an unknown mode code, an unknown clear-tabstop mode, or a
	// savepoint-stack overflow.
	Diagnostic(message string)
}

// NoopSink implements Sink with no-op bodies; it is the default when no
// Sink option is supplied.
type NoopSink struct{}

func (NoopSink) BufToggled(bool)                  {}
func (NoopSink) Bell()                            {}
func (NoopSink) WriteToChild([]byte)              {}
func (NoopSink) UseUTF8(bool)                     {}
func (NoopSink) TitleChanged(string)              {}
func (NoopSink) IconChanged(string)               {}
func (NoopSink) SetDynamicColor(uint32, string)   {}
func (NoopSink) SetColorTableColor(uint32, string) {}
func (NoopSink) RequestCapabilities(string)       {}
func (NoopSink) Diagnostic(string)                {}

var _ Sink = NoopSink{}
