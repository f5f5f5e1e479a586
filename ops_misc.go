package vtscreen

// Bell implements BEL: forwards to the sink with no internal state change.
func (s *Screen) Bell() {
	run := func() { s.sink.Bell() }
	if s.middleware.Bell != nil {
		s.middleware.Bell(run)
		return
	}
	run()
}

// SetCursorShape implements DECSCUSR: selects the visual cursor shape and
// its blink state.
func (s *Screen) SetCursorShape(shape CursorShape, blink bool) {
	s.cursor.Shape = shape
	s.cursor.Blink = blink
	s.markCursorChanged()
}

// Substitute implements SUB: replaces the character under the cursor with
// '?' without moving the cursor. A cursor past the last column (after a
// write filled the row) substitutes the last cell.
func (s *Screen) Substitute() {
	row := s.active.Row(s.cursor.Y)
	if row == nil || len(row.Cells) == 0 {
		return
	}
	x := minInt(s.cursor.X, len(row.Cells)-1)
	row.Cells[x].Codepoint = '?'
	s.markDirty()
}

// SetTitle implements OSC 0/2: records the window title and notifies the
// sink.
func (s *Screen) SetTitle(title string) {
	s.title = title
	s.sink.TitleChanged(title)
}

// PushTitle and PopTitle implement XTWINOPS 22/23 (window-title stack).
// PopTitle on an empty stack leaves the title unchanged.
func (s *Screen) PushTitle() {
	s.titleStack = append(s.titleStack, s.title)
}

func (s *Screen) PopTitle() {
	if len(s.titleStack) == 0 {
		return
	}
	last := len(s.titleStack) - 1
	s.title = s.titleStack[last]
	s.titleStack = s.titleStack[:last]
	s.sink.TitleChanged(s.title)
}

// SetIcon implements OSC 1: records the icon name and notifies the sink.
func (s *Screen) SetIcon(icon string) {
	s.icon = icon
	s.sink.IconChanged(icon)
}

// SetDynamicColor implements OSC 10/11/12/...: forwards straight to the
// sink, which owns the actual palette/cursor-color state.
func (s *Screen) SetDynamicColor(code uint32, value string) {
	s.sink.SetDynamicColor(code, value)
}

// SetColorTableColor implements OSC 4/104.
func (s *Screen) SetColorTableColor(code uint32, value string) {
	s.sink.SetColorTableColor(code, value)
}

// RequestCapabilities implements XTGETTCAP: forwards the raw query to the
// sink, which is expected to write the response back via WriteToChild.
func (s *Screen) RequestCapabilities(query string) {
	s.sink.RequestCapabilities(query)
}
