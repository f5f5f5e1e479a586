package vtscreen

// Index implements IND: if the cursor is on the bottom margin, the
// scrolling region rotates up by one (INDEX_UP); otherwise the cursor
// simply moves down a row.
func (s *Screen) Index() {
	run := func() {
		if s.cursor.Y == s.marginBottom {
			s.doIndexUp()
		} else {
			s.cursor.Y++
			s.markCursorChanged()
		}
	}
	if s.middleware.Index != nil {
		s.middleware.Index(run)
		return
	}
	run()
}

// doIndexUp rotates the scrolling region up by one row. When the active
// buffer is main and there is no custom bottom margin (bottom ==
// lines-1), the displaced top row is appended to history and
// historyLineAddedCount increments; a custom bottom margin means the
// scrolled-off line never reaches history.
func (s *Screen) doIndexUp() {
	evicted := s.active.Index(s.marginTop, s.marginBottom)
	if s.onMain && s.marginBottom == s.lines-1 {
		s.history.Push(evicted)
		s.historyLineAddedCount++
	}
	s.markDirty()
}

// doIndexDown rotates the scrolling region down by one row. Never touches
// history, regardless of buffer or margins.
func (s *Screen) doIndexDown() {
	s.active.ReverseIndex(s.marginTop, s.marginBottom)
	s.markDirty()
}

// ReverseIndex implements RI: if the cursor is on the top margin, the
// scrolling region rotates down by one (INDEX_DOWN); otherwise the cursor
// simply moves up a row.
func (s *Screen) ReverseIndex() {
	run := func() {
		if s.cursor.Y == s.marginTop {
			s.doIndexDown()
		} else {
			s.cursor.Y--
			s.markCursorChanged()
		}
	}
	if s.middleware.ReverseIndex != nil {
		s.middleware.ReverseIndex(run)
		return
	}
	run()
}

// Scroll performs min(n, lines) unconditional INDEX_UP rotations,
// independent of the cursor's row.
func (s *Screen) Scroll(n int) {
	run := func(n int) {
		if n > s.lines {
			n = s.lines
		}
		for i := 0; i < n; i++ {
			s.doIndexUp()
		}
	}
	if s.middleware.Scroll != nil {
		s.middleware.Scroll(n, run)
		return
	}
	run(n)
}

// ScrollDown performs min(n, lines) unconditional INDEX_DOWN rotations.
func (s *Screen) ScrollDown(n int) {
	if n > s.lines {
		n = s.lines
	}
	for i := 0; i < n; i++ {
		s.doIndexDown()
	}
}

// LineFeed implements LF: index(), then carriage_return() if LNM is set,
// then ensure bounds.
func (s *Screen) LineFeed() {
	run := func() { s.linefeed() }
	if s.middleware.LineFeed != nil {
		s.middleware.LineFeed(run)
		return
	}
	run()
}

func (s *Screen) linefeed() {
	s.Index()
	if s.modes.LNM {
		s.carriageReturn()
	}
	s.ensureBounds(false)
}
