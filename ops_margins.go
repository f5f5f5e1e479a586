package vtscreen

// SetMargins implements DECSTBM. top and bottom are 1-based; 0 means "use
// the default edge" (top defaults to 1, bottom to the last row). The
// region is only applied when it spans at least two rows; otherwise the
// existing margins are left untouched. The cursor homes to (0,0), or to
// (marginTop,0) when DECOM is set.
func (s *Screen) SetMargins(top, bottom int) {
	run := func(top, bottom int) {
		if top <= 0 {
			top = 1
		}
		if bottom <= 0 {
			bottom = s.lines
		}
		newTop, newBottom := top-1, bottom-1
		if newBottom > newTop {
			s.marginTop = newTop
			s.marginBottom = newBottom
		}
		s.cursor.X = 0
		if s.modes.DECOM {
			s.cursor.Y = s.marginTop
		} else {
			s.cursor.Y = 0
		}
		s.markCursorChanged()
	}
	if s.middleware.SetMargins != nil {
		s.middleware.SetMargins(top, bottom, run)
		return
	}
	run(top, bottom)
}
