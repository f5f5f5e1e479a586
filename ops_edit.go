package vtscreen

// InsertLines implements IL: when the cursor's row lies within the
// scrolling margins, rows [y, marginBottom-n] shift down and the exposed
// rows are cleared, then the cursor carriage-returns.
func (s *Screen) InsertLines(n int) {
	run := func(n int) {
		if s.cursor.Y < s.marginTop || s.cursor.Y > s.marginBottom {
			return
		}
		s.active.InsertLines(n, s.cursor.Y, s.marginBottom)
		s.carriageReturn()
		s.markDirty()
	}
	if s.middleware.InsertLines != nil {
		s.middleware.InsertLines(n, run)
		return
	}
	run(n)
}

// DeleteLines implements DL: when the cursor's row lies within the
// scrolling margins, rows [y+n, marginBottom] shift up and the exposed
// rows are cleared, then the cursor carriage-returns.
func (s *Screen) DeleteLines(n int) {
	run := func(n int) {
		if s.cursor.Y < s.marginTop || s.cursor.Y > s.marginBottom {
			return
		}
		s.active.DeleteLines(n, s.cursor.Y, s.marginBottom)
		s.carriageReturn()
		s.markDirty()
	}
	if s.middleware.DeleteLines != nil {
		s.middleware.DeleteLines(n, run)
		return
	}
	run(n)
}

// InsertCharacters implements ICH: shifts the current row right from the
// cursor by min(columns-x, n), clearing the exposed cells with the
// cursor's current rendition.
func (s *Screen) InsertCharacters(n int) {
	run := func(n int) {
		row := s.active.Row(s.cursor.Y)
		if row == nil {
			return
		}
		max := s.columns - s.cursor.X
		if n > max {
			n = max
		}
		if n <= 0 {
			return
		}
		template := s.cursor.Rendition()
		for i := s.columns - 1; i >= s.cursor.X+n; i-- {
			row.Cells[i] = row.Cells[i-n]
		}
		for i := s.cursor.X; i < s.cursor.X+n; i++ {
			row.Cells[i].ResetWithRendition(template)
		}
		s.markDirty()
	}
	if s.middleware.InsertCharacters != nil {
		s.middleware.InsertCharacters(n, run)
		return
	}
	run(n)
}

// DeleteCharacters implements DCH: shifts the current row left from the
// cursor by min(columns-x, n), clearing the last n cells with the
// cursor's current rendition.
func (s *Screen) DeleteCharacters(n int) {
	run := func(n int) {
		row := s.active.Row(s.cursor.Y)
		if row == nil {
			return
		}
		max := s.columns - s.cursor.X
		if n > max {
			n = max
		}
		if n <= 0 {
			return
		}
		template := s.cursor.Rendition()
		copy(row.Cells[s.cursor.X:s.columns-n], row.Cells[s.cursor.X+n:s.columns])
		for i := s.columns - n; i < s.columns; i++ {
			row.Cells[i].ResetWithRendition(template)
		}
		s.markDirty()
	}
	if s.middleware.DeleteCharacters != nil {
		s.middleware.DeleteCharacters(n, run)
		return
	}
	run(n)
}

// EraseCharacters implements ECH: overwrites min(columns-x, n) cells at
// the cursor with blank + current rendition, without shifting.
func (s *Screen) EraseCharacters(n int) {
	run := func(n int) {
		max := s.columns - s.cursor.X
		if n > max {
			n = max
		}
		if n <= 0 {
			return
		}
		s.active.ClearLineRange(s.cursor.Y, s.cursor.X, s.cursor.X+n, s.cursor.Rendition())
		s.markDirty()
	}
	if s.middleware.EraseCharacters != nil {
		s.middleware.EraseCharacters(n, run)
		return
	}
	run(n)
}

// EraseInLine implements EL: how 0 clears [x, columns), 1 clears [0, x],
// 2 clears [0, columns); any other value is a no-op. When private is
// true, only the text is cleared (codepoint reset to blank) and the
// existing per-cell attributes are preserved; otherwise blanks carry the
// cursor's current rendition.
func (s *Screen) EraseInLine(how int, private bool) {
	run := func(how int, private bool) {
		from, to, ok := eraseLineRange(how, s.cursor.X, s.columns)
		if !ok {
			return
		}
		s.eraseRange(s.cursor.Y, from, to, private)
		s.markDirty()
	}
	if s.middleware.EraseInLine != nil {
		s.middleware.EraseInLine(how, private, run)
		return
	}
	run(how, private)
}

func eraseLineRange(how, x, columns int) (from, to int, ok bool) {
	switch how {
	case 0:
		return x, columns, true
	case 1:
		return 0, x + 1, true
	case 2:
		return 0, columns, true
	default:
		return 0, 0, false
	}
}

// eraseRange clears cells [from,to) of row y. When preserveAttrs is true,
// only the codepoint/width/combining marks are reset; otherwise the
// cells become blanks with the cursor's current rendition.
func (s *Screen) eraseRange(y, from, to int, preserveAttrs bool) {
	row := s.active.Row(y)
	if row == nil {
		return
	}
	if from < 0 {
		from = 0
	}
	if to > len(row.Cells) {
		to = len(row.Cells)
	}
	for i := from; i < to; i++ {
		if preserveAttrs {
			attrs := row.Cells[i]
			attrs.Codepoint = ' '
			attrs.Width = WidthNormal
			attrs.Combining = [maxCombining]rune{}
			attrs.numComb = 0
			row.Cells[i] = attrs
		} else {
			row.Cells[i].ResetWithRendition(s.cursor.Rendition())
		}
	}
}

// EraseInDisplay implements ED: how 0 clears rows after the cursor plus
// EraseInLine(0) at the cursor row; how 1 clears rows before the cursor
// plus EraseInLine(1) at the cursor row; how 2 clears every row. Other
// values are a no-op.
func (s *Screen) EraseInDisplay(how int, private bool) {
	run := func(how int, private bool) {
		switch how {
		case 0:
			for y := s.cursor.Y + 1; y < s.lines; y++ {
				s.clearRowPreserving(y, private)
			}
			s.EraseInLine(0, private)
		case 1:
			for y := 0; y < s.cursor.Y; y++ {
				s.clearRowPreserving(y, private)
			}
			s.EraseInLine(1, private)
		case 2:
			for y := 0; y < s.lines; y++ {
				s.clearRowPreserving(y, private)
			}
		default:
			return
		}
		s.markDirty()
	}
	if s.middleware.EraseInDisplay != nil {
		s.middleware.EraseInDisplay(how, private, run)
		return
	}
	run(how, private)
}

func (s *Screen) clearRowPreserving(y int, preserveAttrs bool) {
	if preserveAttrs {
		s.eraseRange(y, 0, s.columns, true)
		if row := s.active.Row(y); row != nil {
			row.Continued = false
		}
		return
	}
	s.active.ClearLine(y)
}

// AlignmentDisplay implements DECALN: fills every cell of the active
// buffer with 'E', resets the scrolling margins to the full screen
// (lines-1, not the columns-1 value a source typo might suggest), and
// homes the cursor.
func (s *Screen) AlignmentDisplay() {
	run := func() {
		s.active.FillWithE()
		s.marginTop = 0
		s.marginBottom = s.lines - 1
		s.cursor.X = 0
		s.cursor.Y = 0
		s.markDirty()
		s.markCursorChanged()
	}
	if s.middleware.AlignmentDisplay != nil {
		s.middleware.AlignmentDisplay(run)
		return
	}
	run()
}
