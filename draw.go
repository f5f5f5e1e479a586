package vtscreen

// Draw accepts one codepoint, updates the active buffer, and advances the
// cursor, implementing the full draw contract: charset translation, width
// computation, wrap-or-stick-to-margin, insert-mode shifting, and
// combining-mark attachment.
func (s *Screen) Draw(r rune) {
	run := func(r rune) { s.draw(r) }
	if s.middleware.Draw != nil {
		s.middleware.Draw(r, run)
		return
	}
	run(r)
}

func (s *Screen) draw(r rune) {
	if isIgnoredControl(r) {
		return
	}

	if r < 256 {
		r = s.charset.translate(r)
	}

	w := safeWcwidth(r)
	if w < 0 {
		w = 1
	}

	startX, startY := s.cursor.X, s.cursor.Y

	if w > 0 && s.columns-s.cursor.X < w {
		if s.modes.DECAWM {
			oldY := s.cursor.Y
			s.carriageReturn()
			s.linefeed()
			// Continued goes on the row the text wrapped from; when the line
			// feed scrolled the region, that row moved up by one.
			wrappedY := oldY
			if oldY == s.marginBottom {
				wrappedY--
			}
			if wrappedY != s.cursor.Y {
				if row := s.active.Row(wrappedY); row != nil {
					row.Continued = true
				}
			}
		} else {
			s.cursor.X = s.columns - w
		}
	}

	if w > 0 {
		if s.modes.IRM {
			s.shiftRowRight(s.cursor.Y, s.cursor.X, w)
		}
		row := s.active.Row(s.cursor.Y)
		if row != nil {
			cell := &row.Cells[s.cursor.X]
			*cell = Cell{
				Codepoint:    r,
				Width:        WidthNormal,
				Fg:           s.cursor.Fg,
				Bg:           s.cursor.Bg,
				DecorationFg: s.cursor.DecorationFg,
				Bold:         s.cursor.Bold,
				Italic:       s.cursor.Italic,
				Reverse:      s.cursor.Reverse,
				Strike:       s.cursor.Strike,
				Decoration:   s.cursor.Decoration,
			}
			if w == 2 {
				cell.Width = WidthWide
				if s.cursor.X+1 < s.columns {
					row.Cells[s.cursor.X+1] = Cell{Width: WidthContinuation}
				}
			}
		}
		s.cursor.X += w
		s.markDirty()
	} else if isCombiningMark(r) {
		s.attachCombining(r)
		s.markDirty()
	}

	if s.cursor.X != startX || s.cursor.Y != startY {
		s.markCursorChanged()
	}
}

// shiftRowRight moves cells [x, columns-w) to [x+w, columns), discarding
// cells that fall off the right edge, to make room for an insert-mode
// write.
func (s *Screen) shiftRowRight(y, x, w int) {
	row := s.active.Row(y)
	if row == nil {
		return
	}
	for i := s.columns - 1; i >= x+w; i-- {
		row.Cells[i] = row.Cells[i-w]
	}
	for i := x; i < x+w && i < s.columns; i++ {
		row.Cells[i].Reset()
	}
}

// attachCombining joins a zero-width combining mark to the preceding
// cell: the previous column, or the last column of the previous row if
// the cursor is at column 0.
func (s *Screen) attachCombining(r rune) {
	x, y := s.cursor.X-1, s.cursor.Y
	if x < 0 {
		y--
		x = s.columns - 1
	}
	if y < 0 {
		return
	}
	cell := s.active.Cell(x, y)
	if cell == nil {
		return
	}
	cell.AddCombining(r)
}

// isIgnoredControl reports whether r is a non-printable control character
// that the draw algorithm should silently skip because the parser
// collaborator dispatches it through a dedicated method instead (LineFeed,
// CarriageReturn, Tab, Backspace, Bell, ...).
func isIgnoredControl(r rune) bool {
	switch {
	case r >= 0x00 && r <= 0x1f:
		return true
	case r == 0x7f:
		return true
	case r >= 0x80 && r <= 0x9f:
		return true
	default:
		return false
	}
}

// isCombiningMark reports whether r is a zero-width combining character
// that should attach to the preceding cell rather than advance the
// cursor. safe_wcwidth already reports 0 for these ranges; this refines
// "zero width" to "combining" so other zero-width runes (e.g. variation
// selectors folded elsewhere) don't silently vanish without a documented
// reason, matching the spec's explicit combining-mark rule.
func isCombiningMark(r rune) bool {
	switch {
	case r >= 0x0300 && r <= 0x036f: // combining diacritical marks
		return true
	case r >= 0x1ab0 && r <= 0x1aff: // combining diacritical marks extended
		return true
	case r >= 0x1dc0 && r <= 0x1dff: // combining diacritical marks supplement
		return true
	case r >= 0x20d0 && r <= 0x20ff: // combining diacritical marks for symbols
		return true
	case r >= 0xfe20 && r <= 0xfe2f: // combining half marks
		return true
	default:
		return false
	}
}
