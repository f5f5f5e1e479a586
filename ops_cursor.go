package vtscreen

import "fmt"

// ensureBounds clamps the cursor into the addressable region: x always to
// [0, columns-1]; y to [marginTop, marginBottom] when forceMargins or
// DECOM is set, otherwise to [0, lines-1].
func (s *Screen) ensureBounds(forceMargins bool) {
	if s.cursor.X < 0 {
		s.cursor.X = 0
	}
	if s.cursor.X > s.columns-1 {
		s.cursor.X = s.columns - 1
	}
	top, bottom := 0, s.lines-1
	if forceMargins || s.modes.DECOM {
		top, bottom = s.marginTop, s.marginBottom
	}
	if s.cursor.Y < top {
		s.cursor.Y = top
	}
	if s.cursor.Y > bottom {
		s.cursor.Y = bottom
	}
}

// CursorPosition implements CUP/HVP (1-based line/col). When DECOM is set,
// line is offset by marginTop and clamped into the margin region.
func (s *Screen) CursorPosition(line, col int) {
	run := func(line, col int) {
		y := line - 1
		if s.modes.DECOM {
			y = s.marginTop + (line - 1)
		}
		s.cursor.Y = y
		s.cursor.X = col - 1
		s.ensureBounds(false)
		s.markCursorChanged()
	}
	if s.middleware.CursorPosition != nil {
		s.middleware.CursorPosition(line, col, run)
		return
	}
	run(line, col)
}

// CursorForward and CursorBackward move the cursor n columns, saturating
// at the right/left edge.
func (s *Screen) CursorForward(n int) {
	run := func(n int) {
		s.cursor.X += n
		if s.cursor.X > s.columns-1 {
			s.cursor.X = s.columns - 1
		}
		s.markCursorChanged()
	}
	if s.middleware.CursorForward != nil {
		s.middleware.CursorForward(n, run)
		return
	}
	run(n)
}

func (s *Screen) CursorBackward(n int) {
	run := func(n int) {
		s.cursor.X -= n
		if s.cursor.X < 0 {
			s.cursor.X = 0
		}
		s.markCursorChanged()
	}
	if s.middleware.CursorBackward != nil {
		s.middleware.CursorBackward(n, run)
		return
	}
	run(n)
}

// CursorUp and CursorDown move the cursor n rows, saturating at 0/lines-1
// and then re-clamping to the scrolling margins if DECOM is set; cr resets
// x to 0 when true.
func (s *Screen) CursorUp(n int, cr bool) {
	run := func(n int, cr bool) {
		s.cursor.Y -= n
		if s.cursor.Y < 0 {
			s.cursor.Y = 0
		}
		if cr {
			s.cursor.X = 0
		}
		s.ensureBounds(false)
		s.markCursorChanged()
	}
	if s.middleware.CursorUp != nil {
		s.middleware.CursorUp(n, cr, run)
		return
	}
	run(n, cr)
}

func (s *Screen) CursorDown(n int, cr bool) {
	run := func(n int, cr bool) {
		s.cursor.Y += n
		if s.cursor.Y > s.lines-1 {
			s.cursor.Y = s.lines - 1
		}
		if cr {
			s.cursor.X = 0
		}
		s.ensureBounds(false)
		s.markCursorChanged()
	}
	if s.middleware.CursorDown != nil {
		s.middleware.CursorDown(n, cr, run)
		return
	}
	run(n, cr)
}

// CursorColumn implements CHA/HPA (horizontal position absolute); col is
// 0-based.
func (s *Screen) CursorColumn(col int) {
	s.cursor.X = col
	s.ensureBounds(false)
	s.markCursorChanged()
}

// CursorRow implements VPA (vertical position absolute); row is 0-based.
// Unlike CursorPosition's 1-based line argument, row is not re-homed by
// DECOM; ensureBounds still clamps the result into the margin region when
// DECOM is set.
func (s *Screen) CursorRow(row int) {
	s.cursor.Y = row
	s.ensureBounds(false)
	s.markCursorChanged()
}

// CarriageReturn resets x to 0.
func (s *Screen) CarriageReturn() {
	run := func() { s.carriageReturn() }
	if s.middleware.CarriageReturn != nil {
		s.middleware.CarriageReturn(run)
		return
	}
	run()
}

func (s *Screen) carriageReturn() {
	if s.cursor.X != 0 {
		s.markCursorChanged()
	}
	s.cursor.X = 0
}

// Tab advances the cursor to the next tab stop, or columns-1 if none
// remains.
func (s *Screen) Tab() {
	run := func() {
		s.cursor.X = s.active.NextTabStop(s.cursor.X)
		s.markCursorChanged()
	}
	if s.middleware.Tab != nil {
		s.middleware.Tab(run)
		return
	}
	run()
}

// Backtab moves the cursor back n tab stops, clamping at column 0.
func (s *Screen) Backtab(n int) {
	run := func(n int) {
		for i := 0; i < n; i++ {
			s.cursor.X = s.active.PrevTabStop(s.cursor.X)
		}
		s.markCursorChanged()
	}
	if s.middleware.Backtab != nil {
		s.middleware.Backtab(n, run)
		return
	}
	run(n)
}

// SetTabStop marks the cursor's current column as a tab stop.
func (s *Screen) SetTabStop() {
	run := func() { s.active.SetTabStop(s.cursor.X) }
	if s.middleware.SetTabStop != nil {
		s.middleware.SetTabStop(run)
		return
	}
	run()
}

// ClearTabStop implements TBC: how=0 clears the stop at the cursor, 3
// clears all stops, 2 is a no-op, anything else is an unsupported-control
// diagnostic.
func (s *Screen) ClearTabStop(how int) {
	run := func(how int) {
		switch how {
		case 0:
			s.active.ClearTabStop(s.cursor.X)
		case 3:
			s.active.ClearAllTabStops()
		case 2:
			// no-op per spec
		default:
			s.sink.Diagnostic(fmt.Sprintf("unsupported clear-tabstop mode %d", how))
		}
	}
	if s.middleware.ClearTabStop != nil {
		s.middleware.ClearTabStop(how, run)
		return
	}
	run(how)
}
