package vtscreen

import "testing"

func TestCursorForwardBackwardSaturate(t *testing.T) {
	s := New(4, 5)

	s.CursorForward(100)
	x, _ := s.CursorPos()
	if x != 4 {
		t.Errorf("expected forward to saturate at column 4, got %d", x)
	}

	s.CursorBackward(100)
	x, _ = s.CursorPos()
	if x != 0 {
		t.Errorf("expected backward to saturate at column 0, got %d", x)
	}
}

func TestCursorUpDownWithCarriageReturn(t *testing.T) {
	s := New(6, 5)
	s.CursorPosition(4, 3)

	s.CursorUp(2, true)
	x, y := s.CursorPos()
	if x != 0 || y != 1 {
		t.Errorf("expected (0,1), got (%d,%d)", x, y)
	}

	s.CursorPosition(4, 3)
	s.CursorDown(10, true)
	x, y = s.CursorPos()
	if x != 0 || y != 5 {
		t.Errorf("expected down to saturate at row 5 with cr, got (%d,%d)", x, y)
	}
}

func TestCursorColumnAndRowAbsolute(t *testing.T) {
	s := New(6, 10)

	s.CursorColumn(5)
	x, _ := s.CursorPos()
	if x != 5 {
		t.Errorf("expected column 5, got %d", x)
	}

	s.CursorRow(3)
	_, y := s.CursorPos()
	if y != 3 {
		t.Errorf("expected row 3, got %d", y)
	}
}

func TestCarriageReturnResetsColumnOnly(t *testing.T) {
	s := New(4, 5)
	s.CursorPosition(2, 4)

	s.CarriageReturn()

	x, y := s.CursorPos()
	if x != 0 || y != 1 {
		t.Errorf("expected (0,1), got (%d,%d)", x, y)
	}
}

func TestTabAdvancesToNextStop(t *testing.T) {
	s := New(1, 40)

	s.Tab()
	x, _ := s.CursorPos()
	if x != 8 {
		t.Errorf("expected first tab stop at column 8, got %d", x)
	}

	s.Tab()
	x, _ = s.CursorPos()
	if x != 16 {
		t.Errorf("expected second tab stop at column 16, got %d", x)
	}
}

func TestBacktabMovesBackNStops(t *testing.T) {
	s := New(1, 40)
	s.CursorColumn(20)

	s.Backtab(2)

	x, _ := s.CursorPos()
	if x != 0 {
		t.Errorf("expected backtab to reach column 0, got %d", x)
	}
}

func TestSetAndClearTabStop(t *testing.T) {
	s := New(1, 40)
	s.CursorColumn(5)
	s.SetTabStop()
	s.CursorColumn(0)

	s.Tab()

	x, _ := s.CursorPos()
	if x != 5 {
		t.Errorf("expected custom tab stop at column 5, got %d", x)
	}

	s.ClearTabStop(0)
	s.CursorColumn(0)
	s.Tab()
	x, _ = s.CursorPos()
	if x != 8 {
		t.Errorf("expected fallback to the default stop at column 8 after clearing, got %d", x)
	}
}

func TestClearAllTabStops(t *testing.T) {
	s := New(1, 40)
	s.ClearTabStop(3)

	s.CursorColumn(0)
	s.Tab()

	x, _ := s.CursorPos()
	if x != 39 {
		t.Errorf("expected tab with no stops left to reach the last column, got %d", x)
	}
}
