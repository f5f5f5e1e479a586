package vtscreen

import "testing"

func TestRestoreCursorOnEmptyStackResetsToDefaults(t *testing.T) {
	s := New(6, 10)
	s.SetMode(ModeDECOM)
	s.SetMode(ModeDECSCNM)
	s.DesignateCharset(0, CharsetDECSpecialGraphics)
	s.CursorPosition(4, 4)

	s.RestoreCursor() // nothing was ever pushed

	x, y := s.CursorPos()
	if x != 0 || y != 0 {
		t.Errorf("expected cursor homed to (0,0), got (%d,%d)", x, y)
	}
	if s.Modes().DECSCNM {
		t.Error("expected DECSCNM reset")
	}
	if s.charset.G0 != CharsetASCII {
		t.Error("expected charset reset to defaults")
	}
}

func TestSaveRestoreCursorIsolatedPerBuffer(t *testing.T) {
	s := New(4, 10)
	s.CursorPosition(2, 2)
	s.SaveCursor()

	s.ToggleAltScreen(true)
	s.CursorPosition(3, 3)
	s.SaveCursor()
	s.CursorPosition(1, 1)
	s.RestoreCursor()
	x, y := s.CursorPos()
	if x != 2 || y != 2 {
		t.Errorf("expected alt-buffer savepoint restored to (2,2), got (%d,%d)", x, y)
	}

	s.ToggleAltScreen(false)
	s.CursorPosition(1, 1)
	s.RestoreCursor()
	x, y = s.CursorPos()
	if x != 1 || y != 1 {
		t.Errorf("expected main-buffer savepoint restored to (1,1), got (%d,%d)", x, y)
	}
}
