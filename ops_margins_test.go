package vtscreen

import "testing"

func TestSetMarginsBasic(t *testing.T) {
	s := New(10, 10)
	s.SetMargins(3, 7)

	top, bottom := s.ScrollRegion()
	if top != 2 || bottom != 6 {
		t.Errorf("expected 0-based (2,6), got (%d,%d)", top, bottom)
	}
	x, y := s.CursorPos()
	if x != 0 || y != 0 {
		t.Error("expected cursor homed after SetMargins")
	}
}

func TestSetMarginsZerosMeanFullEdges(t *testing.T) {
	s := New(10, 10)
	s.SetMargins(0, 0)

	top, bottom := s.ScrollRegion()
	if top != 0 || bottom != 9 {
		t.Errorf("expected full-screen region, got (%d,%d)", top, bottom)
	}
}

func TestSetMarginsRejectsDegenerateRegion(t *testing.T) {
	s := New(10, 10)
	s.SetMargins(3, 7)

	s.SetMargins(5, 5) // not bottom > top: must leave margins untouched

	top, bottom := s.ScrollRegion()
	if top != 2 || bottom != 6 {
		t.Errorf("expected margins unchanged at (2,6), got (%d,%d)", top, bottom)
	}
}

func TestSetMarginsHomesToMarginTopUnderDECOM(t *testing.T) {
	s := New(10, 10)
	s.SetMode(ModeDECOM)
	s.SetMargins(3, 7)

	x, y := s.CursorPos()
	if x != 0 || y != 2 {
		t.Errorf("expected cursor homed to (0,2), got (%d,%d)", x, y)
	}
}
