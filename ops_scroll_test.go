package vtscreen

import "testing"

func TestIndexMovesCursorWhenNotAtBottomMargin(t *testing.T) {
	s := New(4, 5)
	fillRow(s, 0, "A")
	s.CursorPosition(1, 1)

	s.Index()

	_, y := s.CursorPos()
	if y != 1 {
		t.Errorf("expected cursor to move down to row 1, got %d", y)
	}
	if lineText(t, s, 0) != "A" {
		t.Error("expected row 0 untouched when not scrolling")
	}
}

func TestIndexScrollsAtBottomMargin(t *testing.T) {
	s := New(3, 5)
	fillRow(s, 0, "A")
	fillRow(s, 1, "B")
	fillRow(s, 2, "C")
	s.CursorPosition(3, 1) // bottom row

	s.Index()

	if lineText(t, s, 0) != "B" || lineText(t, s, 1) != "C" || lineText(t, s, 2) != "" {
		t.Errorf("expected rows shifted up with a blank row appended, got %q %q %q",
			lineText(t, s, 0), lineText(t, s, 1), lineText(t, s, 2))
	}
	_, y := s.CursorPos()
	if y != 2 {
		t.Error("expected cursor to remain on the bottom row")
	}
}

func TestIndexWithCustomMarginNeverPushesHistory(t *testing.T) {
	s := New(4, 5, WithHistoryCapacity(5))
	s.SetMargins(1, 3) // bottom margin at row 2, not the last row

	for i := 0; i < 3; i++ {
		s.CursorPosition(3, 1)
		s.Index()
	}

	if s.HistoryLen() != 0 {
		t.Errorf("expected no scrollback growth with a custom bottom margin, got %d", s.HistoryLen())
	}
}

func TestReverseIndexMovesCursorOrScrollsDown(t *testing.T) {
	s := New(3, 5)
	fillRow(s, 0, "A")
	fillRow(s, 1, "B")
	s.CursorPosition(2, 1)

	s.ReverseIndex()
	_, y := s.CursorPos()
	if y != 0 {
		t.Errorf("expected cursor to move up to row 0, got %d", y)
	}

	s.ReverseIndex() // now at the top margin: should scroll down instead
	if lineText(t, s, 1) != "A" {
		t.Errorf("expected row A shifted down to row 1, got %q", lineText(t, s, 1))
	}
	if lineText(t, s, 0) != "" {
		t.Error("expected a blank row scrolled in at the top")
	}
}

func TestScrollIgnoresCursorPosition(t *testing.T) {
	s := New(3, 5)
	fillRow(s, 0, "A")
	fillRow(s, 1, "B")
	fillRow(s, 2, "C")
	s.CursorPosition(1, 1) // top row, not the bottom margin

	s.Scroll(2)

	if lineText(t, s, 0) != "C" {
		t.Errorf("expected 2 unconditional scroll-ups, got %q", lineText(t, s, 0))
	}
}

func TestScrollClampsToScreenHeight(t *testing.T) {
	s := New(2, 5)
	fillRow(s, 0, "A")
	fillRow(s, 1, "B")

	s.Scroll(100) // must not loop 100 times or panic

	if lineText(t, s, 0) != "" || lineText(t, s, 1) != "" {
		t.Error("expected the screen fully scrolled blank")
	}
}

func TestLineFeedWithLNMAlsoCarriageReturns(t *testing.T) {
	s := New(3, 5)
	s.SetMode(ModeLNM)
	s.CursorPosition(1, 3)

	s.LineFeed()

	x, y := s.CursorPos()
	if x != 0 || y != 1 {
		t.Errorf("expected (0,1) with LNM set, got (%d,%d)", x, y)
	}
}

func TestLineFeedWithoutLNMKeepsColumn(t *testing.T) {
	s := New(3, 5)
	s.ResetMode(ModeLNM)
	s.CursorPosition(1, 3)

	s.LineFeed()

	x, y := s.CursorPos()
	if x != 2 || y != 1 {
		t.Errorf("expected (2,1) without LNM, got (%d,%d)", x, y)
	}
}
