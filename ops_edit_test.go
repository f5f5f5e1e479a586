package vtscreen

import "testing"

func fillRow(s *Screen, y int, text string) {
	s.CursorPosition(y+1, 1)
	for _, r := range text {
		s.Draw(r)
	}
}

func TestInsertLinesWithinMargins(t *testing.T) {
	s := New(5, 4)
	for y := 0; y < 5; y++ {
		fillRow(s, y, string(rune('0'+y)))
	}
	s.CursorPosition(2, 1) // row index 1

	s.InsertLines(2)

	if lineText(t, s, 1) != "" || lineText(t, s, 2) != "" {
		t.Error("expected inserted rows blank")
	}
	if lineText(t, s, 3) != "1" {
		t.Errorf("expected row 3 to hold old row 1, got %q", lineText(t, s, 3))
	}
	x, _ := s.CursorPos()
	if x != 0 {
		t.Error("expected InsertLines to carriage-return the cursor")
	}
}

func TestInsertLinesOutsideMarginsIsNoop(t *testing.T) {
	s := New(5, 4)
	s.SetMargins(2, 4) // rows 1..3, 0-based
	fillRow(s, 0, "X")
	s.CursorPosition(1, 1) // row 0, outside the margin region

	s.InsertLines(1)

	if lineText(t, s, 0) != "X" {
		t.Error("expected InsertLines outside the scrolling margins to be a no-op")
	}
}

func TestDeleteLinesWithinMargins(t *testing.T) {
	s := New(5, 4)
	for y := 0; y < 5; y++ {
		fillRow(s, y, string(rune('0'+y)))
	}
	s.CursorPosition(2, 1) // row index 1

	s.DeleteLines(2)

	if lineText(t, s, 1) != "3" {
		t.Errorf("expected row 1 to hold old row 3, got %q", lineText(t, s, 1))
	}
	if lineText(t, s, 3) != "" || lineText(t, s, 4) != "" {
		t.Error("expected exposed bottom rows blank")
	}
}

func TestInsertThenDeleteCharactersIsIdentity(t *testing.T) {
	s := New(2, 10)
	fillRow(s, 0, "AB")
	s.CursorPosition(1, 1)

	s.InsertCharacters(3)
	s.DeleteCharacters(3)

	if got := lineText(t, s, 0); got != "AB" {
		t.Errorf("expected insert+delete at the same x to be the identity, got %q", got)
	}
}

func TestEraseCharactersDoesNotShift(t *testing.T) {
	s := New(1, 5)
	fillRow(s, 0, "ABCDE")
	s.CursorPosition(1, 2) // x=1

	s.EraseCharacters(2)

	if got := lineText(t, s, 0); got != "A  DE" {
		t.Errorf("expected %q (B,C erased in place, no shift), got %q", "A  DE", got)
	}
	l, _ := s.Line(0)
	if l.Cells[3].Codepoint != 'D' || l.Cells[4].Codepoint != 'E' {
		t.Error("expected cells beyond the erased range untouched in place")
	}
}

func TestEraseInLineModes(t *testing.T) {
	s := New(1, 5)
	fillRow(s, 0, "ABCDE")
	s.CursorPosition(1, 3) // x=2

	s.EraseInLine(0, false) // clear [x, columns)
	if got := lineText(t, s, 0); got != "AB" {
		t.Errorf("EL 0: expected %q, got %q", "AB", got)
	}

	s2 := New(1, 5)
	fillRow(s2, 0, "ABCDE")
	s2.CursorPosition(1, 3)
	s2.EraseInLine(1, false) // clear [0, x]
	l, _ := s2.Line(0)
	if l.Cells[0].Codepoint != ' ' || l.Cells[1].Codepoint != ' ' || l.Cells[2].Codepoint != ' ' {
		t.Error("EL 1: expected cells [0,x] cleared")
	}
	if l.Cells[3].Codepoint != 'D' || l.Cells[4].Codepoint != 'E' {
		t.Error("EL 1: expected cells after x untouched")
	}

	s3 := New(1, 5)
	fillRow(s3, 0, "ABCDE")
	s3.EraseInLine(2, false)
	if got := lineText(t, s3, 0); got != "" {
		t.Errorf("EL 2: expected line cleared, got %q", got)
	}
}

func TestEraseInLinePrivatePreservesAttributes(t *testing.T) {
	s := New(1, 3)
	s.ApplyRendition(RenditionOp{Kind: RenditionBold, On: true})
	fillRow(s, 0, "ABC")

	s.CursorPosition(1, 1)
	s.EraseInLine(2, true)

	l, _ := s.Line(0)
	if !l.Cells[0].Bold {
		t.Error("expected private erase to preserve the existing bold attribute")
	}
	if l.Cells[0].Codepoint != ' ' {
		t.Error("expected private erase to still clear text")
	}
}

func TestEraseInDisplay(t *testing.T) {
	s := New(3, 3)
	fillRow(s, 0, "AAA")
	fillRow(s, 1, "BBB")
	fillRow(s, 2, "CCC")
	s.CursorPosition(2, 2) // row 1, x=1

	s.EraseInDisplay(0, false) // clear from cursor to end of screen

	if lineText(t, s, 0) != "AAA" {
		t.Error("expected rows before the cursor untouched by ED 0")
	}
	if lineText(t, s, 1) != "B" {
		t.Errorf("expected cursor row cleared from x, got %q", lineText(t, s, 1))
	}
	if lineText(t, s, 2) != "" {
		t.Error("expected rows after the cursor cleared by ED 0")
	}
}

func TestAlignmentDisplayFillsWithE(t *testing.T) {
	s := New(2, 3)
	s.SetMargins(1, 2)
	s.CursorPosition(2, 2)

	s.AlignmentDisplay()

	for y := 0; y < 2; y++ {
		l, _ := s.Line(y)
		for x, c := range l.Cells {
			if c.Codepoint != 'E' {
				t.Errorf("cell (%d,%d): expected 'E', got %q", x, y, c.Codepoint)
			}
		}
	}
	top, bottom := s.ScrollRegion()
	if top != 0 || bottom != 1 {
		t.Errorf("expected margins reset to full screen, got (%d,%d)", top, bottom)
	}
	x, y := s.CursorPos()
	if x != 0 || y != 0 {
		t.Errorf("expected cursor homed, got (%d,%d)", x, y)
	}
}
