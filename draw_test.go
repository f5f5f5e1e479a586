package vtscreen

import "testing"

func lineText(t *testing.T, s *Screen, y int) string {
	t.Helper()
	l, err := s.Line(y)
	if err != nil {
		t.Fatalf("Line(%d): %v", y, err)
	}
	return l.text()
}

// Scenario 1 from spec §8: 4x4 screen, DECAWM on, write "ABCDE".
func TestDrawWrapAtMargin(t *testing.T) {
	s := New(4, 4)
	for _, r := range "ABCDE" {
		s.Draw(r)
	}

	if got := lineText(t, s, 0); got != "ABCD" {
		t.Errorf("row 0: expected %q, got %q", "ABCD", got)
	}
	row0, _ := s.Line(0)
	if !row0.Continued {
		t.Error("expected row 0 Continued=true after wrap")
	}
	if got := lineText(t, s, 1); got != "E" {
		t.Errorf("row 1: expected %q, got %q", "E", got)
	}
	row1, _ := s.Line(1)
	if row1.Continued {
		t.Error("expected row 1 Continued=false")
	}
	x, y := s.CursorPos()
	if x != 1 || y != 1 {
		t.Errorf("expected cursor at (1,1), got (%d,%d)", x, y)
	}
}

// Scenario 2 from spec §8: same but DECAWM off.
func TestDrawNoWrapWhenDECAWMOff(t *testing.T) {
	s := New(4, 4)
	s.ResetMode(ModeDECAWM)
	for _, r := range "ABCDE" {
		s.Draw(r)
	}

	if got := lineText(t, s, 0); got != "ABCE" {
		t.Errorf("expected %q, got %q", "ABCE", got)
	}
	x, _ := s.CursorPos()
	if x != 3 {
		t.Errorf("expected cursor.x == 3, got %d", x)
	}
}

// Scenario 6 from spec §8: SGR truecolor then draw 'A'.
func TestDrawAppliesTruecolorRendition(t *testing.T) {
	s := New(4, 4)
	s.ApplyRendition(RenditionOp{Kind: RenditionForeground, Color: RGBColor(10, 20, 30)})
	s.Draw('A')

	l, _ := s.Line(0)
	want := Color(uint32(10)<<24 | uint32(20)<<16 | uint32(30)<<8 | 2)
	if l.Cells[0].Fg != want {
		t.Errorf("expected fg %d, got %d", want, l.Cells[0].Fg)
	}
}

func TestDrawWideGlyphWritesContinuation(t *testing.T) {
	s := New(2, 10)
	s.Draw('界')

	l, _ := s.Line(0)
	if l.Cells[0].Codepoint != '界' || !l.Cells[0].IsWide() {
		t.Fatal("expected a wide leader at column 0")
	}
	if !l.Cells[1].IsContinuation() {
		t.Error("expected a continuation cell at column 1")
	}
	x, _ := s.CursorPos()
	if x != 2 {
		t.Errorf("expected cursor.x == 2, got %d", x)
	}
}

func TestDrawWideGlyphStickOrWrapBeforeLastColumn(t *testing.T) {
	s := New(2, 3)
	s.Draw('A')
	s.Draw('B')
	// cursor.x == 2, only 1 column left: a width-2 glyph must wrap first.
	s.Draw('界')

	row0, _ := s.Line(0)
	if row0.Cells[2].IsWide() {
		t.Error("expected the wide glyph to not land in the last column")
	}
	if !row0.Continued {
		t.Error("expected row 0 to have wrapped")
	}
	row1, _ := s.Line(1)
	if row1.Cells[0].Codepoint != '界' {
		t.Error("expected the wide glyph to land at the start of row 1")
	}
}

func TestDrawCombiningMarkAttaches(t *testing.T) {
	s := New(2, 10)
	s.Draw('e')
	s.Draw(0x0301) // combining acute accent

	l, _ := s.Line(0)
	marks := l.Cells[0].CombiningMarks()
	if len(marks) != 1 || marks[0] != 0x0301 {
		t.Errorf("expected the combining mark attached to 'e', got %v", marks)
	}
	x, _ := s.CursorPos()
	if x != 1 {
		t.Error("expected the combining mark to not advance the cursor")
	}
}

func TestDrawCombiningMarkAtColumnZeroAttachesToPreviousRow(t *testing.T) {
	s := New(3, 4)
	s.Draw('A')
	s.LineFeed()
	s.CarriageReturn()
	// cursor is now at (0,1) with nothing drawn on row 1 yet; attach to
	// the last column of row 0.
	s.Draw(0x0301)

	l, _ := s.Line(0)
	marks := l.Cells[3].CombiningMarks()
	if len(marks) != 1 || marks[0] != 0x0301 {
		t.Errorf("expected the mark attached to row 0's last column, got %v", marks)
	}
}

func TestDrawIRMShiftsRowRight(t *testing.T) {
	s := New(2, 5)
	for _, r := range "ABC" {
		s.Draw(r)
	}
	s.CursorPosition(1, 1)
	s.SetMode(ModeIRM)
	s.Draw('X')

	if got := lineText(t, s, 0); got != "XABC" {
		t.Errorf("expected %q, got %q", "XABC", got)
	}
}

func TestDrawIgnoresControlCharacters(t *testing.T) {
	s := New(2, 5)
	s.Draw(0x07) // BEL, handled elsewhere, must be a no-op in Draw
	x, y := s.CursorPos()
	if x != 0 || y != 0 {
		t.Error("expected an ignored control character to not move the cursor")
	}
}
