package vtscreen

// LineBuf is the lines x columns grid backing one screen buffer (main or
// alternate). Logical row 0 is the top of the visible screen. Rotation
// operations move Line values, which are cheap (a slice header and a
// bool) rather than copying cell arrays.
type LineBuf struct {
	lines, columns int
	rows           []Line
	tabStops       []bool
}

// newLineBuf allocates a blank lines x columns grid with tab stops preset
// every 8 columns starting at column 8.
func newLineBuf(lines, columns int) *LineBuf {
	lb := &LineBuf{
		lines:    lines,
		columns:  columns,
		rows:     make([]Line, lines),
		tabStops: make([]bool, columns),
	}
	for i := range lb.rows {
		lb.rows[i] = newLine(columns)
	}
	lb.primeTabStops()
	return lb
}

func (lb *LineBuf) primeTabStops() {
	for i := range lb.tabStops {
		lb.tabStops[i] = false
	}
	for i := 8; i < lb.columns; i += 8 {
		lb.tabStops[i] = true
	}
}

// Lines reports the row count.
func (lb *LineBuf) Lines() int { return lb.lines }

// Columns reports the column count.
func (lb *LineBuf) Columns() int { return lb.columns }

// Row returns a pointer to the logical row y, or nil if out of range.
func (lb *LineBuf) Row(y int) *Line {
	if y < 0 || y >= lb.lines {
		return nil
	}
	return &lb.rows[y]
}

// Cell returns a pointer to the cell at (x, y), or nil if out of range.
func (lb *LineBuf) Cell(x, y int) *Cell {
	row := lb.Row(y)
	if row == nil || x < 0 || x >= len(row.Cells) {
		return nil
	}
	return &row.Cells[x]
}

// ClearLine resets row y to blank cells and clears its continuation flag.
func (lb *LineBuf) ClearLine(y int) {
	row := lb.Row(y)
	if row == nil {
		return
	}
	row.clear()
}

// ClearLineRange resets cells [from,to) of row y using template for the
// replacement blanks, leaving the continuation flag untouched.
func (lb *LineBuf) ClearLineRange(y, from, to int, template Cell) {
	row := lb.Row(y)
	if row == nil {
		return
	}
	row.clearRange(from, to, template)
}

// ClearAll resets every row to blank.
func (lb *LineBuf) ClearAll() {
	for i := range lb.rows {
		lb.rows[i].clear()
	}
}

// FillWithE overwrites every cell in the buffer with 'E' and default
// rendition, clearing continuation flags. Used by alignment_display.
func (lb *LineBuf) FillWithE() {
	for i := range lb.rows {
		row := &lb.rows[i]
		row.Continued = false
		for j := range row.Cells {
			row.Cells[j] = Cell{Codepoint: 'E', Width: WidthNormal}
		}
	}
}

// Index rotates rows [top,bottom] up by one: row top+1 becomes top, and so
// on; a freshly cleared line is placed at bottom. The displaced top row is
// returned so the caller can decide whether to append it to history.
func (lb *LineBuf) Index(top, bottom int) Line {
	top, bottom = lb.clampRegion(top, bottom)
	evicted := lb.rows[top]
	copy(lb.rows[top:bottom], lb.rows[top+1:bottom+1])
	lb.rows[bottom] = newLine(lb.columns)
	return evicted
}

// ReverseIndex rotates rows [top,bottom] down by one: row bottom-1 becomes
// bottom, and so on; a freshly cleared line is placed at top.
func (lb *LineBuf) ReverseIndex(top, bottom int) {
	top, bottom = lb.clampRegion(top, bottom)
	copy(lb.rows[top+1:bottom+1], lb.rows[top:bottom])
	lb.rows[top] = newLine(lb.columns)
}

// InsertLines shifts rows [y, bottom-n] down by n and fills rows
// [y, y+n-1] blank, with n clamped to bottom-y+1.
func (lb *LineBuf) InsertLines(n, y, bottom int) {
	if y > bottom {
		return
	}
	max := bottom - y + 1
	if n > max {
		n = max
	}
	if n <= 0 {
		return
	}
	copy(lb.rows[y+n:bottom+1], lb.rows[y:bottom+1-n])
	for i := y; i < y+n; i++ {
		lb.rows[i] = newLine(lb.columns)
	}
}

// DeleteLines shifts rows [y+n, bottom] up and fills the last n rows
// blank, with n clamped to bottom-y+1.
func (lb *LineBuf) DeleteLines(n, y, bottom int) {
	if y > bottom {
		return
	}
	max := bottom - y + 1
	if n > max {
		n = max
	}
	if n <= 0 {
		return
	}
	copy(lb.rows[y:bottom+1-n], lb.rows[y+n:bottom+1])
	for i := bottom - n + 1; i <= bottom; i++ {
		lb.rows[i] = newLine(lb.columns)
	}
}

func (lb *LineBuf) clampRegion(top, bottom int) (int, int) {
	if top < 0 {
		top = 0
	}
	if bottom >= lb.lines {
		bottom = lb.lines - 1
	}
	if top > bottom {
		top = bottom
	}
	return top, bottom
}

// SetTabStop marks column x as a tab stop.
func (lb *LineBuf) SetTabStop(x int) {
	if x >= 0 && x < len(lb.tabStops) {
		lb.tabStops[x] = true
	}
}

// ClearTabStop removes the tab stop at column x.
func (lb *LineBuf) ClearTabStop(x int) {
	if x >= 0 && x < len(lb.tabStops) {
		lb.tabStops[x] = false
	}
}

// ClearAllTabStops removes every tab stop.
func (lb *LineBuf) ClearAllTabStops() {
	for i := range lb.tabStops {
		lb.tabStops[i] = false
	}
}

// NextTabStop returns the smallest column i > x with a tab stop set, or
// columns-1 if none exists.
func (lb *LineBuf) NextTabStop(x int) int {
	for i := x + 1; i < len(lb.tabStops); i++ {
		if lb.tabStops[i] {
			return i
		}
	}
	return lb.columns - 1
}

// PrevTabStop returns the largest column j < x with a tab stop set, or 0
// if none exists.
func (lb *LineBuf) PrevTabStop(x int) int {
	for i := x - 1; i >= 0; i-- {
		if lb.tabStops[i] {
			return i
		}
	}
	return 0
}

// Rewrap reflows this buffer's content into a new grid of newColumns
// columns (keeping the same row count), joining soft-wrapped runs via the
// Continued flag and rebreaking them at the new width. Lines displaced off
// the top are pushed into history if non-nil. cursorY is the cursor's
// current logical row; the returned row tracks where that content ended
// up.
func (lb *LineBuf) Rewrap(newColumns int, cursorY int, history *HistoryBuf) (*LineBuf, int) {
	if newColumns == lb.columns {
		return lb, cursorY
	}

	runs := lb.logicalRuns()

	newLines := make([]Line, 0, lb.lines)
	cursorNewRow := 0
	rowCursor := 0
	for _, run := range runs {
		cellsBeforeCursor, inThisRun := run.cellOffsetFor(cursorY)
		wrapped := wrapCells(run.flatten(), newColumns)
		if inThisRun {
			cursorNewRow = rowCursor + cellsBeforeCursor/maxInt(newColumns, 1)
		}
		newLines = append(newLines, wrapped...)
		rowCursor += len(wrapped)
	}

	for len(newLines) > lb.lines {
		evicted := newLines[0]
		newLines = newLines[1:]
		cursorNewRow--
		if history != nil {
			history.Push(evicted.resize(newColumns))
		}
	}
	for len(newLines) < lb.lines {
		newLines = append(newLines, newLine(newColumns))
	}

	if cursorNewRow < 0 {
		cursorNewRow = 0
	}
	if cursorNewRow >= lb.lines {
		cursorNewRow = lb.lines - 1
	}

	out := &LineBuf{
		lines:    lb.lines,
		columns:  newColumns,
		rows:     newLines,
		tabStops: make([]bool, newColumns),
	}
	out.primeTabStops()
	return out, cursorNewRow
}

// cellOffsetFor reports how many content cells precede cursorY within this
// run (only the rows above cursorY are counted, none of the cursor's own
// row, which keeps the cursor pinned to the start of its row after rewrap)
// and whether cursorY falls inside the run at all.
func (r logicalRun) cellOffsetFor(cursorY int) (int, bool) {
	if cursorY < r.startRow || cursorY > r.startRow+len(r.lines)-1 {
		return 0, false
	}
	offset := 0
	for i := 0; i < cursorY-r.startRow; i++ {
		offset += countContentCells(r.lines[i])
	}
	return offset, true
}

type logicalRun struct {
	startRow int
	lines    []Line
}

func (r logicalRun) flatten() []Cell {
	cells := make([]Cell, 0, len(r.lines)*8)
	for _, l := range r.lines {
		cells = append(cells, trimTrailingBlank(l.Cells)...)
	}
	return cells
}

// logicalRuns groups consecutive rows joined by Continued flags into
// single logical runs for rewrap purposes.
func (lb *LineBuf) logicalRuns() []logicalRun {
	var runs []logicalRun
	i := 0
	for i < len(lb.rows) {
		start := i
		var group []Line
		for {
			group = append(group, lb.rows[i])
			continued := lb.rows[i].Continued
			i++
			if !continued || i >= len(lb.rows) {
				break
			}
		}
		runs = append(runs, logicalRun{startRow: start, lines: group})
	}
	return runs
}

// trimTrailingBlank drops trailing default blank cells from a row so
// rewrap doesn't propagate padding into the reflowed text.
func trimTrailingBlank(cells []Cell) []Cell {
	end := len(cells)
	for end > 0 && cells[end-1].IsBlank() && !cells[end-1].IsWide() {
		end--
	}
	out := make([]Cell, end)
	copy(out, cells[:end])
	return out
}

// wrapCells rebreaks a flat run of cells into lines of width columns,
// respecting wide-glyph placement (a wide cell never occupies the last
// column) and setting Continued on every produced line but the last.
func wrapCells(cells []Cell, columns int) []Line {
	if columns <= 0 {
		columns = 1
	}
	if len(cells) == 0 {
		return []Line{newLine(columns)}
	}
	var lines []Line
	cur := newLine(columns)
	col := 0
	for i := 0; i < len(cells); i++ {
		c := cells[i]
		w := 1
		if c.IsWide() {
			w = 2
		} else if c.IsContinuation() {
			continue
		}
		if col+w > columns {
			cur.Continued = true
			lines = append(lines, cur)
			cur = newLine(columns)
			col = 0
		}
		cur.Cells[col] = c
		col++
		if w == 2 {
			cur.Cells[col] = Cell{Width: WidthContinuation}
			col++
		}
	}
	lines = append(lines, cur)
	return lines
}

func countContentCells(l Line) int {
	return len(trimTrailingBlank(l.Cells))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
