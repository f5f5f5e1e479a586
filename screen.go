package vtscreen

import (
	"errors"
	"fmt"
	"sync"

	"github.com/danielgatis/go-ansicode"
)

// ErrBoundsViolation is returned by public indexed accessors when the
// requested index falls outside the addressable range.
var ErrBoundsViolation = errors.New("vtscreen: bounds violation")

// ErrAllocationFailure is returned by Resize when the requested geometry
// cannot be allocated.
var ErrAllocationFailure = errors.New("vtscreen: allocation failure")

// Screen is the top-level aggregate: main and alternate LineBufs, the
// scrollback history (associated with main only), the cursor, active
// modes, per-buffer savepoint stacks, charset state, scrolling margins,
// dirty accounting and the outward notification sink. All mutating
// operations are data races with each other; callers must serialize their
// own access.
type Screen struct {
	mu sync.RWMutex

	lines, columns int

	main, alt *LineBuf
	active    *LineBuf
	onMain    bool

	history *HistoryBuf

	cursor Cursor
	modes  ModeSet

	mainSavepoints SavepointStack
	altSavepoints  SavepointStack

	charset CharsetState

	marginTop, marginBottom int

	isDirty               bool
	cursorChanged         bool
	historyLineAddedCount int

	title      string
	icon       string
	titleStack []string

	sink       Sink
	middleware Middleware

	decoder *ansicode.Decoder
}

// Option configures a Screen at construction time.
type Option func(*Screen)

// WithSink installs the outward-notification collaborator.
func WithSink(sink Sink) Option {
	return func(s *Screen) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithMiddleware merges wrapper functions into the Screen's Middleware.
func WithMiddleware(mw *Middleware) Option {
	return func(s *Screen) {
		s.middleware.Merge(mw)
	}
}

// WithHistoryCapacity overrides the scrollback ring's capacity (default 0,
// i.e. no scrollback retained).
func WithHistoryCapacity(capacity int) Option {
	return func(s *Screen) {
		s.history = NewHistoryBuf(capacity)
	}
}

// New constructs a Screen of the given size with default modes, an empty
// scrollback ring (unless WithHistoryCapacity overrides it) and a no-op
// sink (unless WithSink overrides it). Tab stops are preset every 8
// columns starting at column 8, per buffer.
func New(lines, columns int, opts ...Option) *Screen {
	s := &Screen{
		lines:         lines,
		columns:       columns,
		main:          newLineBuf(lines, columns),
		alt:           newLineBuf(lines, columns),
		onMain:        true,
		history:       NewHistoryBuf(0),
		cursor:        NewCursor(),
		modes:         NewModeSet(),
		charset:       NewCharsetState(),
		marginTop:     0,
		marginBottom:  lines - 1,
		sink:          NoopSink{},
	}
	s.active = s.main
	s.mainSavepoints.SetOverflowHandler(func() { s.sink.Diagnostic("savepoint stack overflow: oldest entry dropped") })
	s.altSavepoints.SetOverflowHandler(func() { s.sink.Diagnostic("savepoint stack overflow: oldest entry dropped") })
	for _, opt := range opts {
		opt(s)
	}
	s.decoder = ansicode.NewDecoder(screenHandler{s})
	return s
}

// The Screen's mutex is unexported. Write, Reset, Resize and ResetDirty
// take the write lock and the read accessors below take the read lock; the
// individual operation methods (Draw, CursorPosition, ...) do not lock.

// Write feeds raw PTY output through the escape-sequence decoder, which
// tokenises it into the calls implemented in handler.go.
func (s *Screen) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decoder.Write(data)
}

// WriteString is a convenience wrapper over Write.
func (s *Screen) WriteString(data string) (int, error) {
	return s.Write([]byte(data))
}

// Rows reports the screen's row count.
func (s *Screen) Rows() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lines
}

// Columns reports the screen's column count.
func (s *Screen) Columns() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.columns
}

// Line returns a copy of the visible row y of the active buffer.
func (s *Screen) Line(y int) (Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row := s.active.Row(y)
	if row == nil {
		return Line{}, fmt.Errorf("%w: row %d", ErrBoundsViolation, y)
	}
	return *row, nil
}

// HistoryLine returns a copy of history line i (0 = oldest retained).
func (s *Screen) HistoryLine(i int) (Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.history.Line(i)
	if !ok {
		return Line{}, fmt.Errorf("%w: history line %d", ErrBoundsViolation, i)
	}
	return l, nil
}

// HistoryLen reports the number of retained scrollback lines.
func (s *Screen) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Len()
}

// CursorPos returns the cursor's current (x, y).
func (s *Screen) CursorPos() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor.X, s.cursor.Y
}

// CursorState returns a copy of the full cursor (position + rendition +
// shape/blink).
func (s *Screen) CursorState() Cursor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor
}

// Modes returns a copy of the active ModeSet.
func (s *Screen) Modes() ModeSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modes
}

// IsAlternateScreen reports whether the alternate buffer is active.
func (s *Screen) IsAlternateScreen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.onMain
}

// ScrollRegion returns the current scrolling margins (0-based, inclusive).
func (s *Screen) ScrollRegion() (top, bottom int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.marginTop, s.marginBottom
}

// IsDirty, CursorChanged and HistoryLineAddedCount report the monotonic
// dirty-accounting fields; ResetDirty clears all three.
func (s *Screen) IsDirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isDirty
}

func (s *Screen) CursorChanged() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursorChanged
}

func (s *Screen) HistoryLineAddedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.historyLineAddedCount
}

func (s *Screen) ResetDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isDirty = false
	s.cursorChanged = false
	s.historyLineAddedCount = 0
}

func (s *Screen) markDirty() { s.isDirty = true }
func (s *Screen) markCursorChanged() { s.cursorChanged = true }

// Reset restores Screen to its default state (modes, cursor, margins,
// charsets, both buffers cleared, savepoint stacks emptied) while keeping
// its geometry, scrollback capacity and sink.
func (s *Screen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Screen) reset() {
	run := func() {
		s.main.ClearAll()
		s.alt.ClearAll()
		s.main.primeTabStops()
		s.alt.primeTabStops()
		s.history.Clear()
		s.active = s.main
		s.onMain = true
		s.cursor = NewCursor()
		s.modes = NewModeSet()
		s.charset = NewCharsetState()
		s.marginTop = 0
		s.marginBottom = s.lines - 1
		s.title = ""
		s.icon = ""
		s.titleStack = nil
		s.mainSavepoints = SavepointStack{}
		s.altSavepoints = SavepointStack{}
		s.mainSavepoints.SetOverflowHandler(func() { s.sink.Diagnostic("savepoint stack overflow: oldest entry dropped") })
		s.altSavepoints.SetOverflowHandler(func() { s.sink.Diagnostic("savepoint stack overflow: oldest entry dropped") })
		s.markDirty()
		s.markCursorChanged()
	}
	if s.middleware.Reset != nil {
		s.middleware.Reset(run)
		return
	}
	run()
}

// Resize rewraps both buffers and history to the new geometry, reprimes
// tab stops, and clamps the cursor. If the active buffer is main and the
// new width is narrower and the cursor's row was continued or now exceeds
// the new width, an index is performed first to avoid overprinting.
func (s *Screen) Resize(newLines, newColumns int) error {
	if newLines <= 0 || newColumns <= 0 {
		return ErrAllocationFailure
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	run := func() {
		if s.onMain && newColumns < s.columns {
			if row := s.main.Row(s.cursor.Y); row != nil && (row.Continued || s.cursor.X >= newColumns) {
				s.doIndexUp()
			}
		}

		newMain, mainCursorY := s.main.Rewrap(newColumns, s.cursor.Y, s.history)
		s.history.Rewrap(newColumns)
		newAlt, altCursorY := s.alt.Rewrap(newColumns, s.cursor.Y, nil)

		newMain = resizeRows(newMain, newLines, newColumns)
		newAlt = resizeRows(newAlt, newLines, newColumns)

		s.main = newMain
		s.alt = newAlt
		s.main.primeTabStops()
		s.alt.primeTabStops()
		if s.onMain {
			s.active = s.main
			s.cursor.Y = mainCursorY
		} else {
			s.active = s.alt
			s.cursor.Y = altCursorY
		}

		s.lines = newLines
		s.columns = newColumns
		s.marginTop = 0
		s.marginBottom = newLines - 1
		s.ensureBounds(false)
		s.markDirty()
	}
	if s.middleware.Resize != nil {
		s.middleware.Resize(newLines, newColumns, func(int, int) { run() })
	} else {
		run()
	}
	return nil
}

// resizeRows returns lb with its row count adjusted to newLines, padding
// with blank rows at the bottom or truncating from the bottom.
func resizeRows(lb *LineBuf, newLines, newColumns int) *LineBuf {
	if lb.lines == newLines {
		return lb
	}
	out := &LineBuf{lines: newLines, columns: newColumns, rows: make([]Line, newLines), tabStops: lb.tabStops}
	n := minInt(lb.lines, newLines)
	copy(out.rows, lb.rows[:n])
	for i := n; i < newLines; i++ {
		out.rows[i] = newLine(newColumns)
	}
	return out
}
