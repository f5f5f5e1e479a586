package vtscreen

// RenditionKind identifies which facet of the cursor's graphic rendition a
// RenditionOp changes.
type RenditionKind int

const (
	RenditionReset RenditionKind = iota
	RenditionBold
	RenditionItalic
	RenditionUnderline
	RenditionReverse
	RenditionStrike
	RenditionForeground
	RenditionBackground
	RenditionDecorationColor
)

// RenditionOp is a single SGR effect, already decoded by the parser
// collaborator (go-ansicode hands the handler one fully-parsed attribute
// at a time, including resolved palette/truecolor values); On carries the
// on/off state for boolean kinds, Decoration the underline style, and
// Color the resolved color for the two color kinds.
type RenditionOp struct {
	Kind       RenditionKind
	On         bool
	Decoration Decoration
	Color      Color
}

// ApplyRendition mutates the cursor's current graphic rendition per op,
// the single dispatch point behind every SGR code in the code table (bold,
// italic, underline variants, reverse, strike, 16/256/truecolor
// foreground/background, and the decoration-color extension).
func (s *Screen) ApplyRendition(op RenditionOp) {
	run := func(op RenditionOp) {
		switch op.Kind {
		case RenditionReset:
			s.cursor.ResetRendition()
		case RenditionBold:
			s.cursor.Bold = op.On
		case RenditionItalic:
			s.cursor.Italic = op.On
		case RenditionUnderline:
			if op.On {
				s.cursor.Decoration = op.Decoration
			} else {
				s.cursor.Decoration = DecorationNone
			}
		case RenditionReverse:
			s.cursor.Reverse = op.On
		case RenditionStrike:
			s.cursor.Strike = op.On
		case RenditionForeground:
			s.cursor.Fg = op.Color
		case RenditionBackground:
			s.cursor.Bg = op.Color
		case RenditionDecorationColor:
			s.cursor.DecorationFg = op.Color
		}
	}
	if s.middleware.ApplyRendition != nil {
		s.middleware.ApplyRendition(op, run)
		return
	}
	run(op)
}
