package vtscreen

// Charset identifies one of the translation tables that can be designated
// into g0/g1.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetDECSpecialGraphics
)

// CharsetState tracks the two designatable charset slots, which of them is
// active, and the latin-1 override used by use_latin1. UTF-8 decoding
// itself is owned by the external parser collaborator; this flag only
// tracks whether the core has been told to treat incoming codepoints as
// latin-1.
type CharsetState struct {
	G0     Charset
	G1     Charset
	Active int // 0 or 1, indexing G0/G1
	Latin1 bool
}

// NewCharsetState returns G0=ASCII, G1=ASCII, g0 active, latin1 off.
func NewCharsetState() CharsetState {
	return CharsetState{G0: CharsetASCII, G1: CharsetASCII}
}

// ActiveCharset returns the currently active translation table.
func (cs CharsetState) ActiveCharset() Charset {
	if cs.Active == 1 {
		return cs.G1
	}
	return cs.G0
}

// Designate rebinds g0 or g1 (which must be 0 or 1) to as. If the active
// pointer was aimed at the slot being rebound, the new charset takes
// effect immediately.
func (cs *CharsetState) Designate(which int, as Charset) {
	switch which {
	case 0:
		cs.G0 = as
	case 1:
		cs.G1 = as
	}
}

// ChangeActive selects which of g0/g1 (0 or 1) is active.
func (cs *CharsetState) ChangeActive(which int) {
	if which == 0 || which == 1 {
		cs.Active = which
	}
}

// translate maps r through the active charset's translation table.
// Identity unless DEC special graphics is active, in which case the VT100
// line-drawing substitutions apply to the ASCII range they cover.
func (cs CharsetState) translate(r rune) rune {
	if cs.ActiveCharset() != CharsetDECSpecialGraphics {
		return r
	}
	return decSpecialGraphics(r)
}

// decSpecialGraphics implements the VT100 DEC Special Graphics charset's
// substitutions for the lowercase-letter range it remaps to box-drawing
// and symbol glyphs; every other rune passes through unchanged.
func decSpecialGraphics(r rune) rune {
	switch r {
	case '`':
		return '◆' // diamond
	case 'a':
		return '▒' // checkerboard
	case 'b':
		return '␉' // HT symbol
	case 'c':
		return '␌' // FF symbol
	case 'd':
		return '␍' // CR symbol
	case 'e':
		return '␊' // LF symbol
	case 'f':
		return '°' // degree
	case 'g':
		return '±' // plus/minus
	case 'h':
		return '␤' // NL symbol
	case 'i':
		return '␋' // VT symbol
	case 'j':
		return '┘' // lower right corner
	case 'k':
		return '┐' // upper right corner
	case 'l':
		return '┌' // upper left corner
	case 'm':
		return '└' // lower left corner
	case 'n':
		return '┼' // crossing lines
	case 'o':
		return '⎺' // scan line 1
	case 'p':
		return '⎻' // scan line 3
	case 'q':
		return '─' // horizontal line
	case 'r':
		return '⎼' // scan line 7
	case 's':
		return '⎽' // scan line 9
	case 't':
		return '├' // left tee
	case 'u':
		return '┤' // right tee
	case 'v':
		return '┴' // bottom tee
	case 'w':
		return '┬' // top tee
	case 'x':
		return '│' // vertical line
	case 'y':
		return '≤' // less than or equal
	case 'z':
		return '≥' // greater than or equal
	case '{':
		return 'π' // pi
	case '|':
		return '≠' // not equal
	case '}':
		return '£' // pound sterling
	case '~':
		return '·' // centered dot
	default:
		return r
	}
}
