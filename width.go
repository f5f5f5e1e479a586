package vtscreen

import "github.com/unilibs/uniwidth"

// safeWcwidth returns the display width of r clamped to [0,2], per spec §4.1
// step 3. uniwidth can return -1 for control characters; negative widths
// become 1 rather than propagating.
func safeWcwidth(r rune) int {
	w := uniwidth.RuneWidth(r)
	if w < 0 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// isWideRune reports whether r occupies two columns.
func isWideRune(r rune) bool {
	return safeWcwidth(r) == 2
}

// StringWidth returns the total display width of s.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
