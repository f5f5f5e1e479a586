package vtscreen

import "image/color"

// Color is a packed 32-bit rendition color, per the Screen cell color
// contract: low byte 0 = default, 1 = palette index (value<<8|1), 2 =
// direct RGB (r<<24|g<<16|b<<8|2). It implements image/color.Color so a
// rendering collaborator can resolve it through the standard interface.
type Color uint32

// DefaultColor is the unset/inherit-terminal-default color.
const DefaultColor Color = 0

// PaletteColor packs a 0-255 palette index into a Color.
func PaletteColor(index uint8) Color {
	return Color(uint32(index)<<8 | 1)
}

// RGBColor packs a 24-bit direct color into a Color.
func RGBColor(r, g, b uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 2)
}

// Kind reports which of the three encodings c holds.
func (c Color) Kind() int {
	return int(c & 0xff)
}

// IsDefault reports whether c is the unset default color.
func (c Color) IsDefault() bool {
	return c.Kind() == 0
}

// PaletteIndex returns the palette index for a palette-kind Color.
func (c Color) PaletteIndex() uint8 {
	return uint8((c >> 8) & 0xff)
}

// RGB returns the r, g, b components for a truecolor-kind Color.
func (c Color) RGB() (r, g, b uint8) {
	return uint8((c >> 24) & 0xff), uint8((c >> 16) & 0xff), uint8((c >> 8) & 0xff)
}

// RGBA implements image/color.Color, resolving the default color against
// fg for palette lookups. Callers that need the actual default foreground
// or background should use ResolveColor instead, which distinguishes fg
// from bg.
func (c Color) RGBA() (r, g, b, a uint32) {
	return ResolveColor(c, true).RGBA()
}

// ResolveColor turns a packed Color into a concrete color.RGBA, consulting
// DefaultPalette for palette entries and DefaultForeground/DefaultBackground
// for the default (unset) case.
func ResolveColor(c Color, fg bool) color.RGBA {
	switch c.Kind() {
	case 1:
		return DefaultPalette[c.PaletteIndex()]
	case 2:
		r, g, b := c.RGB()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}
	default:
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	}
}

// DefaultForeground and DefaultBackground are the resolved colors used when
// a Cell's color field is DefaultColor.
var (
	DefaultForeground = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	DefaultBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	DefaultCursor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// DefaultPalette is the standard 256-color ANSI palette: 16 named colors,
// a 6x6x6 color cube, and a 24-step grayscale ramp.
var DefaultPalette [256]color.RGBA

func init() {
	named := [16]color.RGBA{
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, // black
		{R: 0xcd, G: 0x00, B: 0x00, A: 0xff}, // red
		{R: 0x00, G: 0xcd, B: 0x00, A: 0xff}, // green
		{R: 0xcd, G: 0xcd, B: 0x00, A: 0xff}, // yellow
		{R: 0x00, G: 0x00, B: 0xee, A: 0xff}, // blue
		{R: 0xcd, G: 0x00, B: 0xcd, A: 0xff}, // magenta
		{R: 0x00, G: 0xcd, B: 0xcd, A: 0xff}, // cyan
		{R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff}, // white
		{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, // bright black
		{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // bright red
		{R: 0x00, G: 0xff, B: 0x00, A: 0xff}, // bright green
		{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, // bright yellow
		{R: 0x5c, G: 0x5c, B: 0xff, A: 0xff}, // bright blue
		{R: 0xff, G: 0x00, B: 0xff, A: 0xff}, // bright magenta
		{R: 0x00, G: 0xff, B: 0xff, A: 0xff}, // bright cyan
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // bright white
	}
	for i, c := range named {
		DefaultPalette[i] = c
	}

	steps := [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{R: steps[r], G: steps[g], B: steps[b], A: 0xff}
				i++
			}
		}
	}

	for step := 0; step < 24; step++ {
		v := uint8(8 + step*10)
		DefaultPalette[232+step] = color.RGBA{R: v, G: v, B: v, A: 0xff}
	}
}
