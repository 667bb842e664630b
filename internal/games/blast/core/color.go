package core

// Color represents a tile color. The zero value is ColorNone, which marks an
// empty cell.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	colorCount // Sentinel value for table sizing
)

// PaletteSize is the number of real (non-None) colors.
const PaletteSize = int(colorCount) - 1

// colorCodes maps level file codes to colors.
var colorCodes = map[string]Color{
	"R": ColorRed,
	"G": ColorGreen,
	"B": ColorBlue,
	"Y": ColorYellow,
}

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorNone:
		return '.'
	default:
		return '?'
	}
}

// Valid reports whether c is one of the palette colors.
func (c Color) Valid() bool {
	return c > ColorNone && c < colorCount
}

// ParseColor converts a level file code (R, G, B, Y) to a Color.
// Unknown codes return ColorNone and false.
func ParseColor(code string) (Color, bool) {
	c, ok := colorCodes[code]
	return c, ok
}

// Palette returns the first n palette colors in enumeration order.
// n is clamped to [0, PaletteSize].
func Palette(n int) []Color {
	if n < 0 {
		n = 0
	}
	if n > PaletteSize {
		n = PaletteSize
	}
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color(i + 1)
	}
	return colors
}
