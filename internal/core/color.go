package core

// Color is the foreground color of a screen cell.
// The platform maps it to a terminal color when rendering.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorGray
	ColorBrightWhite
)

// Attr holds display attributes of a screen cell.
type Attr uint8

const (
	AttrBold    Attr = 1 << iota // Bold text
	AttrReverse                  // Swap foreground and background (cursor)
)

// Has returns true if all bits of other are set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}
