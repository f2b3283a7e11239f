package core

// Color is a foreground color for a screen cell. The platform decides how
// each value is drawn.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Palette lists the colors used for tile kinds, in kind order.
// Kinds beyond the palette wrap around.
var Palette = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorWhite,
}

// KindColor returns the palette color for a tile kind.
func KindColor(kind int) Color {
	if kind < 0 {
		return ColorDefault
	}
	return Palette[kind%len(Palette)]
}
