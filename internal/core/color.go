package core

// Color is one cell token of a pixel frame and the color of a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. ColorNone is transparent in frames; ColorVariable marks
// cells that are substituted when an enemy is spawned.
const (
	ColorNone Color = iota
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
	ColorVariable
)

// tokenColors maps single-character frame tokens to colors.
var tokenColors = map[rune]Color{
	'0': ColorNone,
	'.': ColorNone,
	'r': ColorRed,
	'g': ColorGreen,
	'y': ColorYellow,
	'b': ColorBlue,
	'm': ColorMagenta,
	'c': ColorCyan,
	'w': ColorWhite,
	'R': ColorBrightRed,
	'G': ColorBrightGreen,
	'Y': ColorBrightYellow,
	'B': ColorBrightBlue,
	'M': ColorBrightMagenta,
	'C': ColorBrightCyan,
	'W': ColorBrightWhite,
	'o': ColorOrange,
	'a': ColorGray,
	'V': ColorVariable,
}

// ColorForToken returns the color for a frame token. Unknown tokens are
// transparent.
func ColorForToken(r rune) Color {
	return tokenColors[r]
}

// Palette is the set of colors random recoloring picks from.
var Palette = []Color{
	ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan,
	ColorBrightRed, ColorBrightGreen, ColorBrightYellow, ColorBrightBlue,
	ColorBrightMagenta, ColorBrightCyan, ColorOrange,
}
