package core

// Color is a foreground color for a screen cell. The platform renderer maps
// these to terminal styles; game code never deals in ANSI codes directly.
type Color uint8

const (
	ColorDefault Color = iota

	// Standard intensity
	ColorRed
	ColorGreen
	ColorYellow // scaffold blocks
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite // solid blocks

	// Bright variants
	ColorBrightRed // falling chunks, cracked blocks
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan // anchors
	ColorBrightWhite

	// Extended palette
	ColorOrange
	ColorGray // chasm walls and dirt
)
