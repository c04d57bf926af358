package core

// Color is the foreground of a screen cell. The platform maps each value
// to an ANSI color; bullets, the ship, asteroids and the HUD each use one.
type Color uint8

// Palette used by the renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
