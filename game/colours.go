package game

import "image/color"

// Named colours used by the game. Front-ends consume these directly as the
// draw colours for the background, tiles and cursor.
var (
	ColourBlue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	ColourRed     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColourGreen   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColourYellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	ColourMagenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	ColourCyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	ColourWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColourBlack   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)
