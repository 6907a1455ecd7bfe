package core

import "image/color"

// Color is a palette index shared by every front-end.
// The terminal maps it to an ANSI code, the window maps it to RGBA.
type Color uint8

// Palette entries. ColorDefault renders with the terminal's own foreground.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPurple
	ColorSkyBlue
	ColorGold
	ColorGray
	ColorDarkGray
)

var ansiCodes = map[Color]string{
	ColorRed:      "9",
	ColorGreen:    "10",
	ColorYellow:   "11",
	ColorBlue:     "12",
	ColorMagenta:  "13",
	ColorCyan:     "14",
	ColorWhite:    "15",
	ColorOrange:   "208",
	ColorPurple:   "135",
	ColorSkyBlue:  "117",
	ColorGold:     "220",
	ColorGray:     "245",
	ColorDarkGray: "238",
}

var rgbaValues = map[Color]color.RGBA{
	ColorDefault:  {245, 245, 245, 255},
	ColorRed:      {230, 41, 55, 255},
	ColorGreen:    {0, 228, 48, 255},
	ColorYellow:   {253, 249, 0, 255},
	ColorBlue:     {0, 121, 241, 255},
	ColorMagenta:  {255, 0, 255, 255},
	ColorCyan:     {0, 255, 255, 255},
	ColorWhite:    {255, 255, 255, 255},
	ColorOrange:   {255, 161, 0, 255},
	ColorPurple:   {200, 122, 255, 255},
	ColorSkyBlue:  {102, 191, 255, 255},
	ColorGold:     {255, 203, 0, 255},
	ColorGray:     {130, 130, 130, 255},
	ColorDarkGray: {40, 40, 40, 255},
}

// ANSI returns the 256-color code for the color, or "" for ColorDefault.
func (c Color) ANSI() string {
	return ansiCodes[c]
}

// RGBA returns the color used by pixel front-ends.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgbaValues[c]; ok {
		return v
	}
	return rgbaValues[ColorDefault]
}
