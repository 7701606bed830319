package core

// Color is a foreground color for a screen cell.
// Front ends map it onto ANSI colors (lipgloss) or tcell colors.
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

// Dimmed returns the darker variant used for faded cells.
func (c Color) Dimmed() Color {
	switch c {
	case ColorBrightRed:
		return ColorRed
	case ColorBrightGreen:
		return ColorGreen
	case ColorBrightYellow, ColorOrange:
		return ColorYellow
	case ColorBrightBlue:
		return ColorBlue
	case ColorBrightMagenta:
		return ColorMagenta
	case ColorBrightCyan:
		return ColorCyan
	case ColorBrightWhite:
		return ColorWhite
	default:
		return ColorGray
	}
}
