package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// palette maps core colors to ANSI color codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Theme holds the styles of one terminal. SSH sessions each get their own
// renderer so color detection follows the remote terminal.
type Theme struct {
	cells map[core.Color]lipgloss.Style

	Title  lipgloss.Style
	Card   lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Dim    lipgloss.Style
	Error  lipgloss.Style
	Accent lipgloss.Style
	Help   lipgloss.Style
}

// NewTheme builds a theme for r. A nil renderer uses the process default.
func NewTheme(r *lipgloss.Renderer) *Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	t := &Theme{
		cells: map[core.Color]lipgloss.Style{core.ColorDefault: r.NewStyle()},
		Title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Label:  r.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Dim:    r.NewStyle().Foreground(lipgloss.Color("241")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("9")),
		Accent: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Help:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for c, code := range palette {
		t.cells[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return t
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (t *Theme) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := t.cells[startColor]
			if !ok {
				style = t.cells[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
