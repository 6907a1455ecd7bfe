package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinypulse/arcade/internal/core"
)

// colorStyles maps every palette entry to a foreground style. Built once so
// concurrent SSH sessions only read it.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		s := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			s = s.Foreground(lipgloss.Color(code))
		}
		styles[c] = s
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
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

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(colorStyles[startColor].Render(run.String()))
		}
	}
	return sb.String()
}
