package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/weed-whacker/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGrass:       lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorGrassAlt:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorWeed:        lipgloss.NewStyle().Foreground(lipgloss.Color("142")).Bold(true),
	core.ColorToughWeed:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Bold(true),
	core.ColorUnowned:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorPurchasable: lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorSelected:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorMoney:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorWarning:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorDanger:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorInfo:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorMuted:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorHighlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
