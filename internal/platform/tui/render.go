package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-city/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorGrass:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorGridLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorHouse:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorShop:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorFactory:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPark:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorPreviewOK:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorPreviewBad: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorCursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorMuted:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
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
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Panel styles below the board.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	problemStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	failureStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)
