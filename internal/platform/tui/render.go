package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-r42/internal/core"
)

// ansiColors maps core.Color to terminal color codes. ColorNone keeps the
// terminal default.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
}

type colorPair struct {
	fg, bg core.Color
}

// cellStyles holds one style per foreground/background pair. It is built
// once and only read afterwards, so SSH sessions can share it.
var cellStyles = buildCellStyles()

func buildCellStyles() map[colorPair]lipgloss.Style {
	colors := []core.Color{core.ColorNone}
	for c := range ansiColors {
		colors = append(colors, c)
	}
	styles := make(map[colorPair]lipgloss.Style, len(colors)*len(colors))
	for _, fg := range colors {
		for _, bg := range colors {
			st := lipgloss.NewStyle()
			if c, ok := ansiColors[fg]; ok {
				st = st.Foreground(c)
			}
			if c, ok := ansiColors[bg]; ok {
				st = st.Background(c)
			}
			styles[colorPair{fg, bg}] = st
		}
	}
	return styles
}

func styleFor(fg, bg core.Color) lipgloss.Style {
	if st, ok := cellStyles[colorPair{fg, bg}]; ok {
		return st
	}
	return cellStyles[colorPair{}]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
