// Package gridview renders rectangular binary grids for terminal output.
package gridview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Grid is the minimal read surface a renderable board must provide.
type Grid interface {
	Width() int
	Height() int
	Get(x, y int) bool
}

var (
	litStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
	offStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
	frame    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#16858E")).
			Padding(0, 1)
)

// Render draws the grid inside a rounded border, two glyphs per cell.
func Render(grid Grid) string {
	rows := make([]string, 0, grid.Height())
	for y := 0; y < grid.Height(); y++ {
		var sb strings.Builder
		for x := 0; x < grid.Width(); x++ {
			if grid.Get(x, y) {
				sb.WriteString(litStyle.Render("██"))
			} else {
				sb.WriteString(offStyle.Render("░░"))
			}
		}
		rows = append(rows, sb.String())
	}
	return frame.Render(strings.Join(rows, "\n"))
}
