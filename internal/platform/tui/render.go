package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	scoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	modeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	paddleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	ballStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	netStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	plainStyle  = lipgloss.NewStyle()
)

// cellStyle picks the style for a canvas rune.
func cellStyle(r rune) lipgloss.Style {
	switch r {
	case PaddleChar:
		return paddleStyle
	case BallChar:
		return ballStyle
	case NetChar:
		return netStyle
	default:
		return plainStyle
	}
}

// RenderCanvas converts the canvas to a styled string for display.
// Groups adjacent cells with the same rune to minimize ANSI escape sequences.
func RenderCanvas(c *Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Cols()*c.Rows()*2 + c.Rows())

	for y := 0; y < c.Rows(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Cols() {
			start := c.Rune(x, y)
			n := 0
			for x < c.Cols() && c.Rune(x, y) == start {
				n++
				x++
			}
			sb.WriteString(cellStyle(start).Render(strings.Repeat(string(start), n)))
		}
	}
	return sb.String()
}

// RenderHeader draws the score centred over width with the mode label on the
// left when it fits.
func RenderHeader(score, mode string, width int) string {
	pad := max((width-lipgloss.Width(score))/2, 0)

	label := ""
	if lipgloss.Width(mode)+1 < pad {
		label = mode
	}
	gap := pad - lipgloss.Width(label)

	return modeStyle.Render(label) + strings.Repeat(" ", gap) + scoreStyle.Render(score)
}
