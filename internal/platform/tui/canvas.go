package tui

import (
	"math"
	"strings"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
	EmptyChar  = ' '
)

// Canvas rasterizes frames into a character grid, scaling arena coordinates
// to the grid size. It implements pong.Surface.
type Canvas struct {
	cols  int
	rows  int
	cells [][]rune
	score string
}

var _ pong.Surface = (*Canvas)(nil)

// NewCanvas creates a blank canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size and clears it. Sizes below 1 are raised to 1.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 1)
	c.rows = max(rows, 1)
	c.cells = make([][]rune, c.rows)
	for y := range c.cells {
		c.cells[y] = make([]rune, c.cols)
	}
	c.clear()
}

// Cols returns the grid width.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the grid height.
func (c *Canvas) Rows() int {
	return c.rows
}

// Present draws the net, both paddles and the ball.
func (c *Canvas) Present(f pong.Frame) {
	c.clear()
	c.score = f.ScoreText

	sx := float64(c.cols) / f.Arena.W
	sy := float64(c.rows) / f.Arena.H

	// Net
	netX := c.cols / 2
	for y := 0; y < c.rows; y += 2 {
		c.set(netX, y, NetChar)
	}

	c.fill(f.Left, sx, sy, PaddleChar)
	c.fill(f.Right, sx, sy, PaddleChar)

	// The ball is a single cell at its centre
	bx := int(math.Floor(f.Ball.CenterX() * sx))
	by := int(math.Floor(f.Ball.CenterY() * sy))
	c.set(core.Clamp(bx, 0, c.cols-1), core.Clamp(by, 0, c.rows-1), BallChar)
}

// fill paints every cell a box touches, at least one cell per axis.
func (c *Canvas) fill(b core.Box, sx, sy float64, r rune) {
	x0 := int(math.Floor(b.X * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := max(int(math.Ceil(b.Right()*sx)), x0+1)
	y1 := max(int(math.Ceil(b.Bottom()*sy)), y0+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, r)
		}
	}
}

// Score returns the score line from the last presented frame.
func (c *Canvas) Score() string {
	return c.score
}

// Rune returns the cell at (x, y), or a space when out of bounds.
func (c *Canvas) Rune(x, y int) rune {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return EmptyChar
	}
	return c.cells[y][x]
}

// Row returns row y as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.rows {
		return strings.Repeat(string(EmptyChar), c.cols)
	}
	return string(c.cells[y])
}

// String joins all rows with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.cols*c.rows*3 + c.rows)
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(c.cells[y]))
	}
	return sb.String()
}

func (c *Canvas) set(x, y int, r rune) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	c.cells[y][x] = r
}

func (c *Canvas) clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = EmptyChar
		}
	}
}
