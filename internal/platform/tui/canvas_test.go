package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

func testFrame(leftY, rightY, ballX, ballY float64) pong.Frame {
	return pong.Frame{
		Arena:     core.NewBox(0, 0, 800, 400),
		Left:      core.NewBox(20, leftY, 10, 80),
		Right:     core.NewBox(770, rightY, 10, 80),
		Ball:      core.NewBox(ballX, ballY, 16, 16),
		ScoreText: "3    1",
	}
}

func TestCanvasPresent(t *testing.T) {
	c := NewCanvas(80, 20)
	c.Present(testFrame(160, 160, 392, 192))

	// Scale is 0.1 columns and 0.05 rows per arena unit
	for y := 8; y < 12; y++ {
		if got := c.Rune(2, y); got != PaddleChar {
			t.Errorf("left paddle cell (2,%d) = %q", y, got)
		}
		if got := c.Rune(77, y); got != PaddleChar {
			t.Errorf("right paddle cell (77,%d) = %q", y, got)
		}
	}
	if got := c.Rune(2, 14); got == PaddleChar {
		t.Error("left paddle drawn below its box")
	}
	if got := c.Rune(40, 10); got != BallChar {
		t.Errorf("ball cell = %q, want %q", got, BallChar)
	}
	if got := c.Rune(40, 0); got != NetChar {
		t.Errorf("net cell = %q, want %q", got, NetChar)
	}
	if got := c.Rune(40, 1); got != EmptyChar {
		t.Errorf("net gap = %q, want blank", got)
	}
	if c.Score() != "3    1" {
		t.Errorf("Score() = %q", c.Score())
	}
}

func TestCanvasKeepsEntitiesOnScreen(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Present(testFrame(320, 0, 784, 384))

	if got := c.Rune(0, 4); got != PaddleChar {
		t.Errorf("bottom left paddle cell = %q", got)
	}
	if got := c.Rune(9, 0); got != PaddleChar {
		t.Errorf("top right paddle cell = %q", got)
	}
	if !strings.ContainsRune(c.String(), BallChar) {
		t.Error("ball in the corner should still be drawn")
	}
}

func TestCanvasPresentClears(t *testing.T) {
	c := NewCanvas(80, 20)
	c.Present(testFrame(0, 0, 100, 100))
	c.Present(testFrame(320, 320, 392, 192))

	if got := c.Rune(2, 0); got != EmptyChar {
		t.Errorf("stale paddle cell = %q", got)
	}
	if n := strings.Count(c.String(), string(BallChar)); n != 1 {
		t.Errorf("ball drawn %d times, want 1", n)
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(0, -3)
	if c.Cols() != 1 || c.Rows() != 1 {
		t.Errorf("size = %dx%d, want 1x1", c.Cols(), c.Rows())
	}

	c.Resize(12, 4)
	if len(c.Row(3)) != 12 {
		t.Errorf("row length = %d, want 12", len(c.Row(3)))
	}
	if got := c.Rune(-1, 0); got != EmptyChar {
		t.Errorf("out of bounds rune = %q", got)
	}
	if lines := strings.Split(c.String(), "\n"); len(lines) != 4 {
		t.Errorf("String() has %d lines, want 4", len(lines))
	}
}

func TestRenderHeader(t *testing.T) {
	got := RenderHeader("0    0", "vs CPU", 40)
	if !strings.Contains(got, "0    0") {
		t.Errorf("header %q missing score", got)
	}
	if !strings.Contains(got, "vs CPU") {
		t.Errorf("header %q missing mode", got)
	}

	narrow := RenderHeader("0    0", "vs CPU", 10)
	if strings.Contains(narrow, "vs CPU") {
		t.Errorf("narrow header %q should drop the mode label", narrow)
	}
}
