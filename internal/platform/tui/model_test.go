package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

var epoch = time.Unix(1_700_000_000, 0)

func newTestModel(mode pong.Mode) Model {
	m := NewModel(Options{
		Mode:       mode,
		Tuning:     config.DefaultPongConfig(),
		Runtime:    core.RuntimeConfig{Seed: 1},
		Width:      80,
		Height:     24,
		HoldWindow: 100 * time.Millisecond,
	})
	m.now = func() time.Time { return epoch }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelInit(t *testing.T) {
	m := newTestModel(pong.ModeSinglePlayer)
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}
	if !m.Running() {
		t.Error("new model should be running")
	}
	if want := time.Second / 63; m.interval != want {
		t.Errorf("interval = %v, want %v from the 16ms tuning tick", m.interval, want)
	}
	if m.canvas.Cols() != 80 || m.canvas.Rows() != 22 {
		t.Errorf("canvas = %dx%d, want 80x22", m.canvas.Cols(), m.canvas.Rows())
	}
}

func TestModelMovementKeys(t *testing.T) {
	m := newTestModel(pong.ModeTwoPlayer)

	m, _ = update(t, m, runeKey('w'))
	if in := m.Engine().Input(); !in.P1Up || in.P1Down {
		t.Fatalf("after w: input = %+v", in)
	}

	// Switching direction drops the opposite key at once
	m, _ = update(t, m, runeKey('S'))
	if in := m.Engine().Input(); in.P1Up || !in.P1Down {
		t.Fatalf("after S: input = %+v", in)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if in := m.Engine().Input(); !in.P2Up {
		t.Fatalf("after up: input = %+v", in)
	}
}

func TestModelTickReleasesQuietKeys(t *testing.T) {
	m := newTestModel(pong.ModeTwoPlayer)
	m, _ = update(t, m, runeKey('w'))
	startY := m.Engine().Paddle(pong.SideLeft).Y

	m, cmd := update(t, m, TickMsg(epoch.Add(50*time.Millisecond)))
	if cmd == nil {
		t.Error("tick should re-arm the timer")
	}
	if got := m.Engine().Paddle(pong.SideLeft).Y; got != startY-6 {
		t.Errorf("paddle y = %v, want %v", got, startY-6)
	}

	m, _ = update(t, m, TickMsg(epoch.Add(200*time.Millisecond)))
	if m.Engine().Input().P1Up {
		t.Error("W should be released once its hold window lapses")
	}
	if got := m.Engine().Paddle(pong.SideLeft).Y; got != startY-6 {
		t.Errorf("paddle moved after release: y = %v", got)
	}
	if m.Engine().Ticks() != 2 {
		t.Errorf("ticks = %d, want 2", m.Engine().Ticks())
	}
}

func TestModelQuitStopsTicking(t *testing.T) {
	m := newTestModel(pong.ModeSinglePlayer)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.Running() {
		t.Error("model should stop running on quit")
	}

	m, cmd = update(t, m, TickMsg(epoch))
	if cmd != nil {
		t.Error("tick after quit should not re-arm")
	}
	if m.Engine().Ticks() != 0 {
		t.Errorf("ticks = %d, want 0", m.Engine().Ticks())
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResetKey(t *testing.T) {
	m := newTestModel(pong.ModeSinglePlayer)
	m, _ = update(t, m, runeKey('r'))

	if in := m.Engine().Input(); in != (core.InputState{}) {
		t.Errorf("reset should not touch paddle flags: %+v", in)
	}
	if m.Engine().Score() != (pong.Score{}) {
		t.Errorf("score = %v, want 0-0", m.Engine().Score())
	}
	f := m.Engine().Frame()
	if !f.Has(pong.EventReset) {
		t.Error("pending frame should report the reset")
	}
}

func TestModelWindowResize(t *testing.T) {
	m := newTestModel(pong.ModeSinglePlayer)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.canvas.Cols() != 100 || m.canvas.Rows() != 28 {
		t.Errorf("canvas = %dx%d, want 100x28", m.canvas.Cols(), m.canvas.Rows())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 5, Height: 3})
	if m.canvas.Cols() != minCols || m.canvas.Rows() != minRows {
		t.Errorf("canvas = %dx%d, want minimum %dx%d", m.canvas.Cols(), m.canvas.Rows(), minCols, minRows)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(pong.ModeSinglePlayer)
	view := m.View()

	if !strings.Contains(view, "0    0") {
		t.Error("view should show the score line")
	}
	if !strings.ContainsRune(view, BallChar) {
		t.Error("view should show the ball")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should show key help")
	}
}

func TestModelRecord(t *testing.T) {
	m := newTestModel(pong.ModeTwoPlayer)
	m, _ = update(t, m, TickMsg(epoch))
	m, _ = update(t, m, TickMsg(epoch))

	r := m.Record("alice")
	if r.Mode != "two-player" || r.Player != "alice" {
		t.Errorf("record = %+v", r)
	}
	if r.Ticks != 2 {
		t.Errorf("ticks = %d, want 2", r.Ticks)
	}
	if r.Winner() != "draw" {
		t.Errorf("winner = %q, want draw", r.Winner())
	}
}
