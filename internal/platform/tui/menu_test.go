package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/games/pong"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return mm, cmd
}

func TestMenuSelectsMode(t *testing.T) {
	m := NewMenuModel(pong.ModeSinglePlayer, 80, 24)
	if _, ok := m.Selected(); ok {
		t.Fatal("nothing should be selected yet")
	}

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown}) // Stays on the last entry
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	mode, ok := m.Selected()
	if !ok || mode != pong.ModeTwoPlayer {
		t.Errorf("Selected() = %v, %v; want two-player, true", mode, ok)
	}
	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
}

func TestMenuInitialCursor(t *testing.T) {
	m := NewMenuModel(pong.ModeTwoPlayer, 80, 24)
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if mode, _ := m.Selected(); mode != pong.ModeSinglePlayer {
		t.Errorf("Selected() = %v, want vs CPU", mode)
	}
}

func TestMenuViewAndQuit(t *testing.T) {
	m := NewMenuModel(pong.ModeSinglePlayer, 80, 24)
	view := m.View()
	if !strings.Contains(view, "> vs CPU") || !strings.Contains(view, "two-player") {
		t.Errorf("view missing modes:\n%s", view)
	}

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if _, ok := m.Selected(); ok {
		t.Error("quitting should not select a mode")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() overflow = %q", got)
	}
}
