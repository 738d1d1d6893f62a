// Package tui provides the Bubble Tea host for the match engine.
// It owns the tick loop, maps terminal keys to engine keys and draws frames
// into a scaled character canvas.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a match tick.
type TickMsg time.Time

// tickCmd schedules the next tick. It is only issued after the previous tick
// has been handled, so steps never overlap.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
