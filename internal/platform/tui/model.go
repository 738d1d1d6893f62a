package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
	"github.com/vovakirdan/pingpong/internal/storage"
)

// Minimum playfield size in cells
const (
	minCols = 20
	minRows = 6
)

// Options configures a terminal match.
type Options struct {
	Mode       pong.Mode
	Tuning     config.PongConfig
	Runtime    core.RuntimeConfig
	Width      int // Terminal columns
	Height     int // Terminal rows
	HoldWindow time.Duration
	Logger     *log.Logger // Receives goal events; nil discards
}

// Model is the Bubble Tea model for a running match.
type Model struct {
	engine   *pong.Engine
	canvas   *Canvas
	hold     *KeyHold
	keys     KeyMap
	help     help.Model
	interval time.Duration
	running  bool
	started  time.Time
	logger   *log.Logger
	now      func() time.Time
}

// NewModel creates the engine and the terminal surface it draws to.
func NewModel(opts Options) Model {
	rt := opts.Runtime.Resolve(opts.Tuning.TickInterval())

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engine := pong.New(opts.Tuning, opts.Mode, rand.New(rand.NewSource(rt.Seed)))
	canvas := NewCanvas(fieldSize(opts.Width, opts.Height))
	canvas.Present(engine.Frame())

	engine.Attach(pong.SurfaceFunc(func(f pong.Frame) {
		canvas.Present(f)
		logEvents(logger, f)
	}))

	h := help.New()
	h.Width = opts.Width

	return Model{
		engine:   engine,
		canvas:   canvas,
		hold:     NewKeyHold(opts.HoldWindow),
		keys:     DefaultKeyMap(opts.Mode == pong.ModeTwoPlayer),
		help:     h,
		interval: rt.Interval(),
		running:  true,
		started:  time.Now(),
		logger:   logger,
		now:      time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.canvas.Resize(fieldSize(msg.Width, msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey turns terminal key presses into engine press/release pairs.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, quit := m.keys.MapKey(msg)
	if quit {
		m.running = false
		return m, tea.Quit
	}

	switch k {
	case core.KeyNone:
	case core.KeyReset:
		m.engine.HandleKey(k, true)
		m.engine.HandleKey(k, false)
	default:
		// Switching direction releases the other key at once instead of
		// waiting for its hold window to lapse.
		if opp := opposite(k); m.hold.Release(opp) {
			m.engine.HandleKey(opp, false)
		}
		if m.hold.Press(k, m.now()) {
			m.engine.HandleKey(k, true)
		}
	}

	return m, nil
}

// handleTick releases quiet keys, steps the match and re-arms the timer.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.running {
		return m, nil
	}

	for _, k := range m.hold.Expire(now) {
		m.engine.HandleKey(k, false)
	}
	m.engine.Step()

	return m, tickCmd(m.interval)
}

// View renders the score line, the field and the key help.
func (m Model) View() string {
	if !m.running {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderHeader(m.canvas.Score(), m.engine.Mode().String(), m.canvas.Cols()),
		RenderCanvas(m.canvas),
		m.help.View(m.keys),
	)
}

// Engine returns the match being played.
func (m Model) Engine() *pong.Engine {
	return m.engine
}

// Running reports whether the tick loop is still active.
func (m Model) Running() bool {
	return m.running
}

// Record summarizes the match for history storage.
func (m Model) Record(player string) storage.MatchRecord {
	score := m.engine.Score()
	return storage.MatchRecord{
		Mode:       m.engine.Mode().String(),
		Player:     player,
		LeftScore:  score.Left,
		RightScore: score.Right,
		Ticks:      int64(m.engine.Ticks()), //nolint:gosec // tick counts stay far below MaxInt64
		Duration:   time.Since(m.started),
		PlayedAt:   m.started,
	}
}

// Run plays a match in the current terminal and records it when it ends.
func Run(opts Options, store *storage.Store) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(Model); ok {
		record := fm.Record("local")
		opts.logInfo("match finished", "mode", record.Mode, "score", fm.engine.Score(), "ticks", record.Ticks)
		if err := store.RecordMatch(record); err != nil {
			fm.logger.Warn("could not save match", "error", err)
		}
	}
	return nil
}

func (o Options) logInfo(msg string, keyvals ...any) {
	if o.Logger != nil {
		o.Logger.Info(msg, keyvals...)
	}
}

// fieldSize leaves one row for the score line and one for help.
func fieldSize(width, height int) (cols, rows int) {
	return max(width, minCols), max(height-2, minRows)
}

// logEvents reports goals and resets at debug level.
func logEvents(logger *log.Logger, f pong.Frame) {
	for _, ev := range f.Events {
		switch ev.Kind {
		case pong.EventGoal:
			logger.Debug("goal", "scorer", ev.Side, "score", f.ScoreText, "tick", f.Tick)
		case pong.EventReset:
			logger.Debug("scores reset", "tick", f.Tick)
		}
	}
}
