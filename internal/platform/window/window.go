// Package window hosts a match in a desktop window using Ebitengine.
// Unlike a terminal, the window reports real key releases, so paddle flags
// follow the keyboard exactly.
package window

import (
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
	"github.com/vovakirdan/pingpong/internal/storage"
)

// Title is the window caption.
const Title = "Ping Pong"

var (
	background = color.RGBA{0, 0, 0, 255}
	foreground = color.RGBA{255, 255, 255, 255}
	netColor   = color.RGBA{90, 90, 90, 255}
)

// bindings maps window keys to engine keys.
var bindings = []struct {
	key    ebiten.Key
	engine core.Key
}{
	{ebiten.KeyW, core.KeyW},
	{ebiten.KeyS, core.KeyS},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeyR, core.KeyReset},
}

// Options configures a windowed match.
type Options struct {
	Mode    pong.Mode
	Tuning  config.PongConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Game implements ebiten.Game and pong.Surface.
type Game struct {
	engine *pong.Engine
	frame  pong.Frame
	logger *log.Logger
	width  int
	height int
	tps    int
}

var _ pong.Surface = (*Game)(nil)

// NewGame creates the engine and attaches the window as its surface.
func NewGame(opts Options) *Game {
	rt := opts.Runtime.Resolve(opts.Tuning.TickInterval())
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		engine: pong.New(opts.Tuning, opts.Mode, rand.New(rand.NewSource(rt.Seed))),
		logger: logger,
		width:  int(opts.Tuning.Arena.Width),
		height: int(opts.Tuning.Arena.Height),
		tps:    rt.TickRate,
	}
	g.frame = g.engine.Frame()
	g.engine.Attach(g)
	return g
}

// Update feeds key transitions to the engine and advances one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.engine.HandleKey(b.engine, true)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			g.engine.HandleKey(b.engine, false)
		}
	}

	g.engine.Step()
	return nil
}

// Present stores the frame for the next Draw.
func (g *Game) Present(f pong.Frame) {
	g.frame = f
	if side := f.Goal(); side != pong.SideNone {
		g.logger.Debug("goal", "scorer", side, "score", f.ScoreText, "tick", f.Tick)
	}
}

// Draw renders the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	// Dashed net
	midX := float32(g.frame.Arena.W / 2)
	for y := float32(0); y < float32(g.frame.Arena.H); y += 20 {
		vector.DrawFilledRect(screen, midX-1, y, 2, 10, netColor, false)
	}

	drawBox(screen, g.frame.Left)
	drawBox(screen, g.frame.Right)

	ball := g.frame.Ball
	vector.DrawFilledCircle(screen,
		float32(ball.CenterX()), float32(ball.CenterY()), float32(ball.W/2),
		foreground, true)

	// The debug font is 6px wide
	textX := int(g.frame.Arena.W)/2 - len(g.frame.ScoreText)*3
	ebitenutil.DebugPrintAt(screen, g.frame.ScoreText, textX, 10)
}

// Layout keeps the logical screen at the arena size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Engine returns the match being played.
func (g *Game) Engine() *pong.Engine {
	return g.engine
}

func drawBox(screen *ebiten.Image, b core.Box) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), foreground, false)
}

// Run opens the window, plays until it is closed and records the match.
func Run(opts Options, store *storage.Store) error {
	g := NewGame(opts)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(g.tps)

	started := time.Now()
	if err := ebiten.RunGame(g); err != nil {
		return err
	}

	score := g.engine.Score()
	record := storage.MatchRecord{
		Mode:       g.engine.Mode().String(),
		Player:     "local",
		LeftScore:  score.Left,
		RightScore: score.Right,
		Ticks:      int64(g.engine.Ticks()), //nolint:gosec // tick counts stay far below MaxInt64
		Duration:   time.Since(started),
		PlayedAt:   started,
	}
	if opts.Logger != nil {
		opts.Logger.Info("match finished", "mode", record.Mode, "score", score, "ticks", record.Ticks)
	}
	if err := store.RecordMatch(record); err != nil {
		g.logger.Warn("could not save match", "error", err)
	}
	return nil
}
