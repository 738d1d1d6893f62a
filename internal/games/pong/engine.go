// Package pong implements the two-paddle match engine.
// Player 1 owns the left paddle; the right paddle belongs to Player 2 or,
// in single-player mode, to a tracking AI. The engine holds all mutable match
// state and is advanced one tick at a time by a host-owned scheduler.
package pong

import (
	"fmt"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
)

// Mode selects who drives the right paddle. It is fixed for an engine's lifetime.
type Mode int

const (
	ModeSinglePlayer Mode = iota // Right paddle driven by the AI
	ModeTwoPlayer                // Right paddle driven by Up/Down
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSinglePlayer:
		return "vs CPU"
	case ModeTwoPlayer:
		return "two-player"
	default:
		return "unknown"
	}
}

// Side identifies a paddle, a scorer or a serve direction.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Score holds both players' points.
type Score struct {
	Left  int
	Right int
}

// String renders the score line shown above the net.
func (s Score) String() string {
	return fmt.Sprintf("%d    %d", s.Left, s.Right)
}

// Rand is the random source used for serves. *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// Engine owns the state of one match.
type Engine struct {
	cfg  config.PongConfig
	mode Mode
	rnd  Rand

	left  core.Box
	right core.Box
	ball  core.Box
	vx    float64
	vy    float64

	score   Score
	input   core.InputState
	tick    uint64
	events  []Event
	surface Surface
}

// New creates a match with centred paddles and a ball served in a random direction.
// cfg is expected to have passed Validate.
func New(cfg config.PongConfig, mode Mode, rnd Rand) *Engine {
	w, h := cfg.Arena.Width, cfg.Arena.Height
	paddleY := (h - cfg.Paddle.Height) / 2

	e := &Engine{
		cfg:   cfg,
		mode:  mode,
		rnd:   rnd,
		left:  core.NewBox(cfg.Paddle.Offset, paddleY, cfg.Paddle.Width, cfg.Paddle.Height),
		right: core.NewBox(w-cfg.Paddle.Offset-cfg.Paddle.Width, paddleY, cfg.Paddle.Width, cfg.Paddle.Height),
		ball:  core.NewBox(0, 0, cfg.Ball.Size, cfg.Ball.Size),
	}
	e.Serve(SideNone)
	return e
}

// Attach sets the surface that receives a Frame after every Step.
// A nil surface detaches.
func (e *Engine) Attach(s Surface) {
	e.surface = s
}

// HandleKey applies a key press or release.
// Movement keys overwrite their flag; reset acts on press only.
// Unrecognized keys are ignored.
func (e *Engine) HandleKey(k core.Key, pressed bool) {
	if k == core.KeyReset {
		if pressed {
			e.ResetMatch()
		}
		return
	}
	e.input.Set(k, pressed)
}

// ResetMatch zeroes both scores and serves in a random direction.
func (e *Engine) ResetMatch() {
	e.score = Score{}
	e.emit(Event{Kind: EventReset})
	e.Serve(SideNone)
}

// Step advances the match by one tick, presents the resulting frame to the
// attached surface and returns it.
func (e *Engine) Step() Frame {
	e.tick++

	e.movePaddle(&e.left, e.input.P1Up, e.input.P1Down)
	if e.mode == ModeTwoPlayer {
		e.movePaddle(&e.right, e.input.P2Up, e.input.P2Down)
	} else {
		e.trackBall()
	}
	e.updateBall()

	f := e.Frame()
	e.events = e.events[:0]
	if e.surface != nil {
		e.surface.Present(f)
	}
	return f
}

// Mode returns the match mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Config returns the tuning the engine was built with.
func (e *Engine) Config() config.PongConfig {
	return e.cfg
}

// Score returns the current score.
func (e *Engine) Score() Score {
	return e.score
}

// Input returns the current paddle flags.
func (e *Engine) Input() core.InputState {
	return e.input
}

// Ticks returns the number of steps taken.
func (e *Engine) Ticks() uint64 {
	return e.tick
}

// Ball returns the ball's bounding box.
func (e *Engine) Ball() core.Box {
	return e.ball
}

// Velocity returns the ball's velocity in units per tick.
func (e *Engine) Velocity() (vx, vy float64) {
	return e.vx, e.vy
}

// Paddle returns the bounding box of the given paddle.
func (e *Engine) Paddle(side Side) core.Box {
	if side == SideRight {
		return e.right
	}
	return e.left
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}
