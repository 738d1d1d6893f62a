package pong

import (
	"slices"

	"github.com/vovakirdan/pingpong/internal/core"
)

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventServe      EventKind = iota // Ball recentred; Side is the direction of travel
	EventWallBounce                  // Ball reflected off the top or bottom wall
	EventPaddleHit                   // Ball reflected off the paddle on Side
	EventGoal                        // Side scored a point
	EventReset                       // Scores zeroed by the reset key
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventServe:
		return "serve"
	case EventWallBounce:
		return "wall"
	case EventPaddleHit:
		return "hit"
	case EventGoal:
		return "goal"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported with a Frame.
type Event struct {
	Kind EventKind
	Side Side
}

// Frame is everything a drawing surface needs after a tick.
type Frame struct {
	Tick      uint64
	Arena     core.Box
	Left      core.Box
	Right     core.Box
	Ball      core.Box
	Score     Score
	ScoreText string
	Events    []Event // Events since the previous frame, including key-driven resets
}

// Has reports whether an event of the given kind is in the frame.
func (f Frame) Has(kind EventKind) bool {
	return slices.ContainsFunc(f.Events, func(ev Event) bool {
		return ev.Kind == kind
	})
}

// Goal returns the side that scored during the frame, or SideNone.
func (f Frame) Goal() Side {
	for _, ev := range f.Events {
		if ev.Kind == EventGoal {
			return ev.Side
		}
	}
	return SideNone
}

// Surface receives the frame produced by every Step.
type Surface interface {
	Present(f Frame)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(f Frame)

// Present calls fn(f).
func (fn SurfaceFunc) Present(f Frame) {
	fn(f)
}

// Frame returns the current state without advancing the match.
// Pending events are included but not consumed.
func (e *Engine) Frame() Frame {
	return Frame{
		Tick:      e.tick,
		Arena:     core.NewBox(0, 0, e.cfg.Arena.Width, e.cfg.Arena.Height),
		Left:      e.left,
		Right:     e.right,
		Ball:      e.ball,
		Score:     e.score,
		ScoreText: e.score.String(),
		Events:    slices.Clone(e.events),
	}
}
