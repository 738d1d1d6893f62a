package pong

import "math"

// Serve recentres the ball and gives it a fresh velocity.
// toward picks the horizontal direction (SideRight means vx > 0); SideNone
// picks it at random. The vertical speed is drawn uniformly from
// [-spread, spread) times the base speed.
func (e *Engine) Serve(toward Side) {
	e.ball.X = math.Floor((e.cfg.Arena.Width - e.ball.W) / 2)
	e.ball.Y = math.Floor((e.cfg.Arena.Height - e.ball.H) / 2)

	spread := e.cfg.Ball.ServeSpread
	angle := e.rnd.Float64()*2*spread - spread

	dir := 1.0
	switch toward {
	case SideLeft:
		dir = -1
	case SideNone:
		if e.rnd.Float64() >= 0.5 {
			dir = -1
		}
	}

	speed := e.cfg.Ball.Speed
	e.vx = dir * speed
	e.vy = speed * angle
	e.emit(Event{Kind: EventServe, Side: sideOf(dir)})
}

func sideOf(dir float64) Side {
	if dir < 0 {
		return SideLeft
	}
	return SideRight
}
