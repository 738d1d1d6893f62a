package pong

import "github.com/vovakirdan/pingpong/internal/core"

// movePaddle applies keyboard flags to a paddle. Both flags are evaluated
// against the position at the start of the tick, so holding both keys away
// from the walls cancels out.
func (e *Engine) movePaddle(p *core.Box, up, down bool) {
	speed := e.cfg.Paddle.Speed
	top, bottom := p.Y, p.Bottom()

	if up && top > 0 {
		p.Y -= speed
	}
	if down && bottom < e.cfg.Arena.Height {
		p.Y += speed
	}
	e.clampPaddle(p)
}

// trackBall moves the right paddle toward the ball's centre line, by at most
// the AI speed per tick and never past the ball.
func (e *Engine) trackBall() {
	p := &e.right
	ballCY := e.ball.CenterY()
	paddleCY := p.CenterY()

	if paddleCY < ballCY && p.Bottom() < e.cfg.Arena.Height {
		p.Y += min(e.cfg.AI.Speed, ballCY-paddleCY)
	} else if paddleCY > ballCY && p.Y > 0 {
		p.Y -= min(e.cfg.AI.Speed, paddleCY-ballCY)
	}
	e.clampPaddle(p)
}

// clampPaddle keeps the paddle inside [0, H-PH].
func (e *Engine) clampPaddle(p *core.Box) {
	p.Y = core.ClampF(p.Y, 0, e.cfg.Arena.Height-p.H)
}

// updateBall integrates the ball and resolves walls, paddles and goals.
func (e *Engine) updateBall() {
	e.ball = e.ball.Translate(e.vx, e.vy)

	// Bounce off top/bottom walls
	if e.ball.Y <= 0 && e.vy < 0 {
		e.vy = -e.vy
		e.emit(Event{Kind: EventWallBounce})
	}
	if e.ball.Bottom() >= e.cfg.Arena.Height && e.vy > 0 {
		e.vy = -e.vy
		e.emit(Event{Kind: EventWallBounce})
	}

	// Paddles only reflect a ball travelling toward them
	if e.ball.Overlaps(e.left) && e.vx < 0 {
		e.vx = -e.vx
		e.deflect(e.left)
		e.emit(Event{Kind: EventPaddleHit, Side: SideLeft})
	}
	if e.ball.Overlaps(e.right) && e.vx > 0 {
		e.vx = -e.vx
		e.deflect(e.right)
		e.emit(Event{Kind: EventPaddleHit, Side: SideRight})
	}

	// Left exit is checked first; only one goal per tick
	if e.ball.X <= 0 {
		e.score.Right++
		e.emit(Event{Kind: EventGoal, Side: SideRight})
		e.Serve(SideRight)
	} else if e.ball.Right() >= e.cfg.Arena.Width {
		e.score.Left++
		e.emit(Event{Kind: EventGoal, Side: SideLeft})
		e.Serve(SideLeft)
	}
}

// deflect adds spin from where the ball struck the paddle and caps |vy|.
func (e *Engine) deflect(paddle core.Box) {
	offset := (e.ball.CenterY() - paddle.CenterY()) / (paddle.H / 2)
	e.vy += offset * e.cfg.Ball.Spin

	maxVY := e.cfg.MaxVY()
	e.vy = core.ClampF(e.vy, -maxVY, maxVY)
}
