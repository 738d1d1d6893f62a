// Package config provides YAML-based tuning for the match engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// PongConfig contains all tunable constants of a match.
type PongConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	AI     AIConfig     `yaml:"ai"`
	Timing TimingConfig `yaml:"timing"`
}

// ArenaConfig defines the playfield size.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and keyboard speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Distance from side wall
	Speed  float64 `yaml:"speed"`
}

// BallConfig defines ball size, serve and deflection parameters.
type BallConfig struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	ServeSpread float64 `yaml:"serve_spread"`  // Max |vy|/speed on serve
	Spin        float64 `yaml:"spin"`          // vy gain per unit of hit offset
	MaxVYFactor float64 `yaml:"max_vy_factor"` // |vy| cap as a multiple of Speed
}

// AIConfig defines the tracking speed of the computer paddle.
type AIConfig struct {
	Speed float64 `yaml:"speed"`
}

// TimingConfig defines the nominal tick interval.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// TickInterval returns the nominal duration of one tick.
func (c PongConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// MaxVY returns the vertical speed cap applied after a paddle hit.
func (c PongConfig) MaxVY() float64 {
	return c.Ball.Speed * c.Ball.MaxVYFactor
}

// Validate checks that the geometry leaves room to play.
func (c PongConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive size, got %vx%v", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have positive size, got %vx%v", ErrInvalid, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Height > c.Arena.Height:
		return fmt.Errorf("%w: paddle height %v exceeds arena height %v", ErrInvalid, c.Paddle.Height, c.Arena.Height)
	case c.Paddle.Offset < 0 || 2*(c.Paddle.Offset+c.Paddle.Width) >= c.Arena.Width:
		return fmt.Errorf("%w: paddle offset %v does not fit arena width %v", ErrInvalid, c.Paddle.Offset, c.Arena.Width)
	case c.Ball.Size <= 0 || c.Ball.Size >= c.Arena.Height:
		return fmt.Errorf("%w: ball size %v must be positive and below arena height", ErrInvalid, c.Ball.Size)
	case c.Ball.Speed <= 0:
		return fmt.Errorf("%w: ball speed must be positive, got %v", ErrInvalid, c.Ball.Speed)
	case c.Ball.ServeSpread < 0 || c.Ball.MaxVYFactor <= 0:
		return fmt.Errorf("%w: serve_spread and max_vy_factor must be non-negative and positive", ErrInvalid)
	case c.Paddle.Speed < 0 || c.AI.Speed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalid)
	case c.Timing.TickMS <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, c.Timing.TickMS)
	}
	return nil
}
