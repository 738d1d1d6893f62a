package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default tuning, matching defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 400,
		},
		Paddle: PaddleConfig{
			Width:  10,
			Height: 80,
			Offset: 20,
			Speed:  6,
		},
		Ball: BallConfig{
			Size:        16,
			Speed:       5,
			ServeSpread: 0.6,
			Spin:        3,
			MaxVYFactor: 2,
		},
		AI: AIConfig{
			Speed: 4,
		},
		Timing: TimingConfig{
			TickMS: 16,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
