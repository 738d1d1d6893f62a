package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultPongConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := []byte("ball:\n  speed: 7\nai:\n  speed: 2.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Ball.Speed != 7 {
		t.Errorf("Ball.Speed = %v, expected 7", cfg.Ball.Speed)
	}
	if cfg.AI.Speed != 2.5 {
		t.Errorf("AI.Speed = %v, expected 2.5", cfg.AI.Speed)
	}
	// Untouched sections keep their defaults
	if cfg.Arena.Width != 800 || cfg.Paddle.Height != 80 {
		t.Errorf("missing fields should keep defaults, got arena %v paddle %v", cfg.Arena.Width, cfg.Paddle.Height)
	}
	if cfg.MaxVY() != 14 {
		t.Errorf("MaxVY() = %v, expected 14", cfg.MaxVY())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("paddle:\n  height: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*PongConfig)
	}{
		{"zero arena", func(c *PongConfig) { c.Arena.Width = 0 }},
		{"paddle taller than arena", func(c *PongConfig) { c.Paddle.Height = 401 }},
		{"paddles overlap", func(c *PongConfig) { c.Paddle.Offset = 395 }},
		{"ball as tall as arena", func(c *PongConfig) { c.Ball.Size = 400 }},
		{"zero ball speed", func(c *PongConfig) { c.Ball.Speed = 0 }},
		{"negative spread", func(c *PongConfig) { c.Ball.ServeSpread = -0.1 }},
		{"negative ai speed", func(c *PongConfig) { c.AI.Speed = -1 }},
		{"zero tick", func(c *PongConfig) { c.Timing.TickMS = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}
