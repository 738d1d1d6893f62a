package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x400 window and play there instead of the terminal.

The window reports real key releases, so paddles stop the moment a key is
let go. Press Esc or close the window to quit.

Examples:
  pingpong window
  pingpong window -2`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := newSession("pingpong-window")
	if err != nil {
		return err
	}

	store := s.openStore()
	if store != nil {
		defer store.Close()
	}

	s.logger.Info("opening window", "mode", s.mode, "seed", s.runtime.Seed)

	return window.Run(window.Options{
		Mode:    s.mode,
		Tuning:  s.tuning,
		Runtime: s.runtime,
		Logger:  s.logger,
	}, store)
}
