package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pingpong/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively, then play",
	Long: `Show a mode picker in the terminal and start the chosen match.

Examples:
  pingpong menu`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSession("pingpong")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	mode, ok, err := tui.RunMenu(s.mode, width, height)
	if err != nil || !ok {
		return err
	}

	store := s.openStore()
	if store != nil {
		defer store.Close()
	}

	s.logger.Info("starting match", "mode", mode, "seed", s.runtime.Seed)

	return tui.Run(tui.Options{
		Mode:    mode,
		Tuning:  s.tuning,
		Runtime: s.runtime,
		Width:   width,
		Height:  height,
		Logger:  s.logger,
	}, store)
}
