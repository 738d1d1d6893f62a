// pingpong is a two-paddle arcade game for the terminal, a desktop window or
// remote players over SSH.
//
// Usage:
//
//	pingpong                 - Play in the terminal against the CPU
//	pingpong -2              - Two players on one keyboard
//	pingpong menu            - Pick a mode, then play
//	pingpong window          - Play in a desktop window
//	pingpong serve           - Start SSH server for remote play
//	pingpong history         - Show recent matches
//	pingpong config          - Print the tuning in effect
//
// Global flags:
//
//	-2, --two-player   - Right paddle on Up/Down instead of the CPU
//	--fps <rate>       - Set tick rate (default: from tick_ms in the tuning file)
//	--seed <value>     - Set RNG seed for reproducible serves
//	--config <path>    - Tuning file (default: ~/.pingpong/pong.yaml)
//	--db <path>        - Set database path (default: ~/.pingpong/history.db)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
	"github.com/vovakirdan/pingpong/internal/platform/tui"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var (
	// Global flags
	flagTwoPlayer bool
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagDBPath    string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pingpong",
	Short: "Ping Pong - two paddles, one ball",
	Long: `Ping Pong is a classic two-paddle game. Run without a subcommand to
play in the terminal.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down (two-player mode)
  R          - Reset the score
  Q/Ctrl+C   - Quit

Examples:
  pingpong
  pingpong -2
  pingpong --seed 42 --fps 30
  pingpong window
  pingpong serve --ssh :2222
  pingpong history -n 5`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().BoolVarP(&flagTwoPlayer, "two-player", "2", false, "Two players on one keyboard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = derived from tick_ms)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pingpong/history.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.SilenceUsage = true

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// session collects what every way of playing needs.
type session struct {
	mode    pong.Mode
	tuning  config.PongConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
}

func newSession(prefix string) (*session, error) {
	logger, err := newLogger(flagLogLevel, prefix)
	if err != nil {
		return nil, err
	}

	tuning, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	mode := pong.ModeSinglePlayer
	if flagTwoPlayer {
		mode = pong.ModeTwoPlayer
	}

	return &session{
		mode:    mode,
		tuning:  tuning,
		runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		logger:  logger,
	}, nil
}

// openStore opens match history. Failures only cost the history, so they are
// logged and play continues without a store.
func (s *session) openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		s.logger.Warn("could not open history database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession("pingpong")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := s.openStore()
	if store != nil {
		defer store.Close()
	}

	s.logger.Info("starting match", "mode", s.mode, "seed", s.runtime.Seed, "size", fmt.Sprintf("%dx%d", width, height))

	return tui.Run(tui.Options{
		Mode:    s.mode,
		Tuning:  s.tuning,
		Runtime: s.runtime,
		Width:   width,
		Height:  height,
		Logger:  s.logger,
	}, store)
}
