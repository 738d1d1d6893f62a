package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pingpong/internal/platform/tui"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryPlayer string
	flagHistoryBrowse bool
	flagHistoryID     int64
	flagHistoryClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent matches",
	Long: `Display recently finished matches and overall totals.

Examples:
  pingpong history
  pingpong history -n 5
  pingpong history --player alice
  pingpong history --browse
  pingpong history --id 12
  pingpong history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of matches to show")
	historyCmd.Flags().StringVar(&flagHistoryPlayer, "player", "", "Only show matches by this player")
	historyCmd.Flags().BoolVarP(&flagHistoryBrowse, "browse", "i", false, "Browse history interactively")
	historyCmd.Flags().Int64Var(&flagHistoryID, "id", 0, "Show a single match by ID")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded matches")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Println("Match history cleared.")
		return nil

	case flagHistoryID > 0:
		return showMatch(store, flagHistoryID)
	}

	if flagHistoryBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(store, width, height)
	}

	var matches []storage.MatchRecord
	if flagHistoryPlayer != "" {
		matches, err = store.PlayerMatches(flagHistoryPlayer, flagHistoryLimit)
	} else {
		matches, err = store.RecentMatches(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println("Recent Matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pingpong' to play the first one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-10s  %-10s  %-7s  %-6s  %s\n", "Date", "Mode", "Player", "Score", "Winner", "Length")
	fmt.Printf("  %-16s  %-10s  %-10s  %-7s  %-6s  %s\n", "----", "----", "------", "-----", "------", "------")

	for _, m := range matches {
		fmt.Printf("  %-16s  %-10s  %-10s  %-7s  %-6s  %s\n",
			m.PlayedAt.Local().Format("2006-01-02 15:04"),
			m.Mode,
			m.Player,
			fmt.Sprintf("%d-%d", m.LeftScore, m.RightScore),
			m.Winner(),
			m.Duration.Round(time.Second),
		)
	}

	totals, err := store.Totals()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Matches: %d  Left wins: %d  Right wins: %d  Draws: %d  Goals: %d\n",
		totals.Matches, totals.LeftWins, totals.RightWins, totals.Draws, totals.Goals)
	return nil
}

// showMatch prints one recorded match in detail.
func showMatch(store *storage.Store, id int64) error {
	m, err := store.MatchByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("no match with id %d", id)
	}

	fmt.Printf("Match #%d\n\n", m.ID)
	fmt.Printf("  %-8s %s\n", "Played", m.PlayedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("  %-8s %s\n", "Mode", m.Mode)
	fmt.Printf("  %-8s %s\n", "Player", m.Player)
	fmt.Printf("  %-8s %d    %d\n", "Score", m.LeftScore, m.RightScore)
	fmt.Printf("  %-8s %s\n", "Winner", m.Winner())
	fmt.Printf("  %-8s %s (%d ticks)\n", "Length", m.Duration.Round(time.Second), m.Ticks)
	return nil
}
