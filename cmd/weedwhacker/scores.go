package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/weed-whacker/internal/platform/tui"
	"github.com/vovakirdan/weed-whacker/internal/storage"
)

var (
	flagScoresName  string
	flagScoresLimit int
	flagRecent      bool
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best gardens",
	Long: `Display stored garden results, ranked by land owned then money.

Examples:
  weedwhacker scores
  weedwhacker scores --name ana
  weedwhacker scores --recent --limit 5
  weedwhacker scores -i
  weedwhacker scores --clear --name ana`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresName, "name", "", "Only show this player's gardens")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of gardens to list")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent gardens instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete stored results (only --name's when given)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a full-screen table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening results database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(flagScoresName); err != nil {
			return err
		}
		if flagScoresName == "" {
			fmt.Println("Cleared all results.")
		} else {
			fmt.Printf("Cleared results for %s.\n", flagScoresName)
		}
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flagScoresName, width, height)
	}

	var sessions []storage.SessionResult
	if flagRecent {
		fmt.Println("Recent Gardens")
		sessions, err = store.RecentSessions(flagScoresLimit)
	} else {
		fmt.Println("Best Gardens")
		sessions, err = store.TopSessions(flagScoresName, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving results: %w", err)
	}
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No gardens recorded yet.")
		fmt.Println()
		fmt.Println("Play 'weedwhacker play' to claim some land!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %5s  %7s  %7s  %8s  %s\n", "Rank", "Player", "Land", "Money", "Cleared", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %5s  %7s  %7s  %8s  %s\n", "----", "------", "----", "-----", "-------", "----", "----")
	for i, s := range sessions {
		player := s.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %5d  %7s  %7d  %8s  %s\n",
			i+1, player, s.TilesOwned, fmt.Sprintf("$%d", s.Money), s.WeedsCleared,
			s.Duration.Round(time.Second).String(), s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestTiles(flagScoresName); err == nil {
		fmt.Printf("Most land: %d tiles\n", best)
	}
	return nil
}
