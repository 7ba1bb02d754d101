package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/weed-whacker/internal/config"
	"github.com/vovakirdan/weed-whacker/internal/core"
	"github.com/vovakirdan/weed-whacker/internal/game"
	"github.com/vovakirdan/weed-whacker/internal/platform/tui"
	"github.com/vovakirdan/weed-whacker/internal/storage"
)

var (
	flagName    string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a garden",
	Long: `Start a garden in this terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Chop the weeds in reach
  Tab          - Select the next piece of land for sale
  B            - Buy the selected land
  I            - Open/close the shop
  E/Enter/X    - Equip, buy, sell the highlighted tool (shop)
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit and save the result

Difficulty presets:
  easy   - Slower weeds, more income, a little starting money
  normal - Config values as loaded
  hard   - Faster weeds, less income, pricier land, more weather

Examples:
  weedwhacker play
  weedwhacker play --preset easy --name ana
  weedwhacker play --weather drought --seed 42
  weedwhacker play --config ./my-garden.yaml --catalog ./my-tools.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGardenFlags(playCmd)
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the leaderboard (default: OS user)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (e.g. ~/.weedwhacker/weedwhacker.log)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Never log to the terminal the game draws on
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, game.ID)
	if err != nil {
		return err
	}

	opts, err := gameOptions(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g, err := game.New(opts, rc)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the garden still works
		store = nil
	}

	result, runErr := tui.Run(g, store, rc, playerName(), logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}

	if result != nil {
		printResult(*result)
	}
	return nil
}

// playerName returns --name, falling back to the OS user.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

func printResult(r storage.SessionResult) {
	fmt.Println("Garden finished")
	fmt.Println()
	fmt.Printf("  Land owned     %d (%d bought)\n", r.TilesOwned, r.TilesPurchased)
	fmt.Printf("  Money          $%d\n", r.Money)
	fmt.Printf("  Weeds cleared  %d of %d\n", r.WeedsCleared, r.WeedsSpawned)
	fmt.Printf("  Tools broken   %d\n", r.ToolsBroken)
	fmt.Printf("  Played         %s\n", r.Duration.Round(time.Second))
	fmt.Printf("  Seed           %d\n", r.Seed)
}
