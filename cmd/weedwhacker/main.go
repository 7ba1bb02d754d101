// weedwhacker is a terminal garden game: keep your land clear of weeds,
// earn money for every tidy tile, and buy the land around you.
//
// Usage:
//
//	weedwhacker play            - Start a garden in this terminal
//	weedwhacker catalog         - List tools, weeds and weather
//	weedwhacker scores          - Show the best gardens
//	weedwhacker serve           - Host gardens over SSH
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible gardens
//	--db <path>         - Set database path (default: ~/.weedwhacker/weedwhacker.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weedwhacker",
	Short: "Weed Whacker - tend a garden in your terminal",
	Long: `Weed Whacker is a terminal garden game. Weeds keep sprouting on your
land; chop them down, earn money for every clear tile and buy the land
around you. Better tools chop harder and reach further, and the weather
changes how fast everything happens.

Available commands:
  play     - Start a garden
  catalog  - Show tools, weeds and weather events
  scores   - View the best and most recent gardens
  serve    - Start SSH server for remote play

Examples:
  weedwhacker play
  weedwhacker play --preset hard --weather rainy
  weedwhacker catalog
  weedwhacker scores --name ana
  weedwhacker serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.weedwhacker/weedwhacker.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
