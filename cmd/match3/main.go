// match3 is a terminal match-3 puzzle game.
//
// Usage:
//
//	match3 play              - Play a game
//	match3 menu              - Start menu with difficulty picker and scores
//	match3 sim               - Play a seeded game headlessly and log its events
//	match3 serve             - Start SSH server for remote play
//	match3 scores            - Show high scores and stats
//	match3 config            - Print or write the default config
//	match3 list              - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for a reproducible board
//	--db <path>     - Set database path (default: ~/.arcade/match3.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match 3 - swap tiles, clear runs, chain combos",
	Long: `Match 3 is a terminal puzzle game. Swap two neighbouring tiles to
line up three or more of a kind; cleared tiles fall and new ones drop in,
and every cascade raises the combo multiplier.

Available commands:
  play     - Play a game directly
  menu     - Start menu with difficulty picker and scores
  sim      - Play a seeded game headlessly
  serve    - Start SSH server for remote play
  scores   - View high scores and stats
  config   - Print or write the default config

Examples:
  match3 play
  match3 play --seed 42 --difficulty hard
  match3 sim --seed 42 --moves 20 --verbose
  match3 serve --ssh :2222
  match3 scores --recent`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
