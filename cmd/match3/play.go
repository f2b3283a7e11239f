package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagReplay     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of match 3.

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Space/Enter      - Pick a tile; pick a neighbour to swap
  Mouse click      - Pick the clicked tile
  X                - Drop the current pick
  ?                - Show a hint
  P                - Pause
  R                - Restart with a new board
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 tile kinds, early hints
  normal - 6 tile kinds
  hard   - 7 tile kinds, late hints
  fixed  - Use the config's board values as written

Examples:
  match3 play
  match3 play --difficulty hard
  match3 play --seed 42
  match3 play --replay 7f1c0d9e-5d6b-4c44-9a51-0b3f3b2b6c11
  match3 play --config ./my-match3.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagReplay, "replay", "", "Start from the board of a saved run (run id)")
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame applies the --config and --difficulty flags.
func configureGame() error {
	match3.SetConfigPath(flagConfig)
	if err := match3.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := loadGameConfig(); err != nil {
			return err
		}
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := terminalConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	if flagReplay != "" {
		seed, err := replaySeed(store, flagReplay)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Seed = seed
	}

	game, err := registry.Create(match3.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	_, runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// replaySeed looks up the seed of a saved run.
func replaySeed(store *storage.Store, runID string) (int64, error) {
	if store == nil {
		return 0, fmt.Errorf("cannot replay %s without the runs database", runID)
	}
	run, err := store.RunByID(runID)
	if err != nil {
		return 0, err
	}
	if run == nil {
		return 0, fmt.Errorf("no run with id %s", runID)
	}
	if run.Seed == 0 {
		return 0, fmt.Errorf("run %s has no recorded seed", runID)
	}
	return run.Seed, nil
}
