package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and stats",
	Long: `Display the best runs with their moves, best combo and seed,
followed by aggregated stats. The seed column can be passed back to
'match3 play --seed' to get the same starting board.

Examples:
  match3 scores
  match3 scores --recent --limit 5
  match3 scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every saved run")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(match3.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagScoresTUI {
		cfg := terminalConfig()
		if _, err := tui.RunScoreboard(store, match3.GameID, "Match 3", cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	title := "High Scores"
	runs, err := store.TopScores(match3.GameID, flagScoresLimit)
	if flagScoresRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(match3.GameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("%s - Match 3\n\n", title)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'match3 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-10s  %-20s  %s\n", "Rank", "Score", "Moves", "Combo", "Player", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-10s  %-20s  %s\n", "----", "-----", "-----", "-----", "------", "----", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  x%-4d  %-10s  %-20d  %s\n",
			i+1, r.Score, r.Moves, r.BestCombo, player, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(match3.GameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.0f  Moves: %d  Best combo: x%d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalMoves, stats.BestCombo)
}
