package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/engine"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagSimMoves   int
	flagSimVerbose bool
	flagSimSave    bool
	flagSimBoard   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play a seeded game headlessly",
	Long: `Play a game without a terminal UI. Each move is picked from the
legal moves with an RNG derived from the seed, so the same seed and
config always produce the same run.

Examples:
  match3 sim --seed 42
  match3 sim --seed 42 --moves 100 --verbose
  match3 sim --seed 7 --difficulty easy --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimMoves, "moves", 50, "Maximum number of swaps")
	simCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log every event")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the run to the database")
	simCmd.Flags().BoolVar(&flagSimBoard, "board", false, "Print the final board")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simResult summarizes a headless run.
type simResult struct {
	Seed      int64
	Swaps     int
	Score     int
	BestCombo int
	Stuck     bool // ended because no move was left
	Board     *engine.Board
}

// simulate plays up to maxMoves swaps. Moves are chosen by an RNG seeded
// independently of the board RNG.
func simulate(cfg engine.Config, seed int64, maxMoves int, logger *log.Logger) (simResult, error) {
	eng, events, err := engine.New(cfg, seed)
	if err != nil {
		return simResult{}, err
	}
	logEvents(logger, 0, events)

	picker := rand.New(rand.NewSource(seed ^ 0x5eed))
	res := simResult{Seed: seed}
	for move := 1; move <= maxMoves; move++ {
		moves := eng.PossibleMoves()
		if len(moves) == 0 {
			logger.Info("no moves left", "after", eng.Swaps())
			res.Stuck = true
			break
		}
		m := moves[picker.Intn(len(moves))]
		logger.Debug("swap", "move", move, "from", m.From, "to", m.To)

		result, err := eng.TrySwap(m.From, m.To)
		if err != nil {
			return res, fmt.Errorf("move %d: %w", move, err)
		}
		if !result.Accepted {
			return res, fmt.Errorf("move %d: hinted swap %v-%v was rejected", move, m.From, m.To)
		}
		logEvents(logger, move, result.Events)
	}

	res.Swaps = eng.Swaps()
	res.Score = eng.Score()
	res.BestCombo = eng.BestCombo()
	res.Board = eng.Board()
	return res, nil
}

func logEvents(logger *log.Logger, move int, events []engine.Event) {
	for _, ev := range events {
		logger.Debug(ev.String(), "move", move, "wave", ev.Wave())
	}
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "match3-sim",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		logger.Fatal("invalid config", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	res, err := simulate(gameCfg.EngineConfig(), seed, flagSimMoves, logger)
	if err != nil {
		logger.Fatal("simulation failed", "seed", seed, "error", err)
	}
	logger.Info("run finished",
		"seed", res.Seed,
		"swaps", res.Swaps,
		"score", res.Score,
		"best_combo", res.BestCombo,
		"stuck", res.Stuck,
	)

	if flagSimBoard {
		fmt.Println(res.Board.String())
	}

	if !flagSimSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("could not open runs database", "error", err)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		GameID:    match3.GameID,
		Player:    "sim",
		Score:     res.Score,
		Seed:      res.Seed,
		Moves:     res.Swaps,
		BestCombo: res.BestCombo,
	})
	if err != nil {
		logger.Error("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "id", id)
}
