package match3

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateReplaying   GameStateType = "replaying"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Seed      int64
	Score     int // engine score
	Shown     int // score on the HUD, behind Score while replaying
	Combo     int
	BestCombo int
	Moves     int
	Hints     int     // hints asked for
	Pending   int     // replay frames not yet shown
	Board     [][]int // engine board, bottom row first, -1 for empty
	View      [][]int // displayed board
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.busy():
		state = StateReplaying
	case g.gameOver:
		state = StateGameOver
	}

	return Snapshot{
		Tick:      g.tick,
		Seed:      g.seed,
		Score:     g.eng.Score(),
		Shown:     g.view.score,
		Combo:     g.eng.Combo(),
		BestCombo: g.eng.BestCombo(),
		Moves:     g.eng.Swaps(),
		Hints:     g.hintsUsed,
		Pending:   len(g.replay),
		Board:     g.eng.Board().Kinds(),
		View:      g.view.kinds(),
		State:     state,
	}
}
