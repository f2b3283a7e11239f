package engine

import (
	"fmt"
	"math/rand"
)

// Config holds the board rules.
type Config struct {
	Width     int
	Height    int
	Kinds     int
	MinRun    int
	ScoreBase int
}

// DefaultConfig returns the standard 8x8 board with six kinds.
func DefaultConfig() Config {
	return Config{
		Width:     8,
		Height:    8,
		Kinds:     6,
		MinRun:    DefaultMinRun,
		ScoreBase: DefaultScoreBase,
	}
}

// Validate reports configurations that cannot produce a playable board.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Kinds < MinKinds:
		return fmt.Errorf("%w: need at least %d kinds, got %d", ErrInvalidConfig, MinKinds, c.Kinds)
	case c.Kinds > MaxKinds:
		return fmt.Errorf("%w: at most %d kinds, got %d", ErrInvalidConfig, MaxKinds, c.Kinds)
	case c.MinRun < DefaultMinRun:
		// Pairs appear after nearly every refill, so resolve would not settle
		return fmt.Errorf("%w: minimum run %d, want at least %d", ErrInvalidConfig, c.MinRun, DefaultMinRun)
	case c.MinRun > c.Width && c.MinRun > c.Height:
		return fmt.Errorf("%w: minimum run %d longer than the board", ErrInvalidConfig, c.MinRun)
	}
	return nil
}

// SwapResult is what a player swap produced. Events is empty when the swap
// was rejected.
type SwapResult struct {
	Accepted bool
	Events   []Event
}

// Engine owns one board and its score for a single game session.
// It is not safe for concurrent use.
type Engine struct {
	cfg      Config
	seed     int64
	rng      *rand.Rand
	board    *Board
	score    *ScoreTracker
	resolver *Resolver
	swaps    int
}

// New creates a random board from the seed and settles it. The initial
// board may contain matches; they are cleared by a normal resolve whose
// events (and points) are returned.
func New(cfg Config, seed int64) (*Engine, []Event, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	board, err := NewBoard(cfg.Width, cfg.Height, cfg.Kinds, rng)
	if err != nil {
		return nil, nil, err
	}
	e := newEngine(cfg, seed, rng, board)
	events := e.resolver.Resolve(e.board)
	return e, events, nil
}

// NewFromBoard wraps an existing board. The board is settled first.
func NewFromBoard(cfg Config, seed int64, board *Board) (*Engine, []Event, error) {
	cfg.Width, cfg.Height, cfg.Kinds = board.Width(), board.Height(), board.KindCount()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	e := newEngine(cfg, seed, rand.New(rand.NewSource(seed)), board)
	mustHold("new", board)
	events := e.resolver.Resolve(e.board)
	return e, events, nil
}

func newEngine(cfg Config, seed int64, rng *rand.Rand, board *Board) *Engine {
	score := NewScoreTracker(cfg.ScoreBase)
	return &Engine{
		cfg:   cfg,
		seed:  seed,
		rng:   rng,
		board: board,
		score: score,
		resolver: &Resolver{
			MinRun: cfg.MinRun,
			Rand:   rng,
			Score:  score,
		},
	}
}

// TrySwap attempts a player swap. Malformed requests return an error and
// change nothing. A swap that makes no match is rejected and reverted.
// An accepted swap resets the combo to 1 and resolves the board fully.
func (e *Engine) TrySwap(a, c Pos) (SwapResult, error) {
	outcome, err := TrySwap(e.board, a, c, e.cfg.MinRun)
	if err != nil {
		return SwapResult{}, err
	}
	if !outcome.Accepted {
		mustHold("swap", e.board)
		return SwapResult{}, nil
	}

	e.swaps++
	e.score.ResetCombo()
	ta, tc := e.board.at(a), e.board.at(c)
	events := []Event{
		TilesSwapped{A: ta.ID, B: tc.ID, PosA: a, PosB: c},
		ComboChanged{WaveNo: 0, Level: e.score.Combo()},
	}
	events = append(events, e.resolver.Resolve(e.board)...)
	return SwapResult{Accepted: true, Events: events}, nil
}

// GetHint returns one tile that can complete a run with a single swap.
func (e *Engine) GetHint() (TileID, bool) {
	return Hint(e.board, e.cfg.MinRun)
}

// PossibleMoves lists every single-swap move on the current board.
func (e *Engine) PossibleMoves() []Move {
	moves, err := FindMoves(e.board, e.cfg.MinRun)
	if err != nil {
		return nil
	}
	return moves
}

// Board returns the live board. Callers must not mutate it.
func (e *Engine) Board() *Board { return e.board }

// Config returns the rules the engine was created with.
func (e *Engine) Config() Config { return e.cfg }

// Seed returns the seed the engine was created with.
func (e *Engine) Seed() int64 { return e.seed }

// Score returns the current score.
func (e *Engine) Score() int { return e.score.Score() }

// Combo returns the current combo level.
func (e *Engine) Combo() int { return e.score.Combo() }

// BestCombo returns the highest combo level that scored.
func (e *Engine) BestCombo() int { return e.score.BestCombo() }

// Swaps returns the number of accepted swaps.
func (e *Engine) Swaps() int { return e.swaps }

// Snapshot captures the engine state for determinism testing.
type Snapshot struct {
	Seed      int64
	Score     int
	Combo     int
	BestCombo int
	Swaps     int
	Kinds     [][]int
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Seed:      e.seed,
		Score:     e.score.Score(),
		Combo:     e.score.Combo(),
		BestCombo: e.score.BestCombo(),
		Swaps:     e.swaps,
		Kinds:     e.board.Kinds(),
	}
}
