// Package match3 is the playable match-3 game: it drives the puzzle engine
// from cursor and pointer input, replays the engine's events over several
// ticks and only accepts the next swap once the board on screen has settled.
package match3

import (
	"errors"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// GameID is the registry and score-store id.
const GameID = "match3"

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game for the match-3 board.
type Game struct {
	fixed  *config.Match3Config // set by NewWithConfig; otherwise loaded on Reset
	preset config.DifficultyPreset
	cfg    config.Match3Config
	eng    *engine.Engine
	seed   int64
	tick   uint64

	screenW int
	screenH int
	layout  layout

	cursor   engine.Pos
	selected engine.Pos
	hasSel   bool

	view       *view
	replay     []frame
	frameTicks int

	idleTicks int
	hint      engine.TileID
	showHint  bool
	hintsUsed int

	message      string
	messageTicks int

	paused   bool
	gameOver bool
	tooSmall bool
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed config.
func NewWithConfig(cfg config.Match3Config) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Match 3"
}

// Reset starts a new board from rt.Seed.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.cfg = g.loadConfig()

	eng, _, err := engine.New(g.cfg.EngineConfig(), rt.Seed)
	if err != nil {
		g.cfg = config.DefaultMatch3Config()
		eng, _, _ = engine.New(g.cfg.EngineConfig(), rt.Seed)
	}

	g.begin(eng, rt)
}

// begin starts play on a settled engine.
func (g *Game) begin(eng *engine.Engine, rt core.RuntimeConfig) {
	g.eng = eng
	g.seed = eng.Seed()
	g.tick = 0
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH

	w, h := eng.Board().Width(), eng.Board().Height()
	g.layout = newLayout(w, h, rt.ScreenW, rt.ScreenH)
	g.tooSmall = !g.layout.fits

	g.cursor = engine.P(w/2, h/2)
	g.hasSel = false
	g.view = newView(eng.Board(), eng.Score(), eng.Combo())
	g.replay = nil
	g.frameTicks = 0
	g.idleTicks = 0
	g.showHint = false
	g.hintsUsed = 0
	g.message = ""
	g.messageTicks = 0
	g.paused = false
	g.gameOver = false

	g.checkMoves()
}

func (g *Game) loadConfig() config.Match3Config {
	if g.fixed != nil {
		return *g.fixed
	}
	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		cfg = config.DefaultMatch3Config()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		if err := config.ApplyMatch3Preset(&cfg, preset); err != nil {
			return config.DefaultMatch3Config()
		}
	}
	return cfg
}

// SetDifficulty overrides the package preset for this game.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// Resize moves the board to fit a new screen size. Play continues.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
	g.layout = newLayout(g.layout.width, g.layout.height, width, height)
	g.tooSmall = !g.layout.fits
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	// Input is gated until the replay has settled
	if g.busy() {
		g.advanceReplay()
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Empty() {
		g.idle()
	} else {
		g.idleTicks = 0
		g.showHint = false
		g.handleInput(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) busy() bool {
	return len(g.replay) > 0
}

func (g *Game) handleInput(in core.InputFrame) {
	w, h := g.eng.Board().Width(), g.eng.Board().Height()

	if in.Click != nil {
		if p, ok := g.layout.cellAt(*in.Click); ok {
			g.cursor = p
			g.pick(p)
		}
		return
	}

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, h-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, h-1)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, w-1)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, w-1)
	}

	switch {
	case in.Has(core.ActionSelect):
		g.pick(g.cursor)
	case in.Has(core.ActionCancel):
		g.hasSel = false
	case in.Has(core.ActionHint):
		g.hintsUsed++
		g.revealHint()
	}
}

// pick applies the selection rules: the first pick marks a cell, picking it
// again clears the mark, an adjacent pick swaps, and any other pick moves
// the mark.
func (g *Game) pick(p engine.Pos) {
	switch {
	case !g.hasSel:
		g.selected = p
		g.hasSel = true
	case g.selected == p:
		g.hasSel = false
	case g.eng.Board().IsAdjacent(g.selected, p):
		g.swap(g.selected, p)
	default:
		g.selected = p
	}
}

func (g *Game) swap(a, c engine.Pos) {
	g.hasSel = false

	res, err := g.eng.TrySwap(a, c)
	switch {
	case errors.Is(err, engine.ErrCellEmpty):
		g.flash("Nothing to swap there")
		return
	case err != nil:
		g.flash("Cannot swap those tiles")
		return
	case !res.Accepted:
		g.flash("No match")
		return
	}

	g.replay = buildFrames(res.Events)
	g.applyNextFrame()
}

func (g *Game) advanceReplay() {
	g.frameTicks++
	if g.frameTicks >= g.cfg.Presentation.StepTicks {
		g.applyNextFrame()
	}
}

func (g *Game) applyNextFrame() {
	f := g.replay[0]
	g.replay = g.replay[1:]
	g.frameTicks = 0
	g.view.applyFrame(f)

	if !g.busy() {
		g.checkMoves()
	}
}

// checkMoves ends the game when the settled board has no single-swap move.
func (g *Game) checkMoves() {
	if len(g.eng.PossibleMoves()) == 0 {
		g.gameOver = true
		g.hasSel = false
	}
}

func (g *Game) idle() {
	delay := g.cfg.Presentation.HintIdleTicks
	if delay <= 0 || g.showHint {
		return
	}
	g.idleTicks++
	if g.idleTicks >= delay {
		g.revealHint()
	}
}

func (g *Game) revealHint() {
	id, ok := g.eng.GetHint()
	if !ok {
		return
	}
	g.hint = id
	g.showHint = true
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = g.cfg.Presentation.MessageTicks
}

// State returns the current game state. The score is the engine's, which
// runs ahead of the replayed HUD value.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eng.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
		Busy:     g.busy(),
	}
}

// Seed returns the seed of the current board.
func (g *Game) Seed() int64 { return g.seed }

// Moves returns the number of accepted swaps.
func (g *Game) Moves() int { return g.eng.Swaps() }

// BestCombo returns the highest combo level that scored.
func (g *Game) BestCombo() int { return g.eng.BestCombo() }

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Space: pick  ?: hint  P: pause  R: restart  Q: quit"
}

var (
	_ registry.RunStats  = (*Game)(nil)
	_ registry.Resizable = (*Game)(nil)
	_ registry.Tunable   = (*Game)(nil)
)
