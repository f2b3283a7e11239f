package match3

import (
	"github.com/vovakirdan/tui-match3/internal/engine"
)

// viewCell is one cell of the board as the player currently sees it.
type viewCell struct {
	id    engine.TileID
	kind  int // -1 when empty
	flash bool
}

// view is the displayed board. It trails the engine while a swap is
// being replayed and equals it once the replay has finished.
type view struct {
	width, height int
	cells         []viewCell
	score         int
	combo         int
}

func newView(b *engine.Board, score, combo int) *view {
	v := &view{
		width:  b.Width(),
		height: b.Height(),
		cells:  make([]viewCell, b.Width()*b.Height()),
		score:  score,
		combo:  combo,
	}
	for i := range v.cells {
		v.cells[i].kind = -1
	}
	for _, t := range b.Tiles() {
		v.cells[v.index(t.Pos)] = viewCell{id: t.ID, kind: int(t.Kind)}
	}
	return v
}

func (v *view) index(p engine.Pos) int {
	return p.Row*v.width + p.Col
}

func (v *view) at(p engine.Pos) viewCell {
	return v.cells[v.index(p)]
}

// kinds returns the displayed kinds, bottom row first, -1 for empty.
func (v *view) kinds() [][]int {
	out := make([][]int, v.height)
	for row := range out {
		out[row] = make([]int, v.width)
		for col := range out[row] {
			out[row][col] = v.at(engine.P(col, row)).kind
		}
	}
	return out
}

// clearFlashing empties the cells removed by the previous frame.
func (v *view) clearFlashing() {
	for i := range v.cells {
		if v.cells[i].flash {
			v.cells[i] = viewCell{kind: -1}
		}
	}
}

// apply plays one engine event onto the view.
func (v *view) apply(ev engine.Event) {
	switch e := ev.(type) {
	case engine.TilesSwapped:
		ia, ib := v.index(e.PosA), v.index(e.PosB)
		v.cells[ia], v.cells[ib] = v.cells[ib], v.cells[ia]
	case engine.TilesRemoved:
		removed := make(map[engine.TileID]bool, len(e.IDs))
		for _, id := range e.IDs {
			removed[id] = true
		}
		for i := range v.cells {
			if v.cells[i].kind >= 0 && removed[v.cells[i].id] {
				v.cells[i].flash = true
			}
		}
	case engine.TileFell:
		from, to := v.index(engine.P(e.Col, e.From)), v.index(engine.P(e.Col, e.To))
		v.cells[to] = v.cells[from]
		v.cells[from] = viewCell{kind: -1}
	case engine.TileSpawned:
		v.cells[v.index(e.Pos)] = viewCell{id: e.ID, kind: int(e.Kind)}
	case engine.ScoreChanged:
		v.score = e.Value
	case engine.ComboChanged:
		v.combo = e.Level
	}
}

// frameKind groups events that are shown together.
type frameKind int

const (
	frameSwap frameKind = iota
	frameRemove
	frameFall
	frameSpawn
)

// frame is one step of the replay: it is applied at once and stays on
// screen for StepTicks ticks.
type frame struct {
	kind   frameKind
	events []engine.Event
}

func kindOf(ev engine.Event) (frameKind, bool) {
	switch ev.(type) {
	case engine.TilesSwapped:
		return frameSwap, true
	case engine.TilesRemoved:
		return frameRemove, true
	case engine.TileFell:
		return frameFall, true
	case engine.TileSpawned:
		return frameSpawn, true
	}
	// score and combo changes ride along with the current frame
	return 0, false
}

// buildFrames splits an event list into replay frames: the swap, then per
// wave the removal (with its score and combo), every fall and every spawn.
// Falls and spawns touch disjoint cells within a wave, so grouping them by
// kind does not change the final view.
func buildFrames(events []engine.Event) []frame {
	var frames []frame
	var pending [frameSpawn + 1]*frame
	flush := func() {
		for i, f := range pending {
			if f != nil {
				frames = append(frames, *f)
				pending[i] = nil
			}
		}
	}

	wave := -1
	last := frameSwap
	for _, ev := range events {
		if ev.Wave() != wave {
			flush()
			wave = ev.Wave()
		}
		k, ok := kindOf(ev)
		if !ok {
			k = last
		}
		if pending[k] == nil {
			pending[k] = &frame{kind: k}
		}
		pending[k].events = append(pending[k].events, ev)
		last = k
	}
	flush()
	return frames
}

// applyFrame clears tiles removed by the previous frame and plays the
// frame's events.
func (v *view) applyFrame(f frame) {
	v.clearFlashing()
	for _, ev := range f.events {
		v.apply(ev)
	}
}
