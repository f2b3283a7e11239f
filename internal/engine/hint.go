package engine

import (
	"fmt"
	"sort"
)

// Move is a single swap that completes a run: Tile moves From -> To.
type Move struct {
	Tile TileID
	From Pos
	To   Pos
}

// FindMoves lists every swap that completes a run of minRun on a stable board.
//
// It slides a window of minRun cells along every row and column. A window
// where all cells but one (the gap) share a kind can be completed by moving a
// tile of that kind into the gap from a perpendicular neighbour of the gap or,
// when the gap is at either end of the window, from the next cell beyond it.
// For minRun 3 this is the (0,1), (1,2) and (0,2) pair classification.
func FindMoves(b *Board, minRun int) ([]Move, error) {
	if minRun < 2 {
		return nil, fmt.Errorf("%w: minimum run %d", ErrInvalidConfig, minRun)
	}
	if !IsStable(b, minRun) {
		return nil, ErrBoardUnstable
	}

	seen := make(map[Move]bool)
	var moves []Move
	add := func(from, to Pos, want Kind) {
		t := b.at(from)
		if t.Kind != want {
			return
		}
		m := Move{Tile: t.ID, From: from, To: to}
		if !seen[m] {
			seen[m] = true
			moves = append(moves, m)
		}
	}

	for _, axis := range []Axis{AxisRow, AxisColumn} {
		dc, dr := axis.delta()
		// Perpendicular offsets.
		pc, pr := dr, dc

		for row := 0; row < b.height; row++ {
			for col := 0; col < b.width; col++ {
				start := P(col, row)
				end := start.Add(dc*(minRun-1), dr*(minRun-1))
				if !b.InBounds(end) {
					continue
				}
				kind, gap, ok := windowGap(b, start, dc, dr, minRun)
				if !ok {
					continue
				}
				g := start.Add(dc*gap, dr*gap)
				for _, n := range []Pos{g.Add(pc, pr), g.Add(-pc, -pr)} {
					if b.InBounds(n) {
						add(n, g, kind)
					}
				}
				if gap == 0 {
					if n := g.Add(-dc, -dr); b.InBounds(n) {
						add(n, g, kind)
					}
				}
				if gap == minRun-1 {
					if n := g.Add(dc, dr); b.InBounds(n) {
						add(n, g, kind)
					}
				}
			}
		}
	}

	sort.Slice(moves, func(i, j int) bool {
		return lessPos(moves[i].From, moves[j].From) ||
			(moves[i].From == moves[j].From && lessPos(moves[i].To, moves[j].To))
	})
	return moves, nil
}

// windowGap classifies a window: ok is true when exactly one cell (at index
// gap) differs from the shared kind of all the others.
func windowGap(b *Board, start Pos, dc, dr, n int) (kind Kind, gap int, ok bool) {
	kinds := make([]Kind, n)
	for i := range kinds {
		kinds[i] = b.at(start.Add(dc*i, dr*i)).Kind
	}
	for gap = 0; gap < n; gap++ {
		// Reference kind: any cell other than the candidate gap.
		ref := kinds[0]
		if gap == 0 {
			ref = kinds[1]
		}
		if kinds[gap] == ref {
			continue
		}
		same := true
		for i, k := range kinds {
			if i != gap && k != ref {
				same = false
				break
			}
		}
		if same {
			return ref, gap, true
		}
	}
	return 0, 0, false
}

// FindPossibleMoves returns the distinct tiles that can complete a run with
// one swap, in row-major position order.
func FindPossibleMoves(b *Board, minRun int) ([]TileID, error) {
	moves, err := FindMoves(b, minRun)
	if err != nil {
		return nil, err
	}
	var ids []TileID
	seen := make(map[TileID]bool)
	for _, m := range moves {
		if !seen[m.Tile] {
			seen[m.Tile] = true
			ids = append(ids, m.Tile)
		}
	}
	return ids, nil
}

// Hint returns one tile that can complete a run, or false if none can
// (including when the board is not stable). An empty result does not prove
// the board is stuck beyond a single swap.
func Hint(b *Board, minRun int) (TileID, bool) {
	ids, err := FindPossibleMoves(b, minRun)
	if err != nil || len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

func lessPos(a, c Pos) bool {
	if a.Row != c.Row {
		return a.Row < c.Row
	}
	return a.Col < c.Col
}
