package engine

import "fmt"

// Resolver drains a board to a stable state.
type Resolver struct {
	MinRun int
	Rand   Rand
	Score  *ScoreTracker
}

// maxWaves bounds a resolve. Real cascades end after a handful of waves;
// hitting the bound means the loop is not converging.
func maxWaves(b *Board) int {
	return b.width * b.height * b.kindCount
}

// Resolve repeatedly removes matches, applies gravity and refills until no
// match is left. The returned events are complete and ordered; the combo
// level keeps rising across the waves of one call.
func (r *Resolver) Resolve(b *Board) []Event {
	var events []Event
	limit := maxWaves(b)

	for wave := 1; ; wave++ {
		matches := FindMatches(b, r.MinRun)
		if matches.Empty() {
			break
		}
		if wave > limit {
			panic(&InvariantError{Op: "resolve", Detail: fmt.Sprintf("no fixpoint after %d waves", limit)})
		}

		events = append(events, r.remove(b, matches, wave)...)

		gained := r.Score.OnMatches(matches.Groups)
		events = append(events, ScoreChanged{WaveNo: wave, Value: r.Score.Score(), Gained: gained})
		events = append(events, ComboChanged{WaveNo: wave, Level: r.Score.NextWave()})

		// Gravity settles every column before any refill
		for col := 0; col < b.width; col++ {
			events = append(events, r.collapse(b, col, wave)...)
		}
		for col := 0; col < b.width; col++ {
			events = append(events, r.refill(b, col, wave)...)
		}
	}

	mustHold("resolve", b)
	return events
}

// remove empties every cell in the removal set.
func (r *Resolver) remove(b *Board, m Matches, wave int) []Event {
	for _, p := range m.Removal {
		b.cells[b.index(p)] = nil
	}
	return []Event{TilesRemoved{WaveNo: wave, IDs: sortedIDs(m.Removal)}}
}

// collapse compacts a column toward row 0 keeping relative order.
func (r *Resolver) collapse(b *Board, col, wave int) []Event {
	var events []Event
	write := 0
	for row := 0; row < b.height; row++ {
		t := b.at(P(col, row))
		if t == nil {
			continue
		}
		if row != write {
			b.cells[b.index(P(col, row))] = nil
			b.cells[b.index(P(col, write))] = t
			t.Pos = P(col, write)
			events = append(events, TileFell{WaveNo: wave, ID: t.ID, Col: col, From: row, To: write})
		}
		write++
	}
	return events
}

// refill spawns tiles into the empty top of a column, bottom to top.
func (r *Resolver) refill(b *Board, col, wave int) []Event {
	var events []Event
	for row := 0; row < b.height; row++ {
		if b.at(P(col, row)) != nil {
			continue
		}
		t := b.spawn(P(col, row), Kind(r.Rand.Intn(b.kindCount)))
		events = append(events, TileSpawned{WaveNo: wave, ID: t.ID, Kind: t.Kind, Pos: t.Pos})
	}
	return events
}
