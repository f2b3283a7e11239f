package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Event is one discrete fact produced by a swap or a resolve, in the order
// it happened. Presenters replay them; the engine never waits on them.
type Event interface {
	// Wave returns the cascade wave the event belongs to.
	// Zero is the swap itself, waves count from one.
	Wave() int
	String() string
}

// TilesRemoved is emitted once per wave with every tile that matched.
type TilesRemoved struct {
	WaveNo int
	IDs    []TileID
}

// TileFell is emitted for every tile moved down by gravity.
type TileFell struct {
	WaveNo int
	ID     TileID
	Col    int
	From   int // row before the fall
	To     int // row after the fall, always lower
}

// TileSpawned is emitted for every tile created by refill.
type TileSpawned struct {
	WaveNo int
	ID     TileID
	Kind   Kind
	Pos    Pos
}

// ScoreChanged carries the new total after a wave was scored.
type ScoreChanged struct {
	WaveNo int
	Value  int
	Gained int
}

// ComboChanged carries the new combo level.
type ComboChanged struct {
	WaveNo int
	Level  int
}

// TilesSwapped is emitted first when a player swap is accepted.
type TilesSwapped struct {
	A, B       TileID
	PosA, PosB Pos // positions after the swap
}

func (e TilesRemoved) Wave() int { return e.WaveNo }
func (e TileFell) Wave() int     { return e.WaveNo }
func (e TileSpawned) Wave() int  { return e.WaveNo }
func (e ScoreChanged) Wave() int { return e.WaveNo }
func (e ComboChanged) Wave() int { return e.WaveNo }
func (e TilesSwapped) Wave() int { return 0 }

func (e TilesRemoved) String() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("removed [%s]", strings.Join(ids, " "))
}

func (e TileFell) String() string {
	return fmt.Sprintf("tile %d fell in column %d from row %d to %d", e.ID, e.Col, e.From, e.To)
}

func (e TileSpawned) String() string {
	return fmt.Sprintf("tile %d spawned kind %d at %v", e.ID, e.Kind, e.Pos)
}

func (e ScoreChanged) String() string {
	return fmt.Sprintf("score %d (+%d)", e.Value, e.Gained)
}

func (e ComboChanged) String() string {
	return fmt.Sprintf("combo x%d", e.Level)
}

func (e TilesSwapped) String() string {
	return fmt.Sprintf("swapped tile %d to %v and tile %d to %v", e.A, e.PosA, e.B, e.PosB)
}

// sortedIDs returns the removal set's ids in ascending order.
func sortedIDs(removal map[TileID]Pos) []TileID {
	ids := make([]TileID, 0, len(removal))
	for id := range removal {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Waves returns the number of cascade waves in an event list.
func Waves(events []Event) int {
	n := 0
	for _, e := range events {
		if e.Wave() > n {
			n = e.Wave()
		}
	}
	return n
}
