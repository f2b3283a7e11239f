package engine

import (
	"errors"
	"math/rand"
	"testing"
)

// scriptedRand returns a fixed sequence of values, then zeros.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls++
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// mustBoard builds a board from rows written top row first, one letter per
// kind ('A' = 0) and '.' for an empty cell.
func mustBoard(t *testing.T, kinds int, rows ...string) *Board {
	t.Helper()
	grid := make([][]int, len(rows))
	for i, line := range rows {
		row := make([]int, len(line))
		for col, ch := range line {
			if ch == '.' {
				row[col] = -1
			} else {
				row[col] = int(ch - 'A')
			}
		}
		grid[len(rows)-1-i] = row
	}
	b, err := NewBoardFromKinds(grid, kinds)
	if err != nil {
		t.Fatalf("NewBoardFromKinds() failed: %v", err)
	}
	return b
}

func TestNewBoardFillsEveryCell(t *testing.T) {
	b, err := NewBoard(8, 8, 6, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	if b.Width() != 8 || b.Height() != 8 {
		t.Errorf("expected 8x8 board, got %dx%d", b.Width(), b.Height())
	}
	if b.EmptyCount() != 0 {
		t.Errorf("expected no empty cells, got %d", b.EmptyCount())
	}
	if err := b.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() = %v", err)
	}

	ids := make(map[TileID]bool)
	for _, tile := range b.Tiles() {
		if ids[tile.ID] {
			t.Errorf("duplicate tile id %d", tile.ID)
		}
		ids[tile.ID] = true
		if int(tile.Kind) >= 6 {
			t.Errorf("tile %d has kind %d outside alphabet", tile.ID, tile.Kind)
		}
	}
	if len(ids) != 64 {
		t.Errorf("expected 64 distinct tiles, got %d", len(ids))
	}
}

func TestNewBoardInvalidConfig(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		kinds         int
	}{
		{"zero width", 0, 8, 6},
		{"zero height", 8, 0, 6},
		{"single kind", 8, 8, 1},
		{"two kinds", 8, 8, 2},
		{"too many kinds", 8, 8, 27},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.width, tc.height, tc.kinds, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewBoard(%d, %d, %d) error = %v, want ErrInvalidConfig", tc.width, tc.height, tc.kinds, err)
			}
		})
	}
}

func TestNewBoardIsReproducible(t *testing.T) {
	a, _ := NewBoard(8, 8, 6, rand.New(rand.NewSource(99)))
	b, _ := NewBoard(8, 8, 6, rand.New(rand.NewSource(99)))
	if !a.Equal(b) {
		t.Errorf("same seed produced different boards:\n%s\n---\n%s", a, b)
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	b := mustBoard(t, 3, "ABC", "BCA")

	positions := []Pos{P(-1, 0), P(0, -1), P(3, 0), P(0, 2)}
	for _, p := range positions {
		if _, err := b.Get(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%v) error = %v, want ErrOutOfBounds", p, err)
		}
		if err := b.Set(p, nil); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%v) error = %v, want ErrOutOfBounds", p, err)
		}
		if err := b.SwapCells(P(0, 0), p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SwapCells(%v) error = %v, want ErrOutOfBounds", p, err)
		}
	}
}

func TestBoardRowZeroIsBottom(t *testing.T) {
	b := mustBoard(t, 3,
		"CCA",
		"ABB",
	)

	if k, _ := b.KindAt(P(0, 0)); k != 0 {
		t.Errorf("bottom-left kind = %d, want 0 (A)", k)
	}
	if k, _ := b.KindAt(P(0, 1)); k != 2 {
		t.Errorf("top-left kind = %d, want 2 (C)", k)
	}
	if b.String() != "CCA\nABB" {
		t.Errorf("String() = %q", b.String())
	}
}

func TestSwapCellsKeepsIdentity(t *testing.T) {
	b := mustBoard(t, 3, "ABC")
	left, _ := b.Get(P(0, 0))
	right, _ := b.Get(P(1, 0))
	leftID, rightID := left.ID, right.ID

	if err := b.SwapCells(P(0, 0), P(1, 0)); err != nil {
		t.Fatalf("SwapCells() failed: %v", err)
	}

	got, _ := b.Get(P(0, 0))
	if got.ID != rightID || got.Kind != 1 || got.Pos != P(0, 0) {
		t.Errorf("cell (0,0) = %+v, want tile %d kind 1 at (0,0)", *got, rightID)
	}
	got, _ = b.Get(P(1, 0))
	if got.ID != leftID || got.Kind != 0 || got.Pos != P(1, 0) {
		t.Errorf("cell (1,0) = %+v, want tile %d kind 0 at (1,0)", *got, leftID)
	}
	if err := b.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() = %v", err)
	}
}

func TestIsAdjacent(t *testing.T) {
	b := mustBoard(t, 3, "ABC", "BCA", "CAB")

	tests := []struct {
		a, c     Pos
		expected bool
	}{
		{P(1, 1), P(2, 1), true},
		{P(1, 1), P(1, 0), true},
		{P(1, 1), P(1, 1), false},
		{P(1, 1), P(2, 2), false},
		{P(0, 0), P(2, 0), false},
	}

	for _, tc := range tests {
		if got := b.IsAdjacent(tc.a, tc.c); got != tc.expected {
			t.Errorf("IsAdjacent(%v, %v) = %v, want %v", tc.a, tc.c, got, tc.expected)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := mustBoard(t, 3, "ABC")
	c := b.Clone()

	_ = c.SwapCells(P(0, 0), P(1, 0))

	if b.Equal(c) {
		t.Error("mutating the clone changed the original")
	}
	if k, _ := b.KindAt(P(0, 0)); k != 0 {
		t.Errorf("original (0,0) kind = %d, want 0", k)
	}
}

func TestCheckInvariantsDetectsCorruption(t *testing.T) {
	b := mustBoard(t, 3, "ABC")
	tile := b.at(P(0, 0))
	tile.Pos = P(2, 0)

	if err := b.CheckInvariants(); err == nil {
		t.Error("expected position mismatch to be reported")
	}

	defer func() {
		r := recover()
		if _, ok := r.(*InvariantError); !ok {
			t.Errorf("expected *InvariantError panic, got %v", r)
		}
	}()
	mustHold("test", b)
}

func TestCheckInvariantsDetectsDuplicateID(t *testing.T) {
	b := mustBoard(t, 3, "ABC")
	dup := *b.at(P(0, 0))
	dup.Pos = P(1, 0)
	b.cells[b.index(P(1, 0))] = &dup

	if err := b.CheckInvariants(); err == nil {
		t.Error("expected duplicate id to be reported")
	}
}
