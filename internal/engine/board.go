// Package engine implements the deterministic match-3 board: swap validation,
// run detection, cascade resolution, scoring and move hints.
// It has no dependency on rendering or timing; presenters replay the events
// it returns at their own pace.
package engine

import (
	"fmt"
	"strings"
)

// Rand is the randomness the engine needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// TileID identifies a tile for its whole lifetime. IDs are never reused.
type TileID uint64

// Kind is the symbol a tile shows. Valid kinds are [0, kindCount).
type Kind uint8

// Pos is a board coordinate. Row 0 is the bottom row; gravity pulls tiles
// toward lower rows.
type Pos struct {
	Col int
	Row int
}

// P is a convenience constructor for Pos.
func P(col, row int) Pos {
	return Pos{Col: col, Row: row}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Add returns a new Pos offset by (dc, dr).
func (p Pos) Add(dc, dr int) Pos {
	return Pos{Col: p.Col + dc, Row: p.Row + dr}
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	dc := p.Col - other.Col
	dr := p.Row - other.Row
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}

// Tile is a single piece on the board.
type Tile struct {
	ID   TileID
	Kind Kind
	Pos  Pos
}

// Board is a width x height grid of cells, each empty (nil) or holding a tile.
// Cells are stored in row-major order: index = row*width + col.
type Board struct {
	width     int
	height    int
	kindCount int
	cells     []*Tile
	nextID    TileID
}

// NewBoard creates a board with every cell filled by a uniformly random kind.
// Accidental starting matches are kept; the first resolve clears them.
func NewBoard(width, height, kindCount int, rng Rand) (*Board, error) {
	b, err := newEmptyBoard(width, height, kindCount)
	if err != nil {
		return nil, err
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			b.spawn(P(col, row), Kind(rng.Intn(kindCount)))
		}
	}
	return b, nil
}

// NewBoardFromKinds builds a board from explicit kinds. rows[0] is the bottom
// row; a negative kind leaves the cell empty. All rows must have equal length.
func NewBoardFromKinds(rows [][]int, kindCount int) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidConfig)
	}
	width := len(rows[0])
	b, err := newEmptyBoard(width, len(rows), kindCount)
	if err != nil {
		return nil, err
	}
	for row, kinds := range rows {
		if len(kinds) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfig, row, len(kinds), width)
		}
		for col, k := range kinds {
			if k < 0 {
				continue
			}
			if k >= kindCount {
				return nil, fmt.Errorf("%w: kind %d at %v outside [0,%d)", ErrInvalidConfig, k, P(col, row), kindCount)
			}
			b.spawn(P(col, row), Kind(k))
		}
	}
	return b, nil
}

// MinKinds is the fewest tile kinds a board accepts. With two kinds a
// random refill almost never leaves the board without a run.
const MinKinds = 3

// MaxKinds is the most tile kinds a board accepts.
const MaxKinds = 26

func newEmptyBoard(width, height, kindCount int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, width, height)
	}
	if kindCount < MinKinds || kindCount > MaxKinds {
		return nil, fmt.Errorf("%w: %d kinds, want %d..%d", ErrInvalidConfig, kindCount, MinKinds, MaxKinds)
	}
	return &Board{
		width:     width,
		height:    height,
		kindCount: kindCount,
		cells:     make([]*Tile, width*height),
		nextID:    1,
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// KindCount returns the size of the kind alphabet.
func (b *Board) KindCount() int { return b.kindCount }

func (b *Board) index(p Pos) int {
	return p.Row*b.width + p.Col
}

// InBounds returns true if the position is on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Col >= 0 && p.Col < b.width && p.Row >= 0 && p.Row < b.height
}

// Get returns the tile at p, or nil if the cell is empty.
func (b *Board) Get(p Pos) (*Tile, error) {
	if !b.InBounds(p) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return b.cells[b.index(p)], nil
}

// Set places t at p (nil empties the cell) and updates the tile's position.
func (b *Board) Set(p Pos, t *Tile) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if t != nil {
		t.Pos = p
	}
	b.cells[b.index(p)] = t
	return nil
}

// SwapCells exchanges the contents of two cells unconditionally.
// Adjacency is the caller's concern.
func (b *Board) SwapCells(a, c Pos) error {
	if !b.InBounds(a) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, a)
	}
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	ia, ic := b.index(a), b.index(c)
	b.cells[ia], b.cells[ic] = b.cells[ic], b.cells[ia]
	if t := b.cells[ia]; t != nil {
		t.Pos = a
	}
	if t := b.cells[ic]; t != nil {
		t.Pos = c
	}
	return nil
}

// IsAdjacent reports whether a and c are exactly one step apart.
func (b *Board) IsAdjacent(a, c Pos) bool {
	return a.Manhattan(c) == 1
}

// at returns the tile at an in-bounds position without error checking.
func (b *Board) at(p Pos) *Tile {
	return b.cells[b.index(p)]
}

// KindAt returns the kind at p; ok is false for empty or out-of-bounds cells.
func (b *Board) KindAt(p Pos) (Kind, bool) {
	if !b.InBounds(p) {
		return 0, false
	}
	t := b.at(p)
	if t == nil {
		return 0, false
	}
	return t.Kind, true
}

// Spawn creates a fresh tile of the given kind at p, replacing whatever was there.
func (b *Board) Spawn(p Pos, kind Kind) (*Tile, error) {
	if !b.InBounds(p) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return b.spawn(p, kind), nil
}

func (b *Board) spawn(p Pos, kind Kind) *Tile {
	t := &Tile{ID: b.nextID, Kind: kind, Pos: p}
	b.nextID++
	b.cells[b.index(p)] = t
	return t
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, t := range b.cells {
		if t == nil {
			n++
		}
	}
	return n
}

// Tiles returns all tiles in row-major order, bottom row first.
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, 0, len(b.cells))
	for _, t := range b.cells {
		if t != nil {
			tiles = append(tiles, *t)
		}
	}
	return tiles
}

// Find returns the tile with the given id, if it is on the board.
func (b *Board) Find(id TileID) (Tile, bool) {
	for _, t := range b.cells {
		if t != nil && t.ID == id {
			return *t, true
		}
	}
	return Tile{}, false
}

// Kinds returns the kind grid, rows[0] being the bottom row. Empty cells are -1.
func (b *Board) Kinds() [][]int {
	rows := make([][]int, b.height)
	for row := range rows {
		rows[row] = make([]int, b.width)
		for col := range rows[row] {
			if t := b.at(P(col, row)); t != nil {
				rows[row][col] = int(t.Kind)
			} else {
				rows[row][col] = -1
			}
		}
	}
	return rows
}

// Clone returns a deep copy of the board, including the id counter.
func (b *Board) Clone() *Board {
	c := &Board{
		width:     b.width,
		height:    b.height,
		kindCount: b.kindCount,
		cells:     make([]*Tile, len(b.cells)),
		nextID:    b.nextID,
	}
	for i, t := range b.cells {
		if t != nil {
			cp := *t
			c.cells[i] = &cp
		}
	}
	return c
}

// Equal returns true if both boards hold the same tiles (id and kind) in the same cells.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, t := range b.cells {
		o := other.cells[i]
		if (t == nil) != (o == nil) {
			return false
		}
		if t != nil && (t.ID != o.ID || t.Kind != o.Kind) {
			return false
		}
	}
	return true
}

// CheckInvariants verifies that every tile's position matches its cell,
// that no id appears twice and that kinds are within the alphabet.
func (b *Board) CheckInvariants() error {
	seen := make(map[TileID]Pos, len(b.cells))
	for i, t := range b.cells {
		if t == nil {
			continue
		}
		p := P(i%b.width, i/b.width)
		if t.Pos != p {
			return fmt.Errorf("tile %d at %v records position %v", t.ID, p, t.Pos)
		}
		if prev, dup := seen[t.ID]; dup {
			return fmt.Errorf("tile %d appears at %v and %v", t.ID, prev, p)
		}
		if int(t.Kind) >= b.kindCount {
			return fmt.Errorf("tile %d has kind %d outside [0,%d)", t.ID, t.Kind, b.kindCount)
		}
		if t.ID >= b.nextID {
			return fmt.Errorf("tile %d was never allocated (next id %d)", t.ID, b.nextID)
		}
		seen[t.ID] = p
	}
	return nil
}

// String renders the board top row first, one letter per kind, '.' for empty.
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.height - 1; row >= 0; row-- {
		for col := 0; col < b.width; col++ {
			if t := b.at(P(col, row)); t != nil {
				sb.WriteByte('A' + byte(t.Kind))
			} else {
				sb.WriteByte('.')
			}
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
