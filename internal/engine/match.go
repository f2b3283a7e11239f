package engine

// DefaultMinRun is the shortest run that counts as a match.
const DefaultMinRun = 3

// Axis is the direction a run extends along.
type Axis uint8

const (
	AxisRow    Axis = iota // run extends across columns
	AxisColumn             // run extends across rows
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// delta returns the step along the axis.
func (a Axis) delta() (dc, dr int) {
	if a == AxisColumn {
		return 0, 1
	}
	return 1, 0
}

// MatchGroup is one maximal run of same-kind tiles.
type MatchGroup struct {
	Kind  Kind
	Axis  Axis
	Start Pos // lowest-index cell of the run
	Tiles []TileID
}

// Len returns the run length.
func (g MatchGroup) Len() int {
	return len(g.Tiles)
}

// Matches is the result of one scan: every run found plus the removal set.
// A tile in both a row run and a column run appears once in Removal.
type Matches struct {
	Groups  []MatchGroup
	Removal map[TileID]Pos
}

// Empty returns true if no run was found.
func (m Matches) Empty() bool {
	return len(m.Removal) == 0
}

// Count returns the number of distinct tiles to remove.
func (m Matches) Count() int {
	return len(m.Removal)
}

// Contains reports whether the tile is in the removal set.
func (m Matches) Contains(id TileID) bool {
	_, ok := m.Removal[id]
	return ok
}

// runScanner accumulates one row or column at a time.
type runScanner struct {
	minRun int
	axis   Axis
	run    []*Tile
	out    *Matches
}

// push extends the current run with t, closing it first if t breaks it.
func (s *runScanner) push(t *Tile) {
	if t == nil {
		s.close()
		return
	}
	if len(s.run) > 0 && s.run[0].Kind != t.Kind {
		s.close()
	}
	s.run = append(s.run, t)
}

// close records the current run if it is long enough and starts a new one.
func (s *runScanner) close() {
	if len(s.run) >= s.minRun {
		g := MatchGroup{
			Kind:  s.run[0].Kind,
			Axis:  s.axis,
			Start: s.run[0].Pos,
			Tiles: make([]TileID, len(s.run)),
		}
		for i, t := range s.run {
			g.Tiles[i] = t.ID
			s.out.Removal[t.ID] = t.Pos
		}
		s.out.Groups = append(s.out.Groups, g)
	}
	s.run = s.run[:0]
}

// FindMatches scans every row left to right and every column bottom to top
// for runs of at least minRun same-kind tiles. Empty cells never match.
// minRun must be at least 2.
func FindMatches(b *Board, minRun int) Matches {
	out := Matches{Removal: make(map[TileID]Pos)}
	s := runScanner{minRun: minRun, out: &out}

	s.axis = AxisRow
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			s.push(b.at(P(col, row)))
		}
		// A run touching the last column is only recorded here.
		s.close()
	}

	s.axis = AxisColumn
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.height; row++ {
			s.push(b.at(P(col, row)))
		}
		s.close()
	}

	return out
}

// IsStable returns true if the board is full and has no pending matches.
func IsStable(b *Board, minRun int) bool {
	return b.EmptyCount() == 0 && FindMatches(b, minRun).Empty()
}
