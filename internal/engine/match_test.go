package engine

import (
	"sort"
	"testing"
)

// removedCols returns the sorted columns of the removal set on a one-row board.
func removedCols(m Matches) []int {
	cols := make([]int, 0, len(m.Removal))
	for _, p := range m.Removal {
		cols = append(cols, p.Col)
	}
	sort.Ints(cols)
	return cols
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFindMatchesRow(t *testing.T) {
	tests := []struct {
		name     string
		row      string
		expected []int
	}{
		{"leading run", "AAABCDEF", []int{0, 1, 2}},
		{"trailing run", "BCDEFAAA", []int{5, 6, 7}},
		{"middle run", "BCAAAADE", []int{2, 3, 4, 5}},
		{"whole row", "CCCCCCCC", []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{"two runs", "AAABBBCD", []int{0, 1, 2, 3, 4, 5}},
		{"pairs only", "AABBAACC", []int{}},
		{"empty cell breaks run", "AA.ABCDE", []int{}},
		{"empty cells never match", "...ABCDE", []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, 6, tc.row)
			m := FindMatches(b, 3)
			if got := removedCols(m); !equalInts(got, tc.expected) {
				t.Errorf("FindMatches(%s) removed columns %v, want %v", tc.row, got, tc.expected)
			}
		})
	}
}

func TestFindMatchesTrailingColumnRun(t *testing.T) {
	b := mustBoard(t, 6,
		"A",
		"A",
		"A",
		"B",
		"C",
	)

	m := FindMatches(b, 3)
	if m.Count() != 3 {
		t.Fatalf("expected 3 tiles removed, got %d", m.Count())
	}
	for _, p := range m.Removal {
		if p.Row < 2 {
			t.Errorf("unexpected removal at %v", p)
		}
	}
	if len(m.Groups) != 1 || m.Groups[0].Axis != AxisColumn || m.Groups[0].Start != P(0, 2) {
		t.Errorf("unexpected groups %+v", m.Groups)
	}
}

func TestFindMatchesCrossCountsTileOnce(t *testing.T) {
	b := mustBoard(t, 6,
		"BAC",
		"AAA",
		"CAB",
	)

	m := FindMatches(b, 3)
	if len(m.Groups) != 2 {
		t.Fatalf("expected a row group and a column group, got %d groups", len(m.Groups))
	}
	if m.Count() != 5 {
		t.Errorf("expected 5 distinct tiles, got %d", m.Count())
	}
	center := b.at(P(1, 1))
	if !m.Contains(center.ID) {
		t.Error("center tile missing from removal set")
	}
}

func TestFindMatchesMinRun(t *testing.T) {
	b := mustBoard(t, 6, "AAABBBBC")

	if got := FindMatches(b, 4).Count(); got != 4 {
		t.Errorf("minRun 4: removed %d tiles, want 4", got)
	}
	if got := FindMatches(b, 5).Count(); got != 0 {
		t.Errorf("minRun 5: removed %d tiles, want 0", got)
	}
}

func TestFindMatchesGroupLengths(t *testing.T) {
	b := mustBoard(t, 6, "AAAABBBC")
	m := FindMatches(b, 3)

	if len(m.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(m.Groups))
	}
	if m.Groups[0].Len() != 4 || m.Groups[0].Kind != 0 {
		t.Errorf("first group = kind %d len %d, want kind 0 len 4", m.Groups[0].Kind, m.Groups[0].Len())
	}
	if m.Groups[1].Len() != 3 || m.Groups[1].Kind != 1 {
		t.Errorf("second group = kind %d len %d, want kind 1 len 3", m.Groups[1].Kind, m.Groups[1].Len())
	}
}

func TestIsStable(t *testing.T) {
	if !IsStable(mustBoard(t, 3, "ABC", "BCA", "CAB"), 3) {
		t.Error("latin square should be stable")
	}
	if IsStable(mustBoard(t, 3, "AAA", "BCA", "CAB"), 3) {
		t.Error("board with a run should not be stable")
	}
	if IsStable(mustBoard(t, 3, "A.C", "BCA", "CAB"), 3) {
		t.Error("board with an empty cell should not be stable")
	}
}
