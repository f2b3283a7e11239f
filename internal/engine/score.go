package engine

import "fmt"

// DefaultScoreBase is the per-group multiplier in base * L^2 * combo.
const DefaultScoreBase = 100

// ScoreTracker owns the score and the combo level.
type ScoreTracker struct {
	Base  int
	score int
	combo int
	best  int // highest combo reached
}

// NewScoreTracker creates a tracker with combo level 1.
func NewScoreTracker(base int) *ScoreTracker {
	if base <= 0 {
		base = DefaultScoreBase
	}
	return &ScoreTracker{Base: base, combo: 1, best: 1}
}

// Score returns the current total.
func (s *ScoreTracker) Score() int { return s.score }

// Combo returns the current combo level.
func (s *ScoreTracker) Combo() int { return s.combo }

// BestCombo returns the highest combo level scored so far.
func (s *ScoreTracker) BestCombo() int { return s.best }

// ResetCombo sets the combo back to 1. Only an accepted player swap does this.
func (s *ScoreTracker) ResetCombo() {
	s.combo = 1
}

// NextWave increments the combo level and returns it.
func (s *ScoreTracker) NextWave() int {
	s.combo++
	return s.combo
}

// OnMatches scores one wave: every group adds Base * L^2 * combo.
// It returns the points gained.
func (s *ScoreTracker) OnMatches(groups []MatchGroup) int {
	if s.combo < 1 {
		panic(&InvariantError{Op: "score", Detail: fmt.Sprintf("combo level %d", s.combo)})
	}
	gained := 0
	for _, g := range groups {
		l := g.Len()
		gained += s.Base * l * l * s.combo
	}
	s.score += gained
	if gained > 0 && s.combo > s.best {
		s.best = s.combo
	}
	return gained
}
