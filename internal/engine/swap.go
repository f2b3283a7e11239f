package engine

import "fmt"

// SwapOutcome is the result of a well-formed swap attempt.
// Accepted is false for the Rejected outcome: the swap made no match and
// the board was put back exactly as it was.
type SwapOutcome struct {
	Accepted bool
	Matches  Matches
}

// ValidateSwap checks the preconditions of a swap without touching the board.
func ValidateSwap(b *Board, a, c Pos) error {
	if !b.InBounds(a) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, a)
	}
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if a == c {
		return fmt.Errorf("%w: %v", ErrSamePosition, a)
	}
	if !b.IsAdjacent(a, c) {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, c)
	}
	// Empty cells only exist while a resolve is in flight.
	if b.at(a) == nil {
		return fmt.Errorf("%w: %v", ErrCellEmpty, a)
	}
	if b.at(c) == nil {
		return fmt.Errorf("%w: %v", ErrCellEmpty, c)
	}
	return nil
}

// TrySwap swaps a and c on the live board and keeps the swap only if it
// produces at least one run of minRun. Errors leave the board untouched.
func TrySwap(b *Board, a, c Pos, minRun int) (SwapOutcome, error) {
	if err := ValidateSwap(b, a, c); err != nil {
		return SwapOutcome{}, err
	}

	// Bounds were validated above.
	_ = b.SwapCells(a, c)
	matches := FindMatches(b, minRun)
	if matches.Empty() {
		_ = b.SwapCells(a, c)
		return SwapOutcome{}, nil
	}
	return SwapOutcome{Accepted: true, Matches: matches}, nil
}
