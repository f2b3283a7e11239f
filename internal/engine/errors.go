package engine

import (
	"errors"
	"fmt"
)

// Errors returned by board access and swap validation. None of them mutate
// the board; callers can simply ask the player again.
var (
	ErrOutOfBounds   = errors.New("engine: position out of bounds")
	ErrNotAdjacent   = errors.New("engine: positions are not adjacent")
	ErrCellEmpty     = errors.New("engine: cell is empty")
	ErrSamePosition  = errors.New("engine: cannot swap a cell with itself")
	ErrBoardUnstable = errors.New("engine: board has pending matches or empty cells")
	ErrInvalidConfig = errors.New("engine: invalid configuration")
)

// InvariantError reports an engine defect. It is raised with panic, never returned.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("engine: invariant violated in %s: %s", e.Op, e.Detail)
}

// mustHold panics with an InvariantError if the board is inconsistent.
func mustHold(op string, b *Board) {
	if err := b.CheckInvariants(); err != nil {
		panic(&InvariantError{Op: op, Detail: err.Error()})
	}
}
