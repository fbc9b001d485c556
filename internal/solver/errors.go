package solver

import (
	"fmt"

	"github.com/vancomm/minesweeper-solver/internal/board"
)

// MalformedBoardError means a displayed number is inconsistent with the
// flags and space around it. The board producer has a bug; the solver
// never guesses around it.
type MalformedBoardError struct {
	At     *board.Point
	Reason string
}

func (e MalformedBoardError) Error() string {
	if e.At != nil {
		return fmt.Sprintf("malformed board at %s: %s", e.At, e.Reason)
	}
	return "malformed board: " + e.Reason
}

// NoSolutionError means the constraint system admits zero mine
// configurations, i.e. the board contradicts itself.
type NoSolutionError struct{}

func (e NoSolutionError) Error() string {
	return "board has no consistent mine configuration"
}

// BudgetExceededError means the configuration enumeration hit its budget
// before completing. The caller may retry with a larger budget.
type BudgetExceededError struct {
	Budget int
}

func (e BudgetExceededError) Error() string {
	return fmt.Sprintf("configuration budget of %d exceeded", e.Budget)
}

// InternalConsistencyError reports a probability outside [0,1] beyond
// numerical tolerance. Always a solver defect, never a board problem.
type InternalConsistencyError struct {
	Value   float64
	Context string
}

func (e InternalConsistencyError) Error() string {
	return fmt.Sprintf(
		"internal consistency check failed: %s = %v outside [0,1]",
		e.Context, e.Value,
	)
}
