package solver

import (
	"fmt"
	"sort"

	"github.com/vancomm/minesweeper-solver/internal/board"
)

/*
 * A constraint is one revealed number after flag accounting: `residual`
 * mines remain to be placed among `cells`, its unclicked neighbours.
 * `groups` is filled in by the grouper with the indices of the
 * equivalence groups that partition `cells`, in ascending group order.
 */
type constraint struct {
	at       board.Point
	residual int
	cells    []board.Point
	groups   []int
}

/*
 * extractConstraints scans the board once and builds the constraint list
 * in row-major order of the number cells. Numbers displaying 0 are
 * skipped: a revealed zero has already cleared its neighbourhood
 * upstream, so it contributes nothing to the combinatorial search.
 */
func extractConstraints(b *board.Board, perCell int) ([]*constraint, error) {
	var constraints []*constraint
	for _, p := range b.Points() {
		c := b.At(p)
		switch c.Kind {
		case board.KindNumber:
			if c.N == 0 {
				continue
			}
		case board.KindUnclicked, board.KindFlag:
			continue
		default:
			/* post-loss cells never reach the solver */
			return nil, MalformedBoardError{
				At:     &p,
				Reason: fmt.Sprintf("unexpected cell contents %q", c),
			}
		}

		residual := c.N
		var cells []board.Point
		for _, q := range b.Neighbours(p) {
			switch nc := b.At(q); nc.Kind {
			case board.KindFlag:
				residual -= nc.N
			case board.KindUnclicked:
				cells = append(cells, q)
			}
		}

		if residual < 0 {
			return nil, MalformedBoardError{
				At: &p,
				Reason: fmt.Sprintf(
					"number %d overflagged (residual %d)", c.N, residual,
				),
			}
		}
		if residual > len(cells)*perCell {
			return nil, MalformedBoardError{
				At: &p,
				Reason: fmt.Sprintf(
					"number %d too high for %d unclicked neighbours",
					c.N, len(cells),
				),
			}
		}
		if len(cells) == 0 {
			/* residual 0 and nowhere to put anything: fully satisfied */
			continue
		}

		sort.Slice(cells, func(i, j int) bool {
			return cells[i].Less(cells[j])
		})
		constraints = append(constraints, &constraint{
			at:       p,
			residual: residual,
			cells:    cells,
		})
	}
	return constraints, nil
}
