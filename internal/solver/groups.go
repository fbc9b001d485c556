package solver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vancomm/minesweeper-solver/internal/board"
)

/*
 * An equivalence group is a maximal set of unclicked cells bordering
 * exactly the same set of constraints. Within a group the cells are
 * interchangeable, which is what collapses the search space: the
 * enumerator assigns mine counts to whole groups, never to single cells.
 */
type group struct {
	cells       []board.Point
	constraints []int
	maxMines    int
}

/*
 * buildGroups buckets every edge cell by the set of constraints it
 * touches. Grounded on a reverse index built in one pass over the
 * constraint neighbour lists, so it is linear in their total length.
 * Groups come out ordered by their smallest cell, and each constraint
 * learns the indices of its adjacent groups in that same order; the
 * ordering is only for deterministic output.
 */
func buildGroups(constraints []*constraint, perCell int) []*group {
	cellConstraints := make(map[board.Point][]int)
	for ci, c := range constraints {
		for _, p := range c.cells {
			cellConstraints[p] = append(cellConstraints[p], ci)
		}
	}

	buckets := make(map[string]*group)
	for p, cis := range cellConstraints {
		key := constraintSetKey(cis)
		g, ok := buckets[key]
		if !ok {
			g = &group{constraints: cis}
			buckets[key] = g
		}
		g.cells = append(g.cells, p)
	}

	groups := make([]*group, 0, len(buckets))
	for _, g := range buckets {
		sort.Slice(g.cells, func(i, j int) bool {
			return g.cells[i].Less(g.cells[j])
		})
		minResidual := constraints[g.constraints[0]].residual
		for _, ci := range g.constraints[1:] {
			minResidual = min(minResidual, constraints[ci].residual)
		}
		g.maxMines = min(len(g.cells)*perCell, minResidual)
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].cells[0].Less(groups[j].cells[0])
	})

	for gi, g := range groups {
		for _, ci := range g.constraints {
			constraints[ci].groups = append(constraints[ci].groups, gi)
		}
	}
	return groups
}

// constraintSetKey is an order-independent map key for a set of
// constraint indices. The indices arrive already ascending because the
// reverse index appends them in constraint order.
func constraintSetKey(cis []int) string {
	var sb strings.Builder
	for _, ci := range cis {
		fmt.Fprintf(&sb, "%d,", ci)
	}
	return sb.String()
}
