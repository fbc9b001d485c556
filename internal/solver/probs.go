package solver

import (
	"math"
	"math/big"

	"github.com/vancomm/minesweeper-solver/internal/board"
)

const probTolerance = 1e-4

// GroupResult describes one equivalence group in a solved board: its
// cells, the probability distribution over how many mines it holds, and
// the per-cell unsafe probability every cell in it shares.
type GroupResult struct {
	Cells    []board.Point `json:"cells"`
	MaxMines int           `json:"max_mines"`
	Dist     []float64     `json:"dist"`
	Prob     float64       `json:"prob"`
}

// Result is the full output of a solve: the per-cell probability map plus
// the group-level diagnostics a UI overlay can show.
type Result struct {
	Probs             map[board.Point]float64
	Groups            []GroupResult
	ConfigCount       int
	ExpectedEdgeMines float64
	OuterCells        int
	OuterMines        int
	OuterProb         float64
}

/*
 * combine turns the enumerated configurations into probabilities.
 *
 * Each configuration is weighted by the number of distinguishable-mine
 * placements that realise it:
 *
 *	k!/((k-M)! * prod(m_i!)) deals the k remaining mines out to the
 *	groups and the outer region, and each region then contributes its
 *	own arrangement count.
 *
 * Weights are normalised in the log domain; the raw counts overflow
 * float64 on any non-trivial board.
 */
func combine(
	groups []*group,
	cfgs [][]int,
	perCell, k, n int,
	cache *combCache,
) (*Result, error) {
	edge := 0
	for _, g := range groups {
		edge += len(g.cells)
	}
	outer := n - edge

	weights := make([]*big.Int, len(cfgs))
	totalWeight := new(big.Int)
	for wi, cfg := range cfgs {
		m := 0
		for _, v := range cfg {
			m += v
		}
		if m > k || k-m > perCell*outer {
			/* the outer region cannot absorb the remainder */
			continue
		}
		w := new(big.Int).Quo(cache.factorial(k), cache.factorial(k-m))
		for gi, v := range cfg {
			w.Quo(w, cache.factorial(v))
			w.Mul(w, cache.arrangementCount(len(groups[gi].cells), v, perCell))
		}
		w.Mul(w, cache.arrangementCount(outer, k-m, perCell))
		if w.Sign() > 0 {
			weights[wi] = w
			totalWeight.Add(totalWeight, w)
		}
	}
	if totalWeight.Sign() == 0 {
		/* every configuration clashes with the global mine count */
		return nil, NoSolutionError{}
	}

	logTotal := lnBig(totalWeight)
	normed := make([]float64, len(cfgs))
	for wi, w := range weights {
		if w != nil {
			normed[wi] = math.Exp(lnBig(w) - logTotal)
		}
	}

	result := &Result{
		Probs:       make(map[board.Point]float64),
		Groups:      make([]GroupResult, len(groups)),
		ConfigCount: len(cfgs),
		OuterCells:  outer,
	}

	for gi, g := range groups {
		dist := make([]float64, g.maxMines+1)
		for wi, cfg := range cfgs {
			dist[cfg[gi]] += normed[wi]
		}
		var cellProb, expected float64
		for j, pj := range dist {
			u, err := cache.unsafeProb(len(g.cells), j, perCell)
			if err != nil {
				return nil, err
			}
			cellProb += pj * u
			expected += float64(j) * pj
		}
		cellProb, err := checkProb(cellProb, "group cell probability")
		if err != nil {
			return nil, err
		}
		result.Groups[gi] = GroupResult{
			Cells:    g.cells,
			MaxMines: g.maxMines,
			Dist:     dist,
			Prob:     cellProb,
		}
		result.ExpectedEdgeMines += expected
		for _, p := range g.cells {
			result.Probs[p] = cellProb
		}
	}

	if outer > 0 {
		mines := k - int(math.Round(result.ExpectedEdgeMines))
		mines = max(0, min(mines, min(k, perCell*outer)))
		outerProb, err := cache.unsafeProb(outer, mines, perCell)
		if err != nil {
			return nil, err
		}
		outerProb, err = checkProb(outerProb, "outer region probability")
		if err != nil {
			return nil, err
		}
		result.OuterMines = mines
		result.OuterProb = outerProb
	}

	return result, nil
}

// checkProb clamps rounding noise but refuses anything further out of
// range: that can only mean the configurations themselves are wrong.
func checkProb(p float64, context string) (float64, error) {
	if p < -probTolerance || p > 1+probTolerance {
		return 0, InternalConsistencyError{Value: p, Context: context}
	}
	return max(0, min(1, p)), nil
}
