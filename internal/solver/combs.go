package solver

import (
	"fmt"
	"math"
	"math/big"
)

type combKey struct {
	cells, mines, perCell int
}

/*
 * Arrangement counts are factorial-scale and get asked for repeatedly with
 * the same arguments while combining configurations, so they are memoized.
 * The cache lives for one solver call and is passed around explicitly;
 * nothing in this package keeps process-wide tables.
 */
type combCache struct {
	fact []*big.Int
	arr  map[combKey]*big.Int
}

func newCombCache() *combCache {
	return &combCache{
		fact: []*big.Int{big.NewInt(1)},
		arr:  make(map[combKey]*big.Int),
	}
}

func (c *combCache) factorial(n int) *big.Int {
	for len(c.fact) <= n {
		k := int64(len(c.fact))
		c.fact = append(c.fact, new(big.Int).Mul(c.fact[k-1], big.NewInt(k)))
	}
	return c.fact[n]
}

/*
 * arrangementCount returns the number of ways to place `mines`
 * distinguishable mines into `cells` distinguishable cells with at most
 * `perCell` mines in any one cell. Mines are distinguishable throughout
 * this engine; the configuration weights correct for that with explicit
 * factorials, and mixing conventions would skew every probability.
 */
func (c *combCache) arrangementCount(cells, mines, perCell int) *big.Int {
	switch {
	case mines > cells*perCell:
		return big.NewInt(0)
	case mines == 0 || cells == 1:
		return big.NewInt(1)
	case perCell == 1:
		/* falling factorial: cells * (cells-1) * ... * (cells-mines+1) */
		return new(big.Int).Quo(c.factorial(cells), c.factorial(cells-mines))
	case perCell >= mines:
		/* no cell can saturate, every mine picks a cell freely */
		return new(big.Int).Exp(
			big.NewInt(int64(cells)), big.NewInt(int64(mines)), nil,
		)
	}

	key := combKey{cells, mines, perCell}
	if v, ok := c.arr[key]; ok {
		return v
	}

	/*
	 * General case: walk every way to split the mine count into
	 * non-increasing per-cell counts bounded by perCell. For a split like
	 * [3 3 1 0 0] there are 5!/(2!*1!*2!) ways to lay those counts out
	 * over the cells, times 7!/(3!*3!*1!) ways to deal the individual
	 * mines into the counts.
	 */
	total := new(big.Int)
	cellsFact := c.factorial(cells)
	minesFact := c.factorial(mines)
	buf := make([]int, 0, cells)
	forEachSplit(mines, cells, perCell, 1, buf, func(split []int) {
		slotWays := new(big.Int).Set(cellsFact)
		runStart := 0
		for i := 1; i <= len(split); i++ {
			if i == len(split) || split[i] != split[runStart] {
				slotWays.Quo(slotWays, c.factorial(i-runStart))
				runStart = i
			}
		}
		mineWays := new(big.Int).Set(minesFact)
		for _, n := range split {
			mineWays.Quo(mineWays, c.factorial(n))
		}
		total.Add(total, slotWays.Mul(slotWays, mineWays))
	})

	c.arr[key] = total
	return total
}

/*
 * forEachSplit yields every non-increasing sequence of `cells` counts in
 * [0, maxPer] summing to `mines`, without materializing the whole list.
 * Recursion depth is bounded by `cells`.
 */
func forEachSplit(mines, cells, maxPer, minPer int, prefix []int, fn func([]int)) {
	if cells == 1 {
		fn(append(prefix, mines))
		return
	}
	if mines == 0 {
		split := prefix
		for i := 0; i < cells; i++ {
			split = append(split, 0)
		}
		fn(split)
		return
	}
	lo := max(minPer, (mines-1)/cells+1)
	hi := min(mines, maxPer)
	for n := lo; n <= hi; n++ {
		forEachSplit(mines-n, cells-1, min(maxPer, n), 1, append(prefix, n), fn)
	}
}

/*
 * unsafeProb returns the probability that one specific cell out of `cells`
 * holds at least one mine, when `mines` mines are placed uniformly at
 * random subject to the perCell cap.
 */
func (c *combCache) unsafeProb(cells, mines, perCell int) (float64, error) {
	switch {
	case mines > cells*perCell:
		return 0, fmt.Errorf(
			"%d mines cannot fit in %d cells at %d per cell",
			mines, cells, perCell,
		)
	case mines > perCell*(cells-1):
		/* not enough room elsewhere for the cell to be empty */
		return 1, nil
	case perCell == 1:
		return float64(mines) / float64(cells), nil
	case perCell >= mines:
		return 1 - math.Pow(1-1/float64(cells), float64(mines)), nil
	default:
		/*
		 * P(safe) = arrangements avoiding the cell / all arrangements.
		 * Both counts overflow float64 well before boards get
		 * interesting, so take the ratio in the log domain.
		 */
		safe := lnBig(c.arrangementCount(cells-1, mines, perCell))
		all := lnBig(c.arrangementCount(cells, mines, perCell))
		return 1 - math.Exp(safe-all), nil
	}
}

// lnBig is ln(x) for positive x too large for float64.
func lnBig(x *big.Int) float64 {
	mant := new(big.Float)
	exp := new(big.Float).SetInt(x).MantExp(mant)
	m, _ := mant.Float64()
	return math.Log(m) + float64(exp)*math.Ln2
}
