package solver

/*
 * The enumerator walks every assignment of mine counts to groups that
 * satisfies all constraints exactly. It is a depth-first search over
 * groups in their fixed order, carrying per-constraint running residuals
 * so bounds for the next group come out in O(adjacent constraints).
 *
 * Configurations are yielded one at a time rather than collected up
 * front, so the budget cuts the search off at the branch where it blows
 * up instead of after the damage is done.
 */
type enumerator struct {
	groups      []*group
	constraints []*constraint
	budget      int

	visited   int
	cfg       []int
	residLeft []int // per constraint: residual minus assigned so far
	capLeft   []int // per constraint: max mines of its unassigned groups
}

func newEnumerator(groups []*group, constraints []*constraint, budget int) *enumerator {
	e := &enumerator{
		groups:      groups,
		constraints: constraints,
		budget:      budget,
		cfg:         make([]int, len(groups)),
		residLeft:   make([]int, len(constraints)),
		capLeft:     make([]int, len(constraints)),
	}
	for ci, c := range constraints {
		e.residLeft[ci] = c.residual
		for _, gi := range c.groups {
			e.capLeft[ci] += groups[gi].maxMines
		}
	}
	return e
}

func (e *enumerator) enumerate(yield func(cfg []int) error) error {
	return e.descend(0, yield)
}

func (e *enumerator) descend(gi int, yield func(cfg []int) error) error {
	if gi == len(e.groups) {
		/*
		 * The bounds force every fully-assigned constraint to land on
		 * zero, but verify anyway: an off-by-one here would silently
		 * produce wrong probabilities.
		 */
		for _, left := range e.residLeft {
			if left != 0 {
				return nil
			}
		}
		return yield(e.cfg)
	}

	g := e.groups[gi]
	lo, hi := 0, g.maxMines
	for _, ci := range g.constraints {
		hi = min(hi, e.residLeft[ci])
		/* the rest of this constraint's groups can hold only so much */
		lo = max(lo, e.residLeft[ci]-(e.capLeft[ci]-g.maxMines))
	}

	for v := lo; v <= hi; v++ {
		e.visited++
		if e.visited > e.budget {
			return BudgetExceededError{Budget: e.budget}
		}
		e.cfg[gi] = v
		for _, ci := range g.constraints {
			e.residLeft[ci] -= v
			e.capLeft[ci] -= g.maxMines
		}
		err := e.descend(gi+1, yield)
		for _, ci := range g.constraints {
			e.residLeft[ci] += v
			e.capLeft[ci] += g.maxMines
		}
		if err != nil {
			return err
		}
	}
	e.cfg[gi] = 0
	return nil
}
