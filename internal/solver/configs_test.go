package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enumerateAll(t *testing.T, boardText string, perCell, budget int) ([][]int, error) {
	t.Helper()
	b := mustParse(t, boardText)
	constraints, err := extractConstraints(b, perCell)
	require.NoError(t, err)
	groups := buildGroups(constraints, perCell)
	enum := newEnumerator(groups, constraints, budget)
	var cfgs [][]int
	err = enum.enumerate(func(cfg []int) error {
		cfgs = append(cfgs, append([]int(nil), cfg...))
		return nil
	})
	return cfgs, err
}

// naiveConfigs filters every assignment of 0..maxMines per group against
// the constraints directly.
func naiveConfigs(groups []*group, constraints []*constraint) (cfgs [][]int) {
	cfg := make([]int, len(groups))
	var walk func(i int)
	walk = func(i int) {
		if i == len(groups) {
			for _, c := range constraints {
				total := 0
				for _, gi := range c.groups {
					total += cfg[gi]
				}
				if total != c.residual {
					return
				}
			}
			cfgs = append(cfgs, append([]int(nil), cfg...))
			return
		}
		for v := 0; v <= groups[i].maxMines; v++ {
			cfg[i] = v
			walk(i + 1)
		}
		cfg[i] = 0
	}
	walk(0)
	return
}

func TestEnumerateUniqueSolution(t *testing.T) {
	t.Parallel()

	/* the 1-2-1 pattern forces mines into the corners */
	cfgs, err := enumerateAll(t, `
		# # #
		1 2 1
	`, 1, DefaultMaxConfigs)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 1}}, cfgs)
}

func TestEnumerateBranching(t *testing.T) {
	t.Parallel()

	/* two numbers sharing their middle cells leave two possibilities */
	cfgs, err := enumerateAll(t, `
		# # #
		1 # 1
	`, 1, DefaultMaxConfigs)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int{{0, 1, 0}, {1, 0, 1}}, cfgs)
}

func TestEnumerateMatchesNaive(t *testing.T) {
	t.Parallel()

	boards := []string{
		`
			# # #
			1 2 1
		`,
		`
			# # #
			1 # 1
		`,
		`
			# # # #
			1 2 # 2
		`,
		`
			# # # # #
			1 # 2 # 1
			# # # # #
		`,
	}
	for _, boardText := range boards {
		for perCell := 1; perCell <= 2; perCell++ {
			b := mustParse(t, boardText)
			constraints, err := extractConstraints(b, perCell)
			require.NoError(t, err)
			groups := buildGroups(constraints, perCell)

			want := naiveConfigs(groups, constraints)

			enum := newEnumerator(groups, constraints, DefaultMaxConfigs)
			var got [][]int
			err = enum.enumerate(func(cfg []int) error {
				got = append(got, append([]int(nil), cfg...))
				return nil
			})
			require.NoError(t, err)
			assert.ElementsMatch(t, want, got, "perCell=%d board=%s", perCell, boardText)
		}
	}
}

func TestEnumerateNoSolution(t *testing.T) {
	t.Parallel()

	/* both numbers constrain the same single cell to different counts */
	cfgs, err := enumerateAll(t, `
		1 # 2
	`, 2, DefaultMaxConfigs)
	require.NoError(t, err)
	assert.Empty(t, cfgs)
}

func TestEnumerateBudget(t *testing.T) {
	t.Parallel()

	_, err := enumerateAll(t, `
		# # # # #
		1 # 2 # 1
		# # # # #
	`, 1, 1)
	var budget BudgetExceededError
	require.ErrorAs(t, err, &budget)
	assert.Equal(t, 1, budget.Budget)
}
