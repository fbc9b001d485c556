package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-solver/internal/board"
)

func TestBuildGroups(t *testing.T) {
	t.Parallel()

	b := mustParse(t, `
		# # #
		1 2 1
	`)

	constraints, err := extractConstraints(b, 1)
	require.NoError(t, err)
	groups := buildGroups(constraints, 1)

	/*
	 * Three distinct constraint sets: the left corner sees {0,1}, the
	 * middle sees all three, the right corner sees {1,2}.
	 */
	require.Len(t, groups, 3)
	assert.Equal(t, []board.Point{{X: 0, Y: 0}}, groups[0].cells)
	assert.Equal(t, []int{0, 1}, groups[0].constraints)
	assert.Equal(t, []board.Point{{X: 1, Y: 0}}, groups[1].cells)
	assert.Equal(t, []int{0, 1, 2}, groups[1].constraints)
	assert.Equal(t, []board.Point{{X: 2, Y: 0}}, groups[2].cells)
	assert.Equal(t, []int{1, 2}, groups[2].constraints)

	assert.Equal(t, 1, groups[0].maxMines)
	assert.Equal(t, 1, groups[1].maxMines)
	assert.Equal(t, 1, groups[2].maxMines)

	/* constraints learn their adjacent groups in group order */
	assert.Equal(t, []int{0, 1}, constraints[0].groups)
	assert.Equal(t, []int{0, 1, 2}, constraints[1].groups)
	assert.Equal(t, []int{1, 2}, constraints[2].groups)
}

func TestBuildGroupsMergesEquivalentCells(t *testing.T) {
	t.Parallel()

	/* both numbers see the same two cells, so those form one group */
	b := mustParse(t, `
		1 #
		1 #
	`)

	constraints, err := extractConstraints(b, 1)
	require.NoError(t, err)
	groups := buildGroups(constraints, 1)

	require.Len(t, groups, 1)
	assert.Equal(t,
		[]board.Point{{X: 1, Y: 0}, {X: 1, Y: 1}},
		groups[0].cells,
	)
	assert.Equal(t, 1, groups[0].maxMines)
}

func TestBuildGroupsMaxMinesPerCell(t *testing.T) {
	t.Parallel()

	b := mustParse(t, `
		# #
		3 0
	`)

	constraints, err := extractConstraints(b, 2)
	require.NoError(t, err)
	groups := buildGroups(constraints, 2)

	require.Len(t, groups, 1)
	/* two cells could hold 4 mines, but the number only asks for 3 */
	assert.Equal(t, 3, groups[0].maxMines)

	constraints, err = extractConstraints(b, 3)
	require.NoError(t, err)
	groups = buildGroups(constraints, 3)
	require.Len(t, groups, 1)
	assert.Equal(t, 3, groups[0].maxMines)
}

func TestBuildGroupsExcludesOuterCells(t *testing.T) {
	t.Parallel()

	b := mustParse(t, `
		# # # # #
		1 # # # #
	`)

	constraints, err := extractConstraints(b, 1)
	require.NoError(t, err)
	groups := buildGroups(constraints, 1)

	require.Len(t, groups, 1)
	assert.Equal(t,
		[]board.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		groups[0].cells,
	)
}
