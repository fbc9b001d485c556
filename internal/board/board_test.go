package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	b, err := Parse(`
		# 1  0
		F1 2  M1
		!1 X2 8
	`)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 3, b.Height())

	assert.Equal(t, Unclicked(), b.At(Point{0, 0}))
	assert.Equal(t, Num(1), b.At(Point{1, 0}))
	assert.Equal(t, Num(0), b.At(Point{2, 0}))
	assert.Equal(t, Flag(1), b.At(Point{0, 1}))
	assert.Equal(t, Num(2), b.At(Point{1, 1}))
	assert.Equal(t, Mine(1), b.At(Point{2, 1}))
	assert.Equal(t, HitMine(1), b.At(Point{0, 2}))
	assert.Equal(t, WrongFlag(2), b.At(Point{1, 2}))
	assert.Equal(t, Num(8), b.At(Point{2, 2}))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: "\n\n"},
		{name: "ragged", input: "# #\n#"},
		{name: "bad token", input: "# Z1"},
		{name: "flag without count", input: "# F"},
		{name: "zero flag", input: "F0 #"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(test.input)
			assert.Error(t, err)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	text := "# 1 F2\n2 # M1\n"
	b, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, text, b.String())
}

func TestNeighbours(t *testing.T) {
	t.Parallel()

	b, err := New(3, 3)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]Point{{1, 0}, {0, 1}, {1, 1}},
		b.Neighbours(Point{0, 0}),
	)
	assert.Len(t, b.Neighbours(Point{1, 1}), 8)
	assert.ElementsMatch(t,
		[]Point{{1, 1}, {2, 1}, {1, 2}},
		b.Neighbours(Point{2, 2}),
	)
}

func TestCounts(t *testing.T) {
	t.Parallel()

	b, err := Parse("# F2 1\n# # F1")
	require.NoError(t, err)
	assert.Equal(t, 3, b.UnclickedCount())
	assert.Equal(t, 3, b.FlaggedMines())
}

func TestPointLess(t *testing.T) {
	t.Parallel()

	assert.True(t, Point{5, 0}.Less(Point{0, 1}))
	assert.True(t, Point{0, 1}.Less(Point{1, 1}))
	assert.False(t, Point{1, 1}.Less(Point{1, 1}))
}
