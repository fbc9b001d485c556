// Package solver computes, for every unclicked cell of a partially
// revealed minesweeper board, the probability that it conceals at least
// one mine. The computation is exact: it enumerates every assignment of
// mine counts to equivalence groups of cells consistent with the revealed
// numbers and weights them combinatorially, rather than sampling.
package solver

import (
	"fmt"
	"log/slog"

	"github.com/vancomm/minesweeper-solver/internal/board"
)

var Log *slog.Logger = slog.Default()

// DefaultMaxConfigs bounds the configuration enumeration. Pathological
// boards (many large groups with wide residual ranges) fan out
// exponentially, and a solve is triggered from interactive code that
// would rather get BudgetExceededError than hang.
const DefaultMaxConfigs = 2_000_000

type Options struct {
	MaxConfigs int
}

type Option func(*Options)

func WithMaxConfigs(n int) Option {
	return func(o *Options) { o.MaxConfigs = n }
}

// ComputeProbabilities maps every unclicked cell of b to its unsafe
// probability. minesRemaining is the number of mines not yet pinned down
// by flags (i.e. total mines minus flagged mines); perCell is the maximum
// number of mines one cell may hold, 1 in a standard game.
func ComputeProbabilities(
	b *board.Board, minesRemaining, perCell int, opts ...Option,
) (map[board.Point]float64, error) {
	result, err := Solve(b, minesRemaining, perCell, opts...)
	if err != nil {
		return nil, err
	}
	return result.Probs, nil
}

// Solve is ComputeProbabilities plus the group-level diagnostics.
// It either fully succeeds or fails with one of the error types in this
// package; it never returns partial probabilities.
func Solve(
	b *board.Board, minesRemaining, perCell int, opts ...Option,
) (*Result, error) {
	if b == nil {
		return nil, fmt.Errorf("nil board")
	}
	if minesRemaining < 0 {
		return nil, fmt.Errorf("negative mines remaining (%d)", minesRemaining)
	}
	if perCell < 1 {
		return nil, fmt.Errorf("per-cell mine cap must be >= 1 (got %d)", perCell)
	}
	options := Options{MaxConfigs: DefaultMaxConfigs}
	for _, opt := range opts {
		opt(&options)
	}

	cache := newCombCache()

	var unclicked []board.Point
	for _, p := range b.Points() {
		if b.At(p).Kind == board.KindUnclicked {
			unclicked = append(unclicked, p)
		}
	}
	n := len(unclicked)

	if minesRemaining > n*perCell {
		return nil, MalformedBoardError{
			Reason: fmt.Sprintf(
				"%d mines remaining cannot fit in %d unclicked cells at %d per cell",
				minesRemaining, n, perCell,
			),
		}
	}

	constraints, err := extractConstraints(b, perCell)
	if err != nil {
		return nil, err
	}
	groups := buildGroups(constraints, perCell)

	if len(groups) == 0 {
		return solveUniform(unclicked, minesRemaining, perCell, cache)
	}

	enum := newEnumerator(groups, constraints, options.MaxConfigs)
	var cfgs [][]int
	err = enum.enumerate(func(cfg []int) error {
		cfgs = append(cfgs, append([]int(nil), cfg...))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(cfgs) == 0 {
		return nil, NoSolutionError{}
	}

	result, err := combine(groups, cfgs, perCell, minesRemaining, n, cache)
	if err != nil {
		return nil, err
	}
	if result.OuterCells > 0 {
		for _, p := range unclicked {
			if _, ok := result.Probs[p]; !ok {
				result.Probs[p] = result.OuterProb
			}
		}
	}

	Log.Debug(
		"solved board",
		slog.Int("constraints", len(constraints)),
		slog.Int("groups", len(groups)),
		slog.Int("configs", len(cfgs)),
		slog.Int("outerCells", result.OuterCells),
	)
	return result, nil
}

/*
 * With no revealed numbers there is nothing to condition on, so every
 * unclicked cell is equally likely to hold a mine and the combinatorial
 * machinery would be wasted effort.
 */
func solveUniform(
	unclicked []board.Point, mines, perCell int, cache *combCache,
) (*Result, error) {
	result := &Result{
		Probs:      make(map[board.Point]float64, len(unclicked)),
		OuterCells: len(unclicked),
		OuterMines: mines,
	}
	if len(unclicked) == 0 {
		return result, nil
	}
	p, err := cache.unsafeProb(len(unclicked), mines, perCell)
	if err != nil {
		return nil, err
	}
	p, err = checkProb(p, "uniform probability")
	if err != nil {
		return nil, err
	}
	result.OuterProb = p
	for _, cell := range unclicked {
		result.Probs[cell] = p
	}
	Log.Debug(
		"no revealed numbers, uniform fallback",
		slog.Int("unclicked", len(unclicked)),
		slog.Int("mines", mines),
	)
	return result, nil
}
