package config

import (
	"os"
	"strconv"

	"github.com/vancomm/minesweeper-solver/internal/solver"
)

// MaxConfigs is the enumeration budget applied to solve requests that do
// not ask for one themselves.
func MaxConfigs() int {
	if v, ok := os.LookupEnv("SOLVER_MAX_CONFIGS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return solver.DefaultMaxConfigs
}
