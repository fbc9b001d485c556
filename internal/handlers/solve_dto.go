package handlers

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-solver/internal/board"
	"github.com/vancomm/minesweeper-solver/internal/solver"
)

type SolveParamsDTO struct {
	Mines      int `schema:"mines,required"`
	PerCell    int `schema:"per_cell"`
	MaxConfigs int `schema:"max_configs"`
}

func ParseSolveParamsDTO(query url.Values) (SolveParamsDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	dto := SolveParamsDTO{PerCell: 1}
	err := dec.Decode(&dto, query)
	return dto, err
}

func (dto SolveParamsDTO) Validate() error {
	if dto.Mines < 0 {
		return fmt.Errorf("mines must be >= 0")
	}
	if dto.PerCell < 1 {
		return fmt.Errorf("per_cell must be >= 1")
	}
	return nil
}

type CellProbDTO struct {
	board.Point
	Prob float64 `json:"prob"`
}

type SolveResultDTO struct {
	Probs             []CellProbDTO        `json:"probs"`
	Groups            []solver.GroupResult `json:"groups"`
	ConfigCount       int                  `json:"config_count"`
	ExpectedEdgeMines float64              `json:"expected_edge_mines"`
	OuterCells        int                  `json:"outer_cells"`
	OuterProb         float64              `json:"outer_prob"`
}

func NewSolveResultDTO(result *solver.Result) SolveResultDTO {
	probs := make([]CellProbDTO, 0, len(result.Probs))
	for _, p := range sortedPoints(result.Probs) {
		probs = append(probs, CellProbDTO{Point: p, Prob: result.Probs[p]})
	}
	return SolveResultDTO{
		Probs:             probs,
		Groups:            result.Groups,
		ConfigCount:       result.ConfigCount,
		ExpectedEdgeMines: result.ExpectedEdgeMines,
		OuterCells:        result.OuterCells,
		OuterProb:         result.OuterProb,
	}
}
