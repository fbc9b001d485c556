package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/vancomm/minesweeper-solver/internal/board"
	"github.com/vancomm/minesweeper-solver/internal/config"
	"github.com/vancomm/minesweeper-solver/internal/solver"
)

const maxBoardBytes = 1 << 20

type SolveHandler struct {
	logger *slog.Logger
	ws     *config.WebSocket
}

func NewSolveHandler(logger *slog.Logger, ws *config.WebSocket) *SolveHandler {
	return &SolveHandler{logger: logger, ws: ws}
}

// Solve reads a board in text form from the request body, solves it with
// the parameters from the query string and responds with the per-cell
// probabilities.
func (h SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseSolveParamsDTO(r.URL.Query())
	if err == nil {
		err = dto.Validate()
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBoardBytes))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	b, err := board.Parse(string(body))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	result, err := h.solve(b, dto)
	if err != nil {
		h.sendSolveError(w, err)
		return
	}
	sendJSONOrLog(w, h.logger, NewSolveResultDTO(result))
}

func (h SolveHandler) solve(b *board.Board, dto SolveParamsDTO) (*solver.Result, error) {
	maxConfigs := dto.MaxConfigs
	if maxConfigs <= 0 {
		maxConfigs = config.MaxConfigs()
	}
	return solver.Solve(
		b, dto.Mines, dto.PerCell, solver.WithMaxConfigs(maxConfigs),
	)
}

func (h SolveHandler) sendSolveError(w http.ResponseWriter, err error) {
	var (
		malformed  solver.MalformedBoardError
		noSolution solver.NoSolutionError
		budget     solver.BudgetExceededError
	)
	switch {
	case errors.As(err, &malformed), errors.As(err, &noSolution):
		w.WriteHeader(http.StatusBadRequest)
	case errors.As(err, &budget):
		w.WriteHeader(http.StatusUnprocessableEntity)
	default:
		h.logger.Error("solve failed", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
	sendJSONOrLog(w, h.logger, wrapError(err))
}

func sortedPoints(probs map[board.Point]float64) []board.Point {
	points := make([]board.Point, 0, len(probs))
	for p := range probs {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Less(points[j])
	})
	return points
}
