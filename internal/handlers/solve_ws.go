package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-solver/internal/board"
)

// SolveRequestFrame is one solve request over a websocket session: the
// board in the same text form the HTTP endpoint takes, plus parameters.
// A UI keeps the connection open and re-submits after every move.
type SolveRequestFrame struct {
	Board      string `json:"board"`
	Mines      int    `json:"mines"`
	PerCell    int    `json:"per_cell"`
	MaxConfigs int    `json:"max_configs,omitempty"`
}

type SolveResponseFrame struct {
	Error  string          `json:"error,omitempty"`
	Result *SolveResultDTO `json:"result,omitempty"`
}

func (h SolveHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", slog.Any("error", err))
		return
	}
	defer conn.Close()

	for {
		var frame SolveRequestFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(
				err, websocket.CloseNormalClosure, websocket.CloseGoingAway,
			) {
				h.logger.Debug("websocket closed", slog.Any("error", err))
			}
			return
		}

		response := h.solveFrame(frame)
		if err := conn.WriteJSON(response); err != nil {
			h.logger.Error("unable to send response", slog.Any("error", err))
			return
		}
	}
}

// solveFrame never breaks the session on a solve failure: a malformed or
// contradictory board is an answer to the client, not a connection error.
func (h SolveHandler) solveFrame(frame SolveRequestFrame) SolveResponseFrame {
	dto := SolveParamsDTO{
		Mines:      frame.Mines,
		PerCell:    frame.PerCell,
		MaxConfigs: frame.MaxConfigs,
	}
	if dto.PerCell == 0 {
		dto.PerCell = 1
	}
	if err := dto.Validate(); err != nil {
		return SolveResponseFrame{Error: err.Error()}
	}
	b, err := board.Parse(frame.Board)
	if err != nil {
		return SolveResponseFrame{Error: err.Error()}
	}
	result, err := h.solve(b, dto)
	if err != nil {
		return SolveResponseFrame{Error: err.Error()}
	}
	resultDTO := NewSolveResultDTO(result)
	return SolveResponseFrame{Result: &resultDTO}
}
