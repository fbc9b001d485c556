package app

import (
	"net/http"

	"github.com/vancomm/minesweeper-solver/internal/handlers"
)

func (a *App) loadRoutes() {
	solve := handlers.NewSolveHandler(a.logger, a.ws)

	a.router.HandleFunc("POST /solve", solve.Solve)
	a.router.HandleFunc("GET /solve/connect", solve.ConnectWS)
	a.router.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		handlers.SendJSON(w, map[string]string{"status": "ok"})
	})
}
