package handler

import (
	"net/http"

	"github.com/boredgamers/tally/internal/api/response"
	"github.com/boredgamers/tally/internal/services/ledger"
	"github.com/boredgamers/tally/internal/services/player"
)

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	ledger        *ledger.Controller
	playerService player.ServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(ledger *ledger.Controller, playerService player.ServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		ledger:        ledger,
		playerService: playerService,
	}
}

// List handles GET /api/v1/players: every player seen in the game ledger
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.ledger.KnownPlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.PlayersResponse{Players: make([]string, 0, len(players))}
	for _, p := range players {
		resp.Players = append(resp.Players, h.playerService.Display(p))
	}
	response.JSON(w, http.StatusOK, resp)
}
