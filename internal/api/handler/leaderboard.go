package handler

import (
	"net/http"

	"github.com/boredgamers/tally/internal/api/response"
	"github.com/boredgamers/tally/internal/services/leaderboard"
	"github.com/boredgamers/tally/internal/services/player"
)

// LeaderboardHandler handles the leaderboard endpoint
type LeaderboardHandler struct {
	leaderboard   leaderboard.ServiceInterface
	playerService player.ServiceInterface
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboard leaderboard.ServiceInterface, playerService player.ServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboard:   leaderboard,
		playerService: playerService,
	}
}

// Get handles GET /api/v1/leaderboard
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	lb, err := h.leaderboard.Compute(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(lb, h.playerService.Display))
}
