package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boredgamers/tally/internal/api/request"
	"github.com/boredgamers/tally/internal/api/response"
	"github.com/boredgamers/tally/internal/model"
	"github.com/boredgamers/tally/internal/services/ledger"
	"github.com/boredgamers/tally/internal/services/player"
)

// GameHandler handles game ledger endpoints
type GameHandler struct {
	ledger        *ledger.Controller
	playerService player.ServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(ledger *ledger.Controller, playerService player.ServiceInterface) *GameHandler {
	return &GameHandler{
		ledger:        ledger,
		playerService: playerService,
	}
}

// Record handles POST /api/v1/games
func (h *GameHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req request.RecordGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	gameType, err := model.ParseGameType(req.GameType)
	if err != nil {
		WriteError(w, err)
		return
	}

	recorded, err := h.ledger.RecordGame(r.Context(), ledger.GameInput{
		GameName: req.GameName,
		GameType: gameType,
		Players:  req.Players,
		Ranks:    req.Ranks,
		Date:     req.Date,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RecordedGameFromResult(recorded, h.playerService.Display))
}

// RecordManual handles POST /api/v1/games/manual
func (h *GameHandler) RecordManual(w http.ResponseWriter, r *http.Request) {
	var req request.RecordManualGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	gameType, err := model.ParseGameType(req.GameType)
	if err != nil {
		WriteError(w, err)
		return
	}

	recorded, err := h.ledger.RecordManualGame(r.Context(), ledger.ManualGameInput{
		GameName: req.GameName,
		GameType: gameType,
		Players:  req.Players,
		Points:   req.Points,
		Date:     req.Date,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RecordedGameFromResult(recorded, h.playerService.Display))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.ledger.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GamesResponse{Games: make([]response.GameSummary, 0, len(games))}
	for _, g := range games {
		resp.Games = append(resp.Games, response.GameSummaryFromModel(g, h.playerService.Display))
	}
	response.JSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ledger.DeleteEntry(r.Context(), model.LedgerKindGame, id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
