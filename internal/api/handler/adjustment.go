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

// AdjustmentHandler handles adjustment ledger endpoints
type AdjustmentHandler struct {
	ledger        *ledger.Controller
	playerService player.ServiceInterface
}

// NewAdjustmentHandler creates a new adjustment handler
func NewAdjustmentHandler(ledger *ledger.Controller, playerService player.ServiceInterface) *AdjustmentHandler {
	return &AdjustmentHandler{
		ledger:        ledger,
		playerService: playerService,
	}
}

// Record handles POST /api/v1/adjustments
func (h *AdjustmentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req request.RecordAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	adj, err := h.ledger.RecordAdjustment(r.Context(), req.Player, req.Points, req.Reason, req.Date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AdjustmentFromModel(adj, h.playerService.Display))
}

// List handles GET /api/v1/adjustments
func (h *AdjustmentHandler) List(w http.ResponseWriter, r *http.Request) {
	adjs, err := h.ledger.ListAdjustments(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.AdjustmentsResponse{Adjustments: make([]response.Adjustment, 0, len(adjs))}
	for _, adj := range adjs {
		resp.Adjustments = append(resp.Adjustments, response.AdjustmentFromModel(adj, h.playerService.Display))
	}
	response.JSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/adjustments/{id}
func (h *AdjustmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ledger.DeleteEntry(r.Context(), model.LedgerKindAdjustment, id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
