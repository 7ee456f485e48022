package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boredgamers/tally/internal/api/request"
	"github.com/boredgamers/tally/internal/api/response"
	"github.com/boredgamers/tally/internal/services/conversation"
	"github.com/boredgamers/tally/internal/services/player"
)

// ConversationHandler drives the multi-step game-entry flow over HTTP
type ConversationHandler struct {
	manager       *conversation.Manager
	playerService player.ServiceInterface
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(manager *conversation.Manager, playerService player.ServiceInterface) *ConversationHandler {
	return &ConversationHandler{
		manager:       manager,
		playerService: playerService,
	}
}

// Start handles POST /api/v1/conversations/{id}
func (h *ConversationHandler) Start(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req request.StartConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	var mode conversation.Mode
	switch req.Mode {
	case "", string(conversation.ModeAuto):
		mode = conversation.ModeAuto
	case string(conversation.ModeManual):
		mode = conversation.ModeManual
	default:
		WriteError(w, NewInvalidRequestError("mode must be 'auto' or 'manual'"))
		return
	}

	reply := h.manager.Start(id, mode)
	response.JSON(w, http.StatusCreated, h.replyResponse(reply))
}

// Message handles POST /api/v1/conversations/{id}/messages
func (h *ConversationHandler) Message(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req request.ConversationMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	reply, err := h.manager.Advance(r.Context(), id, req.Text)
	if err != nil {
		// The session stays at its current step; the error message carries
		// what the user needs to retry it.
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.replyResponse(reply))
}

// Abandon handles DELETE /api/v1/conversations/{id}
func (h *ConversationHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.manager.Abandon(id)
	response.NoContent(w)
}

func (h *ConversationHandler) replyResponse(reply *conversation.Reply) response.ConversationReply {
	resp := response.ConversationReply{
		Prompt: reply.Prompt,
		Done:   reply.Done,
	}
	if reply.Recorded != nil {
		recorded := response.RecordedGameFromResult(reply.Recorded, h.playerService.Display)
		resp.Recorded = &recorded
	}
	return resp
}
