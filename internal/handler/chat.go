// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chronos-agency/timetravel-api/internal/relay"
	"github.com/chronos-agency/timetravel-api/pkg/logger"
)

// ChatRequest is the inbound body for the stateless chat endpoint.
type ChatRequest struct {
	Message         string          `json:"message"`
	DestinationSlug string          `json:"destinationSlug,omitempty"`
	QuizResult      json.RawMessage `json:"quizResult,omitempty"`
}

// ChatResponse carries the normalized assistant reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler handles the stateless chat relay endpoint.
type ChatHandler struct {
	relay  *relay.Service
	logger *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(svc *relay.Service, log *logger.Logger) *ChatHandler {
	return &ChatHandler{relay: svc, logger: log}
}

// Relay handles POST /api/chat
func (h *ChatHandler) Relay(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Le champ 'message' est requis.")
		return
	}

	reply, err := h.relay.Relay(r.Context(), relay.Request{
		Message:         req.Message,
		DestinationSlug: req.DestinationSlug,
		QuizResult:      req.QuizResult,
	})
	if err != nil {
		writeRelayError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}
