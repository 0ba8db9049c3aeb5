package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chronos-agency/timetravel-api/internal/relay"
	"github.com/chronos-agency/timetravel-api/internal/session"
	"github.com/chronos-agency/timetravel-api/pkg/logger"
)

// SessionHandler handles chat session endpoints.
type SessionHandler struct {
	sessions *session.Manager
	logger   *logger.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(mgr *session.Manager, log *logger.Logger) *SessionHandler {
	return &SessionHandler{sessions: mgr, logger: log}
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()
	writeJSON(w, http.StatusCreated, sess)
}

// Get handles GET /api/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess, err := h.sessions.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session inconnue.")
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// Send handles POST /api/sessions/{id}/messages
func (h *SessionHandler) Send(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Le champ 'message' est requis.")
		return
	}

	sess, err := h.sessions.Send(r.Context(), id, relay.Request{
		Message:         req.Message,
		DestinationSlug: req.DestinationSlug,
		QuizResult:      req.QuizResult,
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			writeError(w, http.StatusNotFound, "Session inconnue.")
		case errors.Is(err, session.ErrBusy):
			writeError(w, http.StatusConflict, "Une réponse est déjà en cours de génération.")
		default:
			writeRelayError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, sess)
}
