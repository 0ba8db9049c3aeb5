package handler

import (
	"net/http"

	"github.com/chronos-agency/timetravel-api/internal/relay"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	relay *relay.Service
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(svc *relay.Service) *HealthHandler {
	return &HealthHandler{relay: svc}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.relay == nil || !h.relay.Configured() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "completion provider not configured",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
