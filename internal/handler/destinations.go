package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chronos-agency/timetravel-api/internal/catalog"
)

// DestinationHandler serves the read-only destination catalog.
type DestinationHandler struct {
	catalog *catalog.Catalog
}

// NewDestinationHandler creates a new destination handler.
func NewDestinationHandler(cat *catalog.Catalog) *DestinationHandler {
	return &DestinationHandler{catalog: cat}
}

// List handles GET /api/destinations
func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]catalog.Destination{
		"destinations": h.catalog.All(),
	})
}

// Get handles GET /api/destinations/{slug}
func (h *DestinationHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	dest, ok := h.catalog.BySlug(slug)
	if !ok {
		writeError(w, http.StatusNotFound, "Destination inconnue.")
		return
	}

	writeJSON(w, http.StatusOK, dest)
}
