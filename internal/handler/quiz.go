package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chronos-agency/timetravel-api/internal/catalog"
	"github.com/chronos-agency/timetravel-api/internal/events"
	"github.com/chronos-agency/timetravel-api/internal/quiz"
	"github.com/chronos-agency/timetravel-api/pkg/logger"
	"github.com/chronos-agency/timetravel-api/pkg/metrics"
)

// RecommendRequest is the completed questionnaire.
type RecommendRequest struct {
	Answers []string `json:"answers"`
}

// RecommendResponse is the computed recommendation with the full destination
// record, so the client needs no second lookup.
type RecommendResponse struct {
	Destination catalog.Destination `json:"destination"`
	Itinerary   []string            `json:"itinerary"`
}

// QuizHandler handles questionnaire endpoints.
type QuizHandler struct {
	engine  *quiz.Engine
	catalog *catalog.Catalog
	events  *events.Publisher
	logger  *logger.Logger
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(engine *quiz.Engine, cat *catalog.Catalog, pub *events.Publisher, log *logger.Logger) *QuizHandler {
	return &QuizHandler{engine: engine, catalog: cat, events: pub, logger: log}
}

// Questions handles GET /api/quiz/questions
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]quiz.Question{
		"questions": quiz.Questions,
	})
}

// Recommend handles POST /api/quiz/recommend
func (h *QuizHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Réponses du questionnaire invalides.")
		return
	}

	rec, err := h.engine.Recommend(req.Answers)
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidAnswers) {
			writeError(w, http.StatusBadRequest, "Réponses du questionnaire invalides.")
			return
		}
		h.logger.Error("failed to compute recommendation")
		writeError(w, http.StatusInternalServerError, "Erreur interne.")
		return
	}

	dest, ok := h.catalog.BySlug(rec.Slug)
	if !ok {
		// NewEngine guarantees closure over the catalog; reaching this is a bug.
		h.logger.Error("recommendation produced an unknown destination")
		writeError(w, http.StatusInternalServerError, "Erreur interne.")
		return
	}

	metrics.RecordRecommendation(rec.Slug)
	h.events.QuizRecommended(rec.Slug)

	writeJSON(w, http.StatusOK, RecommendResponse{
		Destination: dest,
		Itinerary:   rec.Itinerary,
	})
}
