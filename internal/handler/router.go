package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chronos-agency/timetravel-api/internal/catalog"
	"github.com/chronos-agency/timetravel-api/internal/events"
	"github.com/chronos-agency/timetravel-api/internal/middleware"
	"github.com/chronos-agency/timetravel-api/internal/quiz"
	"github.com/chronos-agency/timetravel-api/internal/relay"
	"github.com/chronos-agency/timetravel-api/internal/session"
	"github.com/chronos-agency/timetravel-api/pkg/logger"
)

// RouterConfig wires core services into the HTTP surface.
type RouterConfig struct {
	Logger   *logger.Logger
	Relay    *relay.Service
	Sessions *session.Manager
	Quiz     *quiz.Engine
	Catalog  *catalog.Catalog
	Events   *events.Publisher

	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// NewRouter builds the chi router with all middleware and routes.
func NewRouter(cfg RouterConfig) http.Handler {
	chatHandler := NewChatHandler(cfg.Relay, cfg.Logger)
	quizHandler := NewQuizHandler(cfg.Quiz, cfg.Catalog, cfg.Events, cfg.Logger)
	destinationHandler := NewDestinationHandler(cfg.Catalog)
	sessionHandler := NewSessionHandler(cfg.Sessions, cfg.Logger)
	healthHandler := NewHealthHandler(cfg.Relay)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders: []string{"X-Correlation-ID"},
		MaxAge:         300,
	}))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Méthode non autorisée. Utilisez POST.")
	})

	// Health endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimitRequests > 0 {
			r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
		}

		r.Post("/chat", chatHandler.Relay)

		r.Route("/quiz", func(r chi.Router) {
			r.Get("/questions", quizHandler.Questions)
			r.Post("/recommend", quizHandler.Recommend)
		})

		r.Route("/destinations", func(r chi.Router) {
			r.Get("/", destinationHandler.List)
			r.Get("/{slug}", destinationHandler.Get)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)
			r.Get("/{id}", sessionHandler.Get)
			r.Post("/{id}/messages", sessionHandler.Send)
		})
	})

	return r
}
