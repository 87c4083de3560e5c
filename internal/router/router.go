package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/kuriftu-resorts/experience-api/internal/api/branch"
	"github.com/kuriftu-resorts/experience-api/internal/api/chat"
	"github.com/kuriftu-resorts/experience-api/internal/api/recommendation"
)

// Config contains dependencies needed for the router setup
type Config struct {
	BranchHandler         branch.Handler
	RecommendationHandler recommendation.Handler
	ChatHandler           chat.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/branches", cfg.BranchHandler.GetBranches)
		r.Get("/branches/{branchID}", cfg.BranchHandler.GetBranch)
		r.Get("/branches/{branchID}/activities", cfg.BranchHandler.GetBranchActivities)

		r.Post("/recommendations", cfg.RecommendationHandler.GetRecommendations)
		r.Post("/chat", cfg.ChatHandler.SendMessage)
	})

	return r
}
