package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/markmind/markmind/internal/config"
	"github.com/markmind/markmind/internal/pipeline"
)

// Server is the HTTP API server for markmind.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/map/parse", s.handleParse)
		r.Post("/api/map/serialize", s.handleSerialize)
		r.Post("/api/map/layout", s.handleLayout)
		r.Post("/api/map/svg", s.handleSVG)

		r.Post("/api/import", s.handleImport)
		r.Get("/api/import/{jobID}", s.handleImportStatus)
		r.Get("/api/import/{jobID}/layout", s.handleImportLayout)
		r.Get("/api/import/{jobID}/svg", s.handleImportSVG)
		r.Post("/api/import/batch", s.handleBatchImport)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
