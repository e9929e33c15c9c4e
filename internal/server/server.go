package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/program"
	"github.com/claude/liftlog/internal/storage"
	"github.com/claude/liftlog/internal/upsert"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db          *storage.DB
	resolver    program.Resolver
	prs         *upsert.Engine[models.PRKey, models.PersonalRecord]
	completions *upsert.Engine[models.CompletionKey, models.ProgramDayCompletion]
	log         *slog.Logger
	apiKey      string
	router      chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, resolver program.Resolver, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:          db,
		resolver:    resolver,
		prs:         upsert.New(db.PersonalRecords(), models.PersonalRecord.Key),
		completions: upsert.New(db.Completions(), models.ProgramDayCompletion.Key),
		log:         log,
		apiKey:      apiKey,
		router:      chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/healthz", s.handleHealthz)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(s.Identity)

		// Read endpoints
		r.Get("/templates", s.handleListTemplates)
		r.Get("/templates/{id}", s.handleGetTemplate)
		r.Get("/programs", s.handleListPrograms)
		r.Get("/programs/{id}", s.handleGetProgram)
		r.Get("/programs/{id}/day", s.handleGetTrainingDay)
		r.Get("/programs/{id}/completions", s.handleListCompletions)
		r.Get("/prs", s.handleListPRs)
		r.Get("/exercises", s.handleListExercises)

		// Write endpoints (API key required)
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/templates", s.handleCreateTemplate)
			r.Put("/templates/{id}", s.handleUpdateTemplate)
			r.Delete("/templates/{id}", s.handleDeleteTemplate)
			r.Post("/templates/{id}/assign", s.handleAssignTemplate)
			r.Delete("/programs/{id}", s.handleDeleteProgram)
			r.Put("/programs/{id}/days", s.handleUpsertProgramDay)
			r.Post("/prs", s.handleUpsertPR)
			r.Post("/prs/bulk", s.handleBulkUpsertPRs)
			r.Delete("/prs", s.handleDeletePR)
			r.Post("/exercises", s.handleCreateExercise)
			r.Delete("/exercises", s.handleDeleteExercise)
		})
	})
}

// SetMCP mounts an MCP transport handler at /mcp.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Mount("/mcp", h)
}
