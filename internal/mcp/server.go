// Package mcp exposes the training log to LLM clients over the Model
// Context Protocol: program templates, assigned programs, the day resolved
// for a date, and personal records.
package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/program"
	"github.com/claude/liftlog/internal/storage"
	"github.com/claude/liftlog/internal/upsert"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, resolver program.Resolver, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftLog training server. Query program templates, athlete programs, the training day scheduled for a date, and personal records. All data is scoped to the authenticated coach."),
	)

	h := &handlers{
		db:       db,
		resolver: resolver,
		prs:      upsert.New(db.PersonalRecords(), models.PersonalRecord.Key),
		log:      log,
	}

	s.AddTools(
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolGetTrainingDay, Handler: h.getTrainingDay},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolUpsertPersonalRecord, Handler: h.upsertPersonalRecord},
	)

	s.AddResources(
		server.ServerResource{Resource: resTemplateCatalog, Handler: h.templateCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db       *storage.DB
	resolver program.Resolver
	prs      *upsert.Engine[models.PRKey, models.PersonalRecord]
	log      *slog.Logger
}

// --- Resource definitions ---

var resTemplateCatalog = mcp.NewResource(
	"liftlog://template_catalog",
	"Template Catalog",
	mcp.WithResourceDescription("All program templates with week counts and rep targets"),
	mcp.WithMIMEType("application/json"),
)
