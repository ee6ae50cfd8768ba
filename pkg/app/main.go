package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/communityhub/pkg/cache"
	"github.com/ghuser/communityhub/pkg/config"
	"github.com/ghuser/communityhub/pkg/database"
	"github.com/ghuser/communityhub/pkg/events"
	"github.com/ghuser/communityhub/pkg/logger"
	"github.com/ghuser/communityhub/pkg/storage"
	"github.com/ghuser/communityhub/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "document saved", "document_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	Storage        *storage.ImageStore
	TemporalClient *workflows.TemporalClient // nil unless TEMPORAL_ENABLED
	SessionStore   sessions.Store            // Redis-backed session store; nil in worker process
}

// IsProduction reports whether error details must be hidden from clients.
func (a *Application) IsProduction() bool {
	return a.Config != nil && a.Config.Environment == config.EnvProduction
}
