package app

import (
	"time"

	"github.com/ghuser/growthtrack/pkg/config"
	"github.com/ghuser/growthtrack/pkg/events"
	"github.com/ghuser/growthtrack/pkg/i18n"
	"github.com/ghuser/growthtrack/pkg/idgen"
	"github.com/ghuser/growthtrack/pkg/kv"
	"github.com/ghuser/growthtrack/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's route function during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use the context
// methods and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "record added", "record_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	Store    kv.Store
	EventBus *events.EventBus // nil disables event publishing
	IDs      *idgen.Generator
	Locale   i18n.Locale
	Location *time.Location
}

// Now returns the current time in the configured location.
func (a *Application) Now() time.Time {
	if a.Location == nil {
		return time.Now()
	}
	return time.Now().In(a.Location)
}
