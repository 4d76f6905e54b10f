package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/growthtrack/pkg/app"
	"github.com/ghuser/growthtrack/pkg/config"
	"github.com/ghuser/growthtrack/pkg/events"
	"github.com/ghuser/growthtrack/pkg/httpx"
	"github.com/ghuser/growthtrack/pkg/i18n"
	"github.com/ghuser/growthtrack/pkg/idgen"
	"github.com/ghuser/growthtrack/pkg/kv"
	"github.com/ghuser/growthtrack/pkg/logger"
	"github.com/ghuser/growthtrack/pkg/telemetry"
	growthApi "github.com/ghuser/growthtrack/services/growth/application/api"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Warn("unknown time zone, using local time", "time_zone", cfg.TimeZone, "error", err)
		location = time.Local
	}

	ids, err := idgen.New(cfg.IDNode)
	if err != nil {
		log.Error("failed to create id generator", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	store, err := kv.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open record store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer store.Close() //nolint:errcheck
	log.Info("record store opened", "backend", cfg.StoreBackend)

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	locale := i18n.Resolve(cfg.Locale)
	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		Store:    store,
		EventBus: eventBus,
		IDs:      ids,
		Locale:   locale,
		Location: location,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Store:    store,
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	if _, err := growthApi.GrowthRoutes(ctx, r, appConfig); err != nil {
		log.Error("failed to register growth routes", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "locale", locale.String())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	cancel()
	log.Info("server stopped")
}
