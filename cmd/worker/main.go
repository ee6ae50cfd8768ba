package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.temporal.io/sdk/worker"

	"github.com/ghuser/communityhub/pkg/app"
	"github.com/ghuser/communityhub/pkg/cache"
	"github.com/ghuser/communityhub/pkg/config"
	"github.com/ghuser/communityhub/pkg/database"
	"github.com/ghuser/communityhub/pkg/events"
	"github.com/ghuser/communityhub/pkg/logger"
	"github.com/ghuser/communityhub/pkg/storage"
	"github.com/ghuser/communityhub/pkg/telemetry"
	"github.com/ghuser/communityhub/pkg/workflows"
	resourceservices "github.com/ghuser/communityhub/services/resource/application/services"
	resourceEvents "github.com/ghuser/communityhub/services/resource/domain/events"
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

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DefinitionDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	imageStore, err := storage.NewImageStore(cfg, log)
	if err != nil {
		log.Error("failed to initialize image storage", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	var temporalClient *workflows.TemporalClient
	if cfg.TemporalEnabled {
		temporalClient, err = workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
	}

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		Storage:        imageStore,
		TemporalClient: temporalClient,
	}

	subCtx, cancelSubscribers := context.WithCancel(ctx)
	defer cancelSubscribers()
	if err := registerSubscribers(subCtx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	var imageWorker worker.Worker
	if temporalClient != nil {
		imageWorker = workflows.NewImageWorker(temporalClient, imageStore)
		if err := imageWorker.Start(); err != nil {
			log.Error("failed to start image worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("image purge worker started", "task_queue", workflows.ImagesTaskQueue)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelSubscribers()
	if imageWorker != nil {
		imageWorker.Stop()
	}

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	svcs := resourceservices.New(a)
	projector := resourceservices.NewActivityProjector(
		svcs.ActivityLog,
		svcs.Resource,
		a.Logger.With("module", "activity_projector"),
	)

	errCh, err := a.EventBus.Subscribe(ctx, resourceEvents.TopicActivityRecorded, projector.Handle)
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", resourceEvents.TopicActivityRecorded,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered",
		"topics", []string{resourceEvents.TopicActivityRecorded},
		"list_cache_ttl", a.Config.ListCacheTTL.String(),
	)
	return nil
}
