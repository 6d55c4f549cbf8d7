package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"metric-engine/internal/aggregators"
	"metric-engine/internal/breaks"
	"metric-engine/internal/filters"
	internalhttp "metric-engine/internal/http"
	"metric-engine/internal/ingestors"
	"metric-engine/internal/models"
	"metric-engine/internal/notices"
	"metric-engine/internal/shared/configs"
	"metric-engine/internal/shared/loggers"
	"metric-engine/internal/sinks"
	"metric-engine/internal/stores"
	"metric-engine/internal/streams"
	"metric-engine/internal/timers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	registry            filters.Registry
	observationConsumer streams.ObservationConsumer
	backgroundCtx       context.Context
	backgroundCancel    context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "metric-engine").
		Logger()

	// Initialize sinks
	node := sinks.NewNodeIdentity(config.Engine.NodeLabel)
	breakLogger := appLogger.With().Str(loggers.FieldComponent, "breaks").Logger()
	alertLogger := appLogger.With().Str(loggers.FieldComponent, "notices").Logger()
	loggingSink := sinks.NewBreakLogSink(breakLogger)
	alertSink := sinks.NewAlertLogSink(alertLogger)

	// Initialize the filter registry with its break scheduler
	timerService := timers.NewTimerService()
	scheduler := breaks.NewScheduler(loggingSink)
	registryLogger := appLogger.With().Str(loggers.FieldComponent, "filters").Logger()
	registry := filters.NewRegistry(timerService, scheduler, registryLogger)

	// Initialize aggregation with threshold monitoring. Expired crossing
	// entries are dropped lazily on access; the periodic sweep bounds memory
	// on keys that stop receiving updates.
	thresholdState := stores.NewThresholdState()
	timerService.Every(models.DefaultNoticeCooldown, func() { thresholdState.Sweep() })
	monitor := notices.NewThresholdMonitor(thresholdState, alertSink, node)
	aggregationService := aggregators.NewAggregationService(registry, monitor)

	// Register filters declared in configuration. Registration errors are
	// configuration mistakes; they are logged by the registry and the rest of
	// the filter list still installs.
	for _, filterConfig := range config.Filters {
		filter, err := filterConfig.ToFilter()
		if err != nil {
			return nil, fmt.Errorf("failed to build filter: %w", err)
		}
		_ = registry.Register(filter.MetricID, filter)
	}

	// Initialize the observation stream
	observationQueue := streams.NewPartitionedQueue[streams.ObservationEvent]()
	observationProducer := streams.NewObservationProducer(observationQueue)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	observationConsumer := streams.NewObservationConsumer(observationQueue, aggregationService, consumerLogger)

	// Initialize ingestion
	observationService := ingestors.NewObservationService(observationProducer)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(observationService, aggregationService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:              config,
		appLogger:           appLogger,
		server:              server,
		registry:            registry,
		observationConsumer: observationConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting metric-engine service on port %d (log_level=%s, filters=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			len(app.config.Filters))

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.observationConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish
	app.observationConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
