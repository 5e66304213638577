// Package app wires the gateway components together and manages their lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/edgard/restobot/internal/config"
	"github.com/edgard/restobot/internal/database"
	"github.com/edgard/restobot/internal/metrics"
	"github.com/edgard/restobot/internal/miniapp"
	"github.com/edgard/restobot/internal/publisher"
	"github.com/edgard/restobot/internal/scheduler"
	"github.com/edgard/restobot/internal/secret"
	"github.com/edgard/restobot/internal/server"
	"github.com/edgard/restobot/internal/setup"
	"github.com/edgard/restobot/internal/tasks"
	"github.com/edgard/restobot/internal/telegram"
	"github.com/edgard/restobot/internal/webhook"
)

// App holds the constructed components. Fields are exported for the CLI
// commands that use a single component without running the server.
type App struct {
	Config       *config.Config
	Store        database.Store
	Clients      telegram.Factory
	Orchestrator *setup.Orchestrator
	Publisher    *publisher.Publisher
	Queue        *scheduler.Queue
	Scheduler    *scheduler.Scheduler
	Server       *server.Server

	db     *sqlx.DB
	logger *slog.Logger
}

// New opens the database and builds every component from cfg.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	box, err := secret.NewBox(cfg.Database.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token box: %w", err)
	}
	if !box.Enabled() {
		logger.Warn("Database encryption key not set, bot tokens are stored in plaintext")
	}

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store := database.NewStore(db, box, logger)

	clients := telegram.NewFactory(
		telegram.WithBaseURL(cfg.Telegram.APIBaseURL),
		telegram.WithHTTPClient(telegram.NewHTTPClient(cfg.Telegram.ConnectTimeout, cfg.Telegram.RequestTimeout)),
		telegram.WithLogger(logger),
	)

	a := &App{
		Config:  cfg,
		Store:   store,
		Clients: clients,
		db:      db,
		logger:  logger.With("component", "app"),
	}

	a.Orchestrator = setup.New(setup.Config{
		AppBaseURL:      cfg.AppBaseURL(),
		WebhookSecret:   cfg.Telegram.WebhookSecret,
		MaxConnections:  cfg.Telegram.MaxConnections,
		DefaultLanguage: cfg.Telegram.DefaultLanguage,
	}, clients, logger)

	a.Publisher = publisher.New(publisher.Config{
		AppBaseURL:     cfg.AppBaseURL(),
		MaxAttempts:    cfg.Publisher.MaxAttempts,
		InitialBackoff: cfg.Publisher.InitialBackoff,
		MaxBackoff:     cfg.Publisher.MaxBackoff,
		RatePerSecond:  cfg.Publisher.RatePerSecond,
	}, store, clients, logger)

	a.Queue, err = scheduler.NewQueue(logger, scheduler.QueueConfig{
		Workers:    cfg.Publisher.Workers,
		JobTimeout: cfg.Publisher.JobTimeout,
	}, a.Publisher)
	if err != nil {
		a.Close()
		return nil, err
	}

	taskMap := tasks.RegisterAllTasks(tasks.TaskDeps{
		Logger:   logger,
		Store:    store,
		Webhooks: a.Orchestrator,
	})
	a.Scheduler, err = scheduler.NewScheduler(logger, &cfg.Scheduler, taskMap)
	if err != nil {
		a.Close()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := metrics.Register(registry); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	dispatcher := webhook.NewDispatcher(webhook.Config{
		AppBaseURL:      cfg.AppBaseURL(),
		WebhookSecret:   cfg.Telegram.WebhookSecret,
		DefaultLanguage: cfg.Telegram.DefaultLanguage,
	}, store, clients, logger)

	a.Server = server.New(cfg.HTTP, server.Deps{
		Webhook:  dispatcher,
		MiniApp:  miniapp.NewHandler(store, logger),
		Admin:    server.NewAdminHandler(store, a.Orchestrator, a.Queue, logger),
		Health:   store,
		Gatherer: registry,
	}, logger)

	return a, nil
}

// Run starts the HTTP server, the publish queue and the task scheduler, and
// blocks until ctx is cancelled or one of them fails.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("Starting gateway...")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.Server.Run(gCtx)
	})

	g.Go(func() error {
		a.Queue.Start()
		<-gCtx.Done()
		a.logger.Info("Shutdown signal received, stopping publish queue...")
		if err := a.Queue.Stop(); err != nil {
			a.logger.Error("Error stopping publish queue", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := a.Scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		<-gCtx.Done()
		a.logger.Info("Shutdown signal received, stopping scheduler...")
		if err := a.Scheduler.Stop(); err != nil {
			a.logger.Error("Error stopping scheduler", "error", err)
		}
		return nil
	})

	a.logger.Info("Gateway running. Waiting for shutdown signal or error...")
	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("Gateway stopped due to error", "error", err)
		return err
	}

	a.logger.Info("Gateway stopped gracefully")
	return nil
}

// Close releases the database.
func (a *App) Close() {
	database.CloseDB(a.db)
}
