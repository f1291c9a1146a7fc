package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/attachments"
	"github.com/grachmannico95/accounting-sync/internal/blob"
	"github.com/grachmannico95/accounting-sync/internal/config"
	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/exporter"
	"github.com/grachmannico95/accounting-sync/internal/handler"
	"github.com/grachmannico95/accounting-sync/internal/jobqueue"
	"github.com/grachmannico95/accounting-sync/internal/provider"
	"github.com/grachmannico95/accounting-sync/internal/scheduler"
	"github.com/grachmannico95/accounting-sync/internal/server"
	"github.com/grachmannico95/accounting-sync/internal/service"
	"github.com/grachmannico95/accounting-sync/internal/storage"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	store := storage.NewMemoryStore()
	var records domain.SyncRecordRepository = store
	checks := map[string]handler.Pinger{}

	if cfg.Store.Driver == config.StoreDriverPostgres {
		pg, err := storage.NewPostgresSyncStore(cfg.Store.DatabaseURL)
		if err != nil {
			log.Fatal(ctx, "Failed to configure postgres store",
				"error", err,
			)
		}
		defer pg.Close()

		records = pg
		checks["postgres"] = pg
	}
	log.Info(ctx, "Repository initialized",
		"driver", cfg.Store.Driver,
	)

	files := blob.NewFSStore(cfg.Store.BlobRoot)
	checks["vault"] = files

	limits := provider.DefaultLimits()
	if cfg.Sync.ProviderLimitsFile != "" {
		loaded, err := provider.LoadLimitsFile(cfg.Sync.ProviderLimitsFile, limits)
		if err != nil {
			log.Fatal(ctx, "Failed to load provider limits",
				"path", cfg.Sync.ProviderLimitsFile,
				"error", err,
			)
		}
		limits = loaded
	}

	registry := provider.NewRegistry()
	registry.Register(domain.ProviderSandbox, provider.NewSandbox().Factory())
	if teamID := cfg.Sync.SandboxTeamID; teamID != "" {
		if err := seedSandboxTeam(ctx, store, files, teamID, time.Now()); err != nil {
			log.Fatal(ctx, "Failed to seed sandbox team",
				"team_id", teamID,
				"error", err,
			)
		}
		log.Info(ctx, "Sandbox team seeded",
			"team_id", teamID,
		)
	}

	queueCfg := &jobqueue.Config{
		ChannelBuffer:  cfg.JobQueue.ChannelBufferSize,
		MaxRetries:     cfg.Worker.MaxRetries,
		RetryBaseDelay: cfg.Worker.RetryBaseDelay,
	}
	queue := jobqueue.New(log, queueCfg)
	log.Info(ctx, "Job queue initialized")

	exp := exporter.New(records, queue, log, cfg.Sync.ExportBatchSize)
	engine := attachments.NewEngine(store, records, files, limits, log)

	syncService := service.NewSyncService(service.Deps{
		Transactions: store,
		Records:      records,
		Credentials:  store,
		Providers:    registry,
		Exporter:     exp,
		Engine:       engine,
		Scheduler:    queue,
	}, log)
	log.Info(ctx, "Services initialized")

	if err := queue.Subscribe(domain.JobSyncTransactions, jobqueue.NewReconciliationConsumer(syncService, log, cfg.Worker.PoolSize)); err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"job", domain.JobSyncTransactions,
			"error", err,
		)
	}
	if err := queue.Subscribe(domain.JobSyncAttachments, jobqueue.NewAttachmentSyncConsumer(syncService, log, cfg.Worker.AttachmentPoolSize)); err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"job", domain.JobSyncAttachments,
			"error", err,
		)
	}
	log.Info(ctx, "Consumers initialized",
		"reconcile_workers", cfg.Worker.PoolSize,
		"attachment_workers", cfg.Worker.AttachmentPoolSize,
	)

	if err := queue.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start job queue",
			"error", err,
		)
	}

	syncScheduler := scheduler.New(store, queue, log, scheduler.Config{
		Interval:    cfg.Sync.Interval,
		TeamSpacing: cfg.Sync.TeamSpacing,
	})
	syncScheduler.Start(ctx)

	accountingHandler := handler.NewAccountingHandler(syncService, log)
	healthHandler := handler.NewHealthHandler(checks)
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, accountingHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// stop intake first: HTTP, then the ticker, then drain the workers
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	syncScheduler.Stop()

	if err := queue.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Job queue shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
