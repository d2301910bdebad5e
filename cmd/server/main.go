package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/farmdash/internal/config"
	"github.com/mamadbah2/farmdash/internal/repository/mongodb"
	"github.com/mamadbah2/farmdash/internal/repository/sheets"
	"github.com/mamadbah2/farmdash/internal/scheduler"
	"github.com/mamadbah2/farmdash/internal/server/handlers"
	"github.com/mamadbah2/farmdash/internal/server/router"
	dashboardsvc "github.com/mamadbah2/farmdash/internal/service/dashboard"
	"github.com/mamadbah2/farmdash/pkg/clients/notify"
	"github.com/mamadbah2/farmdash/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := mongodb.NewStore(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongodb"))
	if err != nil {
		baseLogger.Fatal("failed to init mongodb store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	// Optional sinks for the daily report job.
	var exporter sheets.Exporter
	if cfg.Sheets.Enabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("sheets export enabled")
	} else {
		baseLogger.Warn("sheets export not configured, daily report rows stay in mongodb only")
	}

	var notifier notify.Client
	if cfg.Alerts.WebhookURL != "" {
		notifier = notify.NewClient(cfg.Alerts)
		baseLogger.Info("alert webhook enabled")
	} else {
		baseLogger.Warn("alert webhook not configured, alert push disabled")
	}

	dashboard := dashboardsvc.NewService(store, baseLogger.Named("svc.dashboard"))
	if err := dashboard.Start(context.Background()); err != nil {
		baseLogger.Fatal("failed to start dashboard watcher", zap.Error(err))
	}
	defer dashboard.Close()

	handler := handlers.New(store, dashboard, baseLogger.Named("handlers"))
	engine := router.New(handler, store, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, store, exporter, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		Handler:     engine,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: the dashboard stream endpoint holds its response
		// open for the lifetime of the client connection.
		IdleTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
