package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/mathadventures/internal/adaptive"
	"github.com/vytor/mathadventures/internal/api"
	"github.com/vytor/mathadventures/internal/config"
	"github.com/vytor/mathadventures/internal/db"
	"github.com/vytor/mathadventures/internal/jobs"
	"github.com/vytor/mathadventures/internal/logger"
	"github.com/vytor/mathadventures/internal/puzzle"
	"github.com/vytor/mathadventures/internal/repository/memory"
	"github.com/vytor/mathadventures/internal/repository/sqlite"
	"github.com/vytor/mathadventures/internal/services"
	"github.com/vytor/mathadventures/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("Math Adventures Server Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("fast_response_seconds=%v", cfg.FastResponseSeconds)
	log.Debug("promote_streak=%d demote_streak=%d", cfg.PromoteStreak, cfg.DemoteStreak)
	log.Debug("archive_worker_count=%d archive_queue_size=%d", cfg.ArchiveWorkerCount, cfg.ArchiveQueueSize)
	log.Debug("allowed_origins=%v", cfg.AllowedOrigins)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}

	sessions := memory.NewSessionRepository()
	puzzles := memory.NewPuzzleRepository()
	attempts := sqlite.NewAttemptRepository(database.DB)

	archivePool := worker.NewPool(cfg.ArchiveWorkerCount, cfg.ArchiveQueueSize)
	queue := jobs.NewWorkerQueue(archivePool, attempts)

	if cfg.RandomSeed != 0 {
		log.Info("using fixed puzzle seed %d", cfg.RandomSeed)
	}
	generator := puzzle.NewSeeded(cfg.RandomSeed)
	controller := adaptive.NewController(cfg.Policy())

	srv := &api.Server{
		SessionService:  services.NewSessionService(sessions, puzzles, queue),
		PracticeService: services.NewPracticeService(sessions, puzzles, generator, controller, queue),
		SummaryService:  services.NewSummaryService(sessions),
		HistoryService:  services.NewHistoryService(sessions, attempts),
		DB:              database,
		AllowedOrigins:  cfg.AllowedOrigins,
	}

	ctx, cancel := context.WithCancel(context.Background())
	archivePool.Start(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Drain queued archive jobs before their context and database go away.
	log.Debug("stopping archive pool")
	archivePool.Stop()
	cancel()

	log.Debug("closing database connection")
	if err := database.Close(); err != nil {
		log.Error("failed to close database: %v", err)
	}

	log.Info("===========================================")
	log.Info("Math Adventures Server Stopped")
	log.Info("===========================================")
}
