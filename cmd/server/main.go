package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/cluckaudit/chicken-math-api/internal/config"
	"github.com/cluckaudit/chicken-math-api/internal/scheduler"
	"github.com/cluckaudit/chicken-math-api/internal/server/handlers"
	"github.com/cluckaudit/chicken-math-api/internal/server/router"
	composersvc "github.com/cluckaudit/chicken-math-api/internal/service/composer"
	"github.com/cluckaudit/chicken-math-api/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	composer := composersvc.NewService(baseLogger.Named("svc.composer"))
	reportHandler := handlers.NewReportHandler(composer, cfg.Report.TempDir, baseLogger.Named("handlers.report"))
	engine := router.New(reportHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
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
