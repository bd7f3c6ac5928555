package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rides/cmd"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := cmd.NewLogger(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to start", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to release resources", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		return
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		logger.Error("Failed to build router", "error", err)
		return
	}
	level, _ := cfg.SlogLevel()
	e.Logger.SetLevel(cmd.GommonLevel(level))

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if startErr := e.Start(cfg.HTTPAddr()); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
