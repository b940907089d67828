package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/postforge/server/internal/auth"
	"github.com/postforge/server/internal/config"
	"github.com/postforge/server/internal/logger"
)

// @title PostForge API
// @version 1.0
// @description Privacy-first social media post scheduling and publishing platform
// @description
// @description Features:
// @description - AI-assisted post generation from a personal or business profile
// @description - Publish to LinkedIn and Facebook pages
// @description - Scheduled publishing with tier-based limits
// @description - OAuth authentication (Google)
// @description - Post metadata storage only: content is never persisted

// @contact.name API Support

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authenticated requests. Format: Bearer {token}

func main() {
	logger.Info("starting postforge server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// initialize OAuth providers
	if err := auth.InitializeProviders(); err != nil {
		logger.Fatal("failed to initialize OAuth providers", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// start scheduled post publisher with cancellable context
	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	go srv.scheduler.Start(schedulerCtx)

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// stop the scheduler before draining requests
	schedulerCancel()

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if held := srv.vault.Count(); held > 0 {
		logger.Warn("shutting down with scheduled content still held, affected posts will fail", "count", held)
	}

	// close database connection
	srv.db.Close()

	logger.Info("server stopped")
}
