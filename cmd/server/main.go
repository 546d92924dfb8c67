// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	appConfig "github.com/trenchcomp/teams-service/internal/config"
	"github.com/trenchcomp/teams-service/internal/database"
	"github.com/trenchcomp/teams-service/internal/database/migrate"
	"github.com/trenchcomp/teams-service/internal/health"
	"github.com/trenchcomp/teams-service/internal/middleware"
	"github.com/trenchcomp/teams-service/internal/realtime"
	teamRouter "github.com/trenchcomp/teams-service/internal/team/router"
	teamService "github.com/trenchcomp/teams-service/internal/team/service"
	"github.com/trenchcomp/teams-service/pkg/logger"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Strict policy: an unreachable database after the retry budget is
	// startup-fatal.
	db, err := database.New()
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zlog.Warnw("failed to close database", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zlog.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zlog))
	r.Use(middleware.Logger(zlog))
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))

	var broadcaster teamService.Broadcaster = realtime.NoopBroadcaster{}
	if cfg.RealtimeEnabled {
		hub := realtime.NewHub(zlog)
		realtime.RegisterRoutes(r, hub, zlog)
		broadcaster = hub
	}

	health.RegisterRoutes(r)
	teamRouter.RegisterRoutes(r, db, broadcaster, zlog)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// A serve failure feeds the same shutdown path as a signal, so the
	// deferred cleanup still runs.
	go func() {
		zlog.Infow("server starting",
			"addr", srv.Addr,
			"realtime_enabled", cfg.RealtimeEnabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Errorw("server failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit

	zlog.Infow("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Errorw("graceful shutdown failed", "error", err)
	}
}
