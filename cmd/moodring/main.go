package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rowanhale/moodring/internal/config"
	"github.com/rowanhale/moodring/internal/database"
	"github.com/rowanhale/moodring/internal/logging"
	"github.com/rowanhale/moodring/internal/server"
	"github.com/rowanhale/moodring/internal/store"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	// Pick the persistence backend once at startup. Partial remote config
	// must never select the remote variant.
	var st store.Store
	switch {
	case cfg.RemoteConfigured():
		st = store.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		logger.Info("using supabase backend", "endpoint", cfg.SupabaseURL)
	case cfg.DBPath != "":
		db, err := database.Open(cfg.DBPath)
		if err != nil {
			logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		st = store.NewSQLiteStore(db)
		logger.Info("using sqlite backend", "path", cfg.DBPath)
	default:
		if cfg.RemotePartial() {
			logger.Warn("supabase config incomplete, falling back to in-memory store")
		} else {
			logger.Warn("no backend configured, using in-memory store; data is lost on restart")
		}
		st = store.NewMemoryStore()
	}

	srv := server.New(st, "web/static", logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("moodring running", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
