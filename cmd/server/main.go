package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/helldraft/event-backend/internal/config"
	"github.com/helldraft/event-backend/internal/history"
	"github.com/helldraft/event-backend/internal/httpapi"
	"github.com/helldraft/event-backend/internal/hub"
	"github.com/helldraft/event-backend/internal/storage"
	"github.com/helldraft/event-backend/internal/storage/gormstore"
	"github.com/helldraft/event-backend/internal/storage/memstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	var store storage.KV
	if cfg.DatabaseURL != "" {
		store, err = gormstore.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("open database", zap.Error(err))
		}
	} else {
		logger.Warn("no DATABASE_URL set, saves and run history are in-memory only")
		store = memstore.New()
	}

	runs := history.NewLog(store, logger)

	ctx := context.Background()
	h := hub.NewHub(ctx, logger)

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, store, runs, logger)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
