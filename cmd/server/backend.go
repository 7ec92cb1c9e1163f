package main

import (
	"context"
	"fmt"

	"github.com/mmynk/restapis/internal/config"
	"github.com/mmynk/restapis/internal/storage"
	"github.com/mmynk/restapis/internal/storage/badger"
	"github.com/mmynk/restapis/internal/storage/mongo"
	"github.com/mmynk/restapis/internal/storage/sqlite"
)

// openBackend opens the document store selected by cfg.Backend.
func openBackend(ctx context.Context, cfg config.StoreConfig) (storage.Backend, error) {
	var (
		backend storage.Backend
		err     error
	)
	switch cfg.Backend {
	case config.BackendSQLite:
		backend, err = sqlite.New(cfg.SQLitePath)
	case config.BackendBadger:
		backend, err = badger.New(cfg.BadgerPath)
	case config.BackendMongo:
		backend, err = mongo.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Backend, err)
	}
	return backend, nil
}
