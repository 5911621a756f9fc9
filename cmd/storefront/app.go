package main

import (
	"context"
	"fmt"

	"storefront-service/internal/storage"
	"storefront-service/pkg/config"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"

	"go.uber.org/zap"
)

// setup loads configuration and initializes the logger
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger.GetLogger(), nil
}

// backend is the configured document storage with its lifecycle hooks
type backend struct {
	storage.Storage
	ready func(ctx context.Context) error
	close func() error
}

func openStorage(cfg *config.Config, log *zap.Logger) (*backend, error) {
	var b *backend

	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		db, err := database.InitDB(&cfg.DB)
		if err != nil {
			return nil, err
		}
		pg := storage.NewPostgres(db)
		if err := pg.Migrate(); err != nil {
			_ = database.Close(db)
			return nil, err
		}
		log.Info("Database connection established and migrations completed",
			zap.String("db_host", cfg.DB.Host),
			zap.String("db_name", cfg.DB.DBName))
		b = &backend{Storage: pg, ready: pg.Ping, close: func() error { return database.Close(db) }}
	default:
		log.Warn("Using in-memory storage, documents are lost on restart")
		b = &backend{Storage: storage.NewMemory(), close: func() error { return nil }}
	}

	if cfg.Storage.KeyPrefix != "" {
		b.Storage = storage.Prefixed{Prefix: cfg.Storage.KeyPrefix, Inner: b.Storage}
	}
	return b, nil
}
