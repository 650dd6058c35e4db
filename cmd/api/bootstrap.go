package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/config"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/logging"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/memory"
	storage "github.com/njprem/TravelBand_APP_BackEnd/internal/repository/minio"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/postgres"
)

// loadRuntime reads the config and initializes logging. The returned closer
// flushes the Logstash mirror, if any.
func loadRuntime() (config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	logCfg := logging.Config{Level: cfg.LogLevel, JSONOutput: cfg.LogJSON, Output: os.Stdout}
	closer := func() {}
	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr, logging.LogstashConfig{})
		if err != nil {
			return config.Config{}, nil, fmt.Errorf("logstash: %w", err)
		}
		logCfg.Mirror = writer
		closer = func() {
			if dropped := writer.Dropped(); dropped > 0 {
				logging.Logger.Warn().Uint64("dropped", dropped).Msg("log entries not delivered to logstash")
			}
			_ = writer.Close()
		}
	}
	logging.Init(logCfg)
	return cfg, closer, nil
}

// openDatastore returns the configured driver and a function releasing it.
func openDatastore(cfg config.Config) (ports.Datastore, func(), error) {
	if cfg.Datastore == config.DatastoreMemory {
		logging.Logger.Warn().Msg("using in-memory datastore; data is lost on exit")
		return memory.New(), func() {}, nil
	}
	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return postgres.NewDatastore(db), func() { _ = db.Close() }, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	if cfg.Datastore != config.DatastorePostgres {
		return nil, fmt.Errorf("command requires DATASTORE=%s", config.DatastorePostgres)
	}
	return postgres.New(cfg.DatabaseURL)
}

// openStorage returns nil when MinIO is not configured.
func openStorage(ctx context.Context, cfg config.Config) (*storage.Storage, error) {
	if !cfg.MinIO.Enabled() {
		return nil, nil
	}
	client, err := storage.NewClient(cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.UseSSL)
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	store := storage.NewStorage(client, cfg.MinIO.PublicURL)
	if err := store.EnsureBuckets(ctx, cfg.MinIO.BucketThumbnails, cfg.MinIO.BucketImports); err != nil {
		return nil, err
	}
	return store, nil
}
