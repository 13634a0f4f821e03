package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"personal-site/internal/config"
	"personal-site/internal/db"
	"personal-site/internal/repository"
)

// openStore abre el backend configurado. Si no se puede construir, el proceso
// sigue con un repositorio que falla en cada operación.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.MessageRepository, func()) {
	noop := func() {}

	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := db.NewMongoClient(ctx, cfg)
		if err != nil {
			logger.Error("failed to connect to MongoDB", zap.Error(err))
			return repository.NewUnavailableMessageRepository(err), noop
		}
		if err := db.PingMongo(ctx, client, cfg.StoreTimeout); err != nil {
			logger.Error("failed to connect to MongoDB", zap.Error(err))
		} else {
			logger.Info("connected to MongoDB")
		}
		dbName := db.DatabaseName(cfg.DBConnectionString, cfg.DBName)
		return repository.NewMongoMessageRepository(client, dbName), func() {
			ctxClose, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctxClose); err != nil {
				logger.Warn("mongo disconnect", zap.Error(err))
			}
		}

	case config.StoreRedis:
		client, err := db.NewRedisClient(cfg)
		if err != nil {
			logger.Error("failed to connect to Redis", zap.Error(err))
			return repository.NewUnavailableMessageRepository(err), noop
		}
		if err := db.PingRedis(ctx, client, cfg.StoreTimeout); err != nil {
			logger.Error("failed to connect to Redis", zap.Error(err))
		} else {
			logger.Info("connected to Redis")
		}
		return repository.NewRedisMessageRepository(client, cfg.RedisPrefix), func() {
			if err := client.Close(); err != nil {
				logger.Warn("redis close", zap.Error(err))
			}
		}

	case config.StoreMemory:
		logger.Warn("using in-memory store, messages are lost on restart")
		return repository.NewMemoryMessageRepository(), noop

	default:
		err := fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
		logger.Error("store not configured", zap.Error(err))
		return repository.NewUnavailableMessageRepository(err), noop
	}
}
