package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"personal-site/internal/config"
)

var (
	ErrMissingConnectionString = errors.New("DB_CONNECTION_STRING is not set")
	ErrMissingRedisAddr        = errors.New("REDIS_ADDR is not set")
)

// NewMongoClient construye el cliente de MongoDB. La conexión real es perezosa:
// un servidor caído se detecta en Ping o en la primera operación.
func NewMongoClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	uri := strings.TrimSpace(cfg.DBConnectionString)
	if uri == "" {
		return nil, ErrMissingConnectionString
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(cfg.StoreTimeout).
		SetServerSelectionTimeout(cfg.StoreTimeout).
		SetMaxPoolSize(10)

	return mongo.Connect(ctx, opts)
}

// DatabaseName toma la base del path del connection string, como hace mongoose,
// y usa fallback si no viene ninguna.
func DatabaseName(uri, fallback string) string {
	cs, err := connstring.ParseAndValidate(strings.TrimSpace(uri))
	if err == nil && cs.Database != "" {
		return cs.Database
	}
	return fallback
}

// PingMongo verifica conectividad con un timeout acotado.
func PingMongo(ctx context.Context, client *mongo.Client, timeout time.Duration) error {
	ctxPing, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Ping(ctxPing, nil)
}

// NewRedisClient construye el cliente de Redis.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil, ErrMissingRedisAddr
	}
	return redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.StoreTimeout,
		ReadTimeout:  cfg.StoreTimeout,
		WriteTimeout: cfg.StoreTimeout,
	}), nil
}

// PingRedis verifica conectividad con un timeout acotado.
func PingRedis(ctx context.Context, client *redis.Client, timeout time.Duration) error {
	ctxPing, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Ping(ctxPing).Err()
}
