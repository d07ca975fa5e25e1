package redis

import (
	"context"

	"github.com/pramanandasarkar02/toolsai/internal/api/config"
	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

// InitRedis connects the shared Redis client.
func InitRedis(cfg config.RedisConfig) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return err
	}

	Rdb = rdb
	return nil
}

// GetRdbClient exposes the raw client for pipelines.
func GetRdbClient() *redis.Client {
	return Rdb
}
