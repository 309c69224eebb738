package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AgroHub-Uni-RV/Ypetec/config"
	"github.com/AgroHub-Uni-RV/Ypetec/logger"
)

var RDB *redis.Client

func InitRedis(cfg config.RedisConfig) error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RDB.Ping(ctx).Result(); err != nil {
		return err
	}

	logger.L.Info("redis connection established")
	return nil
}
