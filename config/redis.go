package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis returns nil when no Redis address is configured. An unreachable
// server is logged but still returned; the cache treats its errors as misses.
func InitRedis(cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADD not set, listing cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		return client
	}
	log.Println("Connected to Redis")
	return client
}
