package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a byte cache. Implementations never fail a request: errors are
// logged and reported as misses.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	DeletePrefix(ctx context.Context, prefix string)
}

type Redis struct {
	client *redis.Client
}

// New wraps client; a nil client gives a cache that always misses.
func New(client *redis.Client) Store {
	if client == nil {
		return Nop{}
	}
	return &Redis{client: client}
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Redis GET error for key %s: %v", key, err)
		}
		return nil, false
	}
	return data, true
}

func (c *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("Failed to cache value for key %s: %v", key, err)
	}
}

// DeletePrefix removes every key starting with prefix using SCAN so the
// server is never blocked by KEYS.
func (c *Redis) DeletePrefix(ctx context.Context, prefix string) {
	const scanCount = 100
	scanPattern := prefix + "*"

	var keysToDelete []string
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern '%s': %v", scanPattern, err)
			return
		}
		keysToDelete = append(keysToDelete, keys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := c.client.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error deleting %d cache keys matching '%s': %v", len(keysToDelete), scanPattern, err)
		return
	}
	log.Printf("Cache invalidated, deleted %d keys matching '%s'", len(keysToDelete), scanPattern)
}

// Nop is used when no Redis server is configured.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool)         { return nil, false }
func (Nop) Set(context.Context, string, []byte, time.Duration) {}
func (Nop) DeletePrefix(context.Context, string)               {}
