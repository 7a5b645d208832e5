package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamelink-finder/internal/ports/output"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure RedisResultCache implements ResultCache interface
var _ output.ResultCache = (*RedisResultCache)(nil)

// Config holds the Redis connection settings of the result cache
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration // zero keeps entries until evicted by Redis
}

// RedisResultCache struct - Output adapter sharing rendered search results between
// bot instances. Writes use SET NX so the first stored result wins.
type RedisResultCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisResultCache connects to Redis and verifies the connection
func NewRedisResultCache(cfg Config) (*RedisResultCache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "gamelinks:result:"
	}

	logrus.Infof("Result cache connected to redis at %s", cfg.Addr)
	return &RedisResultCache{
		client: client,
		prefix: prefix,
		ttl:    cfg.TTL,
	}, nil
}

// Get returns the rendered result stored for key
func (c *RedisResultCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return val, true, nil
}

// Put stores rendered under key unless the key already holds a value
func (c *RedisResultCache) Put(ctx context.Context, key, rendered string) error {
	if err := c.client.SetNX(ctx, c.prefix+key, rendered, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisResultCache) Close() error {
	return c.client.Close()
}
