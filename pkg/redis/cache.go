package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/redis/go-redis/v9"
)

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mock/cache.go -package=mock github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/redis IRedisCache

// IRedisCache is the read-path cache the services share. Values round-trip
// through JSON, plain strings are stored as-is. Durations are seconds.
type IRedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type redisCache struct {
	client *redis.Client
	log    logger.Interface
}

func NewRedisCache(client *redis.Client, log logger.Interface) IRedisCache {
	return &redisCache{
		client: client,
		log:    log,
	}
}

func (c *redisCache) Save(ctx context.Context, key string, value any, duration int) error {
	var raw []byte

	switch v := value.(type) {
	case string:
		raw = []byte(v)
	default:
		var err error

		raw, err = json.Marshal(v)
		if err != nil {
			c.log.Error("redis - save - failed to marshal value", err)

			return err
		}
	}

	if err := c.client.Set(ctx, key, raw, time.Duration(duration)*time.Second).Err(); err != nil {
		c.log.Error("redis - save - failed to save value", err)

		return err
	}

	return nil
}

func (c *redisCache) Get(ctx context.Context, key string, value any) error {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	if s, ok := value.(*string); ok {
		*s = raw

		return nil
	}

	if err := json.Unmarshal([]byte(raw), value); err != nil {
		c.log.Error("redis - get - failed to unmarshal value", err)

		return err
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Error("redis - delete - failed to delete key", err)

		return err
	}

	return nil
}

// Clear removes every key matching the given pattern, scanning instead of
// KEYS so large keyspaces do not block the server.
func (c *redisCache) Clear(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix, 0).Iterator()

	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Error("redis - clear - failed to delete key", err)

			return err
		}
	}

	return iter.Err()
}
