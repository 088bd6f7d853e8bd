package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis holds the shared client the cache layer is built on.
type Redis struct {
	Client *redis.Client
}

func New(addr, password string, db int) (*Redis, error) {
	return &Redis{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}, nil
}

func (r *Redis) Close() {
	if r.Client != nil {
		r.Client.Close()
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping: %w", err)
	}

	return nil
}
