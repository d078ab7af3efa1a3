package redis

import (
	"context"
	"fmt"

	"github.com/prontomx/delivery-service/internal/config"

	"github.com/redis/go-redis/v9"
)

func New(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
