package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter counts hits per key within a fixed window.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type RedisCounter struct {
	client *redis.Client
	prefix string
}

func NewRedisCounter(client *redis.Client, prefix string) *RedisCounter {
	return &RedisCounter{client: client, prefix: prefix}
}

// Incr bumps the key and starts its window when the key has no TTL yet.
// Both commands run in one MULTI/EXEC, so a counter never outlives its
// window. EXPIRE NX needs Redis 7.
func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	k := r.prefix + key

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", k, err)
	}
	return incr.Val(), nil
}
