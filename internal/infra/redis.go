package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the client behind the tablero cache and the job queue.
// Connectivity is validated at startup; a dead redis should fail fast
// instead of surfacing later as silent cache misses.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
