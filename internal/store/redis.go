package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis обёртка над клиентом redis.
type Redis struct {
	Client *redis.Client
}

// NewRedis подключается к redis с короткими таймаутами.
func NewRedis(addr string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &Redis{Client: client}
}

// Healthy проверяет доступность redis.
func (r *Redis) Healthy(ctx context.Context) bool {
	if r == nil || r.Client == nil {
		return false
	}
	return r.Client.Ping(ctx).Err() == nil
}
