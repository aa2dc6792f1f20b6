// File: utils/cache.go
package utils

import (
	"context"
	"fmt"

	"eventscheduler/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client backing the schedule result cache.
var CacheClient *redis.Client

// InitCache connects the result cache client using the Redis settings in AppConfig.
// Unlike the other bootstrap helpers it returns the error, since the service
// runs without a cache when Redis is unreachable.
func InitCache(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, RedisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	CacheClient = client
	return client, nil
}

// GetCacheClient returns the cache client, or nil when InitCache has not succeeded.
func GetCacheClient() *redis.Client {
	return CacheClient
}
