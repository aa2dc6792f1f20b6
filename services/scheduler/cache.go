package scheduler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"eventscheduler/models"
	"eventscheduler/utils"

	"github.com/go-redis/redis/v8"
)

// ResultCache memoizes schedule responses by batch digest.
type ResultCache interface {
	Get(ctx context.Context, key string) (*models.ScheduleResponse, bool, error)
	Set(ctx context.Context, key string, resp *models.ScheduleResponse) error
}

// RedisResultCache stores JSON-encoded responses in Redis with a fixed TTL.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisResultCache returns a cache writing entries that expire after ttl.
func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{client: client, ttl: ttl}
}

// CacheKey derives the cache key for a batch. Order matters: the same events in
// a different order may produce a different tie order, so they hash differently.
func CacheKey(events []models.EventRequest, strict bool) (string, error) {
	data, err := json.Marshal(events)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	key := utils.ScheduleCachePrefix
	if strict {
		key += "strict:"
	}
	return key + hex.EncodeToString(sum[:]), nil
}

func (c *RedisResultCache) Get(ctx context.Context, key string) (*models.ScheduleResponse, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var resp models.ScheduleResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return nil, false, err
	}
	return &resp, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, key string, resp *models.ScheduleResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
