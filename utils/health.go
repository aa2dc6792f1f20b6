package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
// Redis is nil when no cache is configured.
type HealthStatus struct {
	Status    string    `json:"status"`
	Redis     *bool     `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth = HealthStatus{Status: "ok"}
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings the given Redis client (if any) and stores a new snapshot.
func CheckHealth(ctx context.Context, client *redis.Client) HealthStatus {
	status := HealthStatus{Status: "ok", CheckedAt: time.Now().UTC()}
	if client != nil {
		pingCtx, cancel := context.WithTimeout(ctx, RedisPingTimeout)
		healthy := client.Ping(pingCtx).Err() == nil
		cancel()
		status.Redis = &healthy
		if !healthy {
			status.Status = "degraded"
		}
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}
