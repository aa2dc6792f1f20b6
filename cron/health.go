package cron

import (
	"context"
	"fmt"

	"eventscheduler/utils"

	"github.com/go-redis/redis/v8"
	robfig "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartHealthMonitor takes a health snapshot now and then on every tick of spec.
// The returned scheduler must be stopped on shutdown.
func StartHealthMonitor(spec string, client *redis.Client, logger *zap.Logger) (*robfig.Cron, error) {
	check := func() {
		status := utils.CheckHealth(context.Background(), client)
		if status.Status != "ok" {
			logger.Warn("[HealthMonitor] dependency check failed", zap.Any("status", status))
			return
		}
		logger.Debug("[HealthMonitor] dependencies healthy", zap.Time("checkedAt", status.CheckedAt))
	}

	c := robfig.New()
	if _, err := c.AddFunc(spec, check); err != nil {
		return nil, fmt.Errorf("invalid health check spec %q: %w", spec, err)
	}

	check()
	c.Start()
	return c, nil
}
