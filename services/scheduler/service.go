package scheduler

import (
	"context"

	"eventscheduler/models"

	"go.uber.org/zap"
)

// SchedulerService is what the HTTP layer calls for one schedule request.
type SchedulerService interface {
	ProcessEvents(ctx context.Context, events []models.EventRequest) (*models.ScheduleResponse, error)
}

// DefaultSchedulerService implements SchedulerService. Cache may be nil.
type DefaultSchedulerService struct {
	Cache  ResultCache
	Strict bool
	Logger *zap.Logger
}

func (s *DefaultSchedulerService) ProcessEvents(ctx context.Context, events []models.EventRequest) (*models.ScheduleResponse, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var key string
	if s.Cache != nil {
		k, err := CacheKey(events, s.Strict)
		if err != nil {
			logger.Warn("failed to derive schedule cache key", zap.Error(err))
		} else {
			key = k
			cached, ok, err := s.Cache.Get(ctx, key)
			switch {
			case err != nil:
				logger.Warn("schedule cache lookup failed", zap.String("key", key), zap.Error(err))
			case ok:
				logger.Debug("schedule cache hit", zap.String("key", key))
				return cached, nil
			}
		}
	}

	run := Schedule
	if s.Strict {
		run = ScheduleStrict
	}
	resp, err := run(events)
	if err != nil {
		return nil, err
	}

	logger.Debug("scheduled events",
		zap.Int("events", len(resp.SortedEvents)),
		zap.Int("conflicts", len(resp.Conflicts)),
	)

	if key != "" {
		if err := s.Cache.Set(ctx, key, resp); err != nil {
			logger.Warn("failed to cache schedule result", zap.String("key", key), zap.Error(err))
		}
	}
	return resp, nil
}
