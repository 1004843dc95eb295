package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mergington/activities-api/internal/dto"
	"github.com/mergington/activities-api/internal/repository"
)

const daysCacheKey = "activities:days"

// ActivityService serves activity listings and the set of scheduled days.
type ActivityService interface {
	List(ctx context.Context, filter repository.ActivityFilter) (map[string]dto.ActivityDetail, error)
	Days(ctx context.Context) ([]string, error)
}

type activityService struct {
	activities repository.ActivityRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     zerolog.Logger
}

// NewActivityService builds the activity query service. The cache client is
// optional; a nil client disables day-list caching.
func NewActivityService(activities repository.ActivityRepository, cache *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) ActivityService {
	return &activityService{
		activities: activities,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger.With().Str("component", "activity_service").Logger(),
	}
}

func (s *activityService) List(ctx context.Context, filter repository.ActivityFilter) (map[string]dto.ActivityDetail, error) {
	activities, err := s.activities.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make(map[string]dto.ActivityDetail, len(activities))
	for _, activity := range activities {
		result[activity.Name] = dto.ActivityDetailFromModel(activity)
	}

	return result, nil
}

func (s *activityService) Days(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, daysCacheKey).Result(); err == nil {
			var days []string
			if unmarshalErr := json.Unmarshal([]byte(cached), &days); unmarshalErr == nil {
				s.logger.Debug().Msg("days cache hit")
				return days, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read days cache")
		}
	}

	activities, err := s.activities.List(ctx, repository.ActivityFilter{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	days := make([]string, 0)
	for _, activity := range activities {
		if activity.ScheduleDetails == nil {
			continue
		}
		for _, day := range activity.ScheduleDetails.Days {
			if _, ok := seen[day]; ok {
				continue
			}
			seen[day] = struct{}{}
			days = append(days, day)
		}
	}
	sort.Strings(days)

	if s.cache != nil {
		if payload, err := json.Marshal(days); err == nil {
			if err := s.cache.Set(ctx, daysCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store days cache")
			}
		}
	}

	return days, nil
}
