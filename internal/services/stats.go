package services

import (
	"context"
	"fmt"

	"eventhub/internal/domain"
)

type statsService struct {
	statsRepo domain.StatsRepository
}

// NewStatsService creates a StatsService backed by the given repository.
func NewStatsService(statsRepo domain.StatsRepository) domain.StatsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

func (s *statsService) GetUserStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	stats, err := s.statsRepo.UserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	return stats, nil
}

func (s *statsService) GetEventStats(ctx context.Context, eventID int64) (*domain.EventStats, error) {
	stats, err := s.statsRepo.EventStats(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("event stats: %w", err)
	}
	return stats, nil
}
