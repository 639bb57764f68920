package services

import (
	"context"
	"fmt"

	"explorewithme/internal/domain"
)

type statsService struct {
	statsRepo domain.StatsRepository
}

func NewStatsService(statsRepo domain.StatsRepository) domain.StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) SaveHit(ctx context.Context, hit *domain.EndpointHit) error {
	if err := s.statsRepo.SaveHit(ctx, hit); err != nil {
		return fmt.Errorf("save hit: %w", err)
	}
	return nil
}

func (s *statsService) GetStats(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	if q.End.Before(q.Start) {
		return nil, domain.Validation("The end time cannot be earlier than the start time")
	}
	stats, err := s.statsRepo.GetStats(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}
