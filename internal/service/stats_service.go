package service

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const topGroupLimit = 10

// StatsService computes the visitor dashboard summary. Read-only, computed
// fresh on every call; nothing is cached or maintained incrementally.
type StatsService interface {
	VisitorStats(ctx context.Context) (*model.VisitorStats, error)
}

type statsService struct {
	visitorRepo repository.VisitorRepository
	now         func() time.Time
}

// NewStatsService creates a new statistics service.
func NewStatsService(visitorRepo repository.VisitorRepository) StatsService {
	return &statsService{
		visitorRepo: visitorRepo,
		now:         time.Now,
	}
}

// VisitorStats aggregates totals, the midnight-aligned today count, the
// sliding seven-day window and the top-10 group-bys.
func (s *statsService) VisitorStats(ctx context.Context) (*model.VisitorStats, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	total, err := s.visitorRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count visitors: %w", err)
	}
	unique, err := s.visitorRepo.CountUnique(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unique visitors: %w", err)
	}
	today, err := s.visitorRepo.CountLastVisitSince(ctx, midnight)
	if err != nil {
		return nil, fmt.Errorf("count today visitors: %w", err)
	}
	lastWeek, err := s.visitorRepo.CountLastVisitSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("count last week visitors: %w", err)
	}

	stats := &model.VisitorStats{
		TotalVisitors:    total,
		UniqueVisitors:   unique,
		TodayVisitors:    today,
		LastWeekVisitors: lastWeek,
	}

	breakdowns := []struct {
		column string
		dest   *[]model.GroupCount
	}{
		{"country", &stats.ByCountry},
		{"device", &stats.ByDevice},
		{"browser", &stats.ByBrowser},
		{"os", &stats.ByOS},
	}
	for _, b := range breakdowns {
		groups, err := s.visitorRepo.GroupCounts(ctx, b.column, topGroupLimit)
		if err != nil {
			return nil, fmt.Errorf("group visitors by %s: %w", b.column, err)
		}
		*b.dest = groups
	}

	return stats, nil
}
