package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio/internal/model"
)

func TestStatsService_VisitorStats(t *testing.T) {
	// Fixed clock: 2024-03-15 10:30 local time.
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	midnight := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	weekAgo := now.AddDate(0, 0, -7)

	mockRepo := new(MockVisitorRepository)
	mockRepo.On("Count", mock.Anything).Return(int64(42), nil)
	mockRepo.On("CountUnique", mock.Anything).Return(int64(30), nil)
	mockRepo.On("CountLastVisitSince", mock.Anything, midnight).Return(int64(5), nil)
	mockRepo.On("CountLastVisitSince", mock.Anything, weekAgo).Return(int64(17), nil)
	mockRepo.On("GroupCounts", mock.Anything, "country", topGroupLimit).Return([]model.GroupCount{
		{Name: "US", Count: 2},
		{Name: "DE", Count: 1},
	}, nil)
	mockRepo.On("GroupCounts", mock.Anything, "device", topGroupLimit).Return([]model.GroupCount{
		{Name: "desktop", Count: 25},
		{Name: "mobile", Count: 17},
	}, nil)
	mockRepo.On("GroupCounts", mock.Anything, "browser", topGroupLimit).Return([]model.GroupCount{}, nil)
	mockRepo.On("GroupCounts", mock.Anything, "os", topGroupLimit).Return([]model.GroupCount{
		{Name: "Linux", Count: 42},
	}, nil)

	service := &statsService{
		visitorRepo: mockRepo,
		now:         func() time.Time { return now },
	}

	stats, err := service.VisitorStats(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, int64(42), stats.TotalVisitors)
	assert.Equal(t, int64(30), stats.UniqueVisitors)
	assert.Equal(t, int64(5), stats.TodayVisitors)
	assert.Equal(t, int64(17), stats.LastWeekVisitors)

	assert.Equal(t, []model.GroupCount{{Name: "US", Count: 2}, {Name: "DE", Count: 1}}, stats.ByCountry)
	assert.Len(t, stats.ByDevice, 2)
	assert.Empty(t, stats.ByBrowser)
	assert.Equal(t, "Linux", stats.ByOS[0].Name)

	mockRepo.AssertExpectations(t)
}

func TestStatsService_VisitorStats_RepoError(t *testing.T) {
	mockRepo := new(MockVisitorRepository)
	mockRepo.On("Count", mock.Anything).Return(int64(0), assert.AnError)

	service := NewStatsService(mockRepo)
	stats, err := service.VisitorStats(context.Background())

	assert.Error(t, err)
	assert.Nil(t, stats)
}
