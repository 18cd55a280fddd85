package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vinolog/internal/repository"
)

func TestStatsService_DashboardStats(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockTastingRepository)
		expectedCount  int64
		expectedRegion *string
	}{
		{
			name: "empty diary",
			setupMock: func(m *MockTastingRepository) {
				m.On("CountByUser", mock.Anything, uint(1)).Return(int64(0), nil)
			},
			expectedCount:  0,
			expectedRegion: nil,
		},
		{
			name: "single region dominates",
			setupMock: func(m *MockTastingRepository) {
				m.On("CountByUser", mock.Anything, uint(1)).Return(int64(4), nil)
				m.On("RegionCounts", mock.Anything, uint(1)).Return([]repository.RegionCount{
					{Region: "Piedmont", Count: 3},
					{Region: "Burgundy", Count: 1},
				}, nil)
			},
			expectedCount:  4,
			expectedRegion: strPtr("Piedmont"),
		},
		{
			name: "tie resolves to the first row the repository orders",
			setupMock: func(m *MockTastingRepository) {
				m.On("CountByUser", mock.Anything, uint(1)).Return(int64(4), nil)
				m.On("RegionCounts", mock.Anything, uint(1)).Return([]repository.RegionCount{
					{Region: "Burgundy", Count: 2},
					{Region: "Piedmont", Count: 2},
				}, nil)
			},
			expectedCount:  4,
			expectedRegion: strPtr("Burgundy"),
		},
		{
			name: "tastings exist but no wine has a region",
			setupMock: func(m *MockTastingRepository) {
				m.On("CountByUser", mock.Anything, uint(1)).Return(int64(2), nil)
				m.On("RegionCounts", mock.Anything, uint(1)).Return([]repository.RegionCount{}, nil)
			},
			expectedCount:  2,
			expectedRegion: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTastingRepository)
			tt.setupMock(mockRepo)

			service := NewStatsService(mockRepo, nil)
			stats, err := service.DashboardStats(context.Background(), 1)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCount, stats.TastingsCount)
			if tt.expectedRegion == nil {
				assert.Nil(t, stats.FavoriteRegion)
			} else {
				assert.NotNil(t, stats.FavoriteRegion)
				assert.Equal(t, *tt.expectedRegion, *stats.FavoriteRegion)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStatsService_DashboardStatsRepoError(t *testing.T) {
	mockRepo := new(MockTastingRepository)
	mockRepo.On("CountByUser", mock.Anything, uint(1)).Return(int64(0), assert.AnError)

	service := NewStatsService(mockRepo, nil)
	stats, err := service.DashboardStats(context.Background(), 1)

	assert.Error(t, err)
	assert.Nil(t, stats)
	mockRepo.AssertExpectations(t)
}

func strPtr(s string) *string { return &s }
