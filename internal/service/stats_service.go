package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vinolog/internal/cache"
	"vinolog/internal/repository"
)

const statsCacheTTL = 5 * time.Minute

func statsCacheKey(userID uint) string {
	return fmt.Sprintf("stats:%d", userID)
}

// DashboardStats summarizes a user's diary: how many tastings they logged
// and the region they taste most. FavoriteRegion is nil when the user has no
// tastings (or none against a wine with a region).
type DashboardStats struct {
	TastingsCount  int64   `json:"tastings_count"`
	FavoriteRegion *string `json:"favorite_region"`
}

// StatsService computes read-only aggregates for the dashboard.
type StatsService interface {
	DashboardStats(ctx context.Context, userID uint) (*DashboardStats, error)
}

type statsService struct {
	tastingRepo repository.TastingRepository
	cache       *cache.Client
}

// NewStatsService builds a StatsService with repository and cache.
func NewStatsService(tastingRepo repository.TastingRepository, cache *cache.Client) StatsService {
	return &statsService{tastingRepo: tastingRepo, cache: cache}
}

// DashboardStats returns the cached stats when fresh, otherwise recomputes.
// The favorite region is the mode of wine regions over the user's tastings;
// on ties the region whose first tasting came earliest wins (the repository
// query orders by count descending, then earliest tasting).
func (s *statsService) DashboardStats(ctx context.Context, userID uint) (*DashboardStats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey(userID)); data != nil {
		var cached DashboardStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	count, err := s.tastingRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count tastings: %w", err)
	}

	stats := &DashboardStats{TastingsCount: count}

	if count > 0 {
		regions, err := s.tastingRepo.RegionCounts(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("region counts: %w", err)
		}
		if len(regions) > 0 {
			region := regions[0].Region
			stats.FavoriteRegion = &region
		}
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey(userID), payload, statsCacheTTL)
	}
	return stats, nil
}
