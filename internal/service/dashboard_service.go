package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// LatestPostsLimit is how many recent posts the dashboard shows.
const LatestPostsLimit = 10

// DashboardService assembles the admin analytics view.
type DashboardService struct {
	stats repository.StatsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(stats repository.StatsRepository) *DashboardService {
	return &DashboardService{stats: stats}
}

// Stats returns the dashboard aggregates and the ten most recent posts.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return s.stats.Dashboard(ctx, LatestPostsLimit)
}
