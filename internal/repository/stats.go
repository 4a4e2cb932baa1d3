package repository

import (
	"context"

	"quill/internal/cache"
	"quill/internal/models"

	"gorm.io/gorm"
)

// StatsRepository computes the admin dashboard aggregates.
type StatsRepository interface {
	// Dashboard counts every non-deleted post regardless of status and
	// returns the latest posts newest-first.
	Dashboard(ctx context.Context, latest int) (*models.DashboardStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Dashboard(ctx context.Context, latest int) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := cache.Aside(ctx, cache.DashboardKey, &stats, cache.DashboardTTL, func() error {
		live := r.db.WithContext(ctx).
			Model(&models.Post{}).
			Where("is_deleted = ?", false)

		if err := live.Session(&gorm.Session{}).Count(&stats.TotalPosts).Error; err != nil {
			return err
		}

		// Views accumulate across every post, soft-deleted ones included.
		// COALESCE keeps the sum at zero instead of NULL on an empty table.
		err := r.db.WithContext(ctx).
			Model(&models.Post{}).
			Select("COALESCE(SUM(views), 0)").
			Scan(&stats.TotalViews).Error
		if err != nil {
			return err
		}

		err = r.db.WithContext(ctx).Model(&models.Comment{}).Count(&stats.TotalComments).Error
		if err != nil {
			return err
		}

		return withCommentsCount(live.Session(&gorm.Session{})).
			Preload("User").
			Preload("Category").
			Order("posts.created_at DESC, posts.id DESC").
			Limit(latest).
			Find(&stats.LatestPosts).Error
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
