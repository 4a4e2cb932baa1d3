// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"quill/internal/models"

	"gorm.io/gorm"
)

// ListOptions controls public post listings.
type ListOptions struct {
	// Query is an optional case-insensitive substring matched against title and content.
	Query string
	// Page is 1-based.
	Page     int
	PageSize int
}

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	// GetByID returns a non-deleted post with its relations and comment count.
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	// GetAnyByID bypasses the soft-delete filter; used by storage-level tooling.
	GetAnyByID(ctx context.Context, id uint) (*models.Post, error)
	// List returns the visible page of published, non-deleted posts plus the
	// total number of matches.
	List(ctx context.Context, opts ListOptions) ([]*models.Post, int64, error)
	Update(ctx context.Context, post *models.Post) error
	ReplaceTags(ctx context.Context, post *models.Post, tags []models.Tag) error
	// SoftDelete marks the post deleted. Deleting an absent or already
	// deleted post fails with NotFound rather than silently succeeding.
	SoftDelete(ctx context.Context, id uint, now time.Time) error
	// IncrementViews bumps the view counter in a single UPDATE so concurrent
	// detail reads cannot lose increments.
	IncrementViews(ctx context.Context, id uint) error
	// PublishDue promotes every non-deleted draft whose scheduled time has
	// passed. Returns the number of promoted posts.
	PublishDue(ctx context.Context, now time.Time) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withCommentsCount adds the comment count subquery to the SELECT list.
func withCommentsCount(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := withCommentsCount(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Category").
		Preload("Tags").
		Where("posts.is_deleted = ?", false).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetAnyByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, opts ListOptions) ([]*models.Post, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 5
	}

	base := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("posts.is_deleted = ? AND posts.status = ?", false, models.PostStatusPublished)

	if q := strings.TrimSpace(opts.Query); q != "" {
		// LOWER/LIKE instead of ILIKE so the same query runs on both
		// PostgreSQL and the SQLite test database.
		like := "%" + strings.ToLower(q) + "%"
		base = base.Where("(LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := withCommentsCount(base.Session(&gorm.Session{})).
		Preload("User").
		Preload("Category").
		Preload("Tags").
		Order("posts.created_at DESC, posts.id DESC").
		Limit(opts.PageSize).
		Offset((opts.Page - 1) * opts.PageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) ReplaceTags(ctx context.Context, post *models.Post, tags []models.Tag) error {
	if err := r.db.WithContext(ctx).Model(post).Association("Tags").Replace(tags); err != nil {
		return err
	}
	post.Tags = tags
	return nil
}

func (r *postRepository) SoftDelete(ctx context.Context, id uint, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"is_deleted": true,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}

func (r *postRepository) IncrementViews(ctx context.Context, id uint) error {
	// UpdateColumn keeps updated_at untouched; a view is not a content change.
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND is_deleted = ?", id, false).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}

func (r *postRepository) PublishDue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("status = ? AND is_deleted = ? AND scheduled_for IS NOT NULL AND scheduled_for <= ?",
			models.PostStatusDraft, false, now).
		Updates(map[string]any{
			"status": models.PostStatusPublished,
			// Keep the first publish stamp if the post was published before.
			"published_at": gorm.Expr("COALESCE(published_at, ?)", now),
			"updated_at":   now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
