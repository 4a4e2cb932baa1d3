// Package service contains the business logic of the application.
package service

import (
	"context"
	"strings"
	"time"

	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/repository"
)

const maxTitleLength = 200

// DefaultPostsPerPage is the listing page size used when none is configured.
const DefaultPostsPerPage = 5

// PostService handles post business logic
type PostService struct {
	posts    repository.PostRepository
	taxonomy repository.TaxonomyRepository
	isAdmin  func(ctx context.Context, userID uint) (bool, error)
	pageSize int
	now      func() time.Time
}

// NewPostService creates a new post service
func NewPostService(
	posts repository.PostRepository,
	taxonomy repository.TaxonomyRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
	pageSize int,
) *PostService {
	if pageSize < 1 {
		pageSize = DefaultPostsPerPage
	}
	return &PostService{
		posts:    posts,
		taxonomy: taxonomy,
		isAdmin:  isAdmin,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// CreatePostInput carries the fields accepted when creating a post.
type CreatePostInput struct {
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Author       string     `json:"author"`
	Status       string     `json:"status"`
	Category     string     `json:"category"`
	Tags         []string   `json:"tags"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

// UpdatePostInput carries a partial update; nil fields are left unchanged.
// ClearSchedule removes an existing schedule, since a nil ScheduledFor only
// means "no change".
type UpdatePostInput struct {
	Title         *string    `json:"title"`
	Content       *string    `json:"content"`
	Author        *string    `json:"author"`
	Status        *string    `json:"status"`
	Category      *string    `json:"category"`
	Tags          *[]string  `json:"tags"`
	ScheduledFor  *time.Time `json:"scheduled_for"`
	ClearSchedule bool       `json:"clear_schedule"`
}

// PostPage is one page of a post listing.
type PostPage struct {
	Items      []*models.Post `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"total_pages"`
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return models.NewValidationError("title is required")
	}
	if len(title) > maxTitleLength {
		return models.NewValidationError("title must be at most 200 characters")
	}
	return nil
}

func validateStatus(status string) error {
	switch status {
	case models.PostStatusDraft, models.PostStatusPublished:
		return nil
	default:
		return models.NewValidationError("status must be draft or published")
	}
}

// Create validates the input and stores a new post. The caller's user, when
// present, becomes the post's owner; otherwise the display author falls back
// to the default byline.
func (s *PostService) Create(ctx context.Context, userID *uint, authorName string, input CreatePostInput) (*models.Post, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, models.NewValidationError("content is required")
	}

	status := input.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = strings.TrimSpace(authorName)
	}
	if author == "" {
		author = models.DefaultAuthorName
	}

	post := &models.Post{
		Title:        strings.TrimSpace(input.Title),
		Content:      input.Content,
		Author:       author,
		AuthorID:     userID,
		Status:       models.PostStatusDraft,
		ScheduledFor: input.ScheduledFor,
	}

	if status == models.PostStatusPublished {
		post.Status = models.PostStatusPublished
		// A future schedule defers the publish stamp; the post stays
		// unstamped until the scheduled time passes.
		if post.ScheduledFor == nil || !post.ScheduledFor.After(s.now()) {
			post.Publish(s.now())
		}
	}

	category, err := s.taxonomy.GetOrCreateCategory(ctx, input.Category)
	if err != nil {
		return nil, err
	}
	if category != nil {
		post.CategoryID = &category.ID
		post.Category = category
	}

	tags, err := s.taxonomy.GetOrCreateTags(ctx, input.Tags)
	if err != nil {
		return nil, err
	}
	post.Tags = tags

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List promotes due scheduled drafts, then returns one page of published posts.
func (s *PostService) List(ctx context.Context, query string, page int) (*PostPage, error) {
	if err := s.promoteDue(ctx); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	pageSize := s.pageSize

	items, total, err := s.posts.List(ctx, repository.ListOptions{
		Query:    query,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &PostPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Get promotes due scheduled drafts, loads the post and records the view.
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	if err := s.promoteDue(ctx); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.posts.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	post.Views++
	middleware.PostViews.Inc()

	return post, nil
}

// Update applies a partial update after checking the caller may edit the post.
func (s *PostService) Update(ctx context.Context, userID uint, id uint, input UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, userID, post); err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
		post.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, models.NewValidationError("content is required")
		}
		post.Content = *input.Content
	}
	if input.Author != nil && strings.TrimSpace(*input.Author) != "" {
		post.Author = strings.TrimSpace(*input.Author)
	}
	if input.ClearSchedule {
		post.ScheduledFor = nil
	} else if input.ScheduledFor != nil {
		post.ScheduledFor = input.ScheduledFor
	}
	if input.Status != nil {
		if err := validateStatus(*input.Status); err != nil {
			return nil, err
		}
		post.Status = *input.Status
		// Only the first transition stamps published_at, and a future
		// schedule defers the stamp.
		if post.Status == models.PostStatusPublished &&
			(post.ScheduledFor == nil || !post.ScheduledFor.After(s.now())) {
			post.Publish(s.now())
		}
	}

	if input.Category != nil {
		category, err := s.taxonomy.GetOrCreateCategory(ctx, *input.Category)
		if err != nil {
			return nil, err
		}
		if category == nil {
			post.CategoryID = nil
			post.Category = nil
		} else {
			post.CategoryID = &category.ID
			post.Category = category
		}
	}

	if input.Tags != nil {
		tags, err := s.taxonomy.GetOrCreateTags(ctx, *input.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.posts.ReplaceTags(ctx, post, tags); err != nil {
			return nil, err
		}
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete soft-deletes the post after checking the caller may remove it.
func (s *PostService) Delete(ctx context.Context, userID uint, id uint) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorize(ctx, userID, post); err != nil {
		return err
	}

	return s.posts.SoftDelete(ctx, id, s.now())
}

// authorize allows the post's owner and admins; everyone else is rejected.
func (s *PostService) authorize(ctx context.Context, userID uint, post *models.Post) error {
	if userID != 0 && post.AuthorID != nil && *post.AuthorID == userID {
		return nil
	}
	if userID != 0 && s.isAdmin != nil {
		admin, err := s.isAdmin(ctx, userID)
		if err != nil {
			return err
		}
		if admin {
			return nil
		}
	}
	return models.NewUnauthorizedError("you do not have permission to modify this post")
}

func (s *PostService) promoteDue(ctx context.Context) error {
	promoted, err := s.posts.PublishDue(ctx, s.now())
	if err != nil {
		return err
	}
	if promoted > 0 {
		middleware.ScheduledPromotions.Add(float64(promoted))
	}
	return nil
}
