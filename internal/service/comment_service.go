package service

import (
	"context"
	"strings"

	"quill/internal/models"
	"quill/internal/repository"
)

// CommentService handles comment business logic
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	users    repository.UserRepository
}

// NewCommentService creates a new comment service
func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	users repository.UserRepository,
) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
		users:    users,
	}
}

// AddCommentInput carries the fields accepted when commenting on a post.
type AddCommentInput struct {
	Body       string `json:"body"`
	AuthorName string `json:"author_name"`
}

// Add attaches a comment to a post. Logged-in users comment under their
// username; anonymous visitors may supply a display name or fall back to
// the anonymous byline.
func (s *CommentService) Add(ctx context.Context, postID uint, userID *uint, input AddCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(input.Body) == "" {
		return nil, models.NewValidationError("comment body is required")
	}

	// The post must exist and not be deleted.
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	authorName := strings.TrimSpace(input.AuthorName)
	if userID != nil {
		user, err := s.users.GetByID(ctx, *userID)
		if err != nil {
			return nil, err
		}
		authorName = user.Username
	}
	if authorName == "" {
		authorName = models.AnonymousCommenter
	}

	comment := &models.Comment{
		PostID:     postID,
		UserID:     userID,
		AuthorName: authorName,
		Body:       strings.TrimSpace(input.Body),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// List returns a post's comments oldest-first.
func (s *CommentService) List(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID)
}
