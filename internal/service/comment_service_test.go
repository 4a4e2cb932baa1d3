package service

import (
	"context"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	listByPostFn  func(context.Context, uint) ([]*models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
	countAllFn    func(context.Context) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountAll(ctx context.Context) (int64, error) {
	return s.countAllFn(ctx)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		listByPostFn:  func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		countByPostFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countAllFn:    func(_ context.Context) (int64, error) { return 0, nil },
	}
}

func TestCommentService_Add_RequiresBody(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())

	_, err := svc.Add(context.Background(), 1, nil, AddCommentInput{Body: "   "})
	assertValidationError(t, err)
}

func TestCommentService_Add_AnonymousByline(t *testing.T) {
	t.Parallel()

	var created *models.Comment
	cr := noopCommentRepo()
	cr.createFn = func(_ context.Context, c *models.Comment) error {
		created = c
		return nil
	}
	svc := NewCommentService(cr, noopPostRepo(), noopUserRepo())

	comment, err := svc.Add(context.Background(), 1, nil, AddCommentInput{Body: "hello"})
	require.NoError(t, err)
	assert.Equal(t, models.AnonymousCommenter, comment.AuthorName)
	assert.Nil(t, created.UserID)
}

func TestCommentService_Add_VisitorName(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())

	comment, err := svc.Add(context.Background(), 1, nil, AddCommentInput{
		Body: "hello", AuthorName: " Dot ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dot", comment.AuthorName)
}

func TestCommentService_Add_LoggedInUsesUsername(t *testing.T) {
	t.Parallel()

	ur := noopUserRepo()
	ur.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice"}, nil
	}
	svc := NewCommentService(noopCommentRepo(), noopPostRepo(), ur)

	userID := uint(3)
	comment, err := svc.Add(context.Background(), 1, &userID, AddCommentInput{
		Body: "hello", AuthorName: "Impostor",
	})
	require.NoError(t, err)
	// The account name always wins over the submitted one.
	assert.Equal(t, "alice", comment.AuthorName)
	require.NotNil(t, comment.UserID)
	assert.Equal(t, uint(3), *comment.UserID)
}

func TestCommentService_Add_MissingPost(t *testing.T) {
	t.Parallel()

	pr := noopPostRepo()
	pr.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}
	svc := NewCommentService(noopCommentRepo(), pr, noopUserRepo())

	_, err := svc.Add(context.Background(), 42, nil, AddCommentInput{Body: "hello"})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCommentService_List(t *testing.T) {
	t.Parallel()

	cr := noopCommentRepo()
	cr.listByPostFn = func(_ context.Context, postID uint) ([]*models.Comment, error) {
		return []*models.Comment{{ID: 1, PostID: postID}, {ID: 2, PostID: postID}}, nil
	}
	svc := NewCommentService(cr, noopPostRepo(), noopUserRepo())

	comments, err := svc.List(context.Background(), 9)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}
