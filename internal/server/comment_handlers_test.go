package server

import (
	"context"
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentsApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Get("/posts/:id/comments", s.GetComments)
	app.Post("/posts/:id/comments", s.CreateComment)
	return app
}

func seedPublishedPost(t *testing.T, s *Server) *models.Post {
	t.Helper()
	post := &models.Post{Title: "Commented", Content: "c", Author: "a",
		Status: models.PostStatusPublished}
	require.NoError(t, s.postRepo.Create(context.Background(), post))
	return post
}

func TestCreateComment_Anonymous(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	seedPublishedPost(t, s)
	app := newCommentsApp(s)

	resp := doJSON(t, app, http.MethodPost, "/posts/1/comments", fiber.Map{
		"body": "first!",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var comment models.Comment
	decodeJSON(t, resp, &comment)
	assert.Equal(t, models.AnonymousCommenter, comment.AuthorName)
	assert.Nil(t, comment.UserID)
}

func TestCreateComment_Validation(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	seedPublishedPost(t, s)
	app := newCommentsApp(s)

	resp := doJSON(t, app, http.MethodPost, "/posts/1/comments", fiber.Map{
		"body": "   ",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/posts/42/comments", fiber.Map{
		"body": "ghost post",
	}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetComments_OldestFirst(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	post := seedPublishedPost(t, s)
	app := newCommentsApp(s)
	ctx := context.Background()

	for _, body := range []string{"first", "second", "third"} {
		require.NoError(t, s.commentRepo.Create(ctx, &models.Comment{
			PostID: post.ID, AuthorName: "Anonymous", Body: body,
		}))
	}

	resp := doJSON(t, app, http.MethodGet, "/posts/1/comments", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []models.Comment
	decodeJSON(t, resp, &comments)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Body)
	assert.Equal(t, "third", comments[2].Body)
}
