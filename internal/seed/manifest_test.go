package seed

import (
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
users:
  - username: alice
    email: alice@example.com
    password: password1
    admin: true
  - username: bob
    email: bob@example.com
posts:
  - title: Welcome
    content: Hello readers
    author: alice
    status: published
    category: Announcements
    tags: [meta, hello]
    comments:
      - First!
      - Looking forward to more.
  - title: Draft ideas
    content: Not ready yet
    author: bob
`

func TestParseManifest(t *testing.T) {
	t.Parallel()

	m, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)
	require.Len(t, m.Users, 2)
	require.Len(t, m.Posts, 2)
	assert.True(t, m.Users[0].Admin)
	assert.Equal(t, "published", m.Posts[0].Status)
	assert.Len(t, m.Posts[0].Comments, 2)
}

func TestParseManifest_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseManifest([]byte("users:\n  - username: x"))
	assert.Error(t, err, "missing email")

	_, err = ParseManifest([]byte("posts:\n  - title: T\n    status: archived"))
	assert.Error(t, err, "bad status")

	_, err = ParseManifest([]byte("{not yaml"))
	assert.Error(t, err)
}

func TestApplyManifest(t *testing.T) {
	t.Parallel()

	db := setupSeedTestDB(t)
	s := NewSeeder(db)

	m, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)
	require.NoError(t, s.ApplyManifest(m))

	var alice models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&alice).Error)
	assert.True(t, alice.IsAdmin)

	var welcome models.Post
	require.NoError(t, db.Preload("Tags").Where("title = ?", "Welcome").First(&welcome).Error)
	assert.Equal(t, models.PostStatusPublished, welcome.Status)
	assert.NotNil(t, welcome.PublishedAt)
	require.NotNil(t, welcome.AuthorID)
	assert.Equal(t, alice.ID, *welcome.AuthorID)
	assert.Len(t, welcome.Tags, 2)

	var comments int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", welcome.ID).Count(&comments).Error)
	assert.Equal(t, int64(2), comments)

	var draft models.Post
	require.NoError(t, db.Where("title = ?", "Draft ideas").First(&draft).Error)
	assert.Equal(t, models.PostStatusDraft, draft.Status)
	assert.Nil(t, draft.PublishedAt)
}
