package seed

import (
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.Comment{},
	))
	return db
}

func TestSeeder_EnsureAdmin_Idempotent(t *testing.T) {
	t.Parallel()

	db := setupSeedTestDB(t)
	s := NewSeeder(db)

	first, err := s.EnsureAdmin("admin", "admin@example.com", "admin12345")
	require.NoError(t, err)
	assert.True(t, first.IsAdmin)

	second, err := s.EnsureAdmin("admin", "admin@example.com", "admin12345")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeeder_Run(t *testing.T) {
	t.Parallel()

	db := setupSeedTestDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(2, 3))

	var users, posts, categories, tags int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)

	assert.Equal(t, int64(3), users) // admin + 2
	assert.Equal(t, int64(3), posts)
	assert.Equal(t, int64(len(categoryNames)), categories)
	assert.Equal(t, int64(len(tagNames)), tags)

	// Every post carries an owner and a valid status.
	var all []models.Post
	require.NoError(t, db.Find(&all).Error)
	for _, p := range all {
		assert.NotNil(t, p.AuthorID)
		assert.Contains(t, []string{models.PostStatusDraft, models.PostStatusPublished}, p.Status)
	}
}

func TestSeeder_ClearAll(t *testing.T) {
	t.Parallel()

	db := setupSeedTestDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(1, 2))
	require.NoError(t, s.ClearAll())

	var users, posts int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.Zero(t, users)
	assert.Zero(t, posts)
}
