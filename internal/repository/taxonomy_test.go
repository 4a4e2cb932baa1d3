package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyRepository_GetOrCreateCategory(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	first, err := repo.GetOrCreateCategory(ctx, "Travel")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := repo.GetOrCreateCategory(ctx, "Travel")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)

	blank, err := repo.GetOrCreateCategory(ctx, "   ")
	require.NoError(t, err)
	assert.Nil(t, blank)
}

func TestTaxonomyRepository_GetOrCreateTags(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	tags, err := repo.GetOrCreateTags(ctx, []string{"go", "Go", " webdev ", ""})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "go", tags[0].Name)
	assert.Equal(t, "webdev", tags[1].Name)

	// Resolving again reuses the same rows.
	again, err := repo.GetOrCreateTags(ctx, []string{"go"})
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, tags[0].ID, again[0].ID)
}

func TestTaxonomyRepository_Lists(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	_, err := repo.GetOrCreateCategory(ctx, "Food")
	require.NoError(t, err)
	_, err = repo.GetOrCreateCategory(ctx, "Books")
	require.NoError(t, err)
	_, err = repo.GetOrCreateTags(ctx, []string{"review"})
	require.NoError(t, err)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	// Sorted alphabetically.
	assert.Equal(t, "Books", categories[0].Name)

	tags, err := repo.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}
