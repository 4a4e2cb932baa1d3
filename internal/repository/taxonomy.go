package repository

import (
	"context"
	"errors"
	"strings"

	"quill/internal/cache"
	"quill/internal/models"

	"gorm.io/gorm"
)

// TaxonomyRepository manages categories and tags, which are created on demand
// when posts reference them by name.
type TaxonomyRepository interface {
	// GetOrCreateCategory returns the category with the given name, creating
	// it first if needed. Blank names yield (nil, nil).
	GetOrCreateCategory(ctx context.Context, name string) (*models.Category, error)
	// GetOrCreateTags resolves each distinct non-blank name to a tag row.
	GetOrCreateTags(ctx context.Context, names []string) ([]models.Tag, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListTags(ctx context.Context) ([]*models.Tag, error)
}

type taxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository creates a new taxonomy repository
func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) GetOrCreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	var category models.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = models.Category{Name: name}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	cache.InvalidateTaxonomy(ctx)
	return &category, nil
}

func (r *taxonomyRepository) GetOrCreateTags(ctx context.Context, names []string) ([]models.Tag, error) {
	seen := make(map[string]bool, len(names))
	tags := make([]models.Tag, 0, len(names))
	created := false

	for _, name := range names {
		// Tag names are stored lowercase.
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		var tag models.Tag
		err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			if err := r.db.WithContext(ctx).Create(&tag).Error; err != nil {
				return nil, err
			}
			created = true
		} else if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	if created {
		cache.InvalidateTaxonomy(ctx)
	}
	return tags, nil
}

func (r *taxonomyRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := cache.Aside(ctx, cache.CategoriesKey, &categories, cache.TaxonomyTTL, func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *taxonomyRepository) ListTags(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := cache.Aside(ctx, cache.TagsKey, &tags, cache.TaxonomyTTL, func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}
