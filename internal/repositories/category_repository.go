package repositories

import (
	"context"
	"fmt"

	"lunargrid/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// GetByUserID retrieves the user's category definitions in canonical order,
// subcategories preloaded and ordered by position.
func (r *categoryRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.CategoryDefinition, error) {
	var categories []models.CategoryDefinition
	if err := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("subcategory_definitions.position ASC")
		}).
		Where("user_id = ?", userID).
		Order("position ASC, name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get category definitions: %w", err)
	}

	return categories, nil
}
