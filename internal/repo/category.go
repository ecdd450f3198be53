package repo

import (
	"github.com/google/uuid"
	"github.com/mashiroreo/qr-menu-backend/pkg/models"
	"gorm.io/gorm"
)

// CategoryRepository handles menu category data access
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByID gets a category by ID
func (r *CategoryRepository) GetByID(storeID, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ? AND store_id = ?", id, storeID).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update updates a category
func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete soft deletes a category
func (r *CategoryRepository) Delete(storeID, id uuid.UUID) error {
	return r.db.Where("id = ? AND store_id = ?", id, storeID).Delete(&models.Category{}).Error
}

// List gets all categories for a store, ordered by sort_order
func (r *CategoryRepository) List(storeID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("store_id = ?", storeID).Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListWithItems gets all active categories with their active items, both
// ordered by sort_order
func (r *CategoryRepository) ListWithItems(storeID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("store_id = ? AND is_active = true", storeID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = true").Order("sort_order ASC, name ASC")
		}).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// CountItems counts how many items are in this category
func (r *CategoryRepository) CountItems(storeID, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.MenuItem{}).Where("store_id = ? AND category_id = ?", storeID, id).Count(&count).Error
	return count, err
}

// Reorder rewrites sort_order for every listed category in one transaction
func (r *CategoryRepository) Reorder(storeID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			result := tx.Model(&models.Category{}).
				Where("id = ? AND store_id = ?", id, storeID).
				Update("sort_order", i)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
