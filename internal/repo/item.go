package repo

import (
	"github.com/google/uuid"
	"github.com/mashiroreo/qr-menu-backend/pkg/models"
	"gorm.io/gorm"
)

// MenuItemRepository handles menu item data access
type MenuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

// GetByID gets a menu item by ID
func (r *MenuItemRepository) GetByID(storeID, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.Where("id = ? AND store_id = ?", id, storeID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create creates a new menu item
func (r *MenuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// Update updates a menu item
func (r *MenuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

// Delete soft deletes a menu item
func (r *MenuItemRepository) Delete(storeID, id uuid.UUID) error {
	return r.db.Where("id = ? AND store_id = ?", id, storeID).Delete(&models.MenuItem{}).Error
}

// ListByCategory gets all items of a category, ordered by sort_order
func (r *MenuItemRepository) ListByCategory(storeID, categoryID uuid.UUID) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Where("store_id = ? AND category_id = ?", storeID, categoryID).Order("sort_order ASC, name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Reorder rewrites sort_order for every listed item in one transaction
func (r *MenuItemRepository) Reorder(storeID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			result := tx.Model(&models.MenuItem{}).
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
