package repo

import (
	"github.com/google/uuid"
	"github.com/mashiroreo/qr-menu-backend/pkg/models"
	"gorm.io/gorm"
)

// StoreRepository handles store data access
type StoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// GetByID gets a store by ID
func (r *StoreRepository) GetByID(id uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := r.db.Where("id = ?", id).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// GetByOwner gets a store by its owner ID
func (r *StoreRepository) GetByOwner(ownerID uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := r.db.Where("owner_id = ?", ownerID).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// Create creates a new store
func (r *StoreRepository) Create(store *models.Store) error {
	return r.db.Create(store).Error
}

// Update updates a store
func (r *StoreRepository) Update(store *models.Store) error {
	return r.db.Save(store).Error
}

// UpdateBusinessHours replaces the whole schedule in one write. The owner
// always submits the full structure, so there is no partial update to merge.
func (r *StoreRepository) UpdateBusinessHours(id uuid.UUID, hours models.BusinessHours, specials models.SpecialBusinessDayList) error {
	return r.db.Model(&models.Store{}).Where("id = ?", id).Updates(map[string]interface{}{
		"business_hours":        hours,
		"special_business_days": specials,
	}).Error
}
