package services

import (
	"github.com/google/uuid"
	"github.com/mashiroreo/qr-menu-backend/internal/repo"
	"github.com/mashiroreo/qr-menu-backend/pkg/models"
)

// MenuItemService owns menu item operations
type MenuItemService struct {
	itemRepo     *repo.MenuItemRepository
	categoryRepo *repo.CategoryRepository
}

// NewMenuItemService creates a new menu item service
func NewMenuItemService(itemRepo *repo.MenuItemRepository, categoryRepo *repo.CategoryRepository) *MenuItemService {
	return &MenuItemService{itemRepo: itemRepo, categoryRepo: categoryRepo}
}

// CreateMenuItem creates a new menu item in an existing category
func (s *MenuItemService) CreateMenuItem(req *models.CreateMenuItemRequest) (*models.MenuItem, error) {
	if _, err := s.categoryRepo.GetByID(req.StoreID, req.CategoryID); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		StoreID:     req.StoreID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    true,
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItem updates an existing menu item
func (s *MenuItemService) UpdateMenuItem(storeID, id uuid.UUID, req *models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.itemRepo.GetByID(storeID, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(storeID, *req.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *req.CategoryID
	}
	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetImageURL records an uploaded image on the item
func (s *MenuItemService) SetImageURL(storeID, id uuid.UUID, url string) (*models.MenuItem, error) {
	item, err := s.itemRepo.GetByID(storeID, id)
	if err != nil {
		return nil, err
	}
	item.ImageURL = url
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem deletes a menu item
func (s *MenuItemService) DeleteMenuItem(storeID, id uuid.UUID) error {
	if _, err := s.itemRepo.GetByID(storeID, id); err != nil {
		return err
	}
	return s.itemRepo.Delete(storeID, id)
}

// ListMenuItems lists a category's items
func (s *MenuItemService) ListMenuItems(storeID, categoryID uuid.UUID) ([]models.MenuItem, error) {
	return s.itemRepo.ListByCategory(storeID, categoryID)
}

// ReorderMenuItems persists a drag-and-drop ordering wholesale
func (s *MenuItemService) ReorderMenuItems(storeID uuid.UUID, req *models.ReorderRequest) error {
	return s.itemRepo.Reorder(storeID, req.OrderedIDs)
}
