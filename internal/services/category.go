package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mashiroreo/qr-menu-backend/internal/repo"
	"github.com/mashiroreo/qr-menu-backend/pkg/models"
)

// CategoryService owns menu category operations
type CategoryService struct {
	categoryRepo *repo.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo *repo.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(req *models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		StoreID:   req.StoreID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory updates an existing category
func (s *CategoryService) UpdateCategory(storeID, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(storeID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category that has no items left
func (s *CategoryService) DeleteCategory(storeID, id uuid.UUID) error {
	if _, err := s.categoryRepo.GetByID(storeID, id); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountItems(storeID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("cannot delete a category that still has items")
	}

	return s.categoryRepo.Delete(storeID, id)
}

// ListCategories lists all categories for a store
func (s *CategoryService) ListCategories(storeID uuid.UUID) ([]models.Category, error) {
	return s.categoryRepo.List(storeID)
}

// ReorderCategories persists a drag-and-drop ordering wholesale
func (s *CategoryService) ReorderCategories(storeID uuid.UUID, req *models.ReorderRequest) error {
	return s.categoryRepo.Reorder(storeID, req.OrderedIDs)
}
