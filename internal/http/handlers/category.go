package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mashiroreo/qr-menu-backend/internal/services"
	"github.com/mashiroreo/qr-menu-backend/pkg/models"
)

// CategoryHandler handles menu category endpoints
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List returns all categories for the store, ordered by sort_order
func (h *CategoryHandler) List(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	categories, err := h.categoryService.ListCategories(storeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch categories"})
	}

	return c.JSON(http.StatusOK, categories)
}

// Create creates a new category
func (h *CategoryHandler) Create(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	var req models.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	req.StoreID = storeID

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, category)
}

// Update updates an existing category
func (h *CategoryHandler) Update(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid category ID"})
	}

	var req models.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	category, err := h.categoryService.UpdateCategory(storeID, id, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, category)
}

// Delete deletes a category
func (h *CategoryHandler) Delete(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid category ID"})
	}

	if err := h.categoryService.DeleteCategory(storeID, id); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

// Reorder persists a drag-and-drop category ordering
func (h *CategoryHandler) Reorder(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	var req models.ReorderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.categoryService.ReorderCategories(storeID, &req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "failed to reorder categories"})
	}

	return c.NoContent(http.StatusNoContent)
}
