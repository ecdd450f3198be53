package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mashiroreo/qr-menu-backend/internal/services"
	"github.com/mashiroreo/qr-menu-backend/pkg/models"
)

// MenuItemHandler handles menu item endpoints
type MenuItemHandler struct {
	itemService    *services.MenuItemService
	storageService *services.StorageService
}

// NewMenuItemHandler creates a new menu item handler
func NewMenuItemHandler(itemService *services.MenuItemService, storageService *services.StorageService) *MenuItemHandler {
	return &MenuItemHandler{itemService: itemService, storageService: storageService}
}

// ListByCategory returns a category's items, ordered by sort_order
func (h *MenuItemHandler) ListByCategory(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid category ID"})
	}

	items, err := h.itemService.ListMenuItems(storeID, categoryID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch items"})
	}

	return c.JSON(http.StatusOK, items)
}

// Create creates a new menu item
func (h *MenuItemHandler) Create(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	var req models.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	req.StoreID = storeID

	item, err := h.itemService.CreateMenuItem(&req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, item)
}

// Update updates an existing menu item
func (h *MenuItemHandler) Update(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
	}

	var req models.UpdateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.itemService.UpdateMenuItem(storeID, id, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, item)
}

// Delete deletes a menu item
func (h *MenuItemHandler) Delete(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
	}

	if err := h.itemService.DeleteMenuItem(storeID, id); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadImage uploads an item image and records it on the item
func (h *MenuItemHandler) UploadImage(c echo.Context) error {
	if h.storageService == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "uploads are disabled"})
	}

	storeID := c.Get("store_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "image file required"})
	}

	url, err := h.storageService.UploadImage(file, storeID.String(), "items")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.itemService.SetImageURL(storeID, id, url)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, item)
}

// Reorder persists a drag-and-drop item ordering
func (h *MenuItemHandler) Reorder(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	var req models.ReorderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.itemService.ReorderMenuItems(storeID, &req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "failed to reorder items"})
	}

	return c.NoContent(http.StatusNoContent)
}
