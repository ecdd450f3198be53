package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mashiroreo/qr-menu-backend/internal/schedule"
	"github.com/mashiroreo/qr-menu-backend/internal/services"
)

// PublicHandler serves the unauthenticated guest-facing endpoints reached
// through the QR code
type PublicHandler struct {
	storeService *services.StoreService
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(storeService *services.StoreService) *PublicHandler {
	return &PublicHandler{storeService: storeService}
}

// GetMenu returns the public menu with today's effective hours
func (h *PublicHandler) GetMenu(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("store_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid store ID"})
	}

	menu, err := h.storeService.GetPublicMenu(storeID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
	}

	return c.JSON(http.StatusOK, menu)
}

// GetHours returns the effective hours for an arbitrary date, for the
// guest-facing hours page
func (h *PublicHandler) GetHours(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("store_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid store ID"})
	}

	date := c.QueryParam("date")
	if date == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date query parameter required"})
	}

	preview, err := h.storeService.PreviewDay(storeID, date)
	if err != nil {
		if errors.Is(err, schedule.ErrMalformedSchedule) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		}
		return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
	}

	return c.JSON(http.StatusOK, preview)
}
