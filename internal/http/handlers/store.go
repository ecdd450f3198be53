package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mashiroreo/qr-menu-backend/internal/schedule"
	"github.com/mashiroreo/qr-menu-backend/internal/services"
	"github.com/mashiroreo/qr-menu-backend/pkg/models"
)

// StoreHandler handles store profile and business-hours endpoints
type StoreHandler struct {
	storeService   *services.StoreService
	storageService *services.StorageService
	qrCodeService  *services.QRCodeService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *services.StoreService, storageService *services.StorageService, qrCodeService *services.QRCodeService) *StoreHandler {
	return &StoreHandler{
		storeService:   storeService,
		storageService: storageService,
		qrCodeService:  qrCodeService,
	}
}

// Get returns the resolved store
func (h *StoreHandler) Get(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	store, err := h.storeService.GetStore(storeID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
	}

	return c.JSON(http.StatusOK, store)
}

// Update updates store profile fields
func (h *StoreHandler) Update(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	var req models.UpdateStoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	store, err := h.storeService.UpdateStore(storeID, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, store)
}

// GetBusinessHours returns the store's schedule in canonical form
func (h *StoreHandler) GetBusinessHours(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	hours, err := h.storeService.GetBusinessHours(storeID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
	}

	return c.JSON(http.StatusOK, hours)
}

// UpdateBusinessHours validates and replaces the store's schedule wholesale.
// A schedule with validation findings is rejected with 422 and the full
// findings list so the client can show every problem at once.
func (h *StoreHandler) UpdateBusinessHours(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	var req models.UpdateBusinessHoursRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	hours, result, err := h.storeService.UpdateBusinessHours(storeID, &req)
	if err != nil {
		if errors.Is(err, services.ErrScheduleRejected) {
			return c.JSON(http.StatusUnprocessableEntity, result)
		}
		if errors.Is(err, schedule.ErrMalformedSchedule) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, hours)
}

// ValidateBusinessHours runs the advisory validation pass without saving.
// The edit form calls this to keep its save button and per-period error
// annotations in sync.
func (h *StoreHandler) ValidateBusinessHours(c echo.Context) error {
	var req models.UpdateBusinessHoursRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	_, result, err := h.storeService.CheckBusinessHours(&req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// PreviewDay renders the effective hours for one date
func (h *StoreHandler) PreviewDay(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

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

// UploadLogo uploads the store logo image
func (h *StoreHandler) UploadLogo(c echo.Context) error {
	if h.storageService == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "uploads are disabled"})
	}

	storeID := c.Get("store_id").(uuid.UUID)

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "image file required"})
	}

	url, err := h.storageService.UploadImage(file, storeID.String(), "logo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.storeService.SetLogoURL(storeID, url); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save logo"})
	}

	return c.JSON(http.StatusOK, map[string]string{"logo_url": url})
}

// GenerateQRCode renders and stores the menu QR code image
func (h *StoreHandler) GenerateQRCode(c echo.Context) error {
	if h.qrCodeService == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "uploads are disabled"})
	}

	storeID := c.Get("store_id").(uuid.UUID)

	url, err := h.qrCodeService.GenerateForStore(storeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"qr_code_url": url})
}
