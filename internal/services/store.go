package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mashiroreo/qr-menu-backend/internal/repo"
	"github.com/mashiroreo/qr-menu-backend/internal/schedule"
	"github.com/mashiroreo/qr-menu-backend/pkg/models"
)

// ErrScheduleRejected signals that the submitted schedule failed validation;
// the findings carry the details.
var ErrScheduleRejected = errors.New("schedule rejected")

// StoreService owns store profile and business-hours operations. It is one
// of the two call sites of the schedule engine (the other is the advisory
// validation endpoint backing the edit form).
type StoreService struct {
	storeRepo    *repo.StoreRepository
	categoryRepo *repo.CategoryRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo *repo.StoreRepository, categoryRepo *repo.CategoryRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo, categoryRepo: categoryRepo}
}

// GetStore gets a store by ID
func (s *StoreService) GetStore(id uuid.UUID) (*models.Store, error) {
	return s.storeRepo.GetByID(id)
}

// UpdateStore updates store profile fields
func (s *StoreService) UpdateStore(id uuid.UUID, req *models.UpdateStoreRequest) (*models.Store, error) {
	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	store.Name = req.Name
	if req.Description != nil {
		store.Description = *req.Description
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.Phone != nil {
		store.Phone = *req.Phone
	}

	if err := s.storeRepo.Update(store); err != nil {
		return nil, err
	}
	return store, nil
}

// SetLogoURL records an uploaded logo on the store
func (s *StoreService) SetLogoURL(id uuid.UUID, url string) error {
	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		return err
	}
	store.LogoURL = url
	return s.storeRepo.Update(store)
}

// GetBusinessHours returns the store's schedule in canonical form. Legacy
// rows written before the periods array existed are normalized on the way
// out.
func (s *StoreService) GetBusinessHours(id uuid.UUID) (*models.BusinessHoursResponse, error) {
	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	weekly, err := schedule.Normalize(schedule.WeeklySchedule(store.BusinessHours).Inputs())
	if err != nil {
		return nil, err
	}
	return &models.BusinessHoursResponse{
		BusinessHours:       weekly,
		SpecialBusinessDays: store.SpecialBusinessDays,
	}, nil
}

// CheckBusinessHours normalizes and validates a submitted schedule without
// saving it. The edit form calls this on every change to keep the save
// button state in sync with the findings list.
func (s *StoreService) CheckBusinessHours(req *models.UpdateBusinessHoursRequest) (schedule.WeeklySchedule, schedule.Result, error) {
	weekly, err := schedule.Normalize(req.BusinessHours)
	if err != nil {
		return nil, schedule.Result{}, err
	}

	result, err := schedule.Validate(weekly, req.SpecialBusinessDays, time.Now())
	if err != nil {
		return nil, schedule.Result{}, err
	}
	return weekly, result, nil
}

// UpdateBusinessHours validates the submitted schedule and replaces the
// stored one wholesale. A schedule with findings is rejected with
// ErrScheduleRejected and nothing is written.
func (s *StoreService) UpdateBusinessHours(id uuid.UUID, req *models.UpdateBusinessHoursRequest) (*models.BusinessHoursResponse, schedule.Result, error) {
	if _, err := s.storeRepo.GetByID(id); err != nil {
		return nil, schedule.Result{}, err
	}

	weekly, result, err := s.CheckBusinessHours(req)
	if err != nil {
		return nil, schedule.Result{}, err
	}
	if !result.Valid {
		return nil, result, ErrScheduleRejected
	}

	specials := req.SpecialBusinessDays
	if specials == nil {
		specials = []schedule.SpecialBusinessDay{}
	}
	if err := s.storeRepo.UpdateBusinessHours(id, models.BusinessHours(weekly), specials); err != nil {
		return nil, schedule.Result{}, err
	}

	return &models.BusinessHoursResponse{
		BusinessHours:       weekly,
		SpecialBusinessDays: specials,
	}, result, nil
}

// DayPreview is one rendered day of the hours preview.
type DayPreview struct {
	Date      string             `json:"date"`
	DayOfWeek schedule.DayOfWeek `json:"dayOfWeek"`
	IsSpecial bool               `json:"isSpecial"`
	IsToday   bool               `json:"isToday"`
	Display   string             `json:"display"`
}

// PreviewDay resolves and renders the effective hours for one date.
func (s *StoreService) PreviewDay(id uuid.UUID, date string) (*DayPreview, error) {
	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	resolved, err := schedule.Resolve(date, schedule.WeeklySchedule(store.BusinessHours), store.SpecialBusinessDays, time.Now())
	if err != nil {
		return nil, err
	}
	return &DayPreview{
		Date:      resolved.Date,
		DayOfWeek: resolved.DayOfWeek,
		IsSpecial: resolved.IsSpecial,
		IsToday:   resolved.IsToday,
		Display:   schedule.FormatDay(resolved.Periods),
	}, nil
}

// PublicMenu is the guest-facing store view reached through the QR code.
type PublicMenu struct {
	Store      models.Store      `json:"store"`
	Categories []models.Category `json:"categories"`
	TodayHours DayPreview        `json:"today_hours"`
}

// GetPublicMenu assembles the public menu: active categories and items plus
// today's effective hours.
func (s *StoreService) GetPublicMenu(id uuid.UUID) (*PublicMenu, error) {
	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListWithItems(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today, err := s.PreviewDay(id, now.Format(schedule.DateLayout))
	if err != nil {
		return nil, err
	}

	return &PublicMenu{
		Store:      *store,
		Categories: categories,
		TodayHours: *today,
	}, nil
}
