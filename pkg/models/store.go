package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/mashiroreo/qr-menu-backend/internal/schedule"
)

// BusinessHours is the weekly schedule persisted as a JSONB column. The
// whole value is replaced on every save; there is no per-period identity.
type BusinessHours schedule.WeeklySchedule

// SpecialBusinessDayList is the list of date-specific overrides persisted as
// a JSONB column.
type SpecialBusinessDayList []schedule.SpecialBusinessDay

// Implement driver.Valuer interface for JSONB
func (b BusinessHours) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *BusinessHours) Scan(value interface{}) error {
	if value == nil {
		*b = BusinessHours{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, b)
}

func (s SpecialBusinessDayList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SpecialBusinessDayList) Scan(value interface{}) error {
	if value == nil {
		*s = SpecialBusinessDayList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// Store represents a restaurant whose menu is served through QR codes
type Store struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:RESTRICT" json:"owner_id"`
	Name        string    `gorm:"not null" json:"name" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	LogoURL     string    `json:"logo_url"`
	QRCodeURL   string    `json:"qr_code_url"`

	BusinessHours       BusinessHours          `gorm:"type:jsonb;default:'[]'" json:"businessHours"`
	SpecialBusinessDays SpecialBusinessDayList `gorm:"type:jsonb;default:'[]'" json:"specialBusinessDays"`

	// Relationship
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// UpdateStoreRequest represents store profile update data
type UpdateStoreRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
}

// UpdateBusinessHoursRequest carries the raw schedule as submitted by the
// edit form. Day entries may arrive partial, out of order or in the legacy
// single-period shape; normalization completes them.
type UpdateBusinessHoursRequest struct {
	BusinessHours       []schedule.DayInput           `json:"businessHours"`
	SpecialBusinessDays []schedule.SpecialBusinessDay `json:"specialBusinessDays"`
}

// BusinessHoursResponse is the canonical schedule returned to clients.
type BusinessHoursResponse struct {
	BusinessHours       schedule.WeeklySchedule       `json:"businessHours"`
	SpecialBusinessDays []schedule.SpecialBusinessDay `json:"specialBusinessDays"`
}
