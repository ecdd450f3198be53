package models

import "github.com/google/uuid"

// Category represents a menu category
type Category struct {
	BaseModel
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:RESTRICT" json:"store_id"`
	Name      string    `gorm:"not null" json:"name" validate:"required"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`

	// Relationship
	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

// MenuItem represents one item on the menu
type MenuItem struct {
	BaseModel
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:RESTRICT" json:"store_id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:RESTRICT" json:"category_id"`
	Name        string    `gorm:"not null" json:"name" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	ImageURL    string    `json:"image_url"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}

// CreateCategoryRequest represents category creation data
type CreateCategoryRequest struct {
	StoreID   uuid.UUID `json:"-"`
	Name      string    `json:"name" validate:"required"`
	SortOrder int       `json:"sort_order"`
}

// UpdateCategoryRequest represents category update data
type UpdateCategoryRequest struct {
	Name      string `json:"name"`
	SortOrder *int   `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// CreateMenuItemRequest represents menu item creation data
type CreateMenuItemRequest struct {
	StoreID     uuid.UUID `json:"-"`
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Price       int64     `json:"price" validate:"gte=0"`
}

// UpdateMenuItemRequest represents menu item update data
type UpdateMenuItemRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Price       *int64     `json:"price" validate:"omitempty,gte=0"`
	IsActive    *bool      `json:"is_active"`
}

// ReorderRequest persists a drag-and-drop ordering wholesale: the client
// submits every ID in its new position.
type ReorderRequest struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids" validate:"required,min=1"`
}
