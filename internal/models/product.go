package models

import "time"

// Product represents a catalog entry.
// CreatedBy is set once at creation and never changes afterwards; only the
// owning user may update or delete the record.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"required,max=2000"`
	Price       float64   `json:"price" validate:"gte=0"`
	Category    string    `json:"category" validate:"required,max=100"`
	ImageURL    string    `json:"imageUrl" validate:"omitempty,url,max=500"`
	Rating      float64   `json:"rating" validate:"gte=0,lte=5"`
	InStock     bool      `json:"inStock"`
	CreatedBy   string    `json:"createdBy" gorm:"index;type:varchar(36)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
