package models

import "time"

// ServiceCategory is a bookable service type, e.g. deep cleaning or laundry.
type ServiceCategory struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Code        string    `bson:"code" json:"code"` // stable lowercase identifier, e.g. "deep-cleaning"
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice   float64   `bson:"base_price" json:"basePrice"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// CategoryInput is the create/update payload for service categories.
type CategoryInput struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	Active      *bool   `json:"active"`
}
