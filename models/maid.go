package models

import "time"

// Maid is a service provider profile.
type Maid struct {
	ID           string   `bson:"id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Email        string   `bson:"email" json:"email"`
	PhoneNumber  string   `bson:"phone_number" json:"phoneNumber,omitempty"`
	Password     string   `bson:"-" json:"password,omitempty"`
	PasswordHash string   `bson:"password_hash" json:"-"`
	Bio          string   `bson:"bio,omitempty" json:"bio,omitempty"`
	CategoryIDs  []string `bson:"category_ids" json:"categoryIds"`
	HourlyRate   float64  `bson:"hourly_rate" json:"hourlyRate"`
	Rating       float64  `bson:"rating" json:"rating,omitempty"`
	Status       string   `bson:"status" json:"status"` // "pending", "active", "suspended"

	CompletedBookings int       `bson:"completed_bookings" json:"completedBookings,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updatedAt"`
}

// MaidRegistrationInput is the signup payload for maids.
type MaidRegistrationInput struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	PhoneNumber string   `json:"phoneNumber"`
	Password    string   `json:"password" binding:"required,min=8"`
	CategoryIDs []string `json:"categoryIds"`
	HourlyRate  float64  `json:"hourlyRate"`
	Bio         string   `json:"bio"`
}
