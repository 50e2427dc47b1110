package models

import "time"

// User is a customer account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PhoneNumber  string    `bson:"phone_number" json:"phoneNumber,omitempty"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistrationInput is the signup payload for customers.
type UserRegistrationInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required,min=8"`
	Address     string `json:"address"`
}

// CredentialsInput is the login payload shared by users and maids.
type CredentialsInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"` // "user" or "maid"
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Extra interface{} `json:"profile,omitempty"`
}
