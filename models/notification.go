package models

import "time"

// Notification is an in-app message for a user or maid. Delivery channels
// beyond the in-app feed (push, email) are out of scope.
type Notification struct {
	ID            string    `bson:"id" json:"id"`
	RecipientID   string    `bson:"recipient_id" json:"recipientId"`
	RecipientRole string    `bson:"recipient_role" json:"recipientRole"` // "user" or "maid"
	Title         string    `bson:"title" json:"title"`
	Body          string    `bson:"body" json:"body"`
	BookingID     string    `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
	Read          bool      `bson:"read" json:"read"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for booking reminders.
type ReminderPayload struct {
	BookingID     string `json:"bookingId"`
	RecipientID   string `json:"recipientId"`
	RecipientRole string `json:"recipientRole"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
