package models

import "time"

// Booking lifecycle statuses. Only pending and accepted bookings occupy time
// on a maid's calendar; the other three are terminal and never block a slot.
const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a customer's booking of a maid.
type Booking struct {
	ID         string `bson:"id" json:"id"`
	MaidID     string `bson:"maid_id" json:"maidId"`
	CustomerID string `bson:"customer_id" json:"customerId"`
	CategoryID string `bson:"category_id" json:"categoryId"`
	Date       string `bson:"date" json:"date"`             // "YYYY-MM-DD"
	StartTime  string `bson:"start_time" json:"startTime"`  // "HH:MM", 24-hour
	Duration   int    `bson:"duration" json:"duration"`     // minutes, >= 30
	StartMin   int    `bson:"start_min" json:"-"`           // minutes from midnight, derived from StartTime
	EndMin     int    `bson:"end_min" json:"-"`             // StartMin + Duration
	Address    string `bson:"address" json:"address"`
	Notes      string `bson:"notes,omitempty" json:"notes,omitempty"`
	Status     string `bson:"status" json:"status"`

	// Manual two-step payment flag; there is no gateway integration.
	PaymentMethod string  `bson:"payment_method" json:"paymentMethod"` // e.g. "cash", "mpesa"
	PaymentStatus string  `bson:"payment_status" json:"paymentStatus"` // "pending" or "paid"
	TotalPrice    float64 `bson:"total_price" json:"totalPrice"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsActive reports whether the booking occupies its time window.
func (b Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusAccepted
}

// BookingRequestInput is the payload for creating a booking.
type BookingRequestInput struct {
	MaidID     string `json:"maidId" binding:"required"`
	CategoryID string `json:"serviceCategoryId" binding:"required"`
	Date       string `json:"scheduledDate" binding:"required"`
	StartTime  string `json:"scheduledTime" binding:"required"`
	Duration   int    `json:"duration" binding:"required"`
	Address    string `json:"address" binding:"required"`
	Notes      string `json:"notes"`
}

// StatusUpdateInput is the payload for booking status transitions.
type StatusUpdateInput struct {
	Status string `json:"status" binding:"required"`
}
