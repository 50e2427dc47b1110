package bookingRepo

import (
	"context"

	"maidly/database"
	"maidly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists bookings and answers the availability engine's
// same-day queries.
type BookingRepository interface {
	// CreateIfFree inserts the booking inside a transaction after re-counting
	// overlapping active bookings, so two concurrent requests for the same
	// window cannot both commit. Returns ErrSlotTaken when the window is
	// already occupied.
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// GetActiveByMaidAndDate returns the maid's bookings for a calendar day
	// whose status is pending or accepted.
	GetActiveByMaidAndDate(ctx context.Context, maidID, date string) ([]models.Booking, error)
	ListByMaid(ctx context.Context, maidID string, limit int64) ([]models.Booking, error)
	ListByCustomer(ctx context.Context, customerID string, limit int64) ([]models.Booking, error)
	ListByMaidBetween(ctx context.Context, maidID, from, to string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) error
	SetPaymentStatus(ctx context.Context, bookingID, paymentStatus string) error
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{coll: database.DB().Collection("bookings")}
}
