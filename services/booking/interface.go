package booking

import (
	"context"

	bookingRepo "maidly/database/repository/booking"
	categoryRepo "maidly/database/repository/category"
	maidRepo "maidly/database/repository/maid"
	scheduleRepo "maidly/database/repository/schedule"
	"maidly/models"
	"maidly/services/notification"
	"maidly/services/tasks"
)

// BookingService creates bookings after conflict checks and drives the
// booking lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, customerID string, input models.BookingRequestInput) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	// UpdateStatus applies one lifecycle transition on behalf of the given
	// actor. actorRole is "user" or "maid".
	UpdateStatus(ctx context.Context, bookingID, newStatus, actorID, actorRole string) (*models.Booking, error)
	MarkPaid(ctx context.Context, bookingID string) (*models.Booking, error)
	ListForMaid(ctx context.Context, maidID string, limit int64) ([]models.Booking, error)
	ListForCustomer(ctx context.Context, customerID string, limit int64) ([]models.Booking, error)
	// GetSimpleAvailability enumerates the fixed 09:00-17:00 hourly slots for
	// a maid's day, ignoring the weekly template and blocks.
	GetSimpleAvailability(ctx context.Context, maidID, date string) (*models.SlotList, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo          bookingRepo.BookingRepository
	MaidRepo      maidRepo.MaidRepository
	CategoryRepo  categoryRepo.CategoryRepository
	ScheduleRepo  scheduleRepo.ScheduleRepository
	Notifications notification.NotificationService
	Reminders     tasks.ReminderScheduler
}
