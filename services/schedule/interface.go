package schedule

import (
	"context"

	bookingRepo "maidly/database/repository/booking"
	maidRepo "maidly/database/repository/maid"
	scheduleRepo "maidly/database/repository/schedule"
	"maidly/models"
)

// ScheduleService manages a maid's weekly availability template and
// blocked intervals, and answers schedule-aware availability lookups.
type ScheduleService interface {
	GetSchedule(ctx context.Context, maidID string) (*models.MaidSchedule, error)
	ReplaceWeeklySchedule(ctx context.Context, maidID string, rows []models.WeeklyAvailability) (*models.MaidSchedule, error)
	BlockSlot(ctx context.Context, maidID string, input models.BlockSlotInput) (*models.BlockedInterval, error)
	UnblockSlot(ctx context.Context, maidID, slotID string) error
	// GetAvailableSlots runs the schedule-aware enumeration for one
	// calendar day.
	GetAvailableSlots(ctx context.Context, maidID, date string) (*models.ScheduleSlotList, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo     scheduleRepo.ScheduleRepository
	MaidRepo maidRepo.MaidRepository
	Bookings bookingRepo.BookingRepository
}
