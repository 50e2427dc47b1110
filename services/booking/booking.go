package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "maidly/database/repository/booking"
	"maidly/models"
	"maidly/services/scheduling"
	"maidly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const minBookingDuration = 30 // minutes

// CreateBooking validates the request, pre-checks the window against the
// maid's active bookings and persists via the transactional insert, so a
// concurrent request for the same window loses cleanly.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, customerID string, input models.BookingRequestInput) (*models.Booking, error) {
	if input.Duration < minBookingDuration {
		return nil, scheduling.NewValidationError("duration must be at least %d minutes", minBookingDuration)
	}
	startMin, err := scheduling.MinuteOfDay(input.StartTime)
	if err != nil {
		return nil, scheduling.NewValidationError("invalid start time %q: want HH:MM", input.StartTime)
	}
	endMin := startMin + input.Duration
	if endMin > 24*60 {
		return nil, scheduling.NewValidationError("booking cannot extend past midnight")
	}
	day, err := scheduling.ParseDate(input.Date)
	if err != nil {
		return nil, scheduling.NewValidationError("invalid date %q: want YYYY-MM-DD", input.Date)
	}

	maid, err := s.MaidRepo.GetByID(ctx, input.MaidID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch maid: %w", err)
	}
	if maid == nil {
		return nil, scheduling.NewNotFoundError("maid %s not found", input.MaidID)
	}
	category, err := s.CategoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	if category == nil {
		return nil, scheduling.NewNotFoundError("service category %s not found", input.CategoryID)
	}

	if err := s.checkSchedule(ctx, input.MaidID, input.Date, day, startMin, endMin); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetActiveByMaidAndDate(ctx, input.MaidID, input.Date)
	if err != nil {
		return nil, err
	}
	if scheduling.HasConflict(existing, startMin, input.Duration, "") {
		return nil, scheduling.NewConflictError("maid is already booked from %s for %d minutes", input.StartTime, input.Duration)
	}

	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		MaidID:        input.MaidID,
		CustomerID:    customerID,
		CategoryID:    input.CategoryID,
		Date:          input.Date,
		StartTime:     input.StartTime,
		Duration:      input.Duration,
		StartMin:      startMin,
		EndMin:        endMin,
		Address:       input.Address,
		Notes:         input.Notes,
		Status:        models.BookingStatusPending,
		PaymentMethod: "cash",
		PaymentStatus: "pending",
		TotalPrice:    priceFor(maid, category, input.Duration),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.CreateIfFree(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, scheduling.NewConflictError("maid is already booked from %s for %d minutes", input.StartTime, input.Duration)
		}
		return nil, err
	}

	s.notify(ctx, booking.MaidID, "maid", "New booking request",
		fmt.Sprintf("You have a new booking request for %s at %s.", booking.Date, booking.StartTime), booking.ID)

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("maidID", booking.MaidID),
		zap.String("date", booking.Date),
		zap.String("startTime", booking.StartTime))
	return booking, nil
}

// checkSchedule validates the requested window against the maid's schedule
// document: the weekday's template row when one exists, and every blocked
// interval on the date. Maids without a row for the weekday are bookable at
// any time, matching the simple availability path.
func (s *DefaultBookingService) checkSchedule(ctx context.Context, maidID, date string, day time.Time, startMin, endMin int) error {
	sched, err := s.ScheduleRepo.Get(ctx, maidID)
	if err != nil {
		return fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if sched == nil {
		return nil
	}

	weekday := scheduling.WeekdayIndex(day)
	if row := sched.WeeklyRow(weekday); row != nil {
		if !row.IsAvailable {
			return scheduling.NewValidationError("maid is not available on %s", scheduling.WeekdayName(weekday))
		}
		rowStart, err1 := scheduling.MinuteOfDay(row.StartTime)
		rowEnd, err2 := scheduling.MinuteOfDay(row.EndTime)
		if err1 == nil && err2 == nil && (startMin < rowStart || endMin > rowEnd) {
			return scheduling.NewValidationError("requested window falls outside the maid's %s hours (%s-%s)",
				scheduling.WeekdayName(weekday), row.StartTime, row.EndTime)
		}
	}

	for _, blk := range sched.BlocksOn(date) {
		if scheduling.IsFullDayBlock(blk.StartTime, blk.EndTime) {
			return scheduling.NewConflictError("maid has blocked %s entirely", date)
		}
		bs, err1 := scheduling.MinuteOfDay(blk.StartTime)
		be, err2 := scheduling.MinuteOfDay(blk.EndTime)
		if err1 == nil && err2 == nil && scheduling.Overlaps(startMin, endMin, bs, be) {
			return scheduling.NewConflictError("requested window overlaps a blocked interval on %s (%s-%s)",
				date, blk.StartTime, blk.EndTime)
		}
	}
	return nil
}

// priceFor charges the maid's hourly rate pro-rated by duration, falling
// back to the category base price for maids without a rate.
func priceFor(maid *models.Maid, category *models.ServiceCategory, duration int) float64 {
	if maid.HourlyRate > 0 {
		return maid.HourlyRate * float64(duration) / 60
	}
	return category.BasePrice
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, scheduling.NewNotFoundError("booking %s not found", bookingID)
	}
	return booking, nil
}

// transitions maps each status to the set of statuses it may move to.
// Rejected, completed and cancelled are terminal.
var transitions = map[string][]string{
	models.BookingStatusPending:  {models.BookingStatusAccepted, models.BookingStatusRejected, models.BookingStatusCancelled},
	models.BookingStatusAccepted: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// UpdateStatus applies one state-machine transition. Accept, reject and
// complete belong to the maid; cancel belongs to either party. Accepting
// does not re-run the conflict check: the window was reserved at creation
// and stays reserved through pending.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID, newStatus, actorID, actorRole string) (*models.Booking, error) {
	switch newStatus {
	case models.BookingStatusAccepted, models.BookingStatusRejected,
		models.BookingStatusCompleted, models.BookingStatusCancelled:
	default:
		return nil, scheduling.NewValidationError("unknown booking status %q", newStatus)
	}

	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(booking.Status, newStatus) {
		return nil, scheduling.NewConflictError("cannot move booking from %s to %s", booking.Status, newStatus)
	}
	if err := checkActor(booking, newStatus, actorID, actorRole); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}
	booking.Status = newStatus
	booking.UpdatedAt = time.Now()

	s.afterTransition(ctx, booking, newStatus)
	return booking, nil
}

func checkActor(booking *models.Booking, newStatus, actorID, actorRole string) error {
	switch newStatus {
	case models.BookingStatusAccepted, models.BookingStatusRejected, models.BookingStatusCompleted:
		if actorRole != "maid" || actorID != booking.MaidID {
			return scheduling.NewValidationError("only the assigned maid can mark a booking %s", newStatus)
		}
	case models.BookingStatusCancelled:
		isMaid := actorRole == "maid" && actorID == booking.MaidID
		isCustomer := actorRole == "user" && actorID == booking.CustomerID
		if !isMaid && !isCustomer {
			return scheduling.NewValidationError("only a party to the booking can cancel it")
		}
	}
	return nil
}

func (s *DefaultBookingService) afterTransition(ctx context.Context, booking *models.Booking, newStatus string) {
	switch newStatus {
	case models.BookingStatusAccepted:
		s.notify(ctx, booking.CustomerID, "user", "Booking accepted",
			fmt.Sprintf("Your booking for %s at %s was accepted.", booking.Date, booking.StartTime), booking.ID)
		s.scheduleReminder(ctx, booking)
	case models.BookingStatusRejected:
		s.notify(ctx, booking.CustomerID, "user", "Booking declined",
			fmt.Sprintf("Your booking for %s at %s was declined.", booking.Date, booking.StartTime), booking.ID)
	case models.BookingStatusCompleted:
		if err := s.MaidRepo.IncrementCompleted(ctx, booking.MaidID); err != nil {
			utils.GetLogger().Warn("failed to increment completed bookings",
				zap.String("maidID", booking.MaidID), zap.Error(err))
		}
		s.notify(ctx, booking.CustomerID, "user", "Booking completed",
			fmt.Sprintf("Your booking for %s was marked completed.", booking.Date), booking.ID)
	case models.BookingStatusCancelled:
		s.notify(ctx, booking.MaidID, "maid", "Booking cancelled",
			fmt.Sprintf("The booking for %s at %s was cancelled.", booking.Date, booking.StartTime), booking.ID)
		s.notify(ctx, booking.CustomerID, "user", "Booking cancelled",
			fmt.Sprintf("The booking for %s at %s was cancelled.", booking.Date, booking.StartTime), booking.ID)
	}
}

// scheduleReminder enqueues a customer reminder 24 hours before the booking
// starts, or one hour before when accepted closer to the start. Bookings
// accepted inside the final hour get no reminder.
func (s *DefaultBookingService) scheduleReminder(ctx context.Context, booking *models.Booking) {
	if s.Reminders == nil {
		return
	}
	day, err := scheduling.ParseDate(booking.Date)
	if err != nil {
		return
	}
	start := day.Add(time.Duration(booking.StartMin) * time.Minute)
	remindAt := start.Add(-24 * time.Hour)
	if remindAt.Before(time.Now()) {
		remindAt = start.Add(-1 * time.Hour)
	}
	if remindAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		BookingID:     booking.ID,
		RecipientID:   booking.CustomerID,
		RecipientRole: "user",
		Title:         "Upcoming booking",
		Body:          fmt.Sprintf("Reminder: your booking is on %s at %s.", booking.Date, booking.StartTime),
		FireDate:      booking.Date,
	}
	if err := s.Reminders.ScheduleReminder(ctx, payload, remindAt); err != nil {
		utils.GetLogger().Warn("failed to schedule booking reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) notify(ctx context.Context, recipientID, role, title, body, bookingID string) {
	if s.Notifications == nil {
		return
	}
	if err := s.Notifications.Notify(ctx, recipientID, role, title, body, bookingID); err != nil {
		utils.GetLogger().Warn("failed to store notification",
			zap.String("recipientID", recipientID), zap.Error(err))
	}
}

// MarkPaid flips the manual payment flag to paid.
func (s *DefaultBookingService) MarkPaid(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus == "paid" {
		return booking, nil
	}
	if err := s.Repo.SetPaymentStatus(ctx, bookingID, "paid"); err != nil {
		return nil, err
	}
	booking.PaymentStatus = "paid"
	return booking, nil
}

func (s *DefaultBookingService) ListForMaid(ctx context.Context, maidID string, limit int64) ([]models.Booking, error) {
	return s.Repo.ListByMaid(ctx, maidID, limit)
}

func (s *DefaultBookingService) ListForCustomer(ctx context.Context, customerID string, limit int64) ([]models.Booking, error) {
	return s.Repo.ListByCustomer(ctx, customerID, limit)
}

// GetSimpleAvailability is the legacy availability path: a fixed working day
// split into hourly slots, minus slots whose start matches an active booking.
func (s *DefaultBookingService) GetSimpleAvailability(ctx context.Context, maidID, date string) (*models.SlotList, error) {
	maid, err := s.MaidRepo.GetByID(ctx, maidID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch maid: %w", err)
	}
	if maid == nil {
		return nil, scheduling.NewNotFoundError("maid %s not found", maidID)
	}
	if _, err := scheduling.ParseDate(date); err != nil {
		return nil, scheduling.NewValidationError("invalid date %q: want YYYY-MM-DD", date)
	}

	bookings, err := s.Repo.GetActiveByMaidAndDate(ctx, maidID, date)
	if err != nil {
		return nil, err
	}
	available, booked := scheduling.SimpleDaySlots(bookings)
	return &models.SlotList{Date: date, AvailableSlots: available, BookedSlots: booked}, nil
}
