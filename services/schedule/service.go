package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maidly/models"
	"maidly/services/scheduling"
	"maidly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultScheduleService) requireMaid(ctx context.Context, maidID string) error {
	maid, err := s.MaidRepo.GetByID(ctx, maidID)
	if err != nil {
		return fmt.Errorf("failed to fetch maid: %w", err)
	}
	if maid == nil {
		return scheduling.NewNotFoundError("maid %s not found", maidID)
	}
	return nil
}

func (s *DefaultScheduleService) GetSchedule(ctx context.Context, maidID string) (*models.MaidSchedule, error) {
	if err := s.requireMaid(ctx, maidID); err != nil {
		return nil, err
	}
	schedule, err := s.Repo.Get(ctx, maidID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		schedule = &models.MaidSchedule{MaidID: maidID, Weekly: []models.WeeklyAvailability{}, Blocked: []models.BlockedInterval{}}
	}
	return schedule, nil
}

// ReplaceWeeklySchedule validates the incoming template and swaps the stored
// one wholesale; rows are not individually editable.
func (s *DefaultScheduleService) ReplaceWeeklySchedule(ctx context.Context, maidID string, rows []models.WeeklyAvailability) (*models.MaidSchedule, error) {
	if err := s.requireMaid(ctx, maidID); err != nil {
		return nil, err
	}
	if err := scheduling.ValidateWeeklySchedule(rows); err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceWeekly(ctx, maidID, rows); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("weekly schedule replaced",
		zap.String("maidID", maidID), zap.Int("rows", len(rows)))
	return s.Repo.Get(ctx, maidID)
}

// BlockSlot appends a blocked interval. Missing times default to a full-day
// block.
func (s *DefaultScheduleService) BlockSlot(ctx context.Context, maidID string, input models.BlockSlotInput) (*models.BlockedInterval, error) {
	if err := s.requireMaid(ctx, maidID); err != nil {
		return nil, err
	}

	startTime, endTime := input.StartTime, input.EndTime
	if startTime == "" && endTime == "" {
		startTime, endTime = "00:00", "23:59"
	}

	schedule, err := s.Repo.Get(ctx, maidID)
	if err != nil {
		return nil, err
	}
	var existing []models.BlockedInterval
	if schedule != nil {
		existing = schedule.Blocked
	}
	if err := scheduling.ValidateBlock(existing, input.Date, startTime, endTime, time.Now()); err != nil {
		return nil, err
	}

	block := models.BlockedInterval{
		SlotID:    uuid.New().String(),
		Date:      input.Date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    input.Reason,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.AddBlock(ctx, maidID, block); err != nil {
		return nil, err
	}
	return &block, nil
}

func (s *DefaultScheduleService) UnblockSlot(ctx context.Context, maidID, slotID string) error {
	if err := s.requireMaid(ctx, maidID); err != nil {
		return err
	}
	err := s.Repo.RemoveBlock(ctx, maidID, slotID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return scheduling.NewNotFoundError("blocked slot %s not found", slotID)
	}
	return err
}

// GetAvailableSlots resolves the weekday row, the day's blocks and the
// day's active bookings, then delegates to the schedule-aware enumeration.
func (s *DefaultScheduleService) GetAvailableSlots(ctx context.Context, maidID, date string) (*models.ScheduleSlotList, error) {
	if err := s.requireMaid(ctx, maidID); err != nil {
		return nil, err
	}
	day, err := scheduling.ParseDate(date)
	if err != nil {
		return nil, scheduling.NewValidationError("invalid date %q: want YYYY-MM-DD", date)
	}

	schedule, err := s.Repo.Get(ctx, maidID)
	if err != nil {
		return nil, err
	}
	row := schedule.WeeklyRow(scheduling.WeekdayIndex(day))
	blocks := schedule.BlocksOn(date)

	bookings, err := s.Bookings.GetActiveByMaidAndDate(ctx, maidID, date)
	if err != nil {
		return nil, err
	}

	slots, msg := scheduling.ScheduleDaySlots(row, blocks, bookings)
	result := &models.ScheduleSlotList{
		Date:           date,
		MaidSchedule:   row,
		AvailableSlots: slots,
		BlockedSlots:   blocks,
		Message:        msg,
	}
	for _, b := range bookings {
		result.BookedSlots = append(result.BookedSlots, b.StartTime)
	}
	return result, nil
}
