package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"maidly/models"
	"maidly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeBookingReminder is the asynq task type for booking reminders.
const TypeBookingReminder = "booking:reminder"

// NewReminderTask serializes a reminder payload into an asynq task.
func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	return asynq.NewTask(TypeBookingReminder, data), nil
}

// ReminderScheduler enqueues delayed reminder tasks.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, processAt time.Time) error
}

// AsynqReminderScheduler schedules reminders on the asynq queue backed by
// Redis.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler from redis connection options.
func NewAsynqReminderScheduler(opt asynq.RedisClientOpt) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: asynq.NewClient(opt)}
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, processAt time.Time) error {
	task, err := NewReminderTask(payload)
	if err != nil {
		return err
	}
	info, err := s.Client.EnqueueContext(ctx, task, asynq.ProcessAt(processAt), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	utils.GetLogger().Info("reminder scheduled",
		zap.String("taskID", info.ID),
		zap.String("bookingID", payload.BookingID),
		zap.Time("processAt", processAt))
	return nil
}
