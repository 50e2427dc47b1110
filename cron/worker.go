package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"maidly/config"
	"maidly/models"
	"maidly/services/notification"
	"maidly/services/tasks"
	"maidly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderWorker consumes booking reminder tasks and turns them into in-app
// notifications.
type ReminderWorker struct {
	server        *asynq.Server
	notifications notification.NotificationService
}

// NewReminderWorker builds a worker on the reminder queue DB.
func NewReminderWorker(notifications notification.NotificationService) *ReminderWorker {
	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		},
		asynq.Config{Concurrency: 5},
	)
	return &ReminderWorker{server: server, notifications: notifications}
}

// Run blocks processing tasks until Shutdown is called.
func (w *ReminderWorker) Run() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, w.handleReminder)
	return w.server.Run(mux)
}

// Start begins processing in the background.
func (w *ReminderWorker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, w.handleReminder)
	return w.server.Start(mux)
}

func (w *ReminderWorker) Shutdown() {
	w.server.Shutdown()
}

func (w *ReminderWorker) handleReminder(ctx context.Context, t *asynq.Task) error {
	var payload models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to decode reminder payload: %w", err)
	}
	if err := w.notifications.Notify(ctx, payload.RecipientID, payload.RecipientRole, payload.Title, payload.Body, payload.BookingID); err != nil {
		return fmt.Errorf("failed to deliver reminder: %w", err)
	}
	utils.GetLogger().Info("reminder delivered",
		zap.String("bookingID", payload.BookingID),
		zap.String("recipientID", payload.RecipientID))
	return nil
}
