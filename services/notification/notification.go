package notification

import (
	"context"
	"time"

	notificationRepo "maidly/database/repository/notification"
	"maidly/models"
	"maidly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService writes and reads the in-app notification feed.
type NotificationService interface {
	Notify(ctx context.Context, recipientID, role, title, body, bookingID string) error
	ListForRecipient(ctx context.Context, recipientID, role string, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

// Notify stores a notification. Failures are logged by callers that treat
// notification delivery as best effort.
func (s *DefaultNotificationService) Notify(ctx context.Context, recipientID, role, title, body, bookingID string) error {
	n := &models.Notification{
		ID:            uuid.New().String(),
		RecipientID:   recipientID,
		RecipientRole: role,
		Title:         title,
		Body:          body,
		BookingID:     bookingID,
		CreatedAt:     time.Now(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return err
	}
	utils.GetLogger().Debug("notification stored",
		zap.String("recipientID", recipientID), zap.String("title", title))
	return nil
}

func (s *DefaultNotificationService) ListForRecipient(ctx context.Context, recipientID, role string, limit int64) ([]models.Notification, error) {
	return s.Repo.ListByRecipient(ctx, recipientID, role, limit)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, notificationID string) error {
	return s.Repo.MarkRead(ctx, notificationID)
}
