package notification

import (
	"context"
	"fmt"

	notificationRepo "vaxportal/database/repository/notification"
	userRepo "vaxportal/database/repository/user"
	"vaxportal/models"
	"vaxportal/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
}

// ListByUser retrieves a user's feed, newest first.
func (s *DefaultNotificationService) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.GetByUser(userID)
}

// MarkAllRead acknowledges every unread notification of a user.
func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.Repo.MarkAllRead(userID)
}

// Notify persists the notification first; the feed is the source of truth.
// The FCM push is best effort and skipped when messaging is not configured
// or the user has no registered token.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID, kind, title, body string, data map[string]any) error {
	n := &models.Notification{
		ID:     uuid.New().String(),
		UserID: userID,
		Type:   kind,
		Title:  title,
		Body:   body,
		Data:   data,
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	s.push(ctx, userID, title, body)
	return nil
}

func (s *DefaultNotificationService) push(ctx context.Context, userID, title, body string) {
	if utils.FCMClient == nil {
		return
	}
	logger := utils.GetLogger()

	user, err := s.Users.GetByID(userID)
	if err != nil {
		logger.Warn("Push skipped: could not load user", zap.String("userId", userID), zap.Error(err))
		return
	}
	if user.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		logger.Warn("Failed to send FCM push", zap.String("userId", userID), zap.Error(err))
	}
}
