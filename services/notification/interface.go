package notification

import (
	"context"

	"vaxportal/models"
)

// NotificationService manages the per-user notification feed and pushes.
type NotificationService interface {
	// ListByUser retrieves a user's feed, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	// MarkAllRead acknowledges every unread notification of a user.
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	// Notify persists a new notification and best-effort pushes it via FCM.
	Notify(ctx context.Context, userID, kind, title, body string, data map[string]any) error
}
