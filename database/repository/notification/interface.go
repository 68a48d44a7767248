package notificationRepo

import "vaxportal/models"

// NotificationRepository defines data access for the notification feed.
type NotificationRepository interface {
	// Create inserts a new notification.
	Create(n *models.Notification) error
	// GetByUser retrieves all notifications addressed to a user, newest first.
	GetByUser(userID string) ([]models.Notification, error)
	// MarkAllRead flags every notification of a user as read and returns the
	// number updated.
	MarkAllRead(userID string) (int64, error)
}
