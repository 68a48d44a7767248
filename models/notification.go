package models

import "time"

// Notification types used by the portal.
const (
	NotificationBooking  = "booking"
	NotificationReminder = "reminder"
	NotificationFeedback = "feedback"
)

type Notification struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"userId" json:"userId"`
	Type      string         `bson:"type" json:"type"`
	Title     string         `bson:"title" json:"title"`
	Body      string         `bson:"body" json:"body"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}
