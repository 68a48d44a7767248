package models

import "time"

// Feedback is a user-submitted review plus the optional staff response.
type Feedback struct {
	ID          string     `bson:"id" json:"id"`
	UserID      string     `bson:"userId" json:"userId"`
	UserName    string     `bson:"userName" json:"userName"`
	Rating      int        `bson:"rating" json:"rating"`
	Comment     string     `bson:"comment" json:"comment"`
	Response    string     `bson:"response,omitempty" json:"response,omitempty"`
	RespondedBy string     `bson:"respondedBy,omitempty" json:"respondedBy,omitempty"`
	RespondedAt *time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}
