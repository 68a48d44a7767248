package models

import "time"

// Gender values accepted for a child profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Roles carried in auth tokens. Staff unlock the back-office views
// (feedback responses, news publishing).
const (
	RoleParent = "parent"
	RoleStaff  = "staff"
)

// User is a parent account (or a staff account for the back-office).
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ChildProfile is a persisted child belonging to a parent account.
// DateOfBirth uses the wire date format and may not be in the future.
type ChildProfile struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Name        string    `bson:"name" json:"name"`
	DateOfBirth string    `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender      string    `bson:"gender" json:"gender"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
