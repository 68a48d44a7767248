package user

import (
	childRepo "vaxportal/database/repository/child"
	userRepo "vaxportal/database/repository/user"
	"vaxportal/models"
)

// RegisterInput is the payload for creating a parent account.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// UserService handles accounts, login tokens and child profiles.
type UserService interface {
	// Authenticate verifies credentials and returns the user plus a signed
	// bearer token. rememberMe extends the token lifetime.
	Authenticate(email, password string, rememberMe bool) (*models.User, string, error)
	// Register creates a new parent account.
	Register(input RegisterInput) (*models.User, error)
	// GetUserByID retrieves an account by ID.
	GetUserByID(id string) (*models.User, error)
	// UpdateFCMToken stores the device token used for pushes.
	UpdateFCMToken(id, token string) error
	// ListChildren retrieves the child profiles of a parent.
	ListChildren(userID string) ([]models.ChildProfile, error)
	// AddChild persists a new child profile for a parent.
	AddChild(userID string, child models.ChildProfile) (*models.ChildProfile, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Children childRepo.ChildRepository
}
