package user

import (
	"errors"
	"fmt"
	"time"

	"vaxportal/models"
	"vaxportal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Token lifetimes. "Remember me" keeps the user signed in across visits.
const (
	tokenTTL      = 24 * time.Hour
	rememberMeTTL = 30 * 24 * time.Hour
)

// ErrInvalidCredentials is returned for unknown emails and wrong
// passwords alike, so responses do not reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Authenticate verifies credentials and issues a signed bearer token.
func (s *DefaultUserService) Authenticate(email, password string, rememberMe bool) (*models.User, string, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	ttl := tokenTTL
	if rememberMe {
		ttl = rememberMeTTL
	}
	token, err := utils.GenerateToken(account.ID, account.Email, account.Role, ttl)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return account, token, nil
}

// Register creates a new parent account.
func (s *DefaultUserService) Register(input RegisterInput) (*models.User, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         models.RoleParent,
	}
	if err := s.Repo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// GetUserByID retrieves an account by ID.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// UpdateFCMToken stores the device token used for pushes.
func (s *DefaultUserService) UpdateFCMToken(id, token string) error {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	account.FCMToken = token
	return s.Repo.Update(account)
}
