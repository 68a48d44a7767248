package user

import (
	"fmt"
	"time"

	"vaxportal/models"
	"vaxportal/utils"

	"github.com/google/uuid"
)

// ListChildren retrieves the child profiles of a parent.
func (s *DefaultUserService) ListChildren(userID string) ([]models.ChildProfile, error) {
	return s.Children.GetByUser(userID)
}

// AddChild validates and persists a new child profile for a parent.
func (s *DefaultUserService) AddChild(userID string, child models.ChildProfile) (*models.ChildProfile, error) {
	if child.Name == "" {
		return nil, fmt.Errorf("child name is required")
	}
	if child.Gender != models.GenderMale && child.Gender != models.GenderFemale {
		return nil, fmt.Errorf("gender must be male or female")
	}
	dob, err := time.Parse(utils.DateLayout, child.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", err)
	}
	if dob.After(time.Now()) {
		return nil, fmt.Errorf("date of birth must not be in the future")
	}

	child.ID = uuid.New().String()
	child.UserID = userID
	if err := s.Children.Create(&child); err != nil {
		return nil, fmt.Errorf("failed to create child profile: %w", err)
	}
	return &child, nil
}
