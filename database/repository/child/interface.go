package childRepo

import "vaxportal/models"

// ChildRepository defines data access for child profiles owned by a parent
// account.
type ChildRepository interface {
	// GetByID retrieves a child profile by its unique ID.
	GetByID(id string) (*models.ChildProfile, error)
	// GetByUser retrieves all child profiles belonging to a parent.
	GetByUser(userID string) ([]models.ChildProfile, error)
	// Create inserts a new child profile.
	Create(child *models.ChildProfile) error
	// Delete removes a child profile by its ID.
	Delete(id string) error
}
