package feedbackRepo

import "vaxportal/models"

// FeedbackRepository defines data access for user feedback records.
type FeedbackRepository interface {
	// Create inserts a new feedback record.
	Create(fb *models.Feedback) error
	// GetAll retrieves every feedback record, newest first.
	GetAll() ([]models.Feedback, error)
	// GetByID retrieves a feedback record by its unique ID.
	GetByID(id string) (*models.Feedback, error)
	// SetResponse stores the staff response on a single record.
	SetResponse(id, responderID, response string) error
}
