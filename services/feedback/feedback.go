package feedback

import (
	"context"
	"fmt"

	feedbackRepo "vaxportal/database/repository/feedback"
	"vaxportal/models"
	"vaxportal/services/notification"
	"vaxportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedbackService handles user reviews and the staff back-office replies.
type FeedbackService interface {
	Submit(ctx context.Context, userID, userName string, rating int, comment string) (*models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
	Respond(ctx context.Context, id, responderID, response string) (*models.Feedback, error)
}

// DefaultFeedbackService implements FeedbackService.
type DefaultFeedbackService struct {
	Repo     feedbackRepo.FeedbackRepository
	Notifier notification.NotificationService
}

// Submit records a new feedback entry.
func (s *DefaultFeedbackService) Submit(ctx context.Context, userID, userName string, rating int, comment string) (*models.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if comment == "" {
		return nil, fmt.Errorf("comment is required")
	}

	fb := &models.Feedback{
		ID:       uuid.New().String(),
		UserID:   userID,
		UserName: userName,
		Rating:   rating,
		Comment:  comment,
	}
	if err := s.Repo.Create(fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// List retrieves every feedback record for the back-office view.
func (s *DefaultFeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.Repo.GetAll()
}

// Respond stores the staff reply on one record and notifies its author.
func (s *DefaultFeedbackService) Respond(ctx context.Context, id, responderID, response string) (*models.Feedback, error) {
	if response == "" {
		return nil, fmt.Errorf("response is required")
	}
	if err := s.Repo.SetResponse(id, responderID, response); err != nil {
		return nil, err
	}

	fb, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		err := s.Notifier.Notify(ctx, fb.UserID, models.NotificationFeedback,
			"Your feedback has a reply", response, map[string]any{"feedbackId": fb.ID})
		if err != nil {
			utils.GetLogger().Warn("Failed to notify feedback author", zap.Error(err))
		}
	}
	return fb, nil
}
