package booking

import (
	"context"
	"fmt"
	"time"

	"vaxportal/models"
	"vaxportal/utils"

	"github.com/google/uuid"
)

// Wizard sessions expire after this long without a checkout. Completed
// sessions are kept briefly so the success screen can re-read them.
const (
	sessionTTL   = 30 * time.Minute
	completedTTL = 10 * time.Minute
)

// InitiateSession creates a new wizard session on step 1 and stores it.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, userID string) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Step:      models.StepSelectingChildAndSlot,
		CreatedAt: time.Now(),
	}
	if err := s.saveSession(ctx, session, sessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession loads a session and verifies ownership.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, userID, sessionID string) (*models.BookingSession, error) {
	var session models.BookingSession
	found, err := s.Store.Get(ctx, utils.BookingSessionKey(sessionID), &session)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	if session.UserID != userID {
		return nil, ErrSessionOwner
	}
	return &session, nil
}

// UpdateSession applies partial form, child-selection and terms mutations.
// It is only meaningful while the wizard is on step 1 or 2; a completed
// session is immutable.
func (s *DefaultBookingSessionService) UpdateSession(ctx context.Context, userID, sessionID string, upd SessionUpdate) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepSuccess {
		return nil, ErrInvalidTransition
	}

	if upd.Form != nil {
		session.Form = *upd.Form
	}
	if upd.Child != nil {
		session.Child = NormalizeChildSelection(*upd.Child)
	}
	if upd.AcceptTerms != nil {
		session.AcceptTerms = *upd.AcceptTerms
	}

	if err := s.saveSession(ctx, session, sessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance moves the wizard from step 1 to step 2. The transition is
// guarded: the form must validate and the terms dialog must have been
// accepted. On a terms rejection the session is left untouched so the
// client can re-present the dialog and retry.
func (s *DefaultBookingSessionService) Advance(ctx context.Context, userID, sessionID string) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Step.CanTransition(models.StepReviewingConfirmation) {
		return nil, ErrInvalidTransition
	}
	if verr := validateForm(session.Form, session.Child); verr != nil {
		return nil, verr
	}
	if !session.AcceptTerms {
		return nil, ErrTermsNotAccepted
	}

	session.Step = models.StepReviewingConfirmation
	if err := s.saveSession(ctx, session, sessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves the wizard from step 2 to step 1. Nothing is discarded.
func (s *DefaultBookingSessionService) Back(ctx context.Context, userID, sessionID string) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Step.CanTransition(models.StepSelectingChildAndSlot) {
		return nil, ErrInvalidTransition
	}

	session.Step = models.StepSelectingChildAndSlot
	if err := s.saveSession(ctx, session, sessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession drops the session from the store.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, userID, sessionID string) error {
	if _, err := s.GetSession(ctx, userID, sessionID); err != nil {
		return err
	}
	if err := s.Store.Clear(ctx, utils.BookingSessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession, ttl time.Duration) error {
	if err := s.Store.Set(ctx, utils.BookingSessionKey(session.SessionID), session, ttl); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
