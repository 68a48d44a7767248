package booking

import (
	"context"
	"fmt"

	"vaxportal/models"
	"vaxportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Checkout finalizes the booking. The call is single-flight per caller and
// session: a duplicate request arriving while one is in flight joins the
// first result instead of double-booking. The flight key carries the user
// ID so a request against someone else's session never joins their flight;
// it runs its own ownership check and fails. From the caller's perspective
// checkout is atomic: either the whole appointment is persisted or the
// session stays on the reviewing step with nothing committed.
func (s *DefaultBookingSessionService) Checkout(ctx context.Context, userID, sessionID string) (*models.Appointment, error) {
	v, err, _ := s.checkoutGroup.Do(userID+":"+sessionID, func() (any, error) {
		return s.doCheckout(ctx, userID, sessionID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Appointment), nil
}

func (s *DefaultBookingSessionService) doCheckout(ctx context.Context, userID, sessionID string) (*models.Appointment, error) {
	session, err := s.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Step.CanTransition(models.StepSuccess) {
		return nil, ErrInvalidTransition
	}
	if !session.AcceptTerms {
		return nil, ErrTermsNotAccepted
	}

	userCart, err := s.CartSvc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if userCart.Count() == 0 {
		return nil, ErrEmptyCart
	}

	effective, err := s.ResolveChild(ctx, userID, session.Child)
	if err != nil {
		return nil, err
	}

	details, err := s.priceCart(userCart)
	if err != nil {
		return nil, err
	}

	// A "new" child becomes a persisted profile at checkout, not before.
	childID := session.Child.ProfileID
	if session.Child.Kind == models.ChildSelectionNew {
		profile := &models.ChildProfile{
			ID:          uuid.New().String(),
			UserID:      userID,
			Name:        effective.Name,
			DateOfBirth: effective.DateOfBirth,
			Gender:      effective.Gender,
		}
		if err := s.Children.Create(profile); err != nil {
			return nil, fmt.Errorf("failed to persist new child profile: %w", err)
		}
		childID = profile.ID
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		UserID:          userID,
		ChildID:         childID,
		ChildrenName:    effective.Name,
		DateOfBirth:     effective.DateOfBirth,
		Gender:          effective.Gender,
		AppointmentDate: session.Form.PreferredDate,
		TimeStart:       session.Form.PreferredTime,
		Status:          models.StatusScheduled,
		VaccineDetails:  details,
		Note:            session.Form.Note,
	}
	if err := s.Appointments.Create(appt); err != nil {
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	snapshot := models.LastAppointment{
		AppointmentID: appt.ID,
		ChildName:     appt.ChildrenName,
		Date:          appt.AppointmentDate,
		TimeStart:     appt.TimeStart,
		Total:         appt.TotalPrice(),
	}
	logger := utils.GetLogger()
	if err := s.Store.Set(ctx, utils.LastAppointmentKey(userID), snapshot, 0); err != nil {
		logger.Warn("Failed to store last-appointment snapshot", zap.Error(err))
	}
	if err := s.CartSvc.Clear(ctx, userID); err != nil {
		logger.Warn("Failed to clear cart after checkout", zap.Error(err))
	}

	session.Step = models.StepSuccess
	session.PaymentSuccess = true
	session.AppointmentID = appt.ID
	if err := s.saveSession(ctx, session, completedTTL); err != nil {
		logger.Warn("Failed to store completed session", zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(*appt); err != nil {
			logger.Warn("Failed to schedule appointment reminder", zap.Error(err))
		}
	}
	if s.Notifier != nil {
		body := fmt.Sprintf("Appointment for %s booked on %s at %s.",
			appt.ChildrenName, utils.FormatDate(appt.AppointmentDate), appt.TimeStart)
		if err := s.Notifier.Notify(ctx, userID, models.NotificationBooking, "Booking confirmed", body,
			map[string]any{"appointmentId": appt.ID}); err != nil {
			logger.Warn("Failed to send booking notification", zap.Error(err))
		}
	}

	return appt, nil
}

// priceCart re-prices the selected vaccines from the catalog. The client
// cart is a convenience copy; the charged amounts always come from the
// vaccine records so a stale or tampered cart cannot set the price.
func (s *DefaultBookingSessionService) priceCart(userCart *models.Cart) ([]models.VaccineDetail, error) {
	ids := make([]string, 0, userCart.Count())
	for _, item := range userCart.Items {
		ids = append(ids, item.ID)
	}

	vaccines, err := s.Vaccines.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to price cart: %w", err)
	}
	byID := make(map[string]models.Vaccine, len(vaccines))
	for _, v := range vaccines {
		byID[v.ID] = v
	}

	details := make([]models.VaccineDetail, 0, len(ids))
	for _, item := range userCart.Items {
		v, ok := byID[item.ID]
		if !ok {
			return nil, fmt.Errorf("vaccine %s is no longer available", item.ID)
		}
		details = append(details, models.VaccineDetail{
			VaccineDetailsID: v.ID,
			DoseName:         fmt.Sprintf("%s (%d doses)", v.Name, v.Doses),
			Price:            v.Price,
		})
	}
	return details, nil
}
