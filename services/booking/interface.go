package booking

import (
	"context"

	appointmentRepo "vaxportal/database/repository/appointment"
	childRepo "vaxportal/database/repository/child"
	vaccineRepo "vaxportal/database/repository/vaccine"
	"vaxportal/models"
	"vaxportal/services/cart"
	"vaxportal/services/notification"
	"vaxportal/utils"

	"golang.org/x/sync/singleflight"
)

// SessionUpdate carries the partial wizard mutations of one request. Nil
// fields are left untouched.
type SessionUpdate struct {
	Form        *models.BookingFormData
	Child       *models.ChildSelection
	AcceptTerms *bool
}

// BookingSessionService manages the stateful booking wizard. Sessions are
// owned by the user that initiated them and expire on a TTL.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, userID string) (*models.BookingSession, error)
	GetSession(ctx context.Context, userID, sessionID string) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, userID, sessionID string, upd SessionUpdate) (*models.BookingSession, error)
	// Advance moves step 1 -> step 2. It is guarded by form validation and
	// terms acceptance.
	Advance(ctx context.Context, userID, sessionID string) (*models.BookingSession, error)
	// Back moves step 2 -> step 1, retaining all entered data.
	Back(ctx context.Context, userID, sessionID string) (*models.BookingSession, error)
	// Checkout finalizes the booking: it persists the appointment, stores
	// the last-appointment snapshot, clears the cart and moves the session
	// to the success step. At most one checkout runs per session at a time.
	Checkout(ctx context.Context, userID, sessionID string) (*models.Appointment, error)
	CancelSession(ctx context.Context, userID, sessionID string) error
	// ResolveChild produces the effective child view for the given
	// selection regardless of which branch it comes from.
	ResolveChild(ctx context.Context, userID string, sel models.ChildSelection) (models.EffectiveChild, error)
}

// ReminderScheduler schedules an appointment reminder ahead of the
// preferred date. Implemented by the asynq-backed task scheduler.
type ReminderScheduler interface {
	ScheduleReminder(appt models.Appointment) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Store        utils.KVStore
	CartSvc      cart.CartService
	Children     childRepo.ChildRepository
	Vaccines     vaccineRepo.VaccineRepository
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService
	Reminders    ReminderScheduler

	checkoutGroup singleflight.Group
}
