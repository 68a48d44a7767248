package booking

import (
	"context"
	"errors"
	"testing"

	"vaxportal/models"
	"vaxportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reviewingSession drives a session through step 1 into the reviewing
// step with a priced cart.
func reviewingSession(t *testing.T, svc *DefaultBookingSessionService, sel models.ChildSelection) *models.BookingSession {
	t.Helper()
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, testUser)
	require.NoError(t, err)

	_, err = svc.CartSvc.AddItem(ctx, testUser, models.CartItem{ID: "v-hexaxim", Name: "Hexaxim", Doses: 3, Price: 1015000})
	require.NoError(t, err)
	_, err = svc.CartSvc.AddItem(ctx, testUser, models.CartItem{ID: "v-mmr", Name: "MMR II", Doses: 2, Price: 445000})
	require.NoError(t, err)

	_, err = svc.UpdateSession(ctx, testUser, session.SessionID, validUpdate(sel))
	require.NoError(t, err)
	advanced, err := svc.Advance(ctx, testUser, session.SessionID)
	require.NoError(t, err)
	return advanced
}

func TestCheckoutHappyPath(t *testing.T) {
	svc, store := newTestService()
	notifier := &fakeNotifier{}
	reminders := &fakeReminders{}
	svc.Notifier = notifier
	svc.Reminders = reminders
	ctx := context.Background()

	session := reviewingSession(t, svc, existingChild())

	appt, err := svc.Checkout(ctx, testUser, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, "An", appt.ChildrenName)
	assert.Equal(t, "child-1", appt.ChildID)
	assert.Equal(t, int64(1460000), appt.TotalPrice())

	// Session reaches success only via this path.
	done, err := svc.GetSession(ctx, testUser, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSuccess, done.Step)
	assert.True(t, done.PaymentSuccess)
	assert.Equal(t, appt.ID, done.AppointmentID)

	// Cart is cleared and the snapshot is stored for the success screen.
	userCart, err := svc.CartSvc.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 0, userCart.Count())

	var snap models.LastAppointment
	found, err := store.Get(ctx, utils.LastAppointmentKey(testUser), &snap)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, appt.ID, snap.AppointmentID)
	assert.Equal(t, int64(1460000), snap.Total)

	assert.Equal(t, []string{models.NotificationBooking}, notifier.notices)
	require.Len(t, reminders.scheduled, 1)
	assert.Equal(t, appt.ID, reminders.scheduled[0].ID)
}

func TestCheckoutPricesFromCatalogNotCart(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, testUser)
	require.NoError(t, err)

	// Stale client price; the catalog says 1015000.
	_, err = svc.CartSvc.AddItem(ctx, testUser, models.CartItem{ID: "v-hexaxim", Name: "Hexaxim", Doses: 3, Price: 1})
	require.NoError(t, err)
	_, err = svc.UpdateSession(ctx, testUser, session.SessionID, validUpdate(existingChild()))
	require.NoError(t, err)
	_, err = svc.Advance(ctx, testUser, session.SessionID)
	require.NoError(t, err)

	appt, err := svc.Checkout(ctx, testUser, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(1015000), appt.TotalPrice())
}

func TestCheckoutRequiresReviewingStep(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, testUser)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, testUser, session.SessionID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, testUser)
	require.NoError(t, err)
	_, err = svc.UpdateSession(ctx, testUser, session.SessionID, validUpdate(existingChild()))
	require.NoError(t, err)
	_, err = svc.Advance(ctx, testUser, session.SessionID)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, testUser, session.SessionID)
	assert.ErrorIs(t, err, ErrEmptyCart)

	// A failed checkout leaves the session on the reviewing step.
	current, err := svc.GetSession(ctx, testUser, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepReviewingConfirmation, current.Step)
	assert.False(t, current.PaymentSuccess)
}

func TestCheckoutRejectsRetiredVaccine(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, testUser)
	require.NoError(t, err)
	_, err = svc.CartSvc.AddItem(ctx, testUser, models.CartItem{ID: "v-retired", Name: "Old", Doses: 1, Price: 5})
	require.NoError(t, err)
	_, err = svc.UpdateSession(ctx, testUser, session.SessionID, validUpdate(existingChild()))
	require.NoError(t, err)
	_, err = svc.Advance(ctx, testUser, session.SessionID)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, testUser, session.SessionID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no longer available")

	// Nothing was committed.
	current, err := svc.GetSession(ctx, testUser, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepReviewingConfirmation, current.Step)
	userCart, err := svc.CartSvc.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 1, userCart.Count())
}

func TestCheckoutRejectsDeactivatedVaccine(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session := reviewingSession(t, svc, existingChild())

	// Retire a carted vaccine between review and checkout.
	vaccines := svc.Vaccines.(*fakeVaccineRepo)
	for i := range vaccines.vaccines {
		if vaccines.vaccines[i].ID == "v-mmr" {
			vaccines.vaccines[i].Active = false
		}
	}

	_, err := svc.Checkout(ctx, testUser, session.SessionID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no longer available")

	current, err := svc.GetSession(ctx, testUser, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepReviewingConfirmation, current.Step)
}

func TestCheckoutPersistsNewChildProfile(t *testing.T) {
	svc, _ := newTestService()
	children := svc.Children.(*fakeChildRepo)
	ctx := context.Background()

	sel := models.ChildSelection{
		Kind: models.ChildSelectionNew,
		Inline: models.InlineChildFields{
			Name:        "Binh",
			DateOfBirth: "2023-06-01",
			Gender:      models.GenderMale,
		},
	}
	session := reviewingSession(t, svc, sel)

	appt, err := svc.Checkout(ctx, testUser, session.SessionID)
	require.NoError(t, err)
	require.Len(t, children.created, 1)
	assert.Equal(t, "Binh", children.created[0].Name)
	assert.Equal(t, testUser, children.created[0].UserID)
	assert.Equal(t, children.created[0].ID, appt.ChildID)
}

// blockingAppointmentRepo stalls Create until released, so a second
// checkout can be issued while the first is in flight.
type blockingAppointmentRepo struct {
	fakeAppointmentRepo
	entered chan struct{}
	release chan struct{}
}

func (r *blockingAppointmentRepo) Create(appt *models.Appointment) error {
	close(r.entered)
	<-r.release
	return r.fakeAppointmentRepo.Create(appt)
}

func TestCheckoutByAnotherUserDoesNotJoinOwnersFlight(t *testing.T) {
	svc, _ := newTestService()
	repo := &blockingAppointmentRepo{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc.Appointments = repo
	ctx := context.Background()

	session := reviewingSession(t, svc, existingChild())

	type result struct {
		appt *models.Appointment
		err  error
	}
	ownerDone := make(chan result, 1)
	go func() {
		appt, err := svc.Checkout(ctx, testUser, session.SessionID)
		ownerDone <- result{appt, err}
	}()
	<-repo.entered

	// While the owner's checkout is stalled in the repository, a request
	// against the same session from another account must fail its own
	// ownership check, not receive the owner's appointment.
	appt, err := svc.Checkout(ctx, "attacker", session.SessionID)
	assert.ErrorIs(t, err, ErrSessionOwner)
	assert.Nil(t, appt)

	close(repo.release)
	owner := <-ownerDone
	require.NoError(t, owner.err)
	assert.Equal(t, testUser, owner.appt.UserID)
	assert.Equal(t, "An", owner.appt.ChildrenName)
}

func TestCheckoutFailureLeavesNoAppointment(t *testing.T) {
	svc, _ := newTestService()
	repo := svc.Appointments.(*fakeAppointmentRepo)
	repo.createErr = errors.New("db down")
	ctx := context.Background()

	session := reviewingSession(t, svc, existingChild())

	_, err := svc.Checkout(ctx, testUser, session.SessionID)
	require.Error(t, err)
	assert.Empty(t, repo.created)

	userCart, err := svc.CartSvc.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 2, userCart.Count())
}
