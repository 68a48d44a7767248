package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"vaxportal/models"
)

// memStore is an in-memory KVStore mirroring the Redis semantics the
// service relies on: absent keys are "no value", malformed blobs are
// cleared and treated as absent.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(blob, dest); err != nil {
		delete(s.data, key)
		return false, nil
	}
	return true, nil
}

func (s *memStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = blob
	return nil
}

func (s *memStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memStore) corrupt(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = []byte("{not json")
}

type fakeChildRepo struct {
	children map[string]*models.ChildProfile
	created  []*models.ChildProfile
}

func newFakeChildRepo(children ...*models.ChildProfile) *fakeChildRepo {
	byID := map[string]*models.ChildProfile{}
	for _, c := range children {
		byID[c.ID] = c
	}
	return &fakeChildRepo{children: byID}
}

func (r *fakeChildRepo) GetByID(id string) (*models.ChildProfile, error) {
	c, ok := r.children[id]
	if !ok {
		return nil, fmt.Errorf("child %s not found", id)
	}
	return c, nil
}

func (r *fakeChildRepo) GetByUser(userID string) ([]models.ChildProfile, error) {
	var out []models.ChildProfile
	for _, c := range r.children {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChildRepo) Create(child *models.ChildProfile) error {
	r.children[child.ID] = child
	r.created = append(r.created, child)
	return nil
}

func (r *fakeChildRepo) Delete(id string) error {
	delete(r.children, id)
	return nil
}

type fakeVaccineRepo struct {
	vaccines []models.Vaccine
}

func (r *fakeVaccineRepo) GetAll() ([]models.Vaccine, error) {
	return r.vaccines, nil
}

func (r *fakeVaccineRepo) GetByIDs(ids []string) ([]models.Vaccine, error) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Vaccine
	for _, v := range r.vaccines {
		if want[v.ID] && v.Active {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeAppointmentRepo struct {
	created   []*models.Appointment
	createErr error
}

func (r *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, appt)
	return nil
}

func (r *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	for _, a := range r.created {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (r *fakeAppointmentRepo) GetByUser(userID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.created {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(id string, status models.AppointmentStatus) error {
	a, err := r.GetByID(id)
	if err != nil {
		return err
	}
	a.Status = status
	return nil
}

func (r *fakeAppointmentRepo) UpdateDetails(id string, date, timeStart, note string) error {
	a, err := r.GetByID(id)
	if err != nil {
		return err
	}
	a.AppointmentDate, a.TimeStart, a.Note = date, timeStart, note
	return nil
}

type fakeNotifier struct {
	notices []string
}

func (n *fakeNotifier) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (n *fakeNotifier) Notify(ctx context.Context, userID, kind, title, body string, data map[string]any) error {
	n.notices = append(n.notices, kind)
	return nil
}

type fakeReminders struct {
	scheduled []models.Appointment
}

func (r *fakeReminders) ScheduleReminder(appt models.Appointment) error {
	r.scheduled = append(r.scheduled, appt)
	return nil
}
