package appointmentRepo

import "vaxportal/models"

// AppointmentRepository defines data access for appointment records.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// GetByUser retrieves all appointments booked by a parent, newest first.
	GetByUser(userID string) ([]models.Appointment, error)
	// UpdateStatus moves an appointment to a new lifecycle status.
	UpdateStatus(id string, status models.AppointmentStatus) error
	// UpdateDetails modifies the editable fields of a scheduled appointment.
	UpdateDetails(id string, date, timeStart, note string) error
}
