package models

import "time"

// AppointmentStatus is the lifecycle state of a booked appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// VaccineDetail is one vaccine line on an appointment.
type VaccineDetail struct {
	VaccineDetailsID string `bson:"vaccineDetailsId" json:"vaccineDetailsId"`
	DoseName         string `bson:"doseName" json:"doseName"`
	Price            int64  `bson:"price" json:"price"`
}

// Appointment is the persisted booking record read back by the detail,
// cancel and edit views.
type Appointment struct {
	ID              string            `bson:"id" json:"appointmentId"`
	UserID          string            `bson:"userId" json:"userId"`
	ChildID         string            `bson:"childId,omitempty" json:"childId,omitempty"`
	ChildrenName    string            `bson:"childrenName" json:"childrenName"`
	DateOfBirth     string            `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender          string            `bson:"gender" json:"gender"`
	AppointmentDate string            `bson:"appointmentDate" json:"appointmentDate"`
	TimeStart       string            `bson:"timeStart" json:"timeStart"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	VaccineDetails  []VaccineDetail   `bson:"vaccineDetailsList" json:"vaccineDetailsList"`
	Note            string            `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// UniqueVaccineDetails collapses duplicate vaccineDetailsId entries,
// keeping the first occurrence. Source data has been observed to carry
// duplicated lines and totals must not double-count them.
func (a *Appointment) UniqueVaccineDetails() []VaccineDetail {
	seen := make(map[string]bool, len(a.VaccineDetails))
	unique := make([]VaccineDetail, 0, len(a.VaccineDetails))
	for _, d := range a.VaccineDetails {
		if seen[d.VaccineDetailsID] {
			continue
		}
		seen[d.VaccineDetailsID] = true
		unique = append(unique, d)
	}
	return unique
}

// TotalPrice sums prices over the de-duplicated vaccine lines.
func (a *Appointment) TotalPrice() int64 {
	var total int64
	for _, d := range a.UniqueVaccineDetails() {
		total += d.Price
	}
	return total
}
