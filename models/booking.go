package models

import "time"

// WizardStep enumerates the booking wizard states. Transitions are only
// valid along the edges in wizardEdges; in particular the success step is
// reachable solely through a confirmed checkout.
type WizardStep string

const (
	StepSelectingChildAndSlot WizardStep = "selecting_child_and_slot"
	StepReviewingConfirmation WizardStep = "reviewing_confirmation"
	StepSuccess               WizardStep = "success"
)

var wizardEdges = map[WizardStep][]WizardStep{
	StepSelectingChildAndSlot: {StepReviewingConfirmation},
	StepReviewingConfirmation: {StepSelectingChildAndSlot, StepSuccess},
}

// CanTransition reports whether moving from s to next is an allowed edge.
func (s WizardStep) CanTransition(next WizardStep) bool {
	for _, allowed := range wizardEdges[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ChildSelectionKind tags who is being vaccinated: an existing persisted
// profile or a child entered inline during the wizard.
type ChildSelectionKind string

const (
	ChildSelectionExisting ChildSelectionKind = "existing"
	ChildSelectionNew      ChildSelectionKind = "new"
)

// InlineChildFields are the wizard's inline child inputs, authoritative
// only when the selection kind is "new".
type InlineChildFields struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

// ChildSelection is a tagged union: exactly one of ProfileID or Inline is
// meaningful depending on Kind.
type ChildSelection struct {
	Kind      ChildSelectionKind `json:"kind"`
	ProfileID string             `json:"profileId,omitempty"`
	Inline    InlineChildFields  `json:"inline"`
}

// EffectiveChild is the resolved child view consumed by every downstream
// display regardless of which branch of the selection produced it.
type EffectiveChild struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

// BookingFormData is the slot-selection form, mutated field by field.
type BookingFormData struct {
	ParentName    string `json:"parentName"`
	ParentPhone   string `json:"parentPhone"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Note          string `json:"note,omitempty"`
}

// BookingSession holds wizard state between steps. Stored as a JSON blob
// in the session store under a TTL.
type BookingSession struct {
	SessionID      string          `json:"sessionId"`
	UserID         string          `json:"userId"`
	Step           WizardStep      `json:"step"`
	Form           BookingFormData `json:"form"`
	Child          ChildSelection  `json:"child"`
	AcceptTerms    bool            `json:"acceptTerms"`
	PaymentSuccess bool            `json:"paymentSuccess"`
	AppointmentID  string          `json:"appointmentId,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// LastAppointment is the lightweight snapshot persisted at checkout for
// the success and payment-return screens.
type LastAppointment struct {
	AppointmentID string `json:"appointmentId"`
	ChildName     string `json:"childName"`
	Date          string `json:"date"`
	TimeStart     string `json:"timeStart"`
	Total         int64  `json:"total"`
}
